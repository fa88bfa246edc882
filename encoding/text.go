package encoding

import (
	"reflect"

	"github.com/illuscio-dev/spanclient-go/mimetype"
	"github.com/illuscio-dev/spanclient-go/records"
)

// Handles serialisation to / deserialisation from text/plain. Both directions
// are identity operations: payloads pass through untransformed after shape
// validation, and response bytes come back as a string.
type textCodec struct{}

func (textCodec) MediaType() mimetype.MimeType {
	return mimetype.TEXT
}

func (textCodec) DefaultModel() reflect.Type {
	return reflect.TypeOf("")
}

func (textCodec) Serialise(
	payload interface{}, model *records.Model,
) (interface{}, error) {
	if payload == nil {
		return nil, nil
	}
	if err := checkRequestShape(shapeOf(payload), payload, model); err != nil {
		return nil, err
	}
	return payload, nil
}

func (textCodec) Deserialise(
	raw []byte, model *records.Model,
) (interface{}, error) {
	return string(raw), nil
}
