package encoding

import (
	"reflect"

	"github.com/illuscio-dev/spanclient-go/mimetype"
	"github.com/illuscio-dev/spanclient-go/records"
	"github.com/illuscio-dev/spanclient-go/spanerrors"
)

/*
Codec is a media-type-specific serialise / deserialise strategy. Codec values are
stateless: pure functions of (payload, model) on the way out and (bytes, model)
on the way in, so a single value serves any number of concurrent calls.
*/
type Codec interface {
	// The media type this codec handles.
	MediaType() mimetype.MimeType

	// The container type content deserialises into when no model is declared.
	DefaultModel() reflect.Type

	// Serialise converts payload to its wire form. model, when non-nil, declares
	// the expected payload shape; a mismatch raises a SerialisationError. A nil
	// payload serialises to nil.
	Serialise(payload interface{}, model *records.Model) (interface{}, error)

	// Deserialise converts raw body bytes into a typed value: instances of the
	// model's record type when one is declared, the codec's default container
	// otherwise.
	Deserialise(raw []byte, model *records.Model) (interface{}, error)
}

// The codec values for the supported media types.
var (
	Text Codec = textCodec{}
	JSON Codec = jsonCodec{}
)

// codecRegistry maps normalized content types to their codec. Supporting a new
// media type is one more entry here. The registry is never mutated after package
// initialization, which keeps lookup safe without a lock.
var codecRegistry = map[mimetype.MimeType]Codec{
	mimetype.TEXT: Text,
	mimetype.JSON: JSON,
}

// CodecFor returns the codec registered for mimeType.
func CodecFor(mimeType mimetype.MimeType) (Codec, bool) {
	registered, ok := codecRegistry[mimeType]
	return registered, ok
}

// Validates a payload's shape against the declared request model, raising the
// fixed serialisation errors on mismatch. Shared by all codecs; nil payloads are
// handled by the caller before shape inspection.
func checkRequestShape(
	shape payloadShape, payload interface{}, model *records.Model,
) error {
	if model == nil {
		return nil
	}

	if shape == shapeList {
		if !model.IsList() {
			return spanerrors.New(spanerrors.RequestIsListModelIsNot)
		}
		return nil
	}

	if model.IsList() {
		return spanerrors.New(spanerrors.ModelIsListRequestIsNot)
	}

	// Mappings cannot be compared against a declared record type, so only
	// records and scalars are type checked here.
	if shape == shapeRecord && !model.Elem().Matches(payload) {
		return spanerrors.New(spanerrors.RequestTypeMismatch)
	}
	if shape == shapeScalar {
		return spanerrors.New(spanerrors.RequestTypeMismatch)
	}

	return nil
}
