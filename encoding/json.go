package encoding

import (
	ugorji "github.com/ugorji/go/codec"
	"golang.org/x/xerrors"
	"reflect"

	"github.com/illuscio-dev/spanclient-go/mimetype"
	"github.com/illuscio-dev/spanclient-go/records"
	"github.com/illuscio-dev/spanclient-go/spanerrors"
)

/*
Handles serialisation to / deserialisation from application/json. Records move
through their mapping form on the way out; parsed content is built back into the
declared record type on the way in, or left as the default container (a mapping)
when no model is declared.
*/
type jsonCodec struct{}

func (jsonCodec) MediaType() mimetype.MimeType {
	return mimetype.JSON
}

func (jsonCodec) DefaultModel() reflect.Type {
	return reflect.TypeOf(map[string]interface{}(nil))
}

func (codec jsonCodec) Serialise(
	payload interface{}, model *records.Model,
) (interface{}, error) {
	if payload == nil {
		return nil, nil
	}

	shape := shapeOf(payload)
	if err := checkRequestShape(shape, payload, model); err != nil {
		return nil, err
	}

	switch shape {
	case shapeRecord:
		return records.Dump(payload)
	case shapeList:
		return serialiseList(payload)
	default:
		// Mappings and scalars are already JSON-compatible.
		return payload, nil
	}
}

// Serialises each element of a list payload individually: records are dumped to
// mappings, everything else passes through.
func serialiseList(payload interface{}) (interface{}, error) {
	listValue := reflect.ValueOf(payload)
	serialised := make([]interface{}, listValue.Len())

	for index := 0; index < listValue.Len(); index++ {
		element := listValue.Index(index).Interface()
		if !records.IsRecord(element) {
			serialised[index] = element
			continue
		}

		dumped, err := records.Dump(element)
		if err != nil {
			return nil, err
		}
		serialised[index] = dumped
	}

	return serialised, nil
}

func (codec jsonCodec) Deserialise(
	raw []byte, model *records.Model,
) (interface{}, error) {
	var parsed interface{}

	decoder := ugorji.NewDecoderBytes(raw, records.JSONHandle())
	if err := decoder.Decode(&parsed); err != nil {
		// Malformed bytes are the parser's error, not a serialisation mismatch,
		// so it propagates as-is.
		return nil, err
	}

	switch content := parsed.(type) {
	case []interface{}:
		if model == nil {
			// Default container per element: a list of mappings.
			return content, nil
		}
		if !model.IsList() {
			return nil, spanerrors.New(spanerrors.ResponseIsListModelIsNot)
		}
		return buildRecordList(content, model.Elem())
	case map[string]interface{}:
		if model == nil {
			return content, nil
		}
		if model.IsList() {
			return nil, spanerrors.New(spanerrors.ModelIsListResponseIsNot)
		}
		return model.Elem().Build(content)
	default:
		if model != nil && model.IsList() {
			return nil, spanerrors.New(spanerrors.ModelIsListResponseIsNot)
		}
		return parsed, nil
	}
}

// Builds each parsed element into an instance of the record type, returning a
// typed slice of record pointers with order preserved.
func buildRecordList(
	content []interface{}, recordType *records.Type,
) (interface{}, error) {
	listType := reflect.SliceOf(reflect.PtrTo(recordType.GoType()))
	built := reflect.MakeSlice(listType, 0, len(content))

	for _, element := range content {
		mapping, ok := element.(map[string]interface{})
		if !ok {
			return nil, xerrors.New(
				"list element is not an object and cannot build a record",
			)
		}

		record, err := recordType.Build(mapping)
		if err != nil {
			return nil, err
		}
		built = reflect.Append(built, reflect.ValueOf(record))
	}

	return built.Interface(), nil
}
