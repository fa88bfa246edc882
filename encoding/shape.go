package encoding

import (
	"reflect"

	"github.com/illuscio-dev/spanclient-go/records"
	"github.com/illuscio-dev/spanclient-go/spantypes"
)

// payloadShape is the closed set of payload shapes codecs dispatch on. A
// payload's shape is computed once per serialise call and switched on, rather
// than re-probing the value at every decision point.
type payloadShape int

const (
	shapeNil payloadShape = iota
	shapeScalar
	shapeMapping
	shapeRecord
	shapeList
)

func shapeOf(payload interface{}) payloadShape {
	if payload == nil {
		return shapeNil
	}

	// Byte blobs and strings are scalars, not lists.
	switch payload.(type) {
	case string, []byte, spantypes.BinData:
		return shapeScalar
	}

	if records.IsRecord(payload) {
		return shapeRecord
	}

	switch reflect.ValueOf(payload).Kind() {
	case reflect.Map:
		return shapeMapping
	case reflect.Slice, reflect.Array:
		return shapeList
	}

	return shapeScalar
}
