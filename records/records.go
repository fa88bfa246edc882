// Structured record capability: predicates, normalization to the validating
// record family, and conversion between record and mapping form.
package records

import (
	"github.com/ugorji/go/codec"
	"golang.org/x/xerrors"
	"reflect"
	"time"
)

// Resolves the underlying struct type of a record type or value type, seeing
// through one level of pointer. time.Time is a scalar on the wire, not a record.
func structType(incoming reflect.Type) (reflect.Type, bool) {
	if incoming == nil {
		return nil, false
	}
	if incoming.Kind() == reflect.Ptr {
		incoming = incoming.Elem()
	}
	if incoming.Kind() != reflect.Struct {
		return nil, false
	}
	if incoming == reflect.TypeOf(time.Time{}) {
		return nil, false
	}
	return incoming, true
}

// IsRecord returns true when value is a structured record instance: a struct or
// a pointer to one.
func IsRecord(value interface{}) bool {
	if value == nil {
		return false
	}
	_, ok := structType(reflect.TypeOf(value))
	return ok
}

/*
IsRecordList returns true only when value is a list whose elements are
structured records: either a slice or array with a record element type, or an
untyped ([]interface{}) list that is non-empty and holds records exclusively.
*/
func IsRecordList(value interface{}) bool {
	if value == nil {
		return false
	}

	listValue := reflect.ValueOf(value)
	if listValue.Kind() != reflect.Slice && listValue.Kind() != reflect.Array {
		return false
	}

	elemType := listValue.Type().Elem()
	if _, ok := structType(elemType); ok {
		return true
	}

	if elemType.Kind() != reflect.Interface {
		return false
	}
	if listValue.Len() == 0 {
		return false
	}
	for index := 0; index < listValue.Len(); index++ {
		if !IsRecord(listValue.Index(index).Interface()) {
			return false
		}
	}
	return true
}

/*
Type is the validating flavor of a structured record type. Once a plain record
type has been normalised into a Type, building from a mapping and dumping to a
mapping are uniform, well-defined operations: field values are coerced to their
declared types and unknown fields are rejected.
*/
type Type struct {
	goType reflect.Type
}

/*
Normalise converts a plain structured record — a struct type given as a
reflect.Type, a struct value, or a pointer to one — into its validating
equivalent. Passing an already-normalised *Type returns it unchanged, so
downstream code only ever deals with the validating family.
*/
func Normalise(typeOrValue interface{}) (*Type, error) {
	var incoming reflect.Type

	switch value := typeOrValue.(type) {
	case nil:
		return nil, xerrors.New("cannot normalise nil to a record type")
	case *Type:
		return value, nil
	case reflect.Type:
		incoming = value
	default:
		incoming = reflect.TypeOf(typeOrValue)
	}

	recordType, ok := structType(incoming)
	if !ok {
		return nil, xerrors.New(
			"type " + incoming.String() + " is not a structured record",
		)
	}

	return &Type{goType: recordType}, nil
}

// GoType returns the underlying struct type.
func (recordType *Type) GoType() reflect.Type {
	return recordType.goType
}

// New returns a pointer to a zero value of the record type.
func (recordType *Type) New() interface{} {
	return reflect.New(recordType.goType).Interface()
}

// Matches reports whether value is an instance (or a pointer to an instance) of
// this record type.
func (recordType *Type) Matches(value interface{}) bool {
	incoming, ok := structType(reflect.TypeOf(value))
	return ok && incoming == recordType.goType
}

/*
Build instantiates the record from a mapping of field name to value, returning a
pointer to the new instance. Values are coerced to the declared field types where
the wire representation allows it; fields not declared on the record make the
build fail.
*/
func (recordType *Type) Build(mapping map[string]interface{}) (interface{}, error) {
	receiver := recordType.New()
	if err := convert(mapping, receiver); err != nil {
		return nil, err
	}
	return receiver, nil
}

// Dump converts a record instance to a mapping of field name to value. Field
// names follow the record's declared wire names ("codec" / "json" struct tags).
func Dump(record interface{}) (map[string]interface{}, error) {
	if !IsRecord(record) {
		return nil, xerrors.New("value is not a structured record")
	}

	mapping := make(map[string]interface{})
	if err := convert(record, &mapping); err != nil {
		return nil, err
	}
	return mapping, nil
}

// Revalidate re-instantiates a record instance as its validating kind by round
// tripping it through mapping form, applying the same coercion rules a built
// record gets.
func Revalidate(instance interface{}) (interface{}, error) {
	recordType, err := Normalise(instance)
	if err != nil {
		return nil, err
	}

	mapping, err := Dump(instance)
	if err != nil {
		return nil, err
	}

	return recordType.Build(mapping)
}

// Moves a value between record and mapping representation by round tripping it
// through the package json handle.
func convert(source interface{}, receiver interface{}) error {
	var encoded []byte

	encoder := codec.NewEncoderBytes(&encoded, jsonHandle)
	if err := encoder.Encode(source); err != nil {
		return xerrors.Errorf("error dumping value: %w", err)
	}

	decoder := codec.NewDecoderBytes(encoded, jsonHandle)
	if err := decoder.Decode(receiver); err != nil {
		return xerrors.Errorf("error building value: %w", err)
	}

	return nil
}
