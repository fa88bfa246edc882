package records

import (
	"encoding/hex"
	uuid "github.com/satori/go.uuid"
	"github.com/ugorji/go/codec"
	"golang.org/x/xerrors"
	"reflect"

	"github.com/illuscio-dev/spanclient-go/spantypes"
)

// JSONExtensionOpts holds options for a JsonHandle extension registered on the
// package handle during setup.
type JSONExtensionOpts struct {
	ValueType    reflect.Type
	ExtInterface codec.InterfaceExt
}

// Converts spantypes.BinData to and from a hex string for JSON transport.
type jsonExtBinData struct{}

func (ext *jsonExtBinData) ConvertExt(value interface{}) interface{} {
	switch data := value.(type) {
	case spantypes.BinData:
		return hex.EncodeToString(data)
	case *spantypes.BinData:
		return hex.EncodeToString(*data)
	}
	panic(xerrors.New("value is not BinData"))
}

func (ext *jsonExtBinData) UpdateExt(dest interface{}, value interface{}) {
	hexString, ok := value.(string)
	if !ok {
		panic(xerrors.New("bin data must be sent as a hex string"))
	}

	decoded, err := hex.DecodeString(hexString)
	if err != nil {
		panic(xerrors.Errorf("error decoding bin data hex: %w", err))
	}

	*dest.(*spantypes.BinData) = decoded
}

// Converts UUIDs from "github.com/satori/go.uuid" to and from their canonical
// string form for JSON transport.
type jsonExtUUID struct{}

func (ext *jsonExtUUID) ConvertExt(value interface{}) interface{} {
	switch id := value.(type) {
	case uuid.UUID:
		return id.String()
	case *uuid.UUID:
		return id.String()
	}
	panic(xerrors.New("value is not a UUID"))
}

func (ext *jsonExtUUID) UpdateExt(dest interface{}, value interface{}) {
	idString, ok := value.(string)
	if !ok {
		panic(xerrors.New("uuid must be sent as a string"))
	}

	id, err := uuid.FromString(idString)
	if err != nil {
		panic(xerrors.Errorf("error parsing uuid: %w", err))
	}

	*dest.(*uuid.UUID) = id
}

// defaultJSONExtensions holds the extensions registered on the package handle.
var defaultJSONExtensions = []*JSONExtensionOpts{
	{
		ValueType:    reflect.TypeOf(spantypes.BinData(nil)),
		ExtInterface: &jsonExtBinData{},
	},
	{
		ValueType:    reflect.TypeOf(uuid.UUID{}),
		ExtInterface: &jsonExtUUID{},
	},
}

func newJSONHandle() *codec.JsonHandle {
	handle := &codec.JsonHandle{}

	// Mappings decode as map[string]interface{} and unknown fields make building
	// a record fail rather than being silently discarded. The latter is what
	// separates the validating record family from the plain one.
	handle.MapType = reflect.TypeOf(map[string]interface{}(nil))
	handle.ErrorIfNoField = true

	for _, extOpts := range defaultJSONExtensions {
		err := handle.SetInterfaceExt(extOpts.ValueType, 1, extOpts.ExtInterface)
		if err != nil {
			// Only possible with a malformed registration above.
			panic(xerrors.Errorf("error adding json extension: %w", err))
		}
	}

	return handle
}

// The shared handle for all mapping <-> record conversion. Configured once here,
// read-only afterwards, so concurrent use is safe.
var jsonHandle = newJSONHandle()

// JSONHandle returns the handle used for record conversion and JSON content
// parsing.
func JSONHandle() *codec.JsonHandle {
	return jsonHandle
}
