package encoding_test

//revive:disable:import-shadowing reason: Disabled for assert := assert.New(), which is
// the preferred method of using multiple asserts in a test.

import (
	"github.com/stretchr/testify/assert"
	"reflect"
	"testing"

	"github.com/illuscio-dev/spanclient-go/encoding"
	"github.com/illuscio-dev/spanclient-go/mimetype"
	"github.com/illuscio-dev/spanclient-go/records"
	"github.com/illuscio-dev/spanclient-go/spanerrors"
)

func TestTextCodecInfo(test *testing.T) {
	assert := assert.New(test)

	assert.Equal(mimetype.TEXT, encoding.Text.MediaType())
	assert.Equal(reflect.TypeOf(""), encoding.Text.DefaultModel())
}

func TestTextSerialiseIdentity(test *testing.T) {
	assert := assert.New(test)

	result, err := encoding.Text.Serialise("here be some string data", nil)
	assert.Nil(err)
	assert.Equal("here be some string data", result)

	result, err = encoding.Text.Serialise(nil, nil)
	assert.Nil(err)
	assert.Nil(result)
}

func TestTextSerialiseShapeMismatch(test *testing.T) {
	listModel, err := records.ListOf(Person{})
	if err != nil {
		test.Fatal(err)
	}

	_, err = encoding.Text.Serialise("not a list", listModel)
	assert.EqualError(test, err, spanerrors.ModelIsListRequestIsNot)
	assert.True(test, spanerrors.IsSerialisation(err))
}

func TestTextDeserialise(test *testing.T) {
	result, err := encoding.Text.Deserialise([]byte("here be a response"), nil)

	assert.Nil(test, err)
	assert.Equal(test, "here be a response", result)
}
