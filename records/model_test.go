package records_test

import (
	"github.com/stretchr/testify/assert"
	"reflect"
	"testing"

	"github.com/illuscio-dev/spanclient-go/records"
)

func TestModelOf(test *testing.T) {
	model, err := records.ModelOf(Person{})

	assert.Nil(test, err)
	assert.False(test, model.IsList())
	assert.Equal(test, reflect.TypeOf(Person{}), model.Elem().GoType())
}

func TestListOf(test *testing.T) {
	model, err := records.ListOf(Person{})

	assert.Nil(test, err)
	assert.True(test, model.IsList())
	assert.Equal(test, reflect.TypeOf(Person{}), model.Elem().GoType())
}

func TestModelOfNotARecordError(test *testing.T) {
	_, err := records.ModelOf("a string")
	assert.NotNil(test, err)

	_, err = records.ListOf(10)
	assert.NotNil(test, err)
}
