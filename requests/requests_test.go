package requests_test

//revive:disable:import-shadowing reason: Disabled for assert := assert.New(), which is
// the preferred method of using multiple asserts in a test.

import (
	"github.com/stretchr/testify/assert"
	"net/url"
	"reflect"
	"testing"

	"github.com/illuscio-dev/spanclient-go/mimetype"
	"github.com/illuscio-dev/spanclient-go/models"
	"github.com/illuscio-dev/spanclient-go/records"
	"github.com/illuscio-dev/spanclient-go/requests"
	"github.com/illuscio-dev/spanclient-go/spanerrors"
)

type Person struct {
	Foo string `json:"foo"`
}

type Pet struct {
	Name string `json:"name"`
}

func modelOf(test *testing.T, typeOrValue interface{}) *records.Model {
	model, err := records.ModelOf(typeOrValue)
	if err != nil {
		test.Fatal(err)
	}
	return model
}

func listOf(test *testing.T, typeOrValue interface{}) *records.Model {
	model, err := records.ListOf(typeOrValue)
	if err != nil {
		test.Fatal(err)
	}
	return model
}

func TestBaseRequestInfo(test *testing.T) {
	request := requests.New(nil)

	assert.Equal(test, mimetype.UNKNOWN, request.MediaType())
	assert.Equal(test, reflect.TypeOf(""), request.DefaultModel())
}

func TestTextRequestInfo(test *testing.T) {
	request := requests.NewText(nil)

	assert.Equal(test, mimetype.TEXT, request.MediaType())
	assert.Equal(test, reflect.TypeOf(""), request.DefaultModel())
}

func TestJSONRequestInfo(test *testing.T) {
	request := requests.NewJSON(nil)

	assert.Equal(test, mimetype.JSON, request.MediaType())
	assert.Equal(
		test, reflect.TypeOf(map[string]interface{}(nil)), request.DefaultModel(),
	)
}

func TestRequestsKwargsManyKwargsReturnsRequestKwargsOnly(test *testing.T) {
	assert := assert.New(test)

	kwargs := requests.Kwargs{
		Headers: map[string]interface{}{"content": "example"},
		Data:    "here be some string data",
		Options: map[string]interface{}{"fizz": "buzz"},
	}

	result, err := requests.New(nil).RequestsKwargs(kwargs)
	assert.Nil(err)

	assert.Len(result, 2)
	assert.NotNil(result["headers"])
	assert.NotNil(result["data"])
}

func TestRequestsKwargsForwardsTransportOptions(test *testing.T) {
	assert := assert.New(test)

	kwargs := requests.Kwargs{
		Data: "here be some string data",
		Options: map[string]interface{}{
			"timeout": 30,
			"params":  url.Values{"q": []string{"search"}},
			"fizz":    "buzz",
		},
	}

	result, err := requests.New(nil).RequestsKwargs(kwargs)
	assert.Nil(err)

	assert.Len(result, 3)
	assert.Equal(30, result["timeout"])
	assert.NotNil(result["params"])
	assert.Nil(result["fizz"])
}

func TestRequestsKwargsNoKwargsReturnsEmptyMap(test *testing.T) {
	result, err := requests.New(nil).RequestsKwargs(requests.Kwargs{})

	assert.Nil(test, err)
	assert.NotNil(test, result)
	assert.Len(test, result, 0)
}

func TestSerialiseHeadersRecordValue(test *testing.T) {
	headers := map[string]interface{}{"example": Person{Foo: "bar"}}

	result, err := requests.New(nil).SerialiseHeaders(headers)

	assert.Nil(test, err)
	assert.Equal(
		test,
		map[string]interface{}{"example": map[string]interface{}{"foo": "bar"}},
		result,
	)
}

func TestSerialiseHeadersScalarValuesPassThrough(test *testing.T) {
	headers := map[string]interface{}{"x-request-id": "abc123"}

	result, err := requests.New(nil).SerialiseHeaders(headers)

	assert.Nil(test, err)
	assert.Equal(test, headers, result)
}

func TestBaseSerialiseDataPassesThrough(test *testing.T) {
	result, err := requests.New(nil).SerialiseData(Person{Foo: "bar"})

	assert.Nil(test, err)
	assert.Equal(test, Person{Foo: "bar"}, result)
}

func TestJSONSerialiseDataRecord(test *testing.T) {
	result, err := requests.NewJSON(nil).SerialiseData(Person{Foo: "bar"})

	assert.Nil(test, err)
	assert.Equal(test, map[string]interface{}{"foo": "bar"}, result)
}

func TestJSONSerialiseDataList(test *testing.T) {
	assert := assert.New(test)

	result, err := requests.NewJSON(nil).SerialiseData(
		[]Person{{Foo: "bar"}, {Foo: "baz"}},
	)
	assert.Nil(err)

	assert.Equal(
		[]interface{}{
			map[string]interface{}{"foo": "bar"},
			map[string]interface{}{"foo": "baz"},
		},
		result,
	)
}

func TestJSONSerialiseDataListModelMismatchError(test *testing.T) {
	request := requests.NewJSON(modelOf(test, Person{}))

	_, err := request.SerialiseData([]Person{{Foo: "bar"}})

	assert.EqualError(test, err, spanerrors.RequestIsListModelIsNot)
}

func TestJSONSerialiseDataRecordListModelError(test *testing.T) {
	request := requests.NewJSON(listOf(test, Person{}))

	_, err := request.SerialiseData(Person{Foo: "bar"})

	assert.EqualError(test, err, spanerrors.ModelIsListRequestIsNot)
}

func TestJSONSerialiseDataTypeMismatchError(test *testing.T) {
	request := requests.NewJSON(modelOf(test, Pet{}))

	_, err := request.SerialiseData(Person{Foo: "bar"})

	assert.EqualError(test, err, spanerrors.RequestTypeMismatch)
}

func TestRequestsKwargsSerialiseErrorPropagates(test *testing.T) {
	request := requests.NewJSON(modelOf(test, Person{}))

	_, err := request.RequestsKwargs(
		requests.Kwargs{Data: []Person{{Foo: "bar"}}},
	)

	assert.EqualError(test, err, spanerrors.RequestIsListModelIsNot)
}

func TestApplyPaging(test *testing.T) {
	assert := assert.New(test)

	kwargs := requests.Kwargs{}
	kwargs.ApplyPaging(&models.PagingReq{Offset: 20, Limit: 10})

	params, ok := kwargs.Options["params"].(url.Values)
	if !ok {
		test.Fatal("params option is not url.Values")
	}
	assert.Equal("20", params.Get("paging-offset"))
	assert.Equal("10", params.Get("paging-limit"))
}
