package mimetype_test

import (
	"github.com/stretchr/testify/assert"
	"net/http"
	"testing"

	"github.com/illuscio-dev/spanclient-go/mimetype"
)

func ParameterizeFromString(
	test *testing.T, testStrings []string, mimeTypeExpected mimetype.MimeType,
) {
	for _, mimeTypeString := range testStrings {
		mimeTypeExtracted := mimetype.FromString(mimeTypeString)
		assert.Equal(test, mimeTypeExpected, mimeTypeExtracted)
	}
}

func ParameterizeFromHeader(
	test *testing.T, testStrings []string, mimeTypeExpected mimetype.MimeType,
) {
	for _, mimeTypeString := range testStrings {
		headers := make(http.Header)
		headers.Set("Content-Type", mimeTypeString)
		mimeTypeExtracted := mimetype.FromHeader(headers)
		assert.Equal(test, mimeTypeExpected, mimeTypeExtracted)
	}
}

func TestFromJson(test *testing.T) {
	stringValues := []string{
		"json",
		"JSON",
		"x-json",
		"application/json",
		"application/JSON",
		"application/x-json",
		"application/X-JSON",
		"application/json; charset=utf-8",
		"application/JSON; charset=UTF-8",
	}

	test.Run("JSON From String", func(subTest *testing.T) {
		ParameterizeFromString(test, stringValues, mimetype.JSON)
	})
	test.Run("JSON From Header", func(subTest *testing.T) {
		ParameterizeFromHeader(test, stringValues, mimetype.JSON)
	})
}

func TestFromText(test *testing.T) {
	stringValues := []string{
		"text",
		"TEXT",
		"text/plain",
		"TEXT/plain",
		"text/plain; charset=utf-8",
	}

	test.Run("TEXT From String", func(subTest *testing.T) {
		ParameterizeFromString(test, stringValues, mimetype.TEXT)
	})
	test.Run("TEXT From Header", func(subTest *testing.T) {
		ParameterizeFromHeader(test, stringValues, mimetype.TEXT)
	})
}

func TestFromUnknown(test *testing.T) {
	stringValues := []string{"", "   ", "; charset=utf-8"}

	test.Run("UNKNOWN From String", func(subTest *testing.T) {
		ParameterizeFromString(test, stringValues, mimetype.UNKNOWN)
	})
	test.Run("UNKNOWN From Header", func(subTest *testing.T) {
		ParameterizeFromHeader(test, stringValues, mimetype.UNKNOWN)
	})
}

func TestFromStringOther(test *testing.T) {
	stringValues := []string{"text/csv", "TEXT/CSV", "text/CSV"}
	expected := mimetype.MimeType("text/csv")

	test.Run("Other From String", func(subTest *testing.T) {
		ParameterizeFromString(test, stringValues, expected)
	})
	test.Run("Other From Header", func(subTest *testing.T) {
		ParameterizeFromHeader(test, stringValues, expected)
	})
}

func TestStripParams(test *testing.T) {
	assert.Equal(
		test, "application/json", mimetype.StripParams("application/json; charset=utf-8"),
	)
	assert.Equal(test, "text/plain", mimetype.StripParams(" text/plain "))
	assert.Equal(test, "", mimetype.StripParams(""))
}
