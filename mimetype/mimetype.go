// Enumeration-like type for content mimetypes.
package mimetype

import (
	"strings"
)

/*
MimeType is used to enumerate the content types this library can decorate. Non
default MimeTypes can be used by wrapping a custom string:

	MimeType("text/csv")
*/
type MimeType string

const (
	JSON = MimeType("application/json")
	TEXT = MimeType("text/plain")
	// UNKNOWN is used when the incoming string is blank
	UNKNOWN = MimeType("")
)

// Interface for objects that expose header values, such as http.Request.Header or
// http.Response.Header.
type headerFetcher interface {
	Get(string) string
}

// Extract content type from a message / request header.
func FromHeader(headers headerFetcher) MimeType {
	return FromString(headers.Get("Content-Type"))
}

// StripParams removes media type parameters such as "; charset=utf-8" from a
// content-type header value.
func StripParams(incoming string) string {
	if index := strings.IndexByte(incoming, ';'); index != -1 {
		incoming = incoming[:index]
	}
	return strings.TrimSpace(incoming)
}

/*
Convert MimeType from a string. Ignores case and media type parameters. If the
MimeType is a default type, multiple formats are respected. For instance, all of
the following will yield "mimetype.JSON":

• "application/json"

• "application/JSON"

• "application/x-json"

• "application/json; charset=utf-8"

• "json"

• "x-json"
*/
func FromString(incoming string) MimeType {
	incoming = strings.ToLower(StripParams(incoming))

	if incoming == "" {
		return UNKNOWN
	}
	if incoming == "text/plain" || incoming == "text" {
		return TEXT
	}

	jsonSuffix := strings.Split(string(JSON), "/")[1]
	if strings.HasSuffix(incoming, jsonSuffix) {
		return JSON
	}

	return MimeType(incoming)
}
