// Decorates received HTTP responses with content-type-aware deserialisation.
package responses

import (
	"golang.org/x/xerrors"
	"io/ioutil"
	"net/http"
	"reflect"

	"github.com/illuscio-dev/spanclient-go/encoding"
	"github.com/illuscio-dev/spanclient-go/mimetype"
	"github.com/illuscio-dev/spanclient-go/models"
	"github.com/illuscio-dev/spanclient-go/records"
	"github.com/illuscio-dev/spanclient-go/spanerrors"
)

/*
Response decorates a received *http.Response with a codec chosen from its
content-type header. The body is drained and closed once, at decoration time;
the decorated value then holds everything needed for this one response and
nothing more.
*/
type Response struct {
	raw     *http.Response
	content []byte
	codec   encoding.Codec
	model   *records.Model
}

func newResponse(
	raw *http.Response, withCodec encoding.Codec, model *records.Model,
) (*Response, error) {
	response := &Response{raw: raw, codec: withCodec, model: model}

	if raw.Body == nil {
		return response, nil
	}
	defer func() {
		_ = raw.Body.Close()
	}()

	content, err := ioutil.ReadAll(raw.Body)
	if err != nil {
		return nil, xerrors.Errorf("error reading response body: %w", err)
	}
	response.content = content

	return response, nil
}

/*
New returns the base decorator: no media type and no transformation capability.
DeserialiseContent on a base Response returns the raw body text even when a model
is declared, since without a content type no codec can be selected to build it.
*/
func New(rawResponse *http.Response, responseModel *records.Model) (*Response, error) {
	return newResponse(rawResponse, nil, responseModel)
}

// NewText returns a text/plain response decorator.
func NewText(rawResponse *http.Response, responseModel *records.Model) (*Response, error) {
	return newResponse(rawResponse, encoding.Text, responseModel)
}

// NewJSON returns an application/json response decorator.
func NewJSON(rawResponse *http.Response, responseModel *records.Model) (*Response, error) {
	return newResponse(rawResponse, encoding.JSON, responseModel)
}

/*
Decorate wraps rawResponse with the decorator matching its content-type header.
The match is case-insensitive and ignores charset parameters. An absent or blank
content type falls back to the base Response decorator; a content type with no
registered codec raises a SerialisationError naming the offending value.

To bypass content-type dispatch entirely, call one of the typed constructors
directly instead.
*/
func Decorate(
	rawResponse *http.Response, responseModel *records.Model,
) (*Response, error) {
	contentType := rawResponse.Header.Get("Content-Type")

	mimeType := mimetype.FromString(contentType)
	if mimeType == mimetype.UNKNOWN {
		return New(rawResponse, responseModel)
	}

	withCodec, ok := encoding.CodecFor(mimeType)
	if !ok {
		return nil, spanerrors.NewUnsupportedContentType(
			mimetype.StripParams(contentType),
		)
	}

	return newResponse(rawResponse, withCodec, responseModel)
}

// StatusCode of the underlying response.
func (response *Response) StatusCode() int {
	return response.raw.StatusCode
}

// Headers of the underlying response.
func (response *Response) Headers() http.Header {
	return response.raw.Header
}

// Content returns the raw body bytes drained at decoration time.
func (response *Response) Content() []byte {
	return response.content
}

// Text returns the raw body as a string.
func (response *Response) Text() string {
	return string(response.content)
}

// MediaType returns UNKNOWN for the base decorator.
func (response *Response) MediaType() mimetype.MimeType {
	if response.codec == nil {
		return mimetype.UNKNOWN
	}
	return response.codec.MediaType()
}

// DefaultModel is a string for the base decorator, otherwise the codec's default
// container type.
func (response *Response) DefaultModel() reflect.Type {
	if response.codec == nil {
		return reflect.TypeOf("")
	}
	return response.codec.DefaultModel()
}

// DeserialiseContent converts the raw body through the matched codec and the
// model declared at decoration time.
func (response *Response) DeserialiseContent() (interface{}, error) {
	if response.codec == nil {
		return response.Text(), nil
	}
	return response.codec.Deserialise(response.content, response.model)
}

// Paging rebuilds the paging metadata reported on the response headers.
func (response *Response) Paging(defaultLimit int) (*models.PagingResp, error) {
	return models.PagingRespFromHeaders(response.raw.Header, defaultLimit)
}
