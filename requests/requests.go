// Decorates outgoing HTTP call parameters with content-type-aware serialisation.
package requests

import (
	"net/url"
	"reflect"

	"github.com/illuscio-dev/spanclient-go/encoding"
	"github.com/illuscio-dev/spanclient-go/mimetype"
	"github.com/illuscio-dev/spanclient-go/models"
	"github.com/illuscio-dev/spanclient-go/records"
)

/*
Kwargs wraps the parameters of one outgoing call. Instead of an open bag of named
arguments, the two fields the serialisation core cares about are declared
outright, and everything meant for the transport goes through the explicit
Options map — so the rule for what gets forwarded is a static, auditable list.
*/
type Kwargs struct {
	// Headers to send with the request. Values may be scalars or structured
	// records; records are dumped to mappings before transmission.
	Headers map[string]interface{}

	// The request body payload: a scalar, a record, a mapping, or a flat list.
	Data interface{}

	// Options for the underlying HTTP client, passed through unmodified. Only
	// keys on the transport allowlist are forwarded; anything else is dropped
	// during reduction.
	Options map[string]interface{}
}

// The Options keys forwarded verbatim to the external HTTP client.
var transportOptions = map[string]struct{}{
	"params":  {},
	"timeout": {},
	"auth":    {},
	"cookies": {},
	"proxy":   {},
	"stream":  {},
}

// ApplyPaging writes a paging window into the request's "params" transport
// option, creating it when absent.
func (kwargs *Kwargs) ApplyPaging(paging *models.PagingReq) {
	if kwargs.Options == nil {
		kwargs.Options = make(map[string]interface{})
	}

	params, ok := kwargs.Options["params"].(url.Values)
	if !ok {
		params = make(url.Values)
	}
	paging.ToParams(params)
	kwargs.Options["params"] = params
}

/*
Request decorates outgoing call parameters with a media type's serialisation
behavior. A Request holds only its codec and the model declared for this one
call — no state is shared across invocations, so values are safe to use from
concurrent call sites.
*/
type Request struct {
	codec encoding.Codec
	model *records.Model
}

// New returns the base Request, bound to no media type: headers are still
// serialised, but data passes through untransformed.
func New(requestModel *records.Model) *Request {
	return &Request{model: requestModel}
}

// NewText returns a Request that serialises data as text/plain.
func NewText(requestModel *records.Model) *Request {
	return &Request{codec: encoding.Text, model: requestModel}
}

// NewJSON returns a Request that serialises data as application/json.
func NewJSON(requestModel *records.Model) *Request {
	return &Request{codec: encoding.JSON, model: requestModel}
}

// MediaType returns UNKNOWN for the base Request.
func (request *Request) MediaType() mimetype.MimeType {
	if request.codec == nil {
		return mimetype.UNKNOWN
	}
	return request.codec.MediaType()
}

// DefaultModel is a string for base requests, otherwise the codec's default
// container type.
func (request *Request) DefaultModel() reflect.Type {
	if request.codec == nil {
		return reflect.TypeOf("")
	}
	return request.codec.DefaultModel()
}

// SerialiseHeaders dumps record-valued headers to mappings. Scalar header values
// pass through unchanged.
func (request *Request) SerialiseHeaders(
	headers map[string]interface{},
) (map[string]interface{}, error) {
	if len(headers) == 0 {
		return nil, nil
	}

	serialised := make(map[string]interface{}, len(headers))
	for name, value := range headers {
		if !records.IsRecord(value) {
			serialised[name] = value
			continue
		}

		dumped, err := records.Dump(value)
		if err != nil {
			return nil, err
		}
		serialised[name] = dumped
	}

	return serialised, nil
}

// SerialiseData converts the request payload through the bound codec. Base
// requests return data untouched.
func (request *Request) SerialiseData(data interface{}) (interface{}, error) {
	if request.codec == nil {
		return data, nil
	}
	return request.codec.Serialise(data, request.model)
}

/*
RequestsKwargs reduces a Kwargs bag to exactly the mapping the external HTTP
client accepts: "headers" and "data" when non-empty — both serialised through
this request — plus allowlisted transport options forwarded verbatim. The result
may be an empty mapping.
*/
func (request *Request) RequestsKwargs(
	kwargs Kwargs,
) (map[string]interface{}, error) {
	reduced := make(map[string]interface{})

	headers, err := request.SerialiseHeaders(kwargs.Headers)
	if err != nil {
		return nil, err
	}
	if len(headers) > 0 {
		reduced["headers"] = headers
	}

	if kwargs.Data != nil && kwargs.Data != "" {
		data, err := request.SerialiseData(kwargs.Data)
		if err != nil {
			return nil, err
		}
		if data != nil {
			reduced["data"] = data
		}
	}

	for name, value := range kwargs.Options {
		if _, ok := transportOptions[name]; ok {
			reduced[name] = value
		}
	}

	return reduced, nil
}
