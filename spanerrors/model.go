package spanerrors

import (
	"fmt"
	uuid "github.com/satori/go.uuid"
	"golang.org/x/xerrors"
)

// Fixed messages for each serialisation failure condition. The text of each
// message is part of the contract with callers, not incidental, so they are
// declared once here rather than formatted inline at the failure sites.
const (
	// Request data is a list but the declared request model is not.
	RequestIsListModelIsNot = "Unable to serialise request. Request is a list " +
		"but 'request_model' defined is not."

	// The declared request model is a list but the request data is not.
	ModelIsListRequestIsNot = "Unable to serialise request. 'request_model' " +
		"defined a list but request was not a list."

	// Request data is a record of a different type than the declared model.
	RequestTypeMismatch = "Unable to serialise request. Request data type does " +
		"not match type defined by 'request_model'."

	// Response content is a list but the declared response model is not.
	ResponseIsListModelIsNot = "Unable to deserialise response. Response is a " +
		"list but 'response_model' defined is not."

	// The declared response model is a list but the response content is not.
	ModelIsListResponseIsNot = "Unable to deserialise response. " +
		"'response_model' defined a list but response was not a list."
)

// Message template for unsupported response content types. Use
// NewUnsupportedContentType to build the error.
const unsupportedContentType = "Unable to provide response serialiser. Response " +
	"content-type '%v' is not supported."

/*
SerialisationError is the single error kind raised by the serialisation core.
It carries a fixed, literal Message identifying the failure condition, and an ID
so that a specific occurrence can be traced through logs of the calling service.
*/
type SerialisationError struct {
	// The fixed message for the failure condition, normally one of the constants
	// declared in this package.
	Message string

	// An id for this specific error instance.
	ID uuid.UUID

	// The xerrors.Frame from where this error was instantiated.
	frame xerrors.Frame
}

// New returns a SerialisationError with the given fixed message.
func New(message string) *SerialisationError {
	return &SerialisationError{
		Message: message,
		ID:      uuid.NewV4(),
		frame:   xerrors.Caller(1),
	}
}

// NewUnsupportedContentType returns the error raised when a response declares a
// content type no codec is registered for. The offending value is substituted
// into the message verbatim.
func NewUnsupportedContentType(contentType string) *SerialisationError {
	spanError := New(fmt.Sprintf(unsupportedContentType, contentType))
	spanError.frame = xerrors.Caller(1)
	return spanError
}

// Error string to conform to the builtin error interface.
func (spanError *SerialisationError) Error() string {
	return spanError.Message
}

// Format implements fmt.Formatter by deferring to xerrors so "%+v" renders the
// capture frame.
func (spanError *SerialisationError) Format(state fmt.State, verb rune) {
	xerrors.FormatError(spanError, state, verb)
}

// FormatError implements xerrors.Formatter.
func (spanError *SerialisationError) FormatError(printer xerrors.Printer) error {
	printer.Print(spanError.Message)
	spanError.frame.Format(printer)
	return nil
}

// IsSerialisation reports whether err is, or wraps, a SerialisationError.
func IsSerialisation(err error) bool {
	var target *SerialisationError
	return xerrors.As(err, &target)
}
