package errors

import (
	"errors"
	"fmt"
)

// Meta keys shared across packages
const (
	MetaStatusCode = "status_code"
	MetaKind       = "kind"
)

// Error kinds recorded under MetaKind
const (
	KindStatus      = "status"
	KindTransport   = "transport"
	KindEmptyResult = "empty_result"
)

// Error is a coded error with a user-facing message. Meta travels with the
// error through Wrap so callers up the stack can still read it.
type Error struct {
	Code    Code                   `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Meta    map[string]interface{} `json:"meta,omitempty"`
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error with the same code.
func (e *Error) Is(target error) bool {
	var other *Error
	return errors.As(target, &other) && other.Code == e.Code
}

// WithMeta sets a metadata value and returns e for chaining.
func (e *Error) WithMeta(key string, value interface{}) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]interface{})
	}
	e.Meta[key] = value
	return e
}

// New creates an error with a code and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap adds context to err. The code and a copy of the metadata of the
// nearest *Error in the chain are kept; plain errors become CodeInternal.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	code := CodeInternal
	var inner *Error
	if errors.As(err, &inner) {
		code = inner.Code
	}
	return WrapWithCode(err, code, message)
}

// Wrapf is Wrap with a formatted message.
func Wrapf(err error, format string, args ...interface{}) *Error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps err under a new code, keeping a copy of its metadata.
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := &Error{Code: code, Message: message, Cause: err}

	var inner *Error
	if errors.As(err, &inner) {
		for k, v := range inner.Meta {
			wrapped.WithMeta(k, v)
		}
	}
	return wrapped
}

// NotFound creates a CodeNotFound error.
func NotFound(message string) *Error {
	return New(CodeNotFound, message)
}

// NotFoundf creates a CodeNotFound error with a formatted message.
func NotFoundf(format string, args ...interface{}) *Error {
	return NotFound(fmt.Sprintf(format, args...))
}

// InvalidArgument creates a CodeInvalidArgument error.
func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

// InvalidArgumentf creates a CodeInvalidArgument error with a formatted message.
func InvalidArgumentf(format string, args ...interface{}) *Error {
	return InvalidArgument(fmt.Sprintf(format, args...))
}

// Internal creates a CodeInternal error.
func Internal(message string) *Error {
	return New(CodeInternal, message)
}

// Status creates the error returned when an upstream service answers with a
// non-2xx status. The status is kept in the metadata.
func Status(status int, message string) *Error {
	return New(CodeFromHTTPStatus(status), message).
		WithMeta(MetaStatusCode, status).
		WithMeta(MetaKind, KindStatus)
}

// Transport wraps a failure to reach or decode an upstream response.
func Transport(err error, message string) *Error {
	if err == nil {
		return nil
	}
	return WrapWithCode(err, CodeUnavailable, message).WithMeta(MetaKind, KindTransport)
}

// EmptyResult creates the error for a response that decoded but carried no
// usable identifier.
func EmptyResult(message string) *Error {
	return New(CodeNotFound, message).WithMeta(MetaKind, KindEmptyResult)
}
