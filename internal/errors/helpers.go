package errors

import (
	"errors"
)

// Is reports whether err matches target, see errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// find returns the outermost *Error in err's chain.
func find(err error) (*Error, bool) {
	var e *Error
	if err == nil || !errors.As(err, &e) {
		return nil, false
	}
	return e, true
}

// GetCode returns err's code. nil is CodeOK and plain errors are CodeInternal.
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}
	if e, ok := find(err); ok {
		return e.Code
	}
	return CodeInternal
}

// GetMessage returns the user-facing message, or err.Error() for plain errors.
func GetMessage(err error) string {
	if err == nil {
		return ""
	}
	if e, ok := find(err); ok {
		return e.Message
	}
	return err.Error()
}

func meta(err error, key string) interface{} {
	if e, ok := find(err); ok {
		return e.Meta[key]
	}
	return nil
}

// GetStatusCode returns the upstream HTTP status carried by err, if any.
func GetStatusCode(err error) (int, bool) {
	status, ok := meta(err, MetaStatusCode).(int)
	return status, ok
}

// GetKind returns the MetaKind recorded on err, or "" when there is none.
func GetKind(err error) string {
	kind, _ := meta(err, MetaKind).(string)
	return kind
}

// IsNotFound reports whether err has CodeNotFound.
func IsNotFound(err error) bool { return GetCode(err) == CodeNotFound }

// IsInvalidArgument reports whether err has CodeInvalidArgument.
func IsInvalidArgument(err error) bool { return GetCode(err) == CodeInvalidArgument }

// IsInternal reports whether err has CodeInternal.
func IsInternal(err error) bool { return GetCode(err) == CodeInternal }

// IsUnavailable reports whether err has CodeUnavailable.
func IsUnavailable(err error) bool { return GetCode(err) == CodeUnavailable }

// IsTransport reports whether err came from a transport or decoding failure.
func IsTransport(err error) bool { return GetKind(err) == KindTransport }

// IsEmptyResult reports whether err marks a response without a usable identifier.
func IsEmptyResult(err error) bool { return GetKind(err) == KindEmptyResult }
