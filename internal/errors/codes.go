package errors

import "net/http"

// Code classifies an error. Codes double as the status this process reports
// and as the summary of what an upstream service answered.
type Code string

// Error codes
const (
	CodeOK                Code = "OK"
	CodeInvalidArgument   Code = "INVALID_ARGUMENT"
	CodeNotFound          Code = "NOT_FOUND"
	CodeDeadlineExceeded  Code = "DEADLINE_EXCEEDED"
	CodeUnauthenticated   Code = "UNAUTHENTICATED"
	CodePermissionDenied  Code = "PERMISSION_DENIED"
	CodeResourceExhausted Code = "RESOURCE_EXHAUSTED"
	CodeUnavailable       Code = "UNAVAILABLE"
	CodeInternal          Code = "INTERNAL"
)

var codeStatus = map[Code]int{
	CodeOK:                http.StatusOK,
	CodeInvalidArgument:   http.StatusBadRequest,
	CodeNotFound:          http.StatusNotFound,
	CodeDeadlineExceeded:  http.StatusGatewayTimeout,
	CodeUnauthenticated:   http.StatusUnauthorized,
	CodePermissionDenied:  http.StatusForbidden,
	CodeResourceExhausted: http.StatusTooManyRequests,
	CodeUnavailable:       http.StatusServiceUnavailable,
	CodeInternal:          http.StatusInternalServerError,
}

func (c Code) String() string {
	return string(c)
}

// HTTPStatus is the status to answer with for c. Unknown codes are 500.
func (c Code) HTTPStatus() int {
	if status, ok := codeStatus[c]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// CodeFromHTTPStatus summarizes an upstream response status. Anything
// without a closer match is CodeUnavailable: the upstream failed, not us.
func CodeFromHTTPStatus(status int) Code {
	if status >= 200 && status < 300 {
		return CodeOK
	}

	switch status {
	case http.StatusNotFound, http.StatusGone:
		return CodeNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return CodeInvalidArgument
	case http.StatusUnauthorized:
		return CodeUnauthenticated
	case http.StatusForbidden:
		return CodePermissionDenied
	case http.StatusTooManyRequests:
		return CodeResourceExhausted
	case http.StatusRequestTimeout, http.StatusGatewayTimeout:
		return CodeDeadlineExceeded
	default:
		return CodeUnavailable
	}
}
