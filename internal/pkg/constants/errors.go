package constants

import "net/http"

// CodedError carries an HTTP status code alongside the message so the API
// error handler can map service failures without string matching.
type CodedError struct {
	code int
	msg  string
}

func NewCodedError(code int, msg string) *CodedError {
	return &CodedError{code: code, msg: msg}
}

func (e *CodedError) Error() string {
	return e.msg
}

func (e *CodedError) Code() int {
	return e.code
}

var (
	ErrDBNotFound        = NewCodedError(http.StatusNotFound, "not found")
	ErrUnauthorized      = NewCodedError(http.StatusUnauthorized, "unauthorized")
	ErrMissingAuthCookie = NewCodedError(http.StatusUnauthorized, "missing auth cookie")
	ErrBadRequest        = NewCodedError(http.StatusBadRequest, "bad request")
	ErrUnknownYear       = NewCodedError(http.StatusNotFound, "no data for requested year")
	ErrInvalidCell       = NewCodedError(http.StatusBadRequest, "invalid cell id")
	ErrCompanyNotFound   = NewCodedError(http.StatusNotFound, "company not found")
)
