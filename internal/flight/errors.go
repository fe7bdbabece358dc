package flight

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorCode string

const (
	ErrorCodeValidation       ErrorCode = "VALIDATION_ERROR"
	ErrorCodeUpstreamFailure  ErrorCode = "UPSTREAM_FAILURE"
	ErrorCodeSearchSuperseded ErrorCode = "SEARCH_SUPERSEDED"
	ErrorCodeInternalFailure  ErrorCode = "INTERNAL_FAILURE"
)

// AppError carries the HTTP status and machine-readable code for a failure.
type AppError struct {
	Status  int
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// ErrSupersededSearch is returned when a newer search from the same session
// started while this one was in flight. The result is still cached.
var ErrSupersededSearch = &AppError{
	Status:  http.StatusConflict,
	Code:    ErrorCodeSearchSuperseded,
	Message: "a newer search for this session is in progress",
}

func NewValidationError(msg string) *AppError {
	return &AppError{Status: http.StatusBadRequest, Code: ErrorCodeValidation, Message: msg}
}

func NewUpstreamError(err error) *AppError {
	return &AppError{
		Status:  http.StatusBadGateway,
		Code:    ErrorCodeUpstreamFailure,
		Message: "flight data provider unavailable",
		Err:     err,
	}
}

func IsValidationError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == ErrorCodeValidation
}
