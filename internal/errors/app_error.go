package errors

import (
	"errors"
	"net/http"
)

// AppError is the tagged error carried through the service. Code is the
// machine-readable kind callers match on (the storefront never inspects
// free-form error shapes), Message is safe to show to the shopper.
type AppError struct {
	Code       string
	Message    string
	Detail     string
	StatusCode int
	Err        error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

func (e *AppError) WithDetail(detail string) *AppError {
	e.Detail = detail

	return e
}

func (e *AppError) WithError(err error) *AppError {
	e.Err = err

	return e
}

const (
	ErrCodeValidation   = "VALIDATION_ERROR"
	ErrCodeBadRequest   = "BAD_REQUEST"
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeForbidden    = "FORBIDDEN"
	ErrCodeInternal     = "INTERNAL_ERROR"
	ErrCodeNetwork      = "NETWORK_ERROR"
	ErrCodeUpstream     = "UPSTREAM_ERROR"
	ErrCodeCache        = "CACHE_ERROR"
)

func BadRequestError(message string) *AppError {
	return NewAppError(ErrCodeBadRequest, message, http.StatusBadRequest)
}

func NotFoundError(message string) *AppError {
	return NewAppError(ErrCodeNotFound, message, http.StatusNotFound)
}

func UnauthorizedError(message string) *AppError {
	return NewAppError(ErrCodeUnauthorized, message, http.StatusUnauthorized)
}

func ForbiddenError(message string) *AppError {
	return NewAppError(ErrCodeForbidden, message, http.StatusForbidden)
}

func InternalError(message string) *AppError {
	return NewAppError(ErrCodeInternal, message, http.StatusInternalServerError)
}

// NetworkError covers transport failures reaching the commerce API: the call
// never produced a decodable envelope.
func NetworkError(message string) *AppError {
	return NewAppError(ErrCodeNetwork, message, http.StatusBadGateway)
}

// UpstreamError covers commerce API responses that arrived but reported
// success=false; Message carries the upstream's own message when present.
func UpstreamError(message string, statusCode int) *AppError {
	if statusCode == 0 {
		statusCode = http.StatusBadGateway
	}

	return NewAppError(ErrCodeUpstream, message, statusCode)
}

func CacheError(message string) *AppError {
	return NewAppError(ErrCodeCache, message, http.StatusInternalServerError)
}

func IsAppError(err error) (*AppError, bool) {
	var appError *AppError

	if errors.As(err, &appError) {
		return appError, true
	}

	return nil, false
}

// Message extracts a shopper-safe message from any error, falling back to a
// generic line for errors that are not AppErrors.
func Message(err error) string {
	if appErr, ok := IsAppError(err); ok && appErr.Message != "" {
		return appErr.Message
	}

	return "Something went wrong. Please try again."
}
