package dto

import (
	"net/http"
	"strings"
)

// Standard API error codes
const (
	ErrCodeBadRequest   = "ERR_BAD_REQUEST"
	ErrCodeValidation   = "ERR_VALIDATION"
	ErrCodeUnauthorized = "ERR_UNAUTHORIZED"
	ErrCodeForbidden    = "ERR_FORBIDDEN"
	ErrCodeNotFound     = "ERR_NOT_FOUND"
	ErrCodeConflict     = "ERR_CONFLICT"
	ErrCodeInvalidState = "ERR_INVALID_STATE"
	ErrCodeInternal     = "ERR_INTERNAL"
)

// ErrorCodeHTTPStatus maps API error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeValidation:   http.StatusBadRequest,
	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeForbidden:    http.StatusForbidden,
	ErrCodeNotFound:     http.StatusNotFound,
	ErrCodeConflict:     http.StatusConflict,
	ErrCodeInvalidState: http.StatusUnprocessableEntity,
	ErrCodeInternal:     http.StatusInternalServerError,
}

// DomainErrorCodeMapping maps domain error codes to API error codes. Domain
// codes not listed here fall through to the prefix rules in
// NormalizeErrorCode.
var DomainErrorCodeMapping = map[string]string{
	"NOT_FOUND":            ErrCodeNotFound,
	"ALREADY_EXISTS":       ErrCodeConflict,
	"CONCURRENCY_CONFLICT": ErrCodeConflict,
	"DUPLICATE_ASSIGNMENT": ErrCodeConflict,
	"UNAUTHORIZED":         ErrCodeUnauthorized,
	"INVALID_CREDENTIALS":  ErrCodeUnauthorized,
	"ACCOUNT_DEACTIVATED":  ErrCodeUnauthorized,
	"FORBIDDEN":            ErrCodeForbidden,
	"INVALID_STATE":        ErrCodeInvalidState,
	"ALREADY_COMPLETED":    ErrCodeInvalidState,
	"ALREADY_PAID":         ErrCodeInvalidState,
	"INTERNAL_ERROR":       ErrCodeInternal,
	"PASSWORD_HASH_ERROR":  ErrCodeInternal,
}

// NormalizeErrorCode converts a domain error code into an API error code
func NormalizeErrorCode(code string) string {
	if strings.HasPrefix(code, "ERR_") {
		return code
	}
	if normalized, ok := DomainErrorCodeMapping[code]; ok {
		return normalized
	}
	if strings.HasPrefix(code, "INVALID_") {
		return ErrCodeValidation
	}
	return ErrCodeInternal
}

// GetHTTPStatus returns the HTTP status code for an API error code
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
