package errorutil

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes returned by core operations.
const (
	CodeAlreadyExists    = "ALREADY_EXISTS"
	CodeNotFound         = "NOT_FOUND"
	CodeWrongPassword    = "WRONG_PASSWORD"
	CodeNotLoggedIn      = "NOT_LOGGED_IN"
	CodeEmailMismatch    = "EMAIL_MISMATCH"
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeInternalError    = "INTERNAL_ERROR"
)

// DomainError standardizes application errors.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]any
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int, details map[string]any) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status, Details: details}
}

func NewValidationError(message string, details map[string]any) error {
	return NewDomainError(CodeValidationFailed, message, http.StatusBadRequest, details)
}

func NewNotFound(resource string, details map[string]any) error {
	if details == nil {
		details = map[string]any{}
	}
	return &DomainError{
		Code:       CodeNotFound,
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
		Details:    details,
	}
}

func NewAlreadyExists(resource string, details map[string]any) error {
	return NewDomainError(CodeAlreadyExists, fmt.Sprintf("%s already registered", resource), http.StatusConflict, details)
}

func NewWrongPassword() error {
	return NewDomainError(CodeWrongPassword, "wrong password", http.StatusUnauthorized, nil)
}

func NewNotLoggedIn() error {
	return NewDomainError(CodeNotLoggedIn, "please login first", http.StatusUnauthorized, nil)
}

func NewEmailMismatch() error {
	return NewDomainError(CodeEmailMismatch, "email must match logged-in user", http.StatusBadRequest, nil)
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:       CodeInternalError,
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return &DomainError{
		Code:       CodeInternalError,
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func MapError(err error) error {
	return ToDomainError(err)
}

// CodeOf extracts the error code, or empty string for nil/unknown errors.
func CodeOf(err error) string {
	if err == nil {
		return ""
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}
	return CodeInternalError
}

// HasCode reports whether err carries the given domain error code.
func HasCode(err error, code string) bool {
	return CodeOf(err) == code
}
