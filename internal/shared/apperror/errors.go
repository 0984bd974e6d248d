// Package apperror defines the error taxonomy returned by the usecases and the
// gin middleware that renders it as the uniform error envelope.
package apperror

import (
	"fmt"
	"net/http"
)

// Kind classifies an Error and fixes its HTTP status.
type Kind int

const (
	KindUnexpected Kind = iota
	KindValidation
	KindNotFound
	KindUnauthenticated
	KindInvalidCredentials
	KindAccessDenied
	KindDuplicateEmail
	KindRateLimited
)

// Status returns the HTTP status code for k.
func (k Kind) Status() int {
	switch k {
	case KindValidation, KindDuplicateEmail:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindUnauthenticated, KindInvalidCredentials:
		return http.StatusUnauthorized
	case KindAccessDenied:
		return http.StatusForbidden
	case KindRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// Error is a classified failure. Details is only populated for validation failures.
type Error struct {
	Kind    Kind
	Message string
	Details map[string]string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same Kind, so errors.Is(err, ErrNotFound) holds
// for every not-found error regardless of its message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Sentinels, one per kind, for errors.Is checks.
var (
	ErrValidation         = &Error{Kind: KindValidation, Message: "validation error"}
	ErrNotFound           = &Error{Kind: KindNotFound, Message: "resource not found"}
	ErrUnauthenticated    = &Error{Kind: KindUnauthenticated, Message: "authentication required"}
	ErrInvalidCredentials = &Error{Kind: KindInvalidCredentials, Message: "invalid email or password"}
	ErrAccessDenied       = &Error{Kind: KindAccessDenied, Message: "access denied"}
	ErrDuplicateEmail     = &Error{Kind: KindDuplicateEmail, Message: "email is already in use"}
	ErrRateLimited        = &Error{Kind: KindRateLimited, Message: "too many requests"}
	ErrUnexpected         = &Error{Kind: KindUnexpected, Message: "an internal error occurred"}
)

// NotFound builds the not-found error for a resource looked up by field=value.
func NotFound(resource, field, value string) *Error {
	return &Error{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("%s not found with %s '%s'", resource, field, value),
	}
}

// Validation builds a validation error carrying one message per invalid field.
func Validation(details map[string]string) *Error {
	return &Error{Kind: KindValidation, Message: ErrValidation.Message, Details: details}
}

// FieldInvalid is a Validation error for a single field.
func FieldInvalid(field, msg string) *Error {
	return Validation(map[string]string{field: msg})
}

// Unexpected wraps an unclassified cause.
func Unexpected(err error) *Error {
	return &Error{Kind: KindUnexpected, Message: ErrUnexpected.Message, Err: err}
}
