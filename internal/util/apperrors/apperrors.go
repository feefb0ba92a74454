package apperrors

import (
	"errors"
)

// Kind classifies a business failure so controllers can pick the right
// HTTP status without matching on error strings.
type Kind int

const (
	KindUnexpected Kind = iota
	KindValidation
	KindUnauthenticated
	KindForbidden
	KindNotFound
	KindConflict
	KindRequiresInvite
)

type Error struct {
	Kind    Kind
	Message string
	// Fields holds field-level validation detail, rendered as "errors"
	Fields map[string]string
	// Details is merged into the response envelope (e.g. the target user
	// profile on a requires-invite failure)
	Details map[string]any
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unexpected error"
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func ValidationFields(message string, fields map[string]string) *Error {
	return &Error{Kind: KindValidation, Message: message, Fields: fields}
}

func Unauthenticated(message string) *Error {
	return &Error{Kind: KindUnauthenticated, Message: message}
}

func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func RequiresInvite(message string, details map[string]any) *Error {
	return &Error{Kind: KindRequiresInvite, Message: message, Details: details}
}

func Unexpected(err error) *Error {
	return &Error{Kind: KindUnexpected, Err: err}
}

func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnexpected
}
