// Package apperr holds the error taxonomy shared by validators, services and
// controllers.
package apperr

import (
	"errors"
	"fmt"
	"strings"
)

type ErrCode string

const (
	ErrValidation        ErrCode = "VALIDATION_FAILED"
	ErrNotFound          ErrCode = "NOT_FOUND"
	ErrInvalidTransition ErrCode = "INVALID_TRANSITION"
	ErrConflict          ErrCode = "INTEGRITY_CONFLICT"
	ErrUnexpected        ErrCode = "UNEXPECTED"
)

// FieldError is a single-field rejection.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string { return e.Message }

// Error is the coded rejection returned by services.
type Error struct {
	Code    ErrCode
	Message string
	Fields  []FieldError
	Details []string
	cause   error
}

func (e *Error) Error() string {
	switch {
	case len(e.Fields) > 0:
		msgs := make([]string, len(e.Fields))
		for i, f := range e.Fields {
			msgs[i] = f.Message
		}
		return e.Message + ": " + strings.Join(msgs, "; ")
	case len(e.Details) > 0:
		return e.Message + ": " + strings.Join(e.Details, "; ")
	case e.cause != nil:
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

// Messages lists the human messages carried by the error, one per problem.
func (e *Error) Messages() []string {
	if len(e.Fields) > 0 {
		out := make([]string, len(e.Fields))
		for i, f := range e.Fields {
			out[i] = f.Message
		}
		return out
	}
	if len(e.Details) > 0 {
		return append([]string(nil), e.Details...)
	}
	return []string{e.Message}
}

func Validation(fields ...FieldError) error {
	return &Error{Code: ErrValidation, Message: "Validation failed", Fields: fields}
}

func NotFound(msg string, details ...string) error {
	return &Error{Code: ErrNotFound, Message: msg, Details: details}
}

// Missing reports every unresolved reference at once, or nil when there are
// none.
func Missing(msgs []string) error {
	switch len(msgs) {
	case 0:
		return nil
	case 1:
		return NotFound(msgs[0])
	}
	return NotFound("Referenced records not found", msgs...)
}

func InvalidTransition(msg string) error {
	return &Error{Code: ErrInvalidTransition, Message: msg}
}

func Conflict(msg string, details ...string) error {
	return &Error{Code: ErrConflict, Message: msg, Details: details}
}

func Unexpected(err error) error {
	return &Error{Code: ErrUnexpected, Message: "unexpected persistence failure", cause: err}
}

// Code extracts the error code, or "" for errors outside the taxonomy.
func Code(err error) ErrCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// As returns the coded error wrapped in err, if any.
func As(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}

// Fields returns the field errors of a validation failure.
func Fields(err error) []FieldError {
	if e, ok := As(err); ok {
		return e.Fields
	}
	return nil
}

func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}
