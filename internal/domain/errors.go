package domain

import (
	"errors"
	"fmt"
)

// ErrorKind is a stable machine-readable error identifier surfaced to API callers.
type ErrorKind string

const (
	KindValidation       ErrorKind = "validation_error"
	KindPermissionDenied ErrorKind = "permission_denied"
	KindInvalidState     ErrorKind = "invalid_state"
	KindDuplicateVote    ErrorKind = "duplicate_vote"
	KindNotFound         ErrorKind = "not_found"
	KindStorageFailure   ErrorKind = "storage_failure"
)

// Error carries an error kind plus a human-readable detail string.
type Error struct {
	Kind   ErrorKind
	Detail string
	Cause  error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Detail, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a domain error with the given kind and detail.
func NewError(kind ErrorKind, detail string) *Error {
	return &Error{Kind: kind, Detail: detail}
}

// WrapError creates a domain error wrapping an underlying cause.
func WrapError(kind ErrorKind, detail string, cause error) *Error {
	return &Error{Kind: kind, Detail: detail, Cause: cause}
}

// KindOf extracts the error kind from err, or "" if err is not a domain error.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return ""
}

// DetailOf extracts the detail string from err, or err.Error() otherwise.
func DetailOf(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Detail
	}
	if err != nil {
		return err.Error()
	}
	return ""
}
