package errs

import (
	"errors"
	"fmt"
)

// Kind classifies a failure so callers can react without parsing messages.
type Kind string

const (
	KindEmptyField         Kind = "empty_field"
	KindInvalidAmount      Kind = "invalid_amount"
	KindUnknownCategory    Kind = "unknown_category"
	KindDuplicateAccount   Kind = "duplicate_account"
	KindAuthFailed         Kind = "auth_failed"
	KindInvalidDateRange   Kind = "invalid_date_range"
	KindCategoriesNotFound Kind = "categories_not_found"
	KindIOFailure          Kind = "io_failure"
)

// Error is a tagged validation or I/O failure surfaced to the caller.
type Error struct {
	Kind    Kind
	Message string
	Err     error // wrapped cause, nil for pure validation failures
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

// New creates a tagged error with a formatted message.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap tags an underlying error, keeping it reachable via errors.Unwrap.
func Wrap(kind Kind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}

// IsKind reports whether any error in the chain carries the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
