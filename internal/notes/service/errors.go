package service

import (
	"errors"
	"fmt"
)

// Kind classifies service failures. The HTTP layer maps each kind to a
// status code in one place.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindAuth
	KindNotFound
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuth:
		return "auth"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// Error is returned by every service operation. Message is safe to show to
// clients; Err holds the underlying cause, if any, and is only logged.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// MsgInternal is the client-facing message for every internal failure.
const MsgInternal = "Internal Server Error!"

func validationErr(msg string) *Error { return &Error{Kind: KindValidation, Message: msg} }
func notFoundErr(msg string) *Error   { return &Error{Kind: KindNotFound, Message: msg} }
func authErr(msg string) *Error       { return &Error{Kind: KindAuth, Message: msg} }
func conflictErr(msg string) *Error   { return &Error{Kind: KindConflict, Message: msg} }

// internalErr wraps an unexpected failure. The cause stays attached for logs.
func internalErr(op string, err error) *Error {
	return &Error{Kind: KindInternal, Message: MsgInternal, Err: fmt.Errorf("%s: %w", op, err)}
}

// KindOf returns the kind of err. Anything that is not a *Error is internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// IsKind reports whether err is a *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// MessageOf returns the client-facing message for err.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return MsgInternal
}
