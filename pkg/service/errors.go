package service

import "fmt"

// Kind classifies a service failure. The HTTP layer maps kinds to status codes.
type Kind int

const (
	// KindValidation is bad input; nothing was attempted.
	KindValidation Kind = iota + 1
	// KindUnavailable means no model is loaded. Retriable.
	KindUnavailable
	// KindInternal is a failure inside the model call.
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindUnavailable:
		return "unavailable"
	case KindInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// Error is returned by every Service operation that fails.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ErrModelNotLoaded is returned while the State is empty.
var ErrModelNotLoaded = &Error{Kind: KindUnavailable, Message: "Model not loaded"}

func validationError(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

func internalError(prefix string, err error) *Error {
	return &Error{Kind: KindInternal, Message: fmt.Sprintf("%s: %v", prefix, err), Err: err}
}
