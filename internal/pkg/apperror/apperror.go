package apperror

import (
	"errors"
	"fmt"

	goerrors "github.com/go-errors/errors"
)

type Type string

const (
	TypeValidation  Type = "VALIDATION"
	TypeUnavailable Type = "UNAVAILABLE"
	TypeInternal    Type = "INTERNAL"
)

const (
	MessageUnavailable = "Prediction models are not available. Please contact support."
	MessageInternal    = "An error occurred while processing your request. Please try again."
)

// Error is what the prediction flow returns to delivery code. Message is safe
// to show to users; Err and Stack are for logs only.
type Error struct {
	Type    Type
	Message string
	Err     error
	Stack   []byte
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(message string, err error) *Error {
	return &Error{Type: TypeValidation, Message: message, Err: err}
}

func Unavailable(err error) *Error {
	return &Error{Type: TypeUnavailable, Message: MessageUnavailable, Err: err}
}

// Internal captures the stack of err so operators can trace it.
func Internal(err error) *Error {
	var stack []byte
	var ge *goerrors.Error
	if errors.As(err, &ge) {
		stack = ge.Stack()
	} else if err != nil {
		stack = goerrors.Wrap(err, 1).Stack()
	} else {
		stack = goerrors.New(MessageInternal).Stack()
	}
	return &Error{Type: TypeInternal, Message: MessageInternal, Err: err, Stack: stack}
}

func TypeOf(err error) Type {
	var e *Error
	if errors.As(err, &e) {
		return e.Type
	}
	return TypeInternal
}

// PublicMessage never exposes internal detail.
func PublicMessage(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Type != TypeInternal && e.Message != "" {
		return e.Message
	}
	return MessageInternal
}
