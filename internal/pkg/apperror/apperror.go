// Package apperror defines the error taxonomy shared by services and the HTTP layer.
// Services return *apperror.Error; the error middleware maps it to a status code and a
// JSON body with a human-readable detail string. Anything else surfaces as a 500.
package apperror

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

type Kind int

const (
	InvalidArgument Kind = iota
	Unauthorized
	Forbidden
	NotFound
	Conflict
	Internal
)

type Error struct {
	Kind   Kind
	Detail string
	Err    error // wrapped cause, never exposed to the client
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Detail, e.Err)
	}
	return e.Detail
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New builds an error with a client-visible detail message.
func New(kind Kind, detail string) *Error {
	return &Error{Kind: kind, Detail: detail}
}

// Wrap attaches an internal cause. Detail is what the client sees.
func Wrap(kind Kind, detail string, err error) *Error {
	return &Error{Kind: kind, Detail: detail, Err: err}
}

// StatusCode maps the taxonomy to HTTP. Conflict maps to 400, not 409: existing
// clients expect a 400 on duplicate email signup.
func (e *Error) StatusCode() int {
	switch e.Kind {
	case InvalidArgument, Conflict:
		return fiber.StatusBadRequest
	case Unauthorized:
		return fiber.StatusUnauthorized
	case Forbidden:
		return fiber.StatusForbidden
	case NotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// As extracts an *Error from an error chain.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
