// Package workflow implements the loan-origination core: customer intake and
// KYC gating, the application status state machine, the append-only activity
// trail and the scoped read queries. Controllers stay thin HTTP adapters over
// this package.
package workflow

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Kind classifies workflow errors so callers can map them to a response code
// without string matching.
type Kind string

const (
	KindNotFound           Kind = "NOT_FOUND"
	KindInvalidArgument    Kind = "INVALID_ARGUMENT"
	KindPreconditionFailed Kind = "PRECONDITION_FAILED"
	KindConflict           Kind = "CONFLICT"
	KindUnavailable        Kind = "UNAVAILABLE"

	// KindPartialFailure marks a failed activity-log write. The surrounding
	// transaction rolls the primary mutation back, so the caller must not
	// report success.
	KindPartialFailure Kind = "PARTIAL_FAILURE"
)

// Error is a taxonomy-tagged workflow error.
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

func newError(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...interface{}) *Error {
	return newError(KindNotFound, format, args...)
}

func InvalidArgument(format string, args ...interface{}) *Error {
	return newError(KindInvalidArgument, format, args...)
}

func PreconditionFailed(format string, args ...interface{}) *Error {
	return newError(KindPreconditionFailed, format, args...)
}

func Conflict(format string, args ...interface{}) *Error {
	return newError(KindConflict, format, args...)
}

func Unavailable(err error, format string, args ...interface{}) *Error {
	e := newError(KindUnavailable, format, args...)
	e.Err = err
	return e
}

func PartialFailure(err error, format string, args ...interface{}) *Error {
	e := newError(KindPartialFailure, format, args...)
	e.Err = err
	return e
}

// KindOf returns the taxonomy kind of err, or "" for untagged errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// ErrorMessage returns the user-facing message of a workflow error. Wrapped
// store errors stay out of responses.
func ErrorMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "Something went wrong!"
}

// HTTPStatus maps a workflow error to a Fiber status code. Untagged errors
// are treated as server errors.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindNotFound:
		return fiber.StatusNotFound
	case KindInvalidArgument:
		return fiber.StatusBadRequest
	case KindPreconditionFailed:
		return fiber.StatusPreconditionFailed
	case KindConflict:
		return fiber.StatusConflict
	case KindUnavailable:
		return fiber.StatusServiceUnavailable
	case KindPartialFailure:
		return fiber.StatusInternalServerError
	default:
		return fiber.StatusInternalServerError
	}
}
