package workflow

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(NotFound("x")))
	assert.Equal(t, KindConflict, KindOf(Conflict("x")))
	assert.Equal(t, Kind(""), KindOf(errors.New("plain")))

	// Wrapped workflow errors keep their kind
	wrapped := fmt.Errorf("context: %w", PreconditionFailed("kyc"))
	assert.Equal(t, KindPreconditionFailed, KindOf(wrapped))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{NotFound("x"), fiber.StatusNotFound},
		{InvalidArgument("x"), fiber.StatusBadRequest},
		{PreconditionFailed("x"), fiber.StatusPreconditionFailed},
		{Conflict("x"), fiber.StatusConflict},
		{Unavailable(errors.New("db"), "x"), fiber.StatusServiceUnavailable},
		{PartialFailure(errors.New("log"), "x"), fiber.StatusInternalServerError},
		{errors.New("plain"), fiber.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.status, HTTPStatus(tt.err))
	}
}

func TestErrorMessage(t *testing.T) {
	err := Unavailable(errors.New("connection refused"), "failed to load customer")
	assert.Equal(t, "failed to load customer", ErrorMessage(err))
	assert.NotContains(t, ErrorMessage(err), "connection refused")

	assert.Equal(t, "Something went wrong!", ErrorMessage(errors.New("plain")))
}
