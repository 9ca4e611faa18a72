package customerValidator

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, validator fiber.Handler, body string) int {
	t.Helper()

	app := fiber.New()
	app.Post("/t", validator, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("POST", "/t", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestCreateCustomerValidator(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"valid minimal", `{"name": "Ramesh Kumar", "phone": "9876543210", "pincode": "560001"}`, fiber.StatusOK},
		{"valid with ids", `{"name": "Ramesh Kumar", "phone": "9876543210", "pincode": "560001", "aadharNumber": "123412341234", "panNumber": "ABCDE1234F"}`, fiber.StatusOK},
		{"short name", `{"name": "R", "phone": "9876543210", "pincode": "560001"}`, fiber.StatusUnprocessableEntity},
		{"bad phone", `{"name": "Ramesh Kumar", "phone": "98765", "pincode": "560001"}`, fiber.StatusUnprocessableEntity},
		{"bad pincode", `{"name": "Ramesh Kumar", "phone": "9876543210", "pincode": "56"}`, fiber.StatusUnprocessableEntity},
		{"bad aadhar", `{"name": "Ramesh Kumar", "phone": "9876543210", "pincode": "560001", "aadharNumber": "12"}`, fiber.StatusUnprocessableEntity},
		{"bad pan", `{"name": "Ramesh Kumar", "phone": "9876543210", "pincode": "560001", "panNumber": "nope"}`, fiber.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, run(t, CreateCustomer(), tt.body))
		})
	}
}

func TestUpdateKycValidator(t *testing.T) {
	assert.Equal(t, fiber.StatusOK, run(t, UpdateKyc(), `{"verified": true}`))
	assert.Equal(t, fiber.StatusOK, run(t, UpdateKyc(), `{"verified": false}`))
	assert.Equal(t, fiber.StatusUnprocessableEntity, run(t, UpdateKyc(), `{}`))
}
