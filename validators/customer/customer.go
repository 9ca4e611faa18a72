package customerValidator

import (
	"regexp"
	"strings"

	"los/middleware"

	"github.com/gofiber/fiber/v2"
)

func isValidPhone(phone string) bool {
	re := regexp.MustCompile(`^\d{10}$`)
	return re.MatchString(phone)
}

func isValidPincode(pincode string) bool {
	re := regexp.MustCompile(`^\d{6}$`)
	return re.MatchString(pincode)
}

func isValidAadhar(aadhar string) bool {
	re := regexp.MustCompile(`^\d{12}$`)
	return re.MatchString(aadhar)
}

func isValidPan(pan string) bool {
	re := regexp.MustCompile(`^[A-Z]{5}\d{4}[A-Z]$`)
	return re.MatchString(pan)
}

// CreateCustomer validator middleware for KYC intake
func CreateCustomer() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name         string `json:"name"`
			Phone        string `json:"phone"`
			PinCode      string `json:"pincode"`
			AadharNumber string `json:"aadharNumber"`
			PanNumber    string `json:"panNumber"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(strings.TrimSpace(reqData.Name)) < 3 {
			errors["name"] = "Name must be at least 3 characters long!"
		}

		if !isValidPhone(reqData.Phone) {
			errors["phone"] = "Invalid phone number!"
		}

		if !isValidPincode(reqData.PinCode) {
			errors["pincode"] = "Pincode must be 6 digits!"
		}

		// Aadhar and PAN are optional at intake
		if reqData.AadharNumber != "" && !isValidAadhar(reqData.AadharNumber) {
			errors["aadharNumber"] = "Aadhar number must be 12 digits!"
		}

		if reqData.PanNumber != "" && !isValidPan(reqData.PanNumber) {
			errors["panNumber"] = "Invalid PAN number!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCustomer", reqData)
		return c.Next()
	}
}

// UpdateKyc validator middleware
func UpdateKyc() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Verified *bool `json:"verified"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Verified == nil {
			errors["verified"] = "Verified flag is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedKyc", reqData)
		return c.Next()
	}
}
