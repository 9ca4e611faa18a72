package applicationValidator

import (
	"strings"

	"los/middleware"
	"los/workflow"

	"github.com/gofiber/fiber/v2"
)

// CreateApplication validator middleware
func CreateApplication() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CustomerID uint   `json:"customerId"`
			LoanType   string `json:"loanType"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.CustomerID == 0 {
			errors["customerId"] = "Customer ID is required!"
		}

		if !workflow.ValidLoanType(reqData.LoanType) {
			errors["loanType"] = "Loan type must be GOLD_LOAN, HOME_LOAN, BUSINESS_LOAN or PERSONAL_LOAN!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedApplication", reqData)
		return c.Next()
	}
}

// Decision validator middleware for approve/reject requests
func Decision() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Comment string `json:"comment"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Comment) == "" {
			errors["comment"] = "A comment is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedDecision", reqData)
		return c.Next()
	}
}
