package customerRoutes

import (
	customerControllers "los/controllers/customer"
	"los/middleware"
	"los/models"
	customerValidators "los/validators/customer"

	"github.com/gofiber/fiber/v2"
)

func SetupCustomerRoutes(app *fiber.App) {
	customerGroup := app.Group("/customers", middleware.JWTMiddleware)

	// Makers run KYC intake; checkers flip the verification flag.
	customerGroup.Post("/", customerValidators.CreateCustomer(), middleware.RequireRole(models.RoleSalesMaker), customerControllers.CreateCustomer)
	customerGroup.Get("/", customerControllers.ListCustomers)
	customerGroup.Patch("/:custId/kyc", customerValidators.UpdateKyc(), middleware.RequireRole(models.RoleSalesChecker), customerControllers.UpdateKyc)
	customerGroup.Post("/:custId/kyc/document", middleware.RequireRole(models.RoleSalesMaker), customerControllers.UploadKycDocument)
}
