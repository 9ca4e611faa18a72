package applicationRoutes

import (
	applicationControllers "los/controllers/application"
	"los/middleware"
	"los/models"
	applicationValidators "los/validators/application"

	"github.com/gofiber/fiber/v2"
)

func SetupApplicationRoutes(app *fiber.App) {
	appGroup := app.Group("/applications", middleware.JWTMiddleware)

	// Makers drive the form lifecycle; checkers decide.
	appGroup.Post("/", applicationValidators.CreateApplication(), middleware.RequireRole(models.RoleSalesMaker), applicationControllers.CreateApplication)
	appGroup.Get("/", applicationControllers.ListApplications)
	appGroup.Get("/:id", applicationControllers.GetApplication)
	appGroup.Patch("/:id/save", middleware.RequireRole(models.RoleSalesMaker), applicationControllers.SaveDraft)
	appGroup.Patch("/:id/submit", middleware.RequireRole(models.RoleSalesMaker), applicationControllers.SubmitApplication)
	appGroup.Patch("/:id/approve", applicationValidators.Decision(), middleware.RequireRole(models.RoleSalesChecker), applicationControllers.ApproveApplication)
	appGroup.Patch("/:id/reject", applicationValidators.Decision(), middleware.RequireRole(models.RoleSalesChecker), applicationControllers.RejectApplication)
	appGroup.Get("/:id/activities", applicationControllers.ListActivities)
}
