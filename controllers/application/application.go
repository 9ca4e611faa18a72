package applicationController

import (
	"log"

	"los/database"
	"los/middleware"
	"los/models"
	"los/workflow"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func workflowError(c *fiber.Ctx, err error) error {
	status := workflow.HTTPStatus(err)
	if status >= fiber.StatusInternalServerError {
		log.Printf("workflow error: %v", err)
	}
	return middleware.JsonResponse(c, status, false, workflow.ErrorMessage(err), nil)
}

func actorID(c *fiber.Ctx) (uint, bool) {
	userID, ok := c.Locals("userId").(uint)
	return userID, ok
}

func applicationID(c *fiber.Ctx) (uint, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}

// CreateApplication opens a new DRAFT application for a customer.
func CreateApplication(c *fiber.Ctx) error {
	userID, ok := actorID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid user ID!", nil)
	}

	reqData := new(struct {
		CustomerID uint   `json:"customerId"`
		LoanType   string `json:"loanType"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	app, err := workflow.CreateApplication(database.Database.Db, reqData.CustomerID, reqData.LoanType, userID)
	if err != nil {
		return workflowError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Application created successfully.", app)
}

// ListApplications serves territory listings and exact leadId/appId lookups,
// customers embedded. Without an explicit pincode the caller's own territory
// is used.
func ListApplications(c *fiber.Ctx) error {
	db := database.Database.Db

	if ref := c.Query("ref"); ref != "" {
		app, err := workflow.FindApplicationByRef(db, ref)
		if err != nil {
			return workflowError(c, err)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Application found.", app)
	}

	pincode := c.Query("pincode")
	if pincode == "" {
		pincode, _ = c.Locals("pincode").(string)
	}

	apps, err := workflow.ApplicationsByPincode(db, pincode)
	if err != nil {
		return workflowError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Applications fetched successfully.", apps)
}

// GetApplication returns one application with its customer embedded.
func GetApplication(c *fiber.Ctx) error {
	id, ok := applicationID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid application ID!", nil)
	}

	app, err := workflow.GetApplication(database.Database.Db, id)
	if err != nil {
		return workflowError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Application found.", app)
}

// SaveDraft persists form sections while the application is in DRAFT.
func SaveDraft(c *fiber.Ctx) error {
	userID, ok := actorID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid user ID!", nil)
	}

	id, ok := applicationID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid application ID!", nil)
	}

	var form workflow.FormData
	if err := c.BodyParser(&form); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	app, err := workflow.SaveDraft(database.Database.Db, id, form, userID)
	if err != nil {
		return workflowError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Draft saved successfully.", app)
}

// SubmitApplication moves a DRAFT application to FORM_SUBMITTED.
func SubmitApplication(c *fiber.Ctx) error {
	userID, ok := actorID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid user ID!", nil)
	}

	id, ok := applicationID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid application ID!", nil)
	}

	var form workflow.FormData
	if err := c.BodyParser(&form); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	app, err := workflow.Submit(database.Database.Db, id, form, userID)
	if err != nil {
		return workflowError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Application submitted successfully.", app)
}

// ApproveApplication approves a submitted application (checker only). The
// workflow rejects it with a precondition error while the customer's KYC is
// unverified.
func ApproveApplication(c *fiber.Ctx) error {
	return decide(c, workflow.Approve, "Application approved.")
}

// RejectApplication rejects a submitted application (checker only).
func RejectApplication(c *fiber.Ctx) error {
	return decide(c, workflow.Reject, "Application rejected.")
}

func decide(
	c *fiber.Ctx,
	op func(db *gorm.DB, id uint, actorID uint, comment string) (*models.Application, error),
	message string,
) error {
	userID, ok := actorID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid user ID!", nil)
	}

	id, ok := applicationID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid application ID!", nil)
	}

	reqData := new(struct {
		Comment string `json:"comment"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	app, err := op(database.Database.Db, id, userID, reqData.Comment)
	if err != nil {
		return workflowError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, message, app)
}

// ListActivities returns the audit history of an application, newest-first.
func ListActivities(c *fiber.Ctx) error {
	id, ok := applicationID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid application ID!", nil)
	}

	logs, err := workflow.Activities(database.Database.Db, id)
	if err != nil {
		return workflowError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Activities fetched successfully.", logs)
}
