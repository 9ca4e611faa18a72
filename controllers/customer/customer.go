package customerController

import (
	"log"
	"path/filepath"

	"los/config"
	"los/database"
	"los/middleware"
	"los/utils"
	"los/workflow"

	"github.com/gofiber/fiber/v2"
)

// workflowError maps a workflow error onto the JSON envelope, logging server
// faults only.
func workflowError(c *fiber.Ctx, err error) error {
	status := workflow.HTTPStatus(err)
	if status >= fiber.StatusInternalServerError {
		log.Printf("workflow error: %v", err)
	}
	return middleware.JsonResponse(c, status, false, workflow.ErrorMessage(err), nil)
}

// CreateCustomer handles KYC intake by a maker.
func CreateCustomer(c *fiber.Ctx) error {
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

	customer, err := workflow.CreateCustomer(database.Database.Db, workflow.CustomerInput{
		Name:         reqData.Name,
		Phone:        reqData.Phone,
		PinCode:      reqData.PinCode,
		AadharNumber: reqData.AadharNumber,
		PanNumber:    reqData.PanNumber,
	})
	if err != nil {
		return workflowError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Customer created successfully.", customer)
}

// ListCustomers serves exact lookups (custId, phone) and territory listings.
// Without an explicit pincode the caller's own territory is used.
func ListCustomers(c *fiber.Ctx) error {
	db := database.Database.Db

	if custID := c.Query("custId"); custID != "" {
		customer, err := workflow.FindCustomerByCustID(db, custID)
		if err != nil {
			return workflowError(c, err)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Customer found.", customer)
	}

	if phone := c.Query("phone"); phone != "" {
		customer, err := workflow.FindCustomerByPhone(db, phone)
		if err != nil {
			return workflowError(c, err)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Customer found.", customer)
	}

	pincode := c.Query("pincode")
	if pincode == "" {
		pincode, _ = c.Locals("pincode").(string)
	}

	customers, err := workflow.CustomersByPincode(db, pincode)
	if err != nil {
		return workflowError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Customers fetched successfully.", customers)
}

// UpdateKyc toggles the KYC flag for a customer (checker only) and fans the
// audit entry out to every owned application.
func UpdateKyc(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid user ID!", nil)
	}

	reqData := new(struct {
		Verified *bool `json:"verified"`
	})
	if err := c.BodyParser(reqData); err != nil || reqData.Verified == nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	customer, err := workflow.SetKycVerified(database.Database.Db, c.Params("custId"), *reqData.Verified, userID)
	if err != nil {
		return workflowError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "KYC status updated.", customer)
}

// UploadKycDocument stores an identity document for a customer.
func UploadKycDocument(c *fiber.Ctx) error {
	custID := c.Params("custId")

	file, err := c.FormFile("document")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "KYC document file is required!", nil)
	}

	destDir := filepath.Join(config.AppConfig.UploadDir, custID)
	path, err := utils.SaveUploadedFile(file, destDir)
	if err != nil {
		log.Printf("Error saving KYC document: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store KYC document!", nil)
	}

	customer, err := workflow.AttachKycDocument(database.Database.Db, custID, path)
	if err != nil {
		return workflowError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "KYC document uploaded.", customer)
}
