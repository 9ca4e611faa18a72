package workflow

import (
	"errors"

	"los/models"

	"gorm.io/gorm"
)

// leadIDAttempts bounds the regenerate-on-collision loop for LeadID.
const leadIDAttempts = 5

// ValidLoanType reports whether loanType is one of the supported products.
func ValidLoanType(loanType string) bool {
	switch loanType {
	case models.LoanTypeGold, models.LoanTypeHome, models.LoanTypeBusiness, models.LoanTypePersonal:
		return true
	}
	return false
}

// CreateApplication opens a new DRAFT application for an existing customer.
// The lead ID is always generated server-side, and the customer's pincode is
// copied onto the application for territory-scoped queries.
func CreateApplication(db *gorm.DB, customerID uint, loanType string, actorID uint) (*models.Application, error) {
	if !ValidLoanType(loanType) {
		return nil, InvalidArgument("unknown loan type %q", loanType)
	}

	var customer models.Customer
	if err := db.First(&customer, customerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("customer %d not found", customerID)
		}
		return nil, Unavailable(err, "failed to load customer")
	}

	var app models.Application
	err := db.Transaction(func(tx *gorm.DB) error {
		leadID := ""
		for i := 0; i < leadIDAttempts; i++ {
			candidate := GenerateLeadID()
			err := tx.Where("lead_id = ?", candidate).First(&models.Application{}).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				leadID = candidate
				break
			}
			if err != nil {
				return Unavailable(err, "failed to check lead ID")
			}
		}
		if leadID == "" {
			return Conflict("could not allocate a unique lead ID")
		}

		app = models.Application{
			LeadID:     leadID,
			CustomerID: customer.ID,
			PinCode:    customer.PinCode,
			LoanType:   loanType,
			Status:     models.StatusDraft,
		}
		if err := tx.Create(&app).Error; err != nil {
			return Unavailable(err, "failed to create application")
		}

		return appendLog(tx, app.ID, models.ActionCreated, "Application created", actorID)
	})
	if err != nil {
		return nil, err
	}

	app.Customer = customer
	return &app, nil
}

// SaveDraft persists form sections while the application is still in DRAFT.
// The first save assigns TempAppID; later saves reuse it. Partial payloads
// overlay previously saved sections.
func SaveDraft(db *gorm.DB, id uint, form FormData, actorID uint) (*models.Application, error) {
	var app models.Application

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := loadApplication(tx, id, &app); err != nil {
			return err
		}
		if app.Status != models.StatusDraft {
			return PreconditionFailed("application %s is %s; drafts can no longer be saved", app.LeadID, app.Status)
		}

		stored, err := decodeFormData(app.FormData)
		if err != nil {
			return err
		}
		stored.Merge(form)

		raw, err := encodeFormData(stored)
		if err != nil {
			return err
		}
		app.FormData = raw

		if app.TempAppID == "" {
			app.TempAppID = GenerateTempAppID()
		}

		if err := tx.Save(&app).Error; err != nil {
			return Unavailable(err, "failed to save draft")
		}

		return appendLog(tx, app.ID, models.ActionSaved, "Application form saved", actorID)
	})
	if err != nil {
		return nil, err
	}

	return GetApplication(db, id)
}

// Submit moves a DRAFT application to FORM_SUBMITTED. All required sections
// for the loan type must be present after merging the payload with any saved
// draft. AppID is assigned here, exactly once, and never regenerated.
func Submit(db *gorm.DB, id uint, form FormData, actorID uint) (*models.Application, error) {
	var app models.Application

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := loadApplication(tx, id, &app); err != nil {
			return err
		}
		if app.Status != models.StatusDraft {
			return PreconditionFailed("application %s is %s; only drafts can be submitted", app.LeadID, app.Status)
		}

		stored, err := decodeFormData(app.FormData)
		if err != nil {
			return err
		}
		stored.Merge(form)

		if missing := stored.MissingSections(app.LoanType); len(missing) > 0 {
			return InvalidArgument("incomplete form, missing sections: %v", missing)
		}

		raw, err := encodeFormData(stored)
		if err != nil {
			return err
		}
		app.FormData = raw

		if app.AppID == "" {
			app.AppID = GenerateAppID()
		}
		app.Status = models.StatusFormSubmitted

		if err := tx.Save(&app).Error; err != nil {
			return Unavailable(err, "failed to submit application")
		}

		return appendLog(tx, app.ID, models.ActionSubmitted, "Application form submitted", actorID)
	})
	if err != nil {
		return nil, err
	}

	return GetApplication(db, id)
}

// Approve moves a FORM_SUBMITTED application to LOAN_APPROVED. The one hard
// business rule lives here: no loan is approved for an unverified customer,
// checked at approval time because KYC can be verified any time after
// submission.
func Approve(db *gorm.DB, id uint, actorID uint, comment string) (*models.Application, error) {
	if comment == "" {
		return nil, InvalidArgument("approval comment is required")
	}

	var app models.Application
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := loadApplication(tx, id, &app); err != nil {
			return err
		}
		if app.Status != models.StatusFormSubmitted {
			return PreconditionFailed("application %s is %s; only submitted applications can be approved", app.LeadID, app.Status)
		}

		var customer models.Customer
		if err := tx.First(&customer, app.CustomerID).Error; err != nil {
			return Unavailable(err, "failed to load customer")
		}
		if !customer.KycVerified {
			return PreconditionFailed("customer %s KYC not verified", customer.CustID)
		}

		app.Status = models.StatusLoanApproved
		if err := tx.Save(&app).Error; err != nil {
			return Unavailable(err, "failed to approve application")
		}

		return appendLog(tx, app.ID, models.ActionApproved, comment, actorID)
	})
	if err != nil {
		return nil, err
	}

	return GetApplication(db, id)
}

// Reject moves a FORM_SUBMITTED application to LOAN_REJECTED.
func Reject(db *gorm.DB, id uint, actorID uint, comment string) (*models.Application, error) {
	if comment == "" {
		return nil, InvalidArgument("rejection comment is required")
	}

	var app models.Application
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := loadApplication(tx, id, &app); err != nil {
			return err
		}
		if app.Status != models.StatusFormSubmitted {
			return PreconditionFailed("application %s is %s; only submitted applications can be rejected", app.LeadID, app.Status)
		}

		app.Status = models.StatusLoanRejected
		if err := tx.Save(&app).Error; err != nil {
			return Unavailable(err, "failed to reject application")
		}

		return appendLog(tx, app.ID, models.ActionRejected, comment, actorID)
	})
	if err != nil {
		return nil, err
	}

	return GetApplication(db, id)
}

// GetApplication returns one application with its owning customer embedded.
func GetApplication(db *gorm.DB, id uint) (*models.Application, error) {
	var app models.Application
	if err := db.Preload("Customer").First(&app, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("application %d not found", id)
		}
		return nil, Unavailable(err, "failed to load application")
	}
	return &app, nil
}

// FindApplicationByRef looks an application up by lead ID or final app ID.
func FindApplicationByRef(db *gorm.DB, ref string) (*models.Application, error) {
	var app models.Application
	err := db.Preload("Customer").
		Where("lead_id = ? OR app_id = ?", ref, ref).
		First(&app).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("application %s not found", ref)
		}
		return nil, Unavailable(err, "failed to look up application")
	}
	return &app, nil
}

// ApplicationsByPincode lists one territory's applications newest-created
// first, customers embedded. No match yields an empty slice, not an error.
func ApplicationsByPincode(db *gorm.DB, pincode string) ([]models.Application, error) {
	apps := []models.Application{}
	err := db.Preload("Customer").
		Where("pin_code = ?", pincode).
		Order("created_at DESC").
		Find(&apps).Error
	if err != nil {
		return nil, Unavailable(err, "failed to list applications")
	}
	return apps, nil
}

func loadApplication(tx *gorm.DB, id uint, app *models.Application) error {
	if err := tx.First(app, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotFound("application %d not found", id)
		}
		return Unavailable(err, "failed to load application")
	}
	return nil
}
