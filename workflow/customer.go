package workflow

import (
	"errors"
	"strings"

	"los/models"

	"gorm.io/gorm"
)

// CustomerInput is the KYC intake payload.
type CustomerInput struct {
	Name         string
	Phone        string
	PinCode      string
	AadharNumber string
	PanNumber    string
}

// custIDAttempts bounds the regenerate-on-collision loop for CustID.
const custIDAttempts = 5

// CreateCustomer registers a customer through KYC intake. Phone, and Aadhar/
// PAN when provided, must not already be registered. KycVerified always
// starts false.
func CreateCustomer(db *gorm.DB, in CustomerInput) (*models.Customer, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Phone = strings.TrimSpace(in.Phone)
	in.PinCode = strings.TrimSpace(in.PinCode)
	if in.Name == "" || in.Phone == "" || in.PinCode == "" {
		return nil, InvalidArgument("name, phone and pincode are required")
	}

	// Duplicate pre-checks
	if err := db.Where("phone = ?", in.Phone).First(&models.Customer{}).Error; err == nil {
		return nil, Conflict("phone %s is already registered", in.Phone)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, Unavailable(err, "failed to check phone")
	}
	if in.AadharNumber != "" {
		if err := db.Where("aadhar_number = ?", in.AadharNumber).First(&models.Customer{}).Error; err == nil {
			return nil, Conflict("aadhar number is already registered")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, Unavailable(err, "failed to check aadhar number")
		}
	}
	if in.PanNumber != "" {
		if err := db.Where("pan_number = ?", in.PanNumber).First(&models.Customer{}).Error; err == nil {
			return nil, Conflict("PAN number is already registered")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, Unavailable(err, "failed to check PAN number")
		}
	}

	// The generator is random, so uniqueness is enforced here: regenerate
	// while the candidate is taken.
	custID := ""
	for i := 0; i < custIDAttempts; i++ {
		candidate := GenerateCustID()
		err := db.Where("cust_id = ?", candidate).First(&models.Customer{}).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			custID = candidate
			break
		}
		if err != nil {
			return nil, Unavailable(err, "failed to check customer ID")
		}
	}
	if custID == "" {
		return nil, Conflict("could not allocate a unique customer ID")
	}

	customer := models.Customer{
		CustID:       custID,
		Name:         in.Name,
		Phone:        in.Phone,
		PinCode:      in.PinCode,
		AadharNumber: in.AadharNumber,
		PanNumber:    in.PanNumber,
		KycVerified:  false,
	}
	if err := db.Create(&customer).Error; err != nil {
		return nil, Unavailable(err, "failed to create customer")
	}

	return &customer, nil
}

// SetKycVerified toggles the KYC flag and fans one KYC_VERIFIED activity row
// out to every application owned by the customer. Flag update and fan-out
// commit together or not at all.
func SetKycVerified(db *gorm.DB, custID string, verified bool, actorID uint) (*models.Customer, error) {
	var customer models.Customer

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cust_id = ?", custID).First(&customer).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFound("customer %s not found", custID)
			}
			return Unavailable(err, "failed to load customer")
		}

		customer.KycVerified = verified
		if err := tx.Save(&customer).Error; err != nil {
			return Unavailable(err, "failed to update KYC flag")
		}

		var apps []models.Application
		if err := tx.Where("customer_id = ?", customer.ID).Find(&apps).Error; err != nil {
			return Unavailable(err, "failed to load applications for KYC fan-out")
		}

		comment := "KYC verified"
		if !verified {
			comment = "KYC verification revoked"
		}
		for _, app := range apps {
			if err := appendLog(tx, app.ID, models.ActionKycVerified, comment, actorID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &customer, nil
}

// AttachKycDocument records the stored path of an uploaded KYC document.
func AttachKycDocument(db *gorm.DB, custID, path string) (*models.Customer, error) {
	var customer models.Customer
	if err := db.Where("cust_id = ?", custID).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("customer %s not found", custID)
		}
		return nil, Unavailable(err, "failed to load customer")
	}

	customer.KycDocument = path
	if err := db.Save(&customer).Error; err != nil {
		return nil, Unavailable(err, "failed to save KYC document path")
	}
	return &customer, nil
}

// FindCustomerByCustID looks a customer up by the external CUST- identifier.
func FindCustomerByCustID(db *gorm.DB, custID string) (*models.Customer, error) {
	return findCustomer(db, "cust_id = ?", custID)
}

// FindCustomerByPhone looks a customer up by phone number.
func FindCustomerByPhone(db *gorm.DB, phone string) (*models.Customer, error) {
	return findCustomer(db, "phone = ?", phone)
}

func findCustomer(db *gorm.DB, query string, arg string) (*models.Customer, error) {
	var customer models.Customer
	if err := db.Where(query, arg).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("customer not found")
		}
		return nil, Unavailable(err, "failed to look up customer")
	}
	return &customer, nil
}

// CustomersByPincode lists the customers of one sales territory,
// newest-created first. No match yields an empty slice, not an error.
func CustomersByPincode(db *gorm.DB, pincode string) ([]models.Customer, error) {
	customers := []models.Customer{}
	err := db.Where("pin_code = ?", pincode).
		Order("created_at DESC").
		Find(&customers).Error
	if err != nil {
		return nil, Unavailable(err, "failed to list customers")
	}
	return customers, nil
}
