package models

import (
	"gorm.io/gorm"
)

// Customer is a loan customer created through KYC intake.
// CustID is the external identifier shown to staff (CUST-XXXXXX); the
// gorm.Model ID stays internal.
type Customer struct {
	gorm.Model
	CustID       string `gorm:"uniqueIndex;not null"`
	Name         string `gorm:"not null"`
	Phone        string `gorm:"uniqueIndex;not null"`
	PinCode      string `gorm:"index;not null"`
	AadharNumber string `gorm:"default:''"`
	PanNumber    string `gorm:"default:''"`
	KycVerified  bool   `gorm:"default:false"` // toggled only by the checker KYC operation
	KycDocument  string `gorm:"default:''"`    // stored path of the uploaded KYC document
}
