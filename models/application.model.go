package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Loan types
const (
	LoanTypeGold     = "GOLD_LOAN"
	LoanTypeHome     = "HOME_LOAN"
	LoanTypeBusiness = "BUSINESS_LOAN"
	LoanTypePersonal = "PERSONAL_LOAN"
)

// Application statuses
const (
	StatusDraft         = "DRAFT"
	StatusFormSubmitted = "FORM_SUBMITTED"
	StatusLoanApproved  = "LOAN_APPROVED"
	StatusLoanRejected  = "LOAN_REJECTED"
)

// Application is a loan application owned by exactly one customer.
//
// LeadID is assigned at creation and never changes. TempAppID is assigned on
// the first draft save, AppID exactly once at submission; neither is ever
// regenerated.
type Application struct {
	gorm.Model
	LeadID     string `gorm:"uniqueIndex;not null"`
	TempAppID  string `gorm:"index;default:''"`
	AppID      string `gorm:"index;default:''"`
	CustomerID uint   `gorm:"index;not null"`
	Customer   Customer
	PinCode    string         `gorm:"index;not null"` // copied from customer at creation
	LoanType   string         `gorm:"not null"`
	Status     string         `gorm:"default:'DRAFT'"`
	FormData   datatypes.JSON `gorm:"default:NULL"`
}

// IsTerminal reports whether no further status change is allowed.
func (a *Application) IsTerminal() bool {
	return a.Status == StatusLoanApproved || a.Status == StatusLoanRejected
}
