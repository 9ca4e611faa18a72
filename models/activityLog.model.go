package models

import (
	"time"

	"gorm.io/gorm"
)

// Activity action types
const (
	ActionCreated     = "CREATED"
	ActionSaved       = "SAVED"
	ActionSubmitted   = "SUBMITTED"
	ActionApproved    = "APPROVED"
	ActionRejected    = "REJECTED"
	ActionKycVerified = "KYC_VERIFIED"
)

// ActivityLog is the append-only audit trail. Rows are never updated or
// deleted; reads return the full history for an application newest-first.
type ActivityLog struct {
	gorm.Model
	EventID       string    `gorm:"type:varchar(36);uniqueIndex;not null"`
	ApplicationID uint      `gorm:"index;not null"`
	ActionType    string    `gorm:"not null"`
	Comment       string    `gorm:"default:''"`
	PerformedBy   uint      `gorm:"not null"` // staff user ID
	PerformedAt   time.Time `gorm:"index;not null"`
}
