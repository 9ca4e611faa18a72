package models

import (
	"time"

	"gorm.io/gorm"
)

// Staff roles
const (
	RoleSalesMaker   = "SALES_MAKER"
	RoleSalesChecker = "SALES_CHECKER"
)

// User is a staff account (maker or checker), not a loan customer.
type User struct {
	gorm.Model
	Name      string    `gorm:"default:''"`
	Email     string    `gorm:"unique;not null"`
	Mobile    string    `gorm:"default:''"`
	Role      string    `gorm:"default:'SALES_MAKER'"` // SALES_MAKER or SALES_CHECKER
	Password  string    `gorm:"not null"`
	PinCode   string    `gorm:"index"` // assigned sales territory
	LastLogin time.Time `gorm:"default:NULL"`
	IsDeleted bool      `gorm:"default:false"`
}
