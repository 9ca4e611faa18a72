package workflow

import (
	"fmt"
	"strings"
	"testing"

	"los/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// testDB opens a private in-memory database per test. The shared-cache DSN
// keeps every pooled connection on the same database.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Application{},
		&models.ActivityLog{},
	)
	require.NoError(t, err)

	return db
}

func seedCustomer(t *testing.T, db *gorm.DB, phone, pincode string) *models.Customer {
	t.Helper()

	customer, err := CreateCustomer(db, CustomerInput{
		Name:    "Ramesh Kumar",
		Phone:   phone,
		PinCode: pincode,
	})
	require.NoError(t, err)
	return customer
}

func seedApplication(t *testing.T, db *gorm.DB, customerID uint, loanType string) *models.Application {
	t.Helper()

	app, err := CreateApplication(db, customerID, loanType, 1)
	require.NoError(t, err)
	return app
}

// completeForm returns a form with every section required for loanType.
func completeForm(loanType string) FormData {
	f := FormData{
		Personal: &PersonalDetails{
			FullName:         "Ramesh Kumar",
			DOB:              "1985-04-12",
			Address:          "12 MG Road",
			City:             "Bengaluru",
			State:            "Karnataka",
			PinCode:          "560001",
			EmploymentStatus: "SALARIED",
			MonthlyIncome:    85000,
		},
		Account: &AccountDetails{
			BankName:    "State Bank of India",
			AccountNo:   "32100045678",
			HolderName:  "Ramesh Kumar",
			IFSCCode:    "SBIN0001234",
			BranchName:  "MG Road",
			AccountType: "savings",
		},
	}

	switch loanType {
	case models.LoanTypeGold:
		f.Gold = &GoldLoanDetails{GoldWeightGrams: 40, Purity: "22K", EstimatedValue: 250000, LoanAmount: 180000, TenureMonths: 12}
	case models.LoanTypeHome:
		f.Home = &HomeLoanDetails{PropertyAddress: "Flat 4B, Indiranagar", PropertyValue: 7500000, LoanAmount: 5000000, TenureMonths: 240}
	case models.LoanTypeBusiness:
		f.Business = &BusinessLoanDetails{BusinessName: "Kumar Traders", BusinessType: "Proprietorship", AnnualTurnover: 4000000, LoanAmount: 1000000, TenureMonths: 36}
	case models.LoanTypePersonal:
		f.PersonalLoan = &PersonalLoanDetails{LoanPurpose: "Medical expenses", LoanAmount: 200000, TenureMonths: 24}
	}
	return f
}

func countLogs(t *testing.T, db *gorm.DB, applicationID uint) int64 {
	t.Helper()

	var n int64
	err := db.Model(&models.ActivityLog{}).Where("application_id = ?", applicationID).Count(&n).Error
	require.NoError(t, err)
	return n
}
