package workflow

import (
	"encoding/json"

	"los/models"

	"gorm.io/datatypes"
)

// Form sections. A complete application carries personal details, the loan
// section matching its loan type, and bank account details. Draft saves may
// send any subset; sections overlay previously saved ones.

type PersonalDetails struct {
	FullName         string  `json:"fullName"`
	DOB              string  `json:"dob"`
	Address          string  `json:"address"`
	City             string  `json:"city"`
	State            string  `json:"state"`
	PinCode          string  `json:"pincode"`
	EmploymentStatus string  `json:"employmentStatus"`
	MonthlyIncome    float64 `json:"monthlyIncome"`
}

type AccountDetails struct {
	BankName    string `json:"bankName"`
	AccountNo   string `json:"accountNo"`
	HolderName  string `json:"holderName"`
	IFSCCode    string `json:"ifscCode"`
	BranchName  string `json:"branchName"`
	AccountType string `json:"accountType"`
}

type GoldLoanDetails struct {
	GoldWeightGrams float64 `json:"goldWeightGrams"`
	Purity          string  `json:"purity"`
	EstimatedValue  float64 `json:"estimatedValue"`
	LoanAmount      float64 `json:"loanAmount"`
	TenureMonths    int     `json:"tenureMonths"`
}

type HomeLoanDetails struct {
	PropertyAddress string  `json:"propertyAddress"`
	PropertyValue   float64 `json:"propertyValue"`
	LoanAmount      float64 `json:"loanAmount"`
	TenureMonths    int     `json:"tenureMonths"`
}

type BusinessLoanDetails struct {
	BusinessName   string  `json:"businessName"`
	BusinessType   string  `json:"businessType"`
	AnnualTurnover float64 `json:"annualTurnover"`
	LoanAmount     float64 `json:"loanAmount"`
	TenureMonths   int     `json:"tenureMonths"`
}

type PersonalLoanDetails struct {
	LoanPurpose  string  `json:"loanPurpose"`
	LoanAmount   float64 `json:"loanAmount"`
	TenureMonths int     `json:"tenureMonths"`
}

// FormData is the typed form document stored on an application. Exactly one
// loan-specific section is relevant, keyed by the application's loan type.
type FormData struct {
	Personal     *PersonalDetails     `json:"personalDetails,omitempty"`
	Gold         *GoldLoanDetails     `json:"goldLoanDetails,omitempty"`
	Home         *HomeLoanDetails     `json:"homeLoanDetails,omitempty"`
	Business     *BusinessLoanDetails `json:"businessLoanDetails,omitempty"`
	PersonalLoan *PersonalLoanDetails `json:"personalLoanDetails,omitempty"`
	Account      *AccountDetails      `json:"accountDetails,omitempty"`
}

// hasLoanSection reports whether the section matching loanType is present.
func (f *FormData) hasLoanSection(loanType string) bool {
	switch loanType {
	case models.LoanTypeGold:
		return f.Gold != nil
	case models.LoanTypeHome:
		return f.Home != nil
	case models.LoanTypeBusiness:
		return f.Business != nil
	case models.LoanTypePersonal:
		return f.PersonalLoan != nil
	}
	return false
}

// MissingSections lists the required sections absent for loanType. Empty
// means the form is complete enough to submit.
func (f *FormData) MissingSections(loanType string) []string {
	var missing []string
	if f.Personal == nil {
		missing = append(missing, "personalDetails")
	}
	if !f.hasLoanSection(loanType) {
		missing = append(missing, "loanDetails")
	}
	if f.Account == nil {
		missing = append(missing, "accountDetails")
	}
	return missing
}

// Merge overlays the non-nil sections of in onto f. Used by draft saves so a
// partial payload never wipes previously saved sections.
func (f *FormData) Merge(in FormData) {
	if in.Personal != nil {
		f.Personal = in.Personal
	}
	if in.Gold != nil {
		f.Gold = in.Gold
	}
	if in.Home != nil {
		f.Home = in.Home
	}
	if in.Business != nil {
		f.Business = in.Business
	}
	if in.PersonalLoan != nil {
		f.PersonalLoan = in.PersonalLoan
	}
	if in.Account != nil {
		f.Account = in.Account
	}
}

// decodeFormData parses the stored JSON column. A NULL column yields the
// zero form.
func decodeFormData(raw datatypes.JSON) (FormData, error) {
	var f FormData
	if len(raw) == 0 {
		return f, nil
	}
	if err := json.Unmarshal(raw, &f); err != nil {
		return f, InvalidArgument("malformed stored form data: %v", err)
	}
	return f, nil
}

// encodeFormData serializes a form for the JSON column.
func encodeFormData(f FormData) (datatypes.JSON, error) {
	raw, err := json.Marshal(f)
	if err != nil {
		return nil, InvalidArgument("failed to encode form data: %v", err)
	}
	return datatypes.JSON(raw), nil
}
