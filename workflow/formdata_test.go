package workflow

import (
	"testing"

	"los/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMissingSections(t *testing.T) {
	tests := []struct {
		name     string
		loanType string
		form     FormData
		missing  []string
	}{
		{
			name:     "empty form",
			loanType: models.LoanTypeGold,
			form:     FormData{},
			missing:  []string{"personalDetails", "loanDetails", "accountDetails"},
		},
		{
			name:     "complete gold loan",
			loanType: models.LoanTypeGold,
			form:     completeForm(models.LoanTypeGold),
			missing:  nil,
		},
		{
			name:     "loan section for the wrong product",
			loanType: models.LoanTypeHome,
			form:     completeForm(models.LoanTypeGold),
			missing:  []string{"loanDetails"},
		},
		{
			name:     "account details absent",
			loanType: models.LoanTypePersonal,
			form: FormData{
				Personal:     completeForm(models.LoanTypePersonal).Personal,
				PersonalLoan: completeForm(models.LoanTypePersonal).PersonalLoan,
			},
			missing: []string{"accountDetails"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.missing, tt.form.MissingSections(tt.loanType))
		})
	}
}

func TestFormDataMerge(t *testing.T) {
	full := completeForm(models.LoanTypeBusiness)

	var f FormData
	f.Merge(FormData{Personal: full.Personal})
	f.Merge(FormData{Business: full.Business})

	assert.NotNil(t, f.Personal)
	assert.NotNil(t, f.Business)
	assert.Nil(t, f.Account)

	// A later section replaces the earlier one
	replacement := &PersonalDetails{FullName: "Changed Name"}
	f.Merge(FormData{Personal: replacement})
	assert.Equal(t, "Changed Name", f.Personal.FullName)
}

func TestFormDataRoundTrip(t *testing.T) {
	form := completeForm(models.LoanTypeHome)

	raw, err := encodeFormData(form)
	require.NoError(t, err)

	decoded, err := decodeFormData(raw)
	require.NoError(t, err)
	assert.Equal(t, form, decoded)

	// NULL column decodes to the zero form
	empty, err := decodeFormData(nil)
	require.NoError(t, err)
	assert.Equal(t, FormData{}, empty)
}
