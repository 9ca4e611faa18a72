package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentifierFormats(t *testing.T) {
	tests := []struct {
		name    string
		gen     func() string
		pattern string
	}{
		{"customer", GenerateCustID, `^CUST-\d{6}$`},
		{"lead", GenerateLeadID, `^LEAD-\d{6}$`},
		{"temp application", GenerateTempAppID, `^TEMP-\d{5}$`},
		{"final application", GenerateAppID, `^LOS-APP-\d{5}$`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 50; i++ {
				assert.Regexp(t, tt.pattern, tt.gen())
			}
		})
	}
}
