package workflow

import (
	"fmt"
	"math/rand"
)

// Business identifier generators. These produce the human-readable IDs shown
// to staff; the gorm primary keys stay internal. Generation itself cannot
// fail and does not guarantee uniqueness — the store-level create loops
// regenerate on collision.

// GenerateCustID returns a customer ID in the form CUST-XXXXXX.
func GenerateCustID() string {
	return fmt.Sprintf("CUST-%06d", 100000+rand.Intn(900000))
}

// GenerateLeadID returns a lead ID in the form LEAD-XXXXXX. Lead IDs are
// always assigned server-side at application creation.
func GenerateLeadID() string {
	return fmt.Sprintf("LEAD-%06d", 100000+rand.Intn(900000))
}

// GenerateTempAppID returns a draft application ID in the form TEMP-XXXXX.
func GenerateTempAppID() string {
	return fmt.Sprintf("TEMP-%05d", 10000+rand.Intn(90000))
}

// GenerateAppID returns a final application ID in the form LOS-APP-XXXXX.
func GenerateAppID() string {
	return fmt.Sprintf("LOS-APP-%05d", 10000+rand.Intn(90000))
}
