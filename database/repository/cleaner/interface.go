package cleanerRepo

import "tidybee/models"

// CleanerRepository defines read access to cleaner profiles for pricing.
type CleanerRepository interface {
	// GetRateCard retrieves the rate card embedded in a cleaner profile.
	// A missing cleaner or a profile without a rate card yields (nil, nil);
	// errors are reserved for storage failures.
	GetRateCard(id string) (*models.CleanerRateCard, error)
}
