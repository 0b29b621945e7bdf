package clientRepo

import "tidybee/models"

// ClientRepository defines read access to client profiles for pricing.
type ClientRepository interface {
	// GetPricingContext retrieves the client's active membership and historical
	// booking count. A missing client yields (nil, nil) so pricing can proceed
	// with no discount eligibility; errors are reserved for storage failures.
	GetPricingContext(id string) (*models.ClientContext, error)
}
