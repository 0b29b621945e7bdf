package catalogRepo

import "tidybee/models"

// CatalogRepository defines read access to the dynamic pricing catalog:
// the currently active pricing rules and bundle offers. Both record sets are
// owned by the admin screens; pricing only ever reads them.
type CatalogRepository interface {
	// ActiveRules retrieves all pricing rules flagged active.
	ActiveRules() ([]models.PricingRule, error)
	// ActiveBundles retrieves all bundle offers flagged active.
	ActiveBundles() ([]models.BundleOffer, error)
}
