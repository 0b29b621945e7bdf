package models

// BundleType enumerates the closed set of promotional bundle kinds.
type BundleType string

const (
	BundleMultiService  BundleType = "multi_service"
	BundleUpgradeUpsell BundleType = "upgrade_upsell"
	BundleMultiBooking  BundleType = "multi_booking"
)

// BundleConditions carries the type-specific predicate parameters for a
// bundle offer. Absent fields fall back to defaults rather than failing.
type BundleConditions struct {
	MinServices  *int    `bson:"minServices,omitempty" json:"minServices,omitempty"`   // multi_service; defaults to 2
	RequiredType *string `bson:"requiredType,omitempty" json:"requiredType,omitempty"` // upgrade_upsell; a cleaning type
}

// BundleOffer is a promotional bundle record. Unlike pricing rules, every
// matching bundle applies and their discounts sum.
type BundleOffer struct {
	ID              string           `bson:"id" json:"id"`
	Active          bool             `bson:"active" json:"active"`
	Type            BundleType       `bson:"type" json:"type"`
	Conditions      BundleConditions `bson:"conditions" json:"conditions"`
	PercentDiscount *float64         `bson:"percentDiscount,omitempty" json:"percentDiscount,omitempty"`
	FlatDiscountUSD *float64         `bson:"flatDiscountUsd,omitempty" json:"flatDiscountUsd,omitempty"` // display currency, converted to credits on apply
	Message         string           `bson:"message" json:"message"` // shown to the client when the bundle applies
}
