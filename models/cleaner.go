package models

import "time"

// Reliability tiers a cleaner can hold. The tier feeds a fixed price
// multiplier in the pricing engine.
const (
	TierDeveloping = "Developing"
	TierSemiPro    = "Semi Pro"
	TierPro        = "Pro"
	TierElite      = "Elite"
)

// AdditionalServiceKeys is the fixed set of add-on services a rate card can
// price. Quantities for keys outside this list are ignored by the engine.
var AdditionalServiceKeys = []string{
	"windows",
	"blinds",
	"oven",
	"refrigerator",
	"light_fixtures",
	"inside_cabinets",
	"baseboards",
	"laundry",
}

// CleanerRateCard is the pricing portion of a cleaner profile. The engine
// reads it as an immutable snapshot; ownership and lifecycle stay with the
// cleaner-profile service.
type CleanerRateCard struct {
	BaseHourlyRate  float64            `bson:"baseHourlyRate" json:"baseHourlyRate"`   // credits per hour
	DeepCleanRate   float64            `bson:"deepCleanRate" json:"deepCleanRate"`     // hourly add-on for deep cleans
	MoveOutRate     float64            `bson:"moveOutRate" json:"moveOutRate"`         // hourly add-on for move-out cleans
	ServicePrices   map[string]float64 `bson:"servicePrices" json:"servicePrices"`     // per-unit credits, keyed by AdditionalServiceKeys
	ReliabilityTier string             `bson:"reliabilityTier" json:"reliabilityTier"` // Developing | Semi Pro | Pro | Elite
	PayoutPercent   float64            `bson:"payoutPercent" json:"payoutPercent"`
}

// Cleaner is the subset of a cleaner profile document the pricing subsystem
// reads. The full profile is owned elsewhere.
type Cleaner struct {
	ID        string           `bson:"id" json:"id"`
	Name      string           `bson:"name" json:"name,omitempty"`
	RateCard  *CleanerRateCard `bson:"rateCard" json:"rateCard,omitempty"`
	UpdatedAt time.Time        `bson:"updatedAt" json:"updatedAt,omitzero"`
}
