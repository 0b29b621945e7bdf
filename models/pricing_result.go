package models

// PriceBreakdown itemizes the stages of a price calculation. Every credit
// subtotal is rounded to the nearest whole credit independently, so the line
// items can drift from FinalAmount by a credit or two; the breakdown is for
// display and audit, FinalAmount is authoritative.
type PriceBreakdown struct {
	BaseHoursSubtotal  int64   `bson:"baseHoursSubtotal" json:"baseHoursSubtotal"`
	ExtrasSubtotal     int64   `bson:"extrasSubtotal" json:"extrasSubtotal"`
	TierMultiplier     float64 `bson:"tierMultiplier" json:"tierMultiplier"`
	RuleMultiplier     float64 `bson:"ruleMultiplier" json:"ruleMultiplier"`
	MembershipDiscount int64   `bson:"membershipDiscount" json:"membershipDiscount"`
	RecurrenceDiscount int64   `bson:"recurrenceDiscount" json:"recurrenceDiscount"`
	BundleDiscount     int64   `bson:"bundleDiscount" json:"bundleDiscount"`
	FinalAmount        int64   `bson:"finalAmount" json:"finalAmount"`
}

// RateSnapshot freezes the exact rate-card values and multipliers a quote was
// computed from, so the quote stays auditable after the rate card changes.
type RateSnapshot struct {
	BaseHourlyRate  float64            `bson:"baseHourlyRate" json:"baseHourlyRate"`
	DeepCleanRate   float64            `bson:"deepCleanRate" json:"deepCleanRate"`
	MoveOutRate     float64            `bson:"moveOutRate" json:"moveOutRate"`
	ServicePrices   map[string]float64 `bson:"servicePrices" json:"servicePrices"`
	ReliabilityTier string             `bson:"reliabilityTier" json:"reliabilityTier"`
	TierMultiplier  float64            `bson:"tierMultiplier" json:"tierMultiplier"`
	RuleMultiplier  float64            `bson:"ruleMultiplier" json:"ruleMultiplier"`
	PayoutPercent   float64            `bson:"payoutPercent" json:"payoutPercent"`
}

// PricingResult is the full output of a price calculation. The caller renders
// it and, when the booking is actually created, persists it verbatim as the
// booking's pricing snapshot.
type PricingResult struct {
	EstimatedCredits int64          `bson:"estimated_price_credits" json:"estimated_price_credits"`
	EstimatedUSD     float64        `bson:"estimated_price_usd" json:"estimated_price_usd"`
	AppliedDiscounts []string       `bson:"appliedDiscounts" json:"appliedDiscounts"`
	Breakdown        PriceBreakdown `bson:"breakdown" json:"breakdown"`
	Snapshot         RateSnapshot   `bson:"snapshot" json:"snapshot"`
}
