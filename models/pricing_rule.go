package models

// RuleType enumerates the closed set of dynamic pricing rule kinds. Adding a
// kind means extending this list and the evaluator's switch; unknown strings
// stored in the database never match anything.
type RuleType string

const (
	RuleTimeOfDay    RuleType = "time_of_day"
	RuleDayOfWeek    RuleType = "day_of_week"
	RuleDistance     RuleType = "distance"
	RuleLastMinute   RuleType = "last_minute"
	RuleHoliday      RuleType = "holiday"
	RuleFirstBooking RuleType = "first_booking_discount"
	RuleSurge        RuleType = "surge"
)

// RuleTypeOrder fixes the order rule types are evaluated in, which is also
// the order winning labels appear in the result.
var RuleTypeOrder = []RuleType{
	RuleTimeOfDay,
	RuleDayOfWeek,
	RuleDistance,
	RuleLastMinute,
	RuleHoliday,
	RuleFirstBooking,
	RuleSurge,
}

// RuleConditions carries the type-specific predicate parameters. Fields are
// pointers or slices so an absent bound simply goes unenforced.
type RuleConditions struct {
	StartHour      *int     `bson:"startHour,omitempty" json:"startHour,omitempty"` // time_of_day, inclusive
	EndHour        *int     `bson:"endHour,omitempty" json:"endHour,omitempty"`     // time_of_day, inclusive
	Days           []string `bson:"days,omitempty" json:"days,omitempty"`           // day_of_week; empty matches every day
	MinDistance    *float64 `bson:"minDistance,omitempty" json:"minDistance,omitempty"`
	MaxDistance    *float64 `bson:"maxDistance,omitempty" json:"maxDistance,omitempty"`
	ThresholdHours *float64 `bson:"thresholdHours,omitempty" json:"thresholdHours,omitempty"` // last_minute
	Dates          []string `bson:"dates,omitempty" json:"dates,omitempty"`                   // holiday, ISO date strings
}

// PricingRule is a dynamic pricing rule record. Within one rule type only the
// highest-priority matching rule applies; winners of different types compound
// multiplicatively.
type PricingRule struct {
	ID         string         `bson:"id" json:"id"`
	Active     bool           `bson:"active" json:"active"`
	Type       RuleType       `bson:"type" json:"type"`
	Conditions RuleConditions `bson:"conditions" json:"conditions"`
	Multiplier float64        `bson:"multiplier" json:"multiplier"`
	Priority   int            `bson:"priority" json:"priority"`
	Label      string         `bson:"label" json:"label"` // shown to the client when the rule applies
}
