package pricing

import (
	"strconv"
	"strings"
	"time"

	"tidybee/models"
)

// defaultLastMinuteHours applies when a last_minute rule carries no threshold.
const defaultLastMinuteHours = 24.0

// RuleOutcome is the combined result of evaluating the dynamic pricing rules
// against one booking.
type RuleOutcome struct {
	Multiplier float64
	Labels     []string
}

// EvaluateRules tests every active rule against the booking, keeps the
// highest-priority match per rule type, and compounds the winners'
// multipliers. Labels come back in rule-type evaluation order.
//
// On equal priority within a type the rule with the lowest ID wins, so the
// outcome does not depend on fetch order.
func EvaluateRules(req models.BookingRequest, clientCtx *models.ClientContext, rules []models.PricingRule, now time.Time) RuleOutcome {
	winners := make(map[models.RuleType]*models.PricingRule)
	for i := range rules {
		rule := &rules[i]
		if !rule.Active || !ruleMatches(rule, req, clientCtx, now) {
			continue
		}
		current := winners[rule.Type]
		if current == nil || rule.Priority > current.Priority ||
			(rule.Priority == current.Priority && rule.ID < current.ID) {
			winners[rule.Type] = rule
		}
	}

	outcome := RuleOutcome{Multiplier: 1.0}
	for _, ruleType := range models.RuleTypeOrder {
		winner := winners[ruleType]
		if winner == nil {
			continue
		}
		outcome.Multiplier *= winner.Multiplier
		outcome.Labels = append(outcome.Labels, winner.Label)
	}
	return outcome
}

// ruleMatches tests a single rule's type-specific predicate. Absent condition
// bounds go unenforced; a rule type this build does not know never matches.
func ruleMatches(rule *models.PricingRule, req models.BookingRequest, clientCtx *models.ClientContext, now time.Time) bool {
	cond := rule.Conditions

	switch rule.Type {
	case models.RuleTimeOfDay:
		hour, ok := parseStartHour(req.StartTime)
		if !ok {
			return false
		}
		if cond.StartHour != nil && hour < *cond.StartHour {
			return false
		}
		if cond.EndHour != nil && hour > *cond.EndHour {
			return false
		}
		return true

	case models.RuleDayOfWeek:
		if len(cond.Days) == 0 {
			return true
		}
		date, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return false
		}
		weekday := date.Weekday().String()
		for _, day := range cond.Days {
			if strings.EqualFold(day, weekday) {
				return true
			}
		}
		return false

	case models.RuleDistance:
		distance := 0.0
		if req.DistanceMiles != nil {
			distance = *req.DistanceMiles
		}
		if cond.MinDistance != nil && distance < *cond.MinDistance {
			return false
		}
		if cond.MaxDistance != nil && distance > *cond.MaxDistance {
			return false
		}
		return true

	case models.RuleLastMinute:
		threshold := defaultLastMinuteHours
		if cond.ThresholdHours != nil {
			threshold = *cond.ThresholdHours
		}
		start, ok := parseScheduledStart(req.Date, req.StartTime)
		if !ok {
			return false
		}
		return start.Sub(now).Hours() <= threshold

	case models.RuleHoliday:
		for _, date := range cond.Dates {
			if date == req.Date {
				return true
			}
		}
		return false

	case models.RuleFirstBooking:
		return clientCtx == nil || clientCtx.BookingCount == 0

	case models.RuleSurge:
		// Placeholder: surge rules currently match every booking. Real
		// demand-based gating is pending a product decision.
		return true
	}

	return false
}

// parseStartHour extracts the hour from a 24h "HH:MM" string.
func parseStartHour(startTime string) (int, bool) {
	parts := strings.SplitN(startTime, ":", 2)
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, false
	}
	return hour, true
}

// parseScheduledStart combines the booking's date and start time.
func parseScheduledStart(date, startTime string) (time.Time, bool) {
	start, err := time.Parse("2006-01-02 15:04", date+" "+startTime)
	if err != nil {
		return time.Time{}, false
	}
	return start, true
}
