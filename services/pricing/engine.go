package pricing

import (
	"fmt"
	"math"
	"sync"

	"tidybee/models"
	"tidybee/utils"
)

// TierMultipliers maps a cleaner's reliability tier to its price multiplier.
// Unknown or missing tiers fall back to 1.0.
var TierMultipliers = map[string]float64{
	models.TierDeveloping: 0.90,
	models.TierSemiPro:    1.00,
	models.TierPro:        1.10,
	models.TierElite:      1.20,
}

// recurrencePercents maps a recurrence frequency to its discount percentage.
var recurrencePercents = map[string]float64{
	models.FrequencyWeekly:   15,
	models.FrequencyBiweekly: 10,
	models.FrequencyMonthly:  5,
}

// CalculatePrice derives a quote for the booking from the current rate-card,
// membership, rule and bundle snapshots. It fails only when the cleaner has
// no rate card or a snapshot read fails outright; a missing client simply
// means no membership and no prior bookings.
func (e *DefaultPricingEngine) CalculatePrice(req models.BookingRequest) (*models.PricingResult, error) {
	// The four reads are independent, so fetch them concurrently.
	var (
		card       *models.CleanerRateCard
		clientCtx  *models.ClientContext
		rules      []models.PricingRule
		bundles    []models.BundleOffer
		cardErr    error
		clientErr  error
		rulesErr   error
		bundlesErr error
	)
	var wg sync.WaitGroup
	wg.Add(4)
	go func() { defer wg.Done(); card, cardErr = e.CleanerRepo.GetRateCard(req.CleanerID) }()
	go func() { defer wg.Done(); clientCtx, clientErr = e.ClientRepo.GetPricingContext(req.ClientID) }()
	go func() { defer wg.Done(); rules, rulesErr = e.Catalog.ActiveRules() }()
	go func() { defer wg.Done(); bundles, bundlesErr = e.Catalog.ActiveBundles() }()
	wg.Wait()

	if cardErr != nil {
		return nil, fmt.Errorf("failed to load rate card for cleaner %s: %w", req.CleanerID, cardErr)
	}
	if card == nil {
		return nil, NewNotFoundError("cleaner rate card", req.CleanerID)
	}
	if clientErr != nil {
		return nil, fmt.Errorf("failed to load client context for %s: %w", req.ClientID, clientErr)
	}
	if rulesErr != nil {
		return nil, fmt.Errorf("failed to load pricing rules: %w", rulesErr)
	}
	if bundlesErr != nil {
		return nil, fmt.Errorf("failed to load bundle offers: %w", bundlesErr)
	}

	var labels []string

	// Stage 1: base-hours subtotal from the core hourly rate.
	baseHours := coreHourlyRate(card, req.CleaningType) * req.Hours

	// Stage 2: extras subtotal from per-unit add-on prices.
	extras := extrasSubtotal(card, req.Services)

	// Stage 3: reliability tier multiplier.
	tierMult := tierMultiplier(card.ReliabilityTier)
	price := (baseHours + extras) * tierMult

	// Stage 4: dynamic rule multiplier.
	ruleOutcome := EvaluateRules(req, clientCtx, rules, e.now())
	price *= ruleOutcome.Multiplier
	labels = append(labels, ruleOutcome.Labels...)

	// Stage 5: membership discount.
	membershipDiscount := 0.0
	if clientCtx != nil && clientCtx.Membership != nil && clientCtx.Membership.DiscountPercent > 0 {
		m := clientCtx.Membership
		membershipDiscount = price * m.DiscountPercent / 100
		price = math.Max(price-membershipDiscount, 0)
		labels = append(labels, fmt.Sprintf("%s Membership - %v%% Off", m.Tier, m.DiscountPercent))
	}

	// Stage 6: recurrence discount.
	recurrenceDiscount := 0.0
	if pct := recurrencePercents[req.Frequency]; pct > 0 {
		recurrenceDiscount = price * pct / 100
		price = math.Max(price-recurrenceDiscount, 0)
		labels = append(labels, fmt.Sprintf("%s Service - %v%% Off", req.Frequency, pct))
	}

	// Stage 7: bundle discounts, clamped so the price never goes negative.
	bundleOutcome := EvaluateBundles(req, bundles, price, extras)
	bundleDiscount := math.Min(bundleOutcome.Discount, price)
	price = math.Max(price-bundleOutcome.Discount, 0)
	labels = append(labels, bundleOutcome.Labels...)

	// Stage 8: finalize.
	finalCredits := utils.RoundCredits(price)
	if labels == nil {
		labels = []string{}
	}

	return &models.PricingResult{
		EstimatedCredits: finalCredits,
		EstimatedUSD:     utils.CreditsToUSD(float64(finalCredits)),
		AppliedDiscounts: labels,
		Breakdown: models.PriceBreakdown{
			BaseHoursSubtotal:  utils.RoundCredits(baseHours),
			ExtrasSubtotal:     utils.RoundCredits(extras),
			TierMultiplier:     tierMult,
			RuleMultiplier:     ruleOutcome.Multiplier,
			MembershipDiscount: utils.RoundCredits(membershipDiscount),
			RecurrenceDiscount: utils.RoundCredits(recurrenceDiscount),
			BundleDiscount:     utils.RoundCredits(bundleDiscount),
			FinalAmount:        finalCredits,
		},
		Snapshot: models.RateSnapshot{
			BaseHourlyRate:  card.BaseHourlyRate,
			DeepCleanRate:   card.DeepCleanRate,
			MoveOutRate:     card.MoveOutRate,
			ServicePrices:   cloneServicePrices(card.ServicePrices),
			ReliabilityTier: card.ReliabilityTier,
			TierMultiplier:  tierMult,
			RuleMultiplier:  ruleOutcome.Multiplier,
			PayoutPercent:   card.PayoutPercent,
		},
	}, nil
}

// coreHourlyRate selects the hourly rate for the cleaning type. Unknown types
// price as basic rather than failing.
func coreHourlyRate(card *models.CleanerRateCard, cleaningType string) float64 {
	switch cleaningType {
	case models.CleaningDeep:
		return card.BaseHourlyRate + card.DeepCleanRate
	case models.CleaningMoveOut:
		return card.BaseHourlyRate + card.MoveOutRate
	default:
		return card.BaseHourlyRate
	}
}

// extrasSubtotal sums per-unit add-on prices over the requested quantities.
// Keys without a rate-card price, and keys outside the fixed add-on set,
// contribute nothing.
func extrasSubtotal(card *models.CleanerRateCard, services map[string]int) float64 {
	total := 0.0
	for _, key := range models.AdditionalServiceKeys {
		qty := services[key]
		if qty <= 0 {
			continue
		}
		total += float64(qty) * card.ServicePrices[key]
	}
	return total
}

// tierMultiplier looks up the reliability tier multiplier, defaulting to 1.0.
func tierMultiplier(tier string) float64 {
	if mult, ok := TierMultipliers[tier]; ok {
		return mult
	}
	return 1.0
}

// cloneServicePrices copies the rate card's price map so the snapshot stays
// frozen even if the caller mutates the card afterwards.
func cloneServicePrices(prices map[string]float64) map[string]float64 {
	cloned := make(map[string]float64, len(prices))
	for key, price := range prices {
		cloned[key] = price
	}
	return cloned
}
