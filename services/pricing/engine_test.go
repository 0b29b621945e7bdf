package pricing

import (
	"reflect"
	"testing"
	"time"

	"tidybee/models"
)

type fakeCleanerRepo struct {
	card *models.CleanerRateCard
	err  error
}

func (f *fakeCleanerRepo) GetRateCard(id string) (*models.CleanerRateCard, error) {
	return f.card, f.err
}

type fakeClientRepo struct {
	clientCtx *models.ClientContext
	err       error
}

func (f *fakeClientRepo) GetPricingContext(id string) (*models.ClientContext, error) {
	return f.clientCtx, f.err
}

type fakeCatalog struct {
	rules   []models.PricingRule
	bundles []models.BundleOffer
}

func (f *fakeCatalog) ActiveRules() ([]models.PricingRule, error)   { return f.rules, nil }
func (f *fakeCatalog) ActiveBundles() ([]models.BundleOffer, error) { return f.bundles, nil }

func newTestEngine(card *models.CleanerRateCard, clientCtx *models.ClientContext, rules []models.PricingRule, bundles []models.BundleOffer) *DefaultPricingEngine {
	return &DefaultPricingEngine{
		CleanerRepo: &fakeCleanerRepo{card: card},
		ClientRepo:  &fakeClientRepo{clientCtx: clientCtx},
		Catalog:     &fakeCatalog{rules: rules, bundles: bundles},
		Now:         func() time.Time { return testNow },
	}
}

func proCard() *models.CleanerRateCard {
	return &models.CleanerRateCard{
		BaseHourlyRate:  300,
		DeepCleanRate:   50,
		MoveOutRate:     80,
		ServicePrices:   map[string]float64{"windows": 20, "oven": 50, "laundry": 30},
		ReliabilityTier: models.TierPro,
		PayoutPercent:   80,
	}
}

func TestBasicCleanProTierScenario(t *testing.T) {
	engine := newTestEngine(proCard(), nil, nil, nil)

	req := baseRequest()
	result, err := engine.CalculatePrice(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.EstimatedCredits != 990 {
		t.Errorf("got %d credits, want 990", result.EstimatedCredits)
	}
	if result.EstimatedUSD != 99.00 {
		t.Errorf("got $%v, want $99.00", result.EstimatedUSD)
	}
	if result.Breakdown.BaseHoursSubtotal != 900 {
		t.Errorf("got base-hours subtotal %d, want 900", result.Breakdown.BaseHoursSubtotal)
	}
	if result.Breakdown.TierMultiplier != 1.10 {
		t.Errorf("got tier multiplier %v, want 1.10", result.Breakdown.TierMultiplier)
	}
	if result.Breakdown.RuleMultiplier != 1.0 {
		t.Errorf("got rule multiplier %v, want 1.0", result.Breakdown.RuleMultiplier)
	}
	if len(result.AppliedDiscounts) != 0 {
		t.Errorf("got labels %v, want none", result.AppliedDiscounts)
	}
}

func TestDeepCleanFirstBookingScenario(t *testing.T) {
	card := proCard()
	card.ReliabilityTier = models.TierDeveloping

	firstBooking := activeRule("fb-1", models.RuleFirstBooking, 0.85, 1)
	firstBooking.Label = "First Booking - 15% Off"

	engine := newTestEngine(card, nil, []models.PricingRule{firstBooking}, nil)

	req := baseRequest()
	req.CleaningType = models.CleaningDeep
	req.Hours = 2

	result, err := engine.CalculatePrice(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Breakdown.BaseHoursSubtotal != 700 {
		t.Errorf("got base-hours subtotal %d, want 700", result.Breakdown.BaseHoursSubtotal)
	}
	if result.EstimatedCredits != 536 { // 700 * 0.90 * 0.85 = 535.5, rounded
		t.Errorf("got %d credits, want 536", result.EstimatedCredits)
	}
	found := false
	for _, label := range result.AppliedDiscounts {
		if label == "First Booking - 15% Off" {
			found = true
		}
	}
	if !found {
		t.Errorf("labels %v missing the first-booking rule label", result.AppliedDiscounts)
	}
}

func TestWeeklyRecurrenceScenario(t *testing.T) {
	card := proCard()
	card.BaseHourlyRate = 250
	card.ReliabilityTier = models.TierSemiPro

	engine := newTestEngine(card, nil, nil, nil)

	req := baseRequest()
	req.Hours = 4
	req.Frequency = models.FrequencyWeekly

	result, err := engine.CalculatePrice(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Breakdown.RecurrenceDiscount != 150 {
		t.Errorf("got recurrence discount %d, want 150", result.Breakdown.RecurrenceDiscount)
	}
	if result.EstimatedCredits != 850 {
		t.Errorf("got %d credits, want 850", result.EstimatedCredits)
	}
	found := false
	for _, label := range result.AppliedDiscounts {
		if label == "weekly Service - 15% Off" {
			found = true
		}
	}
	if !found {
		t.Errorf("labels %v missing the weekly recurrence label", result.AppliedDiscounts)
	}
}

func TestMissingRateCardFailsWithNotFound(t *testing.T) {
	engine := newTestEngine(nil, nil, nil, nil)

	_, err := engine.CalculatePrice(baseRequest())
	if err == nil {
		t.Fatal("expected an error for a cleaner without a rate card")
	}
	if !IsNotFound(err) {
		t.Errorf("got %v, want a not-found error", err)
	}
}

func TestMissingClientContextIsTolerated(t *testing.T) {
	engine := newTestEngine(proCard(), nil, nil, nil)

	result, err := engine.CalculatePrice(baseRequest())
	if err != nil {
		t.Fatalf("unexpected error for missing client context: %v", err)
	}
	if result.Breakdown.MembershipDiscount != 0 {
		t.Errorf("got membership discount %d, want 0", result.Breakdown.MembershipDiscount)
	}
}

func TestMembershipDiscountAppliedWithLabel(t *testing.T) {
	clientCtx := &models.ClientContext{
		ClientID:     "client-1",
		BookingCount: 12,
		Membership:   &models.Membership{Tier: "Gold", DiscountPercent: 10, Active: true},
	}
	engine := newTestEngine(proCard(), clientCtx, nil, nil)

	result, err := engine.CalculatePrice(baseRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.EstimatedCredits != 891 { // 990 - 10%
		t.Errorf("got %d credits, want 891", result.EstimatedCredits)
	}
	if result.Breakdown.MembershipDiscount != 99 {
		t.Errorf("got membership discount %d, want 99", result.Breakdown.MembershipDiscount)
	}
	found := false
	for _, label := range result.AppliedDiscounts {
		if label == "Gold Membership - 10% Off" {
			found = true
		}
	}
	if !found {
		t.Errorf("labels %v missing the membership label", result.AppliedDiscounts)
	}
}

func TestUnknownTierAndCleaningTypeFallBackToDefaults(t *testing.T) {
	card := proCard()
	card.ReliabilityTier = "Legendary"

	engine := newTestEngine(card, nil, nil, nil)

	req := baseRequest()
	req.CleaningType = "spring"

	result, err := engine.CalculatePrice(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.EstimatedCredits != 900 { // base rate only, multiplier 1.0
		t.Errorf("got %d credits, want 900", result.EstimatedCredits)
	}
}

func TestUnrecognizedServiceKeysAreIgnored(t *testing.T) {
	engine := newTestEngine(proCard(), nil, nil, nil)

	plain, err := engine.CalculatePrice(baseRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := baseRequest()
	req.Services = map[string]int{"chandelier_polish": 4}
	withUnknown, err := engine.CalculatePrice(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if withUnknown.EstimatedCredits != plain.EstimatedCredits {
		t.Errorf("unknown service key changed the price: %d vs %d", withUnknown.EstimatedCredits, plain.EstimatedCredits)
	}
}

func TestAddingServicesNeverDecreasesPrice(t *testing.T) {
	engine := newTestEngine(proCard(), nil, nil, nil)

	without, err := engine.CalculatePrice(baseRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := baseRequest()
	req.Services = map[string]int{"windows": 2, "oven": 1}
	with, err := engine.CalculatePrice(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if with.EstimatedCredits < without.EstimatedCredits {
		t.Errorf("adding services decreased the price: %d -> %d", without.EstimatedCredits, with.EstimatedCredits)
	}
}

func TestEnablingDiscountsNeverIncreasesPrice(t *testing.T) {
	base, err := newTestEngine(proCard(), nil, nil, nil).CalculatePrice(baseRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	clientCtx := &models.ClientContext{
		BookingCount: 5,
		Membership:   &models.Membership{Tier: "Silver", DiscountPercent: 5, Active: true},
	}
	bundle := activeBundle("mb-1", models.BundleMultiBooking)
	bundle.PercentDiscount = floatPtr(5)

	req := baseRequest()
	req.Frequency = models.FrequencyMonthly

	discounted, err := newTestEngine(proCard(), clientCtx, nil, []models.BundleOffer{bundle}).CalculatePrice(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if discounted.EstimatedCredits > base.EstimatedCredits {
		t.Errorf("discounts increased the price: %d -> %d", base.EstimatedCredits, discounted.EstimatedCredits)
	}
}

func TestFinalPriceNeverGoesNegative(t *testing.T) {
	bundle := activeBundle("mb-1", models.BundleMultiBooking)
	bundle.FlatDiscountUSD = floatPtr(100000)

	engine := newTestEngine(proCard(), nil, nil, []models.BundleOffer{bundle})

	result, err := engine.CalculatePrice(baseRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.EstimatedCredits != 0 {
		t.Errorf("got %d credits, want 0 after an oversized discount", result.EstimatedCredits)
	}
}

func TestRuleExclusivityVersusBundleStacking(t *testing.T) {
	low := activeRule("surge-low", models.RuleSurge, 1.1, 1)
	high := activeRule("surge-high", models.RuleSurge, 1.2, 9)

	multiBooking := activeBundle("mb-1", models.BundleMultiBooking)
	multiBooking.PercentDiscount = floatPtr(5)
	upsell := activeBundle("uu-1", models.BundleUpgradeUpsell)
	upsell.FlatDiscountUSD = floatPtr(2)

	engine := newTestEngine(proCard(), nil,
		[]models.PricingRule{low, high},
		[]models.BundleOffer{multiBooking, upsell})

	result, err := engine.CalculatePrice(baseRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Breakdown.RuleMultiplier != 1.2 {
		t.Errorf("got rule multiplier %v, want only the higher-priority surge rule", result.Breakdown.RuleMultiplier)
	}

	labels := map[string]bool{}
	for _, label := range result.AppliedDiscounts {
		labels[label] = true
	}
	if labels["surge-low label"] {
		t.Error("losing rule's label should not appear")
	}
	if !labels["surge-high label"] {
		t.Error("winning rule's label missing")
	}
	if !labels["mb-1 message"] || !labels["uu-1 message"] {
		t.Errorf("both bundle messages should appear, got %v", result.AppliedDiscounts)
	}
}

func TestCalculationIsDeterministic(t *testing.T) {
	clientCtx := &models.ClientContext{
		BookingCount: 0,
		Membership:   &models.Membership{Tier: "Gold", DiscountPercent: 10, Active: true},
	}
	rule := activeRule("fb-1", models.RuleFirstBooking, 0.9, 1)
	bundle := activeBundle("mb-1", models.BundleMultiBooking)
	bundle.PercentDiscount = floatPtr(5)

	engine := newTestEngine(proCard(), clientCtx, []models.PricingRule{rule}, []models.BundleOffer{bundle})

	req := baseRequest()
	req.Services = map[string]int{"windows": 3, "laundry": 1}
	req.Frequency = models.FrequencyBiweekly

	first, err := engine.CalculatePrice(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := engine.CalculatePrice(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("identical inputs produced different results:\n%+v\n%+v", first, second)
	}
}

func TestConversionConstantRoundTrip(t *testing.T) {
	engine := newTestEngine(proCard(), nil, nil, nil)

	for hours := 1.0; hours <= 6; hours += 0.5 {
		req := baseRequest()
		req.Hours = hours
		result, err := engine.CalculatePrice(req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.EstimatedUSD != float64(result.EstimatedCredits)/10 {
			t.Errorf("hours %v: USD %v is not credits %d / 10", hours, result.EstimatedUSD, result.EstimatedCredits)
		}
	}
}

func TestSnapshotFreezesRateCardValues(t *testing.T) {
	card := proCard()
	engine := newTestEngine(card, nil, nil, nil)

	result, err := engine.CalculatePrice(baseRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Mutating the live rate card must not reach the audit snapshot.
	card.ServicePrices["windows"] = 999

	if result.Snapshot.ServicePrices["windows"] != 20 {
		t.Errorf("snapshot price changed with the rate card: got %v, want 20", result.Snapshot.ServicePrices["windows"])
	}
	if result.Snapshot.BaseHourlyRate != 300 || result.Snapshot.ReliabilityTier != models.TierPro {
		t.Errorf("snapshot missing rate-card values: %+v", result.Snapshot)
	}
}
