package pricing

import (
	"tidybee/models"
	"tidybee/utils"
)

// defaultMinBundleServices applies when a multi_service bundle carries no minimum.
const defaultMinBundleServices = 2

// BundleOutcome is the combined result of evaluating the active bundle offers
// against one booking. Discount is in credits.
type BundleOutcome struct {
	Discount float64
	Labels   []string
}

// EvaluateBundles tests every active bundle offer against the booking and
// sums the discounts of all matches. There is no priority resolution between
// bundles: stacking is intentional, in contrast to rule evaluation.
//
// Percentage discounts apply to the extras subtotal for multi_service offers
// and to the running price for everything else; flat discounts are quoted in
// display currency and converted to credits.
func EvaluateBundles(req models.BookingRequest, bundles []models.BundleOffer, currentPrice, extrasSubtotal float64) BundleOutcome {
	var outcome BundleOutcome
	for i := range bundles {
		bundle := &bundles[i]
		if !bundle.Active || !bundleMatches(bundle, req) {
			continue
		}

		if bundle.PercentDiscount != nil {
			base := currentPrice
			if bundle.Type == models.BundleMultiService {
				base = extrasSubtotal
			}
			outcome.Discount += base * (*bundle.PercentDiscount) / 100
		}
		if bundle.FlatDiscountUSD != nil {
			outcome.Discount += utils.USDToCredits(*bundle.FlatDiscountUSD)
		}
		outcome.Labels = append(outcome.Labels, bundle.Message)
	}
	return outcome
}

// bundleMatches tests a single bundle offer's type-specific predicate.
func bundleMatches(bundle *models.BundleOffer, req models.BookingRequest) bool {
	cond := bundle.Conditions

	switch bundle.Type {
	case models.BundleMultiService:
		minServices := defaultMinBundleServices
		if cond.MinServices != nil {
			minServices = *cond.MinServices
		}
		requested := 0
		for _, qty := range req.Services {
			if qty > 0 {
				requested++
			}
		}
		return requested >= minServices

	case models.BundleUpgradeUpsell:
		if cond.RequiredType != nil {
			return req.CleaningType == *cond.RequiredType
		}
		return true

	case models.BundleMultiBooking:
		// Placeholder: multi_booking offers currently match every booking.
		// A real multi-booking cart context is not modeled yet.
		return true
	}

	return false
}
