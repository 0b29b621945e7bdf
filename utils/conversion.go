package utils

import "math"

// CreditsPerUSD is the fixed platform conversion rate: 10 credits equal one
// display-currency unit. It is a constant by policy, not a live exchange rate.
const CreditsPerUSD = 10.0

// CreditsToUSD converts an amount of platform credits to display currency.
func CreditsToUSD(credits float64) float64 {
	return credits / CreditsPerUSD
}

// USDToCredits converts a display-currency amount to platform credits.
func USDToCredits(usd float64) float64 {
	return usd * CreditsPerUSD
}

// RoundCredits rounds a credit amount to the nearest whole credit.
func RoundCredits(credits float64) int64 {
	return int64(math.Round(credits))
}
