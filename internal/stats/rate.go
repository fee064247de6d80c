package stats

import (
	"github.com/shopspring/decimal"

	"samplehub/internal/domains"
)

var hundred = decimal.NewFromInt(100)

// Percentage returns part/whole*100 rounded to two decimals, or 0 when whole is not positive.
func Percentage(part, whole int) float64 {
	if whole <= 0 || part <= 0 {
		return 0
	}
	return decimal.NewFromInt(int64(part)).
		Mul(hundred).
		Div(decimal.NewFromInt(int64(whole))).
		Round(2).
		InexactFloat64()
}

func NewRateMetric(count, maximum int) domains.RateMetric {
	count = max(0, count)
	return domains.RateMetric{
		Count:      count,
		Percentage: Percentage(count, maximum),
	}
}
