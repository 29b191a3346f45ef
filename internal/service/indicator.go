package service

import (
	"math"

	"github.com/wardaashahid/biosync-api/internal/domain"
)

// BMI band thresholds (inclusive lower bounds).
const (
	bmiHealthyMin    = 18.5
	bmiOverweightMin = 25.0
	bmiObeseMin      = 30.0
)

// ComputeBMI returns weight / height^2, rounded to two decimals. A
// non-positive height is rejected with domain.ErrInvalidHeight instead of
// silently producing Inf or NaN.
func ComputeBMI(weightKg, heightM float64) (float64, error) {
	if heightM <= 0 {
		return 0, domain.ErrInvalidHeight
	}
	bmi := weightKg / (heightM * heightM)
	return math.Round(bmi*100) / 100, nil
}

// ClassifyBMI maps a BMI value to its band. Total over all reals: the
// comparisons are one-directional, so any value below 18.5 — including zero
// or negative input, physically meaningless but representable — lands in the
// underweight band. Each band includes its lower bound.
func ClassifyBMI(bmi float64) domain.BMICategory {
	switch {
	case bmi < bmiHealthyMin:
		return domain.BMIUnderweight
	case bmi < bmiOverweightMin:
		return domain.BMIHealthy
	case bmi < bmiObeseMin:
		return domain.BMIOverweight
	default:
		return domain.BMIObese
	}
}

// bmiReading combines computation and classification for a single weight and
// height, returning nil when the height is degenerate.
func bmiReading(weightKg, heightM float64) *domain.BMIReading {
	value, err := ComputeBMI(weightKg, heightM)
	if err != nil {
		return nil
	}
	return &domain.BMIReading{
		Value:    value,
		Category: ClassifyBMI(value),
	}
}

// trendLabel is the short month+day format used on chart axes.
const trendLabel = "Jan 2"

// formatTrend maps entries to labeled trend points, preserving order.
func formatTrend(metrics []domain.DailyMetric) []domain.TrendPoint {
	trend := make([]domain.TrendPoint, len(metrics))
	for i, m := range metrics {
		trend[i] = domain.TrendPoint{
			Label:  m.LoggedAt.Format(trendLabel),
			Metric: m.ToResponse(),
		}
	}
	return trend
}
