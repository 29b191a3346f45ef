package domain

import "time"

// BMICategory is one of the four classification bands.
// @Description BMI band: underweight, healthy, overweight or obese.
type BMICategory string

const (
	BMIUnderweight BMICategory = "underweight"
	BMIHealthy     BMICategory = "healthy"
	BMIOverweight  BMICategory = "overweight"
	BMIObese       BMICategory = "obese"
)

// BMIReading is a computed-on-demand BMI value with its band. Never stored.
// @Description BMI value and classification band.
type BMIReading struct {
	// BMI value, rounded to two decimals
	Value float64 `json:"value" example:"23.02"`
	// Classification band
	Category BMICategory `json:"category" example:"healthy"`
}

// DashboardSummary is the view model behind the dashboard: the latest entry,
// the BMI derived from it and the current profile height, the recent trend,
// and the family-history risk summary. When no metrics have been logged yet
// HasData is false and the metric-derived fields are absent; the empty state
// is a placeholder, not an error.
// @Description Dashboard view model.
type DashboardSummary struct {
	// False until the first entry is logged
	HasData bool `json:"has_data" example:"true"`
	// Latest logged entry, absent when the store is empty
	Latest *MetricResponse `json:"latest,omitempty"`
	// BMI from the latest weight and profile height, absent without data
	BMI *BMIReading `json:"bmi,omitempty"`
	// Last entries in append order for charting
	Trend []TrendPoint `json:"trend"`
	// Number of entries ever logged
	EntriesLogged int64 `json:"entries_logged" example:"2"`
	// Number of flagged family-history conditions
	RiskCount int `json:"risk_count" example:"1"`
	// Flagged conditions in canonical order
	ActiveRisks []RiskFlag `json:"active_risks" example:"hypertension"`
	// Time the summary was computed
	GeneratedAt time.Time `json:"generated_at"`
}
