package domain

import (
	"time"

	"github.com/google/uuid"
)

// Mood is the self-reported mood on a daily entry.
// @Description Mood: happy, neutral, sad, stressed or angry.
type Mood string

const (
	MoodHappy    Mood = "happy"
	MoodNeutral  Mood = "neutral"
	MoodSad      Mood = "sad"
	MoodStressed Mood = "stressed"
	MoodAngry    Mood = "angry"
)

// DailyMetric is one logged day of biometrics. Entries are immutable once
// appended: the store offers no update or delete, and readers receive copies.
type DailyMetric struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	// Seq preserves append order independently of LoggedAt. The two orders
	// coincide in practice because entries are stamped at append time.
	Seq         uint64    `gorm:"autoIncrement;uniqueIndex" json:"-"`
	LoggedAt    time.Time `gorm:"not null;index" json:"logged_at"`
	Steps       int       `gorm:"not null" json:"steps"`
	HeartRate   int       `gorm:"type:smallint;not null" json:"heart_rate"`
	Calories    int       `gorm:"not null" json:"calories"`
	SleepHours  float64   `gorm:"not null" json:"sleep_hours"`
	WaterLiters float64   `gorm:"not null" json:"water_liters"`
	WeightKg    float64   `gorm:"column:weight_kg;not null" json:"weight_kg"`
	Mood        Mood      `gorm:"type:varchar(10);not null" json:"mood"`
	Symptoms    []string  `gorm:"serializer:json;type:jsonb" json:"symptoms"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (DailyMetric) TableName() string {
	return "daily_metrics"
}

// CreateMetricRequest is the request body for logging a daily entry.
// Range checks live here, at the input boundary; the store itself assumes
// already-validated values.
// @Description Request payload for one day of biometrics.
type CreateMetricRequest struct {
	// Step count for the day
	Steps int `json:"steps" validate:"gte=0" example:"8200" minimum:"0"`
	// Resting heart rate in beats per minute
	HeartRate int `json:"heart_rate" validate:"required,gte=30,lte=220" example:"68" minimum:"30" maximum:"220"`
	// Kilocalories consumed
	Calories int `json:"calories" validate:"gte=0" example:"2100" minimum:"0"`
	// Hours slept
	SleepHours float64 `json:"sleep_hours" validate:"gte=0,lte=24" example:"7.5" minimum:"0" maximum:"24"`
	// Liters of water drunk
	WaterLiters float64 `json:"water_liters" validate:"gte=0,lte=10" example:"2.0" minimum:"0" maximum:"10"`
	// Body weight in kilograms
	WeightKg float64 `json:"weight_kg" validate:"required,gte=20,lte=300" example:"70.2" minimum:"20" maximum:"300"`
	// Mood for the day
	Mood Mood `json:"mood" validate:"required,oneof=happy neutral sad stressed angry" example:"happy" enums:"happy,neutral,sad,stressed,angry"`
	// Free-text symptoms, insertion order preserved, duplicates allowed
	Symptoms []string `json:"symptoms" validate:"omitempty,dive,max=200" example:"headache"`
}

// MetricResponse is the response body for metric endpoints.
// @Description One logged day of biometrics.
type MetricResponse struct {
	ID          uuid.UUID `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	LoggedAt    time.Time `json:"logged_at" example:"2024-01-16T08:05:00Z"`
	Steps       int       `json:"steps" example:"8200"`
	HeartRate   int       `json:"heart_rate" example:"68"`
	Calories    int       `json:"calories" example:"2100"`
	SleepHours  float64   `json:"sleep_hours" example:"7.5"`
	WaterLiters float64   `json:"water_liters" example:"2.0"`
	WeightKg    float64   `json:"weight_kg" example:"70.2"`
	Mood        Mood      `json:"mood" example:"happy"`
	Symptoms    []string  `json:"symptoms"`
}

func (m *DailyMetric) ToResponse() MetricResponse {
	symptoms := m.Symptoms
	if symptoms == nil {
		symptoms = []string{}
	}
	return MetricResponse{
		ID:          m.ID,
		LoggedAt:    m.LoggedAt,
		Steps:       m.Steps,
		HeartRate:   m.HeartRate,
		Calories:    m.Calories,
		SleepHours:  m.SleepHours,
		WaterLiters: m.WaterLiters,
		WeightKg:    m.WeightKg,
		Mood:        m.Mood,
		Symptoms:    symptoms,
	}
}

// TrendPoint pairs a short month+day label with the underlying entry for
// chart-style display. Presentation only, never decision logic.
// @Description One point of the recent trend.
type TrendPoint struct {
	// Short date label (month + day)
	Label  string         `json:"label" example:"Jan 16"`
	Metric MetricResponse `json:"metric"`
}

// MetricListResponse is the response body for the metric history listing.
// @Description Paginated metric history, newest first.
type MetricListResponse struct {
	Data []MetricResponse `json:"data"`
	// Pagination metadata
	Pagination PaginationResponse `json:"pagination"`
}

// PaginationResponse contains cursor pagination metadata.
// @Description Cursor-based pagination info.
type PaginationResponse struct {
	// Cursor for the next page (empty if no more pages)
	NextCursor string `json:"next_cursor,omitempty"`
	// True if more results are available
	HasMore bool `json:"has_more" example:"false"`
}

// MetricFilter contains listing parameters for metric history.
type MetricFilter struct {
	Limit  int
	Cursor string
}
