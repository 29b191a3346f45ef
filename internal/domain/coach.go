package domain

// HealthSnapshot is the read-only payload handed to the LLM collaborator:
// the current profile, the latest entry (absent when none), the most recent
// three entries of history, the derived BMI, and the active risk names. The
// core makes no assumption about how the collaborator serializes it.
// @Description Snapshot of user state used for LLM requests.
type HealthSnapshot struct {
	Profile ProfileResponse `json:"profile"`
	// Latest entry, absent when the store is empty
	Latest *MetricResponse `json:"latest,omitempty"`
	// Most recent entries, oldest first
	History []MetricResponse `json:"history"`
	// Derived BMI, absent without a usable weight
	BMI *BMIReading `json:"bmi,omitempty"`
	// Flagged family-history conditions in canonical order
	ActiveRisks []RiskFlag `json:"active_risks"`
}

// WellnessAnalysis is the structured output of the coach LLM.
// @Description LLM-generated daily wellness analysis.
type WellnessAnalysis struct {
	// Overall score out of 100 based on the provided data
	WellnessScore int `json:"wellness_score" example:"72"`
	// Short analysis of the day (2-4 sentences)
	Summary string `json:"summary" example:"Your step count recovered nicely..."`
	// One specific actionable recommendation
	Recommendation string `json:"recommendation" example:"Aim for an extra glass of water before noon."`
}

// AnalysisResponse is the response for the coach analysis endpoint.
// @Description Wellness analysis with the snapshot it was derived from.
type AnalysisResponse struct {
	Snapshot HealthSnapshot   `json:"snapshot"`
	Analysis WellnessAnalysis `json:"analysis"`
	// Trace ID for feedback (present when tracing is enabled)
	TraceID string `json:"trace_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
}

// RecipeRequest is the request body for the recipe endpoint.
// @Description Free-text craving or preference for the recipe.
type RecipeRequest struct {
	// What the user is craving
	Preference string `json:"preference" validate:"required,max=300" example:"something spicy with chicken"`
}

// Recipe is the structured output of the recipe LLM.
// @Description LLM-generated recipe tailored to the user's risks.
type Recipe struct {
	// Recipe name
	Name string `json:"name" example:"Low-Sodium Chicken Harissa Bowl"`
	// Why this recipe suits the user's BMI and family-history risks
	Benefit string `json:"benefit" example:"Low sodium to respect the hypertension history."`
	// Ingredient list
	Ingredients []string `json:"ingredients"`
	// Preparation steps
	Instructions []string `json:"instructions"`
	// Approximate kilocalories per serving
	Calories int `json:"calories" example:"520"`
}

// RecipeResponse is the response for the recipe endpoint.
// @Description Tailored recipe with the snapshot it was derived from.
type RecipeResponse struct {
	Snapshot HealthSnapshot `json:"snapshot"`
	Recipe   Recipe         `json:"recipe"`
	// Trace ID for feedback (present when tracing is enabled)
	TraceID string `json:"trace_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
}
