package service

import (
	"context"

	"github.com/wardaashahid/biosync-api/internal/domain"
	"github.com/wardaashahid/biosync-api/internal/llm"
)

// MockHealthLLM is a mock implementation of llm.HealthLLM
type MockHealthLLM struct {
	generateAnalysisFunc func(ctx context.Context, snapshot *domain.HealthSnapshot) (*domain.WellnessAnalysis, error)
	generateRecipeFunc   func(ctx context.Context, rc *llm.RecipeContext) (*domain.Recipe, error)

	lastSnapshot      *domain.HealthSnapshot
	lastRecipeContext *llm.RecipeContext
}

func (m *MockHealthLLM) GenerateAnalysis(ctx context.Context, snapshot *domain.HealthSnapshot) (*domain.WellnessAnalysis, error) {
	m.lastSnapshot = snapshot
	if m.generateAnalysisFunc != nil {
		return m.generateAnalysisFunc(ctx, snapshot)
	}
	return &domain.WellnessAnalysis{
		WellnessScore:  7,
		Summary:        "Solid week overall.",
		Recommendation: "Keep the sleep schedule consistent.",
	}, nil
}

func (m *MockHealthLLM) GenerateRecipe(ctx context.Context, rc *llm.RecipeContext) (*domain.Recipe, error) {
	m.lastRecipeContext = rc
	if m.generateRecipeFunc != nil {
		return m.generateRecipeFunc(ctx, rc)
	}
	return &domain.Recipe{
		Name:         "Herbed Lentil Bowl",
		Benefit:      "Low sodium, supports heart health.",
		Ingredients:  []string{"lentils", "spinach", "olive oil"},
		Instructions: []string{"Simmer lentils", "Fold in spinach"},
		Calories:     430,
	}, nil
}
