package handler

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/wardaashahid/biosync-api/internal/domain"
	"github.com/wardaashahid/biosync-api/internal/langfuse"
)

// MockProfileService is a mock implementation of service.ProfileService
type MockProfileService struct {
	currentFunc    func(ctx context.Context) (*domain.UserProfile, error)
	saveFunc       func(ctx context.Context, req *domain.SaveProfileRequest) (*domain.UserProfile, error)
	toggleRiskFunc func(ctx context.Context, flag domain.RiskFlag) (*domain.UserProfile, error)
}

func (m *MockProfileService) Current(ctx context.Context) (*domain.UserProfile, error) {
	if m.currentFunc != nil {
		return m.currentFunc(ctx)
	}
	return domain.DefaultProfile(), nil
}

func (m *MockProfileService) Save(ctx context.Context, req *domain.SaveProfileRequest) (*domain.UserProfile, error) {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, req)
	}
	return req.ToProfile(), nil
}

func (m *MockProfileService) ToggleRisk(ctx context.Context, flag domain.RiskFlag) (*domain.UserProfile, error) {
	if m.toggleRiskFunc != nil {
		return m.toggleRiskFunc(ctx, flag)
	}
	profile := domain.DefaultProfile()
	if err := profile.FamilyHistory.Toggle(flag); err != nil {
		return nil, err
	}
	return profile, nil
}

// MockMetricService is a mock implementation of service.MetricService
type MockMetricService struct {
	logFunc         func(ctx context.Context, req *domain.CreateMetricRequest) (*domain.DailyMetric, error)
	latestFunc      func(ctx context.Context) (*domain.DailyMetric, error)
	listFunc        func(ctx context.Context, filter domain.MetricFilter) (*domain.MetricListResponse, error)
	recentTrendFunc func(ctx context.Context, windowSize int) ([]domain.TrendPoint, error)
}

func (m *MockMetricService) Log(ctx context.Context, req *domain.CreateMetricRequest) (*domain.DailyMetric, error) {
	if m.logFunc != nil {
		return m.logFunc(ctx, req)
	}
	return &domain.DailyMetric{
		ID:        uuid.New(),
		LoggedAt:  time.Now().UTC(),
		Steps:     req.Steps,
		HeartRate: req.HeartRate,
		WeightKg:  req.WeightKg,
		Mood:      req.Mood,
		Symptoms:  []string{},
	}, nil
}

func (m *MockMetricService) Latest(ctx context.Context) (*domain.DailyMetric, error) {
	if m.latestFunc != nil {
		return m.latestFunc(ctx)
	}
	return nil, nil
}

func (m *MockMetricService) List(ctx context.Context, filter domain.MetricFilter) (*domain.MetricListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, filter)
	}
	return &domain.MetricListResponse{
		Data:       []domain.MetricResponse{},
		Pagination: domain.PaginationResponse{HasMore: false},
	}, nil
}

func (m *MockMetricService) RecentTrend(ctx context.Context, windowSize int) ([]domain.TrendPoint, error) {
	if m.recentTrendFunc != nil {
		return m.recentTrendFunc(ctx, windowSize)
	}
	return []domain.TrendPoint{}, nil
}

// MockDashboardService is a mock implementation of service.DashboardService
type MockDashboardService struct {
	summaryFunc func(ctx context.Context) (*domain.DashboardSummary, error)
}

func (m *MockDashboardService) Summary(ctx context.Context) (*domain.DashboardSummary, error) {
	if m.summaryFunc != nil {
		return m.summaryFunc(ctx)
	}
	return &domain.DashboardSummary{
		HasData:     false,
		Trend:       []domain.TrendPoint{},
		RiskCount:   1,
		ActiveRisks: []domain.RiskFlag{domain.RiskHypertension},
		GeneratedAt: time.Now().UTC(),
	}, nil
}

// MockCoachService is a mock implementation of service.CoachService
type MockCoachService struct {
	analyzeFunc func(ctx context.Context) (*domain.AnalysisResponse, error)
	recipeFunc  func(ctx context.Context, req *domain.RecipeRequest) (*domain.RecipeResponse, error)
}

func (m *MockCoachService) Analyze(ctx context.Context) (*domain.AnalysisResponse, error) {
	if m.analyzeFunc != nil {
		return m.analyzeFunc(ctx)
	}
	return &domain.AnalysisResponse{
		Analysis: domain.WellnessAnalysis{
			WellnessScore:  7,
			Summary:        "Doing fine.",
			Recommendation: "More water.",
		},
	}, nil
}

func (m *MockCoachService) Recipe(ctx context.Context, req *domain.RecipeRequest) (*domain.RecipeResponse, error) {
	if m.recipeFunc != nil {
		return m.recipeFunc(ctx, req)
	}
	return &domain.RecipeResponse{
		Recipe: domain.Recipe{
			Name:         "Citrus Quinoa Salad",
			Ingredients:  []string{"quinoa", "orange"},
			Instructions: []string{"Cook quinoa", "Toss with orange"},
			Calories:     380,
		},
	}, nil
}

// MockLangfuseClient is a mock implementation of langfuse.Client
type MockLangfuseClient struct {
	createScoreFunc func(ctx context.Context, in langfuse.ScoreInput) error
	scores          []langfuse.ScoreInput
}

func (m *MockLangfuseClient) IsEnabled() bool {
	return true
}

func (m *MockLangfuseClient) CreateScore(ctx context.Context, in langfuse.ScoreInput) error {
	m.scores = append(m.scores, in)
	if m.createScoreFunc != nil {
		return m.createScoreFunc(ctx, in)
	}
	return nil
}
