package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/wardaashahid/biosync-api/internal/domain"
	"github.com/wardaashahid/biosync-api/internal/repository"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// DashboardService derives the dashboard view model from the two stores.
// Everything here is computed on demand; nothing derived is ever stored.
type DashboardService interface {
	// Summary builds the dashboard payload: latest entry, BMI, recent trend
	// and the family-history risk summary. An empty metric store yields a
	// placeholder summary, never an error.
	Summary(ctx context.Context) (*domain.DashboardSummary, error)
}

type dashboardService struct {
	metricRepo  repository.MetricRepository
	profileRepo repository.ProfileRepository
}

func NewDashboardService(metricRepo repository.MetricRepository, profileRepo repository.ProfileRepository) DashboardService {
	return &dashboardService{
		metricRepo:  metricRepo,
		profileRepo: profileRepo,
	}
}

func (s *dashboardService) Summary(ctx context.Context) (*domain.DashboardSummary, error) {
	tracer := otel.Tracer("biosync-api/dashboard")
	ctx, span := tracer.Start(ctx, "DashboardService.Summary",
		trace.WithAttributes(
			attribute.Int("trend.window_size", TrendWindowSize),
		),
	)
	defer span.End()

	profile, err := s.profileRepo.Current(ctx)
	if err != nil {
		return nil, err
	}

	latest, err := s.metricRepo.Latest(ctx)
	if err != nil {
		return nil, err
	}

	window, err := s.metricRepo.RecentWindow(ctx, TrendWindowSize)
	if err != nil {
		return nil, err
	}

	count, err := s.metricRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	summary := &domain.DashboardSummary{
		HasData:       latest != nil,
		Trend:         formatTrend(window),
		EntriesLogged: count,
		RiskCount:     profile.FamilyHistory.ActiveRiskCount(),
		ActiveRisks:   profile.FamilyHistory.ActiveRisks(),
		GeneratedAt:   time.Now().UTC(),
	}

	if latest != nil {
		resp := latest.ToResponse()
		summary.Latest = &resp
		summary.BMI = bmiReading(latest.WeightKg, profile.HeightM)
	}

	span.SetAttributes(
		attribute.Bool("dashboard.has_data", summary.HasData),
		attribute.Int("dashboard.risk_count", summary.RiskCount),
	)

	// Attach output payload for Langfuse
	if outputJSON, err := json.Marshal(summary); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.output", string(outputJSON)))
	}

	return summary, nil
}
