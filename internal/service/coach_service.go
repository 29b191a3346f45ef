package service

import (
	"context"
	"encoding/json"

	"github.com/wardaashahid/biosync-api/internal/domain"
	"github.com/wardaashahid/biosync-api/internal/llm"
	"github.com/wardaashahid/biosync-api/internal/repository"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	// SnapshotHistorySize is how many recent entries the LLM snapshot carries.
	SnapshotHistorySize = 3

	// DefaultWeightKg is used for recipe tailoring before any entry exists,
	// so a fresh install can still ask for a recipe.
	DefaultWeightKg = 70.0
)

// CoachService composes read-only snapshots of the stores and delegates to
// the LLM collaborator. It never parses free text back into the stores.
type CoachService interface {
	// Analyze produces the daily wellness analysis. Requires at least one
	// logged entry; reports domain.ErrNoMetrics otherwise.
	Analyze(ctx context.Context) (*domain.AnalysisResponse, error)
	// Recipe produces a recipe tailored to the craving, the BMI and the
	// active family-history risks. Works on an empty store by falling back
	// to the default weight.
	Recipe(ctx context.Context, req *domain.RecipeRequest) (*domain.RecipeResponse, error)
}

type coachService struct {
	metricRepo  repository.MetricRepository
	profileRepo repository.ProfileRepository
	llmClient   llm.HealthLLM
}

func NewCoachService(
	metricRepo repository.MetricRepository,
	profileRepo repository.ProfileRepository,
	llmClient llm.HealthLLM,
) CoachService {
	return &coachService{
		metricRepo:  metricRepo,
		profileRepo: profileRepo,
		llmClient:   llmClient,
	}
}

func (s *coachService) Analyze(ctx context.Context) (*domain.AnalysisResponse, error) {
	tracer := otel.Tracer("biosync-api/coach")
	ctx, span := tracer.Start(ctx, "CoachService.Analyze")
	defer span.End()

	snapshot, err := s.buildSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	if snapshot.Latest == nil {
		return nil, domain.ErrNoMetrics
	}

	// Attach input payload for Langfuse
	if inputJSON, err := json.Marshal(snapshot); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.input", string(inputJSON)))
	}

	analysis, err := s.llmClient.GenerateAnalysis(ctx, snapshot)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("coach.wellness_score", analysis.WellnessScore))

	return &domain.AnalysisResponse{
		Snapshot: *snapshot,
		Analysis: *analysis,
	}, nil
}

func (s *coachService) Recipe(ctx context.Context, req *domain.RecipeRequest) (*domain.RecipeResponse, error) {
	tracer := otel.Tracer("biosync-api/coach")
	ctx, span := tracer.Start(ctx, "CoachService.Recipe",
		trace.WithAttributes(attribute.String("recipe.preference", req.Preference)),
	)
	defer span.End()

	snapshot, err := s.buildSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	// No entries yet: tailor against the default weight so the feature
	// still works on a fresh install.
	if snapshot.BMI == nil {
		snapshot.BMI = bmiReading(DefaultWeightKg, snapshot.Profile.HeightM)
	}

	recipe, err := s.llmClient.GenerateRecipe(ctx, &llm.RecipeContext{
		Snapshot:   *snapshot,
		Preference: req.Preference,
	})
	if err != nil {
		return nil, err
	}

	return &domain.RecipeResponse{
		Snapshot: *snapshot,
		Recipe:   *recipe,
	}, nil
}

// buildSnapshot assembles the read-only state handed to the LLM: current
// profile, latest entry, the most recent history entries in append order,
// the derived BMI and the active risk names.
func (s *coachService) buildSnapshot(ctx context.Context) (*domain.HealthSnapshot, error) {
	profile, err := s.profileRepo.Current(ctx)
	if err != nil {
		return nil, err
	}

	latest, err := s.metricRepo.Latest(ctx)
	if err != nil {
		return nil, err
	}

	window, err := s.metricRepo.RecentWindow(ctx, SnapshotHistorySize)
	if err != nil {
		return nil, err
	}

	history := make([]domain.MetricResponse, len(window))
	for i, m := range window {
		history[i] = m.ToResponse()
	}

	activeRisks := profile.FamilyHistory.ActiveRisks()
	if activeRisks == nil {
		activeRisks = []domain.RiskFlag{}
	}

	snapshot := &domain.HealthSnapshot{
		Profile:     profile.ToResponse(),
		History:     history,
		ActiveRisks: activeRisks,
	}

	if latest != nil {
		resp := latest.ToResponse()
		snapshot.Latest = &resp
		snapshot.BMI = bmiReading(latest.WeightKg, profile.HeightM)
	}

	return snapshot, nil
}
