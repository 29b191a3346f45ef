package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/wardaashahid/biosync-api/internal/domain"
	"github.com/wardaashahid/biosync-api/internal/repository"
	"github.com/wardaashahid/biosync-api/pkg/pagination"
)

// TrendWindowSize is the number of recent entries shown on dashboard charts.
const TrendWindowSize = 7

type MetricService interface {
	// Log appends a new immutable entry stamped with a fresh UUID and the
	// current server time.
	Log(ctx context.Context, req *domain.CreateMetricRequest) (*domain.DailyMetric, error)
	// Latest returns the last appended entry, or nil when nothing has been
	// logged yet.
	Latest(ctx context.Context) (*domain.DailyMetric, error)
	// List returns the metric history newest first with cursor pagination.
	List(ctx context.Context, filter domain.MetricFilter) (*domain.MetricListResponse, error)
	// RecentTrend returns the last windowSize entries as labeled trend
	// points in append order.
	RecentTrend(ctx context.Context, windowSize int) ([]domain.TrendPoint, error)
}

type metricService struct {
	repo repository.MetricRepository
}

func NewMetricService(repo repository.MetricRepository) MetricService {
	return &metricService{repo: repo}
}

func (s *metricService) Log(ctx context.Context, req *domain.CreateMetricRequest) (*domain.DailyMetric, error) {
	symptoms := req.Symptoms
	if symptoms == nil {
		symptoms = []string{}
	}

	metric := &domain.DailyMetric{
		ID:          uuid.New(),
		LoggedAt:    time.Now().UTC(),
		Steps:       req.Steps,
		HeartRate:   req.HeartRate,
		Calories:    req.Calories,
		SleepHours:  req.SleepHours,
		WaterLiters: req.WaterLiters,
		WeightKg:    req.WeightKg,
		Mood:        req.Mood,
		Symptoms:    symptoms,
	}

	if err := s.repo.Append(ctx, metric); err != nil {
		return nil, err
	}
	return metric, nil
}

func (s *metricService) Latest(ctx context.Context) (*domain.DailyMetric, error) {
	return s.repo.Latest(ctx)
}

func (s *metricService) List(ctx context.Context, filter domain.MetricFilter) (*domain.MetricListResponse, error) {
	metrics, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	hasMore := len(metrics) > limit
	if hasMore {
		metrics = metrics[:limit]
	}

	response := &domain.MetricListResponse{
		Data: make([]domain.MetricResponse, len(metrics)),
		Pagination: domain.PaginationResponse{
			HasMore: hasMore,
		},
	}
	for i, m := range metrics {
		response.Data[i] = m.ToResponse()
	}

	if hasMore && len(metrics) > 0 {
		last := metrics[len(metrics)-1]
		cursor := &pagination.Cursor{
			ID:  last.ID,
			Seq: last.Seq,
		}
		response.Pagination.NextCursor = cursor.Encode()
	}

	return response, nil
}

func (s *metricService) RecentTrend(ctx context.Context, windowSize int) ([]domain.TrendPoint, error) {
	window, err := s.repo.RecentWindow(ctx, windowSize)
	if err != nil {
		return nil, err
	}
	return formatTrend(window), nil
}
