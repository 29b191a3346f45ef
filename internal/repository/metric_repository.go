package repository

import (
	"context"

	"github.com/wardaashahid/biosync-api/internal/domain"
	"github.com/wardaashahid/biosync-api/pkg/pagination"
	"gorm.io/gorm"
)

// MetricRepository is the append-only metric store. There is deliberately no
// update or delete: entries are immutable once appended.
type MetricRepository interface {
	// Append adds the entry to the end of the sequence.
	Append(ctx context.Context, metric *domain.DailyMetric) error
	// Latest returns the last appended entry, or (nil, nil) when the store
	// is empty. An empty store is a normal state, not an error.
	Latest(ctx context.Context) (*domain.DailyMetric, error)
	// RecentWindow returns the last min(k, len) entries in append order.
	RecentWindow(ctx context.Context, k int) ([]domain.DailyMetric, error)
	// List returns entries newest first with cursor pagination. Fetches one
	// extra row so the caller can detect further pages.
	List(ctx context.Context, filter domain.MetricFilter) ([]domain.DailyMetric, error)
	// Count returns the number of entries ever appended.
	Count(ctx context.Context) (int64, error)
}

type metricRepository struct {
	db *gorm.DB
}

func NewMetricRepository(db *gorm.DB) MetricRepository {
	return &metricRepository{db: db}
}

func (r *metricRepository) Append(ctx context.Context, metric *domain.DailyMetric) error {
	return r.db.WithContext(ctx).Create(metric).Error
}

func (r *metricRepository) Latest(ctx context.Context) (*domain.DailyMetric, error) {
	var metric domain.DailyMetric
	err := r.db.WithContext(ctx).Order("seq DESC").First(&metric).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &metric, nil
}

func (r *metricRepository) RecentWindow(ctx context.Context, k int) ([]domain.DailyMetric, error) {
	if k <= 0 {
		return nil, nil
	}

	var metrics []domain.DailyMetric
	err := r.db.WithContext(ctx).Order("seq DESC").Limit(k).Find(&metrics).Error
	if err != nil {
		return nil, err
	}

	// Reverse back into append order.
	for i, j := 0, len(metrics)-1; i < j; i, j = i+1, j-1 {
		metrics[i], metrics[j] = metrics[j], metrics[i]
	}
	return metrics, nil
}

func (r *metricRepository) List(ctx context.Context, filter domain.MetricFilter) ([]domain.DailyMetric, error) {
	query := r.db.WithContext(ctx).Order("seq DESC")

	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err == nil && cursor != nil {
			query = query.Where("seq < ?", cursor.Seq)
		}
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var metrics []domain.DailyMetric
	if err := query.Find(&metrics).Error; err != nil {
		return nil, err
	}
	return metrics, nil
}

func (r *metricRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.DailyMetric{}).Count(&count).Error
	return count, err
}
