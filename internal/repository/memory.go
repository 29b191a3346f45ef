package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/wardaashahid/biosync-api/internal/domain"
	"github.com/wardaashahid/biosync-api/pkg/pagination"
)

// In-memory implementations backing the default, process-lifetime deployment
// (no DATABASE_URL). Mutations are single-step and guarded by a mutex, so a
// mutation is an atomic append/swap with respect to concurrent reads; readers
// always receive copies and can never observe a torn entry.

// MemoryMetricStore is an append-only in-memory MetricRepository.
type MemoryMetricStore struct {
	mu      sync.RWMutex
	entries []domain.DailyMetric
	nextSeq uint64
}

func NewMemoryMetricStore() *MemoryMetricStore {
	return &MemoryMetricStore{nextSeq: 1}
}

func (s *MemoryMetricStore) Append(ctx context.Context, metric *domain.DailyMetric) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if metric.ID == uuid.Nil {
		metric.ID = uuid.New()
	}
	metric.Seq = s.nextSeq
	s.nextSeq++
	if metric.CreatedAt.IsZero() {
		metric.CreatedAt = time.Now().UTC()
	}

	s.entries = append(s.entries, *metric)
	return nil
}

func (s *MemoryMetricStore) Latest(ctx context.Context) (*domain.DailyMetric, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.entries) == 0 {
		return nil, nil
	}
	last := s.entries[len(s.entries)-1]
	return &last, nil
}

func (s *MemoryMetricStore) RecentWindow(ctx context.Context, k int) ([]domain.DailyMetric, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if k <= 0 {
		return nil, nil
	}
	start := len(s.entries) - k
	if start < 0 {
		start = 0
	}
	window := make([]domain.DailyMetric, len(s.entries)-start)
	copy(window, s.entries[start:])
	return window, nil
}

func (s *MemoryMetricStore) List(ctx context.Context, filter domain.MetricFilter) ([]domain.DailyMetric, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var beforeSeq uint64
	if filter.Cursor != "" {
		if cursor, err := pagination.DecodeCursor(filter.Cursor); err == nil && cursor != nil {
			beforeSeq = cursor.Seq
		}
	}

	limit := pagination.NormalizeLimit(filter.Limit)

	// Newest first, one extra row for has-more detection.
	var result []domain.DailyMetric
	for i := len(s.entries) - 1; i >= 0 && len(result) < limit+1; i-- {
		entry := s.entries[i]
		if beforeSeq > 0 && entry.Seq >= beforeSeq {
			continue
		}
		result = append(result, entry)
	}
	return result, nil
}

func (s *MemoryMetricStore) Count(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.entries)), nil
}

// MemoryProfileStore is an in-memory ProfileRepository holding the singleton
// profile. It starts out with the default profile, so Current never reports
// absence.
type MemoryProfileStore struct {
	mu      sync.RWMutex
	profile domain.UserProfile
}

func NewMemoryProfileStore() *MemoryProfileStore {
	return &MemoryProfileStore{profile: *domain.DefaultProfile()}
}

func (s *MemoryProfileStore) Current(ctx context.Context) (*domain.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	current := s.profile
	return &current, nil
}

func (s *MemoryProfileStore) Save(ctx context.Context, profile *domain.UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	replacement := *profile
	replacement.UpdatedAt = time.Now().UTC()
	s.profile = replacement
	return nil
}
