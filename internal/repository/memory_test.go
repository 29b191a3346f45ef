package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/wardaashahid/biosync-api/internal/domain"
	"github.com/wardaashahid/biosync-api/pkg/pagination"
)

func appendEntries(t *testing.T, store *MemoryMetricStore, n int) []domain.DailyMetric {
	t.Helper()
	ctx := context.Background()

	entries := make([]domain.DailyMetric, 0, n)
	for i := 0; i < n; i++ {
		entry := domain.DailyMetric{
			Steps:     1000 * (i + 1),
			HeartRate: 60 + i,
			WeightKg:  70.0,
			Mood:      domain.MoodNeutral,
		}
		if err := store.Append(ctx, &entry); err != nil {
			t.Fatalf("Append() error = %v", err)
		}
		entries = append(entries, entry)
	}
	return entries
}

func TestMemoryMetricStore_Append(t *testing.T) {
	store := NewMemoryMetricStore()
	entries := appendEntries(t, store, 3)

	for i, entry := range entries {
		if entry.ID.String() == "00000000-0000-0000-0000-000000000000" {
			t.Errorf("entry %d has zero ID", i)
		}
		if entry.CreatedAt.IsZero() {
			t.Errorf("entry %d has zero CreatedAt", i)
		}
		if i > 0 && entry.Seq <= entries[i-1].Seq {
			t.Errorf("entry %d Seq = %d, not greater than previous %d", i, entry.Seq, entries[i-1].Seq)
		}
	}

	count, err := store.Count(context.Background())
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 3 {
		t.Errorf("Count() = %d, want 3", count)
	}
}

func TestMemoryMetricStore_Latest(t *testing.T) {
	store := NewMemoryMetricStore()
	ctx := context.Background()

	latest, err := store.Latest(ctx)
	if err != nil {
		t.Fatalf("Latest() error = %v", err)
	}
	if latest != nil {
		t.Errorf("Latest() on empty store = %+v, want nil", latest)
	}

	entries := appendEntries(t, store, 5)

	latest, err = store.Latest(ctx)
	if err != nil {
		t.Fatalf("Latest() error = %v", err)
	}
	if latest == nil {
		t.Fatal("Latest() = nil, want last appended entry")
	}
	if latest.ID != entries[4].ID {
		t.Errorf("Latest() ID = %s, want %s", latest.ID, entries[4].ID)
	}
}

func TestMemoryMetricStore_RecentWindow(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		appended  int
		k         int
		wantCount int
	}{
		{"empty store", 0, 7, 0},
		{"fewer entries than window", 3, 7, 3},
		{"exactly window size", 7, 7, 7},
		{"more entries than window", 10, 7, 7},
		{"zero window", 5, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewMemoryMetricStore()
			entries := appendEntries(t, store, tt.appended)

			window, err := store.RecentWindow(ctx, tt.k)
			if err != nil {
				t.Fatalf("RecentWindow() error = %v", err)
			}
			if len(window) != tt.wantCount {
				t.Fatalf("RecentWindow() returned %d entries, want %d", len(window), tt.wantCount)
			}

			// Window is the tail of the sequence in append order
			offset := tt.appended - tt.wantCount
			for i, entry := range window {
				if entry.ID != entries[offset+i].ID {
					t.Errorf("window[%d] ID = %s, want %s", i, entry.ID, entries[offset+i].ID)
				}
			}
		})
	}
}

func TestMemoryMetricStore_List(t *testing.T) {
	store := NewMemoryMetricStore()
	ctx := context.Background()
	entries := appendEntries(t, store, 5)

	// Newest first, one extra row beyond the limit for has-more detection
	result, err := store.List(ctx, domain.MetricFilter{Limit: 2})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(result) != 3 {
		t.Fatalf("List() returned %d entries, want limit+1 = 3", len(result))
	}
	if result[0].ID != entries[4].ID || result[1].ID != entries[3].ID {
		t.Errorf("List() not newest first: got %s, %s", result[0].ID, result[1].ID)
	}

	// Cursor resumes strictly before the cursor position
	c := pagination.Cursor{ID: result[1].ID, Seq: result[1].Seq}
	cursor := c.Encode()
	result, err = store.List(ctx, domain.MetricFilter{Limit: 10, Cursor: cursor})
	if err != nil {
		t.Fatalf("List() with cursor error = %v", err)
	}
	if len(result) != 3 {
		t.Fatalf("List() after cursor returned %d entries, want 3", len(result))
	}
	if result[0].ID != entries[2].ID {
		t.Errorf("List() after cursor starts at %s, want %s", result[0].ID, entries[2].ID)
	}
}

func TestMemoryMetricStore_AppendOnly(t *testing.T) {
	store := NewMemoryMetricStore()
	ctx := context.Background()
	entries := appendEntries(t, store, 1)

	// Mutating a returned copy must not affect the stored entry
	latest, err := store.Latest(ctx)
	if err != nil {
		t.Fatalf("Latest() error = %v", err)
	}
	latest.Steps = 999999

	again, err := store.Latest(ctx)
	if err != nil {
		t.Fatalf("Latest() error = %v", err)
	}
	if again.Steps != entries[0].Steps {
		t.Errorf("stored entry mutated through returned copy: Steps = %d", again.Steps)
	}
}

func TestMemoryProfileStore(t *testing.T) {
	store := NewMemoryProfileStore()
	ctx := context.Background()

	// Default profile exists before any save
	current, err := store.Current(ctx)
	if err != nil {
		t.Fatalf("Current() error = %v", err)
	}
	if current.Name != "Alex Doe" {
		t.Errorf("Current().Name = %q, want default profile", current.Name)
	}

	replacement := &domain.UserProfile{
		Name:    "Jordan Smith",
		Age:     35,
		HeightM: 1.82,
		Gender:  domain.GenderOther,
	}
	if err := store.Save(ctx, replacement); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	current, err = store.Current(ctx)
	if err != nil {
		t.Fatalf("Current() error = %v", err)
	}
	if current.Name != "Jordan Smith" {
		t.Errorf("Current().Name = %q after save, want %q", current.Name, "Jordan Smith")
	}
	if current.UpdatedAt.IsZero() {
		t.Error("Current().UpdatedAt is zero after save")
	}

	// Saves replace wholesale; the old record is gone
	if current.FamilyHistory.Hypertension {
		t.Error("FamilyHistory.Hypertension survived a wholesale save")
	}
}

func TestMemoryMetricStore_ListPaginatesWholeHistory(t *testing.T) {
	store := NewMemoryMetricStore()
	ctx := context.Background()
	const total = 25
	appendEntries(t, store, total)

	seen := make(map[string]bool)
	cursor := ""
	for page := 0; ; page++ {
		if page > total {
			t.Fatal("pagination did not terminate")
		}

		result, err := store.List(ctx, domain.MetricFilter{Limit: 10, Cursor: cursor})
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(result) == 0 {
			break
		}

		pageEntries := result
		if len(pageEntries) > 10 {
			pageEntries = pageEntries[:10]
		}
		for _, entry := range pageEntries {
			key := entry.ID.String()
			if seen[key] {
				t.Fatalf("entry %s returned twice", key)
			}
			seen[key] = true
		}

		if len(result) <= 10 {
			break
		}
		last := pageEntries[len(pageEntries)-1]
		c := pagination.Cursor{ID: last.ID, Seq: last.Seq}
		cursor = c.Encode()
	}

	if len(seen) != total {
		t.Errorf("paginated over %d distinct entries, want %d", len(seen), total)
	}
}

func BenchmarkMemoryMetricStore_Append(b *testing.B) {
	store := NewMemoryMetricStore()
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		entry := domain.DailyMetric{
			Steps:    i,
			WeightKg: 70,
			Mood:     domain.MoodNeutral,
			Symptoms: []string{fmt.Sprintf("s%d", i%3)},
		}
		if err := store.Append(ctx, &entry); err != nil {
			b.Fatal(err)
		}
	}
}
