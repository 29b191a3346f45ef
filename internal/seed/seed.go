package seed

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/wardaashahid/biosync-api/internal/domain"
	"github.com/wardaashahid/biosync-api/internal/repository"
)

const seededDays = 10

// Run seeds the stores with sample data. It works against the repository
// interfaces, so it seeds the in-memory and the Postgres deployments alike.
// Safe to call multiple times: a store that already has entries is left alone.
func Run(ctx context.Context, metrics repository.MetricRepository, profiles repository.ProfileRepository) error {
	count, err := metrics.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count entries: %w", err)
	}
	if count > 0 {
		log.Println("Seed skipped: store already has entries")
		return nil
	}

	if err := profiles.Save(ctx, domain.DefaultProfile()); err != nil {
		return fmt.Errorf("failed to seed profile: %w", err)
	}

	now := time.Now().UTC()
	rng := rand.New(rand.NewSource(now.UnixNano()))
	moods := []domain.Mood{domain.MoodHappy, domain.MoodNeutral, domain.MoodSad, domain.MoodStressed, domain.MoodAngry}

	for i := seededDays; i >= 1; i-- {
		day := now.AddDate(0, 0, -i)
		loggedAt := time.Date(day.Year(), day.Month(), day.Day(), 7+rng.Intn(3), rng.Intn(60), 0, 0, time.UTC)

		entry := domain.DailyMetric{
			ID:          uuid.New(),
			LoggedAt:    loggedAt,
			Steps:       4000 + rng.Intn(8000),
			HeartRate:   58 + rng.Intn(25),
			Calories:    1700 + rng.Intn(900),
			SleepHours:  5.5 + rng.Float64()*3.5,
			WaterLiters: 1.0 + rng.Float64()*2.0,
			WeightKg:    69.0 + rng.Float64()*2.5,
			Mood:        moods[rng.Intn(len(moods))],
			Symptoms:    []string{},
		}
		if rng.Float32() < 0.3 {
			entry.Symptoms = []string{"headache"}
		}

		if err := metrics.Append(ctx, &entry); err != nil {
			return fmt.Errorf("failed to seed entry for %s: %w", loggedAt.Format("2006-01-02"), err)
		}
	}

	// Two fixed entries close out the history so the latest state is stable.
	fixed := []domain.DailyMetric{
		{
			ID:          uuid.New(),
			LoggedAt:    now.AddDate(0, 0, -1).Truncate(time.Hour),
			Steps:       8200,
			HeartRate:   68,
			Calories:    2100,
			SleepHours:  7.5,
			WaterLiters: 2.0,
			WeightKg:    70.5,
			Mood:        domain.MoodHappy,
			Symptoms:    []string{},
		},
		{
			ID:          uuid.New(),
			LoggedAt:    now.Truncate(time.Hour),
			Steps:       5400,
			HeartRate:   72,
			Calories:    1950,
			SleepHours:  6.8,
			WaterLiters: 1.8,
			WeightKg:    70.2,
			Mood:        domain.MoodNeutral,
			Symptoms:    []string{"fatigue"},
		},
	}
	for i := range fixed {
		if err := metrics.Append(ctx, &fixed[i]); err != nil {
			return fmt.Errorf("failed to seed fixed entry: %w", err)
		}
	}

	log.Println("Seed completed")
	return nil
}
