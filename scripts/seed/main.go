// Script to seed the Postgres store with sample data.
// Usage: DATABASE_URL=... go run scripts/seed/main.go
package main

import (
	"context"
	"log"

	"github.com/wardaashahid/biosync-api/internal/config"
	"github.com/wardaashahid/biosync-api/internal/domain"
	"github.com/wardaashahid/biosync-api/internal/repository"
	"github.com/wardaashahid/biosync-api/internal/seed"
)

func main() {
	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required; the in-memory stores are seeded at server startup with SEED=true")
	}

	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&domain.UserProfile{}, &domain.DailyMetric{}); err != nil {
		log.Fatalf("Failed to migrate: %v", err)
	}

	metricRepo := repository.NewMetricRepository(db)
	profileRepo := repository.NewProfileRepository(db)

	if err := seed.Run(context.Background(), metricRepo, profileRepo); err != nil {
		log.Fatalf("Failed to seed: %v", err)
	}
}
