// BioSync API
//
// REST API for personal health tracking with an LLM wellness coach.
//
//	@title			BioSync API
//	@version		1.0
//	@description	Log daily biometrics, track BMI and family-history risks, and get LLM-backed wellness analyses and recipes.
//
//	@BasePath	/v1
//
//	@tag.name			profile
//	@tag.description	Profile and family-history endpoints
//
//	@tag.name			metrics
//	@tag.description	Daily biometrics logging endpoints
//
//	@tag.name			dashboard
//	@tag.description	Dashboard summary endpoints
//
//	@tag.name			coach
//	@tag.description	LLM health coach endpoints
package main

import (
	"context"
	"log"
	"net/http"

	"github.com/wardaashahid/biosync-api/internal/api"
	"github.com/wardaashahid/biosync-api/internal/api/handler"
	"github.com/wardaashahid/biosync-api/internal/config"
	"github.com/wardaashahid/biosync-api/internal/domain"
	"github.com/wardaashahid/biosync-api/internal/langfuse"
	"github.com/wardaashahid/biosync-api/internal/llm"
	"github.com/wardaashahid/biosync-api/internal/repository"
	"github.com/wardaashahid/biosync-api/internal/seed"
	"github.com/wardaashahid/biosync-api/internal/service"
	"github.com/wardaashahid/biosync-api/internal/telemetry"
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfg := config.Load()

	// Initialize OpenTelemetry (no-op when Langfuse is not configured)
	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, "biosync-api")
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			log.Printf("Failed to shut down tracer: %v", err)
		}
	}()

	// Initialize stores: Postgres when DATABASE_URL is set, in-memory otherwise
	var metricRepo repository.MetricRepository
	var profileRepo repository.ProfileRepository
	if cfg.DatabaseURL != "" {
		db, err := config.NewDatabase(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		if err := db.AutoMigrate(&domain.UserProfile{}, &domain.DailyMetric{}); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}
		log.Println("Database migration completed")

		metricRepo = repository.NewMetricRepository(db)
		profileRepo = repository.NewProfileRepository(db)
	} else {
		log.Println("DATABASE_URL not set, using in-memory stores")
		metricRepo = repository.NewMemoryMetricStore()
		profileRepo = repository.NewMemoryProfileStore()
	}

	if cfg.Seed {
		log.Println("Seeding stores with sample data (SEED=true)...")
		if err := seed.Run(ctx, metricRepo, profileRepo); err != nil {
			log.Fatalf("Failed to seed: %v", err)
		}
	}

	// Initialize Langfuse client for feedback scores
	langfuseClient := langfuse.NewClient(langfuse.Config{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		Environment: cfg.LangfuseEnv,
	})

	// Load the coach system prompt from Langfuse (falls back to the built-in)
	systemPrompt := ""
	if cfg.LangfuseCoachPrompt != "" || cfg.CoachPromptFile != "" {
		prompt, err := langfuse.LoadPrompt(ctx, langfuse.PromptLoaderConfig{
			BaseURL:    cfg.LangfuseBaseURL,
			PublicKey:  cfg.LangfusePublicKey,
			SecretKey:  cfg.LangfuseSecretKey,
			PromptName: cfg.LangfuseCoachPrompt,
			SavePath:   cfg.CoachPromptFile,
		})
		if err != nil {
			log.Printf("Coach prompt not loaded, using built-in: %v", err)
		} else {
			systemPrompt = prompt
		}
	}

	// Initialize OpenAI client (may be nil if not configured)
	openaiClient := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAICoachModel, cfg.OpenAIRecipeModel, systemPrompt)
	if openaiClient == nil {
		log.Println("Warning: OpenAI API key not configured, coach endpoints will be unavailable")
	}

	// Initialize services
	profileService := service.NewProfileService(profileRepo)
	metricService := service.NewMetricService(metricRepo)
	dashboardService := service.NewDashboardService(metricRepo, profileRepo)
	coachService := service.NewCoachService(metricRepo, profileRepo, openaiClient)

	// Initialize handlers
	profileHandler := handler.NewProfileHandler(profileService)
	metricHandler := handler.NewMetricHandler(metricService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	coachHandler := handler.NewCoachHandler(coachService, langfuseClient)

	// Setup router
	router := api.NewRouter(profileHandler, metricHandler, dashboardHandler, coachHandler)
	routerHandler := router.Setup()

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Starting server on %s", addr)
	if err := http.ListenAndServe(addr, routerHandler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
