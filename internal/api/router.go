package api

import (
	"encoding/json"
	"net/http"

	_ "github.com/wardaashahid/biosync-api/docs"
	"github.com/wardaashahid/biosync-api/internal/api/handler"
	"github.com/wardaashahid/biosync-api/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	profileHandler   *handler.ProfileHandler
	metricHandler    *handler.MetricHandler
	dashboardHandler *handler.DashboardHandler
	coachHandler     *handler.CoachHandler
}

func NewRouter(
	profileHandler *handler.ProfileHandler,
	metricHandler *handler.MetricHandler,
	dashboardHandler *handler.DashboardHandler,
	coachHandler *handler.CoachHandler,
) *Router {
	return &Router{
		profileHandler:   profileHandler,
		metricHandler:    metricHandler,
		dashboardHandler: dashboardHandler,
		coachHandler:     coachHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery)
	r.Use(middleware.Tracing)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		r.Route("/profile", func(r chi.Router) {
			r.Get("/", rt.profileHandler.Get)
			r.Put("/", rt.profileHandler.Save)
			r.Post("/family-history/toggle", rt.profileHandler.ToggleRisk)
		})

		r.Route("/metrics", func(r chi.Router) {
			r.Post("/", rt.metricHandler.Create)
			r.Get("/", rt.metricHandler.List)
			r.Get("/latest", rt.metricHandler.Latest)
		})

		r.Get("/dashboard", rt.dashboardHandler.Get)

		r.Route("/coach", func(r chi.Router) {
			r.Post("/analysis", rt.coachHandler.Analyze)
			r.Post("/feedback", rt.coachHandler.Feedback)
		})

		r.Post("/recipes", rt.coachHandler.Recipe)
	})

	return r
}
