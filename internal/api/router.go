package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/baharkarakas/expense-tracker/internal/api/handlers"
	"github.com/baharkarakas/expense-tracker/internal/config"
	"github.com/baharkarakas/expense-tracker/internal/metrics"
	"github.com/baharkarakas/expense-tracker/internal/middleware"
	"github.com/baharkarakas/expense-tracker/internal/services"
	"github.com/baharkarakas/expense-tracker/web"
)

func NewRouter(cfg config.Config, log *slog.Logger, es *services.ExpenseService) http.Handler {
	metrics.Init()

	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		middleware.RequestLogger(log),
		middleware.HTTPMetrics,
		middleware.Recover,
		middleware.RateLimit(cfg.RateRPS),
	)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{middleware.RequestIDHeader},
	}))

	eh := handlers.NewExpenseHandler(es)

	// metrics & frontend
	r.Handle("/metrics", metrics.Handler())
	r.Handle("/*", http.FileServer(http.FS(web.Static())))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health)
		r.Get("/ready", handlers.Ready(es))

		// ---------- expenses ----------
		r.Get("/expenses", eh.List)
		r.Post("/expenses", eh.Create)
		r.Put("/expenses/{id}", eh.Update)
		r.Delete("/expenses/{id}", eh.Delete)
	})

	return r
}
