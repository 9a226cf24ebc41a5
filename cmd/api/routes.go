package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/xavierca1/ligue-crm/internal/config"
	"github.com/xavierca1/ligue-crm/internal/entity"
	"github.com/xavierca1/ligue-crm/internal/infra/http/handlers"
	"github.com/xavierca1/ligue-crm/internal/infra/http/middleware"
)

type routes struct {
	health    *handlers.HealthHandler
	leads     *handlers.LeadHandler
	channels  *handlers.ChannelHandler
	clients   *handlers.ClientHandler
	reports   *handlers.ReportHandler
	goals     *handlers.GoalHandler
	processes *handlers.ProcessHandler
}

func (h routes) router(cfg *config.Config, log *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/healthz", h.health.Handle)
	r.Handle("/metrics", promhttp.Handler())

	limiter := middleware.NewRateLimiter(cfg.RateLimitPerMinute, time.Minute)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth([]byte(cfg.JWTSecret)))
		r.Use(limiter.Limit)

		r.Route("/leads", func(r chi.Router) {
			r.Get("/", h.leads.List)
			r.Post("/", h.leads.Create)
			r.Get("/{id}", h.leads.Get)
			r.Put("/{id}", h.leads.Update)
			r.Delete("/{id}", h.leads.Delete)
			r.Patch("/{id}/stage", h.leads.MoveStage)
		})
		r.Get("/board", h.leads.Board)

		r.Route("/channels", func(r chi.Router) {
			r.Get("/", h.channels.List)
			r.Post("/", h.channels.Create)
			r.Put("/{id}", h.channels.Update)
			r.Delete("/{id}", h.channels.Delete)
		})
		r.Get("/lead-fields", h.channels.ListFields)
		r.Put("/lead-fields", h.channels.ReplaceFields)

		r.Route("/clients", func(r chi.Router) {
			r.Get("/", h.clients.List)
			r.Post("/", h.clients.Create)
			r.Post("/{id}/payments", h.clients.GeneratePayments)
			r.Get("/{id}/payments", h.clients.ListPayments)
		})
		r.Patch("/payments/{id}/paid", h.clients.MarkPaid)

		r.Post("/sales", h.reports.CreateEntry(entity.SourceSales))
		r.Post("/implementations", h.reports.CreateEntry(entity.SourceImplementations))

		r.Route("/reports", func(r chi.Router) {
			r.Get("/revenue", h.reports.Revenue)
			r.Get("/mrr", h.reports.MRR)
			r.Get("/leads", h.leads.Summary)
		})

		r.Route("/goals", func(r chi.Router) {
			r.Get("/", h.goals.List)
			r.Post("/", h.goals.Create)
			r.Patch("/{id}", h.goals.UpdateCurrent)
		})

		r.Route("/processes", func(r chi.Router) {
			r.Post("/", h.processes.Create)
			r.Get("/{id}", h.processes.Get)
			r.Delete("/{id}", h.processes.Delete)
		})
	})

	return r
}
