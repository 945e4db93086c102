package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/globallang/gla-backend/internal/auth"
	"github.com/globallang/gla-backend/internal/config"
	"github.com/globallang/gla-backend/internal/http/handlers"
	"github.com/globallang/gla-backend/internal/metrics"
	"github.com/globallang/gla-backend/internal/middleware"
	"github.com/globallang/gla-backend/internal/models"
	"github.com/globallang/gla-backend/internal/payments"
	"github.com/globallang/gla-backend/internal/storage/postgres"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// Server wraps an http.Server with configured routes.
type Server struct {
	inner *http.Server
}

// New wires up middleware, routes, and returns a ready server.
func New(cfg config.Config, log zerolog.Logger, store *postgres.Store, intents payments.IntentCreator) *Server {
	tokens := auth.NewTokenManager(cfg.TokenSecret, cfg.TokenTTL())

	requireToken := middleware.RequireToken(tokens)
	requireAdmin := middleware.RequireRole(store, models.RoleAdmin)
	requireInstructor := middleware.RequireRole(store, models.RoleInstructor)

	tokenHandler := handlers.NewTokenHandler(tokens)
	classHandler := handlers.NewClassHandler(store, log)
	userHandler := handlers.NewUserHandler(store, log)
	cartHandler := handlers.NewCartHandler(store, log)
	paymentHandler := handlers.NewPaymentHandler(store, intents, log)
	healthHandler := handlers.NewHealthHandler(time.Now())

	r := chi.NewRouter()
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recover(log))
	r.Use(metrics.Middleware)

	r.Get("/", handlers.Root)
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/jwt", tokenHandler.Issue)

	r.Get("/class", classHandler.List)
	r.With(requireToken, requireInstructor).Post("/class", classHandler.Create)
	r.Get("/my-class", classHandler.ListByInstructor)
	r.Patch("/approved-class/{id}", classHandler.UpdateApproval)

	r.Get("/instructors", userHandler.ListInstructors)
	r.With(requireToken, requireAdmin).Get("/users", userHandler.List)
	r.Get("/users/role/{email}", userHandler.GetRole)
	r.Post("/users", userHandler.Create)
	r.Patch("/users/role/{id}", userHandler.UpdateRole)

	r.With(requireToken).Get("/carts", cartHandler.List)
	r.Post("/carts", cartHandler.Create)
	r.Delete("/carts/{id}", cartHandler.Delete)

	r.Post("/create-payment-intent", paymentHandler.CreateIntent)
	r.With(requireToken).Post("/payments", paymentHandler.Create)

	handler := middleware.CORS(cfg.CORSOrigins, r)

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddress(),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return &Server{inner: httpServer}
}

// Start begins serving HTTP traffic.
func (s *Server) Start() error {
	return s.inner.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.inner.Shutdown(ctx)
}
