package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/adrianlim/onboarding-tracker/internal/auth"
	"github.com/adrianlim/onboarding-tracker/internal/onboarding"
	"github.com/adrianlim/onboarding-tracker/internal/transport/middleware"
	"github.com/adrianlim/onboarding-tracker/internal/transport/swagger"
	"github.com/adrianlim/onboarding-tracker/pkg/localstore"
	"github.com/go-chi/chi"
)

// RegisterAllRoutes wires the public surface: auth, employee onboarding, and
// health. db is nil when the localfile storage driver is active (and store is
// nil when postgres is).
func RegisterAllRoutes(router *chi.Mux, db *sql.DB, store *localstore.Store, authHandler *auth.Handler, onboardingHandler *onboarding.Handler, allowedOrigins string, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db, store)

	// Apply global middleware
	router.Use(middleware.CORSWithOrigins(allowedOrigins))
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	// Serve OpenAPI spec at root (outside API prefix)
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	// Swagger UI route at root
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		// Health check routes
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		// Auth routes
		r.Route("/auth", func(sr chi.Router) {
			sr.Post("/login", authHandler.Login)
			sr.Post("/refresh", authHandler.RefreshToken)
			sr.Post("/logout", authHandler.Logout)
		})

		// Protected routes that require an authenticated actor
		r.Group(func(pr chi.Router) {
			pr.Use(authHandler.AuthMiddleware)

			pr.Get("/me", authHandler.Me)

			pr.Route("/employees", func(er chi.Router) {
				er.Get("/", onboardingHandler.ListEmployees)
				er.Post("/", onboardingHandler.CreateEmployee)
				er.Get("/{id}", onboardingHandler.GetEmployee)
				er.Patch("/{id}", onboardingHandler.UpdateEmployee)
				er.Delete("/{id}", onboardingHandler.DeleteEmployee)
				er.Get("/{id}/progress", onboardingHandler.GetProgress)
				er.Get("/{id}/tasks", onboardingHandler.ListTasks)
				er.Post("/{id}/tasks", onboardingHandler.CreateTask)
				er.Post("/{id}/checklist", onboardingHandler.ProvisionChecklist)
			})

			pr.Route("/tasks", func(tr chi.Router) {
				tr.Patch("/{id}/status", onboardingHandler.UpdateTaskStatus)
				tr.Delete("/{id}", onboardingHandler.DeleteTask)
			})
		})
	})
}
