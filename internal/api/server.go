package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	assignmentapi "github.com/ethicallogix/assignment-maker/internal/api/assignment"
	authapi "github.com/ethicallogix/assignment-maker/internal/api/auth"
	"github.com/ethicallogix/assignment-maker/internal/api/docs"
	"github.com/ethicallogix/assignment-maker/internal/api/middleware"
)

// SetupRouter creates and configures the HTTP router. The request
// timeout leaves headroom over the generation timeout so long model
// calls are not cut off by the router.
func SetupRouter(
	assignmentHandler *assignmentapi.Handler,
	authHandler *authapi.Handler,
	sessions middleware.SessionResolver,
	generationTimeout time.Duration,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS)
	r.Use(chimiddleware.Timeout(generationTimeout + 30*time.Second))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Swagger documentation endpoints
	docs.RegisterRoutes(r)

	r.Route("/api/v1", func(r chi.Router) {
		authapi.RegisterPublicRoutes(r, authHandler)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(sessions))

			authapi.RegisterRoutes(r, authHandler)
			assignmentapi.RegisterRoutes(r, assignmentHandler)

			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				authapi.RegisterAdminRoutes(r, authHandler)
			})
		})
	})

	return r
}
