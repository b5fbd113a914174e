package auth

import (
	"github.com/go-chi/chi/v5"
)

// RegisterPublicRoutes registers routes reachable without a session
func RegisterPublicRoutes(r chi.Router, h *Handler) {
	r.Post("/auth/login", h.Login)
}

// RegisterRoutes registers authenticated routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/auth/logout", h.Logout)
	r.Get("/users/me/stats", h.MyStats)
}

// RegisterAdminRoutes registers admin-only routes
func RegisterAdminRoutes(r chi.Router, h *Handler) {
	r.Route("/admin", func(r chi.Router) {
		r.Get("/users", h.ListUsers)
		r.Post("/users", h.RegisterUser)
		r.Delete("/users/{username}", h.DeleteUser)
		r.Get("/statistics", h.Statistics)
	})
}
