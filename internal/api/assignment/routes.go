package assignment

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers assignment routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/assignments", func(r chi.Router) {
		r.Post("/", h.Generate)
		r.Get("/current", h.Current)
		r.Get("/current/export", h.Export)
		r.Delete("/current", h.ResetState)
		r.Put("/logo", h.UploadLogo)
		r.Delete("/logo", h.ClearLogo)
		r.Put("/context", h.SetDocumentContext)
		r.Delete("/context", h.ClearDocumentContext)
	})

	r.Get("/generation/health", h.GenerationHealth)
}
