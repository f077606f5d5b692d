package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func NewRouter(h *Handler, mw *Middleware, metrics http.Handler) http.Handler {
	mux := chi.NewRouter()
	mux.Use(mw.Log, mw.Recover, mw.Cors)

	mux.Route("/api", func(r chi.Router) {
		r.HandleFunc("/health", h.HealthHandler)
		r.Handle("/metrics", metrics)

		r.Group(func(r chi.Router) {
			r.Use(mw.BearerAuth)

			r.Route("/journals", func(r chi.Router) {
				r.Get("/", h.ListJournals)
				r.Post("/", h.CreateJournal)
				r.Get("/{id}", h.JournalByID)
				r.Put("/{id}", h.AppendComment)
				r.Patch("/{id}", h.AppendComment)
				r.Post("/{id}/toggle-priority", h.TogglePriority)
			})

			r.Post("/clients/resolve", h.ResolveClient)

			r.Route("/vehicles", func(r chi.Router) {
				r.Post("/resolve", h.ResolveVehicle)
				r.Get("/free", h.FreeVehicles)
				r.Get("/search", h.SearchVehicles)
			})

			r.Get("/services", h.Services)
		})
	})

	return mux
}
