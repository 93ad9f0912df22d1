package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
	_ "github.com/samandr77/crm/docs" //nolint:revive,nolintlint
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	router := chi.NewRouter()

	router.Use(mw.Log, mw.Recover, mw.Cors)

	router.Get("/health", h.Health)
	router.Get("/swagger/*", httpSwagger.WrapHandler)

	router.Route("/clients", func(r chi.Router) {
		r.Get("/", h.Clients)
		r.Post("/", h.CreateClient)
		r.Get("/{id}", h.ClientByID)
		r.Put("/{id}", h.UpdateClient)
		r.Delete("/{id}", h.DeleteClient)
		r.Get("/{id}/requests", h.RequestsByClient)
	})

	router.Post("/requests", h.CreateRequest)

	return router
}
