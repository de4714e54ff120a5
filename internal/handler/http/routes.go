package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Resource mount points. The classifier receives paths relative to these
// prefixes, so route shapes inside a resource stay transport-agnostic.
const (
	accessMount = "/api/access"
	grantMount  = "/api/user_access"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Get("/api/version/", h.getServerVersion)

	router.Mount(accessMount, http.StripPrefix(accessMount, http.HandlerFunc(h.access)))
	router.Mount(grantMount, http.StripPrefix(grantMount, http.HandlerFunc(h.userAccess)))

	return router
}
