package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
		r.Get("/api/health", h.health)
		r.Method(http.MethodGet, "/metrics", h.metrics())
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth, h.withSessionCharacter)

		r.Get("/api/user", h.getData)
		r.Put("/api/user/email", h.updateEmail)
		r.Get("/api/user/apis", h.getAPIs)
		r.Get("/api/user/maps", h.getMaps)

		r.Get("/api/user/characters", h.getCharacters)
		r.Get("/api/user/characters/main", h.getMainCharacter)
		r.Put("/api/user/characters/main", h.setMainCharacter)
		r.Get("/api/user/characters/active", h.getActiveCharacter)
		r.Get("/api/user/characters/logged", h.getLoggedCharacters)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
