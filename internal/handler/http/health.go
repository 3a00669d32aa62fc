package http

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type healthResponse struct {
	Status string `json:"status"`
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if err := h.services.HealthService.Check(r.Context()); err != nil {
		writeError(w, r, "*Handler.health", err)
		return
	}

	writeJSON(w, r, healthResponse{Status: "ok"}, http.StatusOK)
}

func (h *Handler) metrics() http.Handler {
	return promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{})
}
