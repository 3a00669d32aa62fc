package http

import (
	"time"

	"github.com/MKhiriev/go-char-keeper/internal/logger"
	"github.com/MKhiriev/go-char-keeper/internal/service"
	"github.com/MKhiriev/go-char-keeper/internal/validators"
	"github.com/prometheus/client_golang/prometheus"
)

type Handler struct {
	services  *service.Services
	validator validators.Validator

	// gatherer backs the /metrics route.
	gatherer prometheus.Gatherer

	// requestTimeout bounds every request context. Zero disables the limit.
	requestTimeout time.Duration

	logger *logger.Logger
}

// Option configures optional parts of a [Handler].
type Option func(*Handler)

// WithGatherer serves the metrics of g instead of the default registry.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(h *Handler) {
		if g != nil {
			h.gatherer = g
		}
	}
}

func WithRequestTimeout(d time.Duration) Option {
	return func(h *Handler) {
		h.requestTimeout = d
	}
}

func NewHandler(services *service.Services, logger *logger.Logger, opts ...Option) *Handler {
	h := &Handler{
		services:  services,
		validator: validators.NewUserValidator(),
		gatherer:  prometheus.DefaultGatherer,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(h)
	}

	logger.Info().Msg("http handler created")
	return h
}
