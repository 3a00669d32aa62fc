// Package handler assembles the transport handlers enabled by the server
// configuration.
package handler

import (
	"github.com/MKhiriev/go-char-keeper/internal/config"
	"github.com/MKhiriev/go-char-keeper/internal/handler/grpc"
	"github.com/MKhiriev/go-char-keeper/internal/handler/http"
	"github.com/MKhiriev/go-char-keeper/internal/logger"
	"github.com/MKhiriev/go-char-keeper/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers builds an HTTP handler when cfg.HTTPAddress is set and a gRPC
// handler when cfg.GRPCAddress is set. Extra HTTP options are forwarded to
// http.NewHandler after the request timeout taken from cfg.
func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger, opts ...http.Option) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		httpOpts := append([]http.Option{http.WithRequestTimeout(cfg.RequestTimeout)}, opts...)
		handlers.HTTP = http.NewHandler(services, logger, httpOpts...)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
