// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"

	"github.com/MKhiriev/go-char-keeper/internal/logger"
	"github.com/MKhiriev/go-char-keeper/internal/service"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

// ServiceName is the name reported by the health endpoint in addition to the
// empty overall-server name.
const ServiceName = "charkeeper.CharacterKeeper"

// Handler is the root gRPC transport handler.
//
// It implements grpc.health.v1.Health on top of service.HealthService, so
// orchestrators can probe storage availability without going through HTTP.
type Handler struct {
	grpc_health_v1.UnimplementedHealthServer

	// services provides access to all application business operations.
	services *service.Services

	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container and
// logger.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}

// Register attaches every service implemented by h to srv.
func (h *Handler) Register(srv *grpc.Server) {
	grpc_health_v1.RegisterHealthServer(srv, h)
}

// Check reports SERVING when storage answers and NOT_SERVING otherwise.
// Unknown service names produce codes.NotFound as required by the health
// protocol.
func (h *Handler) Check(ctx context.Context, req *grpc_health_v1.HealthCheckRequest) (*grpc_health_v1.HealthCheckResponse, error) {
	if name := req.GetService(); name != "" && name != ServiceName {
		return nil, status.Errorf(codes.NotFound, "unknown service %q", name)
	}

	if err := h.services.HealthService.Check(ctx); err != nil {
		h.logger.Err(err).Str("func", "*grpc.Handler.Check").Msg("health check failed")
		return &grpc_health_v1.HealthCheckResponse{
			Status: grpc_health_v1.HealthCheckResponse_NOT_SERVING,
		}, nil
	}

	return &grpc_health_v1.HealthCheckResponse{
		Status: grpc_health_v1.HealthCheckResponse_SERVING,
	}, nil
}
