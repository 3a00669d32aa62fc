package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-char-keeper/internal/logger"
	"github.com/MKhiriev/go-char-keeper/internal/store"
)

type healthService struct {
	checker store.HealthChecker
	logger  *logger.Logger
}

func NewHealthService(checker store.HealthChecker, logger *logger.Logger) HealthService {
	return &healthService{checker: checker, logger: logger}
}

// Check pings the storage. Any failure is reported as ErrStorageUnavailable.
func (h *healthService) Check(ctx context.Context) error {
	if err := h.checker.PingContext(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*healthService.Check").Msg("storage ping failed")
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	return nil
}
