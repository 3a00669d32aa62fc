package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-char-keeper/internal/logger"
	"github.com/MKhiriev/go-char-keeper/internal/mock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHealthService_Check(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	checker := mock.NewMockHealthChecker(ctrl)
	svc := NewHealthService(checker, logger.Nop())

	pingErr := errors.New("connection refused")
	gomock.InOrder(
		checker.EXPECT().PingContext(gomock.Any()).Return(nil),
		checker.EXPECT().PingContext(gomock.Any()).Return(pingErr),
	)

	assert.NoError(t, svc.Check(context.Background()))

	err := svc.Check(context.Background())
	assert.ErrorIs(t, err, ErrStorageUnavailable)
	assert.ErrorIs(t, err, pingErr)
}
