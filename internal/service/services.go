package service

import (
	"fmt"

	"github.com/MKhiriev/go-char-keeper/internal/config"
	"github.com/MKhiriev/go-char-keeper/internal/crypto"
	"github.com/MKhiriev/go-char-keeper/internal/lock"
	"github.com/MKhiriev/go-char-keeper/internal/logger"
	"github.com/MKhiriev/go-char-keeper/internal/metrics"
	"github.com/MKhiriev/go-char-keeper/internal/store"
	"github.com/MKhiriev/go-char-keeper/internal/validators"
)

type Services struct {
	AuthService      AuthService
	UserService      UserService
	CharacterService CharacterService
	HealthService    HealthService
}

func NewServices(storages *store.Storages, locker lock.Locker, m *metrics.Metrics, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	hasher, err := crypto.NewBcryptHasher(cfg.App.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("error creating password hasher: %w", err)
	}

	validator := validators.NewUserValidator()

	characterService := NewCharacterService(
		storages.UserRepository,
		storages.UserCharacterRepository,
		storages.CharacterLogRepository,
		locker,
		lock.Options{TTL: cfg.Lock.TTL, Retries: cfg.Lock.Retries, RetryDelay: cfg.Lock.RetryDelay},
		m,
		logger,
	)

	return &Services{
		AuthService:      NewAuthService(storages.UserRepository, hasher, validator, cfg.App, logger),
		UserService:      NewUserService(storages.UserRepository, storages.UserAPIRepository, storages.MapRepository, storages.CharacterLogRepository, characterService, validator, cfg.App, logger),
		CharacterService: characterService,
		HealthService:    NewHealthService(storages.HealthChecker, logger),
	}, nil
}
