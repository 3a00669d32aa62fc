// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// Supported database drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Supported lock backends.
const (
	LockBackendMemory = "memory"
	LockBackendRedis  = "redis"
	LockBackendNoOp   = "noop"
)

const (
	defaultPasswordHashCost = 10
	minPasswordHashCost     = 4
	maxPasswordHashCost     = 31
	defaultTokenIssuer      = "go-char-keeper"
	defaultTokenDuration    = 24 * time.Hour
	defaultMapsLimit        = 5
	defaultLockTTL          = 5 * time.Second
	defaultLockRetries      = 20
	defaultLockRetryDelay   = 50 * time.Millisecond
	defaultHTTPAddress      = "localhost:8080"
	defaultRequestTimeout   = 30 * time.Second
	defaultRepairInterval   = time.Minute
	defaultRepairBatchSize  = 100
	defaultAdapterAddress   = "http://localhost:8080"
	defaultAdapterTimeout   = 10 * time.Second
)

// applyDefaults fills tuning knobs left at their zero value after merging.
// Secrets and the DSN have no defaults.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.PasswordHashCost == 0 {
		cfg.App.PasswordHashCost = defaultPasswordHashCost
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}
	if cfg.App.MapsLimit == 0 {
		cfg.App.MapsLimit = defaultMapsLimit
	}

	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = DriverPostgres
	}

	if cfg.Lock.Backend == "" {
		cfg.Lock.Backend = LockBackendMemory
	}
	if cfg.Lock.TTL == 0 {
		cfg.Lock.TTL = defaultLockTTL
	}
	if cfg.Lock.Retries == 0 {
		cfg.Lock.Retries = defaultLockRetries
	}
	if cfg.Lock.RetryDelay == 0 {
		cfg.Lock.RetryDelay = defaultLockRetryDelay
	}

	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}

	if cfg.Workers.RepairInterval == 0 {
		cfg.Workers.RepairInterval = defaultRepairInterval
	}
	if cfg.Workers.RepairBatchSize == 0 {
		cfg.Workers.RepairBatchSize = defaultRepairBatchSize
	}
}

// validate checks that the final merged [StructuredConfig] can be used to
// start the server. It is called after applyDefaults.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}
	if cfg.App.PasswordHashCost < minPasswordHashCost || cfg.App.PasswordHashCost > maxPasswordHashCost {
		return fmt.Errorf("%w: password hash cost %d out of range", ErrInvalidAppConfigs, cfg.App.PasswordHashCost)
	}
	if cfg.App.TokenDuration < 0 || cfg.App.MapsLimit < 0 {
		return fmt.Errorf("%w: negative token duration or maps limit", ErrInvalidAppConfigs)
	}

	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	switch cfg.Lock.Backend {
	case LockBackendMemory, LockBackendNoOp:
	case LockBackendRedis:
		if cfg.Lock.Redis.Address == "" {
			return fmt.Errorf("%w: redis address is required", ErrInvalidLockConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidLockConfigs, cfg.Lock.Backend)
	}
	if cfg.Lock.TTL < 0 || cfg.Lock.Retries < 0 || cfg.Lock.RetryDelay < 0 {
		return fmt.Errorf("%w: negative lock tuning", ErrInvalidLockConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Workers.RepairInterval < 0 || cfg.Workers.RepairBatchSize < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = defaultAdapterAddress
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = defaultAdapterTimeout
	}
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
