// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *StructuredConfig {
	cfg := &StructuredConfig{
		App:     App{TokenSignKey: "sign"},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/chars"}},
	}
	cfg.applyDefaults()
	return cfg
}

func TestApplyDefaults(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.applyDefaults()

	assert.Equal(t, defaultPasswordHashCost, cfg.App.PasswordHashCost)
	assert.Equal(t, defaultTokenIssuer, cfg.App.TokenIssuer)
	assert.Equal(t, defaultTokenDuration, cfg.App.TokenDuration)
	assert.Equal(t, defaultMapsLimit, cfg.App.MapsLimit)
	assert.Equal(t, DriverPostgres, cfg.Storage.DB.Driver)
	assert.Equal(t, LockBackendMemory, cfg.Lock.Backend)
	assert.Equal(t, defaultLockTTL, cfg.Lock.TTL)
	assert.Equal(t, defaultLockRetries, cfg.Lock.Retries)
	assert.Equal(t, defaultLockRetryDelay, cfg.Lock.RetryDelay)
	assert.Equal(t, defaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, defaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, defaultRepairInterval, cfg.Workers.RepairInterval)
	assert.Equal(t, defaultRepairBatchSize, cfg.Workers.RepairBatchSize)

	assert.Empty(t, cfg.App.TokenSignKey)
	assert.Empty(t, cfg.Storage.DB.DSN)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &StructuredConfig{
		App:  App{MapsLimit: 2, TokenDuration: time.Minute},
		Lock: Lock{Backend: LockBackendNoOp, Retries: 1},
	}
	cfg.applyDefaults()

	assert.Equal(t, 2, cfg.App.MapsLimit)
	assert.Equal(t, time.Minute, cfg.App.TokenDuration)
	assert.Equal(t, LockBackendNoOp, cfg.Lock.Backend)
	assert.Equal(t, 1, cfg.Lock.Retries)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{name: "valid sqlite", mutate: func(c *StructuredConfig) { c.Storage.DB.Driver = DriverSQLite }},
		{name: "valid redis", mutate: func(c *StructuredConfig) {
			c.Lock.Backend = LockBackendRedis
			c.Lock.Redis.Address = "localhost:6379"
		}},
		{name: "missing sign key", mutate: func(c *StructuredConfig) { c.App.TokenSignKey = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "hash cost too low", mutate: func(c *StructuredConfig) { c.App.PasswordHashCost = 3 }, wantErr: ErrInvalidAppConfigs},
		{name: "hash cost too high", mutate: func(c *StructuredConfig) { c.App.PasswordHashCost = 32 }, wantErr: ErrInvalidAppConfigs},
		{name: "negative maps limit", mutate: func(c *StructuredConfig) { c.App.MapsLimit = -1 }, wantErr: ErrInvalidAppConfigs},
		{name: "unknown driver", mutate: func(c *StructuredConfig) { c.Storage.DB.Driver = "mysql" }, wantErr: ErrInvalidStorageConfigs},
		{name: "missing dsn", mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "unknown lock backend", mutate: func(c *StructuredConfig) { c.Lock.Backend = "etcd" }, wantErr: ErrInvalidLockConfigs},
		{name: "redis without address", mutate: func(c *StructuredConfig) { c.Lock.Backend = LockBackendRedis }, wantErr: ErrInvalidLockConfigs},
		{name: "negative lock ttl", mutate: func(c *StructuredConfig) { c.Lock.TTL = -time.Second }, wantErr: ErrInvalidLockConfigs},
		{name: "missing http address", mutate: func(c *StructuredConfig) { c.Server.HTTPAddress = "" }, wantErr: ErrInvalidServerConfigs},
		{name: "negative batch", mutate: func(c *StructuredConfig) { c.Workers.RepairBatchSize = -5 }, wantErr: ErrInvalidWorkerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGetClientConfig(t *testing.T) {
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "2s")

	cfg, rest, err := GetClientConfig([]string{"-a", "http://127.0.0.1:8080", "pilot", "pw", "characters"})
	require.NoError(t, err)

	assert.Equal(t, "http://127.0.0.1:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 2*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, []string{"pilot", "pw", "characters"}, rest)
}

func TestGetClientConfig_Defaults(t *testing.T) {
	cfg, rest, err := GetClientConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, defaultAdapterAddress, cfg.Adapter.HTTPAddress)
	assert.Equal(t, defaultAdapterTimeout, cfg.Adapter.RequestTimeout)
	assert.Empty(t, rest)
}

func TestGetClientConfig_BadFlag(t *testing.T) {
	_, _, err := GetClientConfig([]string{"-t", "never"})
	assert.Error(t, err)
}
