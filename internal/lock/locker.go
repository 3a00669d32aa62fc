// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package lock

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-char-keeper/internal/config"
	"github.com/MKhiriev/go-char-keeper/internal/logger"
	"github.com/redis/go-redis/v9"
)

// CloseableLocker is a [Locker] owning resources that must be released on
// shutdown.
type CloseableLocker interface {
	Locker
	Close() error
}

type nopCloser struct {
	*NoOpLocker
}

func (nopCloser) Close() error { return nil }

// NewLocker builds the locker selected by cfg.Backend. The redis backend is
// pinged before it is returned.
func NewLocker(ctx context.Context, cfg config.Lock, log *logger.Logger) (CloseableLocker, error) {
	switch cfg.Backend {
	case config.LockBackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			log.Err(err).Str("func", "lock.NewLocker").Msg("error connecting redis")
			client.Close()
			return nil, fmt.Errorf("error connecting redis: %w", err)
		}
		log.Info().Str("func", "lock.NewLocker").Str("address", cfg.Redis.Address).Msg("using redis locker")
		return NewRedisLocker(client), nil

	case config.LockBackendNoOp:
		log.Warn().Str("func", "lock.NewLocker").Msg("locking disabled")
		return nopCloser{NewNoOpLocker()}, nil

	case config.LockBackendMemory, "":
		log.Info().Str("func", "lock.NewLocker").Msg("using in-memory locker")
		return NewMemoryLocker(), nil

	default:
		return nil, fmt.Errorf("unknown lock backend %q", cfg.Backend)
	}
}
