// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-char-keeper/internal/config"
	"github.com/MKhiriev/go-char-keeper/internal/logger"
)

// Storages bundles every repository sharing one database connection.
type Storages struct {
	UserRepository          UserRepository
	UserCharacterRepository UserCharacterRepository
	CharacterLogRepository  CharacterLogRepository
	UserAPIRepository       UserAPIRepository
	MapRepository           MapRepository
	HealthChecker           HealthChecker

	db *DB
}

// NewStorages connects to the database selected by cfg.Driver, applies the
// migrations and builds the repositories.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	var (
		db  *DB
		err error
	)

	switch cfg.Driver {
	case config.DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg, log)
	case config.DriverPostgres, "":
		db, err = NewConnectPostgres(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(ctx); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		db.Close()
		return nil, err
	}

	return newStorages(db, log), nil
}

func newStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:          NewUserRepository(db, log),
		UserCharacterRepository: NewUserCharacterRepository(db, log),
		CharacterLogRepository:  NewCharacterLogRepository(db, log),
		UserAPIRepository:       NewUserAPIRepository(db, log),
		MapRepository:           NewMapRepository(db, log),
		HealthChecker:           db,
		db:                      db,
	}
}

// Close releases the underlying connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
