// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the goose schema migrations for every supported
// SQL dialect.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
	"github.com/pressly/goose/v3/database"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// Dialects understood by Migrate.
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite"
)

var (
	errNilDB          = errors.New("db is nil")
	errUnknownDialect = errors.New("unknown migration dialect")
)

// Migrate applies all pending migrations of the given dialect to db.
func Migrate(ctx context.Context, db *sql.DB, dialect string) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", errNilDB)
	}

	provider, err := newProvider(db, dialect)
	if err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

func newProvider(db *sql.DB, dialect string) (*goose.Provider, error) {
	var gooseDialect database.Dialect
	switch dialect {
	case DialectPostgres:
		gooseDialect = database.DialectPostgres
	case DialectSQLite:
		gooseDialect = database.DialectSQLite3
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownDialect, dialect)
	}

	migrationsFS, err := fs.Sub(embedMigrations, dialect)
	if err != nil {
		return nil, fmt.Errorf("error opening %s migrations: %w", dialect, err)
	}

	return goose.NewProvider(gooseDialect, db, migrationsFS)
}
