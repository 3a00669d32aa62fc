// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/go-char-keeper/internal/logger"
	"github.com/MKhiriev/go-char-keeper/migrations"
	sq "github.com/Masterminds/squirrel"
)

// DB wraps *sql.DB with the dialect specific bits the repositories need:
// the migration dialect, the squirrel placeholder format and the driver error
// classifier.
type DB struct {
	*sql.DB
	dialect            string
	placeholder        sq.PlaceholderFormat
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded migrations of the connection's dialect.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, db.dialect)
}

// builder returns a squirrel statement builder using the connection's
// placeholder format. Postgres ($1) is the default.
func (db *DB) builder() sq.StatementBuilderType {
	placeholder := db.placeholder
	if placeholder == nil {
		placeholder = sq.Dollar
	}
	return sq.StatementBuilder.PlaceholderFormat(placeholder)
}

// classify wraps err with [ErrTransientDB] when the driver reports it as
// retryable, so callers can decide with errors.Is.
func (db *DB) classify(err error) error {
	if err == nil || db.errorClassificator == nil {
		return err
	}
	if db.errorClassificator.Classify(err) == Retryable {
		return fmt.Errorf("%w: %w", ErrTransientDB, err)
	}
	return err
}

var sqliteTimestampLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	time.RFC3339Nano,
}

// timestampScanner accepts the representations drivers hand back for
// timestamp columns. sqlite reports RETURNING columns without a declared
// type, so they arrive as text.
type timestampScanner struct {
	t *time.Time
}

func (s timestampScanner) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*s.t = v
		return nil
	case nil:
		*s.t = time.Time{}
		return nil
	case []byte:
		return s.parse(string(v))
	case string:
		return s.parse(v)
	default:
		return fmt.Errorf("unsupported timestamp type %T", src)
	}
}

func (s timestampScanner) parse(value string) error {
	for _, layout := range sqliteTimestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			*s.t = t
			return nil
		}
	}
	return fmt.Errorf("unsupported timestamp format %q", value)
}
