// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-char-keeper/internal/logger"
	"github.com/MKhiriev/go-char-keeper/models"
)

type mapRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewMapRepository(db *DB, logger *logger.Logger) MapRepository {
	logger.Debug().Msg("creating map repository")
	return &mapRepository{
		db:     db,
		logger: logger,
	}
}

// GetActiveUserMaps returns at most limit active maps shared with userID,
// ordered by map id. A non-positive limit yields an empty result.
func (r *mapRepository) GetActiveUserMaps(ctx context.Context, userID int64, limit int) ([]models.Map, error) {
	log := logger.FromContext(ctx)

	maps := make([]models.Map, 0)
	if limit <= 0 {
		return maps, nil
	}

	query, args, err := buildSelectActiveUserMapsQuery(r.db.builder(), userID, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*mapRepository.GetActiveUserMaps").Msg("error querying maps")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, r.db.classify(err))
	}
	defer rows.Close()

	for rows.Next() {
		var m models.Map
		if err := rows.Scan(&m.ID, &m.Name, &m.Active); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		maps = append(maps, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return maps, nil
}
