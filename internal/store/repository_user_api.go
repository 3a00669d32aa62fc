// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-char-keeper/internal/logger"
	"github.com/MKhiriev/go-char-keeper/models"
)

type userAPIRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewUserAPIRepository(db *DB, logger *logger.Logger) UserAPIRepository {
	logger.Debug().Msg("creating user api repository")
	return &userAPIRepository{
		db:     db,
		logger: logger,
	}
}

func (r *userAPIRepository) GetActiveUserAPIs(ctx context.Context, userID int64) ([]models.UserAPI, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectActiveUserAPIsQuery(r.db.builder(), userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userAPIRepository.GetActiveUserAPIs").Msg("error querying apis")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, r.db.classify(err))
	}
	defer rows.Close()

	apis := make([]models.UserAPI, 0)
	for rows.Next() {
		var api models.UserAPI
		if err := rows.Scan(&api.ID, &api.UserID, &api.KeyID, &api.VCode, &api.Active); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		apis = append(apis, api)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return apis, nil
}
