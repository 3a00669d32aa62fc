// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-char-keeper/internal/logger"
	"github.com/MKhiriev/go-char-keeper/models"
)

type characterLogRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewCharacterLogRepository(db *DB, logger *logger.Logger) CharacterLogRepository {
	logger.Debug().Msg("creating character log repository")
	return &characterLogRepository{
		db:     db,
		logger: logger,
	}
}

func (r *characterLogRepository) GetCharacterLogs(ctx context.Context, characterRefs ...int64) (map[int64]models.CharacterLog, error) {
	log := logger.FromContext(ctx)

	logs := make(map[int64]models.CharacterLog, len(characterRefs))
	if len(characterRefs) == 0 {
		return logs, nil
	}

	query, args, err := buildSelectCharacterLogsQuery(r.db.builder(), characterRefs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*characterLogRepository.GetCharacterLogs").Msg("error querying logs")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, r.db.classify(err))
	}
	defer rows.Close()

	for rows.Next() {
		var l models.CharacterLog
		if err := rows.Scan(&l.ID, &l.CharacterRef, &l.SystemID, &l.SystemName, &l.ShipTypeName, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		logs[l.CharacterRef] = l
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return logs, nil
}
