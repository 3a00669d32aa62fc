// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-char-keeper/internal/logger"
	"github.com/MKhiriev/go-char-keeper/models"
)

type userCharacterRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserCharacterRepository constructs a [UserCharacterRepository] over the
// user_characters and characters tables.
func NewUserCharacterRepository(db *DB, logger *logger.Logger) UserCharacterRepository {
	logger.Debug().Msg("creating user character repository")
	return &userCharacterRepository{
		db:     db,
		logger: logger,
	}
}

func (r *userCharacterRepository) GetActiveUserCharacters(ctx context.Context, userID int64) ([]models.UserCharacter, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectActiveUserCharactersQuery(r.db.builder(), userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userCharacterRepository.GetActiveUserCharacters").Msg("error querying links")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, r.db.classify(err))
	}
	defer rows.Close()

	links := make([]models.UserCharacter, 0)
	for rows.Next() {
		var link models.UserCharacter
		if err := rows.Scan(
			&link.ID, &link.UserID, &link.Active, &link.Main, &link.CreatedAt, &link.UpdatedAt,
			&link.Character.ID, &link.Character.CharacterID, &link.Character.Name,
		); err != nil {
			log.Err(err).Str("func", "*userCharacterRepository.GetActiveUserCharacters").Msg("error scanning link")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		links = append(links, link)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return links, nil
}

// SaveMainFlags updates every link inside one transaction. A link that does
// not belong to userID aborts the whole batch with
// [ErrUserCharacterNotFound].
func (r *userCharacterRepository) SaveMainFlags(ctx context.Context, userID int64, links []models.UserCharacter) error {
	log := logger.FromContext(ctx)

	if len(links) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*userCharacterRepository.SaveMainFlags").Msg("error beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, r.db.classify(err))
	}
	defer tx.Rollback()

	for _, link := range links {
		query, args, err := buildUpdateMainFlagQuery(r.db.builder(), userID, link.ID, link.Main)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			log.Err(err).Str("func", "*userCharacterRepository.SaveMainFlags").Int64("link_id", link.ID).Msg("error updating main flag")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, r.db.classify(err))
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if affected == 0 {
			return fmt.Errorf("%w: link %d", ErrUserCharacterNotFound, link.ID)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*userCharacterRepository.SaveMainFlags").Msg("error committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, r.db.classify(err))
	}

	return nil
}

func (r *userCharacterRepository) FindUsersWithBrokenMainCharacter(ctx context.Context, limit int) ([]int64, error) {
	log := logger.FromContext(ctx)

	if limit <= 0 {
		return nil, nil
	}

	query, args, err := buildSelectBrokenMainCharacterUsersQuery(r.db.builder(), limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userCharacterRepository.FindUsersWithBrokenMainCharacter").Msg("error querying users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, r.db.classify(err))
	}
	defer rows.Close()

	var userIDs []int64
	for rows.Next() {
		var userID int64
		if err := rows.Scan(&userID); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		userIDs = append(userIDs, userID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return userIDs, nil
}
