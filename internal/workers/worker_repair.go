// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-char-keeper/internal/config"
	"github.com/MKhiriev/go-char-keeper/internal/logger"
	"github.com/MKhiriev/go-char-keeper/internal/metrics"
	"github.com/MKhiriev/go-char-keeper/internal/service"
	"github.com/MKhiriev/go-char-keeper/internal/store"
)

// MainCharacterRepairWorker periodically looks for users whose active links
// do not carry exactly one main flag and restores the flag for them.
type MainCharacterRepairWorker struct {
	userCharacterRepository store.UserCharacterRepository
	characterService        service.CharacterService
	metrics                 *metrics.Metrics

	interval  time.Duration
	batchSize int

	logger *logger.Logger
}

func NewMainCharacterRepairWorker(
	userCharacterRepository store.UserCharacterRepository,
	characterService service.CharacterService,
	m *metrics.Metrics,
	cfg config.Workers,
	logger *logger.Logger,
) *MainCharacterRepairWorker {
	return &MainCharacterRepairWorker{
		userCharacterRepository: userCharacterRepository,
		characterService:        characterService,
		metrics:                 m,
		interval:                cfg.RepairInterval,
		batchSize:               cfg.RepairBatchSize,
		logger:                  logger,
	}
}

func (w *MainCharacterRepairWorker) Run(ctx context.Context) {
	log := w.logger.With().Str("worker", "main-character-repair").Logger()
	log.Info().Dur("interval", w.interval).Int("batch", w.batchSize).Msg("worker started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("worker stopped")
			return
		case <-ticker.C:
			repaired, err := w.RepairOnce(ctx)
			if err != nil {
				log.Err(err).Int("repaired", repaired).Msg("repair pass failed")
				continue
			}
			if repaired > 0 {
				log.Info().Int("repaired", repaired).Msg("repair pass finished")
			}
		}
	}
}

// RepairOnce runs a single pass and returns how many users were repaired.
// Users whose repair fails on a busy lock or a transient storage error are
// skipped until the next pass; any other failure aborts the pass.
func (w *MainCharacterRepairWorker) RepairOnce(ctx context.Context) (int, error) {
	userIDs, err := w.userCharacterRepository.FindUsersWithBrokenMainCharacter(ctx, w.batchSize)
	if err != nil {
		return 0, err
	}

	repaired := 0
	for _, userID := range userIDs {
		if ctx.Err() != nil {
			return repaired, ctx.Err()
		}

		err = w.characterService.RepairMainCharacter(ctx, userID)
		switch {
		case err == nil:
			repaired++
			w.metrics.UserRepaired()
		case errors.Is(err, service.ErrCharacterSelectionBusy), errors.Is(err, store.ErrTransientDB):
			w.logger.Warn().Err(err).Int64("user_id", userID).Msg("repair postponed")
		default:
			return repaired, err
		}
	}

	return repaired, nil
}
