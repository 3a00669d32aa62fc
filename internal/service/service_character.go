// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-char-keeper/internal/lock"
	"github.com/MKhiriev/go-char-keeper/internal/logger"
	"github.com/MKhiriev/go-char-keeper/internal/metrics"
	"github.com/MKhiriev/go-char-keeper/internal/store"
	"github.com/MKhiriev/go-char-keeper/models"
)

// characterService is the concrete implementation of CharacterService.
type characterService struct {
	userRepository          store.UserRepository
	userCharacterRepository store.UserCharacterRepository
	characterLogRepository  store.CharacterLogRepository

	// locker serializes main flag changes of one user across goroutines and,
	// with the redis backend, across server instances.
	locker   lock.Locker
	lockOpts lock.Options

	metrics *metrics.Metrics
	logger  *logger.Logger
}

func NewCharacterService(
	userRepository store.UserRepository,
	userCharacterRepository store.UserCharacterRepository,
	characterLogRepository store.CharacterLogRepository,
	locker lock.Locker,
	lockOpts lock.Options,
	m *metrics.Metrics,
	logger *logger.Logger,
) CharacterService {
	return &characterService{
		userRepository:          userRepository,
		userCharacterRepository: userCharacterRepository,
		characterLogRepository:  characterLogRepository,
		locker:                  locker,
		lockOpts:                lockOpts,
		metrics:                 m,
		logger:                  logger,
	}
}

// SetMainCharacter resolves the user, takes the per-user lock, re-reads the
// active links and stores the new main flags in one transaction.
//
// An unknown characterID is not an error: the first link becomes main.
// A user without active links is left untouched.
func (s *characterService) SetMainCharacter(ctx context.Context, userID, characterID int64) error {
	return s.updateMainCharacter(ctx, userID, "*characterService.SetMainCharacter", func([]models.UserCharacter) int64 {
		return characterID
	})
}

func (s *characterService) RepairMainCharacter(ctx context.Context, userID int64) error {
	return s.updateMainCharacter(ctx, userID, "*characterService.RepairMainCharacter", func(links []models.UserCharacter) int64 {
		if current := firstMain(links); current != nil {
			return current.Character.CharacterID
		}
		return models.NoCharacter
	})
}

// updateMainCharacter runs one main flag change under the user lock.
// pick chooses the wanted character from the links read inside the lock.
func (s *characterService) updateMainCharacter(ctx context.Context, userID int64, funcName string, pick func([]models.UserCharacter) int64) (err error) {
	log := logger.FromContext(ctx)

	if err = s.ensureUser(ctx, userID); err != nil {
		s.metrics.MainCharacterSelected(metrics.SelectionFailed)
		return err
	}

	userLock := lock.NewLock(s.locker, lock.Keys.UserCharacters(userID), s.lockOpts)
	if err = userLock.Acquire(ctx); err != nil {
		s.metrics.MainCharacterSelected(metrics.SelectionFailed)
		log.Err(err).Str("func", funcName).Int64("user_id", userID).Msg("error acquiring user characters lock")
		if errors.Is(err, lock.ErrNotAcquired) {
			return ErrCharacterSelectionBusy
		}
		return fmt.Errorf("%w: %w", ErrCharacterSelectionBusy, err)
	}
	defer func() {
		// release even when the request context is already cancelled
		if releaseErr := userLock.Release(context.WithoutCancel(ctx)); releaseErr != nil {
			log.Err(releaseErr).Str("func", funcName).Int64("user_id", userID).Msg("error releasing user characters lock")
		}
	}()

	links, err := s.userCharacterRepository.GetActiveUserCharacters(ctx, userID)
	if err != nil {
		s.metrics.MainCharacterSelected(metrics.SelectionFailed)
		log.Err(err).Str("func", funcName).Int64("user_id", userID).Msg("error getting user characters")
		return fmt.Errorf("error getting user characters: %w", err)
	}

	if len(links) == 0 {
		s.metrics.MainCharacterSelected(metrics.SelectionEmpty)
		return nil
	}

	characterID := pick(links)
	result := selectMain(links, characterID)

	// the flags were computed under the lock; an expired lock may already
	// belong to another writer
	if err = userLock.Extend(ctx); err != nil {
		s.metrics.MainCharacterSelected(metrics.SelectionFailed)
		log.Err(err).Str("func", funcName).Int64("user_id", userID).Msg("user characters lock lost before save")
		return fmt.Errorf("%w: %w", ErrCharacterSelectionBusy, err)
	}

	if err = s.userCharacterRepository.SaveMainFlags(ctx, userID, links); err != nil {
		s.metrics.MainCharacterSelected(metrics.SelectionFailed)
		log.Err(err).Str("func", funcName).Int64("user_id", userID).Msg("error saving main character")
		return fmt.Errorf("error saving main character: %w", err)
	}

	s.metrics.MainCharacterSelected(result)
	log.Debug().
		Str("func", funcName).
		Int64("user_id", userID).
		Int64("character_id", characterID).
		Str("result", result).
		Msg("main character selected")

	return nil
}

func (s *characterService) GetMainCharacter(ctx context.Context, userID int64) (*models.UserCharacter, error) {
	links, err := s.activeLinks(ctx, userID, "*characterService.GetMainCharacter")
	if err != nil {
		return nil, err
	}

	return firstMain(links), nil
}

func (s *characterService) GetActiveCharacter(ctx context.Context, userID, sessionCharacterID int64) (*models.UserCharacter, error) {
	links, err := s.activeLinks(ctx, userID, "*characterService.GetActiveCharacter")
	if err != nil {
		return nil, err
	}

	if sessionCharacterID != models.NoCharacter {
		if link := findByCharacterID(links, sessionCharacterID); link != nil {
			return link, nil
		}
	}

	return firstMain(links), nil
}

func (s *characterService) GetActiveCharacters(ctx context.Context, userID int64) ([]models.UserCharacter, error) {
	log := logger.FromContext(ctx)

	links, err := s.activeLinks(ctx, userID, "*characterService.GetActiveCharacters")
	if err != nil {
		return nil, err
	}

	result := make([]models.UserCharacter, 0, len(links))
	if len(links) == 0 {
		return result, nil
	}

	refs := make([]int64, 0, len(links))
	for _, link := range links {
		refs = append(refs, link.Character.ID)
	}

	logs, err := s.characterLogRepository.GetCharacterLogs(ctx, refs...)
	if err != nil {
		log.Err(err).Str("func", "*characterService.GetActiveCharacters").Int64("user_id", userID).Msg("error getting character logs")
		return nil, fmt.Errorf("error getting character logs: %w", err)
	}

	for _, link := range links {
		characterLog, ok := logs[link.Character.ID]
		if !ok {
			continue
		}
		link.Log = &characterLog
		result = append(result, link)
	}

	return result, nil
}

func (s *characterService) GetUserCharacters(ctx context.Context, userID int64) ([]models.UserCharacter, error) {
	links, err := s.activeLinks(ctx, userID, "*characterService.GetUserCharacters")
	if err != nil {
		return nil, err
	}
	if links == nil {
		links = []models.UserCharacter{}
	}
	return links, nil
}

func (s *characterService) activeLinks(ctx context.Context, userID int64, funcName string) ([]models.UserCharacter, error) {
	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}

	links, err := s.userCharacterRepository.GetActiveUserCharacters(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Int64("user_id", userID).Msg("error getting user characters")
		return nil, fmt.Errorf("error getting user characters: %w", err)
	}

	return links, nil
}

func (s *characterService) ensureUser(ctx context.Context, userID int64) error {
	if userID <= 0 {
		return ErrInvalidUserID
	}

	if _, err := s.userRepository.FindUserByID(ctx, userID); err != nil {
		if !errors.Is(err, store.ErrNoUserWasFound) {
			logger.FromContext(ctx).Err(err).Str("func", "*characterService.ensureUser").Int64("user_id", userID).Msg("error finding user")
		}
		return fmt.Errorf("error finding user: %w", err)
	}

	return nil
}

// selectMain flags the first link referencing characterID as main and clears
// every other link. Without a match the first link becomes main.
// It returns the selection result label.
func selectMain(links []models.UserCharacter, characterID int64) string {
	chosen, result := 0, metrics.SelectionFallback
	if characterID != models.NoCharacter {
		for i := range links {
			if links[i].Character.CharacterID == characterID {
				chosen, result = i, metrics.SelectionMatched
				break
			}
		}
	}

	for i := range links {
		links[i].Main = i == chosen
	}

	return result
}

func firstMain(links []models.UserCharacter) *models.UserCharacter {
	for i := range links {
		if links[i].IsMain() {
			link := links[i]
			return &link
		}
	}
	return nil
}

func findByCharacterID(links []models.UserCharacter, characterID int64) *models.UserCharacter {
	for i := range links {
		if links[i].Character.CharacterID == characterID {
			link := links[i]
			return &link
		}
	}
	return nil
}
