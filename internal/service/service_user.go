// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-char-keeper/internal/config"
	"github.com/MKhiriev/go-char-keeper/internal/logger"
	"github.com/MKhiriev/go-char-keeper/internal/store"
	"github.com/MKhiriev/go-char-keeper/internal/validators"
	"github.com/MKhiriev/go-char-keeper/models"
)

type userService struct {
	userRepository         store.UserRepository
	userAPIRepository      store.UserAPIRepository
	mapRepository          store.MapRepository
	characterLogRepository store.CharacterLogRepository

	characterService CharacterService
	validator        validators.Validator

	// mapsLimit bounds the number of maps returned by GetMaps.
	mapsLimit int

	logger *logger.Logger
}

func NewUserService(
	userRepository store.UserRepository,
	userAPIRepository store.UserAPIRepository,
	mapRepository store.MapRepository,
	characterLogRepository store.CharacterLogRepository,
	characterService CharacterService,
	validator validators.Validator,
	cfg config.App,
	logger *logger.Logger,
) UserService {
	return &userService{
		userRepository:         userRepository,
		userAPIRepository:      userAPIRepository,
		mapRepository:          mapRepository,
		characterLogRepository: characterLogRepository,
		characterService:       characterService,
		validator:              validator,
		mapsLimit:              cfg.MapsLimit,
		logger:                 logger,
	}
}

func (u *userService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	if userID <= 0 {
		return models.User{}, ErrInvalidUserID
	}

	user, err := u.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("error finding user: %w", err)
	}

	return user, nil
}

func (u *userService) GetUserByName(ctx context.Context, name string) (models.User, error) {
	if name == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	user, err := u.userRepository.FindUserByName(ctx, name)
	if err != nil {
		return models.User{}, fmt.Errorf("error finding user: %w", err)
	}

	return user, nil
}

// UpdateEmail checks the address syntax and stores it.
// Uniqueness is not required.
func (u *userService) UpdateEmail(ctx context.Context, userID int64, email string) error {
	log := logger.FromContext(ctx)

	if userID <= 0 {
		return ErrInvalidUserID
	}

	if err := u.validator.Validate(ctx, models.EmailUpdateRequest{Email: email}); err != nil {
		log.Err(err).Str("func", "*userService.UpdateEmail").Int64("user_id", userID).Msg("invalid email provided")
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err := u.userRepository.UpdateEmail(ctx, userID, email); err != nil {
		log.Err(err).Str("func", "*userService.UpdateEmail").Int64("user_id", userID).Msg("error updating email")
		return fmt.Errorf("error updating email: %w", err)
	}

	return nil
}

func (u *userService) GetAPIs(ctx context.Context, userID int64) ([]models.UserAPI, error) {
	if _, err := u.GetUser(ctx, userID); err != nil {
		return nil, err
	}

	apis, err := u.userAPIRepository.GetActiveUserAPIs(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.GetAPIs").Int64("user_id", userID).Msg("error getting user apis")
		return nil, fmt.Errorf("error getting user apis: %w", err)
	}
	if apis == nil {
		apis = []models.UserAPI{}
	}

	return apis, nil
}

func (u *userService) GetMaps(ctx context.Context, userID int64) ([]models.Map, error) {
	if _, err := u.GetUser(ctx, userID); err != nil {
		return nil, err
	}

	maps, err := u.mapRepository.GetActiveUserMaps(ctx, userID, u.mapsLimit)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.GetMaps").Int64("user_id", userID).Msg("error getting user maps")
		return nil, fmt.Errorf("error getting user maps: %w", err)
	}
	if maps == nil {
		maps = []models.Map{}
	}

	return maps, nil
}

// GetData builds the aggregated account view. The active character carries
// its location log when one exists.
func (u *userService) GetData(ctx context.Context, userID, sessionCharacterID int64) (models.UserData, error) {
	user, err := u.GetUser(ctx, userID)
	if err != nil {
		return models.UserData{}, err
	}

	apis, err := u.GetAPIs(ctx, userID)
	if err != nil {
		return models.UserData{}, err
	}

	characters, err := u.characterService.GetUserCharacters(ctx, userID)
	if err != nil {
		return models.UserData{}, err
	}

	active, err := u.characterService.GetActiveCharacter(ctx, userID, sessionCharacterID)
	if err != nil {
		return models.UserData{}, err
	}

	if active != nil {
		logs, err := u.characterLogRepository.GetCharacterLogs(ctx, active.Character.ID)
		if err != nil {
			logger.FromContext(ctx).Err(err).Str("func", "*userService.GetData").Int64("user_id", userID).Msg("error getting character log")
			return models.UserData{}, fmt.Errorf("error getting character log: %w", err)
		}
		if characterLog, ok := logs[active.Character.ID]; ok {
			active.Log = &characterLog
		}
	}

	return models.UserData{
		ID:         user.UserID,
		Name:       user.Name,
		Email:      user.Email,
		APIs:       apis,
		Characters: characters,
		Character:  active,
	}, nil
}
