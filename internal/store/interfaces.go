// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-char-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByName(ctx context.Context, name string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	UpdateEmail(ctx context.Context, userID int64, email string) error
}

// UserCharacterRepository reads and updates the links between users and
// their characters.
type UserCharacterRepository interface {
	// GetActiveUserCharacters returns the active links of userID with their
	// characters, ordered by link id.
	GetActiveUserCharacters(ctx context.Context, userID int64) ([]models.UserCharacter, error)

	// SaveMainFlags writes the Main flag of every link in a single
	// transaction. Either all flags are stored or none.
	SaveMainFlags(ctx context.Context, userID int64, links []models.UserCharacter) error

	// FindUsersWithBrokenMainCharacter returns up to limit users whose active
	// links do not carry exactly one main flag.
	FindUsersWithBrokenMainCharacter(ctx context.Context, limit int) ([]int64, error)
}

// CharacterLogRepository reads character location logs.
type CharacterLogRepository interface {
	// GetCharacterLogs returns the logs of the given characters keyed by
	// characters.id. Characters without a log are absent from the map.
	GetCharacterLogs(ctx context.Context, characterRefs ...int64) (map[int64]models.CharacterLog, error)
}

// UserAPIRepository reads the API keys attached to users.
type UserAPIRepository interface {
	GetActiveUserAPIs(ctx context.Context, userID int64) ([]models.UserAPI, error)
}

// MapRepository reads the maps shared with users.
type MapRepository interface {
	GetActiveUserMaps(ctx context.Context, userID int64, limit int) ([]models.Map, error)
}

// HealthChecker reports whether the storage backend is reachable.
type HealthChecker interface {
	PingContext(ctx context.Context) error
}
