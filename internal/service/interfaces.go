package service

import (
	"context"

	"github.com/MKhiriev/go-char-keeper/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type UserService interface {
	GetUser(ctx context.Context, userID int64) (models.User, error)
	GetUserByName(ctx context.Context, name string) (models.User, error)
	UpdateEmail(ctx context.Context, userID int64, email string) error

	GetAPIs(ctx context.Context, userID int64) ([]models.UserAPI, error)
	GetMaps(ctx context.Context, userID int64) ([]models.Map, error)

	// GetData aggregates the account, its API keys, its characters and the
	// character active for the given session.
	GetData(ctx context.Context, userID, sessionCharacterID int64) (models.UserData, error)
}

// CharacterService selects the main and active characters of a user.
//
// Writes to the main flag are serialized per user. Reads take no lock and
// may observe the state before or after a concurrent write, never a mix.
type CharacterService interface {
	// SetMainCharacter marks the active link referencing characterID as the
	// user's main character and clears the flag on every other active link.
	// When no link matches, the first link in id order becomes main.
	SetMainCharacter(ctx context.Context, userID, characterID int64) error

	// RepairMainCharacter restores the single main flag of a user, keeping
	// the first link already flagged as main when there is one.
	RepairMainCharacter(ctx context.Context, userID int64) error

	// GetMainCharacter returns the first active link flagged as main, or nil.
	GetMainCharacter(ctx context.Context, userID int64) (*models.UserCharacter, error)

	// GetActiveCharacter returns the link of the session character when the
	// session names one the user owns, otherwise the main character.
	GetActiveCharacter(ctx context.Context, userID, sessionCharacterID int64) (*models.UserCharacter, error)

	// GetActiveCharacters returns the active links whose character has a
	// location log, with the log attached.
	GetActiveCharacters(ctx context.Context, userID int64) ([]models.UserCharacter, error)

	GetUserCharacters(ctx context.Context, userID int64) ([]models.UserCharacter, error)
}

type HealthService interface {
	Check(ctx context.Context) error
}
