// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the character keeper server.
//
// The primary abstraction is [ServerAdapter]. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-char-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the character
// keeper server. Implementations handle serialisation, the bearer token and
// the mapping of transport errors to the sentinel values of this package.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token or an empty string.
	Token() string

	// Register creates an account and stores the issued token.
	Register(ctx context.Context, user models.User) (models.User, error)

	// Login authenticates with name and password and stores the issued token.
	Login(ctx context.Context, user models.User) (models.User, error)

	// GetUserData returns the aggregated user view. A positive
	// sessionCharacterID is sent as the session character.
	GetUserData(ctx context.Context, sessionCharacterID int64) (models.UserData, error)

	// UpdateEmail changes the email of the authenticated user.
	UpdateEmail(ctx context.Context, email string) error

	GetAPIs(ctx context.Context) ([]models.UserAPI, error)
	GetMaps(ctx context.Context) ([]models.Map, error)

	// GetCharacters lists all active character links of the user.
	GetCharacters(ctx context.Context) ([]models.UserCharacter, error)

	// GetMainCharacter returns the main character, or nil when the user has
	// none.
	GetMainCharacter(ctx context.Context) (*models.UserCharacter, error)

	// SetMainCharacter asks the server to flag characterID as main. Zero lets
	// the server pick the fallback.
	SetMainCharacter(ctx context.Context, characterID int64) error

	// GetActiveCharacter resolves the character in use for the given session
	// character, or nil when the user has no characters.
	GetActiveCharacter(ctx context.Context, sessionCharacterID int64) (*models.UserCharacter, error)

	// GetLoggedCharacters lists characters that have a location log.
	GetLoggedCharacters(ctx context.Context) ([]models.UserCharacter, error)

	// Health reports whether the server and its storage are reachable.
	Health(ctx context.Context) error
}
