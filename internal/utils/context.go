// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helpers shared by the transport
// and service layers: typed context keys, JWT issuing and parsing, JSON
// response writing and the resty HTTP client wrapper.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type prevents collisions with string keys of other packages.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

var (
	// UserIDCtxKey stores the authenticated user identifier (int64).
	UserIDCtxKey = contextKey("userID")

	// SessionCharacterIDCtxKey stores the external character id signalled by
	// the client session as currently played (int64).
	SessionCharacterIDCtxKey = contextKey("sessionCharacterID")
)

// GetUserIDFromContext retrieves the user identifier from the context.
// ok is false if the value is missing or has an unexpected type.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// WithSessionCharacterID returns a copy of ctx carrying the session
// character id.
func WithSessionCharacterID(ctx context.Context, characterID int64) context.Context {
	return context.WithValue(ctx, SessionCharacterIDCtxKey, characterID)
}

// GetSessionCharacterIDFromContext returns the session character id stored
// in ctx, or 0 when none was signalled.
func GetSessionCharacterIDFromContext(ctx context.Context) int64 {
	characterID, _ := ctx.Value(SessionCharacterIDCtxKey).(int64)
	return characterID
}
