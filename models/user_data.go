// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// UserData is the aggregated view of a user returned to clients: account
// fields, active API links, all active character links and the currently
// active character (with its log attached when available).
type UserData struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	APIs       []UserAPI       `json:"api,omitempty"`
	Characters []UserCharacter `json:"characters"`
	Character  *UserCharacter  `json:"character,omitempty"`
}

// MainCharacterRequest is the body of a main character selection request.
// A zero CharacterID asks the server to pick the default main character.
type MainCharacterRequest struct {
	CharacterID int64 `json:"character_id"`
}

// EmailUpdateRequest is the body of an email change request.
type EmailUpdateRequest struct {
	Email string `json:"email"`
}
