// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// NoCharacter is the external character identifier meaning "no preference".
// Passed to character selection it triggers the fallback main selection;
// passed as a session signal it means no session override is present.
const NoCharacter int64 = 0

// Character is the master record of an in-game character. It is referenced,
// not owned, by [UserCharacter] links.
type Character struct {
	// ID is the internal row identifier.
	ID int64 `json:"-"`

	// CharacterID is the external game identifier of the character.
	CharacterID int64 `json:"character_id"`

	// Name is the in-game character name.
	Name string `json:"name"`
}

// TableName returns the name of the database table
// associated with the Character model.
func (c Character) TableName() string {
	return "characters"
}
