// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// UserCharacter links a [User] to a [Character].
//
// Active is a soft-delete flag: inactive links are kept for history but are
// never returned by the character selection operations. Main marks the
// user's primary character; among the active links of one user at most one
// carries Main = true.
type UserCharacter struct {
	ID        int64         `json:"id"`
	UserID    int64         `json:"user_id"`
	Character Character     `json:"character"`
	Active    bool          `json:"active"`
	Main      bool          `json:"main"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
	Log       *CharacterLog `json:"log,omitempty"`
}

// IsMain reports whether the link is the user's main character.
func (uc UserCharacter) IsMain() bool {
	return uc.Main
}

// TableName returns the name of the database table
// associated with the UserCharacter model.
func (uc UserCharacter) TableName() string {
	return "user_characters"
}
