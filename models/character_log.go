// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// CharacterLog is the last known location/activity record of a character.
// There is at most one log per character; its presence means the character
// has been seen in-game.
type CharacterLog struct {
	ID           int64     `json:"-"`
	CharacterRef int64     `json:"-"`
	SystemID     int64     `json:"system_id"`
	SystemName   string    `json:"system_name"`
	ShipTypeName string    `json:"ship_type_name"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the CharacterLog model.
func (l CharacterLog) TableName() string {
	return "character_logs"
}
