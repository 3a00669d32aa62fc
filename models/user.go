// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an application account. A user owns zero or more linked
// characters ([UserCharacter]) and zero or more linked API credentials
// ([UserAPI]).
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is immutable after creation.
	UserID int64 `json:"id"`

	// Name is the unique display name of the user.
	// 5..20 characters of letters, digits, spaces, '_' and '-'.
	Name string `json:"name"`

	// Email is the contact address of the user. Not necessarily unique.
	Email string `json:"email"`

	// Password carries the plain-text password on registration and login
	// requests only. It is never persisted.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt digest stored in the database.
	// It is never exposed via JSON.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
