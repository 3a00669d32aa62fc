// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// UserAPI links a [User] to third-party game API credentials.
// VCode is a secret and is never serialized.
type UserAPI struct {
	ID     int64  `json:"id"`
	UserID int64  `json:"user_id"`
	KeyID  int64  `json:"key_id"`
	VCode  string `json:"-"`
	Active bool   `json:"active"`
}

// TableName returns the name of the database table
// associated with the UserAPI model.
func (a UserAPI) TableName() string {
	return "user_apis"
}
