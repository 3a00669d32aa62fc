// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// server handlers and the client adapter.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies. The client maps them back to typed errors, so the
// wording must stay in sync on both sides.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is returned for an unknown name or a wrong
	// password. Both cases share one message.
	MsgInvalidLoginPassword = "invalid login/password"

	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNoUserIDProvided is returned when an authenticated route runs
	// without a user id in the request context.
	MsgNoUserIDProvided = "no user ID provided"

	MsgUserNotFound = "user not found"

	// MsgNameAlreadyExists is returned on registration with a taken name.
	MsgNameAlreadyExists = "name already exists"

	// MsgInvalidSessionCharacter is returned when the session character
	// header is present but is not a valid character id.
	MsgInvalidSessionCharacter = "invalid session character id"

	// MsgCharacterSelectionBusy is returned when a concurrent main character
	// change for the same user kept the lock for too long.
	MsgCharacterSelectionBusy = "character selection is busy, retry later"

	// MsgCharactersChanged is returned when a character link disappeared
	// while the main character was being stored.
	MsgCharactersChanged = "characters changed, retry later"

	MsgStorageUnavailable = "storage unavailable"
)
