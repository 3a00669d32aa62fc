package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidUserID       = errors.New("invalid user id")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	// ErrCharacterSelectionBusy is returned when another main character
	// change for the same user held the lock for the whole retry window.
	ErrCharacterSelectionBusy = errors.New("character selection is busy")

	ErrStorageUnavailable = errors.New("storage unavailable")
)
