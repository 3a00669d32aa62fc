// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"net/mail"
	"regexp"
	"unicode/utf8"

	"github.com/MKhiriev/go-char-keeper/models"
)

const (
	FieldName        = "name"
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldCharacterID = "character_id"
)

const (
	minNameLength     = 5
	maxNameLength     = 20
	minPasswordLength = 6
)

var userNamePattern = regexp.MustCompile(`^[ \w-]+$`)

type UserValidator struct{}

func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate checks models.User, models.EmailUpdateRequest and
// models.MainCharacterRequest values. Without fields every rule of the type
// is applied. An empty email on a user is accepted.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(value, fields...)
	case *models.User:
		return v.validateUser(*value, fields...)

	case models.EmailUpdateRequest:
		return v.validateEmail(value.Email)
	case *models.EmailUpdateRequest:
		return v.validateEmail(value.Email)

	case models.MainCharacterRequest:
		return v.validateCharacterID(value.CharacterID)
	case *models.MainCharacterRequest:
		return v.validateCharacterID(value.CharacterID)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateUser(user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if err := v.validateName(user.Name); err != nil {
				return err
			}
		case FieldEmail:
			if user.Email == "" {
				continue
			}
			if err := v.validateEmail(user.Email); err != nil {
				return err
			}
		case FieldPassword:
			if utf8.RuneCountInString(user.Password) < minPasswordLength {
				return ErrInvalidPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *UserValidator) validateName(name string) error {
	length := utf8.RuneCountInString(name)
	if length < minNameLength || length > maxNameLength || !userNamePattern.MatchString(name) {
		return ErrInvalidName
	}
	return nil
}

// validateEmail accepts a bare RFC 5322 address. Display names
// ("Pilot <p@example.com>") are rejected.
func (v *UserValidator) validateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrInvalidEmail
	}
	return nil
}

func (v *UserValidator) validateCharacterID(characterID int64) error {
	if characterID < models.NoCharacter {
		return ErrInvalidCharacterID
	}
	return nil
}
