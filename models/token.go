// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Token is an issued or parsed bearer token.
//
// SignedString holds the compact JWS form (header.payload.signature) that is
// sent in the "Authorization" header. UserID is the owner parsed from the
// "sub" claim; ExpiresAt mirrors the "exp" claim.
type Token struct {
	SignedString string    `json:"-"`
	UserID       int64     `json:"-"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
