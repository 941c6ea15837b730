// Copyright (c) 2026 Inner Garden. All rights reserved.

package auth

import (
	"github.com/innergarden/gallery/internal/platform/sec"
)

// Field names for login validation.
const (
	FieldUsername = "username"
	FieldPassword = "password"
)

// Account is a back-office operator configured at deployment time.
//
// There is no user table: the gallery has a handful of operators whose
// credentials live in the environment as bcrypt hashes.
type Account struct {
	Username     string
	PasswordHash string
	Role         sec.UserRole
}

// Session is an issued access token.
type Session struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresIn   int          `json:"expires_in"`
	Username    string       `json:"username"`
	Role        sec.UserRole `json:"role"`
}
