// Copyright (c) 2026 Amar Infâncias. All rights reserved.
// Author: dev@amarinfancias.com.br

/*
Package auth implements the session lifecycle for the admin backend.

It defines the account entity together with the login, logout and
reset-landing flows built on the dual-cookie session scheme (short-lived
access token + long-lived refresh token, both stored as httpOnly cookies).

# Architecture

This layer is the "Truth" of the system. The entity defined here has no
external dependencies and encapsulates all business rules related to the
account's credentials and its single live session.
*/
package auth

import (
	"time"
)

// # Domain Entities

// User represents an admin account of the Amar backoffice.
//
// # Session Columns
//
// RefreshToken and RefreshTokenExpiresAt live directly on the account row:
// each account holds at most ONE live refresh token, and a new login simply
// overwrites the previous one. There is no session table.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"` // Explicitly omitted from JSON for security.
	PictureURL   string `json:"picture_url,omitempty"`

	// RefreshToken is the stored copy of the refresh token issued by the most
	// recent login, or nil after a logout. Omitted from JSON.
	RefreshToken *string `json:"-"`

	// RefreshTokenExpiresAt is the server-side expiry of the stored refresh
	// token. The session guard compares it against the clock on every
	// renewal, independently of the token's own exp claim.
	RefreshTokenExpiresAt *time.Time `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// # Field Identifiers

// Global field names for validation and identity mapping in the auth domain.
const (
	FieldName       = "name"
	FieldEmail      = "email"
	FieldPassword   = "password"
	FieldResetToken = "resetToken"
	FieldUser       = "user"
)
