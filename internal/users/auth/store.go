// Copyright (c) 2026 Amar Infâncias. All rights reserved.
// Author: dev@amarinfancias.com.br

package auth

import (
	"context"
	"time"
)

// Store defines the data access contract for the session lifecycle.
//
// # Review Process
//
// This interface is placed in a separate file from user.go so entity changes
// and storage-contract changes can be reviewed independently by the team.
//
// # Implementations
//
// The canonical implementation is [PostgresStore]. The same implementation
// also satisfies [middleware.SessionReader] so the session guard and the
// login flow share one storage component.
type Store interface {
	// FindByEmail returns the account with the given email.
	//
	// Returns [apperr.BadRequest] with the generic credentials message if no
	// account is registered with this email, so callers cannot distinguish
	// an unknown email from a wrong password.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// SaveSession overwrites the account's stored refresh token and its
	// server-side expiry. Last write wins: a concurrent login that commits
	// later silently invalidates the earlier one.
	SaveSession(ctx context.Context, userID, refreshToken string, expiresAt time.Time) error

	// ClearSession nulls the stored refresh token for the account with the
	// given email. Clearing an already-empty session is not an error.
	ClearSession(ctx context.Context, email string) error
}
