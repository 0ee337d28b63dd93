// Copyright (c) 2026 Amar Infâncias. All rights reserved.
// Author: dev@amarinfancias.com.br

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/amarinfancias/amar-api/internal/platform/apperr"
	"github.com/amarinfancias/amar-api/internal/platform/constants"
	"github.com/amarinfancias/amar-api/internal/platform/middleware"
	"github.com/amarinfancias/amar-api/internal/platform/postgres"
)

// PostgresStore implements [Store] and [middleware.SessionReader] on the
// users.account table.
//
// # Error Mapping
//
// Storage-specific errors (like pgx.ErrNoRows) are mapped to domain-friendly
// [apperr.AppError] types to avoid leaking storage implementation details.
type PostgresStore struct {
	db postgres.DB
}

// NewPostgresStore creates the PostgreSQL implementation of [Store].
func NewPostgresStore(db postgres.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// FindByEmail retrieves an account by its unique email address.
//
// # Returns
//
// Returns [*User] if found. A missing account yields [apperr.BadRequest]
// with the same generic message the password check produces, keeping the
// two failure modes indistinguishable to the client.
func (store *PostgresStore) FindByEmail(ctx context.Context, email string) (*User, error) {
	const query = `
		SELECT id, name, email, passwordhash, pictureurl, refreshtoken, refreshtokenexpiresat, createdat, updatedat
		FROM users.account
		WHERE email = $1`

	user := &User{}
	err := store.db.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.PictureURL,
		&user.RefreshToken,
		&user.RefreshTokenExpiresAt,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.BadRequest(constants.MsgLoginInvalid)
		}
		return nil, fmt.Errorf("auth_store_find_by_email_failed: %w", err)
	}

	return user, nil
}

// SaveSession overwrites the stored refresh token and expiry for an account.
func (store *PostgresStore) SaveSession(ctx context.Context, userID, refreshToken string, expiresAt time.Time) error {
	const query = `
		UPDATE users.account
		SET refreshtoken = $2, refreshtokenexpiresat = $3, updatedat = $4
		WHERE id = $1`

	tag, err := store.db.Exec(ctx, query, userID, refreshToken, expiresAt, time.Now())
	if err != nil {
		return fmt.Errorf("auth_store_save_session_failed: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound(constants.MsgUserNotFound)
	}

	return nil
}

// ClearSession nulls the stored refresh token for the account with the given
// email. Matching zero rows is fine: logout is idempotent.
func (store *PostgresStore) ClearSession(ctx context.Context, email string) error {
	const query = `
		UPDATE users.account
		SET refreshtoken = NULL, refreshtokenexpiresat = NULL, updatedat = $2
		WHERE email = $1`

	if _, err := store.db.Exec(ctx, query, email, time.Now()); err != nil {
		return fmt.Errorf("auth_store_clear_session_failed: %w", err)
	}

	return nil
}

// SessionByEmail loads the credential slice the session guard needs for a
// renewal decision. Implements [middleware.SessionReader].
func (store *PostgresStore) SessionByEmail(ctx context.Context, email string) (*middleware.SessionCredential, error) {
	const query = `
		SELECT id, name, email, refreshtoken, refreshtokenexpiresat
		FROM users.account
		WHERE email = $1`

	credential := &middleware.SessionCredential{}
	err := store.db.QueryRow(ctx, query, email).Scan(
		&credential.UserID,
		&credential.Name,
		&credential.Email,
		&credential.RefreshToken,
		&credential.RefreshTokenExpiresAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound(constants.MsgUserNotFound)
		}
		return nil, fmt.Errorf("auth_store_session_by_email_failed: %w", err)
	}

	return credential, nil
}
