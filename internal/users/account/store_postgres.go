// Copyright (c) 2026 Amar Infâncias. All rights reserved.
// Author: dev@amarinfancias.com.br

package account

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/amarinfancias/amar-api/internal/platform/apperr"
	"github.com/amarinfancias/amar-api/internal/platform/constants"
	"github.com/amarinfancias/amar-api/internal/platform/dberr"
	"github.com/amarinfancias/amar-api/internal/platform/postgres"
	"github.com/amarinfancias/amar-api/internal/users/auth"
)

// PostgresStore implements [Store] on the users.account table.
type PostgresStore struct {
	db postgres.DB
}

// NewPostgresStore creates the PostgreSQL implementation of [Store].
func NewPostgresStore(db postgres.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const accountColumns = `id, name, email, passwordhash, pictureurl, refreshtoken, refreshtokenexpiresat, createdat, updatedat`

// scanAccount hydrates one account row into the shared entity.
func scanAccount(row pgx.Row) (*auth.User, error) {
	user := &auth.User{}
	err := row.Scan(
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
		return nil, err
	}
	return user, nil
}

// Create persists a new account record.
func (store *PostgresStore) Create(ctx context.Context, user *auth.User) error {
	const query = `
		INSERT INTO users.account (
			id, name, email, passwordhash, pictureurl, createdat, updatedat
		) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	_, err := store.db.Exec(ctx, query,
		user.ID,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.PictureURL,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return apperr.Conflict(MsgUserDuplicate)
		}
		return dberr.Wrap(err, "account_store_create_failed")
	}

	return nil
}

// FindAll lists every account ordered by creation, newest first.
func (store *PostgresStore) FindAll(ctx context.Context) ([]auth.User, error) {
	const query = `
		SELECT ` + accountColumns + `
		FROM users.account
		ORDER BY createdat DESC`

	rows, err := store.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "account_store_find_all_failed")
	}
	defer rows.Close()

	users := []auth.User{}
	for rows.Next() {
		user, err := scanAccount(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "account_store_scan_failed")
		}
		users = append(users, *user)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "account_store_rows_failed")
	}

	return users, nil
}

// FindByID retrieves an account record by its UUID.
func (store *PostgresStore) FindByID(ctx context.Context, id string) (*auth.User, error) {
	const query = `
		SELECT ` + accountColumns + `
		FROM users.account
		WHERE id = $1`

	user, err := scanAccount(store.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound(constants.MsgUserNotFound)
		}
		return nil, dberr.Wrap(err, "account_store_find_by_id_failed")
	}

	return user, nil
}

// FindByEmail retrieves an account record by its unique email.
func (store *PostgresStore) FindByEmail(ctx context.Context, email string) (*auth.User, error) {
	const query = `
		SELECT ` + accountColumns + `
		FROM users.account
		WHERE email = $1`

	user, err := scanAccount(store.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound(constants.MsgUserNotFound)
		}
		return nil, dberr.Wrap(err, "account_store_find_by_email_failed")
	}

	return user, nil
}

// Update persists changes to the mutable profile fields.
func (store *PostgresStore) Update(ctx context.Context, user *auth.User) error {
	const query = `
		UPDATE users.account
		SET name = $2, email = $3, pictureurl = $4, updatedat = $5
		WHERE id = $1`

	user.UpdatedAt = time.Now()
	tag, err := store.db.Exec(ctx, query,
		user.ID,
		user.Name,
		user.Email,
		user.PictureURL,
		user.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return apperr.Conflict(MsgUserDuplicate)
		}
		return dberr.Wrap(err, "account_store_update_failed")
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound(constants.MsgUserNotFound)
	}

	return nil
}

// UpdatePassword replaces only the password hash for a specific account.
func (store *PostgresStore) UpdatePassword(ctx context.Context, userID, newHash string) error {
	const query = `
		UPDATE users.account
		SET passwordhash = $2, updatedat = $3
		WHERE id = $1`

	tag, err := store.db.Exec(ctx, query, userID, newHash, time.Now())
	if err != nil {
		return dberr.Wrap(err, "account_store_update_password_failed")
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound(constants.MsgUserNotFound)
	}

	return nil
}

// Delete permanently removes an account row.
func (store *PostgresStore) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM users.account WHERE id = $1`

	tag, err := store.db.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, "account_store_delete_failed")
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound(constants.MsgUserNotFound)
	}

	return nil
}

// isUniqueViolation reports whether err is a unique-constraint violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
