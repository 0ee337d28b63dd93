// Copyright (c) 2026 Amar Infâncias. All rights reserved.
// Author: dev@amarinfancias.com.br

package child

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/amarinfancias/amar-api/internal/core/client"
	"github.com/amarinfancias/amar-api/internal/platform/apperr"
	"github.com/amarinfancias/amar-api/internal/platform/dberr"
	"github.com/amarinfancias/amar-api/internal/platform/postgres"
)

// PostgresStore implements [Store] on the core.child table.
type PostgresStore struct {
	db postgres.DB
}

// NewPostgresStore creates the PostgreSQL implementation of [Store].
func NewPostgresStore(db postgres.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Create persists a new child record. The caregiver foreign key turns a
// dangling caregiverId into apperr.NotFound.
func (store *PostgresStore) Create(ctx context.Context, child *Child) error {
	const query = `
		INSERT INTO core.child (id, name, caregiverid, createdat, updatedat)
		VALUES ($1, $2, $3, $4, $5)`

	now := time.Now()
	child.CreatedAt = now
	child.UpdatedAt = now

	_, err := store.db.Exec(ctx, query,
		child.ID,
		child.Name,
		child.CaregiverID,
		child.CreatedAt,
		child.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return apperr.NotFound(MsgCaregiverNotFound)
		}
		return dberr.Wrap(err, "child_store_create_failed")
	}

	return nil
}

// FindAll lists every child, newest first.
func (store *PostgresStore) FindAll(ctx context.Context) ([]Child, error) {
	const query = `
		SELECT id, name, caregiverid, createdat, updatedat
		FROM core.child
		ORDER BY createdat DESC`

	rows, err := store.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "child_store_find_all_failed")
	}
	defer rows.Close()

	children := []Child{}
	for rows.Next() {
		var c Child
		if err := rows.Scan(&c.ID, &c.Name, &c.CaregiverID, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, dberr.Wrap(err, "child_store_scan_failed")
		}
		children = append(children, c)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "child_store_rows_failed")
	}

	return children, nil
}

// FindByID retrieves one child joined with its caregiver.
func (store *PostgresStore) FindByID(ctx context.Context, id string) (*Child, error) {
	const query = `
		SELECT ch.id, ch.name, ch.caregiverid, ch.createdat, ch.updatedat,
			cl.id, cl.name, cl.email, cl.phonenumber, cl.address, cl.city,
			cl.cpf, cl.rg, cl.instagram, cl.createdat, cl.updatedat
		FROM core.child ch
		JOIN core.client cl ON cl.id = ch.caregiverid
		WHERE ch.id = $1`

	c := &Child{Caregiver: &client.Client{}}
	err := store.db.QueryRow(ctx, query, id).Scan(
		&c.ID,
		&c.Name,
		&c.CaregiverID,
		&c.CreatedAt,
		&c.UpdatedAt,
		&c.Caregiver.ID,
		&c.Caregiver.Name,
		&c.Caregiver.Email,
		&c.Caregiver.PhoneNumber,
		&c.Caregiver.Address,
		&c.Caregiver.City,
		&c.Caregiver.CPF,
		&c.Caregiver.RG,
		&c.Caregiver.Instagram,
		&c.Caregiver.CreatedAt,
		&c.Caregiver.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound(MsgNotFound)
		}
		return nil, dberr.Wrap(err, "child_store_find_by_id_failed")
	}

	return c, nil
}

// UpdateName renames a child and returns the updated row.
func (store *PostgresStore) UpdateName(ctx context.Context, id, name string) (*Child, error) {
	const query = `
		UPDATE core.child
		SET name = $2, updatedat = $3
		WHERE id = $1
		RETURNING id, name, caregiverid, createdat, updatedat`

	c := &Child{}
	err := store.db.QueryRow(ctx, query, id, name, time.Now()).Scan(
		&c.ID,
		&c.Name,
		&c.CaregiverID,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound(MsgNotFound)
		}
		return nil, dberr.Wrap(err, "child_store_update_failed")
	}

	return c, nil
}

// Delete removes a child row permanently.
func (store *PostgresStore) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM core.child WHERE id = $1`

	tag, err := store.db.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, "child_store_delete_failed")
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound(MsgNotFound)
	}

	return nil
}
