// Copyright (c) 2026 Amar Infâncias. All rights reserved.
// Author: dev@amarinfancias.com.br

package extraservice

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/amarinfancias/amar-api/internal/platform/apperr"
	"github.com/amarinfancias/amar-api/internal/platform/dberr"
	"github.com/amarinfancias/amar-api/internal/platform/postgres"
)

// PostgresStore implements [Store] on the core.extraservice table.
type PostgresStore struct {
	db postgres.DB
}

// NewPostgresStore creates the PostgreSQL implementation of [Store].
func NewPostgresStore(db postgres.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const serviceColumns = `id, name, price, description, createdat, updatedat`

func scanService(row pgx.Row) (*ExtraService, error) {
	s := &ExtraService{}
	err := row.Scan(&s.ID, &s.Name, &s.Price, &s.Description, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Create persists a new add-on service.
func (store *PostgresStore) Create(ctx context.Context, service *ExtraService) error {
	const query = `
		INSERT INTO core.extraservice (` + serviceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)`

	now := time.Now()
	service.CreatedAt = now
	service.UpdatedAt = now

	_, err := store.db.Exec(ctx, query,
		service.ID,
		service.Name,
		service.Price,
		service.Description,
		service.CreatedAt,
		service.UpdatedAt,
	)
	if err != nil {
		return dberr.Wrap(err, "extraservice_store_create_failed")
	}

	return nil
}

// FindAll lists every add-on service, newest first.
func (store *PostgresStore) FindAll(ctx context.Context) ([]ExtraService, error) {
	const query = `
		SELECT ` + serviceColumns + `
		FROM core.extraservice
		ORDER BY createdat DESC`

	rows, err := store.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "extraservice_store_find_all_failed")
	}
	defer rows.Close()

	services := []ExtraService{}
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "extraservice_store_scan_failed")
		}
		services = append(services, *s)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "extraservice_store_rows_failed")
	}

	return services, nil
}

// FindByID retrieves one add-on service by its UUID.
func (store *PostgresStore) FindByID(ctx context.Context, id string) (*ExtraService, error) {
	const query = `
		SELECT ` + serviceColumns + `
		FROM core.extraservice
		WHERE id = $1`

	s, err := scanService(store.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound(MsgNotFound)
		}
		return nil, dberr.Wrap(err, "extraservice_store_find_by_id_failed")
	}

	return s, nil
}

// Update persists changes to an add-on service.
func (store *PostgresStore) Update(ctx context.Context, service *ExtraService) error {
	const query = `
		UPDATE core.extraservice
		SET name = $2, price = $3, description = $4, updatedat = $5
		WHERE id = $1`

	service.UpdatedAt = time.Now()
	tag, err := store.db.Exec(ctx, query,
		service.ID,
		service.Name,
		service.Price,
		service.Description,
		service.UpdatedAt,
	)
	if err != nil {
		return dberr.Wrap(err, "extraservice_store_update_failed")
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound(MsgNotFound)
	}

	return nil
}

// Delete removes an add-on service permanently.
func (store *PostgresStore) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM core.extraservice WHERE id = $1`

	tag, err := store.db.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, "extraservice_store_delete_failed")
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound(MsgNotFound)
	}

	return nil
}
