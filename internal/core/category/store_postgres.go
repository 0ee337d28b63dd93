// Copyright (c) 2026 Amar Infâncias. All rights reserved.
// Author: dev@amarinfancias.com.br

package category

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/amarinfancias/amar-api/internal/platform/apperr"
	"github.com/amarinfancias/amar-api/internal/platform/dberr"
	"github.com/amarinfancias/amar-api/internal/platform/postgres"
)

// PostgresStore implements [Store] on either core.expense_category or
// core.revenue_category, selected by [Kind] at construction.
type PostgresStore struct {
	db    postgres.DB
	table string
}

// NewPostgresStore creates the PostgreSQL implementation of [Store] for
// the given category kind.
func NewPostgresStore(db postgres.DB, kind Kind) *PostgresStore {
	table := "core.expense_category"
	if kind == KindRevenue {
		table = "core.revenue_category"
	}
	return &PostgresStore{db: db, table: table}
}

// Create persists a new category.
func (store *PostgresStore) Create(ctx context.Context, category *Category) error {
	query := `
		INSERT INTO ` + store.table + ` (id, name, createdat, updatedat)
		VALUES ($1, $2, $3, $4)`

	now := time.Now()
	category.CreatedAt = now
	category.UpdatedAt = now

	_, err := store.db.Exec(ctx, query,
		category.ID,
		category.Name,
		category.CreatedAt,
		category.UpdatedAt,
	)
	if err != nil {
		return dberr.Wrap(err, "category_store_create_failed")
	}

	return nil
}

// FindAll lists every category ordered by name.
func (store *PostgresStore) FindAll(ctx context.Context) ([]Category, error) {
	query := `
		SELECT id, name, createdat, updatedat
		FROM ` + store.table + `
		ORDER BY name ASC`

	rows, err := store.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "category_store_find_all_failed")
	}
	defer rows.Close()

	categories := []Category{}
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, dberr.Wrap(err, "category_store_scan_failed")
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "category_store_rows_failed")
	}

	return categories, nil
}

// FindByID retrieves one category by its UUID.
func (store *PostgresStore) FindByID(ctx context.Context, id string) (*Category, error) {
	query := `
		SELECT id, name, createdat, updatedat
		FROM ` + store.table + `
		WHERE id = $1`

	c := &Category{}
	err := store.db.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound(MsgNotFound)
		}
		return nil, dberr.Wrap(err, "category_store_find_by_id_failed")
	}

	return c, nil
}

// UpdateName renames a category and returns the updated row.
func (store *PostgresStore) UpdateName(ctx context.Context, id, name string) (*Category, error) {
	query := `
		UPDATE ` + store.table + `
		SET name = $2, updatedat = $3
		WHERE id = $1
		RETURNING id, name, createdat, updatedat`

	c := &Category{}
	err := store.db.QueryRow(ctx, query, id, name, time.Now()).Scan(
		&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound(MsgNotFound)
		}
		return nil, dberr.Wrap(err, "category_store_update_failed")
	}

	return c, nil
}

// Delete removes a category permanently.
func (store *PostgresStore) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM ` + store.table + ` WHERE id = $1`

	tag, err := store.db.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, "category_store_delete_failed")
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound(MsgNotFound)
	}

	return nil
}
