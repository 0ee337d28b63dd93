// Copyright (c) 2026 Amar Infâncias. All rights reserved.
// Author: dev@amarinfancias.com.br

package client

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/amarinfancias/amar-api/internal/platform/apperr"
	"github.com/amarinfancias/amar-api/internal/platform/dberr"
	"github.com/amarinfancias/amar-api/internal/platform/postgres"
)

// PostgresStore implements [Store] on the core.client table.
type PostgresStore struct {
	db postgres.DB
}

// NewPostgresStore creates the PostgreSQL implementation of [Store].
func NewPostgresStore(db postgres.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const clientColumns = `id, name, email, phonenumber, address, city, cpf, rg, instagram, createdat, updatedat`

func scanClient(row pgx.Row) (*Client, error) {
	c := &Client{}
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Email,
		&c.PhoneNumber,
		&c.Address,
		&c.City,
		&c.CPF,
		&c.RG,
		&c.Instagram,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Create persists a new client record.
func (store *PostgresStore) Create(ctx context.Context, client *Client) error {
	const query = `
		INSERT INTO core.client (
			id, name, email, phonenumber, address, city, cpf, rg, instagram, createdat, updatedat
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	now := time.Now()
	if client.CreatedAt.IsZero() {
		client.CreatedAt = now
	}
	client.UpdatedAt = now

	_, err := store.db.Exec(ctx, query,
		client.ID,
		client.Name,
		client.Email,
		client.PhoneNumber,
		client.Address,
		client.City,
		client.CPF,
		client.RG,
		client.Instagram,
		client.CreatedAt,
		client.UpdatedAt,
	)

	if err != nil {
		if conflictErr := classifyConflict(err); conflictErr != nil {
			return conflictErr
		}
		return dberr.Wrap(err, "client_store_create_failed")
	}

	return nil
}

// FindAll lists one page of clients ordered by creation, newest first.
func (store *PostgresStore) FindAll(ctx context.Context, limit, offset int) ([]Client, error) {
	const query = `
		SELECT ` + clientColumns + `
		FROM core.client
		ORDER BY createdat DESC
		LIMIT $1 OFFSET $2`

	rows, err := store.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, dberr.Wrap(err, "client_store_find_all_failed")
	}
	defer rows.Close()

	clients := []Client{}
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "client_store_scan_failed")
		}
		clients = append(clients, *c)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "client_store_rows_failed")
	}

	return clients, nil
}

// FindByID retrieves a client record by its UUID.
func (store *PostgresStore) FindByID(ctx context.Context, id string) (*Client, error) {
	const query = `
		SELECT ` + clientColumns + `
		FROM core.client
		WHERE id = $1`

	c, err := scanClient(store.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound(MsgNotFound)
		}
		return nil, dberr.Wrap(err, "client_store_find_by_id_failed")
	}

	return c, nil
}

// Update persists changes to a client's fields.
func (store *PostgresStore) Update(ctx context.Context, client *Client) error {
	const query = `
		UPDATE core.client
		SET name = $2, email = $3, phonenumber = $4, address = $5, city = $6,
			cpf = $7, rg = $8, instagram = $9, updatedat = $10
		WHERE id = $1`

	client.UpdatedAt = time.Now()
	tag, err := store.db.Exec(ctx, query,
		client.ID,
		client.Name,
		client.Email,
		client.PhoneNumber,
		client.Address,
		client.City,
		client.CPF,
		client.RG,
		client.Instagram,
		client.UpdatedAt,
	)

	if err != nil {
		if conflictErr := classifyConflict(err); conflictErr != nil {
			return conflictErr
		}
		return dberr.Wrap(err, "client_store_update_failed")
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound(MsgNotFound)
	}

	return nil
}

// Delete removes a client row permanently.
func (store *PostgresStore) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM core.client WHERE id = $1`

	tag, err := store.db.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, "client_store_delete_failed")
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound(MsgNotFound)
	}

	return nil
}

// Count returns the total number of clients.
func (store *PostgresStore) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM core.client`

	var total int64
	if err := store.db.QueryRow(ctx, query).Scan(&total); err != nil {
		return 0, dberr.Wrap(err, "client_store_count_failed")
	}

	return total, nil
}

// CountByCity groups clients by city, ascending. City names are returned as
// stored; accent folding and merging happen in the report layer.
func (store *PostgresStore) CountByCity(ctx context.Context) ([]CityCount, error) {
	const query = `
		SELECT city, COUNT(city)
		FROM core.client
		GROUP BY city
		ORDER BY city ASC`

	rows, err := store.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "client_store_count_by_city_failed")
	}
	defer rows.Close()

	buckets := []CityCount{}
	for rows.Next() {
		var bucket CityCount
		if err := rows.Scan(&bucket.City, &bucket.Count); err != nil {
			return nil, dberr.Wrap(err, "client_store_city_scan_failed")
		}
		buckets = append(buckets, bucket)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "client_store_city_rows_failed")
	}

	return buckets, nil
}

// classifyConflict maps unique violations to their client-facing conflict
// errors: the email index and the document (CPF/RG) indexes carry different
// messages.
func classifyConflict(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgerrcode.UniqueViolation {
		return nil
	}

	if strings.Contains(pgErr.ConstraintName, "email") {
		return apperr.Conflict(MsgEmailUsed)
	}

	return apperr.Conflict(MsgDocTaken)
}
