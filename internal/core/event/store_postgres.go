// Copyright (c) 2026 Amar Infâncias. All rights reserved.
// Author: dev@amarinfancias.com.br

package event

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/amarinfancias/amar-api/internal/platform/apperr"
	"github.com/amarinfancias/amar-api/internal/platform/dberr"
	"github.com/amarinfancias/amar-api/internal/platform/postgres"
)

// PostgresStore implements [Store] on the core.event table.
type PostgresStore struct {
	db postgres.DB
}

// NewPostgresStore creates the PostgreSQL implementation of [Store].
func NewPostgresStore(db postgres.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const eventColumns = `id, name, type, location, date, hour, duration, observations, createdat, updatedat`

func scanEvent(row pgx.Row) (*Event, error) {
	e := &Event{}
	err := row.Scan(
		&e.ID,
		&e.Name,
		&e.Type,
		&e.Location,
		&e.Date,
		&e.Hour,
		&e.Duration,
		&e.Observations,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Create persists a new agenda event.
func (store *PostgresStore) Create(ctx context.Context, event *Event) error {
	const query = `
		INSERT INTO core.event (` + eventColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	now := time.Now()
	event.CreatedAt = now
	event.UpdatedAt = now

	_, err := store.db.Exec(ctx, query,
		event.ID,
		event.Name,
		event.Type,
		event.Location,
		event.Date,
		event.Hour,
		event.Duration,
		event.Observations,
		event.CreatedAt,
		event.UpdatedAt,
	)
	if err != nil {
		return dberr.Wrap(err, "event_store_create_failed")
	}

	return nil
}

// FindAll lists every event, newest first.
func (store *PostgresStore) FindAll(ctx context.Context) ([]Event, error) {
	const query = `
		SELECT ` + eventColumns + `
		FROM core.event
		ORDER BY createdat DESC`

	rows, err := store.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "event_store_find_all_failed")
	}
	defer rows.Close()

	events := []Event{}
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "event_store_scan_failed")
		}
		events = append(events, *e)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "event_store_rows_failed")
	}

	return events, nil
}

// FindByID retrieves one event by its UUID.
func (store *PostgresStore) FindByID(ctx context.Context, id string) (*Event, error) {
	const query = `
		SELECT ` + eventColumns + `
		FROM core.event
		WHERE id = $1`

	e, err := scanEvent(store.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound(MsgNotFound)
		}
		return nil, dberr.Wrap(err, "event_store_find_by_id_failed")
	}

	return e, nil
}

// Update persists changes to an event.
func (store *PostgresStore) Update(ctx context.Context, event *Event) error {
	const query = `
		UPDATE core.event
		SET name = $2, type = $3, location = $4, date = $5, hour = $6,
			duration = $7, observations = $8, updatedat = $9
		WHERE id = $1`

	event.UpdatedAt = time.Now()
	tag, err := store.db.Exec(ctx, query,
		event.ID,
		event.Name,
		event.Type,
		event.Location,
		event.Date,
		event.Hour,
		event.Duration,
		event.Observations,
		event.UpdatedAt,
	)
	if err != nil {
		return dberr.Wrap(err, "event_store_update_failed")
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound(MsgNotFound)
	}

	return nil
}

// Delete removes an event row permanently.
func (store *PostgresStore) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM core.event WHERE id = $1`

	tag, err := store.db.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, "event_store_delete_failed")
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound(MsgNotFound)
	}

	return nil
}
