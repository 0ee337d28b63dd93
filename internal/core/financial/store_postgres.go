// Copyright (c) 2026 Amar Infâncias. All rights reserved.
// Author: dev@amarinfancias.com.br

package financial

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/amarinfancias/amar-api/internal/platform/apperr"
	"github.com/amarinfancias/amar-api/internal/platform/dberr"
	"github.com/amarinfancias/amar-api/internal/platform/postgres"
)

// PostgresStore implements [Store] on the core.financial_record table.
type PostgresStore struct {
	db postgres.DB
}

// NewPostgresStore creates the PostgreSQL implementation of [Store].
func NewPostgresStore(db postgres.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const recordColumns = `id, type, contractid, expensecategoryid, revenuecategoryid,
	amount, month, year, status, paymentmethod, createdat, updatedat`

func scanRecord(row pgx.Row) (*Record, error) {
	r := &Record{}
	err := row.Scan(
		&r.ID,
		&r.Type,
		&r.ContractID,
		&r.ExpenseCategoryID,
		&r.RevenueCategoryID,
		&r.Amount,
		&r.Month,
		&r.Year,
		&r.Status,
		&r.PaymentMethod,
		&r.CreatedAt,
		&r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Create persists a new bookkeeping record.
func (store *PostgresStore) Create(ctx context.Context, record *Record) error {
	const query = `
		INSERT INTO core.financial_record (` + recordColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	now := time.Now()
	record.CreatedAt = now
	record.UpdatedAt = now

	_, err := store.db.Exec(ctx, query,
		record.ID,
		record.Type,
		record.ContractID,
		record.ExpenseCategoryID,
		record.RevenueCategoryID,
		record.Amount,
		record.Month,
		record.Year,
		record.Status,
		record.PaymentMethod,
		record.CreatedAt,
		record.UpdatedAt,
	)
	if err != nil {
		return dberr.Wrap(err, "financial_store_create_failed")
	}

	return nil
}

// FindAll lists every record, newest period first.
func (store *PostgresStore) FindAll(ctx context.Context) ([]Record, error) {
	const query = `
		SELECT ` + recordColumns + `
		FROM core.financial_record
		ORDER BY year DESC, month DESC, createdat DESC`

	rows, err := store.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "financial_store_find_all_failed")
	}
	defer rows.Close()

	records := []Record{}
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "financial_store_scan_failed")
		}
		records = append(records, *r)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "financial_store_rows_failed")
	}

	return records, nil
}

// FindByID retrieves one record by its UUID.
func (store *PostgresStore) FindByID(ctx context.Context, id string) (*Record, error) {
	const query = `
		SELECT ` + recordColumns + `
		FROM core.financial_record
		WHERE id = $1`

	r, err := scanRecord(store.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound(MsgNotFound)
		}
		return nil, dberr.Wrap(err, "financial_store_find_by_id_failed")
	}

	return r, nil
}

// Update persists changes to a record.
func (store *PostgresStore) Update(ctx context.Context, record *Record) error {
	const query = `
		UPDATE core.financial_record
		SET type = $2, contractid = $3, expensecategoryid = $4,
			revenuecategoryid = $5, amount = $6, month = $7, year = $8,
			status = $9, paymentmethod = $10, updatedat = $11
		WHERE id = $1`

	record.UpdatedAt = time.Now()
	tag, err := store.db.Exec(ctx, query,
		record.ID,
		record.Type,
		record.ContractID,
		record.ExpenseCategoryID,
		record.RevenueCategoryID,
		record.Amount,
		record.Month,
		record.Year,
		record.Status,
		record.PaymentMethod,
		record.UpdatedAt,
	)
	if err != nil {
		return dberr.Wrap(err, "financial_store_update_failed")
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound(MsgNotFound)
	}

	return nil
}

// Delete removes a record permanently.
func (store *PostgresStore) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM core.financial_record WHERE id = $1`

	tag, err := store.db.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, "financial_store_delete_failed")
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound(MsgNotFound)
	}

	return nil
}

// SumByType totals every record of the given type. ok is false when no row
// of that type exists.
func (store *PostgresStore) SumByType(ctx context.Context, recordType string) (TypeSum, bool, error) {
	const query = `
		SELECT type, SUM(amount)
		FROM core.financial_record
		WHERE type = $1
		GROUP BY type`

	var sum TypeSum
	err := store.db.QueryRow(ctx, query, recordType).Scan(&sum.Type, &sum.Total)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return TypeSum{}, false, nil
		}
		return TypeSum{}, false, dberr.Wrap(err, "financial_store_sum_by_type_failed")
	}

	return sum, true, nil
}

// SumRevenueByMonth totals revenue per month for one year.
func (store *PostgresStore) SumRevenueByMonth(ctx context.Context, year int) ([]MonthSum, error) {
	const query = `
		SELECT month, SUM(amount)
		FROM core.financial_record
		WHERE type = 'RECEITA' AND year = $1
		GROUP BY month
		ORDER BY month ASC`

	rows, err := store.db.Query(ctx, query, year)
	if err != nil {
		return nil, dberr.Wrap(err, "financial_store_sum_by_month_failed")
	}
	defer rows.Close()

	sums := []MonthSum{}
	for rows.Next() {
		var sum MonthSum
		if err := rows.Scan(&sum.Month, &sum.Total); err != nil {
			return nil, dberr.Wrap(err, "financial_store_month_scan_failed")
		}
		sums = append(sums, sum)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "financial_store_month_rows_failed")
	}

	return sums, nil
}

// SumRevenueByYear totals revenue per year.
func (store *PostgresStore) SumRevenueByYear(ctx context.Context) ([]YearSum, error) {
	const query = `
		SELECT year, SUM(amount)
		FROM core.financial_record
		WHERE type = 'RECEITA'
		GROUP BY year
		ORDER BY year ASC`

	rows, err := store.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "financial_store_sum_by_year_failed")
	}
	defer rows.Close()

	sums := []YearSum{}
	for rows.Next() {
		var sum YearSum
		if err := rows.Scan(&sum.Year, &sum.Total); err != nil {
			return nil, dberr.Wrap(err, "financial_store_year_scan_failed")
		}
		sums = append(sums, sum)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "financial_store_year_rows_failed")
	}

	return sums, nil
}
