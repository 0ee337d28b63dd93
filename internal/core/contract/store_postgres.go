// Copyright (c) 2026 Amar Infâncias. All rights reserved.
// Author: dev@amarinfancias.com.br

package contract

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/amarinfancias/amar-api/internal/core/event"
	"github.com/amarinfancias/amar-api/internal/platform/apperr"
	"github.com/amarinfancias/amar-api/internal/platform/dberr"
	"github.com/amarinfancias/amar-api/internal/platform/postgres"
)

// PostgresStore implements [Store] on the core.contract and
// core.contract_service tables.
type PostgresStore struct {
	db postgres.DB
}

// NewPostgresStore creates the PostgreSQL implementation of [Store].
func NewPostgresStore(db postgres.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const contractColumns = `id, contracturl, issigned, clientid, eventid, package, value,
	status, date, paymentmethod, splitpayment, paymentduedate, observations,
	createdat, updatedat`

func scanContract(row pgx.Row) (*Contract, error) {
	c := &Contract{}
	err := row.Scan(
		&c.ID,
		&c.ContractURL,
		&c.IsSigned,
		&c.ClientID,
		&c.EventID,
		&c.Package,
		&c.Value,
		&c.Status,
		&c.Date,
		&c.PaymentMethod,
		&c.SplitPayment,
		&c.PaymentDueDate,
		&c.Observations,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Create persists a new contract. The event foreign key turns a dangling
// eventId into a 400, matching the frontend's form-level error handling.
func (store *PostgresStore) Create(ctx context.Context, contract *Contract) error {
	const query = `
		INSERT INTO core.contract (` + contractColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	now := time.Now()
	contract.CreatedAt = now
	contract.UpdatedAt = now

	_, err := store.db.Exec(ctx, query,
		contract.ID,
		contract.ContractURL,
		contract.IsSigned,
		contract.ClientID,
		contract.EventID,
		contract.Package,
		contract.Value,
		contract.Status,
		contract.Date,
		contract.PaymentMethod,
		contract.SplitPayment,
		contract.PaymentDueDate,
		contract.Observations,
		contract.CreatedAt,
		contract.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			if strings.Contains(pgErr.ConstraintName, "eventid") {
				return apperr.BadRequest(event.MsgNotFound)
			}
			return apperr.BadRequest(MsgServiceBadLink)
		}
		return dberr.Wrap(err, "contract_store_create_failed")
	}

	return nil
}

// FindAll lists every contract, newest first, without relations.
func (store *PostgresStore) FindAll(ctx context.Context) ([]Contract, error) {
	const query = `
		SELECT ` + contractColumns + `
		FROM core.contract
		ORDER BY createdat DESC`

	rows, err := store.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "contract_store_find_all_failed")
	}
	defer rows.Close()

	contracts := []Contract{}
	for rows.Next() {
		c, err := scanContract(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "contract_store_scan_failed")
		}
		contracts = append(contracts, *c)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "contract_store_rows_failed")
	}

	return contracts, nil
}

// FindByID assembles the detail view. The relations are loaded with
// follow-up queries instead of one wide join; the admin screens fetch one
// contract at a time, so the extra round trips are negligible.
func (store *PostgresStore) FindByID(ctx context.Context, id string) (*Detail, error) {
	const query = `
		SELECT ` + contractColumns + `
		FROM core.contract
		WHERE id = $1`

	c, err := scanContract(store.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound(MsgNotFound)
		}
		return nil, dberr.Wrap(err, "contract_store_find_by_id_failed")
	}

	detail := &Detail{Contract: *c, Services: []AttachedService{}, Records: []RecordSummary{}}

	if err := store.loadClient(ctx, detail); err != nil {
		return nil, err
	}
	if err := store.loadEvent(ctx, detail); err != nil {
		return nil, err
	}
	if err := store.loadServices(ctx, detail); err != nil {
		return nil, err
	}
	if err := store.loadRecords(ctx, detail); err != nil {
		return nil, err
	}

	return detail, nil
}

func (store *PostgresStore) loadClient(ctx context.Context, detail *Detail) error {
	const query = `
		SELECT id, name, email, instagram
		FROM core.client
		WHERE id = $1`

	summary := &ClientSummary{}
	err := store.db.QueryRow(ctx, query, detail.ClientID).Scan(
		&summary.ID, &summary.Name, &summary.Email, &summary.Instagram,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		return dberr.Wrap(err, "contract_store_load_client_failed")
	}

	detail.Client = summary
	return nil
}

func (store *PostgresStore) loadEvent(ctx context.Context, detail *Detail) error {
	const query = `
		SELECT id, name, type, location, date, hour, duration, observations, createdat, updatedat
		FROM core.event
		WHERE id = $1`

	e := &event.Event{}
	err := store.db.QueryRow(ctx, query, detail.EventID).Scan(
		&e.ID, &e.Name, &e.Type, &e.Location, &e.Date, &e.Hour,
		&e.Duration, &e.Observations, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		return dberr.Wrap(err, "contract_store_load_event_failed")
	}

	detail.Event = e
	return nil
}

func (store *PostgresStore) loadServices(ctx context.Context, detail *Detail) error {
	const query = `
		SELECT cs.id, es.id, es.name, es.price, es.description, es.createdat, es.updatedat
		FROM core.contract_service cs
		JOIN core.extraservice es ON es.id = cs.extraserviceid
		WHERE cs.contractid = $1
		ORDER BY es.name ASC`

	rows, err := store.db.Query(ctx, query, detail.ID)
	if err != nil {
		return dberr.Wrap(err, "contract_store_load_services_failed")
	}
	defer rows.Close()

	for rows.Next() {
		var attached AttachedService
		err := rows.Scan(
			&attached.LinkID,
			&attached.Service.ID,
			&attached.Service.Name,
			&attached.Service.Price,
			&attached.Service.Description,
			&attached.Service.CreatedAt,
			&attached.Service.UpdatedAt,
		)
		if err != nil {
			return dberr.Wrap(err, "contract_store_service_scan_failed")
		}
		detail.Services = append(detail.Services, attached)
	}

	return rows.Err()
}

func (store *PostgresStore) loadRecords(ctx context.Context, detail *Detail) error {
	const query = `
		SELECT id, type, amount, month, year, status
		FROM core.financial_record
		WHERE contractid = $1
		ORDER BY year DESC, month DESC`

	rows, err := store.db.Query(ctx, query, detail.ID)
	if err != nil {
		return dberr.Wrap(err, "contract_store_load_records_failed")
	}
	defer rows.Close()

	for rows.Next() {
		var record RecordSummary
		err := rows.Scan(
			&record.ID, &record.Type, &record.Amount,
			&record.Month, &record.Year, &record.Status,
		)
		if err != nil {
			return dberr.Wrap(err, "contract_store_record_scan_failed")
		}
		detail.Records = append(detail.Records, record)
	}

	return rows.Err()
}

// Update persists changes to a contract's own columns.
func (store *PostgresStore) Update(ctx context.Context, contract *Contract) error {
	const query = `
		UPDATE core.contract
		SET contracturl = $2, issigned = $3, clientid = $4, eventid = $5,
			package = $6, value = $7, status = $8, date = $9,
			paymentmethod = $10, splitpayment = $11, paymentduedate = $12,
			observations = $13, updatedat = $14
		WHERE id = $1`

	contract.UpdatedAt = time.Now()
	tag, err := store.db.Exec(ctx, query,
		contract.ID,
		contract.ContractURL,
		contract.IsSigned,
		contract.ClientID,
		contract.EventID,
		contract.Package,
		contract.Value,
		contract.Status,
		contract.Date,
		contract.PaymentMethod,
		contract.SplitPayment,
		contract.PaymentDueDate,
		contract.Observations,
		contract.UpdatedAt,
	)
	if err != nil {
		return dberr.Wrap(err, "contract_store_update_failed")
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound(MsgNotFound)
	}

	return nil
}

// Delete removes a contract permanently. The link table rows cascade.
func (store *PostgresStore) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM core.contract WHERE id = $1`

	tag, err := store.db.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, "contract_store_delete_failed")
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound(MsgNotFound)
	}

	return nil
}

// AttachService links an add-on service to a contract.
func (store *PostgresStore) AttachService(ctx context.Context, linkID, contractID, extraServiceID string) error {
	const query = `
		INSERT INTO core.contract_service (id, contractid, extraserviceid, createdat)
		VALUES ($1, $2, $3, $4)`

	_, err := store.db.Exec(ctx, query, linkID, contractID, extraServiceID, time.Now())
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return apperr.BadRequest(MsgServiceBadLink)
		}
		return dberr.Wrap(err, "contract_store_attach_failed")
	}

	return nil
}

// DetachService removes an add-on link from a contract.
func (store *PostgresStore) DetachService(ctx context.Context, contractID, extraServiceID string) error {
	const query = `
		DELETE FROM core.contract_service
		WHERE contractid = $1 AND extraserviceid = $2`

	tag, err := store.db.Exec(ctx, query, contractID, extraServiceID)
	if err != nil {
		return dberr.Wrap(err, "contract_store_detach_failed")
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound(MsgServiceNoLink)
	}

	return nil
}

// Count returns the total number of contracts.
func (store *PostgresStore) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM core.contract`

	var total int64
	if err := store.db.QueryRow(ctx, query).Scan(&total); err != nil {
		return 0, dberr.Wrap(err, "contract_store_count_failed")
	}

	return total, nil
}

// CountByPackage returns how many contracts sold the given package.
func (store *PostgresStore) CountByPackage(ctx context.Context, servicePackage string) (int64, error) {
	const query = `SELECT COUNT(*) FROM core.contract WHERE package = $1`

	var total int64
	if err := store.db.QueryRow(ctx, query, servicePackage).Scan(&total); err != nil {
		return 0, dberr.Wrap(err, "contract_store_count_by_package_failed")
	}

	return total, nil
}

// CountByMonth buckets a year's contracts by the month of their DD/MM/YYYY
// date column.
func (store *PostgresStore) CountByMonth(ctx context.Context, year int) ([]MonthCount, error) {
	const query = `
		SELECT split_part(date, '/', 2)::int AS month, COUNT(*)
		FROM core.contract
		WHERE split_part(date, '/', 3)::int = $1
		GROUP BY month
		ORDER BY month ASC`

	rows, err := store.db.Query(ctx, query, year)
	if err != nil {
		return nil, dberr.Wrap(err, "contract_store_count_by_month_failed")
	}
	defer rows.Close()

	buckets := []MonthCount{}
	for rows.Next() {
		var bucket MonthCount
		if err := rows.Scan(&bucket.Month, &bucket.Count); err != nil {
			return nil, dberr.Wrap(err, "contract_store_month_scan_failed")
		}
		buckets = append(buckets, bucket)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "contract_store_month_rows_failed")
	}

	return buckets, nil
}
