// Copyright (c) 2026 Amar Infâncias. All rights reserved.
// Author: dev@amarinfancias.com.br

package client_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amarinfancias/amar-api/internal/core/client"
	"github.com/amarinfancias/amar-api/internal/platform/apperr"
)

func newStoreFixture(t *testing.T) (*client.PostgresStore, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	return client.NewPostgresStore(mock), mock
}

func sampleClient() *client.Client {
	now := time.Now().UTC().Truncate(time.Microsecond)
	cpf := "123.456.789-00"
	return &client.Client{
		ID:          "0190b3c1-58d2-7cda-9a65-30f213a1d2c4",
		Name:        "Ana Souza",
		Email:       "ana@amarinfancias.com.br",
		PhoneNumber: "+55 11 99999-0000",
		Address:     "Rua das Flores, 100",
		City:        "São Paulo",
		CPF:         &cpf,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func clientColumns() []string {
	return []string{
		"id", "name", "email", "phonenumber", "address", "city",
		"cpf", "rg", "instagram", "createdat", "updatedat",
	}
}

func clientRow(c *client.Client) *pgxmock.Rows {
	return pgxmock.NewRows(clientColumns()).AddRow(
		c.ID, c.Name, c.Email, c.PhoneNumber, c.Address, c.City,
		c.CPF, c.RG, c.Instagram, c.CreatedAt, c.UpdatedAt,
	)
}

/*
TestPostgresStore_Create_Success verifies the insert statement and that the
store stamps the timestamps.
*/
func TestPostgresStore_Create_Success(t *testing.T) {
	store, mock := newStoreFixture(t)
	defer mock.Close()

	c := sampleClient()
	c.CreatedAt = time.Time{}

	mock.ExpectExec("INSERT INTO core.client").
		WithArgs(
			c.ID, c.Name, c.Email, c.PhoneNumber, c.Address, c.City,
			c.CPF, c.RG, c.Instagram, pgxmock.AnyArg(), pgxmock.AnyArg(),
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := store.Create(context.Background(), c)

	assert.NoError(t, err)
	assert.False(t, c.CreatedAt.IsZero())
	assert.False(t, c.UpdatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

/*
TestPostgresStore_Create_Conflicts verifies unique violations map to the two
distinct conflict messages: one for the email index, one for the documents.
*/
func TestPostgresStore_Create_Conflicts(t *testing.T) {
	tests := []struct {
		name       string
		constraint string
		wantMsg    string
	}{
		{"duplicate_email", "client_email_key", client.MsgEmailUsed},
		{"duplicate_cpf", "client_cpf_key", client.MsgDocTaken},
		{"duplicate_rg", "client_rg_key", client.MsgDocTaken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, mock := newStoreFixture(t)
			defer mock.Close()

			c := sampleClient()

			mock.ExpectExec("INSERT INTO core.client").
				WithArgs(
					c.ID, c.Name, c.Email, c.PhoneNumber, c.Address, c.City,
					c.CPF, c.RG, c.Instagram, pgxmock.AnyArg(), pgxmock.AnyArg(),
				).
				WillReturnError(&pgconn.PgError{
					Code:           pgerrcode.UniqueViolation,
					ConstraintName: tt.constraint,
				})

			err := store.Create(context.Background(), c)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, http.StatusConflict, ae.HTTPStatus)
			assert.Equal(t, tt.wantMsg, ae.Message)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

/*
TestPostgresStore_FindByID covers the found and not-found paths.
*/
func TestPostgresStore_FindByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		store, mock := newStoreFixture(t)
		defer mock.Close()

		c := sampleClient()
		mock.ExpectQuery("SELECT .+ FROM core.client").
			WithArgs(c.ID).
			WillReturnRows(clientRow(c))

		got, err := store.FindByID(context.Background(), c.ID)

		require.NoError(t, err)
		assert.Equal(t, c.Email, got.Email)
		assert.Equal(t, c.City, got.City)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not_found", func(t *testing.T) {
		store, mock := newStoreFixture(t)
		defer mock.Close()

		mock.ExpectQuery("SELECT .+ FROM core.client").
			WithArgs("missing-id").
			WillReturnRows(pgxmock.NewRows(clientColumns()))

		got, err := store.FindByID(context.Background(), "missing-id")

		assert.Nil(t, got)
		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, http.StatusNotFound, ae.HTTPStatus)
		assert.Equal(t, client.MsgNotFound, ae.Message)
	})
}

/*
TestPostgresStore_FindAll verifies listing and that an empty table comes back
as an empty slice, not an error; the service owns the 404 decision.
*/
func TestPostgresStore_FindAll(t *testing.T) {
	t.Run("rows", func(t *testing.T) {
		store, mock := newStoreFixture(t)
		defer mock.Close()

		c := sampleClient()
		mock.ExpectQuery("SELECT .+ FROM core.client").
			WithArgs(20, 0).
			WillReturnRows(clientRow(c))

		clients, err := store.FindAll(context.Background(), 20, 0)

		require.NoError(t, err)
		require.Len(t, clients, 1)
		assert.Equal(t, c.ID, clients[0].ID)
	})

	t.Run("empty", func(t *testing.T) {
		store, mock := newStoreFixture(t)
		defer mock.Close()

		mock.ExpectQuery("SELECT .+ FROM core.client").
			WithArgs(20, 0).
			WillReturnRows(pgxmock.NewRows(clientColumns()))

		clients, err := store.FindAll(context.Background(), 20, 0)

		require.NoError(t, err)
		assert.Empty(t, clients)
	})
}

/*
TestPostgresStore_Update_NotFound verifies a zero-row update maps to 404.
*/
func TestPostgresStore_Update_NotFound(t *testing.T) {
	store, mock := newStoreFixture(t)
	defer mock.Close()

	c := sampleClient()
	mock.ExpectExec("UPDATE core.client").
		WithArgs(
			c.ID, c.Name, c.Email, c.PhoneNumber, c.Address, c.City,
			c.CPF, c.RG, c.Instagram, pgxmock.AnyArg(),
		).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := store.Update(context.Background(), c)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusNotFound, ae.HTTPStatus)
}

/*
TestPostgresStore_Delete verifies row removal and the zero-row 404.
*/
func TestPostgresStore_Delete(t *testing.T) {
	store, mock := newStoreFixture(t)
	defer mock.Close()

	mock.ExpectExec("DELETE FROM core.client").
		WithArgs("some-id").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	require.NoError(t, store.Delete(context.Background(), "some-id"))

	mock.ExpectExec("DELETE FROM core.client").
		WithArgs("gone-id").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := store.Delete(context.Background(), "gone-id")
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusNotFound, ae.HTTPStatus)
}

/*
TestPostgresStore_CountByCity verifies city buckets are returned as stored,
without any folding at this layer.
*/
func TestPostgresStore_CountByCity(t *testing.T) {
	store, mock := newStoreFixture(t)
	defer mock.Close()

	mock.ExpectQuery("SELECT city, COUNT").
		WillReturnRows(pgxmock.NewRows([]string{"city", "count"}).
			AddRow("Campinas", int64(3)).
			AddRow("São Paulo", int64(5)).
			AddRow("sao paulo", int64(2)))

	buckets, err := store.CountByCity(context.Background())

	require.NoError(t, err)
	require.Len(t, buckets, 3)
	assert.Equal(t, "São Paulo", buckets[1].City)
	assert.Equal(t, int64(5), buckets[1].Count)
}
