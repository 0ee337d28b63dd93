// Copyright (c) 2026 Amar Infâncias. All rights reserved.
// Author: dev@amarinfancias.com.br

package client_test

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amarinfancias/amar-api/internal/core/client"
	"github.com/amarinfancias/amar-api/internal/platform/apperr"
	"github.com/amarinfancias/amar-api/pkg/pagination"
	"github.com/amarinfancias/amar-api/pkg/pointer"
)

// memoryStore is an in-memory Store for service-level tests.
type memoryStore struct {
	clients map[string]*client.Client
}

func newMemoryStore() *memoryStore {
	return &memoryStore{clients: map[string]*client.Client{}}
}

func (store *memoryStore) Create(_ context.Context, c *client.Client) error {
	store.clients[c.ID] = c
	return nil
}

func (store *memoryStore) FindAll(_ context.Context, limit, offset int) ([]client.Client, error) {
	all := []client.Client{}
	for _, c := range store.clients {
		all = append(all, *c)
	}
	if offset >= len(all) {
		return []client.Client{}, nil
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (store *memoryStore) FindByID(_ context.Context, id string) (*client.Client, error) {
	c, ok := store.clients[id]
	if !ok {
		return nil, apperr.NotFound(client.MsgNotFound)
	}
	copied := *c
	return &copied, nil
}

func (store *memoryStore) Update(_ context.Context, c *client.Client) error {
	if _, ok := store.clients[c.ID]; !ok {
		return apperr.NotFound(client.MsgNotFound)
	}
	store.clients[c.ID] = c
	return nil
}

func (store *memoryStore) Delete(_ context.Context, id string) error {
	if _, ok := store.clients[id]; !ok {
		return apperr.NotFound(client.MsgNotFound)
	}
	delete(store.clients, id)
	return nil
}

func (store *memoryStore) Count(_ context.Context) (int64, error) {
	return int64(len(store.clients)), nil
}

func (store *memoryStore) CountByCity(_ context.Context) ([]client.CityCount, error) {
	return nil, nil
}

/*
TestService_Create verifies id assignment and persistence.
*/
func TestService_Create(t *testing.T) {
	store := newMemoryStore()
	service := client.NewService(store, slog.Default())

	created, err := service.Create(context.Background(), client.CreateInput{
		Name:        "Ana Souza",
		Email:       "ana@amarinfancias.com.br",
		PhoneNumber: "+55 11 99999-0000",
		Address:     "Rua das Flores, 100",
		City:        "São Paulo",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Contains(t, store.clients, created.ID)
}

/*
TestService_List_Empty verifies an empty base maps to 404 with the
list-empty message, matching what the admin frontend expects.
*/
func TestService_List_Empty(t *testing.T) {
	service := client.NewService(newMemoryStore(), slog.Default())

	list, total, err := service.List(context.Background(), pagination.Params{Page: 1, Limit: 20})

	assert.Nil(t, list)
	assert.Zero(t, total)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusNotFound, ae.HTTPStatus)
	assert.Equal(t, client.MsgListEmpty, ae.Message)
}

/*
TestService_List_Pagination verifies the page slice and the total count used
for the response metadata.
*/
func TestService_List_Pagination(t *testing.T) {
	store := newMemoryStore()
	service := client.NewService(store, slog.Default())

	for index := 0; index < 5; index++ {
		_, err := service.Create(context.Background(), client.CreateInput{
			Name:        "Cliente",
			Email:       fmt.Sprintf("cliente%d@amarinfancias.com.br", index),
			PhoneNumber: "+55 11 99999-0000",
			Address:     "Rua das Flores, 100",
			City:        "São Paulo",
		})
		require.NoError(t, err)
	}

	page, total, err := service.List(context.Background(), pagination.Params{Page: 2, Limit: 2})

	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, page, 2)
}

/*
TestService_Update verifies delta updates touch only the provided fields.
*/
func TestService_Update(t *testing.T) {
	store := newMemoryStore()
	service := client.NewService(store, slog.Default())

	created, err := service.Create(context.Background(), client.CreateInput{
		Name:        "Ana Souza",
		Email:       "ana@amarinfancias.com.br",
		PhoneNumber: "+55 11 99999-0000",
		Address:     "Rua das Flores, 100",
		City:        "São Paulo",
	})
	require.NoError(t, err)

	updated, err := service.Update(context.Background(), created.ID, client.UpdateInput{
		City:      pointer.To("Campinas"),
		Instagram: pointer.To("@ana.souza"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Campinas", updated.City)
	require.NotNil(t, updated.Instagram)
	assert.Equal(t, "@ana.souza", *updated.Instagram)

	// Untouched fields survive
	assert.Equal(t, "Ana Souza", updated.Name)
	assert.Equal(t, "ana@amarinfancias.com.br", updated.Email)
}

/*
TestService_Update_NotFound verifies updating a missing client is a 404.
*/
func TestService_Update_NotFound(t *testing.T) {
	service := client.NewService(newMemoryStore(), slog.Default())

	_, err := service.Update(context.Background(), "missing-id", client.UpdateInput{
		Name: pointer.To("Novo Nome"),
	})

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusNotFound, ae.HTTPStatus)
	assert.Equal(t, client.MsgNotFound, ae.Message)
}

/*
TestService_Delete verifies removal and the missing-id 404.
*/
func TestService_Delete(t *testing.T) {
	store := newMemoryStore()
	service := client.NewService(store, slog.Default())

	created, err := service.Create(context.Background(), client.CreateInput{
		Name:        "Ana Souza",
		Email:       "ana@amarinfancias.com.br",
		PhoneNumber: "+55 11 99999-0000",
		Address:     "Rua das Flores, 100",
		City:        "São Paulo",
	})
	require.NoError(t, err)

	require.NoError(t, service.Delete(context.Background(), created.ID))
	assert.NotContains(t, store.clients, created.ID)

	err = service.Delete(context.Background(), created.ID)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusNotFound, ae.HTTPStatus)
}
