// Copyright (c) 2026 Amar Infâncias. All rights reserved.
// Author: dev@amarinfancias.com.br

package contract_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amarinfancias/amar-api/internal/core/contract"
	"github.com/amarinfancias/amar-api/internal/platform/apperr"
	"github.com/amarinfancias/amar-api/pkg/pointer"
)

// memoryStore is an in-memory Store for service-level tests.
type memoryStore struct {
	contracts map[string]*contract.Contract
}

func newMemoryStore() *memoryStore {
	return &memoryStore{contracts: map[string]*contract.Contract{}}
}

func (store *memoryStore) Create(_ context.Context, c *contract.Contract) error {
	store.contracts[c.ID] = c
	return nil
}

func (store *memoryStore) FindAll(_ context.Context) ([]contract.Contract, error) {
	all := []contract.Contract{}
	for _, c := range store.contracts {
		all = append(all, *c)
	}
	return all, nil
}

func (store *memoryStore) FindByID(_ context.Context, id string) (*contract.Detail, error) {
	c, ok := store.contracts[id]
	if !ok {
		return nil, apperr.NotFound(contract.MsgNotFound)
	}
	return &contract.Detail{Contract: *c}, nil
}

func (store *memoryStore) Update(_ context.Context, c *contract.Contract) error {
	if _, ok := store.contracts[c.ID]; !ok {
		return apperr.NotFound(contract.MsgNotFound)
	}
	store.contracts[c.ID] = c
	return nil
}

func (store *memoryStore) Delete(_ context.Context, id string) error {
	if _, ok := store.contracts[id]; !ok {
		return apperr.NotFound(contract.MsgNotFound)
	}
	delete(store.contracts, id)
	return nil
}

func (store *memoryStore) AttachService(_ context.Context, _, _, _ string) error { return nil }

func (store *memoryStore) DetachService(_ context.Context, _, _ string) error { return nil }

func (store *memoryStore) Count(_ context.Context) (int64, error) {
	return int64(len(store.contracts)), nil
}

func (store *memoryStore) CountByPackage(_ context.Context, _ string) (int64, error) {
	return 0, nil
}

func (store *memoryStore) CountByMonth(_ context.Context, _ int) ([]contract.MonthCount, error) {
	return nil, nil
}

func sampleCreateInput() contract.CreateInput {
	return contract.CreateInput{
		ClientID:       "0b54cf0e-9a41-4a87-8a2d-2d5f6a9adf74",
		EventID:        "7c1d2e3f-4a5b-6c7d-8e9f-0a1b2c3d4e5f",
		Package:        "CÉU",
		Value:          1500,
		Date:           "12/10/2026",
		PaymentDueDate: "05/10/2026",
	}
}

/*
TestService_Create_StatusDefault verifies a contract created without a
status lands as PENDENTE.
*/
func TestService_Create_StatusDefault(t *testing.T) {
	store := newMemoryStore()
	service := contract.NewService(store, slog.Default())

	created, err := service.Create(context.Background(), sampleCreateInput())

	require.NoError(t, err)
	assert.Equal(t, contract.StatusDefault, created.Status)
	assert.Contains(t, store.contracts, created.ID)
}

/*
TestService_Create_StatusExplicit verifies a provided status survives the
default.
*/
func TestService_Create_StatusExplicit(t *testing.T) {
	store := newMemoryStore()
	service := contract.NewService(store, slog.Default())

	input := sampleCreateInput()
	input.Status = pointer.To("PAGO")

	created, err := service.Create(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, "PAGO", created.Status)
}
