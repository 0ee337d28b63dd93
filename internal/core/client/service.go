// Copyright (c) 2026 Amar Infâncias. All rights reserved.
// Author: dev@amarinfancias.com.br

package client

import (
	"context"
	"log/slog"

	"github.com/amarinfancias/amar-api/internal/platform/apperr"
	"github.com/amarinfancias/amar-api/pkg/pagination"
	"github.com/amarinfancias/amar-api/pkg/uuid"
)

// Service orchestrates client registry operations.
type Service struct {
	store  Store
	logger *slog.Logger
}

// NewService constructs the client [Service].
func NewService(store Store, logger *slog.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// CreateInput holds the data required to register a client.
type CreateInput struct {
	Name        string
	Email       string
	PhoneNumber string
	Address     string
	City        string
	CPF         *string
	RG          *string
	Instagram   *string
}

/*
Create registers a new client.

Parameters:
  - context: context.Context
  - input: CreateInput

Returns:
  - *Client: Created entity
  - err: Conflict (409) when email or documents are taken, or storage
    failures
*/
func (service *Service) Create(context context.Context, input CreateInput) (*Client, error) {

	client := &Client{
		ID:          uuid.New(),
		Name:        input.Name,
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
		Address:     input.Address,
		City:        input.City,
		CPF:         input.CPF,
		RG:          input.RG,
		Instagram:   input.Instagram,
	}

	if err := service.store.Create(context, client); err != nil {
		return nil, err
	}

	service.logger.Info("client_created", slog.String("client_id", client.ID))

	return client, nil
}

/*
List returns one page of clients, newest first.

Parameters:
  - context: context.Context
  - params: pagination.Params (already clamped at the boundary)

Returns:
  - []Client: The requested page
  - int64: Total client count, for the response metadata
  - err: NotFound (404) when the base is empty
*/
func (service *Service) List(context context.Context, params pagination.Params) ([]Client, int64, error) {
	total, err := service.store.Count(context)
	if err != nil {
		return nil, 0, err
	}

	if total == 0 {
		return nil, 0, apperr.NotFound(MsgListEmpty)
	}

	clients, err := service.store.FindAll(context, params.Limit, params.Offset())
	if err != nil {
		return nil, 0, err
	}

	return clients, total, nil
}

// Get retrieves one client by its UUID.
func (service *Service) Get(context context.Context, id string) (*Client, error) {
	return service.store.FindByID(context, id)
}

// UpdateInput defines the mutable subset of client fields.
type UpdateInput struct {
	Name        *string
	Email       *string
	PhoneNumber *string
	Address     *string
	City        *string
	CPF         *string
	RG          *string
	Instagram   *string
}

/*
Update applies a partial set of changes to a client.

Parameters:
  - context: context.Context
  - id: string (UUID)
  - input: UpdateInput

Returns:
  - *Client: The updated entity
  - err: NotFound, Conflict or storage failures
*/
func (service *Service) Update(context context.Context, id string, input UpdateInput) (*Client, error) {

	client, err := service.store.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	// Apply delta updates
	if input.Name != nil {
		client.Name = *input.Name
	}
	if input.Email != nil {
		client.Email = *input.Email
	}
	if input.PhoneNumber != nil {
		client.PhoneNumber = *input.PhoneNumber
	}
	if input.Address != nil {
		client.Address = *input.Address
	}
	if input.City != nil {
		client.City = *input.City
	}
	if input.CPF != nil {
		client.CPF = input.CPF
	}
	if input.RG != nil {
		client.RG = input.RG
	}
	if input.Instagram != nil {
		client.Instagram = input.Instagram
	}

	if err := service.store.Update(context, client); err != nil {
		return nil, err
	}

	service.logger.Info("client_updated", slog.String("client_id", id))

	return client, nil
}

/*
Delete permanently removes a client.

Parameters:
  - context: context.Context
  - id: string (UUID)

Returns:
  - err: NotFound or storage failures
*/
func (service *Service) Delete(context context.Context, id string) error {
	if err := service.store.Delete(context, id); err != nil {
		return err
	}

	service.logger.Warn("client_deleted", slog.String("client_id", id))

	return nil
}
