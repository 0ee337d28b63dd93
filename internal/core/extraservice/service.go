// Copyright (c) 2026 Amar Infâncias. All rights reserved.
// Author: dev@amarinfancias.com.br

package extraservice

import (
	"context"
	"log/slog"

	"github.com/amarinfancias/amar-api/internal/platform/apperr"
	"github.com/amarinfancias/amar-api/pkg/uuid"
)

// Service orchestrates add-on service operations.
type Service struct {
	store  Store
	logger *slog.Logger
}

// NewService constructs the extraservice [Service].
func NewService(store Store, logger *slog.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// CreateInput holds the data required to register an add-on.
type CreateInput struct {
	Name        string
	Price       float64
	Description *string
}

/*
Create registers a new add-on service.

Parameters:
  - context: context.Context
  - input: CreateInput

Returns:
  - *ExtraService: Created entity
  - err: Storage failures
*/
func (service *Service) Create(context context.Context, input CreateInput) (*ExtraService, error) {

	extra := &ExtraService{
		ID:          uuid.New(),
		Name:        input.Name,
		Price:       input.Price,
		Description: input.Description,
	}

	if err := service.store.Create(context, extra); err != nil {
		return nil, err
	}

	service.logger.Info("extra_service_created", slog.String("service_id", extra.ID))

	return extra, nil
}

/*
List returns every add-on service.

Returns:
  - []ExtraService: All services, newest first
  - err: NotFound (404) when none exists
*/
func (service *Service) List(context context.Context) ([]ExtraService, error) {
	services, err := service.store.FindAll(context)
	if err != nil {
		return nil, err
	}

	if len(services) == 0 {
		return nil, apperr.NotFound(MsgListEmpty)
	}

	return services, nil
}

// Get retrieves one add-on service by its UUID.
func (service *Service) Get(context context.Context, id string) (*ExtraService, error) {
	return service.store.FindByID(context, id)
}

// UpdateInput defines the mutable subset of add-on fields.
type UpdateInput struct {
	Name        *string
	Price       *float64
	Description *string
}

/*
Update applies a partial set of changes to an add-on service.

Parameters:
  - context: context.Context
  - id: string (UUID)
  - input: UpdateInput

Returns:
  - *ExtraService: The updated entity
  - err: NotFound or storage failures
*/
func (service *Service) Update(context context.Context, id string, input UpdateInput) (*ExtraService, error) {

	extra, err := service.store.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	// Apply delta updates
	if input.Name != nil {
		extra.Name = *input.Name
	}
	if input.Price != nil {
		extra.Price = *input.Price
	}
	if input.Description != nil {
		extra.Description = input.Description
	}

	if err := service.store.Update(context, extra); err != nil {
		return nil, err
	}

	service.logger.Info("extra_service_updated", slog.String("service_id", id))

	return extra, nil
}

/*
Delete permanently removes an add-on service.

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

	service.logger.Warn("extra_service_deleted", slog.String("service_id", id))

	return nil
}
