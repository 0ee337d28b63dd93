// Copyright (c) 2026 Amar Infâncias. All rights reserved.
// Author: dev@amarinfancias.com.br

package child

import (
	"context"
	"log/slog"

	"github.com/amarinfancias/amar-api/internal/platform/apperr"
	"github.com/amarinfancias/amar-api/pkg/uuid"
)

// Service orchestrates child registry operations.
type Service struct {
	store  Store
	logger *slog.Logger
}

// NewService constructs the child [Service].
func NewService(store Store, logger *slog.Logger) *Service {
	return &Service{store: store, logger: logger}
}

/*
Create registers a child under an existing caregiver.

Parameters:
  - context: context.Context
  - name: string
  - caregiverID: string (UUID of a registered client)

Returns:
  - *Child: Created entity
  - err: NotFound (404) when the caregiver does not exist, or storage
    failures
*/
func (service *Service) Create(context context.Context, name, caregiverID string) (*Child, error) {

	child := &Child{
		ID:          uuid.New(),
		Name:        name,
		CaregiverID: caregiverID,
	}

	if err := service.store.Create(context, child); err != nil {
		return nil, err
	}

	service.logger.Info("child_registered",
		slog.String("child_id", child.ID),
		slog.String("caregiver_id", caregiverID),
	)

	return child, nil
}

/*
List returns every registered child.

Returns:
  - []Child: All records, newest first
  - err: NotFound (404) when no child is registered
*/
func (service *Service) List(context context.Context) ([]Child, error) {
	children, err := service.store.FindAll(context)
	if err != nil {
		return nil, err
	}

	if len(children) == 0 {
		return nil, apperr.NotFound(MsgListEmpty)
	}

	return children, nil
}

// Get retrieves one child with its caregiver embedded.
func (service *Service) Get(context context.Context, id string) (*Child, error) {
	return service.store.FindByID(context, id)
}

// Rename changes a child's name. Name is the only mutable field; the
// caregiver link is permanent.
func (service *Service) Rename(context context.Context, id, name string) (*Child, error) {
	child, err := service.store.UpdateName(context, id, name)
	if err != nil {
		return nil, err
	}

	service.logger.Info("child_renamed", slog.String("child_id", id))

	return child, nil
}

// Delete removes a child record permanently.
func (service *Service) Delete(context context.Context, id string) error {
	if err := service.store.Delete(context, id); err != nil {
		return err
	}

	service.logger.Warn("child_deleted", slog.String("child_id", id))

	return nil
}
