// Copyright (c) 2026 Amar Infâncias. All rights reserved.
// Author: dev@amarinfancias.com.br

package category

import (
	"context"
	"log/slog"

	"github.com/amarinfancias/amar-api/internal/platform/apperr"
	"github.com/amarinfancias/amar-api/pkg/uuid"
)

// Service orchestrates category operations for one [Kind].
type Service struct {
	store  Store
	kind   Kind
	logger *slog.Logger
}

// NewService constructs the category [Service].
func NewService(store Store, kind Kind, logger *slog.Logger) *Service {
	return &Service{store: store, kind: kind, logger: logger}
}

// Create registers a new category.
func (service *Service) Create(context context.Context, name string) (*Category, error) {
	category := &Category{
		ID:   uuid.New(),
		Name: name,
	}

	if err := service.store.Create(context, category); err != nil {
		return nil, err
	}

	service.logger.Info("category_created",
		slog.String("category_id", category.ID),
		slog.String("kind", string(service.kind)),
	)

	return category, nil
}

// List returns every category of this kind, or NotFound when none exists.
func (service *Service) List(context context.Context) ([]Category, error) {
	categories, err := service.store.FindAll(context)
	if err != nil {
		return nil, err
	}

	if len(categories) == 0 {
		return nil, apperr.NotFound(MsgListEmpty)
	}

	return categories, nil
}

// Get retrieves one category by its UUID.
func (service *Service) Get(context context.Context, id string) (*Category, error) {
	return service.store.FindByID(context, id)
}

// Rename changes a category's name. Name is the only mutable field.
func (service *Service) Rename(context context.Context, id, name string) (*Category, error) {
	category, err := service.store.UpdateName(context, id, name)
	if err != nil {
		return nil, err
	}

	service.logger.Info("category_renamed",
		slog.String("category_id", id),
		slog.String("kind", string(service.kind)),
	)

	return category, nil
}

// Delete removes a category permanently.
func (service *Service) Delete(context context.Context, id string) error {
	if err := service.store.Delete(context, id); err != nil {
		return err
	}

	service.logger.Warn("category_deleted",
		slog.String("category_id", id),
		slog.String("kind", string(service.kind)),
	)

	return nil
}
