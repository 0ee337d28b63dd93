// Copyright (c) 2026 Amar Infâncias. All rights reserved.
// Author: dev@amarinfancias.com.br

package event

import (
	"context"
	"log/slog"

	"github.com/amarinfancias/amar-api/internal/platform/apperr"
	"github.com/amarinfancias/amar-api/pkg/uuid"
)

// Service orchestrates agenda event operations.
type Service struct {
	store  Store
	logger *slog.Logger
}

// NewService constructs the event [Service].
func NewService(store Store, logger *slog.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// CreateInput holds the data required to schedule an event.
type CreateInput struct {
	Name         string
	Type         string
	Location     string
	Date         string
	Hour         string
	Duration     int
	Observations *string
}

/*
Create schedules a new event.

Parameters:
  - context: context.Context
  - input: CreateInput (type already validated at the boundary)

Returns:
  - *Event: Created entity
  - err: Storage failures
*/
func (service *Service) Create(context context.Context, input CreateInput) (*Event, error) {

	event := &Event{
		ID:           uuid.New(),
		Name:         input.Name,
		Type:         input.Type,
		Location:     input.Location,
		Date:         input.Date,
		Hour:         input.Hour,
		Duration:     input.Duration,
		Observations: input.Observations,
	}

	if err := service.store.Create(context, event); err != nil {
		return nil, err
	}

	service.logger.Info("event_scheduled",
		slog.String("event_id", event.ID),
		slog.String("type", event.Type),
	)

	return event, nil
}

/*
List returns every event in the agenda.

Returns:
  - []Event: All events, newest first
  - err: NotFound (404) when the agenda is empty
*/
func (service *Service) List(context context.Context) ([]Event, error) {
	events, err := service.store.FindAll(context)
	if err != nil {
		return nil, err
	}

	if len(events) == 0 {
		return nil, apperr.NotFound(MsgListEmpty)
	}

	return events, nil
}

// Get retrieves one event by its UUID.
func (service *Service) Get(context context.Context, id string) (*Event, error) {
	return service.store.FindByID(context, id)
}

// UpdateInput defines the mutable subset of event fields.
type UpdateInput struct {
	Name         *string
	Type         *string
	Location     *string
	Date         *string
	Hour         *string
	Duration     *int
	Observations *string
}

/*
Update applies a partial set of changes to an event.

Parameters:
  - context: context.Context
  - id: string (UUID)
  - input: UpdateInput

Returns:
  - *Event: The updated entity
  - err: NotFound or storage failures
*/
func (service *Service) Update(context context.Context, id string, input UpdateInput) (*Event, error) {

	event, err := service.store.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	// Apply delta updates
	if input.Name != nil {
		event.Name = *input.Name
	}
	if input.Type != nil {
		event.Type = *input.Type
	}
	if input.Location != nil {
		event.Location = *input.Location
	}
	if input.Date != nil {
		event.Date = *input.Date
	}
	if input.Hour != nil {
		event.Hour = *input.Hour
	}
	if input.Duration != nil {
		event.Duration = *input.Duration
	}
	if input.Observations != nil {
		event.Observations = input.Observations
	}

	if err := service.store.Update(context, event); err != nil {
		return nil, err
	}

	service.logger.Info("event_updated", slog.String("event_id", id))

	return event, nil
}

/*
Delete permanently removes an event.

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

	service.logger.Warn("event_deleted", slog.String("event_id", id))

	return nil
}
