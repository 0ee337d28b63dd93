// Copyright (c) 2026 Amar Infâncias. All rights reserved.
// Author: dev@amarinfancias.com.br

package financial

import (
	"context"
	"log/slog"

	"github.com/amarinfancias/amar-api/internal/platform/apperr"
	"github.com/amarinfancias/amar-api/pkg/uuid"
)

// Service orchestrates bookkeeping record operations.
type Service struct {
	store  Store
	logger *slog.Logger
}

// NewService constructs the financial [Service].
func NewService(store Store, logger *slog.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// CreateInput holds the data required to file a record.
type CreateInput struct {
	Type              string
	ContractID        *string
	ExpenseCategoryID *string
	RevenueCategoryID *string
	Amount            float64
	Month             int
	Year              int
	Status            string
	PaymentMethod     *string
}

/*
Create files a new bookkeeping record.

Parameters:
  - context: context.Context
  - input: CreateInput (type/status/method validated at the boundary)

Returns:
  - *Record: Created entity
  - err: Storage failures
*/
func (service *Service) Create(context context.Context, input CreateInput) (*Record, error) {

	record := &Record{
		ID:                uuid.New(),
		Type:              input.Type,
		ContractID:        input.ContractID,
		ExpenseCategoryID: input.ExpenseCategoryID,
		RevenueCategoryID: input.RevenueCategoryID,
		Amount:            input.Amount,
		Month:             input.Month,
		Year:              input.Year,
		Status:            input.Status,
		PaymentMethod:     input.PaymentMethod,
	}

	if err := service.store.Create(context, record); err != nil {
		return nil, err
	}

	service.logger.Info("financial_record_created",
		slog.String("record_id", record.ID),
		slog.String("type", record.Type),
	)

	return record, nil
}

/*
List returns every bookkeeping record.

Returns:
  - []Record: All records, newest period first
  - err: NotFound (404) when none exists
*/
func (service *Service) List(context context.Context) ([]Record, error) {
	records, err := service.store.FindAll(context)
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, apperr.NotFound(MsgListEmpty)
	}

	return records, nil
}

// Get retrieves one record by its UUID.
func (service *Service) Get(context context.Context, id string) (*Record, error) {
	return service.store.FindByID(context, id)
}

// UpdateInput defines the mutable subset of record fields.
type UpdateInput struct {
	Type              *string
	ContractID        *string
	ExpenseCategoryID *string
	RevenueCategoryID *string
	Amount            *float64
	Month             *int
	Year              *int
	Status            *string
	PaymentMethod     *string
}

/*
Update applies a partial set of changes to a record.

Parameters:
  - context: context.Context
  - id: string (UUID)
  - input: UpdateInput

Returns:
  - *Record: The updated entity
  - err: NotFound or storage failures
*/
func (service *Service) Update(context context.Context, id string, input UpdateInput) (*Record, error) {

	record, err := service.store.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	// Apply delta updates
	if input.Type != nil {
		record.Type = *input.Type
	}
	if input.ContractID != nil {
		record.ContractID = input.ContractID
	}
	if input.ExpenseCategoryID != nil {
		record.ExpenseCategoryID = input.ExpenseCategoryID
	}
	if input.RevenueCategoryID != nil {
		record.RevenueCategoryID = input.RevenueCategoryID
	}
	if input.Amount != nil {
		record.Amount = *input.Amount
	}
	if input.Month != nil {
		record.Month = *input.Month
	}
	if input.Year != nil {
		record.Year = *input.Year
	}
	if input.Status != nil {
		record.Status = *input.Status
	}
	if input.PaymentMethod != nil {
		record.PaymentMethod = input.PaymentMethod
	}

	if err := service.store.Update(context, record); err != nil {
		return nil, err
	}

	service.logger.Info("financial_record_updated", slog.String("record_id", id))

	return record, nil
}

/*
Delete permanently removes a record.

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

	service.logger.Warn("financial_record_deleted", slog.String("record_id", id))

	return nil
}
