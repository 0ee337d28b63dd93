// Copyright (c) 2026 Amar Infâncias. All rights reserved.
// Author: dev@amarinfancias.com.br

package contract

import (
	"context"
	"log/slog"

	"github.com/amarinfancias/amar-api/internal/platform/apperr"
	"github.com/amarinfancias/amar-api/pkg/pointer"
	"github.com/amarinfancias/amar-api/pkg/uuid"
)

// Service orchestrates contract lifecycle operations.
type Service struct {
	store  Store
	logger *slog.Logger
}

// NewService constructs the contract [Service].
func NewService(store Store, logger *slog.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// CreateInput holds the data required to generate a contract.
type CreateInput struct {
	ContractURL    *string
	IsSigned       *bool
	ClientID       string
	EventID        string
	Package        string
	Value          float64
	Status         *string
	Date           string
	PaymentMethod  *string
	SplitPayment   *bool
	PaymentDueDate string
	Observations   *string
}

/*
Create generates a new contract.

Parameters:
  - context: context.Context
  - input: CreateInput (package/status/method validated at the boundary)

Returns:
  - *Contract: Created entity
  - err: BadRequest (400) when the event does not exist, or storage
    failures
*/
func (service *Service) Create(context context.Context, input CreateInput) (*Contract, error) {

	contract := &Contract{
		ID:             uuid.New(),
		ContractURL:    input.ContractURL,
		IsSigned:       input.IsSigned,
		ClientID:       input.ClientID,
		EventID:        input.EventID,
		Package:        input.Package,
		Value:          input.Value,
		Status:         pointer.Fallback(input.Status, StatusDefault),
		Date:           input.Date,
		PaymentMethod:  input.PaymentMethod,
		SplitPayment:   input.SplitPayment,
		PaymentDueDate: input.PaymentDueDate,
		Observations:   input.Observations,
	}

	if err := service.store.Create(context, contract); err != nil {
		return nil, err
	}

	service.logger.Info("contract_generated",
		slog.String("contract_id", contract.ID),
		slog.String("package", contract.Package),
	)

	return contract, nil
}

/*
List returns every contract.

Returns:
  - []Contract: All contracts, newest first
  - err: NotFound (404) when none exists
*/
func (service *Service) List(context context.Context) ([]Contract, error) {
	contracts, err := service.store.FindAll(context)
	if err != nil {
		return nil, err
	}

	if len(contracts) == 0 {
		return nil, apperr.NotFound(MsgListEmpty)
	}

	return contracts, nil
}

// Get retrieves the detail view of one contract.
func (service *Service) Get(context context.Context, id string) (*Detail, error) {
	return service.store.FindByID(context, id)
}

// UpdateInput defines the mutable subset of contract fields.
type UpdateInput struct {
	ContractURL    *string
	IsSigned       *bool
	ClientID       *string
	EventID        *string
	Package        *string
	Value          *float64
	Status         *string
	Date           *string
	PaymentMethod  *string
	SplitPayment   *bool
	PaymentDueDate *string
	Observations   *string
}

// Empty reports whether no field was provided.
func (input UpdateInput) Empty() bool {
	return input.ContractURL == nil && input.IsSigned == nil &&
		input.ClientID == nil && input.EventID == nil &&
		input.Package == nil && input.Value == nil &&
		input.Status == nil && input.Date == nil &&
		input.PaymentMethod == nil && input.SplitPayment == nil &&
		input.PaymentDueDate == nil && input.Observations == nil
}

/*
Update applies a partial set of changes to a contract.

Parameters:
  - context: context.Context
  - id: string (UUID)
  - input: UpdateInput

Returns:
  - *Contract: The updated entity
  - err: BadRequest (400) when no field was provided, NotFound, or
    storage failures
*/
func (service *Service) Update(context context.Context, id string, input UpdateInput) (*Contract, error) {

	if input.Empty() {
		return nil, apperr.BadRequest(MsgNoChange)
	}

	detail, err := service.store.FindByID(context, id)
	if err != nil {
		return nil, err
	}
	contract := detail.Contract

	// Apply delta updates
	if input.ContractURL != nil {
		contract.ContractURL = input.ContractURL
	}
	if input.IsSigned != nil {
		contract.IsSigned = input.IsSigned
	}
	if input.ClientID != nil {
		contract.ClientID = *input.ClientID
	}
	if input.EventID != nil {
		contract.EventID = *input.EventID
	}
	if input.Package != nil {
		contract.Package = *input.Package
	}
	if input.Value != nil {
		contract.Value = *input.Value
	}
	if input.Status != nil {
		contract.Status = *input.Status
	}
	if input.Date != nil {
		contract.Date = *input.Date
	}
	if input.PaymentMethod != nil {
		contract.PaymentMethod = input.PaymentMethod
	}
	if input.SplitPayment != nil {
		contract.SplitPayment = input.SplitPayment
	}
	if input.PaymentDueDate != nil {
		contract.PaymentDueDate = *input.PaymentDueDate
	}
	if input.Observations != nil {
		contract.Observations = input.Observations
	}

	if err := service.store.Update(context, &contract); err != nil {
		return nil, err
	}

	service.logger.Info("contract_updated", slog.String("contract_id", id))

	return &contract, nil
}

/*
Delete permanently removes a contract.

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

	service.logger.Warn("contract_deleted", slog.String("contract_id", id))

	return nil
}

// # Add-On Services

/*
AttachService links an add-on service to a contract.

Parameters:
  - context: context.Context
  - contractID: string (UUID)
  - extraServiceID: string (UUID)

Returns:
  - err: BadRequest (400) when either id is dangling, or storage failures
*/
func (service *Service) AttachService(context context.Context, contractID, extraServiceID string) error {
	if err := service.store.AttachService(context, uuid.New(), contractID, extraServiceID); err != nil {
		return err
	}

	service.logger.Info("contract_service_attached",
		slog.String("contract_id", contractID),
		slog.String("service_id", extraServiceID),
	)

	return nil
}

/*
DetachService removes an add-on link from a contract.

Parameters:
  - context: context.Context
  - contractID: string (UUID)
  - extraServiceID: string (UUID)

Returns:
  - err: NotFound (404) when the service was never attached, or storage
    failures
*/
func (service *Service) DetachService(context context.Context, contractID, extraServiceID string) error {
	if err := service.store.DetachService(context, contractID, extraServiceID); err != nil {
		return err
	}

	service.logger.Info("contract_service_detached",
		slog.String("contract_id", contractID),
		slog.String("service_id", extraServiceID),
	)

	return nil
}
