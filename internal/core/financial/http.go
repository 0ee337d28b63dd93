// Copyright (c) 2026 Amar Infâncias. All rights reserved.
// Author: dev@amarinfancias.com.br

package financial

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/amarinfancias/amar-api/internal/platform/request"
	"github.com/amarinfancias/amar-api/internal/platform/respond"
	"github.com/amarinfancias/amar-api/internal/platform/validate"
)

// Handler implements the bookkeeping HTTP endpoints.
type Handler struct {
	financialService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{financialService: service}
}

// Routes returns a [chi.Router] with the bookkeeping routes.
//
// # Endpoints
//   - POST   /     : Files a new record.
//   - GET    /     : Lists every record (404 when none).
//   - GET    /{id} : Fetches one record.
//   - PATCH  /{id} : Partial update.
//   - DELETE /{id} : Removes the record.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", handler.create)
	router.Get("/", handler.list)
	router.Get("/{id}", handler.get)
	router.Patch("/{id}", handler.update)
	router.Delete("/{id}", handler.remove)

	return router
}

// # Request Payloads

type createRequest struct {
	Type              string  `json:"type"`
	ContractID        *string `json:"contract_id"`
	ExpenseCategoryID *string `json:"expense_category_id"`
	RevenueCategoryID *string `json:"revenue_category_id"`
	Amount            float64 `json:"amount"`
	Month             int     `json:"month"`
	Year              int     `json:"year"`
	Status            string  `json:"status"`
	PaymentMethod     *string `json:"payment_method"`
}

type updateRequest struct {
	Type              *string  `json:"type"`
	ContractID        *string  `json:"contract_id"`
	ExpenseCategoryID *string  `json:"expense_category_id"`
	RevenueCategoryID *string  `json:"revenue_category_id"`
	Amount            *float64 `json:"amount"`
	Month             *int     `json:"month"`
	Year              *int     `json:"year"`
	Status            *string  `json:"status"`
	PaymentMethod     *string  `json:"payment_method"`
}

/*
Create files a new bookkeeping record.

POST /api/v1/financial-records

Response:
  - 201: Message + created record
  - 400: Validation failure
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input createRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldType, input.Type).
		OneOf(FieldType, input.Type, Types...).
		Custom(FieldAmount, input.Amount < 0, "Deve ser um valor positivo").
		Range(FieldMonth, input.Month, 1, 12).
		Custom(FieldYear, input.Year < 2000, "Ano inválido").
		Required(FieldStatus, input.Status).
		OneOf(FieldStatus, input.Status, Statuses...)

	if input.ContractID != nil {
		validator.UUID(FieldContractID, *input.ContractID)
	}
	if input.ExpenseCategoryID != nil {
		validator.UUID(FieldExpenseCategoryID, *input.ExpenseCategoryID)
	}
	if input.RevenueCategoryID != nil {
		validator.UUID(FieldRevenueCategoryID, *input.RevenueCategoryID)
	}
	if input.PaymentMethod != nil {
		validator.OneOf(FieldPaymentMethod, *input.PaymentMethod, PaymentMethods...)
	}

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	record, err := handler.financialService.Create(request.Context(), CreateInput{
		Type:              input.Type,
		ContractID:        input.ContractID,
		ExpenseCategoryID: input.ExpenseCategoryID,
		RevenueCategoryID: input.RevenueCategoryID,
		Amount:            input.Amount,
		Month:             input.Month,
		Year:              input.Year,
		Status:            input.Status,
		PaymentMethod:     input.PaymentMethod,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, MsgCreated, record)
}

/*
List returns every bookkeeping record.

GET /api/v1/financial-records

Response:
  - 200: Message + records
  - 404: No record filed yet
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	records, err := handler.financialService.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, MsgListFound, records)
}

/*
Get fetches one record by id.

GET /api/v1/financial-records/{id}

Response:
  - 200: Message + record
  - 400: Malformed UUID
  - 404: Unknown record
*/
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	validator := &validate.Validator{}
	validator.UUID("id", id)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	record, err := handler.financialService.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, MsgFound, record)
}

/*
Update applies a partial change to a record.

PATCH /api/v1/financial-records/{id}

Response:
  - 200: Message + updated record
  - 400: Malformed UUID or invalid field
  - 404: Unknown record
*/
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	var input updateRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.UUID("id", id)
	if input.Type != nil {
		validator.OneOf(FieldType, *input.Type, Types...)
	}
	if input.Status != nil {
		validator.OneOf(FieldStatus, *input.Status, Statuses...)
	}
	if input.PaymentMethod != nil {
		validator.OneOf(FieldPaymentMethod, *input.PaymentMethod, PaymentMethods...)
	}
	if input.Month != nil {
		validator.Range(FieldMonth, *input.Month, 1, 12)
	}
	if input.Amount != nil {
		validator.Custom(FieldAmount, *input.Amount < 0, "Deve ser um valor positivo")
	}
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	record, err := handler.financialService.Update(request.Context(), id, UpdateInput{
		Type:              input.Type,
		ContractID:        input.ContractID,
		ExpenseCategoryID: input.ExpenseCategoryID,
		RevenueCategoryID: input.RevenueCategoryID,
		Amount:            input.Amount,
		Month:             input.Month,
		Year:              input.Year,
		Status:            input.Status,
		PaymentMethod:     input.PaymentMethod,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, MsgUpdated, record)
}

/*
Remove deletes a record permanently.

DELETE /api/v1/financial-records/{id}

Response:
  - 200: Message
  - 400: Malformed UUID
  - 404: Unknown record
*/
func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	validator := &validate.Validator{}
	validator.UUID("id", id)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.financialService.Delete(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, MsgDeleted, nil)
}
