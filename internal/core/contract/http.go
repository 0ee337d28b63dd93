// Copyright (c) 2026 Amar Infâncias. All rights reserved.
// Author: dev@amarinfancias.com.br

package contract

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/amarinfancias/amar-api/internal/platform/request"
	"github.com/amarinfancias/amar-api/internal/platform/respond"
	"github.com/amarinfancias/amar-api/internal/platform/validate"
)

// Handler implements the contract HTTP endpoints.
type Handler struct {
	contractService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{contractService: service}
}

// Routes returns a [chi.Router] with the contract routes.
//
// # Endpoints
//   - POST   /                              : Generates a new contract.
//   - GET    /                              : Lists every contract (404 when none).
//   - GET    /{id}                          : Fetches the detail view.
//   - PATCH  /{id}                          : Partial update (400 on empty body).
//   - DELETE /{id}                          : Removes the contract.
//   - POST   /{id}/services                 : Attaches an add-on service.
//   - DELETE /{id}/services/{serviceId}     : Detaches an add-on service.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", handler.create)
	router.Get("/", handler.list)
	router.Get("/{id}", handler.get)
	router.Patch("/{id}", handler.update)
	router.Delete("/{id}", handler.remove)

	router.Post("/{id}/services", handler.attachService)
	router.Delete("/{id}/services/{serviceId}", handler.detachService)

	return router
}

// # Request Payloads

type createRequest struct {
	ContractURL    *string `json:"contract_url"`
	IsSigned       *bool   `json:"is_signed"`
	ClientID       string  `json:"client_id"`
	EventID        string  `json:"event_id"`
	Package        string  `json:"package"`
	Value          float64 `json:"value"`
	Status         *string `json:"status"`
	Date           string  `json:"date"`
	PaymentMethod  *string `json:"payment_method"`
	SplitPayment   *bool   `json:"split_payment"`
	PaymentDueDate string  `json:"payment_due_date"`
	Observations   *string `json:"observations"`
}

type updateRequest struct {
	ContractURL    *string  `json:"contract_url"`
	IsSigned       *bool    `json:"is_signed"`
	ClientID       *string  `json:"client_id"`
	EventID        *string  `json:"event_id"`
	Package        *string  `json:"package"`
	Value          *float64 `json:"value"`
	Status         *string  `json:"status"`
	Date           *string  `json:"date"`
	PaymentMethod  *string  `json:"payment_method"`
	SplitPayment   *bool    `json:"split_payment"`
	PaymentDueDate *string  `json:"payment_due_date"`
	Observations   *string  `json:"observations"`
}

type attachRequest struct {
	ExtraServiceID string `json:"extra_service_id"`
}

/*
Create generates a new contract.

POST /api/v1/contracts

Response:
  - 201: Message + created contract
  - 400: Validation failure, or the event id does not exist
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input createRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldClientID, input.ClientID).
		UUID(FieldClientID, input.ClientID).
		Required(FieldEventID, input.EventID).
		UUID(FieldEventID, input.EventID).
		Required(FieldPackage, input.Package).
		OneOf(FieldPackage, input.Package, Packages...).
		Custom(FieldValue, input.Value < 0, "Deve ser um valor positivo").
		Required(FieldDate, input.Date).
		Required(FieldPaymentDueDate, input.PaymentDueDate)

	if input.Status != nil {
		validator.OneOf(FieldStatus, *input.Status, Statuses...)
	}
	if input.PaymentMethod != nil {
		validator.OneOf(FieldPaymentMethod, *input.PaymentMethod, PaymentMethods...)
	}

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	contract, err := handler.contractService.Create(request.Context(), CreateInput{
		ContractURL:    input.ContractURL,
		IsSigned:       input.IsSigned,
		ClientID:       input.ClientID,
		EventID:        input.EventID,
		Package:        input.Package,
		Value:          input.Value,
		Status:         input.Status,
		Date:           input.Date,
		PaymentMethod:  input.PaymentMethod,
		SplitPayment:   input.SplitPayment,
		PaymentDueDate: input.PaymentDueDate,
		Observations:   input.Observations,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, MsgCreated, contract)
}

/*
List returns every contract.

GET /api/v1/contracts

Response:
  - 200: Message + contracts
  - 404: No contract exists yet
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	contracts, err := handler.contractService.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, MsgListFound, contracts)
}

/*
Get fetches the detail view of one contract.

GET /api/v1/contracts/{id}

Response:
  - 200: Message + contract with client, event, services and records
  - 400: Malformed UUID
  - 404: Unknown contract
*/
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	validator := &validate.Validator{}
	validator.UUID("id", id)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	detail, err := handler.contractService.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, MsgFound, detail)
}

/*
Update applies a partial change to a contract.

PATCH /api/v1/contracts/{id}

Response:
  - 200: Message + updated contract
  - 400: Malformed UUID, invalid field, or no field provided at all
  - 404: Unknown contract
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
	if input.ClientID != nil {
		validator.UUID(FieldClientID, *input.ClientID)
	}
	if input.EventID != nil {
		validator.UUID(FieldEventID, *input.EventID)
	}
	if input.Package != nil {
		validator.OneOf(FieldPackage, *input.Package, Packages...)
	}
	if input.Status != nil {
		validator.OneOf(FieldStatus, *input.Status, Statuses...)
	}
	if input.PaymentMethod != nil {
		validator.OneOf(FieldPaymentMethod, *input.PaymentMethod, PaymentMethods...)
	}
	if input.Value != nil {
		validator.Custom(FieldValue, *input.Value < 0, "Deve ser um valor positivo")
	}
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	contract, err := handler.contractService.Update(request.Context(), id, UpdateInput{
		ContractURL:    input.ContractURL,
		IsSigned:       input.IsSigned,
		ClientID:       input.ClientID,
		EventID:        input.EventID,
		Package:        input.Package,
		Value:          input.Value,
		Status:         input.Status,
		Date:           input.Date,
		PaymentMethod:  input.PaymentMethod,
		SplitPayment:   input.SplitPayment,
		PaymentDueDate: input.PaymentDueDate,
		Observations:   input.Observations,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, MsgUpdated, contract)
}

/*
Remove deletes a contract permanently.

DELETE /api/v1/contracts/{id}

Response:
  - 200: Message
  - 400: Malformed UUID
  - 404: Unknown contract
*/
func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	validator := &validate.Validator{}
	validator.UUID("id", id)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.contractService.Delete(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, MsgDeleted, nil)
}

/*
AttachService links an add-on service to the contract.

POST /api/v1/contracts/{id}/services

Response:
  - 200: Message
  - 400: Malformed ids, or either id does not exist
*/
func (handler *Handler) attachService(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	var input attachRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.UUID("id", id).
		Required(FieldExtraServiceID, input.ExtraServiceID).
		UUID(FieldExtraServiceID, input.ExtraServiceID)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.contractService.AttachService(request.Context(), id, input.ExtraServiceID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, MsgServiceAttached, nil)
}

/*
DetachService removes an add-on service from the contract.

DELETE /api/v1/contracts/{id}/services/{serviceId}

Response:
  - 200: Message
  - 400: Malformed ids
  - 404: The service was never attached to this contract
*/
func (handler *Handler) detachService(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")
	serviceID := requestutil.Param(request, "serviceId")

	validator := &validate.Validator{}
	validator.UUID("id", id).
		UUID(FieldExtraServiceID, serviceID)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.contractService.DetachService(request.Context(), id, serviceID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, MsgServiceDetached, nil)
}
