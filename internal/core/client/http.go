// Copyright (c) 2026 Amar Infâncias. All rights reserved.
// Author: dev@amarinfancias.com.br

package client

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/amarinfancias/amar-api/internal/platform/request"
	"github.com/amarinfancias/amar-api/internal/platform/respond"
	"github.com/amarinfancias/amar-api/internal/platform/validate"
	"github.com/amarinfancias/amar-api/pkg/pagination"
)

// Handler implements the client registry HTTP endpoints.
type Handler struct {
	clientService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{clientService: service}
}

// Routes returns a [chi.Router] with the client registry routes.
//
// # Endpoints
//   - POST   /     : Registers a new client.
//   - GET    /     : Paginated client listing (404 when none).
//   - GET    /{id} : Fetches one client.
//   - PATCH  /{id} : Partial update.
//   - DELETE /{id} : Removes the client.
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
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	PhoneNumber string  `json:"phone_number"`
	Address     string  `json:"address"`
	City        string  `json:"city"`
	CPF         *string `json:"cpf"`
	RG          *string `json:"rg"`
	Instagram   *string `json:"instagram"`
}

type updateRequest struct {
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	PhoneNumber *string `json:"phone_number"`
	Address     *string `json:"address"`
	City        *string `json:"city"`
	CPF         *string `json:"cpf"`
	RG          *string `json:"rg"`
	Instagram   *string `json:"instagram"`
}

/*
Create registers a new client.

POST /api/v1/clients

Response:
  - 201: Message + created client
  - 400: Validation failure
  - 409: Email, CPF or RG already registered
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input createRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldName, input.Name).
		MaxLen(FieldName, input.Name, 120).
		Required(FieldEmail, input.Email).
		Email(FieldEmail, input.Email).
		Required(FieldPhoneNumber, input.PhoneNumber).
		Required(FieldAddress, input.Address).
		Required(FieldCity, input.City)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	client, err := handler.clientService.Create(request.Context(), CreateInput{
		Name:        input.Name,
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
		Address:     input.Address,
		City:        input.City,
		CPF:         input.CPF,
		RG:          input.RG,
		Instagram:   input.Instagram,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, MsgCreated, client)
}

/*
List returns one page of clients.

GET /api/v1/clients?page=1&limit=20

Response:
  - 200: Message + clients + pagination metadata
  - 404: The client base is empty
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	clients, total, err := handler.clientService.List(request.Context(), params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, MsgListFound, clients, pagination.NewMeta(params.Page, params.Limit, int(total)))
}

/*
Get fetches one client by id.

GET /api/v1/clients/{id}

Response:
  - 200: Message + client
  - 400: Malformed UUID
  - 404: Unknown client
*/
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	validator := &validate.Validator{}
	validator.UUID("id", id)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	client, err := handler.clientService.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, MsgFound, client)
}

/*
Update applies a partial change to a client.

PATCH /api/v1/clients/{id}

Response:
  - 200: Message + updated client
  - 400: Malformed UUID or invalid field
  - 404: Unknown client
  - 409: Email, CPF or RG already registered
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
	if input.Name != nil {
		validator.Required(FieldName, *input.Name).
			MaxLen(FieldName, *input.Name, 120)
	}
	if input.Email != nil {
		validator.Email(FieldEmail, *input.Email)
	}
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	client, err := handler.clientService.Update(request.Context(), id, UpdateInput{
		Name:        input.Name,
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
		Address:     input.Address,
		City:        input.City,
		CPF:         input.CPF,
		RG:          input.RG,
		Instagram:   input.Instagram,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, MsgUpdated, client)
}

/*
Remove deletes a client permanently.

DELETE /api/v1/clients/{id}

Response:
  - 200: Message
  - 400: Malformed UUID
  - 404: Unknown client
*/
func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	validator := &validate.Validator{}
	validator.UUID("id", id)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.clientService.Delete(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, MsgDeleted, nil)
}
