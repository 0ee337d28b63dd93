// Copyright (c) 2026 Amar Infâncias. All rights reserved.
// Author: dev@amarinfancias.com.br

package extraservice

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/amarinfancias/amar-api/internal/platform/request"
	"github.com/amarinfancias/amar-api/internal/platform/respond"
	"github.com/amarinfancias/amar-api/internal/platform/validate"
)

// Handler implements the add-on service HTTP endpoints.
type Handler struct {
	extraService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{extraService: service}
}

// Routes returns a [chi.Router] with the add-on catalog routes.
//
// # Endpoints
//   - POST   /     : Registers a new add-on service.
//   - GET    /     : Lists every service (404 when none).
//   - GET    /{id} : Fetches one service.
//   - PATCH  /{id} : Partial update.
//   - DELETE /{id} : Removes the service.
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
	Price       float64 `json:"price"`
	Description *string `json:"description"`
}

type updateRequest struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	Description *string  `json:"description"`
}

/*
Create registers a new add-on service.

POST /api/v1/services

Response:
  - 201: Message + created service
  - 400: Validation failure
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
		Custom(FieldPrice, input.Price < 0, "Deve ser um valor positivo")

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	extra, err := handler.extraService.Create(request.Context(), CreateInput{
		Name:        input.Name,
		Price:       input.Price,
		Description: input.Description,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, MsgCreated, extra)
}

/*
List returns every add-on service.

GET /api/v1/services

Response:
  - 200: Message + services
  - 404: The catalog is empty
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	services, err := handler.extraService.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, MsgListFound, services)
}

/*
Get fetches one add-on service by id.

GET /api/v1/services/{id}

Response:
  - 200: Message + service
  - 400: Malformed UUID
  - 404: Unknown service
*/
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	validator := &validate.Validator{}
	validator.UUID("id", id)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	extra, err := handler.extraService.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, MsgFound, extra)
}

/*
Update applies a partial change to an add-on service.

PATCH /api/v1/services/{id}

Response:
  - 200: Message + updated service
  - 400: Malformed UUID or invalid field
  - 404: Unknown service
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
	if input.Price != nil {
		validator.Custom(FieldPrice, *input.Price < 0, "Deve ser um valor positivo")
	}
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	extra, err := handler.extraService.Update(request.Context(), id, UpdateInput{
		Name:        input.Name,
		Price:       input.Price,
		Description: input.Description,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, MsgUpdated, extra)
}

/*
Remove deletes an add-on service permanently.

DELETE /api/v1/services/{id}

Response:
  - 200: Message
  - 400: Malformed UUID
  - 404: Unknown service
*/
func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	validator := &validate.Validator{}
	validator.UUID("id", id)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.extraService.Delete(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, MsgDeleted, nil)
}
