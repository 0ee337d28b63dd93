// Copyright (c) 2026 Amar Infâncias. All rights reserved.
// Author: dev@amarinfancias.com.br

package child

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/amarinfancias/amar-api/internal/platform/request"
	"github.com/amarinfancias/amar-api/internal/platform/respond"
	"github.com/amarinfancias/amar-api/internal/platform/validate"
)

// Handler implements the children registry HTTP endpoints.
type Handler struct {
	childService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{childService: service}
}

// Routes returns a [chi.Router] with the children registry routes.
//
// # Endpoints
//   - POST   /     : Registers a child under an existing caregiver.
//   - GET    /     : Lists every child (404 when none).
//   - GET    /{id} : Fetches one child with its caregiver.
//   - PATCH  /{id} : Renames the child.
//   - DELETE /{id} : Removes the record.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", handler.create)
	router.Get("/", handler.list)
	router.Get("/{id}", handler.get)
	router.Patch("/{id}", handler.rename)
	router.Delete("/{id}", handler.remove)

	return router
}

// # Request Payloads

type createRequest struct {
	Name        string `json:"name"`
	CaregiverID string `json:"caregiver_id"`
}

type renameRequest struct {
	Name string `json:"name"`
}

/*
Create registers a new child.

POST /api/v1/children

Response:
  - 201: Message + created record
  - 400: Validation failure
  - 404: Caregiver id does not match any client
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
		Required(FieldCaregiverID, input.CaregiverID).
		UUID(FieldCaregiverID, input.CaregiverID)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	child, err := handler.childService.Create(request.Context(), input.Name, input.CaregiverID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, MsgCreated, child)
}

/*
List returns every registered child.

GET /api/v1/children

Response:
  - 200: Message + records
  - 404: No child registered yet
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	children, err := handler.childService.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, MsgListFound, children)
}

/*
Get fetches one child and its caregiver.

GET /api/v1/children/{id}

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

	child, err := handler.childService.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, MsgFound, child)
}

/*
Rename changes the child's name.

PATCH /api/v1/children/{id}

Response:
  - 200: Message + updated record
  - 400: Malformed UUID or empty name
  - 404: Unknown record
*/
func (handler *Handler) rename(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	var input renameRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.UUID("id", id).
		Required(FieldName, input.Name).
		MaxLen(FieldName, input.Name, 120)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	child, err := handler.childService.Rename(request.Context(), id, input.Name)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, MsgUpdated, child)
}

/*
Remove deletes the record permanently.

DELETE /api/v1/children/{id}

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

	if err := handler.childService.Delete(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, MsgDeleted, nil)
}
