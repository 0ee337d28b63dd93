// Copyright (c) 2026 Amar Infâncias. All rights reserved.
// Author: dev@amarinfancias.com.br

package category

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/amarinfancias/amar-api/internal/platform/request"
	"github.com/amarinfancias/amar-api/internal/platform/respond"
	"github.com/amarinfancias/amar-api/internal/platform/validate"
)

// Handler implements the category HTTP endpoints for one [Kind]. The same
// handler is mounted twice, once per category table.
type Handler struct {
	categoryService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{categoryService: service}
}

// Routes returns a [chi.Router] with the category routes.
//
// # Endpoints
//   - POST   /     : Creates a new category.
//   - GET    /     : Lists every category (404 when none).
//   - GET    /{id} : Fetches one category.
//   - PATCH  /{id} : Renames the category.
//   - DELETE /{id} : Removes the category.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", handler.create)
	router.Get("/", handler.list)
	router.Get("/{id}", handler.get)
	router.Patch("/{id}", handler.rename)
	router.Delete("/{id}", handler.remove)

	return router
}

type nameRequest struct {
	Name string `json:"name"`
}

/*
Create registers a new category.

Response:
  - 201: Message + created category
  - 400: Validation failure
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input nameRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldName, input.Name).
		MaxLen(FieldName, input.Name, 120)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	category, err := handler.categoryService.Create(request.Context(), input.Name)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, MsgCreated, category)
}

/*
List returns every category.

Response:
  - 200: Message + categories
  - 404: No category exists yet
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	categories, err := handler.categoryService.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, MsgListFound, categories)
}

/*
Get fetches one category by id.

Response:
  - 200: Message + category
  - 400: Malformed UUID
  - 404: Unknown category
*/
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	validator := &validate.Validator{}
	validator.UUID("id", id)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	category, err := handler.categoryService.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, MsgFound, category)
}

/*
Rename changes the category's name.

Response:
  - 200: Message + updated category
  - 400: Malformed UUID or empty name
  - 404: Unknown category
*/
func (handler *Handler) rename(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	var input nameRequest
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

	category, err := handler.categoryService.Rename(request.Context(), id, input.Name)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, MsgUpdated, category)
}

/*
Remove deletes the category permanently.

Response:
  - 200: Message
  - 400: Malformed UUID
  - 404: Unknown category
*/
func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	validator := &validate.Validator{}
	validator.UUID("id", id)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.categoryService.Delete(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, MsgDeleted, nil)
}
