// Copyright (c) 2026 Amar Infâncias. All rights reserved.
// Author: dev@amarinfancias.com.br

package event

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/amarinfancias/amar-api/internal/platform/request"
	"github.com/amarinfancias/amar-api/internal/platform/respond"
	"github.com/amarinfancias/amar-api/internal/platform/validate"
)

// Handler implements the agenda HTTP endpoints.
type Handler struct {
	eventService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{eventService: service}
}

// Routes returns a [chi.Router] with the agenda routes.
//
// # Endpoints
//   - POST   /     : Schedules a new event.
//   - GET    /     : Lists every event (404 when none).
//   - GET    /{id} : Fetches one event.
//   - PATCH  /{id} : Partial update.
//   - DELETE /{id} : Removes the event.
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
	Name         string  `json:"name"`
	Type         string  `json:"type"`
	Location     string  `json:"location"`
	Date         string  `json:"date"`
	Hour         string  `json:"hour"`
	Duration     int     `json:"duration"`
	Observations *string `json:"observations"`
}

type updateRequest struct {
	Name         *string `json:"name"`
	Type         *string `json:"type"`
	Location     *string `json:"location"`
	Date         *string `json:"date"`
	Hour         *string `json:"hour"`
	Duration     *int    `json:"duration"`
	Observations *string `json:"observations"`
}

/*
Create schedules a new event.

POST /api/v1/events

Response:
  - 201: Message + created event
  - 400: Validation failure (unknown type, missing field)
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input createRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldName, input.Name).
		MaxLen(FieldName, input.Name, 160).
		Required(FieldType, input.Type).
		OneOf(FieldType, input.Type, Types...).
		Required(FieldLocation, input.Location).
		Required(FieldDate, input.Date).
		Required(FieldHour, input.Hour).
		Custom(FieldDuration, input.Duration <= 0, "Deve ser um número de horas positivo")

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	event, err := handler.eventService.Create(request.Context(), CreateInput{
		Name:         input.Name,
		Type:         input.Type,
		Location:     input.Location,
		Date:         input.Date,
		Hour:         input.Hour,
		Duration:     input.Duration,
		Observations: input.Observations,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, MsgCreated, event)
}

/*
List returns every event.

GET /api/v1/events

Response:
  - 200: Message + events
  - 404: The agenda is empty
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	events, err := handler.eventService.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, MsgListFound, events)
}

/*
Get fetches one event by id.

GET /api/v1/events/{id}

Response:
  - 200: Message + event
  - 400: Malformed UUID
  - 404: Unknown event
*/
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	validator := &validate.Validator{}
	validator.UUID("id", id)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	event, err := handler.eventService.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, MsgFound, event)
}

/*
Update applies a partial change to an event.

PATCH /api/v1/events/{id}

Response:
  - 200: Message + updated event
  - 400: Malformed UUID or invalid field
  - 404: Unknown event
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
			MaxLen(FieldName, *input.Name, 160)
	}
	if input.Type != nil {
		validator.OneOf(FieldType, *input.Type, Types...)
	}
	if input.Duration != nil {
		validator.Custom(FieldDuration, *input.Duration <= 0, "Deve ser um número de horas positivo")
	}
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	event, err := handler.eventService.Update(request.Context(), id, UpdateInput{
		Name:         input.Name,
		Type:         input.Type,
		Location:     input.Location,
		Date:         input.Date,
		Hour:         input.Hour,
		Duration:     input.Duration,
		Observations: input.Observations,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, MsgUpdated, event)
}

/*
Remove deletes an event permanently.

DELETE /api/v1/events/{id}

Response:
  - 200: Message
  - 400: Malformed UUID
  - 404: Unknown event
*/
func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	validator := &validate.Validator{}
	validator.UUID("id", id)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.eventService.Delete(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, MsgDeleted, nil)
}
