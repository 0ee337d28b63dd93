// Copyright (c) 2026 Amar Infâncias. All rights reserved.
// Author: dev@amarinfancias.com.br

package account

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/amarinfancias/amar-api/internal/platform/ctxutil"
	requestutil "github.com/amarinfancias/amar-api/internal/platform/request"
	"github.com/amarinfancias/amar-api/internal/platform/respond"
	"github.com/amarinfancias/amar-api/internal/platform/validate"
	"github.com/amarinfancias/amar-api/internal/users/auth"
)

// # Definitions & Constructors

// Handler implements the admin account HTTP endpoints.
type Handler struct {
	accountService *Service
	sessionGuard   func(http.Handler) http.Handler
}

// NewHandler constructs a new [Handler] with its service dependency and the
// session guard applied to the protected subset of routes.
func NewHandler(service *Service, sessionGuard func(http.Handler) http.Handler) *Handler {
	return &Handler{accountService: service, sessionGuard: sessionGuard}
}

// Routes returns a [chi.Router] with the account management routes.
//
// Registration and the forgot-password request stay outside the session
// guard: the first admin account must be creatable through the API, and an
// operator asking for a reset link has no session by definition. Everything
// else requires one.
//
// # Endpoints
//   - POST   /               : Creates a new admin account (public).
//   - POST   /reset-request  : Emails a password-recovery link (public).
//   - GET    /               : Lists every account (404 when none).
//   - GET    /{id}           : Fetches one account.
//   - PATCH  /{id}           : Partial profile update.
//   - PATCH  /{id}/password  : Password change.
//   - DELETE /{id}           : Removes the account.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", handler.create)
	router.Post("/reset-request", handler.resetRequest)

	router.Group(func(protected chi.Router) {
		protected.Use(handler.sessionGuard)

		protected.Get("/", handler.list)
		protected.Get("/{id}", handler.get)
		protected.Patch("/{id}", handler.update)
		protected.Patch("/{id}/password", handler.updatePassword)
		protected.Delete("/{id}", handler.remove)
	})

	return router
}

// # Request Payloads

type createRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	PictureURL string `json:"picture_url"`
}

type updateRequest struct {
	Name       *string `json:"name"`
	Email      *string `json:"email"`
	PictureURL *string `json:"picture_url"`
}

type updatePasswordRequest struct {
	Password string `json:"password"`
}

type resetRequest struct {
	Email string `json:"email"`
}

/*
Create registers a new admin account.

POST /api/v1/users

Response:
  - 201: Message + created profile
  - 400: Validation failure (weak password, bad email)
  - 409: Email already registered
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input createRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(auth.FieldName, input.Name).
		MaxLen(auth.FieldName, input.Name, 120).
		Required(auth.FieldEmail, input.Email).
		Email(auth.FieldEmail, input.Email).
		Required(auth.FieldPassword, input.Password).
		StrongPassword(auth.FieldPassword, input.Password)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.accountService.Create(request.Context(), CreateInput{
		Name:       input.Name,
		Email:      input.Email,
		Password:   input.Password,
		PictureURL: input.PictureURL,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, MsgUserCreated, user)
}

/*
List returns every admin account.

GET /api/v1/users

Response:
  - 200: Message + accounts
  - 404: No account exists yet
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	users, err := handler.accountService.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, MsgUserFound, users)
}

/*
Get fetches one account by id.

GET /api/v1/users/{id}

Response:
  - 200: Message + profile
  - 400: Malformed UUID
  - 404: Unknown account
*/
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	validator := &validate.Validator{}
	validator.UUID("id", id)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.accountService.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, MsgUserFound, user)
}

/*
Update applies a partial profile change.

PATCH /api/v1/users/{id}

Response:
  - 200: Message + updated profile
  - 400: Malformed UUID or invalid field
  - 404: Unknown account
  - 409: New email already registered
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
	if input.Email != nil {
		validator.Email(auth.FieldEmail, *input.Email)
	}
	if input.Name != nil {
		validator.Required(auth.FieldName, *input.Name).
			MaxLen(auth.FieldName, *input.Name, 120)
	}
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.accountService.Update(request.Context(), id, UpdateInput{
		Name:       input.Name,
		Email:      input.Email,
		PictureURL: input.PictureURL,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, MsgUserUpdated, user)
}

/*
UpdatePassword replaces the account password.

PATCH /api/v1/users/{id}/password

Response:
  - 200: Message
  - 400: Malformed UUID or weak password
  - 404: Unknown account
*/
func (handler *Handler) updatePassword(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	var input updatePasswordRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.UUID("id", id).
		Required(auth.FieldPassword, input.Password).
		StrongPassword(auth.FieldPassword, input.Password)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.accountService.UpdatePassword(request.Context(), id, input.Password); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, MsgPasswordUpdated, nil)
}

/*
Remove deletes the account permanently.

DELETE /api/v1/users/{id}

Response:
  - 200: Message
  - 400: Malformed UUID
  - 404: Unknown account
*/
func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	validator := &validate.Validator{}
	validator.UUID("id", id)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.accountService.Delete(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Account removal is destructive enough to record who did it. Claims
	// are only present on the renewal path; the fast path decodes none.
	if claims := requestutil.Claims(request); claims != nil {
		ctxutil.GetLogger(request.Context()).Info("user_account_removed_by",
			slog.String("actor_email", claims.Email),
			slog.String("user_id", id),
		)
	}

	respond.OK(writer, MsgUserDeleted, nil)
}

/*
ResetRequest emails a password-recovery link.

POST /api/v1/users/reset-request

Response:
  - 200: Message
  - 400: Invalid email
  - 404: Email not registered
*/
func (handler *Handler) resetRequest(writer http.ResponseWriter, request *http.Request) {
	var input resetRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(auth.FieldEmail, input.Email).
		Email(auth.FieldEmail, input.Email)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.accountService.RequestPasswordReset(request.Context(), input.Email); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, MsgResetRequested, nil)
}
