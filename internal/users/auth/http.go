// Copyright (c) 2026 Amar Infâncias. All rights reserved.
// Author: dev@amarinfancias.com.br

package auth

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/amarinfancias/amar-api/internal/platform/constants"
	"github.com/amarinfancias/amar-api/internal/platform/ctxutil"
	"github.com/amarinfancias/amar-api/internal/platform/middleware"
	requestutil "github.com/amarinfancias/amar-api/internal/platform/request"
	"github.com/amarinfancias/amar-api/internal/platform/respond"
	"github.com/amarinfancias/amar-api/internal/platform/validate"
)

// # Definitions & Constructors

// Handler implements the session lifecycle HTTP endpoints.
//
// # Scope
//
// Login, logout and the password-reset landing. Account management (create,
// update, reset-request) lives in the account package.
type Handler struct {
	authService   *Service
	loginThrottle func(http.Handler) http.Handler
}

// NewHandler constructs a new [Handler].
//
// # Parameters
//   - service: The auth service.
//   - loginThrottle: The per-IP login attempt limiter, usually
//     [middleware.LoginThrottle] over a Redis counter.
func NewHandler(service *Service, loginThrottle func(http.Handler) http.Handler) *Handler {
	return &Handler{authService: service, loginThrottle: loginThrottle}
}

// Routes returns a [chi.Router] configured with the session routes.
//
// # Endpoints
//   - POST /login  : Authenticates and sets both session cookies.
//   - GET  /logout : Clears the session server-side and client-side.
//   - GET  /       : Password-reset landing (?resetToken=...).
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Login is gated twice: an existing access cookie short-circuits it, and
	// attempts are throttled per IP.
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAnonymous)
		r.Use(handler.loginThrottle)
		r.Post("/login", handler.login)
	})

	router.Get("/logout", handler.logout)
	router.Get("/", handler.resetLanding)

	return router
}

// # Request Payloads

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

/*
Login authenticates an admin and establishes the session cookies.

POST /api/v1/auth/login

Description: Verifies credentials, persists the refresh token on the account
row, and injects both httpOnly session cookies into the response.

Request:
  - Body: loginRequest (Email, Password)

Response:
  - 200: Message + user profile, accessToken and refreshToken cookies set
  - 400: Identical generic message for unknown email or wrong password
  - 429: Too many attempts from this IP inside the window
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldEmail, input.Email).
		Email(FieldEmail, input.Email).
		Required(FieldPassword, input.Password)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.authService.Login(request.Context(), LoginInput{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	middleware.SetSessionCookie(writer, constants.AccessTokenCookieName, session.AccessToken, constants.AccessTokenTTL)
	middleware.SetSessionCookie(writer, constants.RefreshTokenCookieName, session.RefreshToken, constants.RefreshTokenTTL)

	respond.OK(writer, constants.MsgLoginSuccess, session.User)
}

/*
Logout terminates the current session.

GET /api/v1/auth/logout

Description: With an access cookie present, verifies it and nulls the stored
refresh token. Either way both cookies are expired on the response, so a
browser without a live session still ends up clean.

Response:
  - 200: Logout message
  - 500: Access cookie present but unverifiable (signing key fault)
*/
func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	if accessToken := requestutil.Cookie(request, constants.AccessTokenCookieName); accessToken != "" {
		if err := handler.authService.Logout(request.Context(), accessToken); err != nil {
			respond.Error(writer, request, err)
			return
		}
	}

	middleware.ClearSessionCookie(writer, constants.AccessTokenCookieName)
	middleware.ClearSessionCookie(writer, constants.RefreshTokenCookieName)

	respond.OK(writer, constants.MsgLogoutSuccess, nil)
}

/*
ResetLanding validates an emailed password-reset link.

GET /api/v1/auth?resetToken=...

Description: Verifies the reset token and returns the identity embedded in
it, so the frontend can prefill the reset form before submitting the new
password through the account endpoints.

Response:
  - 200: Identity {name, email} from the token
  - 400: Missing resetToken parameter
  - 500: Token invalid or expired
*/
func (handler *Handler) resetLanding(writer http.ResponseWriter, request *http.Request) {
	token := request.URL.Query().Get(FieldResetToken)
	if token == "" {
		respond.Error(writer, request, validate.RequiredError(FieldResetToken, "é obrigatório"))
		return
	}

	claims, err := handler.authService.VerifyResetToken(token)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	logger := ctxutil.GetLogger(request.Context())
	logger.InfoContext(request.Context(), "reset_link_opened",
		slog.String("user_email", claims.Email),
	)

	respond.OK(writer, constants.MsgLoginSuccess, map[string]string{
		FieldName:  claims.Name,
		FieldEmail: claims.Email,
	})
}
