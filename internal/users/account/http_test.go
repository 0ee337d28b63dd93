// Copyright (c) 2026 Amar Infâncias. All rights reserved.
// Author: dev@amarinfancias.com.br

package account_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amarinfancias/amar-api/internal/platform/apperr"
	"github.com/amarinfancias/amar-api/internal/platform/constants"
	"github.com/amarinfancias/amar-api/internal/platform/middleware"
	"github.com/amarinfancias/amar-api/internal/platform/sec"
	"github.com/amarinfancias/amar-api/internal/users/account"
	"github.com/amarinfancias/amar-api/internal/users/auth"
)

// fakeAccountStore holds a single account in memory.
type fakeAccountStore struct {
	user    *auth.User
	created *auth.User
	deleted string
}

func (store *fakeAccountStore) Create(_ context.Context, user *auth.User) error {
	store.created = user
	return nil
}

func (store *fakeAccountStore) FindAll(_ context.Context) ([]auth.User, error) {
	if store.user == nil {
		return nil, nil
	}
	return []auth.User{*store.user}, nil
}

func (store *fakeAccountStore) FindByID(_ context.Context, id string) (*auth.User, error) {
	if store.user == nil || store.user.ID != id {
		return nil, apperr.NotFound(constants.MsgUserNotFound)
	}
	return store.user, nil
}

func (store *fakeAccountStore) FindByEmail(_ context.Context, email string) (*auth.User, error) {
	if store.user == nil || store.user.Email != email {
		return nil, apperr.NotFound(constants.MsgUserNotFound)
	}
	return store.user, nil
}

func (store *fakeAccountStore) Update(_ context.Context, user *auth.User) error {
	store.user = user
	return nil
}

func (store *fakeAccountStore) UpdatePassword(_ context.Context, userID, newHash string) error {
	if store.user == nil || store.user.ID != userID {
		return apperr.NotFound(constants.MsgUserNotFound)
	}
	store.user.PasswordHash = newHash
	return nil
}

func (store *fakeAccountStore) Delete(_ context.Context, id string) error {
	store.deleted = id
	return nil
}

// fakeMailer records the last reset link instead of sending it.
type fakeMailer struct {
	toEmail   string
	resetLink string
}

func (mailer *fakeMailer) SendPasswordReset(_ context.Context, toEmail, _, resetLink string) error {
	mailer.toEmail = toEmail
	mailer.resetLink = resetLink
	return nil
}

// emptySessionReader backs the guard with a store that knows no account, so
// any renewal attempt is rejected.
type emptySessionReader struct{}

func (emptySessionReader) SessionByEmail(_ context.Context, _ string) (*middleware.SessionCredential, error) {
	return nil, apperr.NotFound(constants.MsgUserNotFound)
}

// newAccountRouter wires the full handler stack with the real session guard,
// the way cmd/api does.
func newAccountRouter(t *testing.T) (http.Handler, *fakeAccountStore, *fakeMailer) {
	t.Helper()

	tokens, err := sec.NewTokenService("account-test-secret", constants.AuthIssuer)
	require.NoError(t, err)

	store := &fakeAccountStore{user: &auth.User{
		ID:    "3f0d6a52-1f2f-4f7c-9a1d-6a9adf74d001",
		Name:  "Ana",
		Email: "ana@amarinfancias.com.br",
	}}
	mailer := &fakeMailer{}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := account.NewService(store, tokens, mailer, logger, 4, "https://admin.amarinfancias.com.br/reset")

	guard := middleware.SessionGuard(tokens, emptySessionReader{})
	return account.NewHandler(service, guard).Routes(), store, mailer
}

/*
TestHandler_ResetRequestWithoutSession verifies the forgot-password request
works with no cookies at all: an operator who lost their password has no
session, so the endpoint must sit outside the guard.
*/
func TestHandler_ResetRequestWithoutSession(t *testing.T) {
	router, _, mailer := newAccountRouter(t)

	body := strings.NewReader(`{"email":"ana@amarinfancias.com.br"}`)
	request := httptest.NewRequest(http.MethodPost, "/reset-request", body)
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), account.MsgResetRequested)
	assert.Equal(t, "ana@amarinfancias.com.br", mailer.toEmail)
	assert.Contains(t, mailer.resetLink, "resetToken=")
}

/*
TestHandler_CreateWithoutSession verifies account registration is reachable
without a session: the first admin account must be creatable through the API.
*/
func TestHandler_CreateWithoutSession(t *testing.T) {
	router, store, _ := newAccountRouter(t)

	body := strings.NewReader(`{"name":"Bia","email":"bia@amarinfancias.com.br","password":"Senha@2026"}`)
	request := httptest.NewRequest(http.MethodPost, "/", body)
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusCreated, recorder.Code)
	require.NotNil(t, store.created)
	assert.Equal(t, "bia@amarinfancias.com.br", store.created.Email)
}

/*
TestHandler_ProtectedRoutesRequireSession verifies the rest of the account
surface still sits behind the session guard.
*/
func TestHandler_ProtectedRoutesRequireSession(t *testing.T) {
	router, store, _ := newAccountRouter(t)

	tests := []struct {
		name   string
		method string
		target string
	}{
		{name: "list", method: http.MethodGet, target: "/"},
		{name: "get", method: http.MethodGet, target: "/" + store.user.ID},
		{name: "update", method: http.MethodPatch, target: "/" + store.user.ID},
		{name: "update_password", method: http.MethodPatch, target: "/" + store.user.ID + "/password"},
		{name: "delete", method: http.MethodDelete, target: "/" + store.user.ID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(tt.method, tt.target, nil)
			recorder := httptest.NewRecorder()

			router.ServeHTTP(recorder, request)

			assert.Equal(t, http.StatusForbidden, recorder.Code)
			assert.Contains(t, recorder.Body.String(), constants.MsgSessionInvalid)
		})
	}
}

/*
TestHandler_ProtectedRouteWithAccessCookie verifies a request carrying the
access cookie passes the guard and reaches the handler.
*/
func TestHandler_ProtectedRouteWithAccessCookie(t *testing.T) {
	router, _, _ := newAccountRouter(t)

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.AddCookie(&http.Cookie{Name: constants.AccessTokenCookieName, Value: "present"})
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), account.MsgUserFound)
}
