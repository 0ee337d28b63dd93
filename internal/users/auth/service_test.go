// Copyright (c) 2026 Amar Infâncias. All rights reserved.
// Author: dev@amarinfancias.com.br

package auth_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amarinfancias/amar-api/internal/platform/apperr"
	"github.com/amarinfancias/amar-api/internal/platform/constants"
	"github.com/amarinfancias/amar-api/internal/platform/sec"
	"github.com/amarinfancias/amar-api/internal/users/auth"
)

// fakeStore holds a single account in memory and records session writes.
type fakeStore struct {
	user *auth.User

	savedUserID       string
	savedRefreshToken string
	savedExpiresAt    time.Time
	saveErr           error

	clearedEmail string
	clearErr     error
}

func (store *fakeStore) FindByEmail(_ context.Context, email string) (*auth.User, error) {
	if store.user == nil || store.user.Email != email {
		// The store collapses "not found" into the generic credentials error.
		return nil, apperr.BadRequest(constants.MsgLoginInvalid)
	}
	return store.user, nil
}

func (store *fakeStore) SaveSession(_ context.Context, userID, refreshToken string, expiresAt time.Time) error {
	if store.saveErr != nil {
		return store.saveErr
	}
	store.savedUserID = userID
	store.savedRefreshToken = refreshToken
	store.savedExpiresAt = expiresAt
	return nil
}

func (store *fakeStore) ClearSession(_ context.Context, email string) error {
	if store.clearErr != nil {
		return store.clearErr
	}
	store.clearedEmail = email
	return nil
}

func newAuthFixture(t *testing.T, password string) (*auth.Service, *fakeStore, *sec.TokenService) {
	t.Helper()

	hash, err := sec.HashPassword(password, 4)
	require.NoError(t, err)

	store := &fakeStore{user: &auth.User{
		ID:           "user-1",
		Name:         "Ana",
		Email:        "ana@amarinfancias.com.br",
		PasswordHash: hash,
	}}

	tokens, err := sec.NewTokenService("auth-test-secret", constants.AuthIssuer)
	require.NoError(t, err)

	return auth.NewService(store, tokens), store, tokens
}

/*
TestService_Login_Success verifies a successful login mints both tokens and
persists the refresh token with its server-side expiry.
*/
func TestService_Login_Success(t *testing.T) {
	service, store, tokens := newAuthFixture(t, "Senha@2026")

	session, err := service.Login(context.Background(), auth.LoginInput{
		Email:    "ana@amarinfancias.com.br",
		Password: "Senha@2026",
	})

	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "Ana", session.User.Name)

	// Both tokens verify against the issuing service.
	accessClaims, err := tokens.VerifyAccessToken(session.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "ana@amarinfancias.com.br", accessClaims.Email)

	refreshClaims, err := tokens.VerifyRefreshToken(session.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", refreshClaims.UserID)

	// The stored session matches the issued refresh token.
	assert.Equal(t, "user-1", store.savedUserID)
	assert.Equal(t, session.RefreshToken, store.savedRefreshToken)
	assert.Equal(t, session.RefreshTokenExpiresAt, store.savedExpiresAt)
	assert.WithinDuration(t, time.Now().Add(constants.RefreshTokenTTL), store.savedExpiresAt, time.Minute)
}

/*
TestService_Login_IndistinguishableFailures verifies that an unknown email
and a wrong password produce the exact same 400 response, so the login form
cannot be used to enumerate registered emails.
*/
func TestService_Login_IndistinguishableFailures(t *testing.T) {
	service, _, _ := newAuthFixture(t, "Senha@2026")

	unknownEmail, err1 := service.Login(context.Background(), auth.LoginInput{
		Email:    "nobody@amarinfancias.com.br",
		Password: "Senha@2026",
	})
	wrongPassword, err2 := service.Login(context.Background(), auth.LoginInput{
		Email:    "ana@amarinfancias.com.br",
		Password: "senha-errada",
	})

	assert.Nil(t, unknownEmail)
	assert.Nil(t, wrongPassword)

	ae1 := apperr.As(err1)
	ae2 := apperr.As(err2)
	require.NotNil(t, ae1)
	require.NotNil(t, ae2)

	assert.Equal(t, http.StatusBadRequest, ae1.HTTPStatus)
	assert.Equal(t, ae1.HTTPStatus, ae2.HTTPStatus)
	assert.Equal(t, ae1.Message, ae2.Message)
	assert.Equal(t, constants.MsgLoginInvalid, ae1.Message)
}

/*
TestService_Login_PersistenceFailure verifies that a failed session write
fails the whole login: the minted pair never reaches the client.
*/
func TestService_Login_PersistenceFailure(t *testing.T) {
	service, store, _ := newAuthFixture(t, "Senha@2026")
	store.saveErr = assert.AnError

	session, err := service.Login(context.Background(), auth.LoginInput{
		Email:    "ana@amarinfancias.com.br",
		Password: "Senha@2026",
	})

	assert.Nil(t, session)
	assert.Error(t, err)
	assert.Empty(t, store.savedRefreshToken)
}

/*
TestService_Login_LastWriteWins verifies a second login overwrites the stored
refresh token: the account holds exactly one live session, and the earlier
token can no longer match the stored value.
*/
func TestService_Login_LastWriteWins(t *testing.T) {
	service, store, _ := newAuthFixture(t, "Senha@2026")

	input := auth.LoginInput{Email: "ana@amarinfancias.com.br", Password: "Senha@2026"}

	_, err := service.Login(context.Background(), input)
	require.NoError(t, err)
	firstStored := store.savedRefreshToken

	second, err := service.Login(context.Background(), input)
	require.NoError(t, err)

	// Exactly one stored token: the most recent login's.
	assert.Equal(t, second.RefreshToken, store.savedRefreshToken)
	assert.NotEmpty(t, firstStored)
}

/*
TestService_Logout verifies logout recovers the account from the access token
and clears its stored session.
*/
func TestService_Logout(t *testing.T) {
	service, store, tokens := newAuthFixture(t, "Senha@2026")

	accessToken, err := tokens.IssueAccessToken("Ana", "ana@amarinfancias.com.br", constants.AccessTokenTTL)
	require.NoError(t, err)

	require.NoError(t, service.Logout(context.Background(), accessToken))
	assert.Equal(t, "ana@amarinfancias.com.br", store.clearedEmail)
}

/*
TestService_Logout_UnverifiableToken verifies an unverifiable access token
reports as 500: the cookie was set by this API, so failure means a signing
key problem rather than client misuse.
*/
func TestService_Logout_UnverifiableToken(t *testing.T) {
	service, store, _ := newAuthFixture(t, "Senha@2026")

	err := service.Logout(context.Background(), "not-a-token")

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusInternalServerError, ae.HTTPStatus)
	assert.Equal(t, constants.MsgVerifyFailure, ae.Message)
	assert.NotEmpty(t, ae.SupportCode)
	assert.Empty(t, store.clearedEmail)
}

/*
TestService_VerifyResetToken verifies the reset landing accepts a token with
the refresh claim shape and rejects everything else with 500.
*/
func TestService_VerifyResetToken(t *testing.T) {
	service, _, tokens := newAuthFixture(t, "Senha@2026")

	resetToken, err := tokens.IssueRefreshToken("user-1", "Ana", "ana@amarinfancias.com.br", constants.ResetTokenTTL)
	require.NoError(t, err)

	claims, err := service.VerifyResetToken(resetToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)

	_, err = service.VerifyResetToken("expired-or-garbage")
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusInternalServerError, ae.HTTPStatus)
}
