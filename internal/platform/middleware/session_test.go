// Copyright (c) 2026 Amar Infâncias. All rights reserved.
// Author: dev@amarinfancias.com.br

package middleware_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amarinfancias/amar-api/internal/platform/apperr"
	"github.com/amarinfancias/amar-api/internal/platform/constants"
	"github.com/amarinfancias/amar-api/internal/platform/middleware"
	"github.com/amarinfancias/amar-api/internal/platform/sec"
)

// fakeSessionReader counts lookups so the fast path can assert zero reads.
type fakeSessionReader struct {
	credential *middleware.SessionCredential
	err        error
	calls      int
}

func (reader *fakeSessionReader) SessionByEmail(_ context.Context, _ string) (*middleware.SessionCredential, error) {
	reader.calls++
	if reader.err != nil {
		return nil, reader.err
	}
	return reader.credential, nil
}

func newGuardFixture(t *testing.T) (*sec.TokenService, *fakeSessionReader) {
	t.Helper()
	tokens, err := sec.NewTokenService("guard-test-secret", constants.AuthIssuer)
	require.NoError(t, err)
	return tokens, &fakeSessionReader{}
}

// guardedRequest runs a request through SessionGuard with a next handler that
// records whether it was reached.
func guardedRequest(tokens middleware.SessionTokens, sessions middleware.SessionReader, cookies ...*http.Cookie) (*httptest.ResponseRecorder, *bool) {
	reached := false
	next := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		reached = true
		writer.WriteHeader(http.StatusOK)
	})

	request := httptest.NewRequest(http.MethodGet, "/api/v1/clients", nil)
	for _, cookie := range cookies {
		request.AddCookie(cookie)
	}

	recorder := httptest.NewRecorder()
	middleware.SessionGuard(tokens, sessions)(next).ServeHTTP(recorder, request)
	return recorder, &reached
}

func errorMessage(t *testing.T, recorder *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body.Error
}

/*
TestSessionGuard_AccessCookieFastPath verifies that the presence of an access
cookie admits the request without verifying it and without touching storage.
*/
func TestSessionGuard_AccessCookieFastPath(t *testing.T) {
	tokens, sessions := newGuardFixture(t)

	// Deliberately not a valid JWT. The fast path trusts cookie presence.
	recorder, reached := guardedRequest(tokens, sessions,
		&http.Cookie{Name: constants.AccessTokenCookieName, Value: "opaque-cookie-value"},
	)

	assert.True(t, *reached)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Zero(t, sessions.calls)
}

/*
TestSessionGuard_NoCookies verifies that a request with neither cookie is
rejected with 403 and the re-login message.
*/
func TestSessionGuard_NoCookies(t *testing.T) {
	tokens, sessions := newGuardFixture(t)

	recorder, reached := guardedRequest(tokens, sessions)

	assert.False(t, *reached)
	assert.Equal(t, http.StatusForbidden, recorder.Code)
	assert.Equal(t, constants.MsgSessionInvalid, errorMessage(t, recorder))
}

/*
TestSessionGuard_VerificationFailure verifies that a refresh token failing
cryptographic verification reports as 500, not 403: the cookie was set by
this API, so an unverifiable value means a key problem on our side.
*/
func TestSessionGuard_VerificationFailure(t *testing.T) {
	tokens, sessions := newGuardFixture(t)

	other, err := sec.NewTokenService("a-different-secret", constants.AuthIssuer)
	require.NoError(t, err)
	foreign, err := other.IssueRefreshToken("user-1", "Ana", "ana@amarinfancias.com.br", time.Hour)
	require.NoError(t, err)

	recorder, reached := guardedRequest(tokens, sessions,
		&http.Cookie{Name: constants.RefreshTokenCookieName, Value: foreign},
	)

	assert.False(t, *reached)
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Equal(t, constants.MsgVerifyFailure, errorMessage(t, recorder))
	assert.Zero(t, sessions.calls)
}

/*
TestSessionGuard_Renewal verifies the full renewal path: a valid refresh
cookie matching the stored session mints a fresh access cookie and lets the
request through; the refresh cookie itself is not rotated.
*/
func TestSessionGuard_Renewal(t *testing.T) {
	tokens, sessions := newGuardFixture(t)

	refreshToken, err := tokens.IssueRefreshToken("user-1", "Ana", "ana@amarinfancias.com.br", time.Hour)
	require.NoError(t, err)

	expiry := time.Now().Add(time.Hour)
	sessions.credential = &middleware.SessionCredential{
		UserID:                "user-1",
		Name:                  "Ana",
		Email:                 "ana@amarinfancias.com.br",
		RefreshToken:          &refreshToken,
		RefreshTokenExpiresAt: &expiry,
	}

	recorder, reached := guardedRequest(tokens, sessions,
		&http.Cookie{Name: constants.RefreshTokenCookieName, Value: refreshToken},
	)

	assert.True(t, *reached)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, 1, sessions.calls)

	var accessCookie *http.Cookie
	for _, cookie := range recorder.Result().Cookies() {
		switch cookie.Name {
		case constants.AccessTokenCookieName:
			accessCookie = cookie
		case constants.RefreshTokenCookieName:
			t.Fatal("renewal must not rotate the refresh cookie")
		}
	}

	require.NotNil(t, accessCookie)
	assert.True(t, accessCookie.HttpOnly)
	assert.Equal(t, int(constants.AccessTokenTTL.Seconds()), accessCookie.MaxAge)

	// The minted cookie must hold a verifiable access token for the account.
	claims, err := tokens.VerifyAccessToken(accessCookie.Value)
	require.NoError(t, err)
	assert.Equal(t, "ana@amarinfancias.com.br", claims.Email)
}

/*
TestSessionGuard_RenewalRejections covers the 403 renewal rejections, each
with its own pt-BR copy: a missing account reads as invalid credentials,
while a stored-token mismatch, a cleared session, or a stale stored expiry
read as lacking authorization.
*/
func TestSessionGuard_RenewalRejections(t *testing.T) {
	tokens, _ := newGuardFixture(t)

	refreshToken, err := tokens.IssueRefreshToken("user-1", "Ana", "ana@amarinfancias.com.br", time.Hour)
	require.NoError(t, err)

	liveExpiry := time.Now().Add(time.Hour)
	staleExpiry := time.Now().Add(-time.Minute)
	otherToken := "a-token-from-a-newer-login"

	tests := []struct {
		name    string
		reader  *fakeSessionReader
		message string
	}{
		{
			name:    "account_missing",
			reader:  &fakeSessionReader{err: apperr.NotFound(constants.MsgUserNotFound)},
			message: constants.MsgCredentialsInvalid,
		},
		{
			name: "stored_token_cleared_by_logout",
			reader: &fakeSessionReader{credential: &middleware.SessionCredential{
				Email: "ana@amarinfancias.com.br", RefreshToken: nil, RefreshTokenExpiresAt: &liveExpiry,
			}},
			message: constants.MsgGuardFailure,
		},
		{
			name: "stored_token_replaced_by_newer_login",
			reader: &fakeSessionReader{credential: &middleware.SessionCredential{
				Email: "ana@amarinfancias.com.br", RefreshToken: &otherToken, RefreshTokenExpiresAt: &liveExpiry,
			}},
			message: constants.MsgGuardFailure,
		},
		{
			name: "stored_expiry_in_the_past",
			reader: &fakeSessionReader{credential: &middleware.SessionCredential{
				Email: "ana@amarinfancias.com.br", RefreshToken: &refreshToken, RefreshTokenExpiresAt: &staleExpiry,
			}},
			message: constants.MsgGuardFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder, reached := guardedRequest(tokens, tt.reader,
				&http.Cookie{Name: constants.RefreshTokenCookieName, Value: refreshToken},
			)

			assert.False(t, *reached)
			assert.Equal(t, http.StatusForbidden, recorder.Code)
			assert.Equal(t, tt.message, errorMessage(t, recorder))
		})
	}
}

/*
TestSessionGuard_LookupInfrastructureFailure verifies that a credential
lookup failing for any reason other than a missing account row surfaces as
500 instead of a credential rejection: the client did nothing wrong.
*/
func TestSessionGuard_LookupInfrastructureFailure(t *testing.T) {
	tokens, _ := newGuardFixture(t)

	refreshToken, err := tokens.IssueRefreshToken("user-1", "Ana", "ana@amarinfancias.com.br", time.Hour)
	require.NoError(t, err)

	sessions := &fakeSessionReader{err: assert.AnError}
	recorder, reached := guardedRequest(tokens, sessions,
		&http.Cookie{Name: constants.RefreshTokenCookieName, Value: refreshToken},
	)

	assert.False(t, *reached)
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Equal(t, 1, sessions.calls)
}

/*
TestRequireAnonymous verifies that a browser already holding an access cookie
gets the login success shape back instead of reaching the login handler.
*/
func TestRequireAnonymous(t *testing.T) {
	reached := false
	next := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		reached = true
	})

	t.Run("with_access_cookie", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
		request.AddCookie(&http.Cookie{Name: constants.AccessTokenCookieName, Value: "present"})
		recorder := httptest.NewRecorder()

		middleware.RequireAnonymous(next).ServeHTTP(recorder, request)

		assert.False(t, reached)
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), constants.MsgLoginSuccess)
	})

	t.Run("without_cookie", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
		recorder := httptest.NewRecorder()

		middleware.RequireAnonymous(next).ServeHTTP(recorder, request)

		assert.True(t, reached)
	})
}

/*
TestSessionCookieHelpers verifies the write/clear cookie attributes.
*/
func TestSessionCookieHelpers(t *testing.T) {
	recorder := httptest.NewRecorder()
	middleware.SetSessionCookie(recorder, constants.AccessTokenCookieName, "value", 15*time.Minute)
	middleware.ClearSessionCookie(recorder, constants.RefreshTokenCookieName)

	cookies := recorder.Result().Cookies()
	require.Len(t, cookies, 2)

	assert.Equal(t, constants.AccessTokenCookieName, cookies[0].Name)
	assert.Equal(t, "value", cookies[0].Value)
	assert.Equal(t, 900, cookies[0].MaxAge)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, cookies[0].SameSite)

	assert.Equal(t, constants.RefreshTokenCookieName, cookies[1].Name)
	assert.Empty(t, cookies[1].Value)
	assert.Equal(t, -1, cookies[1].MaxAge)
}
