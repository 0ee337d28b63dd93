// Copyright (c) 2026 Amar Infâncias. All rights reserved.
// Author: dev@amarinfancias.com.br

package sec_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amarinfancias/amar-api/internal/platform/sec"
)

const (
	testSecret = "unit-test-secret"
	testIssuer = "Amar API"
)

func newTokenService(t *testing.T) *sec.TokenService {
	t.Helper()
	service, err := sec.NewTokenService(testSecret, testIssuer)
	require.NoError(t, err)
	return service
}

/*
TestNewTokenService_EmptySecret verifies the constructor rejects a missing
signing secret at startup.
*/
func TestNewTokenService_EmptySecret(t *testing.T) {
	service, err := sec.NewTokenService("", testIssuer)

	assert.Nil(t, service)
	assert.Error(t, err)
}

/*
TestTokenService_AccessRoundTrip issues an access token and verifies it
decodes back into the same identity.
*/
func TestTokenService_AccessRoundTrip(t *testing.T) {
	service := newTokenService(t)

	token, err := service.IssueAccessToken("Ana", "ana@amarinfancias.com.br", 15*time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.VerifyAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "Ana", claims.Name)
	assert.Equal(t, "ana@amarinfancias.com.br", claims.Email)
	assert.Equal(t, testIssuer, claims.Issuer)
}

/*
TestTokenService_RefreshRoundTrip issues a refresh token and verifies it
carries the account id alongside the identity.
*/
func TestTokenService_RefreshRoundTrip(t *testing.T) {
	service := newTokenService(t)

	token, err := service.IssueRefreshToken("user-1", "Ana", "ana@amarinfancias.com.br", 30*24*time.Hour)
	require.NoError(t, err)

	claims, err := service.VerifyRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "Ana", claims.Name)
	assert.Equal(t, "ana@amarinfancias.com.br", claims.Email)
}

/*
TestTokenService_Verify_Failures covers the rejection paths of verification.
*/
func TestTokenService_Verify_Failures(t *testing.T) {
	service := newTokenService(t)

	t.Run("expired_token", func(t *testing.T) {
		token, err := service.IssueAccessToken("Ana", "ana@amarinfancias.com.br", -1*time.Minute)
		require.NoError(t, err)

		_, err = service.VerifyAccessToken(token)
		assert.ErrorIs(t, err, sec.ErrTokenInvalid)
	})

	t.Run("wrong_secret", func(t *testing.T) {
		other, err := sec.NewTokenService("another-secret", testIssuer)
		require.NoError(t, err)

		token, err := other.IssueAccessToken("Ana", "ana@amarinfancias.com.br", 15*time.Minute)
		require.NoError(t, err)

		_, err = service.VerifyAccessToken(token)
		assert.ErrorIs(t, err, sec.ErrTokenInvalid)
	})

	t.Run("wrong_issuer", func(t *testing.T) {
		other, err := sec.NewTokenService(testSecret, "Someone Else")
		require.NoError(t, err)

		token, err := other.IssueAccessToken("Ana", "ana@amarinfancias.com.br", 15*time.Minute)
		require.NoError(t, err)

		_, err = service.VerifyAccessToken(token)
		assert.ErrorIs(t, err, sec.ErrTokenInvalid)
	})

	t.Run("garbage_string", func(t *testing.T) {
		_, err := service.VerifyRefreshToken("not.a.token")
		assert.ErrorIs(t, err, sec.ErrTokenInvalid)
	})
}

/*
TestTokenService_RefreshRejectsAccessToken verifies an access token cannot
drive a session renewal: its payload has no user id.
*/
func TestTokenService_RefreshRejectsAccessToken(t *testing.T) {
	service := newTokenService(t)

	accessToken, err := service.IssueAccessToken("Ana", "ana@amarinfancias.com.br", 15*time.Minute)
	require.NoError(t, err)

	_, err = service.VerifyRefreshToken(accessToken)
	assert.ErrorIs(t, err, sec.ErrTokenInvalid)
}
