// Copyright (c) 2026 Amar Infâncias. All rights reserved.
// Author: dev@amarinfancias.com.br

package requestutil_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amarinfancias/amar-api/internal/platform/ctxutil"
	requestutil "github.com/amarinfancias/amar-api/internal/platform/request"
	"github.com/amarinfancias/amar-api/internal/platform/sec"
	"github.com/amarinfancias/amar-api/internal/platform/validate"
)

/*
TestDecodeJSON verifies decoding and that malformed bodies collapse into the
shared invalid-JSON error.
*/
func TestDecodeJSON(t *testing.T) {
	var target struct {
		Email string `json:"email"`
	}

	request := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"ana@amarinfancias.com.br"}`))
	require.NoError(t, requestutil.DecodeJSON(request, &target))
	assert.Equal(t, "ana@amarinfancias.com.br", target.Email)

	request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{not json`))
	assert.ErrorIs(t, requestutil.DecodeJSON(request, &target), validate.ErrInvalidJSON)
}

/*
TestCookie verifies a missing cookie collapses into "".
*/
func TestCookie(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, requestutil.Cookie(request, "accessToken"))

	request.AddCookie(&http.Cookie{Name: "accessToken", Value: "value"})
	assert.Equal(t, "value", requestutil.Cookie(request, "accessToken"))
}

/*
TestClaims verifies the renewal identity is readable from the request and
that the fast path, which decodes none, reads as nil.
*/
func TestClaims(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Nil(t, requestutil.Claims(request))

	claims := &sec.AccessClaims{Name: "Ana", Email: "ana@amarinfancias.com.br"}
	request = request.WithContext(ctxutil.WithAuthUser(request.Context(), claims))

	got := requestutil.Claims(request)
	require.NotNil(t, got)
	assert.Equal(t, "ana@amarinfancias.com.br", got.Email)
}
