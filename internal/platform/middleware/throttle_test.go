// Copyright (c) 2026 Amar Infâncias. All rights reserved.
// Author: dev@amarinfancias.com.br

package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amarinfancias/amar-api/internal/platform/constants"
	"github.com/amarinfancias/amar-api/internal/platform/middleware"
)

// fakeCounter counts in memory, keyed exactly like the Redis implementation.
type fakeCounter struct {
	counts map[string]int64
	err    error
	window time.Duration
}

func (counter *fakeCounter) Bump(_ context.Context, key string, window time.Duration) (int64, error) {
	if counter.err != nil {
		return 0, counter.err
	}
	if counter.counts == nil {
		counter.counts = map[string]int64{}
	}
	counter.counts[key]++
	counter.window = window
	return counter.counts[key], nil
}

func throttledRequest(t *testing.T, handler http.Handler, remoteAddr string) *httptest.ResponseRecorder {
	t.Helper()
	request := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
	request.RemoteAddr = remoteAddr
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder
}

/*
TestLoginThrottle_Limit verifies the attempt cap: the first three attempts in
a window pass, the fourth is rejected with 429.
*/
func TestLoginThrottle_Limit(t *testing.T) {
	counter := &fakeCounter{}
	handler := middleware.LoginThrottle(counter)(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusOK)
	}))

	for attempt := 1; attempt <= constants.LoginAttemptLimit; attempt++ {
		recorder := throttledRequest(t, handler, "10.0.0.1:40000")
		assert.Equal(t, http.StatusOK, recorder.Code, "attempt %d should pass", attempt)
	}

	recorder := throttledRequest(t, handler, "10.0.0.1:40000")
	assert.Equal(t, http.StatusTooManyRequests, recorder.Code)
	assert.Equal(t, constants.LoginAttemptWindow, counter.window)
}

/*
TestLoginThrottle_PerIP verifies attempts are counted per client IP: one
address being blocked must not affect another.
*/
func TestLoginThrottle_PerIP(t *testing.T) {
	counter := &fakeCounter{}
	handler := middleware.LoginThrottle(counter)(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusOK)
	}))

	for attempt := 0; attempt <= constants.LoginAttemptLimit; attempt++ {
		throttledRequest(t, handler, "10.0.0.1:40000")
	}

	blocked := throttledRequest(t, handler, "10.0.0.1:40000")
	require.Equal(t, http.StatusTooManyRequests, blocked.Code)

	other := throttledRequest(t, handler, "10.0.0.2:40000")
	assert.Equal(t, http.StatusOK, other.Code)
}

/*
TestLoginThrottle_FailsOpen verifies a counting outage lets the attempt
proceed: Redis being down must not lock every user out of the login form.
*/
func TestLoginThrottle_FailsOpen(t *testing.T) {
	counter := &fakeCounter{err: assert.AnError}
	handler := middleware.LoginThrottle(counter)(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusOK)
	}))

	recorder := throttledRequest(t, handler, "10.0.0.1:40000")
	assert.Equal(t, http.StatusOK, recorder.Code)
}
