// Copyright (c) 2026 Amar Infâncias. All rights reserved.
// Author: dev@amarinfancias.com.br

package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/amarinfancias/amar-api/internal/platform/apperr"
	"github.com/amarinfancias/amar-api/internal/platform/constants"
	"github.com/amarinfancias/amar-api/internal/platform/ctxutil"
	"github.com/amarinfancias/amar-api/internal/platform/respond"
)

// # Login Throttling
//
// The global token-bucket limiter in this package lives in process memory,
// which is fine for broad abuse protection but wrong for login: attempt
// counting must survive restarts and be shared by every instance, because a
// credential-stuffing run will happily spread across replicas. Login
// throttling therefore counts in Redis with a fixed one-minute window.

// Counter bumps a named counter within a fixed expiry window and returns the
// new value. The first bump of a window sets the expiry.
type Counter interface {
	Bump(ctx context.Context, key string, window time.Duration) (int64, error)
}

// RedisCounter implements [Counter] on a Redis client using INCR + EXPIRE.
type RedisCounter struct {
	client *redis.Client
}

// NewRedisCounter wraps a connected Redis client.
func NewRedisCounter(client *redis.Client) *RedisCounter {
	return &RedisCounter{client: client}
}

// Bump increments the counter and arms the window expiry on first increment.
func (counter *RedisCounter) Bump(ctx context.Context, key string, window time.Duration) (int64, error) {
	value, err := counter.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}

	// Only the increment that created the key sets the TTL, so the window is
	// fixed from the first attempt rather than sliding.
	if value == 1 {
		if err := counter.client.Expire(ctx, key, window).Err(); err != nil {
			return value, err
		}
	}

	return value, nil
}

// LoginThrottle caps login attempts per client IP at
// [constants.LoginAttemptLimit] per [constants.LoginAttemptWindow].
//
// Counting errors fail open: a Redis outage must not lock every user out of
// the login form. The incident is logged and the attempt proceeds.
func LoginThrottle(counter Counter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			clientIP := RealIP(request)
			key := constants.RedisPrefixLoginAttempts + clientIP

			attempts, err := counter.Bump(request.Context(), key, constants.LoginAttemptWindow)
			if err != nil {
				logger := ctxutil.GetLogger(request.Context())
				logger.ErrorContext(request.Context(), "login_throttle_unavailable",
					slog.Any("error", err),
				)
				next.ServeHTTP(writer, request)
				return
			}

			if attempts > constants.LoginAttemptLimit {
				respond.Error(writer, request, apperr.RateLimited(int(constants.LoginAttemptWindow.Seconds())))
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}
