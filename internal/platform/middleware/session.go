// Copyright (c) 2026 Amar Infâncias. All rights reserved.
// Author: dev@amarinfancias.com.br

package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/amarinfancias/amar-api/internal/platform/apperr"
	"github.com/amarinfancias/amar-api/internal/platform/constants"
	"github.com/amarinfancias/amar-api/internal/platform/ctxutil"
	requestutil "github.com/amarinfancias/amar-api/internal/platform/request"
	"github.com/amarinfancias/amar-api/internal/platform/respond"
	"github.com/amarinfancias/amar-api/internal/platform/sec"
)

// # Session Guard

// SessionCredential is the slice of an account the guard needs to decide a
// renewal: identity for the new access token, plus the stored refresh token
// and its expiry for comparison against the presented cookie.
type SessionCredential struct {
	UserID                string
	Name                  string
	Email                 string
	RefreshToken          *string
	RefreshTokenExpiresAt *time.Time
}

// SessionReader loads session credentials for the guard.
//
// # Why an interface?
//
// Defining SessionReader here decouples the middleware from the `auth` store
// implementation, allowing us to easily inject mocks during unit testing.
type SessionReader interface {
	SessionByEmail(ctx context.Context, email string) (*SessionCredential, error)
}

// SessionTokens is the token surface the guard needs: verify the presented
// refresh token and mint a replacement access token.
type SessionTokens interface {
	VerifyRefreshToken(tokenString string) (*sec.RefreshClaims, error)
	IssueAccessToken(name, email string, timeToLive time.Duration) (string, error)
}

// SessionGuard protects a route subtree with the cookie-based session scheme.
//
// # Flow
//
//  1. An accessToken cookie, if present, admits the request immediately. The
//     token value is NOT verified here: the cookie is httpOnly and its MaxAge
//     matches the token lifetime, so presence implies the browser considers
//     it unexpired. The trade-off is that admission costs zero store reads.
//  2. With no access cookie, the refreshToken cookie drives a renewal: the
//     token is verified, the account is loaded, and the presented token must
//     byte-match the stored one and be within its stored expiry. A single
//     stored token per account means a later login invalidates this one.
//  3. A successful renewal mints a fresh access cookie on the response and
//     the request proceeds. The refresh cookie itself is never rotated here;
//     only login replaces it.
//  4. Rejections carry step-specific pt-BR copy: a missing refresh cookie
//     asks the user to log in again, an unknown account reads as invalid
//     credentials, and a token that no longer matches (or has expired in
//     the store) reads as lacking authorization. All three are 403s.
//
// A refresh token that fails cryptographic verification reports as 500, not
// 403. Malformed tokens do not reach this branch (the cookie jar only holds
// what login set), so a signature failure means key mismatch across
// instances, which is an operational fault rather than a client one.
func SessionGuard(tokens SessionTokens, sessions SessionReader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			// ── 1. Fast Path ──────────────────────────────────────────────────
			if accessToken := requestutil.Cookie(request, constants.AccessTokenCookieName); accessToken != "" {
				next.ServeHTTP(writer, request)
				return
			}

			// ── 2. Renewal Eligibility ────────────────────────────────────────
			refreshToken := requestutil.Cookie(request, constants.RefreshTokenCookieName)
			if refreshToken == "" {
				respond.Error(writer, request, apperr.Forbidden(constants.MsgSessionInvalid))
				return
			}

			// ── 3. Token Verification ─────────────────────────────────────────
			claims, err := tokens.VerifyRefreshToken(refreshToken)
			if err != nil {
				respond.Error(writer, request, apperr.Internal(constants.MsgVerifyFailure, err))
				return
			}

			// ── 4. Credential Lookup ──────────────────────────────────────────
			// Only a missing account row is a credential problem; any other
			// lookup failure is an infrastructure fault and surfaces as 500.
			credential, err := sessions.SessionByEmail(request.Context(), claims.Email)
			if err != nil {
				if ae := apperr.As(err); ae != nil && ae.HTTPStatus == http.StatusNotFound {
					respond.Error(writer, request, apperr.Forbidden(constants.MsgCredentialsInvalid))
					return
				}
				respond.Error(writer, request, err)
				return
			}

			// ── 5. Stored-Token Match ─────────────────────────────────────────
			// A logout clears the stored token; a newer login overwrites it.
			// Either way the presented cookie no longer matches and the
			// session is dead.
			if credential.RefreshToken == nil || *credential.RefreshToken != refreshToken {
				respond.Error(writer, request, apperr.Forbidden(constants.MsgGuardFailure))
				return
			}

			// ── 6. Stored-Expiry Check ────────────────────────────────────────
			if credential.RefreshTokenExpiresAt == nil || !credential.RefreshTokenExpiresAt.After(time.Now()) {
				respond.Error(writer, request, apperr.Forbidden(constants.MsgGuardFailure))
				return
			}

			// ── 7. Access Renewal ─────────────────────────────────────────────
			accessToken, err := tokens.IssueAccessToken(credential.Name, credential.Email, constants.AccessTokenTTL)
			if err != nil {
				respond.Error(writer, request, apperr.Internal(constants.MsgVerifyFailure, err))
				return
			}

			SetSessionCookie(writer, constants.AccessTokenCookieName, accessToken, constants.AccessTokenTTL)

			// ── 8. Context Injection ──────────────────────────────────────────
			renewed := &sec.AccessClaims{Name: credential.Name, Email: credential.Email}
			ctx := ctxutil.WithAuthUser(request.Context(), renewed)

			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// # Pre-Login Gate

// RequireAnonymous short-circuits login for browsers that already hold an
// access cookie. The response is a 200 with the login success message, so a
// frontend that replays a login after a redirect sees the same shape as a
// fresh login instead of an error.
func RequireAnonymous(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if accessToken := requestutil.Cookie(request, constants.AccessTokenCookieName); accessToken != "" {
			respond.OK(writer, constants.MsgLoginSuccess, nil)
			return
		}
		next.ServeHTTP(writer, request)
	})
}

// # Cookie Helpers

// SetSessionCookie writes an httpOnly, SameSite=Strict session cookie whose
// MaxAge matches the token lifetime.
func SetSessionCookie(writer http.ResponseWriter, name, value string, timeToLive time.Duration) {
	http.SetCookie(writer, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     constants.SessionCookiePath,
		MaxAge:   int(timeToLive.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}

// ClearSessionCookie expires a session cookie immediately.
func ClearSessionCookie(writer http.ResponseWriter, name string) {
	http.SetCookie(writer, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     constants.SessionCookiePath,
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}
