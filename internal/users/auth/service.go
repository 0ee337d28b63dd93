// Copyright (c) 2026 Amar Infâncias. All rights reserved.
// Author: dev@amarinfancias.com.br

package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/amarinfancias/amar-api/internal/platform/apperr"
	"github.com/amarinfancias/amar-api/internal/platform/constants"
	"github.com/amarinfancias/amar-api/internal/platform/sec"
)

// # Contracts & Types

// TokenIssuer defines the token surface the session lifecycle needs.
//
// Satisfied by [*sec.TokenService]; kept as an interface so tests can inject
// a failing implementation.
type TokenIssuer interface {
	IssueAccessToken(name, email string, timeToLive time.Duration) (string, error)
	IssueRefreshToken(userID, name, email string, timeToLive time.Duration) (string, error)
	VerifyAccessToken(tokenString string) (*sec.AccessClaims, error)
	VerifyRefreshToken(tokenString string) (*sec.RefreshClaims, error)
}

// Service implements the session lifecycle use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to credential checking
// or token persistence must be reviewed before merging.
type Service struct {
	store  Store
	tokens TokenIssuer
}

// NewService constructs the auth [Service] with its dependencies.
func NewService(store Store, tokens TokenIssuer) *Service {
	return &Service{store: store, tokens: tokens}
}

// # Authentication Flow

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Email    string
	Password string
}

// LoginSession represents a successfully established session.
type LoginSession struct {
	AccessToken           string
	RefreshToken          string
	RefreshTokenExpiresAt time.Time
	User                  *User
}

/*
Login validates credentials and establishes the account's single session.

Description: Verifies identity with a constant-time bcrypt comparison, issues
the access/refresh token pair, and overwrites the stored refresh token on the
account row.

Parameters:
  - context: context.Context
  - input: LoginInput

Returns:
  - *LoginSession: Transport-ready session tokens
  - err: BadRequest (identical for unknown email and wrong password) or
    internal failures

# Ordering

Tokens are minted BEFORE persistence: if the session write fails, the whole
login fails and the minted pair is discarded, never reaching the client. A
concurrent login for the same account is resolved by last write wins.
*/
func (service *Service) Login(context context.Context, input LoginInput) (*LoginSession, error) {

	// Lookup by exact email. The store already collapses "not found" into the
	// generic credentials error.
	user, err := service.store.FindByEmail(context, input.Email)
	if err != nil {
		return nil, err
	}

	// Constant-time comparison in bcrypt to prevent timing attacks. Same
	// message as the lookup failure to prevent email enumeration.
	if !sec.CheckPasswordHash(input.Password, user.PasswordHash) {
		return nil, apperr.BadRequest(constants.MsgLoginInvalid)
	}

	// Short-lived access token carries name and email only.
	accessToken, err := service.tokens.IssueAccessToken(user.Name, user.Email, constants.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("auth_service_access_token_failed: %w", err)
	}

	// Long-lived refresh token additionally carries the account id.
	refreshToken, err := service.tokens.IssueRefreshToken(user.ID, user.Name, user.Email, constants.RefreshTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("auth_service_refresh_token_failed: %w", err)
	}

	// Persist the refresh token with its server-side expiry. Overwrites any
	// previous session for this account.
	expiresAt := time.Now().Add(constants.RefreshTokenTTL)
	if err := service.store.SaveSession(context, user.ID, refreshToken, expiresAt); err != nil {
		return nil, fmt.Errorf("auth_service_save_session_failed: %w", err)
	}

	return &LoginSession{
		AccessToken:           accessToken,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresAt: expiresAt,
		User:                  user,
	}, nil
}

/*
Logout invalidates the account's stored session.

Description: Verifies the presented access token to recover the account's
email, then nulls the stored refresh token so the session guard can never
renew this session again.

Parameters:
  - context: context.Context
  - accessToken: the value of the accessToken cookie

Returns:
  - err: Internal (500) when token verification fails, or storage failures

A verification failure here is a 500 rather than a 401: the cookie is
httpOnly and was set by this API, so an unverifiable value means a signing
key problem, not client misuse.
*/
func (service *Service) Logout(context context.Context, accessToken string) error {

	claims, err := service.tokens.VerifyAccessToken(accessToken)
	if err != nil {
		return apperr.Internal(constants.MsgVerifyFailure, err)
	}

	if err := service.store.ClearSession(context, claims.Email); err != nil {
		return fmt.Errorf("auth_service_logout_failed: %w", err)
	}

	return nil
}

// # Password Reset Landing

/*
VerifyResetToken validates a password-reset token from an emailed link.

Description: Reset tokens are minted by the account module with the same
claim shape as refresh tokens ({id, name, email}) and a 15 minute lifetime,
so verification reuses the refresh-token path.

Parameters:
  - tokenString: the resetToken query parameter

Returns:
  - *sec.RefreshClaims: The identity embedded in the link
  - err: Internal (500) when verification fails
*/
func (service *Service) VerifyResetToken(tokenString string) (*sec.RefreshClaims, error) {
	claims, err := service.tokens.VerifyRefreshToken(tokenString)
	if err != nil {
		return nil, apperr.Internal(constants.MsgVerifyFailure, err)
	}
	return claims, nil
}
