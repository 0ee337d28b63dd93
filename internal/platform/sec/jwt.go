// Copyright (c) 2026 Amar Infâncias. All rights reserved.
// Author: dev@amarinfancias.com.br

// Package sec provides cryptographic primitives and token management.
//
// # Architecture
//
// This package isolates security-sensitive code (Hashing, JWT Signing) from
// the domain logic. It is injected into the application layer through narrow
// interfaces so that services and middleware never touch key material.
package sec

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrTokenInvalid wraps every verification failure: bad signature, expiry,
// malformed payload, or wrong claim shape. Callers surface it as an internal
// error, never as an authentication hint to the client.
var ErrTokenInvalid = errors.New("sec: invalid token")

// AccessClaims is the payload of a short-lived access token.
//
// # Why a dedicated struct?
//
// Access and refresh tokens carry different payloads. Decoding each into its
// own typed struct (instead of a shared map) lets verification reject a
// refresh token presented where an access token is expected, and vice versa.
type AccessClaims struct {
	jwt.RegisteredClaims

	Name  string `json:"name"`
	Email string `json:"email"`
}

// RefreshClaims is the payload of a long-lived refresh token. Unlike
// [AccessClaims] it includes the user id, because the renewal path must load
// the session credential for the exact account that logged in.
type RefreshClaims struct {
	jwt.RegisteredClaims

	UserID string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// TokenService signs and verifies session tokens using HS256 with a single
// process-wide secret.
type TokenService struct {
	secret []byte
	issuer string
}

// NewTokenService creates a TokenService from the shared signing secret.
//
// An empty secret is rejected here, at startup, rather than on the first
// login: tokens signed with a missing secret would be unverifiable by every
// other instance.
func NewTokenService(secret, issuer string) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("sec: signing secret must not be empty")
	}
	return &TokenService{
		secret: []byte(secret),
		issuer: issuer,
	}, nil
}

// IssueAccessToken signs a new access token carrying {name, email}.
func (service *TokenService) IssueAccessToken(name, email string, timeToLive time.Duration) (string, error) {
	claims := AccessClaims{
		RegisteredClaims: service.registered(timeToLive),
		Name:             name,
		Email:            email,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(service.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign access token: %w", err)
	}
	return signed, nil
}

// IssueRefreshToken signs a new refresh token carrying {id, name, email}.
func (service *TokenService) IssueRefreshToken(userID, name, email string, timeToLive time.Duration) (string, error) {
	claims := RefreshClaims{
		RegisteredClaims: service.registered(timeToLive),
		UserID:           userID,
		Name:             name,
		Email:            email,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(service.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign refresh token: %w", err)
	}
	return signed, nil
}

// VerifyAccessToken checks signature and expiry and decodes the access payload.
func (service *TokenService) VerifyAccessToken(tokenString string) (*AccessClaims, error) {
	claims := &AccessClaims{}
	if err := service.verify(tokenString, claims); err != nil {
		return nil, err
	}

	if claims.Email == "" {
		return nil, fmt.Errorf("%w: missing access claims", ErrTokenInvalid)
	}
	return claims, nil
}

// VerifyRefreshToken checks signature and expiry and decodes the refresh payload.
//
// A structurally valid token without a user id (i.e. an access token) is
// rejected: it cannot drive a session renewal.
func (service *TokenService) VerifyRefreshToken(tokenString string) (*RefreshClaims, error) {
	claims := &RefreshClaims{}
	if err := service.verify(tokenString, claims); err != nil {
		return nil, err
	}

	if claims.UserID == "" || claims.Email == "" {
		return nil, fmt.Errorf("%w: missing refresh claims", ErrTokenInvalid)
	}
	return claims, nil
}

// registered builds the shared registered-claims block (issuer, iat, exp).
func (service *TokenService) registered(timeToLive time.Duration) jwt.RegisteredClaims {
	now := time.Now()
	return jwt.RegisteredClaims{
		Issuer:    service.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(timeToLive)),
	}
}

// verify parses a token into the provided claims struct, enforcing HMAC.
func (service *TokenService) verify(tokenString string, claims jwt.Claims) error {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
		}
		return service.secret, nil
	}, jwt.WithIssuer(service.issuer))

	if err != nil {
		return fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}
	if !token.Valid {
		return ErrTokenInvalid
	}
	return nil
}
