// Copyright (c) 2026 Amar Infâncias. All rights reserved.
// Author: dev@amarinfancias.com.br

package sec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amarinfancias/amar-api/internal/platform/sec"
)

/*
TestHashPassword_RoundTrip verifies a hashed password matches its plaintext
and nothing else.
*/
func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := sec.HashPassword("Senha@2026", 4)
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.True(t, sec.CheckPasswordHash("Senha@2026", hash))
	assert.False(t, sec.CheckPasswordHash("senha@2026", hash))
	assert.False(t, sec.CheckPasswordHash("", hash))
}

/*
TestHashPassword_CostFallback verifies out-of-range costs fall back to the
bcrypt default instead of failing.
*/
func TestHashPassword_CostFallback(t *testing.T) {
	hash, err := sec.HashPassword("Senha@2026", 99)
	require.NoError(t, err)
	assert.True(t, sec.CheckPasswordHash("Senha@2026", hash))
}

/*
TestCheckPasswordHash_InvalidHash verifies a malformed stored hash never
matches.
*/
func TestCheckPasswordHash_InvalidHash(t *testing.T) {
	assert.False(t, sec.CheckPasswordHash("Senha@2026", "not-a-bcrypt-hash"))
}
