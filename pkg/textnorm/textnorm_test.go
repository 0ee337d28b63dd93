// Copyright (c) 2026 Amar Infâncias. All rights reserved.
// Author: dev@amarinfancias.com.br

package textnorm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amarinfancias/amar-api/pkg/textnorm"
)

/*
TestFold verifies accent removal, lowercasing, and whitespace collapsing.
*/
func TestFold(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"accented_city", "São Paulo", "sao paulo"},
		{"uppercase_accented", "SÃO PAULO", "sao paulo"},
		{"package_name", "CÉU", "ceu"},
		{"extra_whitespace", "  Belo   Horizonte ", "belo horizonte"},
		{"already_folded", "campinas", "campinas"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, textnorm.Fold(tt.input))
		})
	}
}

/*
TestEqual verifies accent- and case-insensitive comparison.
*/
func TestEqual(t *testing.T) {
	assert.True(t, textnorm.Equal("ceu", "CÉU"))
	assert.True(t, textnorm.Equal("São Paulo", "sao paulo"))
	assert.True(t, textnorm.Equal("CARTÃO", "cartao"))
	assert.False(t, textnorm.Equal("sol", "lua"))
	assert.False(t, textnorm.Equal("sao paulo", "sao paulo sp"))
}
