// Copyright (c) 2026 Amar Infâncias. All rights reserved.
// Author: dev@amarinfancias.com.br

// Package textnorm folds arbitrary Unicode strings into a canonical ASCII
// lowercase form.
//
// # Usage
//
// Client city names arrive free-typed from the admin frontend ("São Paulo",
// "sao paulo", "SÃO PAULO"). Reports group by city, so grouping keys are
// folded through this package to keep the accent and casing variants in one
// bucket.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold converts a Unicode string into its accent-free lowercase form with
// collapsed whitespace.
//
// # Transformation Pipeline
//
// 1. Normalizes to NFD (decomposes accented chars: é → e + combining acute).
// 2. Removes combining marks (accents).
// 3. Converts to lowercase.
// 4. Collapses internal whitespace runs and trims the ends.
func Fold(s string) string {
	// 1. Normalize and remove accents
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn))
	result, _, _ := transform.String(t, s)

	// 2. Lowercase
	result = strings.ToLower(result)

	// 3. Collapse whitespace
	return strings.Join(strings.Fields(result), " ")
}

// Equal reports whether two strings fold to the same canonical form.
func Equal(a, b string) bool {
	return Fold(a) == Fold(b)
}

// isMn reports whether r is a Unicode non-spacing mark (e.g., accents).
func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
