// Copyright (c) 2026 Amar Infâncias. All rights reserved.
// Author: dev@amarinfancias.com.br

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/amarinfancias/amar-api/internal/platform/apperr"
)

var (
	// ErrNotFound is a standard error returned when a queried row doesn't exist.
	ErrNotFound = apperr.NotFound("Nenhum registro foi encontrado.")

	// ErrDuplicate is returned on unique-constraint violations (SQLSTATE 23505).
	ErrDuplicate = apperr.Conflict("Registro duplicado: o valor informado já está cadastrado no sistema.")

	// ErrBadReference is returned on foreign-key violations (SQLSTATE 23503),
	// e.g. attaching an extra service to a contract that does not exist.
	ErrBadReference = apperr.BadRequest("Referência inválida: confira as ids informadas na requisição.")
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}

	// 1. Not Found mapping
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	// 2. Constraint violations carry a SQLSTATE worth classifying
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return ErrDuplicate
		case pgerrcode.ForeignKeyViolation:
			return ErrBadReference
		}
	}

	// 3. Everything else becomes an Internal Server Error with the module's
	// client-safe message and a support code.
	return apperr.Internal(message, err)
}
