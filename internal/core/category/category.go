// Copyright (c) 2026 Amar Infâncias. All rights reserved.
// Author: dev@amarinfancias.com.br

/*
Package category manages the bookkeeping categories used by the financial
records. Expense and revenue categories are identical name-only entities
kept in separate tables; a single implementation serves both, parameterized
by [Kind].
*/
package category

import "time"

// # Client Messages (pt-BR)

const (
	MsgCreated   = "Categoria criada com sucesso."
	MsgFound     = "Categoria encontrada com sucesso."
	MsgListFound = "Lista de categorias encontradas."
	MsgUpdated   = "Categoria atualizada com sucesso."
	MsgDeleted   = "Categoria removida com sucesso."
	MsgNotFound  = "A categoria não foi encontrada."
	MsgListEmpty = "Não foram encontradas categorias"
)

// Kind selects which category table an instance operates on.
type Kind string

const (
	KindExpense Kind = "expense"
	KindRevenue Kind = "revenue"
)

// # Core Entities

// Category represents one bookkeeping category.
type Category struct {
	ID        string    `json:"id"` // UUIDv7
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// # Field Identifiers

const FieldName = "name"
