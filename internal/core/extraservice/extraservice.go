// Copyright (c) 2026 Amar Infâncias. All rights reserved.
// Author: dev@amarinfancias.com.br

/*
Package extraservice manages the add-on services sold alongside contracts,
such as extra prints or a second photographer. Services are attached to
contracts through the contract package.
*/
package extraservice

import "time"

// # Client Messages (pt-BR)

const (
	MsgCreated   = "Serviço criado com sucesso."
	MsgFound     = "Serviço encontrado com sucesso."
	MsgListFound = "Lista de serviços encontrados."
	MsgUpdated   = "Serviço atualizado com sucesso."
	MsgDeleted   = "Serviço removido com sucesso."
	MsgNotFound  = "Serviço não encontrado."
	MsgListEmpty = "Não há serviços para exibir."
)

// # Core Entities

// ExtraService represents one sellable add-on.
type ExtraService struct {
	ID          string    `json:"id"` // UUIDv7
	Name        string    `json:"name"`
	Price       float64   `json:"price"` // BRL
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// # Field Identifiers

const (
	FieldName        = "name"
	FieldPrice       = "price"
	FieldDescription = "description"
)
