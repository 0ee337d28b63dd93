// Copyright (c) 2026 Amar Infâncias. All rights reserved.
// Author: dev@amarinfancias.com.br

/*
Package client manages the customer records of the studio.

A client is the adult contact who signs contracts and answers for one or more
children. Clients are searchable by city for the regional reports.

# Core Responsibility

  - Registry: Defines the [Client] entity and its contact metadata.
  - Uniqueness: Email, CPF and RG are unique across the whole base.
  - Reporting: Exposes count and group-by-city aggregations.
*/
package client

import "time"

// # Client Messages (pt-BR)

const (
	MsgCreated   = "Cliente criado(a) com sucesso."
	MsgFound     = "Cliente encontrado(a) com sucesso."
	MsgListFound = "Lista de clientes encontrados."
	MsgUpdated   = "Cliente atualizado(a) com sucesso."
	MsgDeleted   = "Cliente removido(a) com sucesso."
	MsgNotFound  = "Cliente não encontrado(a)."
	MsgListEmpty = "Não há clientes para exibir."
	MsgDocTaken  = "CPF e/ou RG já estão cadastrados no sistema."
	MsgEmailUsed = "Este email já foi utilizado."
)

// # Core Entities

// Client represents a customer of the studio.
type Client struct {
	ID          string    `json:"id"` // UUIDv7
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	CPF         *string   `json:"cpf,omitempty"`
	RG          *string   `json:"rg,omitempty"`
	Instagram   *string   `json:"instagram,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CityCount is one bucket of the group-by-city report.
type CityCount struct {
	City  string `json:"city"`
	Count int64  `json:"count"`
}

// # Field Identifiers

const (
	FieldName        = "name"
	FieldEmail       = "email"
	FieldPhoneNumber = "phoneNumber"
	FieldAddress     = "address"
	FieldCity        = "city"
	FieldCPF         = "cpf"
	FieldRG          = "rg"
	FieldInstagram   = "instagram"
)
