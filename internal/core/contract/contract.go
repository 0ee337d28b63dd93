// Copyright (c) 2026 Amar Infâncias. All rights reserved.
// Author: dev@amarinfancias.com.br

/*
Package contract manages the service contracts that tie a client to an
event. A contract carries the sold package, its value and payment terms,
and may accumulate add-on services through the contract_service link table.

# Core Responsibility

  - Lifecycle: Generates, updates and removes contracts.
  - Detail view: The single-record fetch embeds the client, the event, the
    attached add-on services and the related financial records.
  - Add-ons: Attaches and detaches extra services sold on top of the
    package.
*/
package contract

import (
	"time"

	"github.com/amarinfancias/amar-api/internal/core/event"
	"github.com/amarinfancias/amar-api/internal/core/extraservice"
)

// # Client Messages (pt-BR)

const (
	MsgCreated   = "Contrato gerado com sucesso."
	MsgFound     = "Contrato encontrado."
	MsgListFound = "Lista de contratos encontrados."
	MsgUpdated   = "Contrato atualizado com sucesso."
	MsgDeleted   = "Contrato removido com sucesso."
	MsgNotFound  = "Nenhum contrato foi encontrado."
	MsgListEmpty = "Não há contratos para exibir."
	MsgNoChange  = "Ao menos um atributo precisa ser alterado para que a requisição prossiga."

	MsgServiceAttached = "Serviço adicionado com sucesso."
	MsgServiceDetached = "Serviço removido com sucesso."
	MsgServiceBadLink  = "Por favor, cheque contractId e extraServiceId."
	MsgServiceNoLink   = "Nenhum serviço extra foi encontrado com esta ID neste contrato."
)

// # Domain Enumerations

// Packages lists every sellable package name.
var Packages = []string{"NUVEM", "CÉU", "SOL", "LUA", "COMETA", "ESPECIAL"}

// Statuses lists the accepted payment statuses.
var Statuses = []string{"PENDENTE", "PAGO", "CANCELADO", "PARCIAL"}

// StatusDefault is applied when a new contract omits the status.
const StatusDefault = "PENDENTE"

// PaymentMethods lists the accepted payment methods.
var PaymentMethods = []string{"CARTÃO", "PIX"}

// # Core Entities

// Contract represents one service contract.
type Contract struct {
	ID             string    `json:"id"` // UUIDv7
	ContractURL    *string   `json:"contract_url,omitempty"`
	IsSigned       *bool     `json:"is_signed,omitempty"`
	ClientID       string    `json:"client_id"`
	EventID        string    `json:"event_id"`
	Package        string    `json:"package"`
	Value          float64   `json:"value"` // BRL
	Status         string    `json:"status"`
	Date           string    `json:"date"` // DD/MM/YYYY
	PaymentMethod  *string   `json:"payment_method,omitempty"`
	SplitPayment   *bool     `json:"split_payment,omitempty"`
	PaymentDueDate string    `json:"payment_due_date"` // DD/MM/YYYY
	Observations   *string   `json:"observations,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ClientSummary is the slice of the client embedded in the detail view.
type ClientSummary struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Instagram *string `json:"instagram,omitempty"`
}

// AttachedService is one add-on sold on top of the package.
type AttachedService struct {
	LinkID  string                    `json:"link_id"`
	Service extraservice.ExtraService `json:"service"`
}

// RecordSummary is one financial record tied to the contract.
type RecordSummary struct {
	ID     string  `json:"id"`
	Type   string  `json:"type"`
	Amount float64 `json:"amount"`
	Month  int     `json:"month"`
	Year   int     `json:"year"`
	Status string  `json:"status"`
}

// Detail is the single-record view with every relation embedded.
type Detail struct {
	Contract
	Client   *ClientSummary    `json:"client,omitempty"`
	Event    *event.Event      `json:"event,omitempty"`
	Services []AttachedService `json:"services"`
	Records  []RecordSummary   `json:"records"`
}

// MonthCount is one bucket of the contracts-per-month report.
type MonthCount struct {
	Month int   `json:"month"`
	Count int64 `json:"count"`
}

// # Field Identifiers

const (
	FieldContractURL    = "contractUrl"
	FieldIsSigned       = "isSigned"
	FieldClientID       = "clientId"
	FieldEventID        = "eventId"
	FieldPackage        = "package"
	FieldValue          = "value"
	FieldStatus         = "status"
	FieldDate           = "date"
	FieldPaymentMethod  = "paymentMethod"
	FieldSplitPayment   = "splitPayment"
	FieldPaymentDueDate = "paymentDueDate"
	FieldObservations   = "observations"
	FieldExtraServiceID = "extraServiceId"
)
