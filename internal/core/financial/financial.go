// Copyright (c) 2026 Amar Infâncias. All rights reserved.
// Author: dev@amarinfancias.com.br

/*
Package financial manages the bookkeeping records of the studio.

A record is either a revenue (RECEITA) or an expense (DESPESA), filed under
a month/year and optionally tied to a contract and a category. The report
package aggregates these records for the dashboard.
*/
package financial

import "time"

// # Client Messages (pt-BR)

const (
	MsgCreated   = "Demonstrativo criado com sucesso."
	MsgFound     = "Demonstrativo encontrado com sucesso."
	MsgListFound = "Demonstrativos encontrados com sucesso."
	MsgUpdated   = "Demonstrativo atualizado com sucesso."
	MsgDeleted   = "Demonstrativo removido com sucesso."
	MsgNotFound  = "Demonstrativo não encontrado."
	MsgListEmpty = "Não há demonstrativos para exibir."
)

// # Domain Enumerations

const (
	TypeRevenue = "RECEITA"
	TypeExpense = "DESPESA"
)

// Types lists every valid record type.
var Types = []string{TypeRevenue, TypeExpense}

// Statuses lists the accepted payment statuses.
var Statuses = []string{"PENDENTE", "PAGO", "CANCELADO", "PARCIAL"}

// PaymentMethods lists the accepted payment methods.
var PaymentMethods = []string{"CARTÃO", "PIX"}

// # Core Entities

// Record represents one bookkeeping entry.
type Record struct {
	ID                string    `json:"id"` // UUIDv7
	Type              string    `json:"type"` // RECEITA or DESPESA
	ContractID        *string   `json:"contract_id,omitempty"`
	ExpenseCategoryID *string   `json:"expense_category_id,omitempty"`
	RevenueCategoryID *string   `json:"revenue_category_id,omitempty"`
	Amount            float64   `json:"amount"` // BRL
	Month             int       `json:"month"`  // 1-12
	Year              int       `json:"year"`
	Status            string    `json:"status"`
	PaymentMethod     *string   `json:"payment_method,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// TypeSum is the total amount accumulated by one record type.
type TypeSum struct {
	Type  string  `json:"type"`
	Total float64 `json:"total"`
}

// MonthSum is one bucket of the monthly revenue report.
type MonthSum struct {
	Month int     `json:"month"`
	Total float64 `json:"total"`
}

// YearSum is one bucket of the yearly revenue report.
type YearSum struct {
	Year  int     `json:"year"`
	Total float64 `json:"total"`
}

// # Field Identifiers

const (
	FieldType              = "type"
	FieldContractID        = "contractId"
	FieldExpenseCategoryID = "expenseCategoryId"
	FieldRevenueCategoryID = "revenueCategoryId"
	FieldAmount            = "amount"
	FieldMonth             = "month"
	FieldYear              = "year"
	FieldStatus            = "status"
	FieldPaymentMethod     = "paymentMethod"
)
