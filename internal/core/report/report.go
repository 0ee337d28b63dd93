// Copyright (c) 2026 Amar Infâncias. All rights reserved.
// Author: dev@amarinfancias.com.br

/*
Package report aggregates the registry data for the dashboard.

# Architecture

The package owns no table. It reads through the count and sum methods of
the client, contract and financial stores and reshapes the results for the
frontend charts. Package names and city names are matched accent- and
case-insensitively, so a query for "ceu" finds the "CÉU" package and
"Sao Paulo" and "São Paulo" land in the same bucket.

# Core Responsibilities

  - Contracts: Total count, count per package, count per month of a year.
  - Clients: Total count and group-by-city distribution.
  - Finances: Amount totals per record type, and monthly or yearly revenue
    series.
*/
package report

// # Client Messages (pt-BR)

const (
	MsgContracts      = "Total de contratos encontrados."
	MsgClients        = "Total de clientes encontrados."
	MsgFinances       = "Requisição processada com sucesso"
	MsgPackageInvalid = "O nome do pacote está incorreto ou o pacote não existe."
	MsgTypeInvalid    = "O tipo está incorreto ou não existem registros."
	MsgYearEmpty      = "O ano está incorreto ou não existem registros."
	MsgEmpty          = "Não foram encontrados registros."
)
