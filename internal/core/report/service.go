// Copyright (c) 2026 Amar Infâncias. All rights reserved.
// Author: dev@amarinfancias.com.br

package report

import (
	"context"
	"log/slog"

	"github.com/amarinfancias/amar-api/internal/core/client"
	"github.com/amarinfancias/amar-api/internal/core/contract"
	"github.com/amarinfancias/amar-api/internal/core/financial"
	"github.com/amarinfancias/amar-api/internal/platform/apperr"
	"github.com/amarinfancias/amar-api/pkg/textnorm"
)

// # Contracts

// ContractCounter is the slice of the contract store the reports read.
type ContractCounter interface {
	Count(ctx context.Context) (int64, error)
	CountByPackage(ctx context.Context, servicePackage string) (int64, error)
	CountByMonth(ctx context.Context, year int) ([]contract.MonthCount, error)
}

// ClientCounter is the slice of the client store the reports read.
type ClientCounter interface {
	Count(ctx context.Context) (int64, error)
	CountByCity(ctx context.Context) ([]client.CityCount, error)
}

// FinanceSummer is the slice of the financial store the reports read.
type FinanceSummer interface {
	SumByType(ctx context.Context, recordType string) (financial.TypeSum, bool, error)
	SumRevenueByMonth(ctx context.Context, year int) ([]financial.MonthSum, error)
	SumRevenueByYear(ctx context.Context) ([]financial.YearSum, error)
}

// Service assembles the dashboard aggregations.
type Service struct {
	contracts ContractCounter
	clients   ClientCounter
	finances  FinanceSummer
	logger    *slog.Logger
}

// NewService constructs the report [Service].
func NewService(contracts ContractCounter, clients ClientCounter, finances FinanceSummer, logger *slog.Logger) *Service {
	return &Service{
		contracts: contracts,
		clients:   clients,
		finances:  finances,
		logger:    logger,
	}
}

// CountContracts returns the total number of contracts.
func (service *Service) CountContracts(context context.Context) (int64, error) {
	return service.contracts.Count(context)
}

/*
CountContractsByPackage counts contracts sold with one package.

Description: The query is matched against the package catalog ignoring case
and accents, so "ceu" resolves to "CÉU". An unknown name is a 400.

Parameters:
  - context: context.Context
  - servicePackage: package name as typed by the operator

Returns:
  - int64: Number of contracts
  - err: BadRequest (400) when the package does not exist
*/
func (service *Service) CountContractsByPackage(context context.Context, servicePackage string) (int64, error) {

	canonical, ok := resolvePackage(servicePackage)
	if !ok {
		return 0, apperr.BadRequest(MsgPackageInvalid)
	}

	return service.contracts.CountByPackage(context, canonical)
}

// resolvePackage maps an operator-typed package name onto its canonical
// catalog entry.
func resolvePackage(name string) (string, bool) {
	for _, candidate := range contract.Packages {
		if textnorm.Equal(name, candidate) {
			return candidate, true
		}
	}
	return "", false
}

// CountContractsByMonth buckets one year's contracts per month.
func (service *Service) CountContractsByMonth(context context.Context, year int) ([]contract.MonthCount, error) {
	return service.contracts.CountByMonth(context, year)
}

// # Clients

// CountClients returns the total number of clients.
func (service *Service) CountClients(context context.Context) (int64, error) {
	return service.clients.Count(context)
}

/*
CountClientsByCity returns the geographic distribution of the client base.

Description: The store groups by the stored city text; buckets whose names
differ only in case or accents are merged here, keeping the first spelling
seen as the display name. Buckets come back in ascending city order.
*/
func (service *Service) CountClientsByCity(context context.Context) ([]client.CityCount, error) {
	buckets, err := service.clients.CountByCity(context)
	if err != nil {
		return nil, err
	}

	merged := []client.CityCount{}
	index := map[string]int{}
	for _, bucket := range buckets {
		key := textnorm.Fold(bucket.City)
		if at, seen := index[key]; seen {
			merged[at].Count += bucket.Count
			continue
		}
		index[key] = len(merged)
		merged = append(merged, bucket)
	}

	return merged, nil
}

// # Finances

/*
SumFinancesByType totals every record of one type.

Parameters:
  - context: context.Context
  - recordType: RECEITA or DESPESA, case-insensitive

Returns:
  - financial.TypeSum: Type and accumulated amount
  - err: BadRequest (400) for an unknown type, NotFound (404) when no
    record of that type exists
*/
func (service *Service) SumFinancesByType(context context.Context, recordType string) (financial.TypeSum, error) {

	canonical, ok := resolveRecordType(recordType)
	if !ok {
		return financial.TypeSum{}, apperr.BadRequest(MsgTypeInvalid)
	}

	sum, found, err := service.finances.SumByType(context, canonical)
	if err != nil {
		return financial.TypeSum{}, err
	}
	if !found {
		return financial.TypeSum{}, apperr.NotFound(MsgTypeInvalid)
	}

	return sum, nil
}

func resolveRecordType(name string) (string, bool) {
	for _, candidate := range financial.Types {
		if textnorm.Equal(name, candidate) {
			return candidate, true
		}
	}
	return "", false
}

/*
RevenueByMonth returns the revenue series of one year, bucketed per month.

Returns:
  - []financial.MonthSum: Ascending by month
  - err: NotFound (404) when the year holds no revenue
*/
func (service *Service) RevenueByMonth(context context.Context, year int) ([]financial.MonthSum, error) {
	sums, err := service.finances.SumRevenueByMonth(context, year)
	if err != nil {
		return nil, err
	}

	if len(sums) == 0 {
		return nil, apperr.NotFound(MsgYearEmpty)
	}

	return sums, nil
}

/*
RevenueByYear returns the all-time revenue series, bucketed per year.

Returns:
  - []financial.YearSum: Ascending by year
  - err: NotFound (404) when no revenue was ever filed
*/
func (service *Service) RevenueByYear(context context.Context) ([]financial.YearSum, error) {
	sums, err := service.finances.SumRevenueByYear(context)
	if err != nil {
		return nil, err
	}

	if len(sums) == 0 {
		return nil, apperr.NotFound(MsgEmpty)
	}

	return sums, nil
}
