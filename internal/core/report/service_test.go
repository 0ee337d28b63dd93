// Copyright (c) 2026 Amar Infâncias. All rights reserved.
// Author: dev@amarinfancias.com.br

package report_test

import (
	"context"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amarinfancias/amar-api/internal/core/client"
	"github.com/amarinfancias/amar-api/internal/core/contract"
	"github.com/amarinfancias/amar-api/internal/core/financial"
	"github.com/amarinfancias/amar-api/internal/core/report"
	"github.com/amarinfancias/amar-api/internal/platform/apperr"
)

// fakeContracts records the canonical package name the service resolved.
type fakeContracts struct {
	requestedPackage string
}

func (f *fakeContracts) Count(_ context.Context) (int64, error) { return 12, nil }

func (f *fakeContracts) CountByPackage(_ context.Context, servicePackage string) (int64, error) {
	f.requestedPackage = servicePackage
	return 5, nil
}

func (f *fakeContracts) CountByMonth(_ context.Context, _ int) ([]contract.MonthCount, error) {
	return []contract.MonthCount{{Month: 1, Count: 2}, {Month: 3, Count: 4}}, nil
}

type fakeClients struct {
	buckets []client.CityCount
}

func (f *fakeClients) Count(_ context.Context) (int64, error) { return 30, nil }

func (f *fakeClients) CountByCity(_ context.Context) ([]client.CityCount, error) {
	return f.buckets, nil
}

type fakeFinances struct {
	sum     financial.TypeSum
	found   bool
	monthly []financial.MonthSum
	yearly  []financial.YearSum
	sumType string
}

func (f *fakeFinances) SumByType(_ context.Context, recordType string) (financial.TypeSum, bool, error) {
	f.sumType = recordType
	return f.sum, f.found, nil
}

func (f *fakeFinances) SumRevenueByMonth(_ context.Context, _ int) ([]financial.MonthSum, error) {
	return f.monthly, nil
}

func (f *fakeFinances) SumRevenueByYear(_ context.Context) ([]financial.YearSum, error) {
	return f.yearly, nil
}

func newReportFixture(_ *testing.T) (*report.Service, *fakeContracts, *fakeClients, *fakeFinances) {
	contracts := &fakeContracts{}
	clients := &fakeClients{}
	finances := &fakeFinances{}
	service := report.NewService(contracts, clients, finances, slog.Default())
	return service, contracts, clients, finances
}

/*
TestService_CountContractsByPackage verifies operator-typed package names are
resolved against the catalog ignoring case and accents.
*/
func TestService_CountContractsByPackage(t *testing.T) {
	tests := []struct {
		name          string
		query         string
		wantCanonical string
	}{
		{"exact", "CÉU", "CÉU"},
		{"unaccented_lowercase", "ceu", "CÉU"},
		{"mixed_case", "CoMeTa", "COMETA"},
		{"accented_lowercase", "céu", "CÉU"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, contracts, _, _ := newReportFixture(t)

			total, err := service.CountContractsByPackage(context.Background(), tt.query)

			require.NoError(t, err)
			assert.Equal(t, int64(5), total)
			assert.Equal(t, tt.wantCanonical, contracts.requestedPackage)
		})
	}
}

/*
TestService_CountContractsByPackage_Unknown verifies an unknown package name
is a 400 and never reaches the store.
*/
func TestService_CountContractsByPackage_Unknown(t *testing.T) {
	service, contracts, _, _ := newReportFixture(t)

	_, err := service.CountContractsByPackage(context.Background(), "PLATINUM")

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusBadRequest, ae.HTTPStatus)
	assert.Equal(t, report.MsgPackageInvalid, ae.Message)
	assert.Empty(t, contracts.requestedPackage)
}

/*
TestService_CountClientsByCity verifies buckets whose city names differ only
in accents or casing are merged, keeping the first spelling seen.
*/
func TestService_CountClientsByCity(t *testing.T) {
	service, _, clients, _ := newReportFixture(t)
	clients.buckets = []client.CityCount{
		{City: "Campinas", Count: 3},
		{City: "SÃO PAULO", Count: 1},
		{City: "Sao Paulo", Count: 2},
		{City: "são paulo", Count: 4},
	}

	merged, err := service.CountClientsByCity(context.Background())

	require.NoError(t, err)
	require.Len(t, merged, 2)
	assert.Equal(t, client.CityCount{City: "Campinas", Count: 3}, merged[0])
	assert.Equal(t, client.CityCount{City: "SÃO PAULO", Count: 7}, merged[1])
}

/*
TestService_SumFinancesByType covers type resolution plus the 400/404 split:
an unknown type is a client error, a known type with no records is a 404.
*/
func TestService_SumFinancesByType(t *testing.T) {
	t.Run("resolves_type", func(t *testing.T) {
		service, _, _, finances := newReportFixture(t)
		finances.sum = financial.TypeSum{Type: "RECEITA", Total: 1500}
		finances.found = true

		sum, err := service.SumFinancesByType(context.Background(), "receita")

		require.NoError(t, err)
		assert.Equal(t, "RECEITA", finances.sumType)
		assert.Equal(t, 1500.0, sum.Total)
	})

	t.Run("unknown_type", func(t *testing.T) {
		service, _, _, _ := newReportFixture(t)

		_, err := service.SumFinancesByType(context.Background(), "LUCRO")

		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, http.StatusBadRequest, ae.HTTPStatus)
	})

	t.Run("no_records", func(t *testing.T) {
		service, _, _, finances := newReportFixture(t)
		finances.found = false

		_, err := service.SumFinancesByType(context.Background(), "DESPESA")

		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, http.StatusNotFound, ae.HTTPStatus)
	})
}

/*
TestService_RevenueSeries verifies the empty-series 404 paths of the monthly
and yearly revenue reports.
*/
func TestService_RevenueSeries(t *testing.T) {
	service, _, _, finances := newReportFixture(t)

	_, err := service.RevenueByMonth(context.Background(), 2026)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, report.MsgYearEmpty, ae.Message)

	_, err = service.RevenueByYear(context.Background())
	ae = apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, report.MsgEmpty, ae.Message)

	finances.monthly = []financial.MonthSum{{Month: 2, Total: 900}}
	finances.yearly = []financial.YearSum{{Year: 2025, Total: 8000}}

	monthly, err := service.RevenueByMonth(context.Background(), 2026)
	require.NoError(t, err)
	assert.Len(t, monthly, 1)

	yearly, err := service.RevenueByYear(context.Background())
	require.NoError(t, err)
	assert.Len(t, yearly, 1)
}
