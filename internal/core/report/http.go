// Copyright (c) 2026 Amar Infâncias. All rights reserved.
// Author: dev@amarinfancias.com.br

package report

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/amarinfancias/amar-api/internal/platform/respond"
	"github.com/amarinfancias/amar-api/internal/platform/validate"
)

// Handler implements the dashboard filter endpoints.
type Handler struct {
	reportService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{reportService: service}
}

// Routes returns a [chi.Router] with the filter routes. Every endpoint
// narrows its behavior through query parameters, mirroring how the
// dashboard widgets request their data.
//
// # Endpoints
//   - GET /contracts                 : Total contract count.
//   - GET /contracts?servicePackage= : Count for one package (400 unknown).
//   - GET /contracts?year=           : Per-month counts for one year.
//   - GET /clients                   : Total client count.
//   - GET /clients?getByCity=true    : Group-by-city distribution.
//   - GET /finances?type=            : Amount total per record type.
//   - GET /finances/revenue          : Yearly revenue series.
//   - GET /finances/revenue?year=    : Monthly revenue series of one year.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/contracts", handler.contracts)
	router.Get("/clients", handler.clients)
	router.Get("/finances", handler.finances)
	router.Get("/finances/revenue", handler.revenue)

	return router
}

/*
Contracts serves the contract counters.

GET /api/v1/filters/contracts

Response:
  - 200: Message + count (or per-month buckets when ?year= is given)
  - 400: Unknown package name or malformed year
*/
func (handler *Handler) contracts(writer http.ResponseWriter, request *http.Request) {
	servicePackage := request.URL.Query().Get("servicePackage")
	yearParam := request.URL.Query().Get("year")

	switch {
	case servicePackage != "":
		total, err := handler.reportService.CountContractsByPackage(request.Context(), servicePackage)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		respond.OK(writer, MsgContracts, total)

	case yearParam != "":
		year, err := strconv.Atoi(yearParam)
		if err != nil {
			respond.Error(writer, request, validate.RequiredError("year", "Deve ser um ano válido"))
			return
		}
		buckets, err := handler.reportService.CountContractsByMonth(request.Context(), year)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		respond.OK(writer, MsgContracts, buckets)

	default:
		total, err := handler.reportService.CountContracts(request.Context())
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		respond.OK(writer, MsgContracts, total)
	}
}

/*
Clients serves the client counters.

GET /api/v1/filters/clients

Response:
  - 200: Message + count (or city buckets when ?getByCity=true)
*/
func (handler *Handler) clients(writer http.ResponseWriter, request *http.Request) {
	if request.URL.Query().Get("getByCity") == "true" {
		buckets, err := handler.reportService.CountClientsByCity(request.Context())
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		respond.OK(writer, MsgClients, buckets)
		return
	}

	total, err := handler.reportService.CountClients(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, MsgClients, total)
}

/*
Finances serves the per-type amount totals.

GET /api/v1/filters/finances?type=RECEITA

Response:
  - 200: Message + type total
  - 400: Unknown record type
  - 404: No record of that type exists
*/
func (handler *Handler) finances(writer http.ResponseWriter, request *http.Request) {
	recordType := request.URL.Query().Get("type")

	sum, err := handler.reportService.SumFinancesByType(request.Context(), recordType)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, MsgFinances, sum)
}

/*
Revenue serves the revenue series.

GET /api/v1/filters/finances/revenue

Response:
  - 200: Message + yearly series (or monthly when ?year= is given)
  - 400: Malformed year
  - 404: No revenue filed for the period
*/
func (handler *Handler) revenue(writer http.ResponseWriter, request *http.Request) {
	yearParam := request.URL.Query().Get("year")

	if yearParam != "" {
		year, err := strconv.Atoi(yearParam)
		if err != nil {
			respond.Error(writer, request, validate.RequiredError("year", "Deve ser um ano válido"))
			return
		}
		sums, err := handler.reportService.RevenueByMonth(request.Context(), year)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		respond.OK(writer, MsgFinances, sums)
		return
	}

	sums, err := handler.reportService.RevenueByYear(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, MsgFinances, sums)
}
