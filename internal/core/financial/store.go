// Copyright (c) 2026 Amar Infâncias. All rights reserved.
// Author: dev@amarinfancias.com.br

package financial

import "context"

// Store abstracts persistence for bookkeeping records.
type Store interface {
	Create(ctx context.Context, record *Record) error
	FindAll(ctx context.Context) ([]Record, error)
	FindByID(ctx context.Context, id string) (*Record, error)
	Update(ctx context.Context, record *Record) error
	Delete(ctx context.Context, id string) error

	// SumByType totals the amounts of every record of the given type.
	// Returns ok=false when no record of that type exists.
	SumByType(ctx context.Context, recordType string) (TypeSum, bool, error)

	// SumRevenueByMonth totals revenue per month for one year, ascending.
	SumRevenueByMonth(ctx context.Context, year int) ([]MonthSum, error)

	// SumRevenueByYear totals revenue per year, ascending.
	SumRevenueByYear(ctx context.Context) ([]YearSum, error)
}
