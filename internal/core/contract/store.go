// Copyright (c) 2026 Amar Infâncias. All rights reserved.
// Author: dev@amarinfancias.com.br

package contract

import "context"

// Store abstracts persistence for contracts and their add-on links.
type Store interface {
	// Create inserts a new contract. A dangling eventId or clientId
	// surfaces as apperr.BadRequest.
	Create(ctx context.Context, contract *Contract) error

	// FindAll lists every contract without relations.
	FindAll(ctx context.Context) ([]Contract, error)

	// FindByID retrieves the detail view with client, event, add-on
	// services and financial records embedded.
	FindByID(ctx context.Context, id string) (*Detail, error)

	// Update persists changes to a contract's own columns.
	Update(ctx context.Context, contract *Contract) error

	// Delete removes a contract permanently.
	Delete(ctx context.Context, id string) error

	// AttachService links an add-on service to a contract. Dangling ids
	// surface as apperr.BadRequest with [MsgServiceBadLink].
	AttachService(ctx context.Context, linkID, contractID, extraServiceID string) error

	// DetachService removes an add-on link. A missing link surfaces as
	// apperr.NotFound with [MsgServiceNoLink].
	DetachService(ctx context.Context, contractID, extraServiceID string) error

	// Count returns the total number of contracts.
	Count(ctx context.Context) (int64, error)

	// CountByPackage returns how many contracts sold the given package.
	CountByPackage(ctx context.Context, servicePackage string) (int64, error)

	// CountByMonth buckets a year's contracts by the month of their date
	// column (DD/MM/YYYY).
	CountByMonth(ctx context.Context, year int) ([]MonthCount, error)
}
