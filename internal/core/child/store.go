// Copyright (c) 2026 Amar Infâncias. All rights reserved.
// Author: dev@amarinfancias.com.br

package child

import "context"

// Store abstracts persistence for child records.
type Store interface {
	// Create inserts a new child. A missing caregiver surfaces as
	// apperr.NotFound with [MsgCaregiverNotFound].
	Create(ctx context.Context, child *Child) error

	// FindAll lists every child without caregiver data.
	FindAll(ctx context.Context) ([]Child, error)

	// FindByID retrieves one child with its caregiver embedded.
	FindByID(ctx context.Context, id string) (*Child, error)

	// UpdateName renames a child.
	UpdateName(ctx context.Context, id, name string) (*Child, error)

	// Delete removes a child row permanently.
	Delete(ctx context.Context, id string) error
}
