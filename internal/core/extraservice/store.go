// Copyright (c) 2026 Amar Infâncias. All rights reserved.
// Author: dev@amarinfancias.com.br

package extraservice

import "context"

// Store abstracts persistence for add-on services.
type Store interface {
	Create(ctx context.Context, service *ExtraService) error
	FindAll(ctx context.Context) ([]ExtraService, error)
	FindByID(ctx context.Context, id string) (*ExtraService, error)
	Update(ctx context.Context, service *ExtraService) error
	Delete(ctx context.Context, id string) error
}
