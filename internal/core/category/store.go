// Copyright (c) 2026 Amar Infâncias. All rights reserved.
// Author: dev@amarinfancias.com.br

package category

import "context"

// Store abstracts persistence for one category table.
type Store interface {
	Create(ctx context.Context, category *Category) error
	FindAll(ctx context.Context) ([]Category, error)
	FindByID(ctx context.Context, id string) (*Category, error)
	UpdateName(ctx context.Context, id, name string) (*Category, error)
	Delete(ctx context.Context, id string) error
}
