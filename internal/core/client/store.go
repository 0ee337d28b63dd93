// Copyright (c) 2026 Amar Infâncias. All rights reserved.
// Author: dev@amarinfancias.com.br

package client

import "context"

// # Client Data Access

// Store defines the data access contract for customer records.
type Store interface {

	/*
		Create persists a new client.

		Returns:
		  - error: apperr.Conflict on duplicate email or CPF/RG, or failures
	*/
	Create(context context.Context, client *Client) error

	/*
		FindAll lists one page of clients, newest first.

		Parameters:
		  - limit: page size
		  - offset: rows to skip

		Returns:
		  - []Client: May be empty; the service maps an empty base to 404
		  - error: Retrieval failures
	*/
	FindAll(context context.Context, limit, offset int) ([]Client, error)

	/*
		FindByID retrieves a client by its UUID.

		Returns:
		  - *Client: Hydrated entity
		  - error: apperr.NotFound if missing
	*/
	FindByID(context context.Context, id string) (*Client, error)

	/*
		Update persists changes to a client's fields.

		Returns:
		  - error: apperr.NotFound, apperr.Conflict or storage failures
	*/
	Update(context context.Context, client *Client) error

	/*
		Delete removes a client row permanently.

		Returns:
		  - error: apperr.NotFound or storage failures
	*/
	Delete(context context.Context, id string) error

	// # Reporting

	// Count returns the total number of clients.
	Count(context context.Context) (int64, error)

	// CountByCity groups clients by their folded city name, ascending.
	CountByCity(context context.Context) ([]CityCount, error)
}
