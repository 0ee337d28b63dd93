// Copyright (c) 2026 Amar Infâncias. All rights reserved.
// Author: dev@amarinfancias.com.br

/*
Package child manages the records of the children photographed by the studio.

Every child belongs to exactly one caregiver from the client registry; the
single-record fetch embeds the caregiver so the frontend can render the
family card in one request.
*/
package child

import (
	"time"

	"github.com/amarinfancias/amar-api/internal/core/client"
)

// # Client Messages (pt-BR)

const (
	MsgCreated           = "Nova criança registrada com sucesso."
	MsgFound             = "Um registro foi encontrado."
	MsgListFound         = "Lista de crianças registradas no sistema."
	MsgUpdated           = "Registro atualizado com sucesso."
	MsgDeleted           = "Registro removido com sucesso."
	MsgNotFound          = "Nenhum registro foi encontrado."
	MsgListEmpty         = "Não há crianças registradas para exibir."
	MsgCaregiverNotFound = "Não foi possível encontrar o responsável pela criança com a id informada."
)

// # Core Entities

// Child represents one registered child.
type Child struct {
	ID          string    `json:"id"` // UUIDv7
	Name        string    `json:"name"`
	CaregiverID string    `json:"caregiver_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Caregiver is populated on single-record fetches only.
	Caregiver *client.Client `json:"caregiver,omitempty"`
}

// # Field Identifiers

const (
	FieldName        = "name"
	FieldCaregiverID = "caregiverId"
)
