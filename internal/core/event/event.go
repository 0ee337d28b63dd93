// Copyright (c) 2026 Amar Infâncias. All rights reserved.
// Author: dev@amarinfancias.com.br

/*
Package event manages the photography sessions and parties of the agenda.

An event is either a studio session (ENSAIO) or an on-location party
(EVENTO). Date and hour arrive pre-formatted from the frontend (DD/MM/YYYY
and HH:MM) and are stored as opaque strings; the agenda renders them as-is.
*/
package event

import "time"

// # Client Messages (pt-BR)

const (
	MsgCreated   = "Evento criado com sucesso."
	MsgFound     = "Evento encontrado com sucesso."
	MsgListFound = "Eventos encontrados com sucesso"
	MsgUpdated   = "Evento atualizado com sucesso."
	MsgDeleted   = "Evento removido com sucesso."
	MsgNotFound  = "Nenhum evento foi encontrado."
	MsgListEmpty = "Não há eventos para exibir."
)

// # Event Types

const (
	TypeSession = "ENSAIO"
	TypeParty   = "EVENTO"
)

// Types lists every valid event type.
var Types = []string{TypeSession, TypeParty}

// # Core Entities

// Event represents one agenda entry.
type Event struct {
	ID           string    `json:"id"` // UUIDv7
	Name         string    `json:"name"`
	Type         string    `json:"type"` // ENSAIO or EVENTO
	Location     string    `json:"location"`
	Date         string    `json:"date"` // DD/MM/YYYY
	Hour         string    `json:"hour"` // HH:MM
	Duration     int       `json:"duration"` // hours
	Observations *string   `json:"observations,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// # Field Identifiers

const (
	FieldName         = "name"
	FieldType         = "type"
	FieldLocation     = "location"
	FieldDate         = "date"
	FieldHour         = "hour"
	FieldDuration     = "duration"
	FieldObservations = "observations"
)
