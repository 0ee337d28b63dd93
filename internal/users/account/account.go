// Copyright (c) 2026 Amar Infâncias. All rights reserved.
// Author: dev@amarinfancias.com.br

/*
Package account handles admin user management: creation, profile edits,
password changes and the password-recovery request.

It operates on the same users.account table the auth package reads, but owns
every mutation except the session columns.

# Architecture

  - Entities: Reuses [auth.User]; this package depends on auth for the entity.
  - Storage: Plain SQL over the shared [postgres.DB] querier.
  - Outbound: Password-recovery emails leave through the [Mailer] port.
*/
package account

import (
	"context"

	"github.com/amarinfancias/amar-api/internal/users/auth"
)

// # Client Messages (pt-BR)

const (
	MsgUserCreated     = "Usuário(a) criado(a) com sucesso."
	MsgUserFound       = "Usuário(a)(s) encontrado(a)(s) com sucesso."
	MsgUserUpdated     = "Usuário(a) atualizado(a) com sucesso."
	MsgUserDeleted     = "Usuário(a) deletado(a) com sucesso."
	MsgPasswordUpdated = "Senha atualizada com sucesso."
	MsgResetRequested  = "Email de recuperação enviado com sucesso."
	MsgUserDuplicate   = "Já existe um(a) usuário(a) com este email."
	MsgNoUsers         = "Nenhum(a) usuário(a) encontrado(a)."
)

// DefaultPictureURL is the avatar assigned to accounts created without one.
const DefaultPictureURL = "../assets/avatar_placeholder.png"

// # Repository Contract

// Store defines the persistence contract for admin accounts.
type Store interface {
	/*
		Create persists a brand-new account.

		Parameters:
		  - context: context.Context
		  - user: *auth.User (hydrated entity, password already hashed)

		Returns:
		  - error: apperr.Conflict on duplicate email, or storage failures
	*/
	Create(context context.Context, user *auth.User) error

	/*
		FindAll lists every account, newest first.

		Returns:
		  - []auth.User: May be empty; the service maps empty to 404
		  - error: Storage failures
	*/
	FindAll(context context.Context) ([]auth.User, error)

	/*
		FindByID retrieves an account by its UUID.

		Returns:
		  - *auth.User: Loaded account entity
		  - error: apperr.NotFound or storage failures
	*/
	FindByID(context context.Context, id string) (*auth.User, error)

	/*
		FindByEmail retrieves an account by its unique email.

		Returns:
		  - *auth.User: Loaded account entity
		  - error: apperr.NotFound or storage failures
	*/
	FindByEmail(context context.Context, email string) (*auth.User, error)

	/*
		Update persists changes to the mutable profile fields (name, email,
		picture). Passwords go through [UpdatePassword].

		Returns:
		  - error: apperr.Conflict when the new email is taken, or failures
	*/
	Update(context context.Context, user *auth.User) error

	/*
		UpdatePassword replaces only the password hash. Separate from [Update]
		to prevent accidental overwrites during profile edits.

		Returns:
		  - error: apperr.NotFound or storage failures
	*/
	UpdatePassword(context context.Context, userID, newHash string) error

	/*
		Delete permanently removes the account row.

		Returns:
		  - error: apperr.NotFound or storage failures
	*/
	Delete(context context.Context, id string) error
}
