// Copyright (c) 2026 Amar Infâncias. All rights reserved.
// Author: dev@amarinfancias.com.br

package account

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/amarinfancias/amar-api/internal/platform/apperr"
	"github.com/amarinfancias/amar-api/internal/platform/constants"
	"github.com/amarinfancias/amar-api/internal/platform/sec"
	"github.com/amarinfancias/amar-api/internal/users/auth"
	"github.com/amarinfancias/amar-api/pkg/uuid"
)

// # Contracts

// ResetTokenIssuer mints the short-lived reset token embedded in recovery
// links. Reset tokens reuse the refresh-token claim shape {id, name, email};
// [*sec.TokenService] satisfies this.
type ResetTokenIssuer interface {
	IssueRefreshToken(userID, name, email string, timeToLive time.Duration) (string, error)
}

// # Service Layer

// Service orchestrates admin account management.
type Service struct {
	store         Store
	tokens        ResetTokenIssuer
	mailer        Mailer
	logger        *slog.Logger
	bcryptCost    int
	resetLinkBase string
}

// NewService constructs the account [Service] with its dependencies.
func NewService(
	store Store,
	tokens ResetTokenIssuer,
	mailer Mailer,
	logger *slog.Logger,
	bcryptCost int,
	resetLinkBase string,
) *Service {
	return &Service{
		store:         store,
		tokens:        tokens,
		mailer:        mailer,
		logger:        logger,
		bcryptCost:    bcryptCost,
		resetLinkBase: resetLinkBase,
	}
}

// # Account Lifecycle

// CreateInput holds the data required to enroll a new admin.
type CreateInput struct {
	Name       string
	Email      string
	Password   string
	PictureURL string
}

/*
Create validates, hashes, and persists a brand new admin account.

Parameters:
  - context: context.Context
  - input: CreateInput

Returns:
  - *auth.User: Created entity
  - err: Conflict (409) when the email is taken, or storage failures
*/
func (service *Service) Create(context context.Context, input CreateInput) (*auth.User, error) {

	// Prevent storing plain-text passwords. Cost comes from config so
	// production can raise it without a rebuild.
	hashedPassword, err := sec.HashPassword(input.Password, service.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("account_service_hash_failed: %w", err)
	}

	pictureURL := input.PictureURL
	if pictureURL == "" {
		pictureURL = DefaultPictureURL
	}

	// Time-sortable ID to prevent PG index fragmentation.
	user := &auth.User{
		ID:           uuid.New(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		PictureURL:   pictureURL,
	}

	// The unique index on email turns a duplicate into apperr.Conflict.
	if err := service.store.Create(context, user); err != nil {
		return nil, err
	}

	service.logger.Info("user_account_created", slog.String("user_id", user.ID))

	return user, nil
}

/*
List returns every admin account.

Returns:
  - []auth.User: All accounts, newest first
  - err: NotFound (404) when no account exists, mirroring the frontend's
    expectation of an error state for an empty admin table
*/
func (service *Service) List(context context.Context) ([]auth.User, error) {
	users, err := service.store.FindAll(context)
	if err != nil {
		return nil, err
	}

	if len(users) == 0 {
		return nil, apperr.NotFound(MsgNoUsers)
	}

	return users, nil
}

// Get retrieves one account by its UUID.
func (service *Service) Get(context context.Context, id string) (*auth.User, error) {
	return service.store.FindByID(context, id)
}

// UpdateInput defines the mutable subset of profile fields.
type UpdateInput struct {
	Name       *string
	Email      *string
	PictureURL *string
}

/*
Update applies a partial set of changes to an account's profile.

Description: Fetches the existing state, overrides provided fields, and
synchronizes the change to persistent storage.

Parameters:
  - context: context.Context
  - id: string (UUID)
  - input: UpdateInput

Returns:
  - *auth.User: The updated profile
  - err: NotFound, Conflict (email taken) or storage failures
*/
func (service *Service) Update(context context.Context, id string, input UpdateInput) (*auth.User, error) {

	user, err := service.store.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	// Apply delta updates
	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.PictureURL != nil {
		user.PictureURL = *input.PictureURL
	}

	if err := service.store.Update(context, user); err != nil {
		return nil, err
	}

	service.logger.Info("user_profile_updated", slog.String("user_id", id))

	return user, nil
}

/*
UpdatePassword replaces an account's password.

Parameters:
  - context: context.Context
  - id: string (UUID)
  - newPassword: plain text, already strength-validated at the boundary

Returns:
  - err: NotFound or storage failures
*/
func (service *Service) UpdatePassword(context context.Context, id, newPassword string) error {

	hashedPassword, err := sec.HashPassword(newPassword, service.bcryptCost)
	if err != nil {
		return fmt.Errorf("account_service_password_hash_failed: %w", err)
	}

	if err := service.store.UpdatePassword(context, id, hashedPassword); err != nil {
		return err
	}

	service.logger.Info("user_password_updated", slog.String("user_id", id))

	return nil
}

/*
Delete permanently removes an admin account.

Parameters:
  - context: context.Context
  - id: string (UUID)

Returns:
  - err: NotFound or storage failures
*/
func (service *Service) Delete(context context.Context, id string) error {
	if err := service.store.Delete(context, id); err != nil {
		return err
	}

	service.logger.Warn("user_account_deleted", slog.String("user_id", id))

	return nil
}

// # Password Recovery

/*
RequestPasswordReset initiates the forgot-password flow.

Description: Looks up the account, mints a 15 minute reset token carrying
{id, name, email}, builds the frontend link and hands it to the [Mailer].

Parameters:
  - context: context.Context
  - email: string

Returns:
  - err: NotFound (404) when the email is not registered, or delivery
    failures

Unlike public-facing products, this backoffice intentionally reports an
unknown email as 404: every operator knows the full admin roster, so there
is no enumeration surface to protect.
*/
func (service *Service) RequestPasswordReset(context context.Context, email string) error {

	user, err := service.store.FindByEmail(context, email)
	if err != nil {
		return err
	}

	token, err := service.tokens.IssueRefreshToken(user.ID, user.Name, user.Email, constants.ResetTokenTTL)
	if err != nil {
		return fmt.Errorf("account_service_reset_token_failed: %w", err)
	}

	resetLink := fmt.Sprintf("%s?resetToken=%s", service.resetLinkBase, token)

	if err := service.mailer.SendPasswordReset(context, user.Email, user.Name, resetLink); err != nil {
		return fmt.Errorf("account_service_reset_mail_failed: %w", err)
	}

	service.logger.Info("password_reset_requested", slog.String("user_id", user.ID))

	return nil
}
