// Copyright (c) 2026 Amar Infâncias. All rights reserved.
// Author: dev@amarinfancias.com.br

package account

import (
	"context"
	"log/slog"
)

// Mailer is the outbound port for password-recovery email delivery.
//
// # Why a port?
//
// Email leaves the system, so the service layer only knows this contract.
// Production wires an SMTP or provider-backed implementation; development
// and tests use [LogMailer].
type Mailer interface {
	// SendPasswordReset delivers the reset link to the given address.
	SendPasswordReset(ctx context.Context, toEmail, toName, resetLink string) error
}

// LogMailer implements [Mailer] by writing the link to the structured log
// instead of sending anything. Good enough for local development, where the
// operator copies the link out of the log.
type LogMailer struct {
	logger *slog.Logger
}

// NewLogMailer creates a log-backed [Mailer].
func NewLogMailer(logger *slog.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

// SendPasswordReset logs the reset link.
func (mailer *LogMailer) SendPasswordReset(ctx context.Context, toEmail, toName, resetLink string) error {
	mailer.logger.InfoContext(ctx, "password_reset_email",
		slog.String("to_email", toEmail),
		slog.String("to_name", toName),
		slog.String("reset_link", resetLink),
	)
	return nil
}
