// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"

	"github.com/canonical/crew-service/internal/logging"
	"github.com/canonical/crew-service/internal/monitoring"
	"github.com/canonical/crew-service/internal/tracing"
)

var (
	_ MailerInterface = (*ResendMailer)(nil)
	_ MailerInterface = (*LogMailer)(nil)
)

type Config struct {
	APIKey string
	From   string
	AppURL string
}

// ResendMailer delivers mails through the Resend API
type ResendMailer struct {
	emails EmailsClient
	from   string
	appURL string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (m *ResendMailer) SendInvitation(ctx context.Context, msg *InvitationMail) error {
	ctx, span := m.tracer.Start(ctx, "mail.ResendMailer.SendInvitation")
	defer span.End()

	body, err := render(m.appURL, msg)
	if err != nil {
		return err
	}

	sent, err := m.emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{msg.To},
		Subject: subject(msg),
		Html:    body,
	})
	if err != nil {
		return fmt.Errorf("failed to send invitation mail: %w", err)
	}

	m.logger.Debugw("invitation mail sent", "id", sent.Id, "boat", msg.BoatName)

	return nil
}

func NewResendMailer(emails EmailsClient, cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *ResendMailer {
	m := new(ResendMailer)

	m.emails = emails
	m.from = cfg.From
	m.appURL = cfg.AppURL

	m.tracer = tracer
	m.monitor = monitor
	m.logger = logger

	return m
}

// LogMailer only logs the mail, used when no API key is configured
type LogMailer struct {
	appURL string

	logger logging.LoggerInterface
}

func (m *LogMailer) SendInvitation(ctx context.Context, msg *InvitationMail) error {
	m.logger.Infow(
		"invitation mail not delivered, no mail provider configured",
		"to", msg.To,
		"subject", subject(msg),
		"accept_url", AcceptURL(m.appURL, "<redacted>"),
	)
	return nil
}

func NewLogMailer(appURL string, logger logging.LoggerInterface) *LogMailer {
	return &LogMailer{appURL: appURL, logger: logger}
}

// NewMailer picks Resend when an API key is configured
func NewMailer(cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) MailerInterface {
	if cfg.APIKey == "" {
		logger.Warn("RESEND_API_KEY not set, invitation mails will only be logged")
		return NewLogMailer(cfg.AppURL, logger)
	}

	return NewResendMailer(resend.NewClient(cfg.APIKey).Emails, cfg, tracer, monitor, logger)
}
