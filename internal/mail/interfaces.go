// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"context"

	"github.com/resend/resend-go/v2"
)

type MailerInterface interface {
	SendInvitation(ctx context.Context, msg *InvitationMail) error
}

// EmailsClient is the part of the Resend SDK used to deliver messages
type EmailsClient interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}
