// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/resend/resend-go/v2"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/crew-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package mail -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package mail -destination ./mock_logger.go -source=../logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package mail -destination ./mock_monitor.go -source=../monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package mail -destination ./mock_tracing.go -source=../tracing/interfaces.go

func testInvitation() *InvitationMail {
	return &InvitationMail{
		To:          "sam@example.com",
		InviterName: "Alex Morgan",
		BoatName:    "Windward",
		Token:       "abc123",
		Role:        types.RoleCrew,
		Lifetime:    168 * time.Hour,
	}
}

func TestResendMailer_SendInvitation(t *testing.T) {
	testCases := []struct {
		name        string
		msg         *InvitationMail
		sendErr     error
		subject     string
		expectedErr bool
	}{
		{
			name:    "sends the rendered invitation",
			msg:     testInvitation(),
			subject: "Alex Morgan invited you to join Windward",
		},
		{
			name: "inviter without a name",
			msg: func() *InvitationMail {
				m := testInvitation()
				m.InviterName = ""
				return m
			}(),
			subject: "Someone invited you to join Windward",
		},
		{
			name:        "provider failure",
			msg:         testInvitation(),
			sendErr:     errors.New("rate limited"),
			subject:     "Alex Morgan invited you to join Windward",
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockEmails := NewMockEmailsClient(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			m := NewResendMailer(
				mockEmails,
				Config{From: "Crew <noreply@crew.test>", AppURL: "https://crew.test/"},
				mockTracer,
				NewMockMonitorInterface(ctrl),
				mockLogger,
			)

			mockTracer.EXPECT().Start(gomock.Any(), "mail.ResendMailer.SendInvitation").
				Return(context.Background(), trace.SpanFromContext(context.Background()))

			mockEmails.EXPECT().SendWithContext(gomock.Any(), gomock.Any()).DoAndReturn(
				func(ctx context.Context, req *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
					if req.Subject != tc.subject {
						t.Errorf("expected subject %q, got %q", tc.subject, req.Subject)
					}
					if len(req.To) != 1 || req.To[0] != "sam@example.com" {
						t.Errorf("unexpected recipients %v", req.To)
					}
					if !strings.Contains(req.Html, "https://crew.test/invite/abc123") {
						t.Errorf("expected accept link in body, got %s", req.Html)
					}
					if !strings.Contains(req.Html, "7 days") {
						t.Errorf("expected validity note in body")
					}
					if !strings.Contains(req.Html, "Crew") {
						t.Errorf("expected role label in body")
					}
					if tc.sendErr != nil {
						return nil, tc.sendErr
					}
					return &resend.SendEmailResponse{Id: "mail-1"}, nil
				},
			)

			if tc.sendErr == nil {
				mockLogger.EXPECT().Debugw(gomock.Any(), gomock.Any()).AnyTimes()
			}

			err := m.SendInvitation(context.Background(), tc.msg)

			if tc.expectedErr && err == nil {
				t.Fatal("expected error but got none")
			}
			if !tc.expectedErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestLogMailerRedactsToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := NewMockLoggerInterface(ctrl)
	mockLogger.EXPECT().Infow(gomock.Any(), gomock.Any()).Do(
		func(msg string, kv ...interface{}) {
			for _, v := range kv {
				if s, ok := v.(string); ok && strings.Contains(s, "abc123") {
					t.Errorf("token leaked into logs: %s", s)
				}
			}
		},
	)

	if err := NewLogMailer("https://crew.test", mockLogger).SendInvitation(context.Background(), testInvitation()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRoleLabel(t *testing.T) {
	if got := RoleLabel(types.RoleCrew); got != "Crew" {
		t.Errorf("expected Crew, got %s", got)
	}
	if got := RoleLabel(types.RoleAdmin); got != "Admin" {
		t.Errorf("expected Admin, got %s", got)
	}
}
