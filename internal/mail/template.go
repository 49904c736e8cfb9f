// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"math"
	"net/url"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/canonical/crew-service/internal/types"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

const defaultInviterName = "Someone"

type InvitationMail struct {
	To          string
	InviterName string
	BoatName    string
	Token       string
	Role        types.CrewRole
	Lifetime    time.Duration
}

type invitationView struct {
	InviterName string
	BoatName    string
	RoleLabel   string
	AcceptURL   string
	ValidDays   int
}

// RoleLabel renders a crew role for humans, "crew" becomes "Crew"
func RoleLabel(role types.CrewRole) string {
	return cases.Title(language.English).String(string(role))
}

// AcceptURL is the page the invitee opens to accept
func AcceptURL(appURL, token string) string {
	return strings.TrimRight(appURL, "/") + "/invite/" + url.PathEscape(token)
}

func inviterName(name string) string {
	if strings.TrimSpace(name) == "" {
		return defaultInviterName
	}
	return name
}

func subject(m *InvitationMail) string {
	return fmt.Sprintf("%s invited you to join %s", inviterName(m.InviterName), m.BoatName)
}

func render(appURL string, m *InvitationMail) (string, error) {
	days := int(math.Round(m.Lifetime.Hours() / 24))
	if days < 1 {
		days = 1
	}

	view := invitationView{
		InviterName: inviterName(m.InviterName),
		BoatName:    m.BoatName,
		RoleLabel:   RoleLabel(m.Role),
		AcceptURL:   AcceptURL(appURL, m.Token),
		ValidDays:   days,
	}

	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "invitation.html", view); err != nil {
		return "", fmt.Errorf("failed to render invitation mail: %w", err)
	}

	return buf.String(), nil
}
