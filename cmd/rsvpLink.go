// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/canonical/crew-service/internal/types"
	"github.com/canonical/crew-service/pkg/rsvp"
)

// rsvpLinkCmd prints the signed one click RSVP link of an assignment, the way notification mails embed it
var rsvpLinkCmd = &cobra.Command{
	Use:   "rsvp-link",
	Short: "Print a signed RSVP link for an assignment",
	Long:  `Print a signed RSVP link for an assignment, the signing secret is read from RSVP_TOKEN_SECRET`,
	RunE: func(cmd *cobra.Command, args []string) error {
		assignmentID, _ := cmd.Flags().GetString("assignment-id")
		status, _ := cmd.Flags().GetString("status")
		appURL, _ := cmd.Flags().GetString("app-url")

		secret := os.Getenv("RSVP_TOKEN_SECRET")
		if secret == "" {
			return fmt.Errorf("RSVP_TOKEN_SECRET is not set")
		}

		s := types.RSVPStatus(status)
		if !s.Valid() || s == types.RSVPPending {
			return fmt.Errorf("invalid status %q, expected accepted, declined or tentative", status)
		}

		fmt.Fprintln(cmd.OutOrStdout(), rsvp.NewSigner(secret).URL(appURL, assignmentID, s))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rsvpLinkCmd)

	rsvpLinkCmd.Flags().String("assignment-id", "", "The event assignment to answer")
	rsvpLinkCmd.Flags().String("status", string(types.RSVPAccepted), "The RSVP answer: accepted, declined or tentative")
	rsvpLinkCmd.Flags().String("app-url", "http://localhost:8080", "Base URL of the crew API")

	_ = rsvpLinkCmd.MarkFlagRequired("assignment-id")
}
