// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/spf13/cobra"
	"golang.org/x/oauth2/clientcredentials"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Get an access token for the crew API using the client credentials flow",
	RunE: func(cmd *cobra.Command, args []string) error {
		clientID, _ := cmd.Flags().GetString("client-id")
		clientSecret, _ := cmd.Flags().GetString("client-secret")
		tokenURL, _ := cmd.Flags().GetString("token-url")
		issuerURL, _ := cmd.Flags().GetString("issuer-url")
		scopes, _ := cmd.Flags().GetStringSlice("scopes")
		format, _ := cmd.Flags().GetString("format")

		ctx := cmd.Context()

		if tokenURL == "" {
			if issuerURL == "" {
				return fmt.Errorf("either --token-url or --issuer-url must be provided")
			}

			provider, err := oidc.NewProvider(ctx, issuerURL)
			if err != nil {
				return fmt.Errorf("failed to discover the issuer: %w", err)
			}
			tokenURL = provider.Endpoint().TokenURL
		}

		config := &clientcredentials.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			TokenURL:     tokenURL,
			Scopes:       scopes,
		}

		token, err := config.Token(ctx)
		if err != nil {
			return fmt.Errorf("failed to get token: %w", err)
		}

		if format == "json" {
			return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]any{
				"access_token": token.AccessToken,
				"token_type":   token.TokenType,
				"expiry":       token.Expiry,
			})
		}

		fmt.Fprintln(cmd.OutOrStdout(), token.AccessToken)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)

	tokenCmd.Flags().String("client-id", "", "Client ID")
	tokenCmd.Flags().String("client-secret", "", "Client Secret")
	tokenCmd.Flags().String("token-url", "", "Token URL")
	tokenCmd.Flags().String("issuer-url", "", "Issuer URL (for OIDC discovery)")
	tokenCmd.Flags().StringSlice("scopes", []string{"crew"}, "Scopes (comma-separated)")
	tokenCmd.Flags().String("format", "text", "Output format (text or json)")

	_ = tokenCmd.MarkFlagRequired("client-id")
	_ = tokenCmd.MarkFlagRequired("client-secret")
}
