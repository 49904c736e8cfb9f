// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/canonical/crew-service/migrations"
)

// migrateCmd performs DB migrations
var migrateCmd = &cobra.Command{
	Use:   "migrate [up|down [version]|status|check]",
	Short: "Run database migrations",
	Long:  `Run the embedded database migrations, the DSN defaults to the DSN environment variable`,
	Args:  migrateArgs,
	Run: func(cmd *cobra.Command, args []string) {
		command := "up"
		if len(args) > 0 {
			command = args[0]
		}

		version := int64(-1)
		if len(args) > 1 {
			version, _ = strconv.ParseInt(args[1], 10, 64)
		}

		dsn, _ := cmd.Flags().GetString("dsn")
		if dsn == "" {
			dsn = os.Getenv("DSN")
		}
		format, _ := cmd.Flags().GetString("format")
		timeout, _ := cmd.Flags().GetDuration("timeout")

		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		if err := migrate(ctx, cmd.OutOrStdout(), dsn, command, format, version); err != nil {
			cmd.PrintErrln(err)
			os.Exit(1)
		}
	},
}

func init() {
	migrateCmd.Flags().String("dsn", "", "PostgreSQL DSN connection string, defaults to $DSN")
	migrateCmd.Flags().StringP("format", "f", "text", "Output format (text or json)")
	migrateCmd.Flags().Duration("timeout", 5*time.Minute, "Maximum duration of the migration run")
	rootCmd.AddCommand(migrateCmd)
}

func migrateArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.RangeArgs(0, 2)(cmd, args); err != nil {
		return err
	}

	if len(args) == 0 {
		return nil
	}

	switch args[0] {
	case "up", "down", "status", "check":
	default:
		return fmt.Errorf("invalid first argument: %q", args[0])
	}

	if len(args) == 2 {
		if args[0] != "down" {
			return fmt.Errorf("invalid argument combination: %q", args)
		}
		if v, err := strconv.ParseInt(args[1], 10, 64); err != nil || v < 0 {
			return fmt.Errorf("invalid version number: %q", args[1])
		}
	}

	return nil
}

func migrate(ctx context.Context, out io.Writer, dsn, command, format string, version int64) error {
	if dsn == "" {
		return fmt.Errorf("a DSN is required, use --dsn or the DSN environment variable")
	}

	config, err := pgx.ParseConfig(dsn)
	if err != nil {
		return fmt.Errorf("DSN validation failed: %w", err)
	}

	db := stdlib.OpenDB(*config)
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("DB connection failed: %w", err)
	}

	provider, err := newMigrationProvider(db, format)
	if err != nil {
		return err
	}

	switch command {
	case "down":
		return migrateDown(ctx, provider, version, format, out)
	case "status":
		return migrateStatus(ctx, provider, format, out)
	case "check":
		return migrateCheck(ctx, provider, format, out)
	default:
		results, err := provider.Up(ctx)
		if err != nil {
			return err
		}
		return printResults(results, format, out)
	}
}

func newMigrationProvider(db *sql.DB, format string) (*goose.Provider, error) {
	var opts []goose.ProviderOption
	if format == "json" {
		opts = append(opts, goose.WithLogger(goose.NopLogger()))
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.EmbedMigrations, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create goose provider: %w", err)
	}

	return provider, nil
}

func migrateDown(ctx context.Context, provider *goose.Provider, version int64, format string, out io.Writer) error {
	if version >= 0 {
		results, err := provider.DownTo(ctx, version)
		if err != nil {
			return err
		}
		return printResults(results, format, out)
	}

	result, err := provider.Down(ctx)
	if err != nil {
		return err
	}

	return printResults([]*goose.MigrationResult{result}, format, out)
}

func printResults(results []*goose.MigrationResult, format string, out io.Writer) error {
	if format == "json" {
		if results == nil {
			results = []*goose.MigrationResult{}
		}
		return json.NewEncoder(out).Encode(map[string]any{"applied": results})
	}

	for _, r := range results {
		fmt.Fprintf(out, "%-4s %s (%s)\n", r.Direction, r.Source.Path, r.Duration)
	}

	return nil
}

func migrateStatus(ctx context.Context, provider *goose.Provider, format string, out io.Writer) error {
	statuses, err := provider.Status(ctx)
	if err != nil {
		return err
	}

	if format == "json" {
		return json.NewEncoder(out).Encode(statuses)
	}

	fmt.Fprintln(out, "    Applied At                  Migration")
	fmt.Fprintln(out, "    =======================================")
	for _, s := range statuses {
		appliedAt := "Pending"
		if s.State == goose.StateApplied {
			appliedAt = s.AppliedAt.Format(time.RFC3339)
		}
		fmt.Fprintf(out, "    %-24s -- %s\n", appliedAt, s.Source.Path)
	}

	return nil
}

func migrateCheck(ctx context.Context, provider *goose.Provider, format string, out io.Writer) error {
	pending, err := provider.HasPending(ctx)
	if err != nil {
		return fmt.Errorf("failed to check pending migrations: %w", err)
	}

	current, err := provider.GetDBVersion(ctx)
	if err != nil {
		return fmt.Errorf("failed to get the database version: %w", err)
	}

	if format == "json" {
		status := "ok"
		if pending {
			status = "pending"
		}
		return json.NewEncoder(out).Encode(map[string]any{"status": status, "version": current})
	}

	if pending {
		return fmt.Errorf("migrations are pending: current version %d", current)
	}

	fmt.Fprintf(out, "Database is up to date (version %d)\n", current)
	return nil
}
