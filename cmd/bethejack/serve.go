package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/bethejack/internal/generation"
	"github.com/jonathan/bethejack/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server that exposes REST endpoints for generating, editing and
rendering drafts and for managing profiles. Drafts are kept in memory unless a
database is configured with --db-url or DATABASE_URL.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "Port to listen on (default 8080)")
	serveCmd.Flags().String("profile-dir", "", "Directory of profile JSON files")
	serveCmd.Flags().String("db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	serveCmd.Flags().String("name", "", "Default display name drawn as the title")
	addModelFlags(serveCmd)
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	discover, _ := cmd.Flags().GetBool("discover-models")
	client, err := newClient(ctx, cfg, discover)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	srv, err := server.New(ctx, server.Config{
		Port:        cfg.Port,
		DatabaseURL: cfg.DatabaseURL,
		ProfileDir:  cfg.ProfileDir,
		DisplayName: cfg.DisplayName,
		Drafter:     generation.New(client),
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start(ctx)
}
