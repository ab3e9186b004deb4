package main

import (
	"fmt"

	"github.com/deppfellow/catalog-api/internal/config"
	"github.com/deppfellow/catalog-api/internal/database"
	"github.com/deppfellow/catalog-api/internal/logger"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE:  runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.NewLogger(cfg.Observability)

	return database.Migrate(cmd.Context(), &log, cfg)
}
