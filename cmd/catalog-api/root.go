package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "catalog-api",
	Short: "Catalog API: products and projects over HTTP",
	Long: `catalog-api serves CRUD endpoints for products and projects backed by
PostgreSQL, plus the project payment action. Configuration is read from
CATALOG_-prefixed environment variables (and a .env file when present).`,
	SilenceUsage: true,
}
