package main

import (
	"fmt"

	"github.com/alexpadev/trainR/internal/db"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	Long: `Apply the embedded SQL migrations for the configured driver and list
the versions recorded in schema_migrations. Running it twice is harmless.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, logger, err := loadConfig(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		database, err := openDatabase(cfg, logger)
		if err != nil {
			return err
		}
		defer closeDatabase(database, logger)

		versions, err := db.AppliedMigrationVersions(database)
		if err != nil {
			return fmt.Errorf("list migrations: %w", err)
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s schema is up to date (%d migrations)\n", cfg.DBDriver, len(versions))
		for _, version := range versions {
			fmt.Fprintf(out, "  %s\n", version)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
