package main

import (
	"github.com/alexpadev/trainR/internal/cli"
	"github.com/alexpadev/trainR/internal/db"
	"github.com/alexpadev/trainR/internal/services"
	"github.com/spf13/cobra"
)

var seedCatalogFile string

var seedCatalogCmd = &cobra.Command{
	Use:   "seed-catalog",
	Short: "Load muscle groups and exercises into an empty catalog",
	Long: `Load a YAML catalog into the database when it has no muscle groups yet.
Without --file the built-in catalog is used.

FILE FORMAT:

  - name: Chest
    category: upper
    exercises:
      - name: Bench press
        description: Flat barbell press`,
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

		catalog := services.NewCatalogService(db.NewCatalogRepository(database))
		return cli.RunSeedCatalog(cmd.Context(), catalog, seedCatalogFile, cmd.OutOrStdout())
	},
}

func init() {
	seedCatalogCmd.Flags().StringVarP(&seedCatalogFile, "file", "f", "", "YAML catalog file (default: built-in catalog)")
	rootCmd.AddCommand(seedCatalogCmd)
}
