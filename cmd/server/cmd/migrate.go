package cmd

import (
	"github.com/spf13/cobra"

	"travelplanner/internal/infrastructure/migration"
)

var migrateDown bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Применить миграции схемы",
	RunE: func(_ *cobra.Command, _ []string) error {
		m := migration.NewMigration(cfg, nil, log)
		if migrateDown {
			return m.Down()
		}
		return m.Up()
	},
}

func init() {
	migrateCmd.Flags().BoolVar(&migrateDown, "down", false, "откатить все миграции")
}
