package main

import (
	"github.com/spf13/cobra"

	"github.com/rafabene/yamdb-backend/internal/infrastructure/persistence/gormdb"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Cria ou atualiza o schema do banco",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap()
		if err != nil {
			return err
		}
		defer a.close()

		if err := gormdb.Migrate(a.db); err != nil {
			return err
		}
		a.logger.Info("database migrated", "driver", a.cfg.Database.Driver)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
