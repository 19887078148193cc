package cmd

import (
	"storefront/pkg/database"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:       "migrate [up|down]",
	Short:     "Apply or roll back the schema migrations",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{string(database.Up), string(database.Down)},
	RunE: func(cmd *cobra.Command, args []string) error {
		config, logger, err := bootstrap()
		if err != nil {
			return err
		}
		defer logger.Sync()

		return database.Migrate(config.Database, database.Direction(args[0]), logger)
	},
}
