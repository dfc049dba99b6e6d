package admincmd

import (
	"fmt"

	"github.com/SscSPs/bizdesk/pkg/database"
	"github.com/spf13/cobra"
)

// runMigrations is replaced in tests.
var runMigrations = database.RunMigrations

func newMigrateCommand() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "migrate [up|down]",
		Short: "Apply or roll back schema migrations",
		Long: `Apply every pending migration (up) or roll back the most recent one (down).

Examples:
  bizadmin migrate up
  bizadmin migrate down --path file://migrations`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(database.MigrateUp), string(database.MigrateDown)},
		RunE: func(cmd *cobra.Command, args []string) error {
			direction := database.MigrateDirection(args[0])
			if direction != database.MigrateUp && direction != database.MigrateDown {
				return fmt.Errorf("unknown direction %q, want up or down", args[0])
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if path == "" {
				path = cfg.MigrationsPath
			}
			if err := runMigrations(cfg.DatabaseURL, path, direction, cliLogger(cmd)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "migrations %s: done\n", direction)
			return nil
		},
	}
	cmd.Flags().StringVar(&path, "path", "", "migrations source URL (defaults to MIGRATIONS_PATH)")
	return cmd
}
