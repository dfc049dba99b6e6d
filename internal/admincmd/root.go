// Package admincmd implements bizadmin, the operator CLI for schema migrations,
// the role catalog and bootstrap users.
package admincmd

import (
	"context"
	"log/slog"

	"github.com/SscSPs/bizdesk/internal/platform/config"
	"github.com/spf13/cobra"
)

// loadConfig is replaced in tests.
var loadConfig = config.LoadConfig

// NewRootCommand builds the bizadmin command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "bizadmin",
		Short: "Operator tooling for the BizDesk backend",
		Long: `bizadmin manages the BizDesk database schema, inspects the role catalog
and bootstraps users. Database settings are read from the same environment
variables (or .env file) as the server.`,
		SilenceUsage: true,
	}

	root.AddCommand(newMigrateCommand())
	root.AddCommand(newRolesCommand())
	root.AddCommand(newHashPasswordCommand())
	root.AddCommand(newUserCommand())
	return root
}

// ExecuteContext runs the command tree.
func ExecuteContext(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

func cliLogger(cmd *cobra.Command) *slog.Logger {
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelInfo}))
}
