package admincmd

import (
	"fmt"

	"github.com/SscSPs/bizdesk/internal/core/domain"
	portssvc "github.com/SscSPs/bizdesk/internal/core/ports/services"
	"github.com/SscSPs/bizdesk/internal/core/services"
	"github.com/SscSPs/bizdesk/internal/dto"
	"github.com/SscSPs/bizdesk/internal/notify"
	"github.com/SscSPs/bizdesk/internal/repositories/database/pgsql"
	"github.com/SscSPs/bizdesk/internal/roles"
	"github.com/SscSPs/bizdesk/pkg/database"
	"github.com/spf13/cobra"
)

// openUserService connects to the database and returns the user service plus a closer.
// It is replaced in tests.
var openUserService = func(cmd *cobra.Command) (portssvc.UserSvcFacade, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	pool, err := database.NewPgxPool(cmd.Context(), cfg.DatabaseURL, true)
	if err != nil {
		return nil, nil, err
	}
	repos := pgsql.NewRepositoryProvider(pool)
	svc := services.NewUserService(repos.UserRepo, roles.Default(),
		services.WithNotifier(notify.LogNotifier{Logger: cliLogger(cmd)}))
	return svc, func() { database.ClosePgxPool(pool) }, nil
}

func newUserCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage users directly in the database",
	}

	var name, email, role string
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a user, typically the first administrator",
		Long: `Create a user with a password read from stdin.

Example:
  printf 'correct horse' | bizadmin user create --email admin@example.com --name Admin --role admin`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			password, err := readLine(cmd)
			if err != nil {
				return err
			}
			svc, closeFn, err := openUserService(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			user, err := svc.CreateUser(cmd.Context(), dto.CreateUserRequest{
				Name:     name,
				Email:    email,
				Password: password,
				Role:     domain.RoleType(role),
			})
			if err != nil {
				return fmt.Errorf("failed to create user: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created user %s (%s) with role %s\n", user.UserID, user.Email, user.Role)
			return nil
		},
	}
	create.Flags().StringVar(&name, "name", "", "display name")
	create.Flags().StringVar(&email, "email", "", "login email")
	create.Flags().StringVar(&role, "role", string(domain.RoleAdmin), "role type from the catalog")
	_ = create.MarkFlagRequired("name")
	_ = create.MarkFlagRequired("email")

	cmd.AddCommand(create)
	return cmd
}
