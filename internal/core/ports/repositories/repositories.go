package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// RepositoryProvider holds every repository the service container wires.
type RepositoryProvider struct {
	AccountRepo    AccountRepositoryFacade
	UserRepo       UserRepositoryFacade
	VendorRepo     VendorRepositoryFacade
	DepartmentRepo DepartmentRepositoryFacade
	EmployeeRepo   EmployeeRepositoryFacade
}

// TransactionManager is implemented by repositories whose writes span tables,
// such as a profile and its role assignment.
type TransactionManager interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Commit(ctx context.Context, tx pgx.Tx) error
	Rollback(ctx context.Context, tx pgx.Tx) error
}
