package pgsql

import (
	portsrepo "github.com/SscSPs/bizdesk/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:    newPgxAccountRepository(dbPool),
		UserRepo:       newPgxUserRepository(dbPool),
		VendorRepo:     newPgxVendorRepository(dbPool),
		DepartmentRepo: newPgxDepartmentRepository(dbPool),
		EmployeeRepo:   newPgxEmployeeRepository(dbPool),
	}
}
