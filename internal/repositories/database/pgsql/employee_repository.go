package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/bizdesk/internal/apperrors"
	"github.com/SscSPs/bizdesk/internal/core/domain"
	portsrepo "github.com/SscSPs/bizdesk/internal/core/ports/repositories"
	"github.com/SscSPs/bizdesk/internal/models"
	"github.com/SscSPs/bizdesk/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxEmployeeRepository struct {
	BaseRepository
}

func newPgxEmployeeRepository(pool *pgxpool.Pool) *PgxEmployeeRepository {
	return &PgxEmployeeRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.EmployeeRepositoryFacade = (*PgxEmployeeRepository)(nil)

const employeeSelectQuery = `
SELECT
	employee_id, first_name, last_name, email, phone, address, date_of_birth, gender,
	department_id, position, employment_type, employment_status, hire_date,
	salary, currency, payment_frequency, notes, created_at, updated_at
FROM employees
`

func (r *PgxEmployeeRepository) getEmployees(ctx context.Context, filterQuery string, args ...any) ([]domain.Employee, error) {
	rows, err := r.Pool.Query(ctx, employeeSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, translateError("query employees", err)
	}
	employees, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Employee])
	if err != nil {
		return nil, translateError("collect employee rows", err)
	}
	return mapping.ToDomainEmployeeSlice(employees), nil
}

func (r *PgxEmployeeRepository) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	return r.getEmployees(ctx, `ORDER BY last_name, first_name`)
}

func (r *PgxEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	employees, err := r.getEmployees(ctx, `WHERE employee_id = $1`, employeeID)
	if err != nil {
		return nil, err
	}
	if len(employees) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &employees[0], nil
}

func (r *PgxEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	m := mapping.ToModelEmployee(employee)
	query := `
		INSERT INTO employees (
			employee_id, first_name, last_name, email, phone, address, date_of_birth, gender,
			department_id, position, employment_type, employment_status, hire_date,
			salary, currency, payment_frequency, notes, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.EmployeeID, m.FirstName, m.LastName, m.Email, m.Phone, m.Address, m.DateOfBirth, m.Gender,
		m.DepartmentID, m.Position, m.EmploymentType, m.EmploymentStatus, m.HireDate,
		m.Salary, m.Currency, m.PaymentFrequency, m.Notes, m.CreatedAt, m.UpdatedAt,
	)
	return translateError("insert employee", err)
}

func (r *PgxEmployeeRepository) UpdateEmployee(ctx context.Context, employeeID string, patch domain.EmployeePatch, now time.Time) error {
	var b updateBuilder
	setIf(&b, "first_name", patch.FirstName)
	setIf(&b, "last_name", patch.LastName)
	setIf(&b, "email", patch.Email)
	setNullable(&b, "phone", patch.Phone)
	setNullable(&b, "address", patch.Address)
	setIf(&b, "date_of_birth", patch.DateOfBirth)
	setNullable(&b, "gender", patch.Gender)
	setNullable(&b, "department_id", patch.DepartmentID)
	setIf(&b, "position", patch.Position)
	setIf(&b, "employment_type", patch.EmploymentType)
	setIf(&b, "employment_status", patch.EmploymentStatus)
	setIf(&b, "hire_date", patch.HireDate)
	setIf(&b, "salary", patch.Salary)
	setIf(&b, "currency", patch.Currency)
	setIf(&b, "payment_frequency", patch.PaymentFrequency)
	setNullable(&b, "notes", patch.Notes)
	if b.empty() {
		return nil
	}
	b.set("updated_at", now)

	query, args := b.build("employees", "employee_id", employeeID)
	tag, err := r.Pool.Exec(ctx, query, args...)
	return expectOne(tag, err, "update employee")
}

func (r *PgxEmployeeRepository) DeleteEmployee(ctx context.Context, employeeID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM employees WHERE employee_id = $1`, employeeID)
	return expectOne(tag, err, "delete employee")
}

func (r *PgxEmployeeRepository) UpdateEmployeesStatus(ctx context.Context, employeeIDs []string, status domain.EmploymentStatus, now time.Time) (int64, error) {
	tag, err := r.Pool.Exec(ctx, `UPDATE employees SET employment_status = $1, updated_at = $2 WHERE employee_id = ANY($3)`, string(status), now, employeeIDs)
	if err != nil {
		return 0, translateError("update employee status", err)
	}
	return tag.RowsAffected(), nil
}
