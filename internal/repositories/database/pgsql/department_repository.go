package pgsql

import (
	"context"

	"github.com/SscSPs/bizdesk/internal/apperrors"
	"github.com/SscSPs/bizdesk/internal/core/domain"
	portsrepo "github.com/SscSPs/bizdesk/internal/core/ports/repositories"
	"github.com/SscSPs/bizdesk/internal/models"
	"github.com/SscSPs/bizdesk/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxDepartmentRepository struct {
	BaseRepository
}

func newPgxDepartmentRepository(pool *pgxpool.Pool) *PgxDepartmentRepository {
	return &PgxDepartmentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.DepartmentRepositoryFacade = (*PgxDepartmentRepository)(nil)

const departmentSelectQuery = `SELECT department_id, name, code, created_at FROM departments `

func (r *PgxDepartmentRepository) getDepartments(ctx context.Context, filterQuery string, args ...any) ([]domain.Department, error) {
	rows, err := r.Pool.Query(ctx, departmentSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, translateError("query departments", err)
	}
	departments, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Department])
	if err != nil {
		return nil, translateError("collect department rows", err)
	}
	return mapping.ToDomainDepartmentSlice(departments), nil
}

func (r *PgxDepartmentRepository) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	return r.getDepartments(ctx, `ORDER BY name`)
}

func (r *PgxDepartmentRepository) FindDepartmentByID(ctx context.Context, departmentID string) (*domain.Department, error) {
	departments, err := r.getDepartments(ctx, `WHERE department_id = $1`, departmentID)
	if err != nil {
		return nil, err
	}
	if len(departments) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &departments[0], nil
}

func (r *PgxDepartmentRepository) SaveDepartment(ctx context.Context, department domain.Department) error {
	m := mapping.ToModelDepartment(department)
	_, err := r.Pool.Exec(ctx,
		`INSERT INTO departments (department_id, name, code, created_at) VALUES ($1, $2, $3, $4)`,
		m.DepartmentID, m.Name, m.Code, m.CreatedAt,
	)
	return translateError("insert department", err)
}

func (r *PgxDepartmentRepository) UpdateDepartment(ctx context.Context, departmentID string, patch domain.DepartmentPatch) error {
	var b updateBuilder
	setIf(&b, "name", patch.Name)
	setIf(&b, "code", patch.Code)
	if b.empty() {
		return nil
	}
	query, args := b.build("departments", "department_id", departmentID)
	tag, err := r.Pool.Exec(ctx, query, args...)
	return expectOne(tag, err, "update department")
}

// DeleteDepartment removes the department; employees referencing it keep a NULL department.
func (r *PgxDepartmentRepository) DeleteDepartment(ctx context.Context, departmentID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM departments WHERE department_id = $1`, departmentID)
	return expectOne(tag, err, "delete department")
}
