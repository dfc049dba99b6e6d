package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/SscSPs/bizdesk/internal/apperrors"
	"github.com/SscSPs/bizdesk/internal/core/domain"
	portsrepo "github.com/SscSPs/bizdesk/internal/core/ports/repositories"
	"github.com/SscSPs/bizdesk/internal/models"
	"github.com/SscSPs/bizdesk/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxUserRepository stores users across two tables: profiles and user_roles.
type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(pool *pgxpool.Pool) *PgxUserRepository {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

const profileColumns = `p.user_id, p.name, p.email, p.status, p.avatar_url, p.password_hash, p.last_login_at, p.created_at, p.updated_at`

const userWithRoleSelectQuery = `
SELECT ` + profileColumns + `, COALESCE(r.role, '') AS role
FROM profiles p
LEFT JOIN user_roles r ON r.user_id = p.user_id
`

func (r *PgxUserRepository) FindProfiles(ctx context.Context, limit int) ([]domain.User, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles p ORDER BY p.name LIMIT $1`
	rows, err := r.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, translateError("query profiles", err)
	}
	profiles, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Profile])
	if err != nil {
		return nil, translateError("collect profile rows", err)
	}
	return mapping.ToDomainUserSlice(profiles), nil
}

func (r *PgxUserRepository) FindRoleAssignments(ctx context.Context, userIDs []string) (map[string]domain.RoleType, error) {
	assignments := make(map[string]domain.RoleType, len(userIDs))
	if len(userIDs) == 0 {
		return assignments, nil
	}
	rows, err := r.Pool.Query(ctx, `SELECT user_id, role, created_at, updated_at FROM user_roles WHERE user_id = ANY($1)`, userIDs)
	if err != nil {
		return nil, translateError("query user roles", err)
	}
	roles, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.UserRole])
	if err != nil {
		return nil, translateError("collect user role rows", err)
	}
	for _, ur := range roles {
		assignments[ur.UserID] = domain.RoleType(ur.Role)
	}
	return assignments, nil
}

func (r *PgxUserRepository) findOne(ctx context.Context, filterQuery string, args ...any) (*domain.User, error) {
	rows, err := r.Pool.Query(ctx, userWithRoleSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, translateError("query user", err)
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.ProfileWithRole])
	if err != nil {
		return nil, translateError("collect user row", err)
	}
	user := mapping.ToDomainUserWithRole(row)
	return &user, nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.findOne(ctx, `WHERE p.user_id = $1`, userID)
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, `WHERE lower(p.email) = lower($1)`, email)
}

// SaveUser inserts the profile and its role assignment in one transaction.
func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) (err error) {
	m := mapping.ToModelProfile(user)
	role := user.Role
	if role == "" {
		role = domain.DefaultRole
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = r.Rollback(ctx, tx)
		}
	}()

	_, err = tx.Exec(ctx, `
		INSERT INTO profiles (user_id, name, email, status, avatar_url, password_hash, last_login_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`, m.UserID, m.Name, m.Email, m.Status, m.AvatarURL, m.PasswordHash, m.LastLoginAt, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		return translateError("insert profile", err)
	}
	if err = upsertRole(ctx, tx, user.UserID, role, m.CreatedAt); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

func (r *PgxUserRepository) UpdateUser(ctx context.Context, userID string, patch domain.UserPatch, now time.Time) error {
	var b updateBuilder
	setIf(&b, "name", patch.Name)
	setIf(&b, "email", patch.Email)
	setIf(&b, "status", patch.Status)
	setNullable(&b, "avatar_url", patch.AvatarURL)
	if b.empty() {
		return nil
	}
	b.set("updated_at", now)

	query, args := b.build("profiles", "user_id", userID)
	tag, err := r.Pool.Exec(ctx, query, args...)
	return expectOne(tag, err, "update profile")
}

func (r *PgxUserRepository) RecordLogin(ctx context.Context, userID string, at time.Time) error {
	tag, err := r.Pool.Exec(ctx, `UPDATE profiles SET last_login_at = $1, updated_at = $1 WHERE user_id = $2`, at, userID)
	return expectOne(tag, err, "record login")
}

// UpsertUserRole inserts or replaces the assignment in a single statement.
func (r *PgxUserRepository) UpsertUserRole(ctx context.Context, userID string, role domain.RoleType, now time.Time) error {
	return upsertRole(ctx, r.Pool, userID, role, now)
}

func upsertRole(ctx context.Context, db DBTX, userID string, role domain.RoleType, now time.Time) error {
	query := `
		INSERT INTO user_roles (user_id, role, created_at, updated_at)
		VALUES ($1, $2, $3, $3)
		ON CONFLICT (user_id) DO UPDATE SET
			role = EXCLUDED.role,
			updated_at = EXCLUDED.updated_at;
	`
	_, err := db.Exec(ctx, query, userID, string(role), now)
	if err != nil {
		err = translateError("upsert user role", err)
		if errors.Is(err, apperrors.ErrInvalidReference) {
			return apperrors.ErrNotFound
		}
		return err
	}
	return nil
}

// DeleteUser removes the profile; the role assignment cascades.
func (r *PgxUserRepository) DeleteUser(ctx context.Context, userID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM profiles WHERE user_id = $1`, userID)
	return expectOne(tag, err, "delete profile")
}

func (r *PgxUserRepository) DeleteUsers(ctx context.Context, userIDs []string) (int64, error) {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM profiles WHERE user_id = ANY($1)`, userIDs)
	if err != nil {
		return 0, translateError("delete profiles", err)
	}
	return tag.RowsAffected(), nil
}

func (r *PgxUserRepository) UpdateUsersStatus(ctx context.Context, userIDs []string, status domain.UserStatus, now time.Time) (int64, error) {
	tag, err := r.Pool.Exec(ctx, `UPDATE profiles SET status = $1, updated_at = $2 WHERE user_id = ANY($3)`, string(status), now, userIDs)
	if err != nil {
		return 0, translateError("update profile status", err)
	}
	return tag.RowsAffected(), nil
}
