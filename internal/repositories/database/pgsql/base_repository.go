package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/bizdesk/internal/apperrors"
	portsrepo "github.com/SscSPs/bizdesk/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DBTX is satisfied by both the pool and a transaction.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

var _ portsrepo.TransactionManager = (*BaseRepository)(nil)

// Begin starts a new database transaction
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, apperrors.Backend("begin transaction", err)
	}
	return tx, nil
}

// Commit commits a transaction
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return translateError("commit transaction", err)
	}
	return nil
}

// Rollback rolls back a transaction
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return apperrors.Backend("rollback transaction", err)
	}
	return nil
}

// translateError maps driver errors onto the application sentinels.
// Anything unrecognised is passed through as a backend error.
func translateError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%w: %s", apperrors.ErrDuplicate, constraintSubject(pgErr))
		case "23503": // foreign_key_violation
			return fmt.Errorf("%w: %s", apperrors.ErrInvalidReference, constraintSubject(pgErr))
		case "23514", "23502": // check_violation, not_null_violation
			return fmt.Errorf("%w: %s", apperrors.ErrValidation, pgErr.Message)
		}
	}
	return apperrors.Backend(op, err)
}

func constraintSubject(pgErr *pgconn.PgError) string {
	if pgErr.Detail != "" {
		return pgErr.Detail
	}
	return pgErr.ConstraintName
}

// expectOne turns a zero-row command into ErrNotFound.
func expectOne(tag pgconn.CommandTag, err error, op string) error {
	if err != nil {
		return translateError(op, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// updateBuilder assembles an UPDATE that only touches the provided columns.
type updateBuilder struct {
	sets []string
	args []any
}

func (b *updateBuilder) set(col string, v any) {
	b.args = append(b.args, v)
	b.sets = append(b.sets, fmt.Sprintf("%s = $%d", col, len(b.args)))
}

func setIf[T any](b *updateBuilder, col string, v *T) {
	if v != nil {
		b.set(col, *v)
	}
}

// setNullable writes NULL for an explicitly blank string.
func setNullable(b *updateBuilder, col string, v *string) {
	if v == nil {
		return
	}
	if strings.TrimSpace(*v) == "" {
		b.set(col, nil)
		return
	}
	b.set(col, *v)
}

func (b *updateBuilder) empty() bool {
	return len(b.sets) == 0
}

func (b *updateBuilder) build(table, keyCol string, key any) (string, []any) {
	args := append(b.args, key)
	return fmt.Sprintf("UPDATE %s SET %s WHERE %s = $%d", table, strings.Join(b.sets, ", "), keyCol, len(args)), args
}
