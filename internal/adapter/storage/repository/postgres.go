package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/MikeRez0/studiodesk/internal/adapter/storage"
	"github.com/MikeRez0/studiodesk/internal/core/domain"
	"github.com/MikeRez0/studiodesk/internal/core/port"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	_ port.Repository = (*Repository)(nil)
	_ port.Catalog    = (*Repository)(nil)
)

type Repository struct {
	db *storage.DB
}

func NewRepository(db *storage.DB) (*Repository, error) {
	return &Repository{db: db}, nil
}

// querier is satisfied by both the pool and a transaction.
type querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func (r *Repository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

// writeError classifies an error coming out of a write. Domain errors pass
// through; anything else from the store is a transaction failure.
func writeError(err error) error {
	if err == nil {
		return nil
	}

	var capErr *domain.CapacityError
	if errors.As(err, &capErr) {
		return err
	}
	if errors.Is(err, domain.ErrDataNotFound) || errors.Is(err, domain.ErrValidation) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return domain.ErrConflictingData
		case pgerrcode.ForeignKeyViolation:
			return domain.ErrUnknownOrder
		case pgerrcode.CheckViolation:
			return fmt.Errorf("%w: %s", domain.ErrValidation, pgErr.ConstraintName)
		case pgerrcode.NumericValueOutOfRange:
			return domain.ErrPriceTooLarge
		}
	}

	return fmt.Errorf("%w: %w", domain.ErrTransactionFailure, err)
}
