package repository

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/MikeRez0/studiodesk/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// ResolveClient reads the catalog's clients table.
func (r *Repository) ResolveClient(ctx context.Context, clientID uint64) (*domain.Client, error) {
	statement := r.db.QueryBuilder.
		Select("id", "name", "phone").
		From("clients").
		Where(sq.Eq{"id": clientID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	client := domain.Client{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&client.ID,
		&client.Name,
		&client.Phone,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUnknownClient
		}
		return nil, err
	}

	return &client, nil
}

// ResolveService reads the catalog's services table.
func (r *Repository) ResolveService(ctx context.Context, serviceID uint64) (*domain.Service, error) {
	statement := r.db.QueryBuilder.
		Select("id", "title", "unit").
		From("services").
		Where(sq.Eq{"id": serviceID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	service := domain.Service{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&service.ID,
		&service.Title,
		&service.Unit,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUnknownService
		}
		return nil, err
	}

	return &service, nil
}
