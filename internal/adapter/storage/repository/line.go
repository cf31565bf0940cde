package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/MikeRez0/studiodesk/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

var lineColumns = []string{"order_id", "service_id", "quantity", "unit_price"}

func scanLine(row pgx.Row) (*domain.OrderLine, error) {
	line := domain.OrderLine{}
	err := row.Scan(
		&line.OrderID,
		&line.ServiceID,
		&line.Quantity,
		&line.UnitPrice,
	)
	if err != nil {
		return nil, err
	}
	return &line, nil
}

// UpsertLine relies on the (order_id, service_id) primary key: a second write
// for the same pair updates the existing row. xmax is zero only on a freshly
// inserted tuple, which tells the two cases apart.
func (r *Repository) UpsertLine(ctx context.Context, line *domain.OrderLine) (*domain.OrderLine, bool, error) {
	statement := r.db.QueryBuilder.
		Insert("order_lines").
		Columns(lineColumns...).
		Values(line.OrderID, line.ServiceID, line.Quantity, line.UnitPrice).
		Suffix("ON CONFLICT (order_id, service_id) DO UPDATE " +
			"SET quantity = EXCLUDED.quantity, unit_price = EXCLUDED.unit_price " +
			"RETURNING order_id, service_id, quantity, unit_price, (xmax = 0) AS inserted")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, false, err
	}

	saved := domain.OrderLine{}
	var created bool
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&saved.OrderID,
		&saved.ServiceID,
		&saved.Quantity,
		&saved.UnitPrice,
		&created,
	)
	if err != nil {
		return nil, false, writeError(err)
	}

	return &saved, created, nil
}

func (r *Repository) DeleteLine(ctx context.Context, orderID uint64, serviceID uint64) error {
	statement := r.db.QueryBuilder.
		Delete("order_lines").
		Where(sq.Eq{"order_id": orderID, "service_id": serviceID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return writeError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDataNotFound
	}

	return nil
}

func (r *Repository) ListLines(ctx context.Context, orderID uint64) ([]*domain.OrderLine, error) {
	return r.queryLines(ctx, r.db, r.linesOfOrder(orderID))
}

func (r *Repository) linesOfOrder(orderID uint64) sq.SelectBuilder {
	return r.db.QueryBuilder.
		Select(lineColumns...).
		From("order_lines").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("service_id ASC")
}

func (r *Repository) ListAllLines(ctx context.Context) ([]*domain.OrderLine, error) {
	statement := r.db.QueryBuilder.
		Select(lineColumns...).
		From("order_lines").
		OrderBy("order_id DESC", "service_id ASC")

	return r.queryLines(ctx, r.db, statement)
}

func (r *Repository) queryLines(ctx context.Context, q querier, statement sq.SelectBuilder) ([]*domain.OrderLine, error) {
	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.OrderLine, 0)
	for rows.Next() {
		line, err := scanLine(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, line)
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}

	return list, nil
}
