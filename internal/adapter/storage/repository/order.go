package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MikeRez0/studiodesk/internal/core/domain"
	"github.com/MikeRez0/studiodesk/internal/core/port"
	"github.com/jackc/pgx/v5"
)

var orderColumns = []string{"id", "order_date", "realisation_date", "delivery_date", "client_id"}

// Advisory lock namespaces for per-date admission.
const (
	lockRealisationDate int32 = 1
	lockDeliveryDate    int32 = 2
)

func scanOrder(row pgx.Row) (*domain.Order, error) {
	order := domain.Order{}
	err := row.Scan(
		&order.ID,
		&order.OrderDate,
		&order.RealisationDate,
		&order.DeliveryDate,
		&order.ClientID,
	)
	if err != nil {
		return nil, err
	}
	order.OrderDate = domain.Day(order.OrderDate)
	order.RealisationDate = domain.Day(order.RealisationDate)
	order.DeliveryDate = domain.Day(order.DeliveryDate)
	return &order, nil
}

// CreateOrder admits and inserts the order with its lines in one transaction.
// The per-date advisory locks serialise concurrent admissions on the same
// dates, so the count seen by admitFn cannot go stale before commit.
func (r *Repository) CreateOrder(ctx context.Context, order *domain.Order, admitFn port.AdmitOrderFn) (*domain.Order, error) {
	err := r.db.InTx(ctx, func(tx pgx.Tx) error {
		// realisation before delivery, always, so two admissions never wait on each other in a cycle
		if err := lockDate(ctx, tx, lockRealisationDate, order.RealisationDate); err != nil {
			return err
		}
		if err := lockDate(ctx, tx, lockDeliveryDate, order.DeliveryDate); err != nil {
			return err
		}

		usage, err := r.countOrdersByDates(ctx, tx, order.RealisationDate, order.DeliveryDate)
		if err != nil {
			return err
		}
		if err := admitFn(usage); err != nil {
			return err
		}

		orderSt := r.db.QueryBuilder.
			Insert("orders").
			Columns("order_date", "realisation_date", "delivery_date", "client_id").
			Values(order.OrderDate, order.RealisationDate, order.DeliveryDate, order.ClientID).
			Suffix("RETURNING id")

		sql, args, err := orderSt.ToSql()
		if err != nil {
			return err
		}

		err = tx.QueryRow(ctx, sql, args...).Scan(&order.ID)
		if err != nil {
			return err
		}

		for _, line := range order.Lines {
			line.OrderID = order.ID
			lineSt := r.db.QueryBuilder.
				Insert("order_lines").
				Columns("order_id", "service_id", "quantity", "unit_price").
				Values(line.OrderID, line.ServiceID, line.Quantity, line.UnitPrice)

			sql, args, err := lineSt.ToSql()
			if err != nil {
				return err
			}

			_, err = tx.Exec(ctx, sql, args...)
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		order.ID = 0
		for _, line := range order.Lines {
			line.OrderID = 0
		}
		return nil, writeError(err)
	}

	return order, nil
}

func lockDate(ctx context.Context, tx pgx.Tx, namespace int32, day time.Time) error {
	_, err := tx.Exec(ctx, "SELECT pg_advisory_xact_lock($1, $2)", namespace, int32(day.Unix()/86400))
	return err
}

func (r *Repository) ReadOrder(ctx context.Context, orderID uint64) (*domain.Order, error) {
	return r.readOrder(ctx, r.db, orderID, "")
}

func (r *Repository) readOrder(ctx context.Context, q querier, orderID uint64, lock string) (*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": orderID})
	if lock != "" {
		statement = statement.Suffix(lock)
	}

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	order, err := scanOrder(q.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return order, nil
}

// ReadOrderWithLines reads the order row and its lines from one snapshot.
func (r *Repository) ReadOrderWithLines(ctx context.Context, orderID uint64) (*domain.Order, error) {
	var order *domain.Order
	err := r.db.InSnapshot(ctx, func(tx pgx.Tx) error {
		var err error
		order, err = r.readOrder(ctx, tx, orderID, "")
		if err != nil {
			return err
		}
		order.Lines, err = r.queryLines(ctx, tx, r.linesOfOrder(orderID))
		return err
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

// UpdateOrder locks the row, lets updateFn edit it and writes the mutable
// columns back before the lock is released.
func (r *Repository) UpdateOrder(ctx context.Context, orderID uint64, updateFn port.UpdateOrderFn) (*domain.Order, error) {
	var updated *domain.Order
	err := r.db.InTx(ctx, func(tx pgx.Tx) error {
		order, err := r.readOrder(ctx, tx, orderID, "FOR UPDATE")
		if err != nil {
			return err
		}

		if err := updateFn(order); err != nil {
			return err
		}

		statement := r.db.QueryBuilder.
			Update("orders").
			Set("realisation_date", order.RealisationDate).
			Set("delivery_date", order.DeliveryDate).
			Set("client_id", order.ClientID).
			Where(sq.Eq{"id": orderID}).
			Suffix("RETURNING " + strings.Join(orderColumns, ", "))

		sql, args, err := statement.ToSql()
		if err != nil {
			return err
		}

		updated, err = scanOrder(tx.QueryRow(ctx, sql, args...))
		return err
	})
	if err != nil {
		return nil, writeError(err)
	}

	return updated, nil
}

// DeleteOrder removes the lines and then the order in one transaction.
func (r *Repository) DeleteOrder(ctx context.Context, orderID uint64) error {
	err := r.db.InTx(ctx, func(tx pgx.Tx) error {
		linesSt := r.db.QueryBuilder.
			Delete("order_lines").
			Where(sq.Eq{"order_id": orderID})

		sql, args, err := linesSt.ToSql()
		if err != nil {
			return err
		}
		if _, err = tx.Exec(ctx, sql, args...); err != nil {
			return err
		}

		orderSt := r.db.QueryBuilder.
			Delete("orders").
			Where(sq.Eq{"id": orderID})

		sql, args, err = orderSt.ToSql()
		if err != nil {
			return err
		}
		tag, err := tx.Exec(ctx, sql, args...)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrDataNotFound
		}

		return nil
	})

	return writeError(err)
}

func (r *Repository) ListOrders(ctx context.Context, filter domain.OrderFilter) ([]*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns...).
		From("orders")

	if filter.ClientID != nil {
		statement = statement.Where(sq.Eq{"client_id": *filter.ClientID})
	}
	if filter.RealisationDate != nil {
		statement = statement.Where(sq.Eq{"realisation_date": *filter.RealisationDate})
	}
	if filter.DeliveryDate != nil {
		statement = statement.Where(sq.Eq{"delivery_date": *filter.DeliveryDate})
	}
	if filter.Ascending {
		statement = statement.OrderBy("order_date ASC", "id ASC")
	} else {
		statement = statement.OrderBy("order_date DESC", "id DESC")
	}

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, order)
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}

	return list, nil
}

func (r *Repository) CountOrdersByDates(ctx context.Context, realisation, delivery time.Time) (domain.CapacityUsage, error) {
	return r.countOrdersByDates(ctx, r.db, realisation, delivery)
}

func (r *Repository) countOrdersByDates(ctx context.Context, q querier,
	realisation, delivery time.Time) (domain.CapacityUsage, error) {
	statement := r.db.QueryBuilder.
		Select().
		Column(sq.Expr("COUNT(*) FILTER (WHERE realisation_date = ?)", realisation)).
		Column(sq.Expr("COUNT(*) FILTER (WHERE delivery_date = ?)", delivery)).
		From("orders").
		Where(sq.Or{
			sq.Eq{"realisation_date": realisation},
			sq.Eq{"delivery_date": delivery},
		})

	sql, args, err := statement.ToSql()
	if err != nil {
		return domain.CapacityUsage{}, err
	}

	var realisationCount, deliveryCount int64
	err = q.QueryRow(ctx, sql, args...).Scan(&realisationCount, &deliveryCount)
	if err != nil {
		return domain.CapacityUsage{}, err
	}

	return domain.CapacityUsage{
		Realisation: int(realisationCount),
		Delivery:    int(deliveryCount),
	}, nil
}
