package repository

import (
	"context"

	"github.com/MikeRez0/studiodesk/internal/core/domain"
)

// MonthlyRevenue sums quantity * unit_price per month of the order date,
// newest month first.
func (r *Repository) MonthlyRevenue(ctx context.Context) ([]*domain.MonthlyRevenue, error) {
	statement := r.db.QueryBuilder.
		Select(
			"EXTRACT(YEAR FROM o.order_date)::int AS year",
			"EXTRACT(MONTH FROM o.order_date)::int AS month",
			"SUM(l.quantity * l.unit_price) AS revenue",
		).
		From("orders o").
		Join("order_lines l ON l.order_id = o.id").
		GroupBy("year", "month").
		OrderBy("year DESC", "month DESC")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.MonthlyRevenue, 0)
	for rows.Next() {
		item := domain.MonthlyRevenue{}
		err := rows.Scan(&item.Year, &item.Month, &item.Revenue)
		if err != nil {
			return nil, err
		}
		list = append(list, &item)
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}

	return list, nil
}
