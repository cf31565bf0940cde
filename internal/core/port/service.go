package port

import (
	"context"
	"time"

	"github.com/MikeRez0/studiodesk/internal/core/domain"
)

type Service interface {
	CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	UpdateOrder(ctx context.Context, orderID uint64, patch domain.OrderPatch) (*domain.Order, error)
	DeleteOrder(ctx context.Context, orderID uint64) error
	ListOrders(ctx context.Context, filter domain.OrderFilter) ([]*domain.OrderView, error)
	CanAdmit(ctx context.Context, realisation, delivery time.Time) (domain.CapacityStatus, error)

	UpsertLine(ctx context.Context, line *domain.OrderLine) (*domain.OrderLine, bool, error)
	DeleteLine(ctx context.Context, orderID uint64, serviceID uint64) error
	ListLines(ctx context.Context, orderID uint64) ([]*domain.OrderLine, error)
	ListAllLines(ctx context.Context) ([]*domain.OrderLine, error)

	BuildInvoice(ctx context.Context, orderID uint64) (*domain.Invoice, error)
	ListInvoices(ctx context.Context, query string) ([]*domain.Invoice, error)

	MonthlyRevenue(ctx context.Context) ([]*domain.MonthlyRevenue, error)
}
