package port

import (
	"context"
	"time"

	"github.com/MikeRez0/studiodesk/internal/core/domain"
)

//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock
type Repository interface {
	// Order
	CreateOrder(ctx context.Context, order *domain.Order, admitFn AdmitOrderFn) (*domain.Order, error)
	ReadOrder(ctx context.Context, orderID uint64) (*domain.Order, error)
	ReadOrderWithLines(ctx context.Context, orderID uint64) (*domain.Order, error)
	UpdateOrder(ctx context.Context, orderID uint64, updateFn UpdateOrderFn) (*domain.Order, error)
	DeleteOrder(ctx context.Context, orderID uint64) error
	ListOrders(ctx context.Context, filter domain.OrderFilter) ([]*domain.Order, error)
	CountOrdersByDates(ctx context.Context, realisation, delivery time.Time) (domain.CapacityUsage, error)

	// Order line
	UpsertLine(ctx context.Context, line *domain.OrderLine) (*domain.OrderLine, bool, error)
	DeleteLine(ctx context.Context, orderID uint64, serviceID uint64) error
	ListLines(ctx context.Context, orderID uint64) ([]*domain.OrderLine, error)
	ListAllLines(ctx context.Context) ([]*domain.OrderLine, error)

	// Statistics
	MonthlyRevenue(ctx context.Context) ([]*domain.MonthlyRevenue, error)

	Ping(ctx context.Context) error
}

// AdmitOrderFn is called inside the creating transaction with the number of
// orders already booked on the candidate dates. A non-nil error aborts the
// transaction before anything is written.
type AdmitOrderFn func(usage domain.CapacityUsage) error

// UpdateOrderFn edits the locked order in place. It sees the committed row and
// no concurrent update can land between the read and the write.
type UpdateOrderFn func(order *domain.Order) error
