package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/MikeRez0/studiodesk/internal/core/domain"
	"github.com/MikeRez0/studiodesk/internal/core/port"
)

var _ port.Repository = (*Repository)(nil)

// Repository keeps orders and lines in process memory. A single mutex makes
// every call atomic; multi-row writes are staged and published only on success.
type Repository struct {
	mu     sync.RWMutex
	nextID uint64
	orders map[uint64]domain.Order
	lines  map[domain.LineKey]domain.OrderLine
}

func NewRepository() *Repository {
	return &Repository{
		nextID: 1,
		orders: make(map[uint64]domain.Order),
		lines:  make(map[domain.LineKey]domain.OrderLine),
	}
}

func (r *Repository) Ping(context.Context) error {
	return nil
}

func (r *Repository) CreateOrder(_ context.Context, order *domain.Order, admitFn port.AdmitOrderFn) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := admitFn(r.countOrdersByDates(order.RealisationDate, order.DeliveryDate)); err != nil {
		return nil, err
	}

	id := r.nextID
	staged := make(map[domain.LineKey]domain.OrderLine, len(order.Lines))
	for _, l := range order.Lines {
		line := *l
		line.OrderID = id
		if _, exists := staged[line.Key()]; exists {
			return nil, domain.ErrConflictingData
		}
		staged[line.Key()] = line
	}

	r.nextID++
	stored := *order
	stored.ID = id
	stored.Lines = nil
	r.orders[id] = stored
	for k, l := range staged {
		r.lines[k] = l
	}

	order.ID = id
	for _, l := range order.Lines {
		l.OrderID = id
	}
	return order, nil
}

func (r *Repository) ReadOrder(_ context.Context, orderID uint64) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[orderID]
	if !ok {
		return nil, domain.ErrDataNotFound
	}
	return &order, nil
}

// ReadOrderWithLines returns the order and its lines under one read lock.
func (r *Repository) ReadOrderWithLines(_ context.Context, orderID uint64) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[orderID]
	if !ok {
		return nil, domain.ErrDataNotFound
	}
	order.Lines = r.linesOf(orderID)
	return &order, nil
}

func (r *Repository) UpdateOrder(_ context.Context, orderID uint64, updateFn port.UpdateOrderFn) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.orders[orderID]
	if !ok {
		return nil, domain.ErrDataNotFound
	}

	edited := current
	if err := updateFn(&edited); err != nil {
		return nil, err
	}
	current.RealisationDate = edited.RealisationDate
	current.DeliveryDate = edited.DeliveryDate
	current.ClientID = edited.ClientID
	r.orders[orderID] = current

	return &current, nil
}

func (r *Repository) DeleteOrder(_ context.Context, orderID uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[orderID]; !ok {
		return domain.ErrDataNotFound
	}
	for k := range r.lines {
		if k.OrderID == orderID {
			delete(r.lines, k)
		}
	}
	delete(r.orders, orderID)

	return nil
}

func (r *Repository) ListOrders(_ context.Context, filter domain.OrderFilter) ([]*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Order, 0, len(r.orders))
	for _, o := range r.orders {
		if filter.ClientID != nil && o.ClientID != *filter.ClientID {
			continue
		}
		if filter.RealisationDate != nil && !o.RealisationDate.Equal(*filter.RealisationDate) {
			continue
		}
		if filter.DeliveryDate != nil && !o.DeliveryDate.Equal(*filter.DeliveryDate) {
			continue
		}
		order := o
		result = append(result, &order)
	}

	sort.Slice(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if filter.Ascending {
			a, b = b, a
		}
		if !a.OrderDate.Equal(b.OrderDate) {
			return a.OrderDate.After(b.OrderDate)
		}
		return a.ID > b.ID
	})

	return result, nil
}

func (r *Repository) CountOrdersByDates(_ context.Context, realisation, delivery time.Time) (domain.CapacityUsage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.countOrdersByDates(realisation, delivery), nil
}

func (r *Repository) countOrdersByDates(realisation, delivery time.Time) domain.CapacityUsage {
	usage := domain.CapacityUsage{}
	for _, o := range r.orders {
		if o.RealisationDate.Equal(realisation) {
			usage.Realisation++
		}
		if o.DeliveryDate.Equal(delivery) {
			usage.Delivery++
		}
	}
	return usage
}

// UpsertLine reports created == false when an existing line was overwritten.
func (r *Repository) UpsertLine(_ context.Context, line *domain.OrderLine) (*domain.OrderLine, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[line.OrderID]; !ok {
		return nil, false, domain.ErrUnknownOrder
	}
	_, exists := r.lines[line.Key()]
	r.lines[line.Key()] = *line

	saved := *line
	return &saved, !exists, nil
}

func (r *Repository) DeleteLine(_ context.Context, orderID uint64, serviceID uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := domain.LineKey{OrderID: orderID, ServiceID: serviceID}
	if _, ok := r.lines[key]; !ok {
		return domain.ErrDataNotFound
	}
	delete(r.lines, key)

	return nil
}

func (r *Repository) ListLines(_ context.Context, orderID uint64) ([]*domain.OrderLine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.linesOf(orderID), nil
}

func (r *Repository) linesOf(orderID uint64) []*domain.OrderLine {
	result := make([]*domain.OrderLine, 0)
	for k, l := range r.lines {
		if k.OrderID != orderID {
			continue
		}
		line := l
		result = append(result, &line)
	}
	sortLines(result)
	return result
}

func (r *Repository) ListAllLines(context.Context) ([]*domain.OrderLine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.OrderLine, 0, len(r.lines))
	for _, l := range r.lines {
		line := l
		result = append(result, &line)
	}
	sortLines(result)

	return result, nil
}

// sortLines orders by order id descending, then service id ascending.
func sortLines(lines []*domain.OrderLine) {
	sort.Slice(lines, func(i, j int) bool {
		if lines[i].OrderID != lines[j].OrderID {
			return lines[i].OrderID > lines[j].OrderID
		}
		return lines[i].ServiceID < lines[j].ServiceID
	})
}

func (r *Repository) MonthlyRevenue(context.Context) ([]*domain.MonthlyRevenue, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	type month struct{ year, month int }
	sums := make(map[month]*domain.MonthlyRevenue)
	for _, l := range r.lines {
		o, ok := r.orders[l.OrderID]
		if !ok {
			continue
		}
		key := month{year: o.OrderDate.Year(), month: int(o.OrderDate.Month())}
		item, ok := sums[key]
		if !ok {
			item = &domain.MonthlyRevenue{Year: key.year, Month: key.month}
			sums[key] = item
		}
		amount, err := l.Amount()
		if err != nil {
			return nil, err
		}
		item.Revenue, err = item.Revenue.Add(amount)
		if err != nil {
			return nil, fmt.Errorf("math error:%w", err)
		}
	}

	result := make([]*domain.MonthlyRevenue, 0, len(sums))
	for _, item := range sums {
		result = append(result, item)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Year != result[j].Year {
			return result[i].Year > result[j].Year
		}
		return result[i].Month > result[j].Month
	})

	return result, nil
}
