package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MikeRez0/studiodesk/internal/core/domain"
	"github.com/MikeRez0/studiodesk/internal/core/utils"
	"go.uber.org/zap"
)

func (s *Service) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	today := s.Today()

	// the order date comes from the clock unless the caller already stamped it
	order.OrderDate = domain.Day(order.OrderDate)
	if order.OrderDate.IsZero() {
		order.OrderDate = today
	}
	order.RealisationDate = domain.Day(order.RealisationDate)
	order.DeliveryDate = domain.Day(order.DeliveryDate)

	if order.RealisationDate.IsZero() || order.DeliveryDate.IsZero() || order.ClientID == 0 {
		return nil, domain.ErrMissingField
	}

	if order.RealisationDate.Before(today) || order.DeliveryDate.Before(today) {
		return nil, domain.ErrDateInPast
	}

	if _, err := s.resolveClient(ctx, order.ClientID); err != nil {
		return nil, err
	}

	for _, line := range order.Lines {
		if err := line.Validate(); err != nil {
			return nil, err
		}
		if _, err := s.resolveService(ctx, line.ServiceID); err != nil {
			return nil, err
		}
	}

	// the count and the inserts share one transaction
	newOrder, err := s.repo.CreateOrder(ctx, order, func(usage domain.CapacityUsage) error {
		return domain.CanAdmit(usage).Err()
	})
	if err != nil {
		var capErr *domain.CapacityError
		if errors.As(err, &capErr) {
			s.observer.OrderRejected(capErr.Reason)
			s.logger.Info("Order rejected",
				zap.String("reason", string(capErr.Reason)),
				zap.Time("realisation", order.RealisationDate),
				zap.Time("delivery", order.DeliveryDate))
			return nil, err
		}
		if errors.Is(err, domain.ErrConflictingData) {
			return nil, domain.ErrDuplicateLine
		}
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, err
		}
		s.logger.Error("Create order", zap.Error(err))
		return nil, err
	}

	s.observer.OrderAdmitted()

	return newOrder, nil
}

// UpdateOrder applies patch without consulting the capacity policy. The read,
// the checks and the write happen while the repository holds the row.
func (s *Service) UpdateOrder(ctx context.Context, orderID uint64, patch domain.OrderPatch) (*domain.Order, error) {
	if patch.Empty() {
		return nil, domain.ErrNoUpdatedData
	}

	today := s.Today()

	updated, err := s.repo.UpdateOrder(ctx, orderID, func(order *domain.Order) error {
		var err error
		if patch.OrderDate != nil && !domain.Day(*patch.OrderDate).Equal(order.OrderDate) {
			return domain.ErrOrderDateImmutable
		}
		if patch.RealisationDate != nil {
			order.RealisationDate, err = changeDate(order.RealisationDate, *patch.RealisationDate, today)
			if err != nil {
				return err
			}
		}
		if patch.DeliveryDate != nil {
			order.DeliveryDate, err = changeDate(order.DeliveryDate, *patch.DeliveryDate, today)
			if err != nil {
				return err
			}
		}
		if patch.ClientID != nil && *patch.ClientID != order.ClientID {
			if *patch.ClientID == 0 {
				return domain.ErrMissingField
			}
			if _, err := s.resolveClient(ctx, *patch.ClientID); err != nil {
				return err
			}
			order.ClientID = *patch.ClientID
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, domain.ErrDataNotFound) && !errors.Is(err, domain.ErrValidation) {
			s.logger.Error("Update order", zap.Error(err), zap.Uint64("order", orderID))
		}
		return nil, err
	}

	return updated, nil
}

// changeDate keeps current when the date is unchanged, otherwise the new date
// must not be in the past.
func changeDate(current, next, today time.Time) (time.Time, error) {
	next = domain.Day(next)
	if next.IsZero() {
		return current, domain.ErrMissingField
	}
	if next.Equal(current) {
		return current, nil
	}
	if next.Before(today) {
		return current, domain.ErrDateInPast
	}
	return next, nil
}

func (s *Service) DeleteOrder(ctx context.Context, orderID uint64) error {
	err := s.repo.DeleteOrder(ctx, orderID)
	if err != nil {
		if !errors.Is(err, domain.ErrDataNotFound) {
			s.logger.Error("Delete order", zap.Error(err), zap.Uint64("order", orderID))
		}
		return err
	}

	s.observer.OrderDeleted()

	return nil
}

func (s *Service) ListOrders(ctx context.Context, filter domain.OrderFilter) ([]*domain.OrderView, error) {
	if filter.RealisationDate != nil {
		d := domain.Day(*filter.RealisationDate)
		filter.RealisationDate = &d
	}
	if filter.DeliveryDate != nil {
		d := domain.Day(*filter.DeliveryDate)
		filter.DeliveryDate = &d
	}

	list, err := s.repo.ListOrders(ctx, filter)
	if err != nil {
		s.logger.Error("List orders", zap.Error(err))
		return nil, err
	}

	names := s.newResolver()
	result := make([]*domain.OrderView, 0, len(list))
	for _, o := range list {
		client, err := names.client(ctx, o.ClientID)
		if err != nil {
			return nil, err
		}
		view := &domain.OrderView{Order: *o, ClientName: client.Name}
		if !utils.Matches(orderSearchText(view), filter.Query) {
			continue
		}
		result = append(result, view)
	}

	return result, nil
}

func orderSearchText(v *domain.OrderView) string {
	return fmt.Sprintf("%d %s %s %s %s %d",
		v.ID, v.ClientName,
		v.OrderDate.Format(domain.DateLayout),
		v.RealisationDate.Format(domain.DateLayout),
		v.DeliveryDate.Format(domain.DateLayout),
		v.ClientID)
}

// CanAdmit reports the remaining capacity on the candidate dates. It takes no
// lock: the answer is advisory, CreateOrder re-checks inside its transaction.
func (s *Service) CanAdmit(ctx context.Context, realisation, delivery time.Time) (domain.CapacityStatus, error) {
	realisation = domain.Day(realisation)
	delivery = domain.Day(delivery)
	if realisation.IsZero() || delivery.IsZero() {
		return domain.CapacityStatus{}, domain.ErrMissingField
	}

	usage, err := s.repo.CountOrdersByDates(ctx, realisation, delivery)
	if err != nil {
		s.logger.Error("Count orders", zap.Error(err))
		return domain.CapacityStatus{}, err
	}

	return domain.NewCapacityStatus(usage), nil
}
