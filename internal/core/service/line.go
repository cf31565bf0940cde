package service

import (
	"context"
	"errors"

	"github.com/MikeRez0/studiodesk/internal/core/domain"
	"go.uber.org/zap"
)

// UpsertLine inserts the (order, service) line or overwrites its quantity and
// price. created is false when an existing line was overwritten.
func (s *Service) UpsertLine(ctx context.Context, line *domain.OrderLine) (*domain.OrderLine, bool, error) {
	if line.OrderID == 0 {
		return nil, false, domain.ErrMissingField
	}
	if err := line.Validate(); err != nil {
		return nil, false, err
	}

	_, err := s.repo.ReadOrder(ctx, line.OrderID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, false, domain.ErrUnknownOrder
		}
		s.logger.Error("Read order", zap.Error(err))
		return nil, false, err
	}

	if _, err := s.resolveService(ctx, line.ServiceID); err != nil {
		return nil, false, err
	}

	saved, created, err := s.repo.UpsertLine(ctx, line)
	if err != nil {
		if !errors.Is(err, domain.ErrDataNotFound) {
			s.logger.Error("Upsert line", zap.Error(err))
		}
		return nil, false, err
	}

	return saved, created, nil
}

func (s *Service) DeleteLine(ctx context.Context, orderID uint64, serviceID uint64) error {
	err := s.repo.DeleteLine(ctx, orderID, serviceID)
	if err != nil && !errors.Is(err, domain.ErrDataNotFound) {
		s.logger.Error("Delete line", zap.Error(err))
	}
	return err
}

func (s *Service) ListLines(ctx context.Context, orderID uint64) ([]*domain.OrderLine, error) {
	list, err := s.repo.ListLines(ctx, orderID)
	if err != nil {
		s.logger.Error("List lines", zap.Error(err))
		return nil, err
	}
	return list, nil
}

func (s *Service) ListAllLines(ctx context.Context) ([]*domain.OrderLine, error) {
	list, err := s.repo.ListAllLines(ctx)
	if err != nil {
		s.logger.Error("List all lines", zap.Error(err))
		return nil, err
	}
	return list, nil
}
