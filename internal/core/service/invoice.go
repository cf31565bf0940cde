package service

import (
	"context"
	"errors"

	"github.com/MikeRez0/studiodesk/internal/core/domain"
	"github.com/MikeRez0/studiodesk/internal/core/utils"
	"go.uber.org/zap"
)

// BuildInvoice projects the order, its lines and catalog data into an invoice.
// The order and its lines come from one read. It never writes and never caches.
func (s *Service) BuildInvoice(ctx context.Context, orderID uint64) (*domain.Invoice, error) {
	order, err := s.repo.ReadOrderWithLines(ctx, orderID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrDataNotFound
		}
		s.logger.Error("Read order with lines", zap.Error(err))
		return nil, err
	}

	inv, err := s.newResolver().invoice(ctx, order, order.Lines)
	if err != nil {
		return nil, err
	}

	s.observer.InvoiceBuilt()

	return inv, nil
}

// ListInvoices builds the invoice of every order that has lines, newest order
// first, and keeps those whose rendered text contains query.
func (s *Service) ListInvoices(ctx context.Context, query string) ([]*domain.Invoice, error) {
	orders, err := s.repo.ListOrders(ctx, domain.OrderFilter{})
	if err != nil {
		s.logger.Error("List orders", zap.Error(err))
		return nil, err
	}

	lines, err := s.repo.ListAllLines(ctx)
	if err != nil {
		s.logger.Error("List all lines", zap.Error(err))
		return nil, err
	}

	byOrder := make(map[uint64][]*domain.OrderLine)
	for _, l := range lines {
		byOrder[l.OrderID] = append(byOrder[l.OrderID], l)
	}

	r := s.newResolver()
	result := make([]*domain.Invoice, 0)
	for _, o := range orders {
		orderLines := byOrder[o.ID]
		if len(orderLines) == 0 {
			continue
		}

		inv, err := r.invoice(ctx, o, orderLines)
		if err != nil {
			return nil, err
		}
		if !utils.Matches(inv.SearchText(), query) {
			continue
		}
		result = append(result, inv)
	}

	return result, nil
}

func (r *resolver) invoice(ctx context.Context, order *domain.Order, lines []*domain.OrderLine) (*domain.Invoice, error) {
	client, err := r.client(ctx, order.ClientID)
	if err != nil {
		return nil, err
	}

	services, err := r.servicesFor(ctx, lines)
	if err != nil {
		return nil, err
	}

	inv, err := domain.NewInvoice(order, client, lines, services)
	if err != nil {
		r.s.logger.Error("Build invoice", zap.Error(err), zap.Uint64("order", order.ID))
		return nil, domain.ErrInternal
	}
	return inv, nil
}

func (s *Service) MonthlyRevenue(ctx context.Context) ([]*domain.MonthlyRevenue, error) {
	list, err := s.repo.MonthlyRevenue(ctx)
	if err != nil {
		s.logger.Error("Monthly revenue", zap.Error(err))
		return nil, err
	}
	return list, nil
}
