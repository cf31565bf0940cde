package service

import (
	"context"
	"errors"

	"github.com/MikeRez0/studiodesk/internal/core/domain"
	"go.uber.org/zap"
)

// resolveClient is the strict lookup used on writes.
func (s *Service) resolveClient(ctx context.Context, clientID uint64) (*domain.Client, error) {
	client, err := s.catalog.ResolveClient(ctx, clientID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrUnknownClient
		}
		s.logger.Error("Resolve client", zap.Error(err), zap.Uint64("client", clientID))
		return nil, domain.ErrInternal
	}
	return client, nil
}

// resolveService is the strict lookup used on writes.
func (s *Service) resolveService(ctx context.Context, serviceID uint64) (*domain.Service, error) {
	service, err := s.catalog.ResolveService(ctx, serviceID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrUnknownService
		}
		s.logger.Error("Resolve service", zap.Error(err), zap.Uint64("service", serviceID))
		return nil, domain.ErrInternal
	}
	return service, nil
}

// resolver memoizes catalog lookups for the duration of one read request.
// References that no longer resolve come back as nil, not as errors.
type resolver struct {
	s        *Service
	clients  map[uint64]*domain.Client
	services map[uint64]*domain.Service
}

func (s *Service) newResolver() *resolver {
	return &resolver{
		s:        s,
		clients:  make(map[uint64]*domain.Client),
		services: make(map[uint64]*domain.Service),
	}
}

// client always returns a usable value: a missing client gets a placeholder name.
func (r *resolver) client(ctx context.Context, clientID uint64) (*domain.Client, error) {
	if c, ok := r.clients[clientID]; ok {
		return c, nil
	}
	c, err := r.s.catalog.ResolveClient(ctx, clientID)
	if err != nil {
		if !errors.Is(err, domain.ErrDataNotFound) {
			r.s.logger.Error("Resolve client", zap.Error(err), zap.Uint64("client", clientID))
			return nil, domain.ErrInternal
		}
		c = &domain.Client{ID: clientID, Name: domain.UnknownLabel}
	}
	r.clients[clientID] = c
	return c, nil
}

func (r *resolver) service(ctx context.Context, serviceID uint64) (*domain.Service, error) {
	if s, ok := r.services[serviceID]; ok {
		return s, nil
	}
	s, err := r.s.catalog.ResolveService(ctx, serviceID)
	if err != nil {
		if !errors.Is(err, domain.ErrDataNotFound) {
			r.s.logger.Error("Resolve service", zap.Error(err), zap.Uint64("service", serviceID))
			return nil, domain.ErrInternal
		}
		r.s.logger.Debug("Stale service reference", zap.Uint64("service", serviceID))
		s = nil
	}
	r.services[serviceID] = s
	return s, nil
}

// servicesFor resolves every service referenced by lines.
func (r *resolver) servicesFor(ctx context.Context, lines []*domain.OrderLine) (map[uint64]*domain.Service, error) {
	result := make(map[uint64]*domain.Service, len(lines))
	for _, l := range lines {
		s, err := r.service(ctx, l.ServiceID)
		if err != nil {
			return nil, err
		}
		if s != nil {
			result[l.ServiceID] = s
		}
	}
	return result, nil
}
