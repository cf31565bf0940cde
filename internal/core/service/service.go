package service

import (
	"time"

	"github.com/MikeRez0/studiodesk/internal/core/domain"
	"github.com/MikeRez0/studiodesk/internal/core/port"
	"go.uber.org/zap"
)

var _ port.Service = (*Service)(nil)

type Service struct {
	repo     port.Repository
	catalog  port.Catalog
	observer port.OrderObserver
	logger   *zap.Logger
	now      func() time.Time
}

type Option func(*Service)

// WithClock replaces the wall clock used to date new orders and to reject past dates.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(repo port.Repository, catalog port.Catalog,
	observer port.OrderObserver, logger *zap.Logger, opts ...Option) (*Service, error) {
	s := &Service{
		repo:     repo,
		catalog:  catalog,
		observer: observer,
		logger:   logger,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Today is the current date according to the service clock.
func (s *Service) Today() time.Time {
	return domain.Day(s.now())
}
