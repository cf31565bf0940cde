package port

import (
	"context"

	"github.com/MikeRez0/studiodesk/internal/core/domain"
)

// Catalog resolves client and service references. Implementations return
// domain.ErrUnknownClient / domain.ErrUnknownService for ids they do not know.
//
//go:generate mockgen -source=catalog.go -destination=mock/catalog.go -package=mock
type Catalog interface {
	ResolveClient(ctx context.Context, clientID uint64) (*domain.Client, error)
	ResolveService(ctx context.Context, serviceID uint64) (*domain.Service, error)
}
