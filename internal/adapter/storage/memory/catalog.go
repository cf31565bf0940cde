package memory

import (
	"context"
	"sync"

	"github.com/MikeRez0/studiodesk/internal/core/domain"
	"github.com/MikeRez0/studiodesk/internal/core/port"
)

var _ port.Catalog = (*Catalog)(nil)

// Catalog is an in-process stand-in for the client/service catalog.
type Catalog struct {
	mu       sync.RWMutex
	clients  map[uint64]domain.Client
	services map[uint64]domain.Service
}

func NewCatalog() *Catalog {
	return &Catalog{
		clients:  make(map[uint64]domain.Client),
		services: make(map[uint64]domain.Service),
	}
}

func (c *Catalog) PutClient(client domain.Client) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clients[client.ID] = client
}

func (c *Catalog) PutService(service domain.Service) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.services[service.ID] = service
}

func (c *Catalog) RemoveService(serviceID uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.services, serviceID)
}

func (c *Catalog) ResolveClient(_ context.Context, clientID uint64) (*domain.Client, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	client, ok := c.clients[clientID]
	if !ok {
		return nil, domain.ErrUnknownClient
	}
	return &client, nil
}

func (c *Catalog) ResolveService(_ context.Context, serviceID uint64) (*domain.Service, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	service, ok := c.services[serviceID]
	if !ok {
		return nil, domain.ErrUnknownService
	}
	return &service, nil
}
