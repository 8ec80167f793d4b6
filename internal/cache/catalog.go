package cache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/hsiereveld/careservices-monorepo-sub004/internal/domain"
	"github.com/hsiereveld/careservices-monorepo-sub004/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// CatalogCache keeps recently read services and customers in memory.
// Professionals are always read through: their rating changes on every review.
type CatalogCache struct {
	next      ports.CatalogRepo
	services  *expirable.LRU[string, *domain.Service]
	customers *expirable.LRU[string, *domain.Customer]
	logger    logger.Logger
}

func NewCatalogCache(next ports.CatalogRepo, size int, ttl time.Duration, log logger.Logger) *CatalogCache {
	return &CatalogCache{
		next:      next,
		services:  expirable.NewLRU[string, *domain.Service](size, nil, ttl),
		customers: expirable.NewLRU[string, *domain.Customer](size, nil, ttl),
		logger:    log,
	}
}

func (c *CatalogCache) GetService(ctx context.Context, id string) (*domain.Service, error) {
	if s, ok := c.services.Get(id); ok {
		c.logger.Debug("catalog cache hit", logger.String("service_id", id))
		return s, nil
	}

	s, err := c.next.GetService(ctx, id)
	if err != nil {
		return nil, err
	}
	c.services.Add(id, s)
	return s, nil
}

func (c *CatalogCache) GetProfessional(ctx context.Context, id string) (*domain.Professional, error) {
	return c.next.GetProfessional(ctx, id)
}

func (c *CatalogCache) GetCustomer(ctx context.Context, id string) (*domain.Customer, error) {
	if cu, ok := c.customers.Get(id); ok {
		return cu, nil
	}

	cu, err := c.next.GetCustomer(ctx, id)
	if err != nil {
		return nil, err
	}
	c.customers.Add(id, cu)
	return cu, nil
}

