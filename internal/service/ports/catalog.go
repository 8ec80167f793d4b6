package ports

import (
	"context"

	"github.com/hsiereveld/careservices-monorepo-sub004/internal/domain"
)

type CatalogRepo interface {
	GetService(ctx context.Context, id string) (*domain.Service, error)
	GetProfessional(ctx context.Context, id string) (*domain.Professional, error)
	GetCustomer(ctx context.Context, id string) (*domain.Customer, error)
}
