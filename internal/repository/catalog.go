package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/hsiereveld/careservices-monorepo-sub004/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// CatalogRepository reads services, professionals and customers. The engine
// never writes them except for the rating columns of professionals.
type CatalogRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCatalogRepo(db *dbpg.DB) *CatalogRepository {
	return &CatalogRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *CatalogRepository) GetService(ctx context.Context, id string) (*domain.Service, error) {
	query := `SELECT id, professional_id, name, price, duration_hours, is_active
			  FROM services
			  WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrServiceNotFound
		}
		return nil, storeErr("get service", err)
	}

	var s domain.Service
	if err = row.Scan(&s.ID, &s.ProfessionalID, &s.Name, &s.Price, &s.DurationHours, &s.Active); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrServiceNotFound
		}
		return nil, storeErr("scan service", err)
	}
	return &s, nil
}

func (r *CatalogRepository) GetProfessional(ctx context.Context, id string) (*domain.Professional, error) {
	query := `SELECT id, display_name, average_rating, review_count
			  FROM professionals
			  WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfessionalNotFound
		}
		return nil, storeErr("get professional", err)
	}

	var p domain.Professional
	if err = row.Scan(&p.ID, &p.DisplayName, &p.AverageRating, &p.ReviewCount); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfessionalNotFound
		}
		return nil, storeErr("scan professional", err)
	}
	return &p, nil
}

func (r *CatalogRepository) GetCustomer(ctx context.Context, id string) (*domain.Customer, error) {
	query := `SELECT id, display_name FROM customers WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, storeErr("get customer", err)
	}

	var c domain.Customer
	if err = row.Scan(&c.ID, &c.DisplayName); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, storeErr("scan customer", err)
	}
	return &c, nil
}
