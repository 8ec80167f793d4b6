package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/hsiereveld/careservices-monorepo-sub004/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type RatingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRatingRepo(db *dbpg.DB) *RatingRepository {
	return &RatingRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

// Recompute derives the aggregate from the full set of reviews and stores it
// on the professional. Concurrent recomputes of one professional serialize on
// the professional row, so the last writer always saw every committed review.
func (r *RatingRepository) Recompute(ctx context.Context, professionalID string) (*domain.RatingAggregate, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, storeErr("begin tx", err)
	}
	defer tx.Rollback()

	if err = lockProfessional(ctx, tx, professionalID); err != nil {
		if errors.Is(err, domain.ErrProfessionalNotFound) {
			return nil, err
		}
		return nil, storeErr("lock professional", err)
	}

	var (
		sum   int64
		count int
	)
	if err = tx.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(rating), 0), COUNT(*) FROM reviews WHERE professional_id = $1`,
		professionalID,
	).Scan(&sum, &count); err != nil {
		return nil, storeErr("sum reviews", err)
	}

	agg := domain.NewRatingAggregate(professionalID, sum, count)

	if _, err = tx.ExecContext(ctx,
		`UPDATE professionals SET average_rating = $2, review_count = $3, updated_at = now() WHERE id = $1`,
		professionalID, agg.Average, agg.Count,
	); err != nil {
		return nil, storeErr("update professional rating", err)
	}

	if _, err = tx.ExecContext(ctx,
		`DELETE FROM rating_reconcile_queue WHERE professional_id = $1`, professionalID,
	); err != nil {
		return nil, storeErr("dequeue rating", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, storeErr("commit rating", err)
	}
	return &agg, nil
}

func (r *RatingRepository) Get(ctx context.Context, professionalID string) (*domain.RatingAggregate, error) {
	query := `SELECT average_rating, review_count FROM professionals WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, professionalID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfessionalNotFound
		}
		return nil, storeErr("get rating", err)
	}

	agg := domain.RatingAggregate{ProfessionalID: professionalID}
	if err = row.Scan(&agg.Average, &agg.Count); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfessionalNotFound
		}
		return nil, storeErr("scan rating", err)
	}
	return &agg, nil
}

// Enqueue marks the professional's aggregate as stale. Repeated failures bump
// the attempt counter instead of adding rows.
func (r *RatingRepository) Enqueue(ctx context.Context, professionalID, reason string) error {
	query := `INSERT INTO rating_reconcile_queue (professional_id, reason, attempts, queued_at, updated_at)
			  VALUES ($1, $2, 1, now(), now())
			  ON CONFLICT (professional_id) DO UPDATE
			  SET reason = EXCLUDED.reason,
			      attempts = rating_reconcile_queue.attempts + 1,
			      updated_at = now()`
	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, professionalID, reason); err != nil {
		return storeErr("enqueue rating", err)
	}
	return nil
}

func (r *RatingRepository) ListQueued(ctx context.Context, limit int) ([]string, error) {
	query := `SELECT professional_id FROM rating_reconcile_queue ORDER BY updated_at LIMIT $1`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, limit)
	if err != nil {
		return nil, storeErr("list queued ratings", err)
	}
	defer rows.Close()

	var res []string
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, storeErr("scan queued rating", err)
		}
		res = append(res, id)
	}
	if err = rows.Err(); err != nil {
		return nil, storeErr("iterate queued ratings", err)
	}
	return res, nil
}
