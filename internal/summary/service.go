// Package summary aggregates order-attempt counts per company for the
// dashboard header. Results are cached in Redis and refreshed both on
// demand and by the background worker.
package summary

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"
)

// Counts is the aggregated view for one company.
type Counts struct {
	CompanyID   int64            `json:"company_id"`
	Total       int64            `json:"total"`
	ByOrigin    map[string]int64 `json:"by_origin"`
	ByStatus    map[string]int64 `json:"by_status"`
	RefreshedAt time.Time        `json:"refreshed_at"`
}

// Repository reads aggregates from the order-attempt store.
type Repository interface {
	CountByOrigin(ctx context.Context, companyID int64) (map[string]int64, error)
	CountByStatus(ctx context.Context, companyID int64) (map[string]int64, error)
	Companies(ctx context.Context) ([]int64, error)
}

type repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

func (r *repository) CountByOrigin(ctx context.Context, companyID int64) (map[string]int64, error) {
	return r.countBy(ctx, "origem", companyID)
}

func (r *repository) CountByStatus(ctx context.Context, companyID int64) (map[string]int64, error) {
	return r.countBy(ctx, "status", companyID)
}

func (r *repository) countBy(ctx context.Context, column string, companyID int64) (map[string]int64, error) {
	// column is one of two trusted identifiers, never caller input.
	query := fmt.Sprintf(`
		SELECT %s, COUNT(*)
		FROM pedidos_fdv
		WHERE id_empresa = $1
		GROUP BY %s
	`, column, column)

	rows, err := r.pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var key string
		var n int64
		if err := rows.Scan(&key, &n); err != nil {
			return nil, err
		}
		counts[key] = n
	}
	return counts, rows.Err()
}

func (r *repository) Companies(ctx context.Context) ([]int64, error) {
	rows, err := r.pool.Query(ctx, "SELECT DISTINCT id_empresa FROM pedidos_fdv ORDER BY id_empresa")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Service computes and caches summaries.
type Service struct {
	repo   Repository
	cache  *Cache
	logger *slog.Logger
	clock  func() time.Time
}

func NewService(repo Repository, cache *Cache, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  cache,
		logger: logger,
		clock:  func() time.Time { return time.Now().UTC() },
	}
}

// Cached returns the cached summary for the company, computing and storing
// it on a miss.
func (s *Service) Cached(ctx context.Context, companyID int64) (*Counts, error) {
	if s.cache != nil {
		if counts, ok, err := s.cache.Get(ctx, companyID); err != nil {
			s.logger.Warn("summary cache read failed", slog.Any("error", err))
		} else if ok {
			return counts, nil
		}
	}
	return s.Refresh(ctx, companyID)
}

// Refresh recomputes the summary and stores it. The two aggregate queries
// run concurrently.
func (s *Service) Refresh(ctx context.Context, companyID int64) (*Counts, error) {
	counts := &Counts{
		CompanyID:   companyID,
		RefreshedAt: s.clock(),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		byOrigin, err := s.repo.CountByOrigin(gctx, companyID)
		if err != nil {
			return fmt.Errorf("count by origin: %w", err)
		}
		counts.ByOrigin = byOrigin
		return nil
	})
	g.Go(func() error {
		byStatus, err := s.repo.CountByStatus(gctx, companyID)
		if err != nil {
			return fmt.Errorf("count by status: %w", err)
		}
		counts.ByStatus = byStatus
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, n := range counts.ByStatus {
		counts.Total += n
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, counts); err != nil {
			s.logger.Warn("summary cache write failed", slog.Any("error", err))
		}
	}
	return counts, nil
}

// RefreshAll recomputes summaries for every company present in the store.
func (s *Service) RefreshAll(ctx context.Context) error {
	companies, err := s.repo.Companies(ctx)
	if err != nil {
		return fmt.Errorf("list companies: %w", err)
	}
	for _, companyID := range companies {
		if _, err := s.Refresh(ctx, companyID); err != nil {
			return fmt.Errorf("refresh company %d: %w", companyID, err)
		}
	}
	return nil
}
