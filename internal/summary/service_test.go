package summary

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRepo struct {
	byOrigin  map[string]int64
	byStatus  map[string]int64
	companies []int64
	calls     int
	err       error
}

func (s *stubRepo) CountByOrigin(context.Context, int64) (map[string]int64, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.calls++
	return s.byOrigin, nil
}

func (s *stubRepo) CountByStatus(context.Context, int64) (map[string]int64, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.byStatus, nil
}

func (s *stubRepo) Companies(context.Context) ([]int64, error) {
	return s.companies, nil
}

func newTestCache(t *testing.T) *Cache {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewCache(client, time.Minute)
}

func TestRefreshComputesTotals(t *testing.T) {
	repo := &stubRepo{
		byOrigin: map[string]int64{"QUICK": 3, "LEAD": 2},
		byStatus: map[string]int64{"SUCCESS": 4, "ERROR": 1},
	}
	svc := NewService(repo, newTestCache(t), slog.Default())

	counts, err := svc.Refresh(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(5), counts.Total)
	assert.Equal(t, int64(3), counts.ByOrigin["QUICK"])
	assert.Equal(t, int64(1), counts.ByStatus["ERROR"])
	assert.False(t, counts.RefreshedAt.IsZero())
}

func TestCachedServesFromCache(t *testing.T) {
	repo := &stubRepo{
		byOrigin: map[string]int64{"QUICK": 1},
		byStatus: map[string]int64{"SUCCESS": 1},
	}
	svc := NewService(repo, newTestCache(t), slog.Default())

	first, err := svc.Cached(context.Background(), 1)
	require.NoError(t, err)
	second, err := svc.Cached(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, first.Total, second.Total)
	assert.Equal(t, 1, repo.calls, "second read must hit the cache")
}

func TestRefreshPropagatesRepoError(t *testing.T) {
	repo := &stubRepo{err: errors.New("db down")}
	svc := NewService(repo, newTestCache(t), slog.Default())

	_, err := svc.Refresh(context.Background(), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
}

func TestRefreshAllCoversEveryCompany(t *testing.T) {
	repo := &stubRepo{
		byOrigin:  map[string]int64{"QUICK": 1},
		byStatus:  map[string]int64{"SUCCESS": 1},
		companies: []int64{1, 2, 3},
	}
	cache := newTestCache(t)
	svc := NewService(repo, cache, slog.Default())

	require.NoError(t, svc.RefreshAll(context.Background()))

	for _, companyID := range []int64{1, 2, 3} {
		_, ok, err := cache.Get(context.Background(), companyID)
		require.NoError(t, err)
		assert.True(t, ok, "company %d should be cached", companyID)
	}
}

func TestCacheSetKeepsNewerEntry(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	newer := &Counts{CompanyID: 1, Total: 10, RefreshedAt: time.Now().UTC()}
	older := &Counts{CompanyID: 1, Total: 5, RefreshedAt: newer.RefreshedAt.Add(-time.Minute)}

	require.NoError(t, cache.Set(ctx, newer))
	require.NoError(t, cache.Set(ctx, older))

	got, ok, err := cache.Get(ctx, 1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(10), got.Total, "older refresh must not overwrite newer")
}

func TestCacheGetMiss(t *testing.T) {
	cache := newTestCache(t)
	_, ok, err := cache.Get(context.Background(), 99)
	require.NoError(t, err)
	assert.False(t, ok)
}
