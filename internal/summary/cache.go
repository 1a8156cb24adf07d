package summary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache stores computed summaries in Redis. Writes are versioned by
// RefreshedAt so a slower, older computation can never overwrite the
// result of a newer one (last refresh wins, not last write).
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

func (c *Cache) key(companyID int64) string {
	return fmt.Sprintf("fdv:summary:%d", companyID)
}

// Get returns the cached summary, reporting a clean miss on absence.
func (c *Cache) Get(ctx context.Context, companyID int64) (*Counts, bool, error) {
	data, err := c.client.Get(ctx, c.key(companyID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	var counts Counts
	if err := json.Unmarshal(data, &counts); err != nil {
		return nil, false, err
	}
	return &counts, true, nil
}

// Set stores the summary unless a newer one is already cached.
func (c *Cache) Set(ctx context.Context, counts *Counts) error {
	key := c.key(counts.CompanyID)

	txf := func(tx *redis.Tx) error {
		existing, err := tx.Get(ctx, key).Bytes()
		if err == nil {
			var current Counts
			if json.Unmarshal(existing, &current) == nil && current.RefreshedAt.After(counts.RefreshedAt) {
				return nil
			}
		} else if !errors.Is(err, redis.Nil) {
			return err
		}

		data, err := json.Marshal(counts)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, c.ttl)
			return nil
		})
		return err
	}

	return c.client.Watch(ctx, txf, key)
}
