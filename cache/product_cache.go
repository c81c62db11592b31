package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/MicheleCazzola/ezelectronics-sub001/daos"
	"github.com/MicheleCazzola/ezelectronics-sub001/models"
)

const notFoundSentinel = "notfound"

// ProductCache is a read-through cache for descriptor lookups. Redis is an
// optimization only: every cache failure falls back to the database, and the
// DAO transactions remain the source of truth for stock decisions.
type ProductCache struct {
	db  *gorm.DB
	rdb *redis.Client
	ttl time.Duration
}

// NewProductCache wraps db with a redis cache. A nil rdb yields a
// pass-through cache, so callers never need to branch on configuration.
func NewProductCache(db *gorm.DB, rdb *redis.Client) *ProductCache {
	return &ProductCache{db: db, rdb: rdb, ttl: 5 * time.Minute}
}

func productKey(model string) string {
	return fmt.Sprintf("product:%s", model)
}

// GetByModel returns one descriptor, from cache when possible.
func (c *ProductCache) GetByModel(ctx context.Context, model string) (*models.Product, error) {
	if c.rdb == nil {
		return daos.GetProductByModel(c.db, model)
	}

	key := productKey(model)
	data, err := c.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		if string(data) == notFoundSentinel {
			return nil, fmt.Errorf("%w: %s", daos.ErrProductNotFound, model)
		}
		var product models.Product
		if err := json.Unmarshal(data, &product); err != nil {
			log.Printf("failed to unmarshal cached product (continuing with DB): %v", err)
			break
		}
		return &product, nil
	case errors.Is(err, redis.Nil):
	default:
		log.Printf("redis error (continuing with DB): %v", err)
	}

	product, err := daos.GetProductByModel(c.db, model)
	if err != nil {
		if errors.Is(err, daos.ErrProductNotFound) {
			if setErr := c.rdb.Set(ctx, key, notFoundSentinel, time.Minute).Err(); setErr != nil {
				log.Printf("failed to cache notfound: %v", setErr)
			}
		}
		return nil, err
	}

	jsonData, err := json.Marshal(product)
	if err != nil {
		log.Printf("failed to marshal product: %v", err)
		return product, nil
	}
	if err := c.rdb.Set(ctx, key, jsonData, c.ttl).Err(); err != nil {
		log.Printf("failed to cache product: %v", err)
	}
	return product, nil
}

// Invalidate drops one model from the cache after a descriptor mutation.
func (c *ProductCache) Invalidate(ctx context.Context, model string) {
	if c == nil || c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, productKey(model)).Err(); err != nil {
		log.Printf("failed to invalidate product cache %s: %v", model, err)
	}
}

// InvalidateAll flushes every cached descriptor, used by bulk deletes.
func (c *ProductCache) InvalidateAll(ctx context.Context) {
	if c == nil || c.rdb == nil {
		return
	}
	iter := c.rdb.Scan(ctx, 0, productKey("*"), 0).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			log.Printf("failed to invalidate product cache %s: %v", iter.Val(), err)
		}
	}
	if err := iter.Err(); err != nil {
		log.Printf("failed to scan product cache keys: %v", err)
	}
}
