// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"restaurant_backend/internal/feature/plat/domain/entity"
	"restaurant_backend/internal/feature/plat/usecase"
)

// CachingPlatRepository decorates a PlatRepository with Redis caching of the
// list and single-dish reads. Any write invalidates every key in the namespace.
type CachingPlatRepository struct {
	inner     usecase.PlatRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.PlatRepository = (*CachingPlatRepository)(nil)

// NewCachingPlatRepository decorates inner with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "plats".
// A nil rdb turns the decorator into a passthrough.
func NewCachingPlatRepository(rdb *redis.Client, ttl time.Duration, inner usecase.PlatRepository, namespace string) *CachingPlatRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "plats"
	}
	return &CachingPlatRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// List returns every dish, from cache when possible.
func (c *CachingPlatRepository) List(ctx context.Context) ([]entity.Plat, error) {
	if c.rdb == nil {
		return c.inner.List(ctx)
	}

	key := c.listKey()
	var out []entity.Plat
	if c.load(ctx, key, &out) {
		return out, nil
	}

	out, err := c.inner.List(ctx)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, out)
	return out, nil
}

// FindByID returns one dish, from cache when possible. Misses are not cached.
func (c *CachingPlatRepository) FindByID(ctx context.Context, id string) (*entity.Plat, error) {
	if c.rdb == nil {
		return c.inner.FindByID(ctx, id)
	}

	key := c.itemKey(id)
	var out entity.Plat
	if c.load(ctx, key, &out) {
		return &out, nil
	}

	p, err := c.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, p)
	return p, nil
}

// Exists is not cached.
func (c *CachingPlatRepository) Exists(ctx context.Context, id string) (bool, error) {
	return c.inner.Exists(ctx, id)
}

// FindByIDs is not cached.
func (c *CachingPlatRepository) FindByIDs(ctx context.Context, ids []string) ([]entity.Plat, error) {
	return c.inner.FindByIDs(ctx, ids)
}

// Create inserts the dish and invalidates the cache.
func (c *CachingPlatRepository) Create(ctx context.Context, e *entity.Plat) error {
	if err := c.inner.Create(ctx, e); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// Update replaces the dish and invalidates the cache.
func (c *CachingPlatRepository) Update(ctx context.Context, e *entity.Plat) error {
	if err := c.inner.Update(ctx, e); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// Delete removes the dish and invalidates the cache.
func (c *CachingPlatRepository) Delete(ctx context.Context, id string) error {
	if err := c.inner.Delete(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

func (c *CachingPlatRepository) listKey() string {
	return c.namespace + ":all"
}

func (c *CachingPlatRepository) itemKey(id string) string {
	return c.namespace + ":id:" + id
}

// load reports whether key held a decodable value. Corrupted entries are deleted.
func (c *CachingPlatRepository) load(ctx context.Context, key string, dst any) bool {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil || len(b) == 0 {
		return false
	}
	if err := json.Unmarshal(b, dst); err != nil {
		_ = c.rdb.Del(ctx, key).Err()
		return false
	}
	return true
}

// store is best effort.
func (c *CachingPlatRepository) store(ctx context.Context, key string, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
}

func (c *CachingPlatRepository) invalidate(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	if err := c.deleteByPattern(ctx, c.namespace+":*"); err != nil {
		slog.Warn("dish cache invalidation failed", "error", err)
	}
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingPlatRepository) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}
