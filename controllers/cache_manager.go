package controllers

import (
	"context"
	"encoding/json"
	"time"

	"storefront-backend/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	ProductCachePrefix  = "product:detail:"
	ProductListCacheKey = "products:all"
	DefaultCacheTTL     = 5 * time.Minute
)

// CacheManager is a read-through Redis cache for the catalog endpoints.
// A nil manager or an unreachable Redis degrades to plain DB reads; cache
// errors are never surfaced to the client.
type CacheManager struct {
	redis *redis.Client
	ttl   time.Duration
}

// NewCacheManager creates a CacheManager. Returns nil when no Redis
// client is configured, which callers treat as cache-off.
func NewCacheManager(rdb *redis.Client) *CacheManager {
	if rdb == nil {
		return nil
	}
	return &CacheManager{redis: rdb, ttl: DefaultCacheTTL}
}

// GetProductList retrieves the cached product list.
func (cm *CacheManager) GetProductList(ctx context.Context) ([]models.Product, bool) {
	if cm == nil {
		return nil, false
	}
	cached, err := cm.redis.Get(ctx, ProductListCacheKey).Result()
	if err != nil {
		return nil, false
	}
	var products []models.Product
	if err := json.Unmarshal([]byte(cached), &products); err != nil {
		zap.L().Warn("Failed to unmarshal cached product list", zap.Error(err))
		return nil, false
	}
	return products, true
}

// SetProductListAsync caches the product list in the background.
func (cm *CacheManager) SetProductListAsync(products []models.Product) {
	if cm == nil {
		return
	}
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		jsonBytes, err := json.Marshal(products)
		if err != nil {
			return
		}
		if err := cm.redis.Set(bgCtx, ProductListCacheKey, jsonBytes, cm.ttl).Err(); err != nil {
			zap.L().Warn("Failed to cache product list", zap.Error(err))
		}
	}()
}

// GetProduct retrieves a cached product detail by slug.
func (cm *CacheManager) GetProduct(ctx context.Context, slug string) (*models.Product, bool) {
	if cm == nil {
		return nil, false
	}
	cached, err := cm.redis.Get(ctx, ProductCachePrefix+slug).Result()
	if err != nil {
		return nil, false
	}
	var product models.Product
	if err := json.Unmarshal([]byte(cached), &product); err != nil {
		return nil, false
	}
	return &product, true
}

// SetProductAsync caches a product detail in the background.
func (cm *CacheManager) SetProductAsync(product *models.Product) {
	if cm == nil || product == nil {
		return
	}
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		jsonBytes, err := json.Marshal(product)
		if err != nil {
			return
		}
		if err := cm.redis.Set(bgCtx, ProductCachePrefix+product.Slug, jsonBytes, cm.ttl).Err(); err != nil {
			zap.L().Warn("Failed to cache product", zap.String("slug", product.Slug), zap.Error(err))
		}
	}()
}
