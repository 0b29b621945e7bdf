package pricing

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	catalogRepo "tidybee/database/repository/catalog"
	"tidybee/models"
	"tidybee/utils"
)

// CatalogSnapshot is the cached form of the active pricing catalog: one JSON
// document holding both record sets so a quote sees a consistent pair.
type CatalogSnapshot struct {
	Rules     []models.PricingRule `json:"rules"`
	Bundles   []models.BundleOffer `json:"bundles"`
	FetchedAt time.Time            `json:"fetchedAt"`
}

// CachedCatalog implements catalogRepo.CatalogRepository by reading the
// catalog snapshot from Redis and falling back to Mongo on a miss. A slightly
// stale snapshot is acceptable: quote callers already tolerate staleness by
// discarding superseded responses.
type CachedCatalog struct {
	Repo        catalogRepo.CatalogRepository
	CacheClient *redis.Client
}

func (c *CachedCatalog) ActiveRules() ([]models.PricingRule, error) {
	snapshot, err := c.snapshot()
	if err != nil {
		return nil, err
	}
	return snapshot.Rules, nil
}

func (c *CachedCatalog) ActiveBundles() ([]models.BundleOffer, error) {
	snapshot, err := c.snapshot()
	if err != nil {
		return nil, err
	}
	return snapshot.Bundles, nil
}

// snapshot returns the cached catalog, refreshing from Mongo on a cache miss.
// Redis being down degrades to a direct Mongo read, never to a failed quote.
func (c *CachedCatalog) snapshot() (*CatalogSnapshot, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	data, err := c.CacheClient.Get(ctx, utils.CatalogCacheKey).Result()
	if err == nil {
		var snapshot CatalogSnapshot
		decodeErr := json.Unmarshal([]byte(data), &snapshot)
		if decodeErr == nil {
			return &snapshot, nil
		}
		utils.GetLogger().Warn("Discarding undecodable catalog snapshot", zap.Error(decodeErr))
	} else if err != redis.Nil {
		utils.GetLogger().Warn("Catalog cache read failed, falling back to store", zap.Error(err))
	}

	return c.Refresh()
}

// Refresh re-reads the active catalog from the store and rewrites the cache
// entry. The background worker calls this on a schedule so quote traffic
// mostly hits warm cache.
func (c *CachedCatalog) Refresh() (*CatalogSnapshot, error) {
	rules, err := c.Repo.ActiveRules()
	if err != nil {
		return nil, err
	}
	bundles, err := c.Repo.ActiveBundles()
	if err != nil {
		return nil, err
	}

	snapshot := &CatalogSnapshot{
		Rules:     rules,
		Bundles:   bundles,
		FetchedAt: time.Now(),
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := c.CacheClient.Set(ctx, utils.CatalogCacheKey, data, utils.CatalogCacheTTL).Err(); err != nil {
		// Serve the fresh snapshot anyway; the next read will retry the cache.
		utils.GetLogger().Warn("Failed to write catalog snapshot to cache", zap.Error(err))
	}
	return snapshot, nil
}
