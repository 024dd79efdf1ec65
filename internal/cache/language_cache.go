package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/langexchange/langexchange-api/internal/models"
	"github.com/langexchange/langexchange-api/pkg/logger"
	"github.com/langexchange/langexchange-api/pkg/metrics"
)

const (
	languagesCacheKey  = "languages:all"
	languagesCacheName = "languages"
)

// LanguageSource fetches the catalog from the database
type LanguageSource interface {
	FindAll(ctx context.Context) ([]models.Document, error)
}

// LanguageCache is a read-through cache in front of the language catalog.
// The catalog has no write routes, so entries only go stale through
// out-of-band database edits and are bounded by the TTL.
type LanguageCache struct {
	cache  *gocache.Cache
	source LanguageSource
	ttl    time.Duration
}

// NewLanguageCache wraps source with a cache whose entries live for ttl
func NewLanguageCache(source LanguageSource, ttl time.Duration) *LanguageCache {
	return &LanguageCache{
		cache:  gocache.New(ttl, 2*ttl),
		source: source,
		ttl:    ttl,
	}
}

// FindAll returns the cached catalog, loading it from the source on a miss.
// Failed loads are not cached.
func (lc *LanguageCache) FindAll(ctx context.Context) ([]models.Document, error) {
	if data, found := lc.cache.Get(languagesCacheKey); found {
		if languages, ok := data.([]models.Document); ok {
			metrics.CacheHits.WithLabelValues(languagesCacheName).Inc()
			return languages, nil
		}
		logger.Error("Invalid languages cache data type")
		lc.cache.Delete(languagesCacheKey)
	}

	metrics.CacheMisses.WithLabelValues(languagesCacheName).Inc()

	languages, err := lc.source.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	lc.cache.Set(languagesCacheKey, languages, lc.ttl)
	logger.Debug("Languages cache refreshed", zap.Int("count", len(languages)))

	return languages, nil
}

// Invalidate drops the cached catalog
func (lc *LanguageCache) Invalidate() {
	lc.cache.Delete(languagesCacheKey)
}
