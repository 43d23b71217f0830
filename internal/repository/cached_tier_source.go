package repository

import (
	"context"
	"errors"
	"time"

	"github.com/mansoorceksport/fitgauge/internal/domain"
	log "github.com/sirupsen/logrus"
)

const (
	tierConfigKey        = "tiers:config"
	defaultTierConfigTTL = 10 * time.Minute
)

// CachedTierSource wraps a TierSource with a Redis cache of the whole tier
// configuration. Only configuration is cached, never evaluation results.
type CachedTierSource struct {
	source domain.TierSource
	cache  *RedisCacheRepository
	ttl    time.Duration
}

// NewCachedTierSource creates a cached tier source. A non-positive ttl uses the default.
func NewCachedTierSource(source domain.TierSource, cache *RedisCacheRepository, ttl time.Duration) *CachedTierSource {
	if ttl <= 0 {
		ttl = defaultTierConfigTTL
	}
	return &CachedTierSource{
		source: source,
		cache:  cache,
		ttl:    ttl,
	}
}

// ListTiers returns the tier configuration, from cache when present
func (s *CachedTierSource) ListTiers(ctx context.Context) ([]domain.Tier, error) {
	var tiers []domain.Tier
	err := s.cache.Get(ctx, tierConfigKey, &tiers)
	if err == nil {
		return tiers, nil
	}
	if !errors.Is(err, ErrCacheMiss) {
		log.WithError(err).Warn("tier cache read failed, falling back to source")
	}

	tiers, err = s.source.ListTiers(ctx)
	if err != nil {
		return nil, err
	}

	// Store in cache (ignore cache errors)
	if err := s.cache.Set(ctx, tierConfigKey, tiers, s.ttl); err != nil {
		log.WithError(err).Warn("tier cache write failed")
	}

	return tiers, nil
}

// Invalidate drops the cached configuration after an admin write
func (s *CachedTierSource) Invalidate(ctx context.Context) error {
	return s.cache.Delete(ctx, tierConfigKey)
}
