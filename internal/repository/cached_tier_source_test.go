package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mansoorceksport/fitgauge/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingTierSource struct {
	tiers []domain.Tier
	err   error
	calls int
}

func (s *countingTierSource) ListTiers(context.Context) ([]domain.Tier, error) {
	s.calls++
	return s.tiers, s.err
}

func TestCachedTierSource_CachesConfiguration(t *testing.T) {
	ctx := context.Background()
	cache, _ := setupTestCache(t)
	source := &countingTierSource{tiers: []domain.Tier{
		{ID: "novice", Name: "Novice", Level: 1, Requirements: []domain.TierRequirement{{ExerciseID: "squat", TargetWeight: 60, TargetReps: 5}}},
	}}
	cached := NewCachedTierSource(source, cache, time.Minute)

	first, err := cached.ListTiers(ctx)
	require.NoError(t, err)
	second, err := cached.ListTiers(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, source.calls)
	assert.Equal(t, first[0].Requirements, second[0].Requirements)
	assert.Equal(t, "Novice", second[0].Name)
}

func TestCachedTierSource_InvalidateAndExpiry(t *testing.T) {
	ctx := context.Background()
	cache, mr := setupTestCache(t)
	source := &countingTierSource{tiers: []domain.Tier{{ID: "novice", Name: "Novice", Level: 1}}}
	cached := NewCachedTierSource(source, cache, time.Minute)

	_, err := cached.ListTiers(ctx)
	require.NoError(t, err)

	require.NoError(t, cached.Invalidate(ctx))
	_, err = cached.ListTiers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, source.calls)

	mr.FastForward(2 * time.Minute)
	_, err = cached.ListTiers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, source.calls)
}

func TestCachedTierSource_SourceError(t *testing.T) {
	cache, mr := setupTestCache(t)
	source := &countingTierSource{err: errors.New("mongo down")}
	cached := NewCachedTierSource(source, cache, time.Minute)

	_, err := cached.ListTiers(context.Background())
	assert.EqualError(t, err, "mongo down")
	assert.False(t, mr.Exists(tierConfigKey))
}

func TestCachedTierSource_RedisDownFallsBack(t *testing.T) {
	cache, mr := setupTestCache(t)
	source := &countingTierSource{tiers: []domain.Tier{{ID: "novice", Level: 1}}}
	cached := NewCachedTierSource(source, cache, time.Minute)
	mr.Close()

	tiers, err := cached.ListTiers(context.Background())
	require.NoError(t, err)
	assert.Len(t, tiers, 1)
}
