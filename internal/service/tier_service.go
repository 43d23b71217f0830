package service

import (
	"context"
	"fmt"

	"github.com/mansoorceksport/fitgauge/internal/domain"
	"github.com/mansoorceksport/fitgauge/internal/engine"
	"github.com/mansoorceksport/fitgauge/internal/telemetry"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// invalidator is implemented by cached tier sources
type invalidator interface {
	Invalidate(ctx context.Context) error
}

// TierService evaluates members against the tier configuration and manages
// that configuration when it is stored in Mongo.
type TierService struct {
	source      domain.TierSource
	store       domain.TierRepository // nil when tiers come from object storage
	recordRepo  domain.PersonalRecordRepository
	instruments *telemetry.Instruments
}

func NewTierService(
	source domain.TierSource,
	store domain.TierRepository,
	recordRepo domain.PersonalRecordRepository,
	instruments *telemetry.Instruments,
) *TierService {
	return &TierService{
		source:      source,
		store:       store,
		recordRepo:  recordRepo,
		instruments: instruments,
	}
}

// ListTiers returns the tier configuration
func (s *TierService) ListTiers(ctx context.Context) ([]domain.Tier, error) {
	tiers, err := s.source.ListTiers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tiers: %w", err)
	}
	return tiers, nil
}

// EvaluateMember evaluates the member's current records against every tier.
// The result is computed on every call.
func (s *TierService) EvaluateMember(ctx context.Context, memberID string) (*engine.TierEvaluation, error) {
	var (
		tiers   []domain.Tier
		records []*domain.PersonalRecord
	)

	// Use errgroup for concurrent fetching
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		tiers, err = s.source.ListTiers(gCtx)
		if err != nil {
			return fmt.Errorf("failed to load tiers: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		records, err = s.recordRepo.GetByMember(gCtx, memberID)
		if err != nil {
			return fmt.Errorf("failed to load records: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	eval := engine.EvaluateTiers(tiers, domain.RecordMap(records))
	if len(eval.DuplicateLevels) > 0 {
		log.WithField("levels", eval.DuplicateLevels).Warn("tier configuration has duplicate levels")
	}

	unlocked := 0
	for _, t := range eval.Tiers {
		if t.Unlocked {
			unlocked++
		}
	}
	s.instruments.TiersEvaluated(ctx, unlocked)

	return &eval, nil
}

// CreateTier adds a tier to the configuration
func (s *TierService) CreateTier(ctx context.Context, tier *domain.Tier) error {
	if s.store == nil {
		return domain.ErrReadOnly
	}
	if err := tier.Validate(); err != nil {
		return err
	}
	if err := s.store.Create(ctx, tier); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// UpdateTier replaces a tier definition
func (s *TierService) UpdateTier(ctx context.Context, tier *domain.Tier) error {
	if s.store == nil {
		return domain.ErrReadOnly
	}
	if err := tier.Validate(); err != nil {
		return err
	}
	if err := s.store.Update(ctx, tier); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// DeleteTier removes a tier from the configuration
func (s *TierService) DeleteTier(ctx context.Context, id string) error {
	if s.store == nil {
		return domain.ErrReadOnly
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *TierService) invalidate(ctx context.Context) {
	inv, ok := s.source.(invalidator)
	if !ok {
		return
	}
	if err := inv.Invalidate(ctx); err != nil {
		log.WithError(err).Warn("failed to invalidate tier cache")
	}
}
