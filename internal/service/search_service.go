package service

import (
	"context"
	"fmt"

	"github.com/mansoorceksport/fitgauge/internal/domain"
	"github.com/mansoorceksport/fitgauge/internal/engine"
	"github.com/mansoorceksport/fitgauge/internal/telemetry"
)

// SearchService ranks the food catalog and the exercise library.
// Catalogs are read in full on each query; ranking happens in memory.
type SearchService struct {
	foods        domain.FoodSource
	exercises    domain.ExerciseRepository
	defaultLimit int
	maxLimit     int
	instruments  *telemetry.Instruments
}

func NewSearchService(
	foods domain.FoodSource,
	exercises domain.ExerciseRepository,
	defaultLimit, maxLimit int,
	instruments *telemetry.Instruments,
) *SearchService {
	if defaultLimit <= 0 {
		defaultLimit = engine.DefaultLimit
	}
	if maxLimit < defaultLimit {
		maxLimit = defaultLimit
	}
	return &SearchService{
		foods:        foods,
		exercises:    exercises,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
		instruments:  instruments,
	}
}

// Limit resolves a requested limit: non-positive means the default and
// anything above the maximum is capped.
func (s *SearchService) Limit(requested int) int {
	switch {
	case requested <= 0:
		return s.defaultLimit
	case requested > s.maxLimit:
		return s.maxLimit
	default:
		return requested
	}
}

func (s *SearchService) SearchFoods(ctx context.Context, query string, limit int) ([]engine.Result[domain.FoodItem], error) {
	foods, err := s.foods.ListFoods(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load food catalog: %w", err)
	}

	results := engine.Rank(foods, query, s.Limit(limit))
	s.instruments.SearchServed(ctx, "foods", len(results))
	return results, nil
}

func (s *SearchService) SearchExercises(ctx context.Context, query string, limit int) ([]engine.Result[domain.Exercise], error) {
	exercises, err := s.listExercises(ctx, nil)
	if err != nil {
		return nil, err
	}

	results := engine.Rank(exercises, query, s.Limit(limit))
	s.instruments.SearchServed(ctx, "exercises", len(results))
	return results, nil
}

// ListExercises returns the exercise library, optionally filtered by muscle group
func (s *SearchService) ListExercises(ctx context.Context, muscleGroup string) ([]domain.Exercise, error) {
	filter := map[string]interface{}{}
	if muscleGroup != "" {
		filter["muscle_group"] = muscleGroup
	}
	return s.listExercises(ctx, filter)
}

func (s *SearchService) listExercises(ctx context.Context, filter map[string]interface{}) ([]domain.Exercise, error) {
	list, err := s.exercises.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to load exercises: %w", err)
	}
	exercises := make([]domain.Exercise, 0, len(list))
	for _, ex := range list {
		exercises = append(exercises, *ex)
	}
	return exercises, nil
}
