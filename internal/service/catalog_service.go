package service

import (
	"context"
	"fmt"

	"github.com/mansoorceksport/fitgauge/internal/domain"
)

// CatalogService handles admin writes to the food catalog and exercise library
type CatalogService struct {
	foodRepo     domain.FoodRepository // nil when foods come from object storage
	exerciseRepo domain.ExerciseRepository
}

func NewCatalogService(foodRepo domain.FoodRepository, exerciseRepo domain.ExerciseRepository) *CatalogService {
	return &CatalogService{
		foodRepo:     foodRepo,
		exerciseRepo: exerciseRepo,
	}
}

func (s *CatalogService) CreateFood(ctx context.Context, food *domain.FoodItem) error {
	if s.foodRepo == nil {
		return domain.ErrReadOnly
	}
	if food.Name == "" {
		return fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	return s.foodRepo.Create(ctx, food)
}

func (s *CatalogService) CreateExercise(ctx context.Context, ex *domain.Exercise) error {
	if ex.Name == "" {
		return fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	return s.exerciseRepo.Create(ctx, ex)
}

func (s *CatalogService) UpdateExercise(ctx context.Context, ex *domain.Exercise) error {
	if ex.Name == "" {
		return fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	return s.exerciseRepo.Update(ctx, ex)
}

func (s *CatalogService) DeleteExercise(ctx context.Context, id string) error {
	return s.exerciseRepo.Delete(ctx, id)
}
