package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/mansoorceksport/fitgauge/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchService_Limit(t *testing.T) {
	svc := NewSearchService(&fakeFoodRepo{}, &fakeExerciseRepo{}, 10, 50, nil)

	assert.Equal(t, 10, svc.Limit(0))
	assert.Equal(t, 10, svc.Limit(-3))
	assert.Equal(t, 7, svc.Limit(7))
	assert.Equal(t, 50, svc.Limit(500))

	// misconfigured bounds fall back to sane values
	svc = NewSearchService(&fakeFoodRepo{}, &fakeExerciseRepo{}, 0, 0, nil)
	assert.Equal(t, 10, svc.Limit(0))
	assert.Equal(t, 10, svc.Limit(20))
}

func TestSearchService_SearchFoods(t *testing.T) {
	foods := &fakeFoodRepo{foods: []domain.FoodItem{
		{ID: "f1", Name: "Pineapple"},
		{ID: "f2", Name: "Apple"},
		{ID: "f3", Name: "Banana"},
	}}
	svc := NewSearchService(foods, &fakeExerciseRepo{}, 10, 50, nil)

	results, err := svc.SearchFoods(context.Background(), "apple", 0)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Apple", results[0].Item.Name)
	assert.Equal(t, 1.0, results[0].Confidence)
	assert.Equal(t, "pineapple-0", results[1].ID)

	foods.err = errBoom
	_, err = svc.SearchFoods(context.Background(), "apple", 0)
	assert.ErrorIs(t, err, errBoom)
}

func TestSearchService_SearchFoods_MaxLimit(t *testing.T) {
	foods := &fakeFoodRepo{}
	for i := 0; i < 80; i++ {
		foods.foods = append(foods.foods, domain.FoodItem{Name: fmt.Sprintf("Rice %d", i)})
	}
	svc := NewSearchService(foods, &fakeExerciseRepo{}, 10, 50, nil)

	results, err := svc.SearchFoods(context.Background(), "rice", 100)
	require.NoError(t, err)
	assert.Len(t, results, 50)
}

func TestSearchService_Exercises(t *testing.T) {
	exercises := &fakeExerciseRepo{exercises: []*domain.Exercise{
		{ID: "bench_press", Name: "Bench Press", MuscleGroup: "Chest"},
		{ID: "incline_bench_press", Name: "Incline Bench Press", MuscleGroup: "Chest"},
		{ID: "squat", Name: "Squat", MuscleGroup: "Legs"},
	}}
	svc := NewSearchService(&fakeFoodRepo{}, exercises, 10, 50, nil)
	ctx := context.Background()

	results, err := svc.SearchExercises(ctx, "bench", 0)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Bench Press", results[0].Item.Name)
	assert.Equal(t, 0.9, results[0].Confidence)
	assert.Equal(t, 0.7, results[1].Confidence)

	chest, err := svc.ListExercises(ctx, "Chest")
	require.NoError(t, err)
	assert.Len(t, chest, 2)

	all, err := svc.ListExercises(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestCatalogService(t *testing.T) {
	ctx := context.Background()
	foods := &fakeFoodRepo{}
	exercises := &fakeExerciseRepo{}
	svc := NewCatalogService(foods, exercises)

	require.NoError(t, svc.CreateFood(ctx, &domain.FoodItem{Name: "Oats", Calories: 389}))
	assert.ErrorIs(t, svc.CreateFood(ctx, &domain.FoodItem{}), domain.ErrInvalidInput)
	assert.Len(t, foods.foods, 1)

	require.NoError(t, svc.CreateExercise(ctx, &domain.Exercise{Name: "Deadlift"}))
	assert.ErrorIs(t, svc.CreateExercise(ctx, &domain.Exercise{Name: "Deadlift"}), domain.ErrDuplicateExercise)
	require.NoError(t, svc.UpdateExercise(ctx, &domain.Exercise{ID: "deadlift", Name: "Deadlift", MuscleGroup: "Back"}))
	assert.ErrorIs(t, svc.UpdateExercise(ctx, &domain.Exercise{ID: "deadlift"}), domain.ErrInvalidInput)
	require.NoError(t, svc.DeleteExercise(ctx, "deadlift"))
	assert.ErrorIs(t, svc.DeleteExercise(ctx, "deadlift"), domain.ErrExerciseNotFound)

	readOnly := NewCatalogService(nil, exercises)
	assert.ErrorIs(t, readOnly.CreateFood(ctx, &domain.FoodItem{Name: "Oats"}), domain.ErrReadOnly)
}
