package domain

import (
	"context"
	"errors"
	"time"
)

var (
	ErrFoodNotFound = errors.New("food not found")
)

// FoodItem is an entry in the food catalog
type FoodItem struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name"`
	Brand       string    `json:"brand,omitempty" bson:"brand,omitempty"`
	ServingSize string    `json:"serving_size,omitempty" bson:"serving_size,omitempty"` // e.g. "100g", "1 cup"
	Calories    float64   `json:"calories" bson:"calories"`
	Protein     float64   `json:"protein" bson:"protein"` // grams
	Carbs       float64   `json:"carbs" bson:"carbs"`     // grams
	Fat         float64   `json:"fat" bson:"fat"`         // grams
	CreatedAt   time.Time `json:"created_at,omitempty" bson:"created_at"`
}

func (f FoodItem) SearchName() string  { return f.Name }
func (f FoodItem) SearchBrand() string { return f.Brand }

// FoodSource supplies the food catalog used for search
type FoodSource interface {
	ListFoods(ctx context.Context) ([]FoodItem, error)
}

// FoodRepository is the writable food catalog
type FoodRepository interface {
	FoodSource
	Create(ctx context.Context, food *FoodItem) error
}
