package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/mansoorceksport/fitgauge/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoFoodRepository struct {
	collection *mongo.Collection
}

func NewMongoFoodRepository(db *mongo.Database) *MongoFoodRepository {
	return &MongoFoodRepository{
		collection: db.Collection("foods"),
	}
}

// ListFoods returns the whole catalog in insertion order. Search ranking
// keeps input order for ties, so the order here is part of the result.
func (r *MongoFoodRepository) ListFoods(ctx context.Context) ([]domain.FoodItem, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"_id": 1}))
	if err != nil {
		return nil, fmt.Errorf("failed to list foods: %w", err)
	}
	defer cursor.Close(ctx)

	foods := []domain.FoodItem{}
	if err := cursor.All(ctx, &foods); err != nil {
		return nil, err
	}
	return foods, nil
}

func (r *MongoFoodRepository) Create(ctx context.Context, food *domain.FoodItem) error {
	food.ID = ""
	food.CreatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, food)
	if err != nil {
		return fmt.Errorf("failed to create food: %w", err)
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		food.ID = oid.Hex()
	}
	return nil
}
