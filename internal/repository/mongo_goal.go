package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mansoorceksport/fitgauge/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoGoalRepository struct {
	collection *mongo.Collection
}

func NewMongoGoalRepository(db *mongo.Database) *MongoGoalRepository {
	coll := db.Collection("goals")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, _ = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "member_id", Value: 1}, {Key: "created_at", Value: 1}},
	})

	return &MongoGoalRepository{
		collection: coll,
	}
}

func (r *MongoGoalRepository) Create(ctx context.Context, goal *domain.Goal) error {
	goal.ID = ""
	goal.CreatedAt = time.Now()
	goal.UpdatedAt = goal.CreatedAt

	result, err := r.collection.InsertOne(ctx, goal)
	if err != nil {
		return fmt.Errorf("failed to create goal: %w", err)
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		goal.ID = oid.Hex()
	}
	return nil
}

func (r *MongoGoalRepository) GetByID(ctx context.Context, id string) (*domain.Goal, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	var goal domain.Goal
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&goal)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrGoalNotFound
		}
		return nil, err
	}
	return &goal, nil
}

func (r *MongoGoalRepository) ListByMember(ctx context.Context, memberID string) ([]*domain.Goal, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"member_id": memberID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	goals := []*domain.Goal{}
	if err := cursor.All(ctx, &goals); err != nil {
		return nil, err
	}
	return goals, nil
}

func (r *MongoGoalRepository) Update(ctx context.Context, goal *domain.Goal) error {
	oid, err := primitive.ObjectIDFromHex(goal.ID)
	if err != nil {
		return domain.ErrInvalidID
	}
	goal.UpdatedAt = time.Now()

	update := bson.M{
		"$set": bson.M{
			"title":      goal.Title,
			"metric":     goal.Metric,
			"unit":       goal.Unit,
			"current":    goal.Current,
			"target":     goal.Target,
			"updated_at": goal.UpdatedAt,
		},
	}

	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("failed to update goal: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrGoalNotFound
	}
	return nil
}

func (r *MongoGoalRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrInvalidID
	}
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrGoalNotFound
	}
	return nil
}
