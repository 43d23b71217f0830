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

// MongoTierRepository stores tier configuration, one document per tier.
// Levels are unique.
type MongoTierRepository struct {
	collection *mongo.Collection
}

func NewMongoTierRepository(db *mongo.Database) *MongoTierRepository {
	coll := db.Collection("tiers")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, _ = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.M{"level": 1},
		Options: options.Index().SetUnique(true),
	})

	return &MongoTierRepository{
		collection: coll,
	}
}

// ListTiers returns all tiers ordered by level
func (r *MongoTierRepository) ListTiers(ctx context.Context) ([]domain.Tier, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"level": 1}))
	if err != nil {
		return nil, fmt.Errorf("failed to list tiers: %w", err)
	}
	defer cursor.Close(ctx)

	tiers := []domain.Tier{}
	if err := cursor.All(ctx, &tiers); err != nil {
		return nil, err
	}
	return tiers, nil
}

func (r *MongoTierRepository) Create(ctx context.Context, tier *domain.Tier) error {
	if tier.ID == "" {
		tier.ID = primitive.NewObjectID().Hex()
	}
	tier.CreatedAt = time.Now()
	tier.UpdatedAt = tier.CreatedAt

	if _, err := r.collection.InsertOne(ctx, tier); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateTierLevel
		}
		return fmt.Errorf("failed to create tier: %w", err)
	}
	return nil
}

func (r *MongoTierRepository) GetByID(ctx context.Context, id string) (*domain.Tier, error) {
	var tier domain.Tier
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&tier)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTierNotFound
		}
		return nil, err
	}
	return &tier, nil
}

func (r *MongoTierRepository) Update(ctx context.Context, tier *domain.Tier) error {
	tier.UpdatedAt = time.Now()

	update := bson.M{
		"$set": bson.M{
			"name":         tier.Name,
			"level":        tier.Level,
			"requirements": tier.Requirements,
			"rewards":      tier.Rewards,
			"updated_at":   tier.UpdatedAt,
		},
	}

	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": tier.ID}, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateTierLevel
		}
		return fmt.Errorf("failed to update tier: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrTierNotFound
	}
	return nil
}

func (r *MongoTierRepository) Delete(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrTierNotFound
	}
	return nil
}
