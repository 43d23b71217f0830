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

type MongoLiftLogRepository struct {
	collection *mongo.Collection
}

func NewMongoLiftLogRepository(db *mongo.Database) *MongoLiftLogRepository {
	coll := db.Collection("lift_logs")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, _ = coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.M{"client_id": 1},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "member_id", Value: 1}, {Key: "performed_at", Value: 1}},
		},
	})

	return &MongoLiftLogRepository{
		collection: coll,
	}
}

func (r *MongoLiftLogRepository) Create(ctx context.Context, lift *domain.LiftLog) error {
	lift.CreatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, lift)
	if err != nil {
		return fmt.Errorf("failed to create lift log: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		lift.ID = oid.Hex()
	}
	return nil
}

func (r *MongoLiftLogRepository) GetByID(ctx context.Context, id string) (*domain.LiftLog, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	var lift domain.LiftLog
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&lift)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrLiftNotFound
		}
		return nil, err
	}
	return &lift, nil
}

func (r *MongoLiftLogRepository) GetByClientID(ctx context.Context, clientID string) (*domain.LiftLog, error) {
	var lift domain.LiftLog
	err := r.collection.FindOne(ctx, bson.M{"client_id": clientID}).Decode(&lift)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrLiftNotFound
		}
		return nil, err
	}
	return &lift, nil
}

func (r *MongoLiftLogRepository) ListByMember(ctx context.Context, memberID string) ([]*domain.LiftLog, error) {
	opts := options.Find().SetSort(bson.D{{Key: "performed_at", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"member_id": memberID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var lifts []*domain.LiftLog
	if err := cursor.All(ctx, &lifts); err != nil {
		return nil, err
	}
	return lifts, nil
}

func (r *MongoLiftLogRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrInvalidID
	}
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrLiftNotFound
	}
	return nil
}
