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

type MongoPersonalRecordRepository struct {
	collection *mongo.Collection
}

func NewMongoPersonalRecordRepository(db *mongo.Database) *MongoPersonalRecordRepository {
	coll := db.Collection("personal_records")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// One record per member and exercise
	_, _ = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "member_id", Value: 1}, {Key: "exercise_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})

	return &MongoPersonalRecordRepository{
		collection: coll,
	}
}

func (r *MongoPersonalRecordRepository) GetByMemberAndExercise(ctx context.Context, memberID, exerciseID string) (*domain.PersonalRecord, error) {
	var pr domain.PersonalRecord
	err := r.collection.FindOne(ctx, bson.M{
		"member_id":   memberID,
		"exercise_id": exerciseID,
	}).Decode(&pr)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil // No record yet
		}
		return nil, err
	}
	return &pr, nil
}

// Upsert stores pr when it improves on the member's current record for the
// exercise. The update is conditional in the filter, so a concurrent better
// lift is never overwritten. Returns true if pr was written.
func (r *MongoPersonalRecordRepository) Upsert(ctx context.Context, pr *domain.PersonalRecord) (bool, error) {
	existing, err := r.GetByMemberAndExercise(ctx, pr.MemberID, pr.ExerciseID)
	if err != nil {
		return false, err
	}
	if !pr.Improves(existing) {
		return false, nil
	}

	now := time.Now()
	pr.UpdatedAt = now

	if existing == nil {
		pr.CreatedAt = now
		result, err := r.collection.InsertOne(ctx, pr)
		if err == nil {
			if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
				pr.ID = oid.Hex()
			}
			return true, nil
		}
		if !mongo.IsDuplicateKeyError(err) {
			return false, fmt.Errorf("failed to create personal record: %w", err)
		}
		// lost the race to another insert; fall through to the conditional update
	}

	filter := bson.M{
		"member_id":   pr.MemberID,
		"exercise_id": pr.ExerciseID,
		"$or": bson.A{
			bson.M{"weight": bson.M{"$lt": pr.Weight}},
			bson.M{"weight": pr.Weight, "max_reps": bson.M{"$lt": pr.MaxReps}},
		},
	}
	update := bson.M{
		"$set": bson.M{
			"weight":     pr.Weight,
			"max_reps":   pr.MaxReps,
			"date":       pr.Date,
			"lift_id":    pr.LiftID,
			"updated_at": now,
		},
	}

	res, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to update personal record: %w", err)
	}
	if existing != nil {
		pr.ID = existing.ID
		pr.CreatedAt = existing.CreatedAt
	}
	return res.MatchedCount > 0, nil
}

func (r *MongoPersonalRecordRepository) GetByMember(ctx context.Context, memberID string) ([]*domain.PersonalRecord, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"member_id": memberID}, options.Find().SetSort(bson.M{"exercise_id": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var prs []*domain.PersonalRecord
	if err := cursor.All(ctx, &prs); err != nil {
		return nil, err
	}
	return prs, nil
}

// ReplaceForMember drops every record of the member and inserts records.
// Used after a lift is deleted, when the history has to be replayed.
func (r *MongoPersonalRecordRepository) ReplaceForMember(ctx context.Context, memberID string, records []*domain.PersonalRecord) error {
	if _, err := r.collection.DeleteMany(ctx, bson.M{"member_id": memberID}); err != nil {
		return fmt.Errorf("failed to clear personal records: %w", err)
	}
	if len(records) == 0 {
		return nil
	}

	now := time.Now()
	docs := make([]interface{}, 0, len(records))
	for _, pr := range records {
		pr.ID = ""
		pr.MemberID = memberID
		pr.CreatedAt = now
		pr.UpdatedAt = now
		docs = append(docs, pr)
	}

	result, err := r.collection.InsertMany(ctx, docs)
	if err != nil {
		return fmt.Errorf("failed to insert personal records: %w", err)
	}
	for i, id := range result.InsertedIDs {
		if oid, ok := id.(primitive.ObjectID); ok {
			records[i].ID = oid.Hex()
		}
	}
	return nil
}
