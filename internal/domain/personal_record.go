package domain

import (
	"context"
	"time"
)

// PersonalRecord tracks a member's best lift for an exercise.
// There is at most one record per (member, exercise).
type PersonalRecord struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	MemberID   string    `json:"member_id" bson:"member_id"`
	ExerciseID string    `json:"exercise_id" bson:"exercise_id"` // Reference to exercise definition
	Weight     float64   `json:"weight" bson:"weight"`
	MaxReps    int       `json:"max_reps" bson:"max_reps"`
	Date       time.Time `json:"date" bson:"date"`
	LiftID     string    `json:"lift_id,omitempty" bson:"lift_id,omitempty"` // Lift that set the record
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" bson:"updated_at"`
}

// Improves reports whether r should replace existing.
// Heavier always wins; at equal weight more reps win.
func (r *PersonalRecord) Improves(existing *PersonalRecord) bool {
	if existing == nil {
		return true
	}
	if r.Weight != existing.Weight {
		return r.Weight > existing.Weight
	}
	return r.MaxReps > existing.MaxReps
}

// RecordMap indexes records by exercise ID. Later entries for the same
// exercise replace earlier ones only when they improve on them.
func RecordMap(records []*PersonalRecord) map[string]PersonalRecord {
	m := make(map[string]PersonalRecord, len(records))
	for _, r := range records {
		if r == nil {
			continue
		}
		if existing, ok := m[r.ExerciseID]; ok && !r.Improves(&existing) {
			continue
		}
		m[r.ExerciseID] = *r
	}
	return m
}

// PersonalRecordRepository is the record store
type PersonalRecordRepository interface {
	// GetByMemberAndExercise retrieves a member's record for a specific exercise, nil if none
	GetByMemberAndExercise(ctx context.Context, memberID, exerciseID string) (*PersonalRecord, error)
	// Upsert writes the record if it improves the stored one. Returns true if written
	Upsert(ctx context.Context, pr *PersonalRecord) (bool, error)
	// GetByMember retrieves all records for a member
	GetByMember(ctx context.Context, memberID string) ([]*PersonalRecord, error)
	// ReplaceForMember drops the member's records and stores the given set
	ReplaceForMember(ctx context.Context, memberID string, records []*PersonalRecord) error
}
