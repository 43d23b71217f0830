package domain

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	ErrLiftNotFound = errors.New("lift not found")
)

// LiftLog is a single logged set. Personal records are derived from lift logs.
type LiftLog struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	ClientID    string    `json:"client_id" bson:"client_id"` // ULID, frontend or server generated
	MemberID    string    `json:"member_id" bson:"member_id"`
	ExerciseID  string    `json:"exercise_id" bson:"exercise_id"`
	Weight      float64   `json:"weight" bson:"weight"`
	Reps        int       `json:"reps" bson:"reps"`
	PerformedAt time.Time `json:"performed_at" bson:"performed_at"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

// Validate checks the invariants of a lift before it is stored
func (l *LiftLog) Validate() error {
	if l.ExerciseID == "" {
		return fmt.Errorf("%w: exercise_id is required", ErrInvalidInput)
	}
	if l.Weight < 0 {
		return fmt.Errorf("%w: weight must be >= 0", ErrInvalidInput)
	}
	if l.Reps < 0 {
		return fmt.Errorf("%w: reps must be >= 0", ErrInvalidInput)
	}
	return nil
}

// Record converts the lift into a personal record candidate
func (l *LiftLog) Record() *PersonalRecord {
	return &PersonalRecord{
		MemberID:   l.MemberID,
		ExerciseID: l.ExerciseID,
		Weight:     l.Weight,
		MaxReps:    l.Reps,
		Date:       l.PerformedAt,
		LiftID:     l.ID,
	}
}

// BestRecords recomputes personal records from a lift history.
// Lifts with zero reps never count.
func BestRecords(logs []*LiftLog) []*PersonalRecord {
	best := make(map[string]*PersonalRecord)
	var order []string
	for _, l := range logs {
		if l == nil || l.Reps == 0 {
			continue
		}
		candidate := l.Record()
		existing, ok := best[l.ExerciseID]
		if !ok {
			order = append(order, l.ExerciseID)
		}
		if candidate.Improves(existing) {
			best[l.ExerciseID] = candidate
		}
	}

	records := make([]*PersonalRecord, 0, len(order))
	for _, exerciseID := range order {
		records = append(records, best[exerciseID])
	}
	return records
}

// LiftLogRepository handles CRUD operations for the lift_logs collection
type LiftLogRepository interface {
	Create(ctx context.Context, lift *LiftLog) error
	GetByID(ctx context.Context, id string) (*LiftLog, error)
	// GetByClientID retrieves a lift by its ULID
	GetByClientID(ctx context.Context, clientID string) (*LiftLog, error)
	// ListByMember returns a member's lifts, oldest first
	ListByMember(ctx context.Context, memberID string) ([]*LiftLog, error)
	Delete(ctx context.Context, id string) error
}
