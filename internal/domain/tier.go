package domain

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	ErrTierNotFound       = errors.New("tier not found")
	ErrDuplicateTierLevel = errors.New("tier level already exists")
)

// TierRequirement is one lift a member must have on record to unlock a tier
type TierRequirement struct {
	ExerciseID   string  `json:"exercise_id" bson:"exercise_id"`
	ExerciseName string  `json:"exercise_name" bson:"exercise_name"`
	TargetWeight float64 `json:"target_weight" bson:"target_weight"` // kg, 0 for bodyweight
	TargetReps   int     `json:"target_reps" bson:"target_reps"`
}

// TierRewards are granted when a tier is unlocked
type TierRewards struct {
	XP    int    `json:"xp" bson:"xp"`
	Title string `json:"title" bson:"title"`
	Badge string `json:"badge" bson:"badge"`
}

// Tier is a strength achievement level. Tiers are ordered by Level.
// Whether a tier is unlocked is never stored here; it is derived from
// personal records on every evaluation.
type Tier struct {
	ID           string            `json:"id" bson:"_id,omitempty"`
	Name         string            `json:"name" bson:"name"`
	Level        int               `json:"level" bson:"level"` // Unique Index
	Requirements []TierRequirement `json:"requirements" bson:"requirements"`
	Rewards      TierRewards       `json:"rewards" bson:"rewards"`
	CreatedAt    time.Time         `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at" bson:"updated_at"`
}

// Validate checks a tier definition before it is stored
func (t *Tier) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	for _, req := range t.Requirements {
		if req.ExerciseID == "" {
			return fmt.Errorf("%w: requirement exercise_id is required", ErrInvalidInput)
		}
		if req.TargetWeight < 0 || req.TargetReps < 0 {
			return fmt.Errorf("%w: requirement targets must be >= 0", ErrInvalidInput)
		}
	}
	return nil
}

// DuplicateLevels returns each level that appears more than once, in first-seen order
func DuplicateLevels(tiers []Tier) []int {
	seen := make(map[int]int, len(tiers))
	var dups []int
	for _, t := range tiers {
		seen[t.Level]++
		if seen[t.Level] == 2 {
			dups = append(dups, t.Level)
		}
	}
	return dups
}

// TierSource supplies the ordered tier configuration
type TierSource interface {
	ListTiers(ctx context.Context) ([]Tier, error)
}

// TierRepository is the writable tier configuration store
type TierRepository interface {
	TierSource
	Create(ctx context.Context, tier *Tier) error
	GetByID(ctx context.Context, id string) (*Tier, error)
	Update(ctx context.Context, tier *Tier) error
	Delete(ctx context.Context, id string) error
}
