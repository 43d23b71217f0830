package domain

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	ErrGoalNotFound = errors.New("goal not found")
)

// MetricGoal is a (current, target) measurement pair
type MetricGoal struct {
	Current float64 `json:"current"`
	Target  float64 `json:"target"`
}

// Goal is a member's tracked target for a metric, e.g. "Daily protein" 120/150 g
type Goal struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	MemberID  string    `json:"member_id" bson:"member_id"`
	Title     string    `json:"title" bson:"title"`
	Metric    string    `json:"metric" bson:"metric"` // e.g. "protein", "steps", "weekly_sessions"
	Unit      string    `json:"unit" bson:"unit"`
	Current   float64   `json:"current" bson:"current"`
	Target    float64   `json:"target" bson:"target"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// MetricGoal returns the measurement pair for evaluation
func (g *Goal) MetricGoal() MetricGoal {
	return MetricGoal{Current: g.Current, Target: g.Target}
}

// Validate checks the stored fields of a goal. A non-positive target is
// allowed; evaluation handles it with the documented fallback.
func (g *Goal) Validate() error {
	if g.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if g.Metric == "" {
		return fmt.Errorf("%w: metric is required", ErrInvalidInput)
	}
	return nil
}

type GoalRepository interface {
	Create(ctx context.Context, goal *Goal) error
	GetByID(ctx context.Context, id string) (*Goal, error)
	ListByMember(ctx context.Context, memberID string) ([]*Goal, error)
	Update(ctx context.Context, goal *Goal) error
	Delete(ctx context.Context, id string) error
}
