package service

import (
	"context"
	"fmt"

	"github.com/mansoorceksport/fitgauge/internal/domain"
	"github.com/mansoorceksport/fitgauge/internal/engine"
	"github.com/mansoorceksport/fitgauge/internal/telemetry"
)

// GoalProgress pairs a stored goal with its evaluation
type GoalProgress struct {
	Goal     *domain.Goal          `json:"goal"`
	Progress engine.ProgressResult `json:"progress"`
}

// ProgressService evaluates metric goals and manages members' stored goals
type ProgressService struct {
	goalRepo    domain.GoalRepository
	evaluator   engine.ProgressEvaluator
	instruments *telemetry.Instruments
}

func NewProgressService(goalRepo domain.GoalRepository, fallbackTarget float64, instruments *telemetry.Instruments) *ProgressService {
	return &ProgressService{
		goalRepo:    goalRepo,
		evaluator:   engine.ProgressEvaluator{FallbackTarget: fallbackTarget},
		instruments: instruments,
	}
}

// Evaluate computes progress for a single (current, target) pair
func (s *ProgressService) Evaluate(ctx context.Context, goal domain.MetricGoal) engine.ProgressResult {
	result := s.evaluator.Evaluate(goal)
	s.instruments.ProgressEvaluated(ctx, string(result.Band), result.Degenerate)
	return result
}

// ListProgress evaluates every goal of the member, in creation order
func (s *ProgressService) ListProgress(ctx context.Context, memberID string) ([]GoalProgress, error) {
	goals, err := s.goalRepo.ListByMember(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	out := make([]GoalProgress, 0, len(goals))
	for _, g := range goals {
		out = append(out, GoalProgress{Goal: g, Progress: s.Evaluate(ctx, g.MetricGoal())})
	}
	return out, nil
}

func (s *ProgressService) ListGoals(ctx context.Context, memberID string) ([]*domain.Goal, error) {
	goals, err := s.goalRepo.ListByMember(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	if goals == nil {
		goals = []*domain.Goal{}
	}
	return goals, nil
}

func (s *ProgressService) CreateGoal(ctx context.Context, memberID string, goal *domain.Goal) error {
	if err := goal.Validate(); err != nil {
		return err
	}
	goal.MemberID = memberID
	return s.goalRepo.Create(ctx, goal)
}

// UpdateGoal overwrites the editable fields of one of the member's goals
func (s *ProgressService) UpdateGoal(ctx context.Context, memberID string, goal *domain.Goal) error {
	existing, err := s.owned(ctx, memberID, goal.ID)
	if err != nil {
		return err
	}
	if err := goal.Validate(); err != nil {
		return err
	}
	goal.MemberID = existing.MemberID
	goal.CreatedAt = existing.CreatedAt
	return s.goalRepo.Update(ctx, goal)
}

func (s *ProgressService) DeleteGoal(ctx context.Context, memberID, goalID string) error {
	if _, err := s.owned(ctx, memberID, goalID); err != nil {
		return err
	}
	return s.goalRepo.Delete(ctx, goalID)
}

func (s *ProgressService) owned(ctx context.Context, memberID, goalID string) (*domain.Goal, error) {
	goal, err := s.goalRepo.GetByID(ctx, goalID)
	if err != nil {
		return nil, err
	}
	if goal.MemberID != memberID {
		return nil, domain.ErrForbidden
	}
	return goal, nil
}
