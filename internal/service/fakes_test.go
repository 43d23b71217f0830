package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/mansoorceksport/fitgauge/internal/domain"
)

type fakeLiftRepo struct {
	mu    sync.Mutex
	lifts []*domain.LiftLog
	seq   int
}

func (r *fakeLiftRepo) Create(_ context.Context, lift *domain.LiftLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	lift.ID = fmt.Sprintf("lift-%d", r.seq)
	cp := *lift
	r.lifts = append(r.lifts, &cp)
	return nil
}

func (r *fakeLiftRepo) GetByID(_ context.Context, id string) (*domain.LiftLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, l := range r.lifts {
		if l.ID == id {
			cp := *l
			return &cp, nil
		}
	}
	return nil, domain.ErrLiftNotFound
}

func (r *fakeLiftRepo) GetByClientID(_ context.Context, clientID string) (*domain.LiftLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, l := range r.lifts {
		if l.ClientID == clientID {
			cp := *l
			return &cp, nil
		}
	}
	return nil, domain.ErrLiftNotFound
}

func (r *fakeLiftRepo) ListByMember(_ context.Context, memberID string) ([]*domain.LiftLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.LiftLog
	for _, l := range r.lifts {
		if l.MemberID == memberID {
			cp := *l
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].PerformedAt.Before(out[j].PerformedAt) })
	return out, nil
}

func (r *fakeLiftRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, l := range r.lifts {
		if l.ID == id {
			r.lifts = append(r.lifts[:i], r.lifts[i+1:]...)
			return nil
		}
	}
	return domain.ErrLiftNotFound
}

type fakeRecordRepo struct {
	mu      sync.Mutex
	records map[string]map[string]domain.PersonalRecord // member -> exercise -> record
	err     error
}

func newFakeRecordRepo() *fakeRecordRepo {
	return &fakeRecordRepo{records: map[string]map[string]domain.PersonalRecord{}}
}

func (r *fakeRecordRepo) GetByMemberAndExercise(_ context.Context, memberID, exerciseID string) (*domain.PersonalRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	pr, ok := r.records[memberID][exerciseID]
	if !ok {
		return nil, nil
	}
	return &pr, nil
}

func (r *fakeRecordRepo) Upsert(_ context.Context, pr *domain.PersonalRecord) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.records[pr.MemberID][pr.ExerciseID]
	if ok && !pr.Improves(&existing) {
		return false, nil
	}
	if r.records[pr.MemberID] == nil {
		r.records[pr.MemberID] = map[string]domain.PersonalRecord{}
	}
	r.records[pr.MemberID][pr.ExerciseID] = *pr
	return true, nil
}

func (r *fakeRecordRepo) GetByMember(_ context.Context, memberID string) ([]*domain.PersonalRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	var out []*domain.PersonalRecord
	for _, pr := range r.records[memberID] {
		cp := pr
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ExerciseID < out[j].ExerciseID })
	return out, nil
}

func (r *fakeRecordRepo) ReplaceForMember(_ context.Context, memberID string, records []*domain.PersonalRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	m := map[string]domain.PersonalRecord{}
	for _, pr := range records {
		cp := *pr
		cp.MemberID = memberID
		m[pr.ExerciseID] = cp
	}
	r.records[memberID] = m
	return nil
}

type fakeExerciseRepo struct {
	exercises []*domain.Exercise
}

func (r *fakeExerciseRepo) Create(_ context.Context, ex *domain.Exercise) error {
	for _, e := range r.exercises {
		if e.Name == ex.Name {
			return domain.ErrDuplicateExercise
		}
	}
	if ex.ID == "" {
		ex.ID = strings.ReplaceAll(strings.ToLower(ex.Name), " ", "_")
	}
	r.exercises = append(r.exercises, ex)
	return nil
}

func (r *fakeExerciseRepo) GetByID(_ context.Context, id string) (*domain.Exercise, error) {
	for _, e := range r.exercises {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, domain.ErrExerciseNotFound
}

func (r *fakeExerciseRepo) List(_ context.Context, filter map[string]interface{}) ([]*domain.Exercise, error) {
	group, _ := filter["muscle_group"].(string)
	var out []*domain.Exercise
	for _, e := range r.exercises {
		if group == "" || e.MuscleGroup == group {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeExerciseRepo) Update(_ context.Context, ex *domain.Exercise) error {
	for i, e := range r.exercises {
		if e.ID == ex.ID {
			r.exercises[i] = ex
			return nil
		}
	}
	return domain.ErrExerciseNotFound
}

func (r *fakeExerciseRepo) Delete(_ context.Context, id string) error {
	for i, e := range r.exercises {
		if e.ID == id {
			r.exercises = append(r.exercises[:i], r.exercises[i+1:]...)
			return nil
		}
	}
	return domain.ErrExerciseNotFound
}

type fakeTierRepo struct {
	tiers       []domain.Tier
	err         error
	invalidated int
}

func (r *fakeTierRepo) ListTiers(context.Context) ([]domain.Tier, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]domain.Tier, len(r.tiers))
	copy(out, r.tiers)
	return out, nil
}

func (r *fakeTierRepo) Create(_ context.Context, tier *domain.Tier) error {
	for _, t := range r.tiers {
		if t.Level == tier.Level {
			return domain.ErrDuplicateTierLevel
		}
	}
	r.tiers = append(r.tiers, *tier)
	return nil
}

func (r *fakeTierRepo) GetByID(_ context.Context, id string) (*domain.Tier, error) {
	for _, t := range r.tiers {
		if t.ID == id {
			cp := t
			return &cp, nil
		}
	}
	return nil, domain.ErrTierNotFound
}

func (r *fakeTierRepo) Update(_ context.Context, tier *domain.Tier) error {
	for i, t := range r.tiers {
		if t.ID == tier.ID {
			r.tiers[i] = *tier
			return nil
		}
	}
	return domain.ErrTierNotFound
}

func (r *fakeTierRepo) Delete(_ context.Context, id string) error {
	for i, t := range r.tiers {
		if t.ID == id {
			r.tiers = append(r.tiers[:i], r.tiers[i+1:]...)
			return nil
		}
	}
	return domain.ErrTierNotFound
}

func (r *fakeTierRepo) Invalidate(context.Context) error {
	r.invalidated++
	return nil
}

type fakeGoalRepo struct {
	goals []*domain.Goal
	seq   int
}

func (r *fakeGoalRepo) Create(_ context.Context, goal *domain.Goal) error {
	r.seq++
	goal.ID = fmt.Sprintf("goal-%d", r.seq)
	cp := *goal
	r.goals = append(r.goals, &cp)
	return nil
}

func (r *fakeGoalRepo) GetByID(_ context.Context, id string) (*domain.Goal, error) {
	for _, g := range r.goals {
		if g.ID == id {
			cp := *g
			return &cp, nil
		}
	}
	return nil, domain.ErrGoalNotFound
}

func (r *fakeGoalRepo) ListByMember(_ context.Context, memberID string) ([]*domain.Goal, error) {
	var out []*domain.Goal
	for _, g := range r.goals {
		if g.MemberID == memberID {
			cp := *g
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeGoalRepo) Update(_ context.Context, goal *domain.Goal) error {
	for i, g := range r.goals {
		if g.ID == goal.ID {
			cp := *goal
			r.goals[i] = &cp
			return nil
		}
	}
	return domain.ErrGoalNotFound
}

func (r *fakeGoalRepo) Delete(_ context.Context, id string) error {
	for i, g := range r.goals {
		if g.ID == id {
			r.goals = append(r.goals[:i], r.goals[i+1:]...)
			return nil
		}
	}
	return domain.ErrGoalNotFound
}

type fakeFoodRepo struct {
	foods []domain.FoodItem
	err   error
}

func (r *fakeFoodRepo) ListFoods(context.Context) ([]domain.FoodItem, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.foods, nil
}

func (r *fakeFoodRepo) Create(_ context.Context, food *domain.FoodItem) error {
	food.ID = fmt.Sprintf("food-%d", len(r.foods)+1)
	r.foods = append(r.foods, *food)
	return nil
}

var errBoom = errors.New("boom")
