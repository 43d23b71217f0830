package engine

import (
	"math"
	"sort"

	"github.com/mansoorceksport/fitgauge/internal/domain"
)

// RequirementStatus is the evaluation of one tier requirement against the
// member's record for that exercise.
type RequirementStatus struct {
	domain.TierRequirement
	HasRecord      bool    `json:"has_record"`
	Achieved       bool    `json:"achieved"`
	WeightProgress float64 `json:"weight_progress"` // [0,100]
	RepsProgress   float64 `json:"reps_progress"`   // [0,100]
}

// TierStatus is the evaluation of one tier
type TierStatus struct {
	Tier         domain.Tier         `json:"tier"`
	Unlocked     bool                `json:"unlocked"`
	Requirements []RequirementStatus `json:"requirements"`
	// Progress is the mean weight progress across requirements. Reps are
	// reported per requirement but do not count here.
	Progress float64 `json:"progress"`
}

// TierEvaluation is a snapshot of a member's standing across all tiers.
// It is valid only for the tiers and records it was computed from.
type TierEvaluation struct {
	Tiers       []TierStatus `json:"tiers"` // input order
	CurrentTier *TierStatus  `json:"current_tier,omitempty"`
	NextTier    *TierStatus  `json:"next_tier,omitempty"`
	EarnedXP    int          `json:"earned_xp"`
	Titles      []string     `json:"titles"` // unlocked titles, ascending level
	// DuplicateLevels lists levels shared by more than one tier. Ties are
	// resolved by input order.
	DuplicateLevels []int `json:"duplicate_levels,omitempty"`
}

// EvaluateTiers determines which tiers the records unlock.
//
// A tier is unlocked when every requirement has a record with
// weight >= TargetWeight and reps >= TargetReps; a tier without requirements
// is unlocked. CurrentTier is the highest-level unlocked tier and NextTier the
// lowest-level locked one. When levels collide the earlier tier in input order
// is picked. Nothing is cached: a record that regresses re-locks its tiers on
// the next call.
func EvaluateTiers(tiers []domain.Tier, records map[string]domain.PersonalRecord) TierEvaluation {
	eval := TierEvaluation{
		Tiers:  make([]TierStatus, 0, len(tiers)),
		Titles: []string{},
	}
	for _, t := range tiers {
		eval.Tiers = append(eval.Tiers, evaluateTier(t, records))
	}
	eval.DuplicateLevels = domain.DuplicateLevels(tiers)

	order := make([]int, len(eval.Tiers))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return eval.Tiers[order[a]].Tier.Level < eval.Tiers[order[b]].Tier.Level
	})

	current, next := -1, -1
	for _, i := range order {
		status := eval.Tiers[i]
		if !status.Unlocked {
			if next == -1 {
				next = i
			}
			continue
		}
		eval.EarnedXP += status.Tier.Rewards.XP
		if status.Tier.Rewards.Title != "" {
			eval.Titles = append(eval.Titles, status.Tier.Rewards.Title)
		}
		if current == -1 || status.Tier.Level > eval.Tiers[current].Tier.Level {
			current = i
		}
	}

	if current != -1 {
		s := eval.Tiers[current]
		eval.CurrentTier = &s
	}
	if next != -1 {
		s := eval.Tiers[next]
		eval.NextTier = &s
	}
	return eval
}

func evaluateTier(t domain.Tier, records map[string]domain.PersonalRecord) TierStatus {
	status := TierStatus{
		Tier:         t,
		Unlocked:     true,
		Requirements: make([]RequirementStatus, 0, len(t.Requirements)),
	}
	if len(t.Requirements) == 0 {
		status.Progress = 100
		return status
	}

	var sum float64
	for _, req := range t.Requirements {
		rs := evaluateRequirement(req, records)
		if !rs.Achieved {
			status.Unlocked = false
		}
		sum += math.Min(rs.WeightProgress, 100)
		status.Requirements = append(status.Requirements, rs)
	}
	status.Progress = sum / float64(len(t.Requirements))
	return status
}

func evaluateRequirement(req domain.TierRequirement, records map[string]domain.PersonalRecord) RequirementStatus {
	rs := RequirementStatus{TierRequirement: req}
	record, ok := records[req.ExerciseID]
	if !ok {
		return rs
	}

	rs.HasRecord = true
	rs.WeightProgress = axisProgress(record.Weight, req.TargetWeight)
	rs.RepsProgress = axisProgress(float64(record.MaxReps), float64(req.TargetReps))
	rs.Achieved = record.Weight >= req.TargetWeight && record.MaxReps >= req.TargetReps
	return rs
}

// axisProgress is Percent with one difference: a zero target (bodyweight
// moves, "any reps") is met by any record.
func axisProgress(value, target float64) float64 {
	if !validTarget(target) {
		return 100
	}
	return Percent(value, target)
}
