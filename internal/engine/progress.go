package engine

import (
	"math"

	"github.com/mansoorceksport/fitgauge/internal/domain"
)

// Band thresholds. Each is the inclusive lower bound of its band.
const (
	CompletedThreshold   = 100.0
	AlmostThereThreshold = 70.0
	KeepGoingThreshold   = 30.0
)

// RecommendationBand classifies a progress percentage.
// The presentation layer owns the labels and colors for each band.
type RecommendationBand string

const (
	BandGetStarted  RecommendationBand = "get_started"
	BandKeepGoing   RecommendationBand = "keep_going"
	BandAlmostThere RecommendationBand = "almost_there"
	BandCompleted   RecommendationBand = "completed"
)

// Rank orders bands from least (0) to most advanced (3). Unknown bands rank -1.
func (b RecommendationBand) Rank() int {
	switch b {
	case BandGetStarted:
		return 0
	case BandKeepGoing:
		return 1
	case BandAlmostThere:
		return 2
	case BandCompleted:
		return 3
	default:
		return -1
	}
}

// BandFor maps a percentage to its band.
func BandFor(percentage float64) RecommendationBand {
	switch {
	case percentage >= CompletedThreshold:
		return BandCompleted
	case percentage >= AlmostThereThreshold:
		return BandAlmostThere
	case percentage >= KeepGoingThreshold:
		return BandKeepGoing
	default:
		return BandGetStarted
	}
}

// ProgressResult is the evaluation of a single MetricGoal
type ProgressResult struct {
	Percentage float64            `json:"percentage"`
	Band       RecommendationBand `json:"band"`
	// Degenerate is set when the goal's target was not positive and finite
	// and the fallback was applied.
	Degenerate bool `json:"degenerate"`
}

// ProgressEvaluator turns (current, target) pairs into a percentage and band.
//
// A goal whose target is zero, negative, NaN or infinite cannot be divided by.
// Such goals are evaluated against FallbackTarget when it is positive and
// finite; otherwise they evaluate to 0% (BandGetStarted). Either way the result
// is marked Degenerate. The zero value applies the 0% rule.
type ProgressEvaluator struct {
	FallbackTarget float64
}

// Evaluate computes the progress for goal
func (e ProgressEvaluator) Evaluate(goal domain.MetricGoal) ProgressResult {
	target := goal.Target
	degenerate := false
	if !validTarget(target) {
		degenerate = true
		if !validTarget(e.FallbackTarget) {
			return ProgressResult{Percentage: 0, Band: BandGetStarted, Degenerate: true}
		}
		target = e.FallbackTarget
	}

	pct := Percent(goal.Current, target)
	return ProgressResult{
		Percentage: pct,
		Band:       BandFor(pct),
		Degenerate: degenerate,
	}
}

// EvaluateProgress evaluates goal with the 0% fallback
func EvaluateProgress(goal domain.MetricGoal) ProgressResult {
	return ProgressEvaluator{}.Evaluate(goal)
}

// Percent returns current/target*100 clamped to [0, 100].
// The result is exactly 100 iff current >= target. NaN current counts as 0;
// a target that is not positive and finite yields 0.
func Percent(current, target float64) float64 {
	if !validTarget(target) || math.IsNaN(current) || current <= 0 {
		return 0
	}
	if current >= target {
		return 100
	}
	// scale before dividing so whole-number inputs land exactly on band boundaries
	pct := current * 100 / target
	if math.IsInf(pct, 1) {
		// current*100 overflowed
		pct = current / target * 100
	}
	if pct >= 100 {
		// rounding pushed a value just under target up to 100
		return math.Nextafter(100, 0)
	}
	return pct
}

func validTarget(target float64) bool {
	return target > 0 && !math.IsInf(target, 1)
}
