package engine_test

import (
	"testing"

	"github.com/mansoorceksport/fitgauge/internal/domain"
	"github.com/mansoorceksport/fitgauge/internal/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func benchTier(id, name string, level int, weight float64, reps int) domain.Tier {
	return domain.Tier{
		ID:    id,
		Name:  name,
		Level: level,
		Requirements: []domain.TierRequirement{
			{ExerciseID: "bench_press", ExerciseName: "Bench Press", TargetWeight: weight, TargetReps: reps},
		},
		Rewards: domain.TierRewards{XP: level * 100, Title: name + " Lifter", Badge: id},
	}
}

func records(prs ...domain.PersonalRecord) map[string]domain.PersonalRecord {
	m := make(map[string]domain.PersonalRecord, len(prs))
	for _, pr := range prs {
		m[pr.ExerciseID] = pr
	}
	return m
}

func TestEvaluateTiers_NoviceUnlockedIntermediateNext(t *testing.T) {
	tiers := []domain.Tier{
		benchTier("novice", "Novice", 1, 60, 5),
		benchTier("intermediate", "Intermediate", 2, 80, 5),
	}
	recs := records(domain.PersonalRecord{ExerciseID: "bench_press", Weight: 70, MaxReps: 5})

	eval := engine.EvaluateTiers(tiers, recs)

	require.Len(t, eval.Tiers, 2)
	assert.True(t, eval.Tiers[0].Unlocked)
	assert.False(t, eval.Tiers[1].Unlocked)

	require.NotNil(t, eval.CurrentTier)
	assert.Equal(t, "novice", eval.CurrentTier.Tier.ID)
	require.NotNil(t, eval.NextTier)
	assert.Equal(t, "intermediate", eval.NextTier.Tier.ID)

	req := eval.Tiers[1].Requirements[0]
	assert.True(t, req.HasRecord)
	assert.False(t, req.Achieved)
	assert.Equal(t, 87.5, req.WeightProgress)
	assert.Equal(t, 100.0, req.RepsProgress)
	assert.Equal(t, 87.5, eval.Tiers[1].Progress)

	assert.Equal(t, 100, eval.EarnedXP)
	assert.Equal(t, []string{"Novice Lifter"}, eval.Titles)
	assert.Empty(t, eval.DuplicateLevels)
}

func TestEvaluateTiers_Empty(t *testing.T) {
	eval := engine.EvaluateTiers(nil, records(domain.PersonalRecord{ExerciseID: "squat", Weight: 100, MaxReps: 5}))

	assert.Empty(t, eval.Tiers)
	assert.Nil(t, eval.CurrentTier)
	assert.Nil(t, eval.NextTier)
	assert.Zero(t, eval.EarnedXP)
}

func TestEvaluateTiers_MissingRecordStaysLocked(t *testing.T) {
	tier := domain.Tier{
		ID:    "novice",
		Level: 1,
		Requirements: []domain.TierRequirement{
			{ExerciseID: "bench_press", TargetWeight: 60, TargetReps: 5},
			{ExerciseID: "squat", TargetWeight: 80, TargetReps: 5},
		},
	}
	recs := records(domain.PersonalRecord{ExerciseID: "bench_press", Weight: 60, MaxReps: 8})

	eval := engine.EvaluateTiers([]domain.Tier{tier}, recs)

	status := eval.Tiers[0]
	assert.False(t, status.Unlocked)
	assert.True(t, status.Requirements[0].Achieved)
	assert.False(t, status.Requirements[1].HasRecord)
	assert.Equal(t, 0.0, status.Requirements[1].WeightProgress)
	assert.Equal(t, 0.0, status.Requirements[1].RepsProgress)
	assert.Equal(t, 50.0, status.Progress)
	assert.Nil(t, eval.CurrentTier)
	assert.Equal(t, "novice", eval.NextTier.Tier.ID)
}

func TestEvaluateTiers_RepsRequiredForUnlockButNotProgress(t *testing.T) {
	tiers := []domain.Tier{benchTier("novice", "Novice", 1, 60, 5)}
	recs := records(domain.PersonalRecord{ExerciseID: "bench_press", Weight: 60, MaxReps: 3})

	eval := engine.EvaluateTiers(tiers, recs)

	status := eval.Tiers[0]
	assert.False(t, status.Unlocked)
	assert.Equal(t, 100.0, status.Progress)
	assert.Equal(t, 60.0, status.Requirements[0].RepsProgress)
}

func TestEvaluateTiers_NextTierIsFirstLockedByLevel(t *testing.T) {
	// Level 2 is locked while level 3 is unlocked: next is still level 2.
	tiers := []domain.Tier{
		benchTier("elite", "Elite", 3, 50, 1),
		benchTier("novice", "Novice", 1, 40, 1),
		{
			ID:    "intermediate",
			Name:  "Intermediate",
			Level: 2,
			Requirements: []domain.TierRequirement{
				{ExerciseID: "deadlift", TargetWeight: 120, TargetReps: 1},
			},
		},
	}
	recs := records(domain.PersonalRecord{ExerciseID: "bench_press", Weight: 55, MaxReps: 1})

	eval := engine.EvaluateTiers(tiers, recs)

	assert.Equal(t, "elite", eval.CurrentTier.Tier.ID)
	assert.Equal(t, "intermediate", eval.NextTier.Tier.ID)
	assert.Equal(t, []string{"Novice Lifter", "Elite Lifter"}, eval.Titles)
	assert.Equal(t, 400, eval.EarnedXP)
	// output keeps input order
	assert.Equal(t, "elite", eval.Tiers[0].Tier.ID)
}

func TestEvaluateTiers_AllUnlocked(t *testing.T) {
	tiers := []domain.Tier{
		benchTier("novice", "Novice", 1, 40, 1),
		benchTier("intermediate", "Intermediate", 2, 60, 1),
	}
	recs := records(domain.PersonalRecord{ExerciseID: "bench_press", Weight: 100, MaxReps: 3})

	eval := engine.EvaluateTiers(tiers, recs)

	assert.Equal(t, "intermediate", eval.CurrentTier.Tier.ID)
	assert.Nil(t, eval.NextTier)
}

func TestEvaluateTiers_DuplicateLevelsPickFirstInInputOrder(t *testing.T) {
	tiers := []domain.Tier{
		benchTier("a", "A", 1, 40, 1),
		benchTier("b", "B", 1, 40, 1),
		benchTier("c", "C", 2, 200, 1),
		benchTier("d", "D", 2, 200, 1),
	}
	recs := records(domain.PersonalRecord{ExerciseID: "bench_press", Weight: 50, MaxReps: 1})

	eval := engine.EvaluateTiers(tiers, recs)

	assert.Equal(t, "a", eval.CurrentTier.Tier.ID)
	assert.Equal(t, "c", eval.NextTier.Tier.ID)
	assert.Equal(t, []int{1, 2}, eval.DuplicateLevels)
}

func TestEvaluateTiers_BodyweightAndNoRequirements(t *testing.T) {
	tiers := []domain.Tier{
		{ID: "starter", Name: "Starter", Level: 0},
		{
			ID:    "pullups",
			Name:  "Pull Up Club",
			Level: 1,
			Requirements: []domain.TierRequirement{
				{ExerciseID: "pull_up", TargetWeight: 0, TargetReps: 10},
			},
		},
	}
	recs := records(domain.PersonalRecord{ExerciseID: "pull_up", Weight: 0, MaxReps: 8})

	eval := engine.EvaluateTiers(tiers, recs)

	assert.True(t, eval.Tiers[0].Unlocked)
	assert.Equal(t, 100.0, eval.Tiers[0].Progress)

	pullups := eval.Tiers[1]
	assert.False(t, pullups.Unlocked)
	assert.Equal(t, 100.0, pullups.Requirements[0].WeightProgress)
	assert.Equal(t, 80.0, pullups.Requirements[0].RepsProgress)
}

func TestEvaluateTiers_RecomputesFromRecords(t *testing.T) {
	tiers := []domain.Tier{benchTier("novice", "Novice", 1, 60, 5)}

	eval := engine.EvaluateTiers(tiers, records(domain.PersonalRecord{ExerciseID: "bench_press", Weight: 60, MaxReps: 5}))
	assert.True(t, eval.Tiers[0].Unlocked)

	// a regressed record re-locks the tier; nothing sticks between calls
	eval = engine.EvaluateTiers(tiers, records(domain.PersonalRecord{ExerciseID: "bench_press", Weight: 55, MaxReps: 5}))
	assert.False(t, eval.Tiers[0].Unlocked)
}

func TestEvaluateTiers_UnlockIsMonotonicInRecords(t *testing.T) {
	tiers := []domain.Tier{
		benchTier("t1", "T1", 1, 40, 5),
		benchTier("t2", "T2", 2, 60, 5),
		benchTier("t3", "T3", 3, 80, 8),
		benchTier("t4", "T4", 4, 100, 3),
	}

	for weight := 0.0; weight <= 120; weight += 5 {
		for reps := 0; reps <= 10; reps++ {
			base := engine.EvaluateTiers(tiers, records(domain.PersonalRecord{ExerciseID: "bench_press", Weight: weight, MaxReps: reps}))
			heavier := engine.EvaluateTiers(tiers, records(domain.PersonalRecord{ExerciseID: "bench_press", Weight: weight + 5, MaxReps: reps}))
			moreReps := engine.EvaluateTiers(tiers, records(domain.PersonalRecord{ExerciseID: "bench_press", Weight: weight, MaxReps: reps + 1}))

			for i := range tiers {
				if base.Tiers[i].Unlocked {
					assert.True(t, heavier.Tiers[i].Unlocked)
					assert.True(t, moreReps.Tiers[i].Unlocked)
				}
			}
		}
	}
}
