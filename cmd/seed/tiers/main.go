package main

import (
	"context"
	"errors"
	"flag"
	"time"

	"github.com/mansoorceksport/fitgauge/internal/config"
	"github.com/mansoorceksport/fitgauge/internal/domain"
	"github.com/mansoorceksport/fitgauge/internal/repository"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Requirements reference the exercise ids seeded by cmd/seed/exercises.
var defaultTiers = []domain.Tier{
	{
		ID: "novice", Name: "Novice", Level: 1,
		Requirements: []domain.TierRequirement{
			{ExerciseID: "barbell_squat", ExerciseName: "Barbell Squat", TargetWeight: 60, TargetReps: 5},
			{ExerciseID: "bench_press", ExerciseName: "Barbell Bench Press", TargetWeight: 40, TargetReps: 5},
			{ExerciseID: "push_up", ExerciseName: "Push Up", TargetWeight: 0, TargetReps: 10},
		},
		Rewards: domain.TierRewards{XP: 100, Title: "Rookie", Badge: "badge_novice"},
	},
	{
		ID: "intermediate", Name: "Intermediate", Level: 2,
		Requirements: []domain.TierRequirement{
			{ExerciseID: "barbell_squat", ExerciseName: "Barbell Squat", TargetWeight: 100, TargetReps: 5},
			{ExerciseID: "bench_press", ExerciseName: "Barbell Bench Press", TargetWeight: 80, TargetReps: 5},
			{ExerciseID: "deadlift", ExerciseName: "Deadlift", TargetWeight: 120, TargetReps: 5},
		},
		Rewards: domain.TierRewards{XP: 250, Title: "Contender", Badge: "badge_intermediate"},
	},
	{
		ID: "advanced", Name: "Advanced", Level: 3,
		Requirements: []domain.TierRequirement{
			{ExerciseID: "barbell_squat", ExerciseName: "Barbell Squat", TargetWeight: 140, TargetReps: 3},
			{ExerciseID: "bench_press", ExerciseName: "Barbell Bench Press", TargetWeight: 100, TargetReps: 3},
			{ExerciseID: "deadlift", ExerciseName: "Deadlift", TargetWeight: 180, TargetReps: 3},
			{ExerciseID: "pull_up", ExerciseName: "Pull Up", TargetWeight: 0, TargetReps: 10},
		},
		Rewards: domain.TierRewards{XP: 500, Title: "Iron Veteran", Badge: "badge_advanced"},
	},
	{
		ID: "elite", Name: "Elite", Level: 4,
		Requirements: []domain.TierRequirement{
			{ExerciseID: "barbell_squat", ExerciseName: "Barbell Squat", TargetWeight: 180, TargetReps: 1},
			{ExerciseID: "bench_press", ExerciseName: "Barbell Bench Press", TargetWeight: 130, TargetReps: 1},
			{ExerciseID: "deadlift", ExerciseName: "Deadlift", TargetWeight: 220, TargetReps: 1},
			{ExerciseID: "overhead_press", ExerciseName: "Overhead Press", TargetWeight: 80, TargetReps: 1},
		},
		Rewards: domain.TierRewards{XP: 1000, Title: "Elite Lifter", Badge: "badge_elite"},
	},
}

func main() {
	publishS3 := flag.Bool("publish-s3", false, "Also publish the tiers document to object storage")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoDB.URI))
	if err != nil {
		log.Fatalf("Failed to connect to Mongo: %v", err)
	}
	defer client.Disconnect(ctx)

	repo := repository.NewMongoTierRepository(client.Database(cfg.MongoDB.Database))
	for i := range defaultTiers {
		tier := defaultTiers[i]
		if err := tier.Validate(); err != nil {
			log.Fatalf("Invalid tier %s: %v", tier.Name, err)
		}
		err := repo.Create(ctx, &tier)
		switch {
		case err == nil:
			log.WithFields(log.Fields{"tier": tier.Name, "level": tier.Level}).Info("Tier created")
		case errors.Is(err, domain.ErrDuplicateTierLevel):
			log.WithField("level", tier.Level).Info("Tier level already exists, skipping")
		default:
			log.WithError(err).WithField("tier", tier.Name).Error("Failed to insert tier")
		}
	}

	if *publishS3 {
		catalog, err := repository.NewS3CatalogRepository(ctx, cfg.S3)
		if err != nil {
			log.Fatalf("Failed to initialize S3 catalog: %v", err)
		}
		if err := catalog.PutTiers(ctx, defaultTiers); err != nil {
			log.Fatalf("Failed to publish tiers: %v", err)
		}
		log.WithFields(log.Fields{"bucket": cfg.S3.Bucket, "key": cfg.S3.TiersKey}).Info("Tiers published")
	}
}
