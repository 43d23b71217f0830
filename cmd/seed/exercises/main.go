package main

import (
	"context"
	"errors"
	"time"

	"github.com/mansoorceksport/fitgauge/internal/config"
	"github.com/mansoorceksport/fitgauge/internal/domain"
	"github.com/mansoorceksport/fitgauge/internal/repository"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Ids are stable slugs: the default tiers reference them.
var exercises = []domain.Exercise{
	// Legs
	{ID: "barbell_squat", Name: "Barbell Squat", MuscleGroup: "Legs", Equipment: "Barbell", VideoURL: "https://www.youtube.com/watch?v=SW_C1A-rejs"},
	{ID: "leg_press", Name: "Leg Press", MuscleGroup: "Legs", Equipment: "Machine", VideoURL: "https://www.youtube.com/watch?v=IZxyjW7MPJQ"},
	{ID: "romanian_deadlift", Name: "Romanian Deadlift", MuscleGroup: "Legs (Hamstrings)", Equipment: "Barbell", VideoURL: "https://www.youtube.com/watch?v=JCXUYuzwZ_M"},
	{ID: "goblet_squat", Name: "Goblet Squat", MuscleGroup: "Legs", Equipment: "Dumbbell", VideoURL: "https://www.youtube.com/watch?v=MeIiGibT6X0"},

	// Chest
	{ID: "bench_press", Name: "Barbell Bench Press", MuscleGroup: "Chest", Equipment: "Barbell", VideoURL: "https://www.youtube.com/watch?v=EUjh50tLlBo"},
	{ID: "incline_dumbbell_press", Name: "Incline Dumbbell Press", MuscleGroup: "Chest", Equipment: "Dumbbell", VideoURL: "https://www.youtube.com/watch?v=8iPEnn-ltC8"},
	{ID: "push_up", Name: "Push Up", MuscleGroup: "Chest", Equipment: "Bodyweight", VideoURL: "https://www.youtube.com/watch?v=IODxDxX7oi4"},
	{ID: "dips", Name: "Dips", MuscleGroup: "Chest/Triceps", Equipment: "Bodyweight", VideoURL: "https://www.youtube.com/watch?v=SwDers3SMZ4"},

	// Back
	{ID: "deadlift", Name: "Deadlift", MuscleGroup: "Back/Legs", Equipment: "Barbell", VideoURL: "https://www.youtube.com/watch?v=U1H1VG9Uh50"},
	{ID: "pull_up", Name: "Pull Up", MuscleGroup: "Back", Equipment: "Bodyweight", VideoURL: "https://www.youtube.com/watch?v=eGo4IYlbE5g"},
	{ID: "barbell_row", Name: "Barbell Row", MuscleGroup: "Back", Equipment: "Barbell", VideoURL: "https://www.youtube.com/watch?v=DgyslsszCQ0"},
	{ID: "lat_pulldown", Name: "Lat Pulldown", MuscleGroup: "Back", Equipment: "Cable", VideoURL: "https://www.youtube.com/watch?v=CAwf7n6Luuc"},

	// Shoulders
	{ID: "overhead_press", Name: "Overhead Press", MuscleGroup: "Shoulders", Equipment: "Barbell", VideoURL: "https://www.youtube.com/watch?v=2yjwXTZQDDI"},
	{ID: "lateral_raise", Name: "Lateral Raise", MuscleGroup: "Shoulders", Equipment: "Dumbbell", VideoURL: "https://www.youtube.com/watch?v=3VcKaXpzqRo"},
}

func main() {
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

	repo := repository.NewMongoExerciseRepository(client.Database(cfg.MongoDB.Database))

	created, skipped := 0, 0
	for i := range exercises {
		err := repo.Create(ctx, &exercises[i])
		switch {
		case err == nil:
			created++
		case errors.Is(err, domain.ErrDuplicateExercise):
			skipped++
		default:
			log.WithError(err).WithField("exercise", exercises[i].Name).Error("Failed to insert exercise")
		}
	}

	log.WithFields(log.Fields{"created": created, "skipped": skipped}).Info("Exercise seeding completed")
}
