package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/mansoorceksport/fitgauge/internal/config"
	"github.com/mansoorceksport/fitgauge/internal/domain"
	"github.com/mansoorceksport/fitgauge/internal/repository"
	"github.com/mansoorceksport/fitgauge/internal/service"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	memberID := flag.String("member", "", "Member whose personal records are recomputed from the lift log")
	dryRun := flag.Bool("dry-run", false, "Print the recomputed records without writing them")
	flag.Parse()

	if *memberID == "" {
		fmt.Fprintln(os.Stderr, "usage: rebuild_records -member ID [-dry-run]")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoDB.URI))
	if err != nil {
		log.Fatalf("Failed to connect to Mongo: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(cfg.MongoDB.Database)
	liftRepo := repository.NewMongoLiftLogRepository(db)
	recordRepo := repository.NewMongoPersonalRecordRepository(db)

	var records []*domain.PersonalRecord
	if *dryRun {
		lifts, err := liftRepo.ListByMember(ctx, *memberID)
		if err != nil {
			log.Fatalf("Failed to list lifts: %v", err)
		}
		records = domain.BestRecords(lifts)
		log.WithField("lifts", len(lifts)).Info("[DRY RUN] No changes written")
	} else {
		recordService := service.NewRecordService(liftRepo, recordRepo, repository.NewMongoExerciseRepository(db))
		records, err = recordService.RebuildRecords(ctx, *memberID)
		if err != nil {
			log.Fatalf("Failed to rebuild records: %v", err)
		}
	}

	for _, r := range records {
		fmt.Printf("%-24s %8.2f kg x %d  (%s)\n", r.ExerciseID, r.Weight, r.MaxReps, r.Date.Format("2006-01-02"))
	}
	log.WithFields(log.Fields{"member_id": *memberID, "records": len(records)}).Info("Done")
}
