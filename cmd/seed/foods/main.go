package main

import (
	"context"
	"flag"
	"strings"
	"time"

	"github.com/mansoorceksport/fitgauge/internal/config"
	"github.com/mansoorceksport/fitgauge/internal/domain"
	"github.com/mansoorceksport/fitgauge/internal/repository"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Macros per serving
var sampleFoods = []domain.FoodItem{
	{Name: "Apple", ServingSize: "1 medium", Calories: 95, Protein: 0.5, Carbs: 25, Fat: 0.3},
	{Name: "Pineapple", ServingSize: "1 cup", Calories: 82, Protein: 0.9, Carbs: 22, Fat: 0.2},
	{Name: "Banana", ServingSize: "1 medium", Calories: 105, Protein: 1.3, Carbs: 27, Fat: 0.4},
	{Name: "Chicken Breast", ServingSize: "100g", Calories: 165, Protein: 31, Carbs: 0, Fat: 3.6},
	{Name: "Brown Rice", ServingSize: "1 cup cooked", Calories: 216, Protein: 5, Carbs: 45, Fat: 1.8},
	{Name: "Whole Egg", ServingSize: "1 large", Calories: 72, Protein: 6.3, Carbs: 0.4, Fat: 4.8},
	{Name: "Greek Yogurt", Brand: "Fage", ServingSize: "170g", Calories: 100, Protein: 18, Carbs: 6, Fat: 0},
	{Name: "Whey Protein", Brand: "Optimum Nutrition", ServingSize: "1 scoop", Calories: 120, Protein: 24, Carbs: 3, Fat: 1},
	{Name: "Rolled Oats", ServingSize: "40g", Calories: 150, Protein: 5, Carbs: 27, Fat: 3},
	{Name: "Peanut Butter", ServingSize: "2 tbsp", Calories: 190, Protein: 7, Carbs: 7, Fat: 16},
	{Name: "Salmon Fillet", ServingSize: "100g", Calories: 208, Protein: 20, Carbs: 0, Fat: 13},
	{Name: "Sweet Potato", ServingSize: "1 medium", Calories: 112, Protein: 2, Carbs: 26, Fat: 0.1},
}

func main() {
	publishS3 := flag.Bool("publish-s3", false, "Publish the catalog to object storage instead of MongoDB")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if *publishS3 {
		catalog, err := repository.NewS3CatalogRepository(ctx, cfg.S3)
		if err != nil {
			log.Fatalf("Failed to initialize S3 catalog: %v", err)
		}
		for i := range sampleFoods {
			sampleFoods[i].ID = strings.ReplaceAll(strings.ToLower(sampleFoods[i].Name), " ", "_")
		}
		if err := catalog.PutFoods(ctx, sampleFoods); err != nil {
			log.Fatalf("Failed to publish foods: %v", err)
		}
		log.WithFields(log.Fields{"bucket": cfg.S3.Bucket, "key": cfg.S3.FoodsKey, "foods": len(sampleFoods)}).Info("Food catalog published")
		return
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoDB.URI))
	if err != nil {
		log.Fatalf("Failed to connect to Mongo: %v", err)
	}
	defer client.Disconnect(ctx)

	repo := repository.NewMongoFoodRepository(client.Database(cfg.MongoDB.Database))
	existing, err := repo.ListFoods(ctx)
	if err != nil {
		log.Fatalf("Failed to list foods: %v", err)
	}
	if len(existing) > 0 {
		log.WithField("foods", len(existing)).Info("Food catalog already seeded, skipping")
		return
	}

	for i := range sampleFoods {
		if err := repo.Create(ctx, &sampleFoods[i]); err != nil {
			log.WithError(err).WithField("food", sampleFoods[i].Name).Error("Failed to insert food")
		}
	}
	log.WithField("foods", len(sampleFoods)).Info("Food catalog seeded")
}
