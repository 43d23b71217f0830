package server

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/mansoorceksport/fitgauge/internal/config"
	"github.com/mansoorceksport/fitgauge/internal/domain"
	"github.com/mansoorceksport/fitgauge/internal/handler"
	"github.com/mansoorceksport/fitgauge/internal/middleware"
	"github.com/mansoorceksport/fitgauge/internal/repository"
	"github.com/mansoorceksport/fitgauge/internal/service"
	"github.com/mansoorceksport/fitgauge/internal/telemetry"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

// AppDependencies holds the dependencies required to start the application
type AppDependencies struct {
	Config      *config.Config
	MongoDB     *mongo.Database
	RedisClient *redis.Client
	// S3Catalog is required when a catalog source is "s3"
	S3Catalog   *repository.S3CatalogRepository
	Instruments *telemetry.Instruments
}

// NewApp creates and configures the Fiber application with the given dependencies
func NewApp(deps AppDependencies) (*fiber.App, error) {
	cfg := deps.Config
	if deps.S3Catalog == nil {
		if cfg.Catalog.TierSource == config.SourceS3 {
			return nil, errors.New("TIER_SOURCE is s3 but no S3 catalog was provided")
		}
		if cfg.Catalog.FoodSource == config.SourceS3 {
			return nil, errors.New("FOOD_SOURCE is s3 but no S3 catalog was provided")
		}
	}

	// Initialize repositories
	cacheRepo := repository.NewRedisCacheRepository(deps.RedisClient)
	recordRepo := repository.NewMongoPersonalRecordRepository(deps.MongoDB)
	liftRepo := repository.NewMongoLiftLogRepository(deps.MongoDB)
	goalRepo := repository.NewMongoGoalRepository(deps.MongoDB)
	exerciseRepo := repository.NewMongoExerciseRepository(deps.MongoDB)

	// Catalog sources. Admin writes are only possible for Mongo-backed catalogs.
	var (
		tierSource domain.TierSource
		tierStore  domain.TierRepository
		foodSource domain.FoodSource
		foodStore  domain.FoodRepository
	)
	switch cfg.Catalog.TierSource {
	case config.SourceS3:
		tierSource = deps.S3Catalog
	default:
		mongoTiers := repository.NewMongoTierRepository(deps.MongoDB)
		tierSource, tierStore = mongoTiers, mongoTiers
	}
	switch cfg.Catalog.FoodSource {
	case config.SourceS3:
		foodSource = deps.S3Catalog
	default:
		mongoFoods := repository.NewMongoFoodRepository(deps.MongoDB)
		foodSource, foodStore = mongoFoods, mongoFoods
	}
	cachedTiers := repository.NewCachedTierSource(tierSource, cacheRepo, cfg.Catalog.TierCacheTTL)

	// Initialize services
	progressService := service.NewProgressService(goalRepo, cfg.Engine.ProgressFallbackTarget, deps.Instruments)
	tierService := service.NewTierService(cachedTiers, tierStore, recordRepo, deps.Instruments)
	recordService := service.NewRecordService(liftRepo, recordRepo, exerciseRepo)
	searchService := service.NewSearchService(foodSource, exerciseRepo,
		cfg.Engine.SearchDefaultLimit, cfg.Engine.SearchMaxLimit, deps.Instruments)
	catalogService := service.NewCatalogService(foodStore, exerciseRepo)

	// Initialize handlers
	progressHandler := handler.NewProgressHandler(progressService)
	tierHandler := handler.NewTierHandler(tierService)
	recordHandler := handler.NewRecordHandler(recordService)
	searchHandler := handler.NewSearchHandler(searchService)
	catalogHandler := handler.NewCatalogHandler(catalogService)

	bodyLimitMB := cfg.Server.MaxBodySizeMB
	if bodyLimitMB <= 0 {
		bodyLimitMB = 1
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "FitGauge API",
		BodyLimit:    bodyLimitMB * 1024 * 1024,
		ErrorHandler: customErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Correlation-ID",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))
	if cfg.OTEL.Enabled {
		app.Use(telemetry.FiberMiddleware())
	}

	// Health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"service": "fitgauge",
		})
	})

	// API v1 routes
	v1 := app.Group("/v1")

	// Public endpoints
	v1.Post("/progress/evaluate", progressHandler.Evaluate)
	v1.Get("/foods/search", searchHandler.SearchFoods)
	v1.Get("/exercises/search", searchHandler.SearchExercises)
	v1.Get("/exercises", searchHandler.ListExercises)
	v1.Get("/tiers", tierHandler.ListTiers)

	// Member endpoints
	me := v1.Group("/me",
		middleware.VerifyToken(cfg.JWT.Secret),
		middleware.AuthorizeRole(domain.RoleMember),
	)
	me.Get("/goals", progressHandler.ListGoals)
	me.Post("/goals", progressHandler.CreateGoal)
	me.Get("/goals/progress", progressHandler.ListProgress)
	me.Put("/goals/:id", progressHandler.UpdateGoal)
	me.Delete("/goals/:id", progressHandler.DeleteGoal)
	me.Get("/tiers", tierHandler.GetMyTiers)
	me.Get("/records", recordHandler.ListRecords)
	me.Post("/lifts", middleware.IdempotencyMiddleware(deps.RedisClient, cfg.Server.IdempotencyTTL), recordHandler.LogLift)
	me.Get("/lifts", recordHandler.ListLifts)
	me.Delete("/lifts/:id", recordHandler.DeleteLift)

	// Admin endpoints
	admin := v1.Group("/admin",
		middleware.VerifyToken(cfg.JWT.Secret),
		middleware.AuthorizeRole(domain.RoleAdmin),
	)
	admin.Post("/tiers", tierHandler.CreateTier)
	admin.Put("/tiers/:id", tierHandler.UpdateTier)
	admin.Delete("/tiers/:id", tierHandler.DeleteTier)
	admin.Post("/foods", catalogHandler.CreateFood)
	admin.Post("/exercises", catalogHandler.CreateExercise)
	admin.Put("/exercises/:id", catalogHandler.UpdateExercise)
	admin.Delete("/exercises/:id", catalogHandler.DeleteExercise)

	return app, nil
}

// customErrorHandler handles errors that escape the handlers
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}
	if code >= fiber.StatusInternalServerError {
		log.WithError(err).WithField("path", c.Path()).Error("unhandled error")
	}
	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
	})
}
