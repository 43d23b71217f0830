package repository

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// setupTestDB spins up a fresh MongoDB container. Skipped with -short.
func setupTestDB(t *testing.T) *mongo.Database {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping MongoDB container test in short mode")
	}
	ctx := context.Background()

	mongodbContainer, err := mongodb.Run(ctx, "mongo:7")
	require.NoError(t, err, "failed to start container")

	endpoint, err := mongodbContainer.ConnectionString(ctx)
	require.NoError(t, err, "failed to get connection string")

	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(endpoint))
	require.NoError(t, err, "failed to connect to mongo")

	t.Cleanup(func() {
		if err := mongoClient.Disconnect(ctx); err != nil {
			log.WithError(err).Warn("failed to disconnect mongo")
		}
		if err := mongodbContainer.Terminate(ctx); err != nil {
			log.WithError(err).Warn("failed to terminate container")
		}
	})

	return mongoClient.Database("fitgauge_test")
}

func setupTestCache(t *testing.T) (*RedisCacheRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisCacheRepository(client), mr
}
