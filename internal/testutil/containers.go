// Package testutil starts the MongoDB and Redis containers used by backend
// integration tests. Tests are skipped when no container runtime is reachable.
package testutil

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"github.com/testcontainers/testcontainers-go/modules/redis"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoDatabase starts a MongoDB container and returns a fresh database on it
func MongoDatabase(t *testing.T) *mongo.Database {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	container, err := mongodb.Run(ctx, "mongo:7.0")
	require.NoError(t, err, "failed to start MongoDB container")
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err, "failed to get MongoDB connection string")

	connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	require.NoError(t, err, "failed to connect to MongoDB")
	require.NoError(t, client.Ping(connectCtx, nil), "failed to ping MongoDB")
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	name := fmt.Sprintf("adulto_mayor_test_%d", time.Now().UnixNano())
	return client.Database(name)
}

// RedisClient starts a Redis container and returns a connected client
func RedisClient(t *testing.T) *goredis.Client {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	container, err := redis.Run(ctx, "redis:7-alpine")
	require.NoError(t, err, "failed to start Redis container")
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err, "failed to get Redis connection string")

	client := goredis.NewClient(&goredis.Options{Addr: strings.TrimPrefix(uri, "redis://")})
	require.NoError(t, client.Ping(ctx).Err(), "failed to ping Redis")
	t.Cleanup(func() { _ = client.Close() })
	return client
}
