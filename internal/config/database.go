package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/prefeitura-rio/app-adulto-mayor/internal/logging"
	"github.com/prefeitura-rio/app-adulto-mayor/internal/redisclient"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.opentelemetry.io/contrib/instrumentation/go.mongodb.org/mongo-driver/mongo/otelmongo"
	"go.uber.org/zap"
)

var (
	// MongoDB database handle
	MongoDB *mongo.Database
	// Redis client
	Redis *redisclient.Client
)

// InitMongoDB initializes the MongoDB connection
func InitMongoDB() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Client().
		ApplyURI(AppConfig.MongoURI).
		SetMonitor(otelmongo.NewMonitor()).
		SetMaxPoolSize(50).
		SetMinPoolSize(5).
		SetMaxConnIdleTime(5 * time.Minute).
		SetRetryWrites(true).
		SetRetryReads(true)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	MongoDB = client.Database(AppConfig.MongoDatabase)

	if err := ensureIndexes(); err != nil {
		logging.Logger.Error("failed to ensure indexes on startup", zap.Error(err))
	}

	logging.Logger.Info("Connected to MongoDB",
		zap.String("uri", maskMongoURI(AppConfig.MongoURI)),
		zap.String("database", AppConfig.MongoDatabase),
	)
	return nil
}

// CloseMongoDB disconnects the MongoDB client
func CloseMongoDB(ctx context.Context) {
	if MongoDB == nil {
		return
	}
	if err := MongoDB.Client().Disconnect(ctx); err != nil {
		logging.Logger.Warn("failed to disconnect MongoDB", zap.Error(err))
	}
}

// InitRedis initializes the Redis connection. A failed ping is logged but
// not fatal; sessions and the geocode cache degrade to their in-memory forms.
func InitRedis() error {
	redisClient := redis.NewClient(&redis.Options{
		Addr:         AppConfig.RedisURI,
		Password:     AppConfig.RedisPassword,
		DB:           AppConfig.RedisDB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})

	client := redisclient.NewClient(redisClient)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logging.Logger.Error("failed to connect to Redis",
			zap.String("uri", AppConfig.RedisURI),
			zap.Error(err))
		_ = client.Close()
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	Redis = client
	logging.Logger.Info("connected to Redis", zap.String("uri", AppConfig.RedisURI))
	return nil
}

// maskMongoURI masks credentials in a MongoDB URI
func maskMongoURI(uri string) string {
	at := strings.LastIndex(uri, "@")
	if at < 0 {
		return uri
	}
	return "mongodb://****:****@" + uri[at+1:]
}

// ensureIndexes creates required indexes if they don't exist
func ensureIndexes() error {
	logger := logging.Named("database")
	logger.Info("ensuring required indexes exist")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	indexes := map[string][]mongo.IndexModel{
		AppConfig.BeneficiaryCollection: {
			{Keys: bson.D{{Key: "national_id", Value: 1}}, Options: options.Index().SetName("national_id_1")},
			{Keys: bson.D{{Key: "status", Value: 1}}, Options: options.Index().SetName("status_1")},
		},
		AppConfig.ActivityCollection: {
			{Keys: bson.D{{Key: "type", Value: 1}, {Key: "date", Value: 1}}, Options: options.Index().SetName("type_1_date_1")},
		},
		AppConfig.AuditLogsCollection: {
			{Keys: bson.D{{Key: "timestamp", Value: -1}}, Options: options.Index().SetName("timestamp_-1")},
			{Keys: bson.D{{Key: "resource", Value: 1}, {Key: "resource_id", Value: 1}}, Options: options.Index().SetName("resource_1_resource_id_1")},
		},
	}

	for collection, models := range indexes {
		if _, err := MongoDB.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			logger.Error("failed to create indexes",
				zap.String("collection", collection),
				zap.Error(err))
			return err
		}
		logger.Debug("indexes verified", zap.String("collection", collection))
	}

	logger.Info("all required indexes verified")
	return nil
}
