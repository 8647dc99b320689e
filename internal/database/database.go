package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/tastebase/backend/config"
	"github.com/tastebase/backend/internal/logger"
)

// New opens a pooled MongoDB client and verifies connectivity. One client
// is shared for the life of the process.
func New(ctx context.Context, cfg *config.Config) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(cfg.MongoURI).
		SetMaxPoolSize(cfg.MongoMaxPoolSize)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("error connecting to mongodb: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("error pinging mongodb: %w", err)
	}

	logger.Log.Infow("connected to mongodb", "database", cfg.MongoDatabase)
	return client, nil
}

// HealthCheck checks if the database is reachable
func HealthCheck(ctx context.Context, client *mongo.Client) error {
	return client.Ping(ctx, readpref.Primary())
}
