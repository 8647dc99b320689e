package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tastebase/backend/internal/models"
)

// EnsureIndexes creates the indexes the API queries depend on. Index
// creation is idempotent so this is safe to run on every boot.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}},
			Options: options.Index().SetName("idx_recipes_user_id"),
		},
	}

	if _, err := db.Collection(models.RecipeCollection).Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("failed to create recipe indexes: %w", err)
	}

	return nil
}
