package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tastebase/backend/internal/models"
)

var (
	// ErrInvalidID is returned when a recipe ID is not a valid ObjectID
	ErrInvalidID = errors.New("invalid recipe id")
	// ErrNotFound is returned when no recipe matches the given ID
	ErrNotFound = errors.New("recipe not found")
	// ErrNotOwner is returned when the caller does not own the recipe
	ErrNotOwner = errors.New("recipe does not belong to user")
)

// RecipeService handles recipe operations
type RecipeService struct {
	recipes *mongo.Collection
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *mongo.Database) *RecipeService {
	return &RecipeService{
		recipes: db.Collection(models.RecipeCollection),
	}
}

// CreateRecipe stores a new recipe and returns its generated ID
func (s *RecipeService) CreateRecipe(ctx context.Context, recipe *models.Recipe) (string, error) {
	now := time.Now().UTC()
	recipe.CreatedAt = now
	recipe.UpdatedAt = now

	res, err := s.recipes.InsertOne(ctx, recipe)
	if err != nil {
		return "", fmt.Errorf("failed to insert recipe: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

// ListRecipes returns every stored recipe
func (s *RecipeService) ListRecipes(ctx context.Context) ([]models.Recipe, error) {
	return s.list(ctx, bson.M{})
}

// ListUserRecipes returns the recipes owned by the given user
func (s *RecipeService) ListUserRecipes(ctx context.Context, userID string) ([]models.Recipe, error) {
	return s.list(ctx, bson.M{"userId": userID})
}

func (s *RecipeService) list(ctx context.Context, filter bson.M) ([]models.Recipe, error) {
	cursor, err := s.recipes.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query recipes: %w", err)
	}

	var recipes []models.Recipe
	if err := cursor.All(ctx, &recipes); err != nil {
		return nil, fmt.Errorf("failed to decode recipes: %w", err)
	}
	if recipes == nil {
		recipes = []models.Recipe{}
	}
	return recipes, nil
}

// UpdateRecipe applies the given fields to a recipe after checking that
// the caller owns it. The stored userId is never overwritten; everything
// else in fields is written as-is so clients can extend documents freely.
func (s *RecipeService) UpdateRecipe(ctx context.Context, id, userID string, fields map[string]interface{}) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	if err := s.checkOwner(ctx, oid, userID); err != nil {
		return err
	}

	update := bson.M{}
	for k, v := range fields {
		if k == "userId" {
			continue
		}
		update[k] = v
	}
	update["updatedAt"] = time.Now().UTC()

	res, err := s.recipes.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": update})
	if err != nil {
		return fmt.Errorf("failed to update recipe: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteRecipe removes a recipe after checking that the caller owns it
func (s *RecipeService) DeleteRecipe(ctx context.Context, id, userID string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	if err := s.checkOwner(ctx, oid, userID); err != nil {
		return err
	}

	res, err := s.recipes.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *RecipeService) checkOwner(ctx context.Context, oid primitive.ObjectID, userID string) error {
	var existing models.Recipe
	err := s.recipes.FindOne(ctx, bson.M{"_id": oid}).Decode(&existing)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to load recipe: %w", err)
	}
	if existing.UserID != userID {
		return ErrNotOwner
	}
	return nil
}
