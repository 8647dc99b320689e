package service

import (
	"context"

	"github.com/tastebase/backend/internal/models"
)

// IRecipeService defines the interface for recipe operations
type IRecipeService interface {
	CreateRecipe(ctx context.Context, recipe *models.Recipe) (string, error)
	ListRecipes(ctx context.Context) ([]models.Recipe, error)
	ListUserRecipes(ctx context.Context, userID string) ([]models.Recipe, error)
	UpdateRecipe(ctx context.Context, id, userID string, fields map[string]interface{}) error
	DeleteRecipe(ctx context.Context, id, userID string) error
}

// IMediaService defines the interface for image storage operations
type IMediaService interface {
	UploadImage(ctx context.Context, data []byte, contentType, fileName string) (*ImageUpload, error)
}
