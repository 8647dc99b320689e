package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tastebase/backend/internal/logger"
	"github.com/tastebase/backend/internal/models"
	"github.com/tastebase/backend/internal/service"
)

type RecipeHandler struct {
	recipeService service.IRecipeService
}

func NewRecipeHandler(recipeService service.IRecipeService) *RecipeHandler {
	return &RecipeHandler{
		recipeService: recipeService,
	}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.POST("", h.CreateRecipe)
		recipes.GET("/public", h.ListPublicRecipes)
		recipes.GET("/user/:userId", h.ListUserRecipes)
		recipes.PUT("/:id", h.UpdateRecipe)
		recipes.DELETE("/:id", h.DeleteRecipe)
	}
}

// isMissing reports whether a required JSON value is absent or falsy:
// null, empty string, zero number or false all count as missing. An
// empty array is present.
func isMissing(v interface{}) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case bool:
		return !val
	case float64:
		return val == 0
	default:
		return false
	}
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var req CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body", "error": err.Error()})
		return
	}

	if isMissing(req.UserID) || isMissing(req.Name) || isMissing(req.Ingredients) || isMissing(req.Instructions) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name, ingredients, instructions and userId are required"})
		return
	}

	recipe := &models.Recipe{
		UserID:       req.UserID,
		Name:         req.Name,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		PrepTime:     req.PrepTime,
		CookTime:     req.CookTime,
		Servings:     req.Servings,
		CuisineType:  req.CuisineType,
		Difficulty:   req.Difficulty,
		ImageURL:     req.ImageURL,
	}

	id, err := h.recipeService.CreateRecipe(c.Request.Context(), recipe)
	if err != nil {
		logger.Log.Errorw("failed to create recipe", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create recipe", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Recipe created successfully",
		"recipeId": id,
	})
}

func (h *RecipeHandler) ListPublicRecipes(c *gin.Context) {
	recipes, err := h.recipeService.ListRecipes(c.Request.Context())
	if err != nil {
		logger.Log.Errorw("failed to list recipes", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch recipes", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, recipes)
}

func (h *RecipeHandler) ListUserRecipes(c *gin.Context) {
	userID := c.Param("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "User ID is required"})
		return
	}

	recipes, err := h.recipeService.ListUserRecipes(c.Request.Context(), userID)
	if err != nil {
		logger.Log.Errorw("failed to list user recipes", "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch recipes", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, recipes)
}

func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	id := c.Param("id")

	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body", "error": err.Error()})
		return
	}

	userID, _ := body["userId"].(string)

	err := h.recipeService.UpdateRecipe(c.Request.Context(), id, userID, body)
	switch {
	case errors.Is(err, service.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid recipe ID"})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Recipe not found"})
	case errors.Is(err, service.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"message": "You can only update your own recipes"})
	case err != nil:
		logger.Log.Errorw("failed to update recipe", "recipe_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update recipe", "error": err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Recipe updated successfully"})
	}
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	id := c.Param("id")

	var req DeleteRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body", "error": err.Error()})
		return
	}

	err := h.recipeService.DeleteRecipe(c.Request.Context(), id, req.UserID)
	switch {
	case errors.Is(err, service.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid recipe ID"})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Recipe not found"})
	case errors.Is(err, service.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"message": "You can only delete your own recipes"})
	case err != nil:
		logger.Log.Errorw("failed to delete recipe", "recipe_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete recipe", "error": err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Recipe deleted successfully"})
	}
}
