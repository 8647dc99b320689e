package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tastebase/backend/internal/service"
)

// Liveness reports that the API is up
func Liveness(c *gin.Context) {
	c.String(http.StatusOK, "Tastebase API is running")
}

// RegisterRoutes registers all API routes
func RegisterRoutes(router *gin.Engine, recipeService service.IRecipeService, mediaService service.IMediaService) {
	// Liveness endpoint at the root, outside the API group
	router.GET("/", Liveness)

	recipeHandler := NewRecipeHandler(recipeService)
	uploadHandler := NewUploadHandler(mediaService)

	apiRoutes := router.Group("/api")
	recipeHandler.RegisterRoutes(apiRoutes)
	uploadHandler.RegisterRoutes(apiRoutes)
}
