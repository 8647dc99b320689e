package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tastebase/backend/config"
	"github.com/tastebase/backend/internal/api"
	"github.com/tastebase/backend/internal/middleware"
	"github.com/tastebase/backend/internal/service"
)

// SetupRouter configures the application middleware chain and routes
func SetupRouter(cfg *config.Config, recipeService service.IRecipeService, mediaService service.IMediaService) *gin.Engine {
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Metrics())
	router.Use(middleware.CORS(cfg.CORSAllowOrigins))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api.RegisterRoutes(router, recipeService, mediaService)

	return router
}
