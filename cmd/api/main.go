package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tastebase/backend/config"
	"github.com/tastebase/backend/internal/database"
	"github.com/tastebase/backend/internal/logger"
	"github.com/tastebase/backend/internal/router"
	"github.com/tastebase/backend/internal/server"
	"github.com/tastebase/backend/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Initialize(cfg.LogLevel); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Log.Sync() //nolint:errcheck

	ctx := context.Background()

	client, err := database.New(ctx, cfg)
	if err != nil {
		logger.Log.Fatalw("failed to connect to mongodb", "error", err)
	}
	db := client.Database(cfg.MongoDatabase)

	if err := database.EnsureIndexes(ctx, db); err != nil {
		logger.Log.Fatalw("failed to ensure indexes", "error", err)
	}

	s3Config, err := config.NewS3Config(ctx, cfg)
	if err != nil {
		logger.Log.Fatalw("failed to configure s3", "error", err)
	}

	recipeService := service.NewRecipeService(db)
	mediaService := service.NewMediaService(s3Config, cfg.S3PublicBaseURL)

	engine := router.SetupRouter(cfg, recipeService, mediaService)
	srv := server.New(cfg, engine)

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)

	go func() {
		errChan <- srv.Start()
	}()

	// Channel to listen for an interrupt or terminate signal from the OS
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			logger.Log.Fatalw("server error", "error", err)
		}
	case sig := <-quit:
		logger.Log.Infow("received signal", "signal", sig.String())
	}

	logger.Log.Infow("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("server shutdown error", "error", err)
	}
	if err := client.Disconnect(shutdownCtx); err != nil {
		logger.Log.Errorw("mongodb disconnect error", "error", err)
	}
	logger.Log.Infow("server stopped")
}
