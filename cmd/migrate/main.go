package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/tastebase/backend/config"
	"github.com/tastebase/backend/internal/database"
)

func main() {
	// Parse command line flags
	bucketPolicy := flag.Bool("bucket-policy", false, "Also apply the public-read S3 bucket policy")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := database.New(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer client.Disconnect(ctx) //nolint:errcheck

	fmt.Println("Ensuring indexes...")
	if err := database.EnsureIndexes(ctx, client.Database(cfg.MongoDatabase)); err != nil {
		log.Fatalf("failed to ensure indexes: %v", err)
	}
	fmt.Println("Indexes are in place.")

	if *bucketPolicy {
		s3Config, err := config.NewS3Config(ctx, cfg)
		if err != nil {
			log.Fatalf("failed to configure s3: %v", err)
		}

		fmt.Printf("Applying public-read policy to bucket %s...\n", s3Config.BucketName)
		if err := s3Config.SetupBucketPolicy(ctx); err != nil {
			log.Fatalf("failed to apply bucket policy: %v", err)
		}
		fmt.Println("Bucket policy applied.")
	}

	fmt.Println("Migration completed successfully.")
}
