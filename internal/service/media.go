package service

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/tastebase/backend/config"
	"github.com/tastebase/backend/internal/logger"
)

// imageFolder is the key prefix recipe uploads are stored under
const imageFolder = "recipe-images"

// ImageUpload is the result of a stored image: the public URL clients
// embed in recipes and the object key that identifies the stored copy.
type ImageUpload struct {
	URL      string
	PublicID string
}

// s3API is the subset of the S3 client the media service uses
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// MediaService stores uploaded recipe images in S3
type MediaService struct {
	client        s3API
	bucket        string
	publicBaseURL string
}

// NewMediaService creates a new MediaService instance. publicBaseURL
// overrides the default bucket URL when images are served from a CDN.
func NewMediaService(s3Config *config.S3Config, publicBaseURL string) *MediaService {
	return &MediaService{
		client:        s3Config.Client,
		bucket:        s3Config.BucketName,
		publicBaseURL: publicBaseURL,
	}
}

// UploadImage uploads image data to S3 and returns its public URL and
// object key. Keys are random so repeated uploads never collide.
func (s *MediaService) UploadImage(ctx context.Context, data []byte, contentType, fileName string) (*ImageUpload, error) {
	key := fmt.Sprintf("%s/%s%s", imageFolder, uuid.New().String(), strings.ToLower(filepath.Ext(fileName)))

	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload to S3: %w", err)
	}

	logger.Log.Infow("uploaded recipe image", "key", key, "bytes", len(data))

	return &ImageUpload{
		URL:      s.objectURL(key),
		PublicID: key,
	}, nil
}

func (s *MediaService) objectURL(key string) string {
	if s.publicBaseURL != "" {
		return fmt.Sprintf("%s/%s", strings.TrimRight(s.publicBaseURL, "/"), key)
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, key)
}
