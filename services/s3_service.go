package services

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/charmbracelet/log"
)

// S3Service generates presigned URLs for profile photos and resolves them
// through the shared image cache so a photo is presigned at most once per
// session.
type S3Service struct {
	Client *s3.Client
	Cache  *ImageCache
	Log    *log.Logger
}

// NewS3Service builds the S3 client from the ambient AWS configuration.
func NewS3Service(cache *ImageCache, logger *log.Logger) *S3Service {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		logger.Fatal("Failed to load AWS config for S3", "err", err)
	}
	return &S3Service{
		Client: s3.NewFromConfig(cfg),
		Cache:  cache,
		Log:    logger,
	}
}

// GenerateUploadURL generates a presigned URL for uploading a profile photo.
func (s *S3Service) GenerateUploadURL(fileName, fileType string) (string, string, error) {
	key := "profile-pics/" + time.Now().Format("20060102150405") + "-" + fileName
	params := &s3.PutObjectInput{
		Bucket:      aws.String(os.Getenv("S3_BUCKET_NAME")),
		Key:         aws.String(key),
		ContentType: aws.String(fileType),
	}
	presigner := s3.NewPresignClient(s.Client)
	presignedURL, err := presigner.PresignPutObject(context.TODO(), params, s3.WithPresignExpires(5*time.Minute))
	if err != nil {
		return "", "", fmt.Errorf("failed to presign upload: %w", err)
	}
	return presignedURL.URL, key, nil
}

// GenerateReadURL generates a presigned URL for reading a photo.
func (s *S3Service) GenerateReadURL(key string) (string, error) {
	params := &s3.GetObjectInput{
		Bucket: aws.String(os.Getenv("S3_BUCKET_NAME")),
		Key:    aws.String(key),
	}
	presigner := s3.NewPresignClient(s.Client)
	presignedURL, err := presigner.PresignGetObject(context.TODO(), params, s3.WithPresignExpires(5*time.Minute))
	if err != nil {
		return "", fmt.Errorf("failed to presign read: %w", err)
	}
	return presignedURL.URL, nil
}

// ResolveProfileImage returns the image URI for a session, presigning only
// on a cache miss. Both the discovery list and the detail view call this, so
// the cache is what keeps them from presigning the same photo twice.
func (s *S3Service) ResolveProfileImage(sessionID, photoKey string) (string, error) {
	if uri := s.Cache.GetImageURI(sessionID); uri != "" {
		return uri, nil
	}
	if photoKey == "" {
		return "", nil
	}

	uri, err := s.GenerateReadURL(photoKey)
	if err != nil {
		return "", err
	}
	s.Cache.SetImageURI(sessionID, uri)
	return uri, nil
}
