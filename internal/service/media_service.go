package service

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"decora/internal/config"
)

const presignExpiry = 15 * time.Minute

// MediaService hands out presigned URLs so the admin panel uploads images
// straight to the image host; image bytes never pass through this server.
type MediaService interface {
	UploadURL(ctx context.Context, filename string) (key, url string, err error)
	DownloadURL(ctx context.Context, key string) (string, error)
}

type mediaService struct {
	cfg *config.Config
}

// NewMediaService creates an S3-backed media service.
func NewMediaService(cfg *config.Config) MediaService {
	return &mediaService{cfg: cfg}
}

func (s *mediaService) presignClient(ctx context.Context) (*s3.PresignClient, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(s.cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.cfg.S3AccessKey,
			s.cfg.S3SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("load s3 config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if s.cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(s.cfg.S3Endpoint)
		}
	})

	return s3.NewPresignClient(client), nil
}

// storageKey spreads uploads by date and keeps the original extension so the
// host serves the right content type.
func storageKey(filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	d := time.Now()
	return fmt.Sprintf("media/%d/%02d/%s%s", d.Year(), d.Month(), uuid.New(), ext)
}

func (s *mediaService) UploadURL(ctx context.Context, filename string) (string, string, error) {
	presigner, err := s.presignClient(ctx)
	if err != nil {
		return "", "", err
	}

	bucket := s.cfg.S3Bucket
	key := storageKey(filename)

	req, err := presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		return "", "", fmt.Errorf("presign put: %w", err)
	}

	return key, req.URL, nil
}

func (s *mediaService) DownloadURL(ctx context.Context, key string) (string, error) {
	presigner, err := s.presignClient(ctx)
	if err != nil {
		return "", err
	}

	bucket := s.cfg.S3Bucket
	req, err := presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		return "", fmt.Errorf("presign get: %w", err)
	}

	return req.URL, nil
}
