package repositories

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/sbilibin2017/recipe-search/internal/logger"
)

// LocalImageRepository stores uploaded images in a directory served by the app.
type LocalImageRepository struct {
	dir       string // directory the files are written to
	urlPrefix string // public path of dir, e.g. "/static/imgs/"
}

func NewLocalImageRepository(dir, urlPrefix string) *LocalImageRepository {
	return &LocalImageRepository{dir: dir, urlPrefix: urlPrefix}
}

// Save writes the image and returns the path it is served from.
func (r *LocalImageRepository) Save(ctx context.Context, name string, data []byte) (string, error) {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create image dir: %w", err)
	}

	path := filepath.Join(r.dir, filepath.Base(name))
	err := os.WriteFile(path, data, 0o644)

	logger.Log.Infow("image saved", "path", path, "size", len(data), "error", err)

	if err != nil {
		return "", err
	}
	return r.urlPrefix + filepath.Base(name), nil
}

// S3PutObjectAPI is the part of the S3 client used for uploads.
type S3PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3ImageRepository stores uploaded images in an S3 compatible bucket.
type S3ImageRepository struct {
	client    S3PutObjectAPI
	bucket    string
	prefix    string
	publicURL string
}

func NewS3ImageRepository(client S3PutObjectAPI, bucket, prefix, publicURL string) *S3ImageRepository {
	return &S3ImageRepository{
		client:    client,
		bucket:    bucket,
		prefix:    strings.Trim(prefix, "/"),
		publicURL: strings.TrimRight(publicURL, "/"),
	}
}

// NewS3Client builds an S3 client with static credentials. A non-empty endpoint
// targets S3 compatible storage such as MinIO or Spaces.
func NewS3Client(ctx context.Context, region, endpoint, accessKey, secretKey string) (*s3.Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(accessKey, secretKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to load S3 config: %w", err)
	}

	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	}), nil
}

// Save uploads the image and returns its public URL.
func (r *S3ImageRepository) Save(ctx context.Context, name string, data []byte) (string, error) {
	key := filepath.Base(name)
	if r.prefix != "" {
		key = r.prefix + "/" + key
	}

	_, err := r.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(r.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("image/jpeg"),
	})

	logger.Log.Infow("image uploaded", "bucket", r.bucket, "key", key, "size", len(data), "error", err)

	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	return r.publicURL + "/" + key, nil
}
