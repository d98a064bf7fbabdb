// Package storage uploads images to an S3-compatible bucket and hands back
// deterministic public URLs.
package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	aws "github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

type Config struct {
	Bucket        string
	Region        string
	Endpoint      string // optional, for MinIO-style backends
	AccessKey     string
	SecretKey     string
	PathStyle     bool
	PublicBaseURL string
}

type ObjectStore struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
}

// New builds the store with static access-key credentials, falling back to
// the default chain when no keys are configured.
func New(ctx context.Context, cfg Config) (*ObjectStore, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket required")
	}
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.PathStyle {
			o.UsePathStyle = true
		}
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	base := cfg.PublicBaseURL
	if base == "" {
		base = cfg.Endpoint
	}
	return &ObjectStore{
		client:        client,
		bucket:        cfg.Bucket,
		publicBaseURL: strings.TrimRight(base, "/"),
	}, nil
}

// ObjectKey lays objects out as <entity>/<year>/<month>/<uuid>-<filename>.
func ObjectKey(entityKind, filename string, now time.Time) string {
	return fmt.Sprintf("%s/%d/%02d/%s-%s",
		entityKind, now.Year(), int(now.Month()), uuid.NewString(), SanitizeFilename(filename))
}

// SanitizeFilename keeps the base name and squashes anything that does not
// belong in an object key.
func SanitizeFilename(name string) string {
	base := filepath.Base(name)
	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	return b.String()
}

// PublicURL is <base>/<bucket>/<key>; no signing, the bucket is public-read.
func (s *ObjectStore) PublicURL(key string) string {
	return fmt.Sprintf("%s/%s/%s", s.publicBaseURL, s.bucket, key)
}

// Upload validates nothing; callers guard size and type first (ValidateImage).
func (s *ObjectStore) Upload(ctx context.Context, entityKind, filename, contentType string, r io.Reader) (string, error) {
	key := ObjectKey(entityKind, filename, time.Now())
	input := &s3.PutObjectInput{
		Bucket:      &s.bucket,
		Key:         &key,
		Body:        r,
		ContentType: &contentType,
	}
	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", err
	}
	return s.PublicURL(key), nil
}
