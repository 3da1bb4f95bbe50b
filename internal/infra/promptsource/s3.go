package promptsource

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// maxTemplateBytes caps how much of a remote object is read.
const maxTemplateBytes = 64 << 10

// S3Source reads the template from an object in an S3 compatible store (R2, MinIO, AWS).
type S3Source struct {
	client *minio.Client
	bucket string
	key    string
}

// NewS3Source constructs the object store adapter.
func NewS3Source(endpoint, accessKey, secretKey, bucket, region, key string) (*S3Source, error) {
	cleanEndpoint := sanitizeEndpoint(endpoint)
	useSSL := !strings.HasPrefix(strings.ToLower(strings.TrimSpace(endpoint)), "http://")
	client, err := minio.New(cleanEndpoint, &minio.Options{
		Creds:        credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure:       useSSL,
		Region:       region,
		BucketLookup: minio.BucketLookupPath,
	})
	if err != nil {
		return nil, fmt.Errorf("init s3 client: %w", err)
	}
	return &S3Source{client: client, bucket: bucket, key: key}, nil
}

func (s *S3Source) Name() string {
	return "s3://" + s.bucket + "/" + s.key
}

func (s *S3Source) Fetch(ctx context.Context) (string, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, s.key, minio.GetObjectOptions{})
	if err != nil {
		return "", fmt.Errorf("get prompt object: %w", err)
	}
	defer obj.Close()
	// GetObject is lazy; Stat surfaces a missing key before reading.
	if _, err := obj.Stat(); err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return "", fmt.Errorf("%w: %s", ErrNotFound, s.Name())
		}
		return "", fmt.Errorf("stat prompt object: %w", err)
	}
	data, err := io.ReadAll(io.LimitReader(obj, maxTemplateBytes))
	if err != nil {
		return "", fmt.Errorf("read prompt object: %w", err)
	}
	return string(data), nil
}

var _ Source = (*S3Source)(nil)

// sanitizeEndpoint removes schemes and paths to satisfy minio.New expectations.
func sanitizeEndpoint(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return raw
	}
	raw = strings.TrimPrefix(strings.TrimPrefix(raw, "https://"), "http://")
	if idx := strings.Index(raw, "/"); idx >= 0 {
		raw = raw[:idx]
	}
	return raw
}
