package minio

import (
	"context"
	"fmt"
	"time"

	miniogo "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

func newClient(cfg MinIOConfig) (*miniogo.Client, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("minio: endpoint is required")
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, fmt.Errorf("minio: access key and secret key are required")
	}

	client, err := miniogo.New(cfg.Endpoint, &miniogo.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("minio: failed to create client: %w", err)
	}
	return client, nil
}

// UploadFile uploads a single object.
func (m *minioImpl) UploadFile(ctx context.Context, req *UploadRequest) (*UploadResult, error) {
	bucket := req.BucketName
	if bucket == "" {
		bucket = m.cfg.Bucket
	}

	info, err := m.client.PutObject(ctx, bucket, req.ObjectName, req.Reader, req.Size, miniogo.PutObjectOptions{
		ContentType:  req.ContentType,
		UserMetadata: req.Metadata,
	})
	if err != nil {
		return nil, fmt.Errorf("minio: failed to upload object %s: %w", req.ObjectName, err)
	}

	return &UploadResult{
		Bucket:     bucket,
		ObjectName: req.ObjectName,
		Size:       info.Size,
		ETag:       info.ETag,
	}, nil
}

// GetPresignedDownloadURL creates a time-limited download URL for an object.
func (m *minioImpl) GetPresignedDownloadURL(ctx context.Context, req *PresignedURLRequest) (*PresignedURL, error) {
	bucket := req.BucketName
	if bucket == "" {
		bucket = m.cfg.Bucket
	}
	expiry := req.Expiry
	if expiry <= 0 {
		expiry = 30 * time.Minute
	}

	u, err := m.client.PresignedGetObject(ctx, bucket, req.ObjectName, expiry, nil)
	if err != nil {
		return nil, fmt.Errorf("minio: failed to presign object %s: %w", req.ObjectName, err)
	}

	return &PresignedURL{
		URL:       u.String(),
		ExpiresAt: time.Now().Add(expiry),
	}, nil
}

// EnsureBucket creates the bucket if it does not exist.
func (m *minioImpl) EnsureBucket(ctx context.Context, bucketName string) error {
	exists, err := m.client.BucketExists(ctx, bucketName)
	if err != nil {
		return fmt.Errorf("minio: failed to check bucket %s: %w", bucketName, err)
	}
	if exists {
		return nil
	}
	if err := m.client.MakeBucket(ctx, bucketName, miniogo.MakeBucketOptions{Region: m.cfg.Region}); err != nil {
		return fmt.Errorf("minio: failed to create bucket %s: %w", bucketName, err)
	}
	return nil
}

// HealthCheck verifies connectivity by listing the configured bucket.
func (m *minioImpl) HealthCheck(ctx context.Context) error {
	_, err := m.client.BucketExists(ctx, m.cfg.Bucket)
	if err != nil {
		return fmt.Errorf("minio: health check failed: %w", err)
	}
	return nil
}
