package minio

import "context"

// MinIO defines the interface for object storage operations.
// Implementations are safe for concurrent use.
type MinIO interface {
	UploadFile(ctx context.Context, req *UploadRequest) (*UploadResult, error)
	GetPresignedDownloadURL(ctx context.Context, req *PresignedURLRequest) (*PresignedURL, error)
	EnsureBucket(ctx context.Context, bucketName string) error
	HealthCheck(ctx context.Context) error
}

// New creates a new MinIO client. Returns the interface.
func New(cfg MinIOConfig) (MinIO, error) {
	client, err := newClient(cfg)
	if err != nil {
		return nil, err
	}
	return &minioImpl{client: client, cfg: cfg}, nil
}
