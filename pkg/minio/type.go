package minio

import (
	"io"
	"time"

	miniogo "github.com/minio/minio-go/v7"
)

// MinIOConfig holds MinIO client configuration.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Region    string
	Bucket    string
}

// minioImpl implements MinIO.
type minioImpl struct {
	client *miniogo.Client
	cfg    MinIOConfig
}

// UploadRequest describes a single object upload.
type UploadRequest struct {
	BucketName  string
	ObjectName  string
	Reader      io.Reader
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// UploadResult describes a completed upload.
type UploadResult struct {
	Bucket     string
	ObjectName string
	Size       int64
	ETag       string
}

// PresignedURLRequest describes a presigned download URL request.
type PresignedURLRequest struct {
	BucketName string
	ObjectName string
	Expiry     time.Duration
}

// PresignedURL is a time-limited download URL.
type PresignedURL struct {
	URL       string
	ExpiresAt time.Time
}
