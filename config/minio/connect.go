package minio

import (
	"context"
	"fmt"
	"sync"

	"ugc-srv/config"
	"ugc-srv/pkg/minio"
)

var (
	instance minio.MinIO
	once     sync.Once
	mu       sync.RWMutex
	initErr  error
)

// Connect initializes the MinIO client using singleton pattern and
// makes sure the configured bucket exists.
func Connect(ctx context.Context, cfg config.MinIOConfig) (minio.MinIO, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}

	if initErr != nil {
		once = sync.Once{}
		initErr = nil
	}

	var err error
	once.Do(func() {
		client, e := minio.New(minio.MinIOConfig{
			Endpoint:  cfg.Endpoint,
			AccessKey: cfg.AccessKey,
			SecretKey: cfg.SecretKey,
			UseSSL:    cfg.UseSSL,
			Region:    cfg.Region,
			Bucket:    cfg.Bucket,
		})
		if e != nil {
			err = fmt.Errorf("failed to initialize MinIO client: %w", e)
			initErr = err
			return
		}

		if e := client.EnsureBucket(ctx, cfg.Bucket); e != nil {
			err = fmt.Errorf("failed to ensure MinIO bucket: %w", e)
			initErr = err
			return
		}

		instance = client
	})

	return instance, err
}

// GetClient returns the singleton MinIO client instance.
func GetClient() minio.MinIO {
	mu.RLock()
	defer mu.RUnlock()

	if instance == nil {
		panic("MinIO client not initialized. Call Connect() first")
	}
	return instance
}

// HealthCheck verifies the MinIO endpoint is reachable.
func HealthCheck(ctx context.Context) error {
	mu.RLock()
	defer mu.RUnlock()

	if instance == nil {
		return fmt.Errorf("MinIO client not initialized")
	}
	if err := instance.HealthCheck(ctx); err != nil {
		return fmt.Errorf("MinIO health check failed: %w", err)
	}
	return nil
}

// Disconnect resets the singleton instance.
func Disconnect() {
	mu.Lock()
	defer mu.Unlock()

	instance = nil
	once = sync.Once{}
	initErr = nil
}
