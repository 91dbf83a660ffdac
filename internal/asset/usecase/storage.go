package usecase

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"ugc-srv/internal/model"
	"ugc-srv/pkg/minio"
)

// downloadURLExpiry bounds how long a handed-out artifact link stays valid.
const downloadURLExpiry = time.Hour

func (uc *implUseCase) upload(ctx context.Context, objectName string, data []byte, contentType string) error {
	_, err := uc.storage.UploadFile(ctx, &minio.UploadRequest{
		BucketName:  uc.bucket,
		ObjectName:  objectName,
		Reader:      bytes.NewReader(data),
		Size:        int64(len(data)),
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("upload %s: %w", objectName, err)
	}
	return nil
}

// presignResultURLs swaps stored object keys for time-limited download
// URLs on completed jobs. Presign failures leave the key in place.
func (uc *implUseCase) presignResultURLs(ctx context.Context, job *model.DerivedAsset) {
	if job.Status != model.AssetStatusCompleted {
		return
	}
	if job.OutputURL != "" {
		job.OutputURL = uc.presign(ctx, job.OutputURL)
	}
	if job.AudioURL != "" {
		job.AudioURL = uc.presign(ctx, job.AudioURL)
	}
}

func (uc *implUseCase) presign(ctx context.Context, objectName string) string {
	url, err := uc.storage.GetPresignedDownloadURL(ctx, &minio.PresignedURLRequest{
		BucketName: uc.bucket,
		ObjectName: objectName,
		Expiry:     downloadURLExpiry,
	})
	if err != nil {
		uc.l.Warnf(ctx, "asset.usecase.presign: presign %s failed: %v", objectName, err)
		return objectName
	}
	return url.URL
}
