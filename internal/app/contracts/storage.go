package contracts

import (
	"context"
	"io"
	"time"
)

type StorageService interface {
	UploadObject(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error)
	GetPresignedURL(ctx context.Context, objectName string, expiry time.Duration) (string, error)
}
