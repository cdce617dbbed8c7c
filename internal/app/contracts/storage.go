package contracts

import (
	"context"
	"io"
	"time"
)

type StorageService interface {
	UploadObject(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) error
	PresignedGetURL(ctx context.Context, objectName string, expiry time.Duration) (string, error)
}
