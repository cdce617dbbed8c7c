package storage

import (
	"context"
	"io"
	"log"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/pkg/exceptions"
	"net/url"
	"sync"
	"time"

	"github.com/minio/minio-go/v7"
)

var (
	storageServiceInstance contracts.StorageService
	onceStorageService     sync.Once
)

type minioStorageService struct {
	Client     *minio.Client
	BucketName string
}

func NewMinioStorageService(client *minio.Client, bucketName string) contracts.StorageService {
	onceStorageService.Do(func() {
		ctx := context.Background()
		exists, err := client.BucketExists(ctx, bucketName)
		if err != nil {
			log.Fatalf("Failed to check minio bucket: %s", err.Error())
		}
		if !exists {
			err = client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{})
			if err != nil {
				log.Fatalf("Failed to create minio bucket: %s", err.Error())
			}
		}
		storageServiceInstance = &minioStorageService{
			Client:     client,
			BucketName: bucketName,
		}
	})
	return storageServiceInstance
}

func (svc *minioStorageService) UploadObject(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) error {
	_, err := svc.Client.PutObject(ctx, svc.BucketName, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return exceptions.ErrMinioUpload(err)
	}
	return nil
}

func (svc *minioStorageService) PresignedGetURL(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	presignedURL, err := svc.Client.PresignedGetObject(ctx, svc.BucketName, objectName, expiry, url.Values{})
	if err != nil {
		return "", exceptions.ErrMinioPresign(err)
	}
	return presignedURL.String(), nil
}
