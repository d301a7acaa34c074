package storage

import (
	"context"
	"time"
)

// StorageService defines the interface for media storage operations. The form
// core only ever stores the returned URL; file content is never inspected.
type StorageService interface {
	UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error)
	DeleteFile(ctx context.Context, publicID string) error
	GetDownloadURL(ctx context.Context, resourceType, publicID string, expires time.Duration) (string, error)
}
