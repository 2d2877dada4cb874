package ports

import (
	"context"
	"io"
)

// ContactPhotoPrefix is the object key prefix for contact photos
const ContactPhotoPrefix = "contacts"

// StoragePort hides where uploaded files live (local disk, S3/MinIO)
type StoragePort interface {
	// UploadFile stores the file under path and returns its public URL
	UploadFile(ctx context.Context, file io.Reader, size int64, path string, contentType string) (string, error)

	DeleteFile(ctx context.Context, path string) error

	GetFileURL(path string) string

	// KeyFromURL maps a URL returned by UploadFile back to its storage path
	KeyFromURL(url string) (string, bool)

	GetProviderName() string
}
