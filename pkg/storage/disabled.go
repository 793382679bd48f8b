package storage

import (
	"context"
	"errors"
	"io"
)

var errStorageDisabled = errors.New("document storage is not configured")

// Disabled is the FileStore used when no S3 bucket is configured; every
// operation fails so CV uploads surface a clear error instead of a panic.
type Disabled struct{}

func (Disabled) Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error) {
	return "", errStorageDisabled
}

func (Disabled) Delete(ctx context.Context, key string) error {
	return errStorageDisabled
}
