// backend-go/internal/storage/storage.go
package storage

import "context"

// ObjectStorage captures the minimal operations image uploads need.
type ObjectStorage interface {
	// Upload stores the object and returns its public URL.
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
}
