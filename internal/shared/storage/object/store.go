package object

import (
	"context"
	"io"
)

// ObjectStore defines the contract for storing and retrieving binary objects
// under caller-chosen keys. Put overwrites any existing object at the key.
type ObjectStore interface {
	Put(ctx context.Context, storageKey string, contentType string, r io.Reader) (int64, error)
	Open(ctx context.Context, storageKey string) (io.ReadCloser, error)
	Delete(ctx context.Context, storageKey string) error
	PublicURL(storageKey string) string
}
