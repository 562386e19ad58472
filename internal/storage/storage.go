package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when no value exists under the key.
// Callers treat it as "start empty", never as a fatal condition.
var ErrNotFound = errors.New("storage: key not found")

// Store is a durable key/value blob store. Values are opaque JSON blobs;
// the engines own their encoding.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
