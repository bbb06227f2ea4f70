package repository

import "context"

// KV is a durable key-value store. The engine uses it coarse-grained: the
// whole project collection is serialized under a single key.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
