// Package storage is the client's durable key/value store. It plays the role
// a browser's localStorage plays for a web front end: it survives restarts
// and holds the persisted credential record (token and user) under fixed keys.
package storage

import "context"

// Store is a durable key/value store.
//
// Get returns (nil, nil) for a missing key. Delete is idempotent.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}

// batchWriter is implemented by stores that can apply several writes and
// deletes atomically.
type batchWriter interface {
	Apply(ctx context.Context, set map[string][]byte, del []string) error
}
