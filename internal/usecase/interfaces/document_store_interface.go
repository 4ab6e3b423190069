package interfaces

import "context"

// IDocumentStore is a durable key-value store of JSON documents.
// Get reports found=false for a key that was never written.
type IDocumentStore interface {
	Get(ctx context.Context, key string) (payload []byte, found bool, err error)
	Put(ctx context.Context, key string, payload []byte) error
}
