package repositories

import "context"

// BlobStore abstracts binary asset storage. Put returns an opaque reference
// usable later for retrieval and deletion.
type BlobStore interface {
	Put(ctx context.Context, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, ref string) error
}
