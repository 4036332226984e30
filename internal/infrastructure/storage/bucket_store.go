// Package storage provides the blob store backed by a gocloud.dev bucket.
package storage

import (
	"context"

	"github.com/google/uuid"
	"gocloud.dev/blob"

	_ "gocloud.dev/blob/fileblob"
)

// BucketStore stores binary assets in a gocloud.dev bucket. References
// returned by Put are the object keys.
type BucketStore struct {
	bucket *blob.Bucket
}

// OpenBucketStore opens a bucket from a gocloud URL (file://, s3://, ...).
func OpenBucketStore(ctx context.Context, bucketURL string) (*BucketStore, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, err
	}
	return &BucketStore{bucket: bucket}, nil
}

// NewBucketStore wraps an already-open bucket (used for testing with memblob).
func NewBucketStore(bucket *blob.Bucket) *BucketStore {
	return &BucketStore{bucket: bucket}
}

// Put writes the data under a fresh key and returns the key.
func (s *BucketStore) Put(ctx context.Context, data []byte, contentType string) (string, error) {
	key := uuid.New().String()
	opts := &blob.WriterOptions{ContentType: contentType}
	if err := s.bucket.WriteAll(ctx, key, data, opts); err != nil {
		return "", err
	}
	return key, nil
}

// Delete removes the object under ref.
func (s *BucketStore) Delete(ctx context.Context, ref string) error {
	return s.bucket.Delete(ctx, ref)
}

// Close releases the underlying bucket.
func (s *BucketStore) Close() error {
	return s.bucket.Close()
}
