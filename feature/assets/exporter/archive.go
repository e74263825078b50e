package exporter

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"asset-exchange/core/storage"

	"github.com/minio/minio-go/v7"
)

// Archiver uploads export artifacts to object storage and lists what has
// been archived so far.
type Archiver struct {
	Client storage.Client
	Bucket string
	Prefix string
}

// Store uploads one artifact under the configured prefix, creating the
// bucket on first use.
func (a *Archiver) Store(ctx context.Context, name string, data []byte) error {
	exists, err := a.Client.BucketExists(ctx, a.Bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", a.Bucket, err)
	}
	if !exists {
		if err := a.Client.MakeBucket(ctx, a.Bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", a.Bucket, err)
		}
	}

	key := a.key(name)
	_, err = a.Client.PutObject(ctx, a.Bucket, key, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "text/csv"})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return nil
}

// List returns the object keys archived under the prefix.
func (a *Archiver) List(ctx context.Context) ([]string, error) {
	var keys []string
	objects := a.Client.ListObjects(ctx, a.Bucket, minio.ListObjectsOptions{
		Prefix:    a.Prefix,
		Recursive: true,
	})
	for obj := range objects {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list archives: %w", obj.Err)
		}
		keys = append(keys, obj.Key)
	}
	return keys, nil
}

func (a *Archiver) key(name string) string {
	if a.Prefix == "" {
		return name
	}
	return path.Join(a.Prefix, name)
}
