package minio

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"

	"github.com/Aleph-Alpha/embedding-service/pkg/observability"
)

// ObjectInfo is the subset of object metadata the installer needs.
type ObjectInfo struct {
	// Key is relative to the configured prefix.
	Key  string
	Size int64
	ETag string
}

// ObjectKey joins the model prefix and a relative file path.
func (m *Minio) ObjectKey(rel string) string {
	return path.Join(m.cfg.Prefix, rel)
}

// Put uploads reader as prefix/rel. size may be -1 when unknown.
func (m *Minio) Put(ctx context.Context, rel string, reader io.Reader, size int64) (int64, error) {
	start := time.Now()
	key := m.ObjectKey(rel)

	info, err := m.Client.PutObject(ctx, m.cfg.BucketName, key, reader, size, minio.PutObjectOptions{
		PartSize:    m.cfg.PartSize,
		ContentType: contentType(rel),
	})
	m.observe("put", key, time.Since(start), err, info.Size)
	if err != nil {
		return 0, fmt.Errorf("failed to put object %s: %w", key, err)
	}
	return info.Size, nil
}

// Open streams prefix/rel. The caller closes the reader.
func (m *Minio) Open(ctx context.Context, rel string) (io.ReadCloser, int64, error) {
	start := time.Now()
	key := m.ObjectKey(rel)

	obj, err := m.Client.GetObject(ctx, m.cfg.BucketName, key, minio.GetObjectOptions{})
	if err != nil {
		m.observe("get", key, time.Since(start), err, 0)
		return nil, 0, fmt.Errorf("failed to get object %s: %w", key, err)
	}

	// GetObject is lazy, Stat surfaces a missing key.
	stat, err := obj.Stat()
	m.observe("get", key, time.Since(start), err, stat.Size)
	if err != nil {
		_ = obj.Close()
		return nil, 0, fmt.Errorf("failed to get object stats %s: %w", key, err)
	}
	return obj, stat.Size, nil
}

// List returns every object under the model prefix.
func (m *Minio) List(ctx context.Context) ([]ObjectInfo, error) {
	start := time.Now()
	prefix := strings.TrimSuffix(m.cfg.Prefix, "/") + "/"

	var out []ObjectInfo
	for obj := range m.Client.ListObjects(ctx, m.cfg.BucketName, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if obj.Err != nil {
			m.observe("list", prefix, time.Since(start), obj.Err, int64(len(out)))
			return nil, fmt.Errorf("failed to list %s: %w", prefix, obj.Err)
		}
		out = append(out, ObjectInfo{
			Key:  strings.TrimPrefix(obj.Key, prefix),
			Size: obj.Size,
			ETag: obj.ETag,
		})
	}
	m.observe("list", prefix, time.Since(start), nil, int64(len(out)))
	return out, nil
}

func (m *Minio) observe(operation, key string, d time.Duration, err error, size int64) {
	if m.observer == nil {
		return
	}
	m.observer.ObserveOperation(observability.OperationContext{
		Component:   "minio",
		Operation:   operation,
		Resource:    m.cfg.BucketName,
		SubResource: key,
		Duration:    d,
		Error:       err,
		Size:        size,
	})
}

func contentType(name string) string {
	switch path.Ext(name) {
	case ".json":
		return "application/json"
	case ".txt":
		return "text/plain"
	default:
		return "application/octet-stream"
	}
}
