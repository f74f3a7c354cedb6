package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=storage.go -destination=mock/storage_mock.go -package=mock

// Store persists uploaded files (leave bills, resumes) and streams them back.
// Keys are opaque to callers; only the Store that produced a key can open it.
type Store interface {
	Save(ctx context.Context, prefix string, filename string, contentType string, body io.Reader) (string, error)
	Open(ctx context.Context, key string) (io.ReadCloser, string, error)
}

// NewFromEnv selects the backend by STORAGE_DRIVER: "s3" or "local"
// (the default).
func NewFromEnv(ctx context.Context) (Store, error) {
	driver := strings.ToLower(strings.TrimSpace(os.Getenv("STORAGE_DRIVER")))
	switch driver {
	case "", "local":
		root := os.Getenv("STORAGE_LOCAL_DIR")
		if root == "" {
			root = "./uploads"
		}
		return NewLocalStore(root)
	case "s3":
		bucket := os.Getenv("STORAGE_S3_BUCKET")
		if bucket == "" {
			return nil, fmt.Errorf("STORAGE_S3_BUCKET is required when STORAGE_DRIVER=s3")
		}
		return NewS3Store(ctx, bucket)
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER: %s", driver)
	}
}

// objectKey builds a collision-free key keeping the original extension so
// content type can be recovered from the name if the backend loses it.
func objectKey(prefix string, filename string) string {
	ext := path.Ext(filename)
	name := fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), uuid.NewString(), ext)
	return path.Join(prefix, name)
}
