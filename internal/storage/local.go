package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"
)

type localStore struct {
	root string
}

func NewLocalStore(root string) (Store, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create storage root %s: %w", root, err)
	}
	return &localStore{root: root}, nil
}

func (s *localStore) Save(ctx context.Context, prefix string, filename string, contentType string, body io.Reader) (string, error) {
	key := objectKey(prefix, filename)

	dest := filepath.Join(s.root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return "", err
	}

	file, err := os.Create(dest)
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(file, body); err != nil {
		_ = file.Close()
		_ = os.Remove(dest)
		return "", err
	}
	if err := file.Close(); err != nil {
		return "", err
	}

	return key, nil
}

func (s *localStore) Open(ctx context.Context, key string) (io.ReadCloser, string, error) {
	// Keys come from our own database; reject traversal anyway.
	clean := path.Clean("/" + key)
	if strings.Contains(clean, "..") {
		return nil, "", fmt.Errorf("invalid storage key: %s", key)
	}

	file, err := os.Open(filepath.Join(s.root, filepath.FromSlash(clean)))
	if err != nil {
		return nil, "", err
	}

	contentType := mime.TypeByExtension(path.Ext(key))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return file, contentType, nil
}
