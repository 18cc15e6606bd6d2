package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LocalStore writes images below Dir. Files are served by the HTTP server
// under BaseURL (e.g. "http://localhost:8000/uploads").
type LocalStore struct {
	Dir     string
	BaseURL string
	Prefix  string
}

func NewLocalStore(dir, baseURL string) *LocalStore {
	return &LocalStore{Dir: dir, BaseURL: strings.TrimRight(baseURL, "/"), Prefix: "restaurants"}
}

func (s *LocalStore) Store(ctx context.Context, img Image) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	_, ext, err := Detect(img.Data)
	if err != nil {
		return "", err
	}
	name := objectName(s.Prefix, ext)
	path := filepath.Join(s.Dir, filepath.FromSlash(name))

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}
	if err := os.WriteFile(path, img.Data, 0644); err != nil {
		return "", fmt.Errorf("write image: %w", err)
	}
	return s.BaseURL + "/" + name, nil
}

var _ ImageStore = (*LocalStore)(nil)
