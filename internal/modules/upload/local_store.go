package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const (
	UploadsBaseDir = "./uploads"
	StaticURLBase  = "/static/uploads"
)

// LocalStore keeps files on disk and serves them under a static URL prefix.
type LocalStore struct {
	baseDir    string
	staticBase string
}

func NewLocalStore(baseDir, staticBase string) *LocalStore {
	if baseDir == "" {
		baseDir = UploadsBaseDir
	}
	if staticBase == "" {
		staticBase = StaticURLBase
	}
	return &LocalStore{baseDir: baseDir, staticBase: strings.TrimRight(staticBase, "/")}
}

func (s *LocalStore) BaseDir() string { return s.baseDir }

func (s *LocalStore) Put(_ context.Context, key, _ string, body io.Reader, _ int64) error {
	absPath, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}

	tmp := absPath + ".part"
	dst, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if _, err := io.Copy(dst, body); err != nil {
		_ = dst.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err := dst.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, absPath)
}

func (s *LocalStore) Stat(_ context.Context, key string) (int64, bool, error) {
	absPath, err := s.path(key)
	if err != nil {
		return 0, false, err
	}
	info, err := os.Stat(absPath)
	if errors.Is(err, os.ErrNotExist) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return info.Size(), true, nil
}

func (s *LocalStore) URL(_ context.Context, key string) (string, error) {
	if _, err := s.path(key); err != nil {
		return "", err
	}
	return s.staticBase + "/" + key, nil
}

func (s *LocalStore) Delete(_ context.Context, key string) error {
	absPath, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(absPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// path maps a key into baseDir and rejects keys that would escape it.
func (s *LocalStore) path(key string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(key))
	if key == "" || filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("invalid storage key %q", key)
	}
	return filepath.Join(s.baseDir, clean), nil
}
