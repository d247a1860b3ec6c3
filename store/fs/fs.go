// Package fs provides a filesystem-backed slotcache store: one file per key
// under a directory. Writes go to a temp file in the same directory and are
// renamed into place, so readers never observe a torn record.
//
// File names are key digests (see internal/util), so arbitrary key strings
// are safe regardless of path separators or case-insensitive filesystems.
package fs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/unkn0wn-root/slotcache/internal/util"
	st "github.com/unkn0wn-root/slotcache/store"
)

type FS struct {
	dir string
}

var _ st.Store = (*FS)(nil)

// New ensures dir exists and returns a store rooted at it.
func New(dir string) (*FS, error) {
	if dir == "" {
		return nil, errors.New("fs store: dir is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("fs store: %w", err)
	}
	return &FS{dir: dir}, nil
}

func (s *FS) path(key string) string {
	return filepath.Join(s.dir, util.Filename(key))
}

func (s *FS) Read(_ context.Context, key string) ([]byte, bool, error) {
	b, err := os.ReadFile(s.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

func (s *FS) Write(_ context.Context, key string, value []byte) error {
	dst := s.path(key)
	tmp, err := os.CreateTemp(s.dir, ".slot-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), dst)
}

func (s *FS) Delete(_ context.Context, key string) error {
	err := os.Remove(s.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil // idempotent
	}
	return err
}

func (s *FS) Close(_ context.Context) error { return nil }
