package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/mesh-intelligence/todos/pkg/types"
)

// FileBackend stores each key as DataDir/<key>.json, replaced atomically on
// every write.
type FileBackend struct {
	mu       sync.RWMutex
	attached bool
	dir      string
}

// NewFileBackend creates a detached file backend.
func NewFileBackend() *FileBackend {
	return &FileBackend{}
}

// Attach creates DataDir if needed.
func (b *FileBackend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}
	dir := config.DataDir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	b.dir = dir
	b.attached = true
	return nil
}

// Detach is idempotent.
func (b *FileBackend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.attached = false
	return nil
}

// Get returns the contents of DataDir/<key>.json, or ErrNotFound.
func (b *FileBackend) Get(key string) ([]byte, error) {
	path, err := b.path(key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

// Set atomically replaces DataDir/<key>.json.
func (b *FileBackend) Set(key string, value []byte) error {
	path, err := b.path(key)
	if err != nil {
		return err
	}
	return writeAtomic(path, value)
}

func (b *FileBackend) path(key string) (string, error) {
	if key == "" || key == "." || key == ".." || strings.ContainsAny(key, `/\`) {
		return "", types.ErrInvalidKey
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	if !b.attached {
		return "", types.ErrDetached
	}
	return filepath.Join(b.dir, key+".json"), nil
}

// writeAtomic writes data to path using the temp-file, fsync, rename pattern
// so readers see either the old or the new contents.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".todos-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
