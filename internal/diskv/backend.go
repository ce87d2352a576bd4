// Package diskv implements a key-value backend on github.com/peterbourgon/diskv.
// Each key is one file under DataDir/kv; writes go through a temp directory
// and are renamed into place.
package diskv

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/peterbourgon/diskv/v3"

	"github.com/mesh-intelligence/todos/pkg/types"
)

// Directory names inside DataDir.
const (
	baseDirName = "kv"
	tempDirName = "kv-tmp"
)

// cacheSizeMax bounds the in-memory read cache.
const cacheSizeMax = 1024 * 1024 // 1MB

// Backend implements types.Backend using diskv.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	d        *diskv.Diskv
}

// NewBackend creates a new diskv backend instance.
// The backend is not attached; call Attach with a Config to initialize.
func NewBackend() *Backend {
	return &Backend{}
}

// Attach points the store at DataDir/kv, creating the directories if needed.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}

	basePath := filepath.Join(dataDir, baseDirName)
	tempDir := filepath.Join(dataDir, tempDirName)
	for _, dir := range []string{basePath, tempDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}

	b.d = diskv.New(diskv.Options{
		BasePath:     basePath,
		TempDir:      tempDir,
		Transform:    flatTransform,
		CacheSizeMax: cacheSizeMax,
	})
	b.attached = true
	return nil
}

// Detach drops the cache. Detach is idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}
	b.d = nil
	b.attached = false
	return nil
}

// Get returns the value stored under key, or ErrNotFound.
func (b *Backend) Get(key string) ([]byte, error) {
	if err := validKey(key); err != nil {
		return nil, err
	}
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrDetached
	}

	val, err := b.d.Read(key)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	return val, nil
}

// Set replaces the value stored under key.
func (b *Backend) Set(key string, value []byte) error {
	if err := validKey(key); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.ErrDetached
	}

	if err := b.d.Write(key, value); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// flatTransform stores every key directly under BasePath.
func flatTransform(string) []string {
	return []string{}
}

// validKey rejects keys that cannot be used as a single file name.
func validKey(key string) error {
	if key == "" || key == "." || key == ".." || strings.ContainsAny(key, `/\`) {
		return types.ErrInvalidKey
	}
	return nil
}
