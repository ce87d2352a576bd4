package store

import (
	"fmt"
	"log/slog"

	"github.com/mesh-intelligence/todos/internal/diskv"
	"github.com/mesh-intelligence/todos/internal/sqlite"
	"github.com/mesh-intelligence/todos/pkg/types"
)

// NewBackend returns a detached backend for the given name.
func NewBackend(name string) (types.Backend, error) {
	switch name {
	case types.BackendSQLite:
		return sqlite.NewBackend(), nil
	case types.BackendDiskv:
		return diskv.NewBackend(), nil
	case types.BackendFile:
		return NewFileBackend(), nil
	case types.BackendMemory:
		return NewMemoryBackend(), nil
	default:
		return nil, fmt.Errorf("%w: %q", types.ErrBackendUnknown, name)
	}
}

// Open validates cfg, attaches the configured backend, and returns a Store
// writing under cfg.Namespace. The caller must Close the store.
func Open(cfg types.Config, logger *slog.Logger) (*Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	backend, err := NewBackend(cfg.Backend)
	if err != nil {
		return nil, err
	}
	if err := backend.Attach(cfg); err != nil {
		return nil, fmt.Errorf("attach %s backend: %w", cfg.Backend, err)
	}
	if logger != nil {
		logger = logger.With("backend", cfg.Backend)
	}
	return New(backend, cfg.Namespace, logger), nil
}
