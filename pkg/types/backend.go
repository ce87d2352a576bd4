package types

import "errors"

// Backend is a local key-value store holding opaque values under string keys.
// Callers attach to a backend, read and write keys, and detach when done.
type Backend interface {
	// Attach connects the backend to the storage described by config.
	// Creates the DataDir if it does not exist. Returns ErrAlreadyAttached
	// if called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls succeed.
	// After Detach, Get and Set return ErrDetached.
	Detach() error

	// Get returns the value stored under key.
	// Returns ErrNotFound if the key has never been written.
	Get(key string) ([]byte, error)

	// Set replaces the value stored under key.
	Set(key string, value []byte) error
}

// Backend lifecycle errors.
var (
	ErrDetached        = errors.New("backend is detached")
	ErrAlreadyAttached = errors.New("backend is already attached")
)

// Key and entity errors.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidKey   = errors.New("invalid key")
	ErrInvalidTitle = errors.New("title must not be empty")
)
