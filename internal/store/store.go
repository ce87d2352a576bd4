// Package store persists the whole todo collection as one JSON document under
// a single namespaced key of a types.Backend.
//
// Save always rewrites the full collection; the last write wins. Load never
// fails: an absent, unreadable, unparseable, or schema-invalid value is
// reported as an empty collection.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mesh-intelligence/todos/pkg/types"
)

// Store reads and writes the collection under one key of a backend.
type Store struct {
	backend   types.Backend
	namespace string
	log       *slog.Logger
}

// New returns a Store writing under namespace in an attached backend.
// A nil logger discards log output.
func New(backend types.Backend, namespace string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Store{
		backend:   backend,
		namespace: namespace,
		log:       logger.With("namespace", namespace),
	}
}

// Namespace returns the storage key this store writes under.
func (s *Store) Namespace() string {
	return s.namespace
}

// Load returns the stored collection in its saved order. It returns an empty,
// non-nil slice when nothing usable is stored.
func (s *Store) Load() []types.Todo {
	data, err := s.backend.Get(s.namespace)
	if errors.Is(err, types.ErrNotFound) {
		return []types.Todo{}
	}
	if err != nil {
		s.log.Warn("read stored todos", "err", err)
		return []types.Todo{}
	}

	todos, err := decode(data)
	if err != nil {
		s.log.Warn("discard stored todos", "err", err, "bytes", len(data))
		return []types.Todo{}
	}
	return todos
}

// Save replaces the stored collection with todos.
func (s *Store) Save(todos []types.Todo) error {
	if todos == nil {
		todos = []types.Todo{}
	}
	data, err := json.Marshal(todos)
	if err != nil {
		return fmt.Errorf("marshal todos: %w", err)
	}
	if err := s.backend.Set(s.namespace, data); err != nil {
		s.log.Error("write todos", "err", err, "count", len(todos))
		return fmt.Errorf("save todos: %w", err)
	}
	s.log.Debug("saved todos", "count", len(todos))
	return nil
}

// Close detaches the underlying backend.
func (s *Store) Close() error {
	return s.backend.Detach()
}

// decode parses and validates a stored document.
func decode(data []byte) ([]types.Todo, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if err := validate(doc); err != nil {
		return nil, err
	}

	var todos []types.Todo
	if err := json.Unmarshal(data, &todos); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return todos, nil
}
