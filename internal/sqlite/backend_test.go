package sqlite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/todos/pkg/types"
)

func attached(t *testing.T, dir string) *Backend {
	t.Helper()
	b := NewBackend()
	require.NoError(t, b.Attach(types.Config{
		Backend:   types.BackendSQLite,
		DataDir:   dir,
		Namespace: types.DefaultNamespace,
	}))
	t.Cleanup(func() { b.Detach() })
	return b
}

func TestBackend_Attach(t *testing.T) {
	tmpDir := filepath.Join(t.TempDir(), "nested", "data")

	b := attached(t, tmpDir)

	_, err := os.Stat(filepath.Join(tmpDir, DBFileName))
	assert.NoError(t, err, "todos.db should be created")

	err = b.Attach(types.Config{Backend: types.BackendSQLite, DataDir: tmpDir, Namespace: "x"})
	assert.ErrorIs(t, err, types.ErrAlreadyAttached)
}

func TestBackend_Detach(t *testing.T) {
	b := attached(t, t.TempDir())

	require.NoError(t, b.Detach())
	assert.NoError(t, b.Detach(), "second Detach should not error")

	_, err := b.Get("todos")
	assert.ErrorIs(t, err, types.ErrDetached)
	assert.ErrorIs(t, b.Set("todos", []byte("[]")), types.ErrDetached)
}

func TestBackend_GetSet(t *testing.T) {
	b := attached(t, t.TempDir())

	_, err := b.Get("todos")
	assert.ErrorIs(t, err, types.ErrNotFound)

	require.NoError(t, b.Set("todos", []byte(`[{"id":"1"}]`)))
	got, err := b.Get("todos")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"1"}]`, string(got))

	require.NoError(t, b.Set("todos", []byte(`[]`)), "second write replaces the first")
	got, err = b.Get("todos")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))

	_, err = b.Get("other")
	assert.ErrorIs(t, err, types.ErrNotFound, "keys are independent")
}

func TestBackend_InvalidKey(t *testing.T) {
	b := attached(t, t.TempDir())

	_, err := b.Get("")
	assert.ErrorIs(t, err, types.ErrInvalidKey)
	assert.ErrorIs(t, b.Set("", nil), types.ErrInvalidKey)
}

func TestBackend_PersistsAcrossAttach(t *testing.T) {
	dir := t.TempDir()

	b := NewBackend()
	cfg := types.Config{Backend: types.BackendSQLite, DataDir: dir, Namespace: "todos"}
	require.NoError(t, b.Attach(cfg))
	require.NoError(t, b.Set("todos", []byte(`["kept"]`)))
	require.NoError(t, b.Detach())

	reopened := attached(t, dir)
	got, err := reopened.Get("todos")
	require.NoError(t, err)
	assert.Equal(t, `["kept"]`, string(got))
}
