package ids

import (
	"math/rand/v2"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var v4Pattern = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

func TestNewIDFormat(t *testing.T) {
	g := New()
	for i := 0; i < 200; i++ {
		id := g.NewID()
		require.Len(t, id, 36)
		assert.Regexp(t, v4Pattern, id)

		parsed, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(4), parsed.Version())
		assert.Equal(t, uuid.RFC4122, parsed.Variant())
	}
}

func TestNewIDUnique(t *testing.T) {
	g := New()
	seen := make(map[string]bool, 1000)
	for i := 0; i < 1000; i++ {
		id := g.NewID()
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestNewWithSourceIsDeterministic(t *testing.T) {
	a := NewWithSource(rand.NewPCG(1, 2))
	b := NewWithSource(rand.NewPCG(1, 2))
	c := NewWithSource(rand.NewPCG(3, 4))

	first := a.NewID()
	assert.Equal(t, first, b.NewID())
	assert.NotEqual(t, first, c.NewID())
	assert.NotEqual(t, first, a.NewID(), "successive ids from one generator differ")
}
