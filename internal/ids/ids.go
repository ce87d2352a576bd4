// Package ids generates item identifiers.
//
// Identifiers are UUID version 4 strings (8-4-4-4-12 lowercase hex) drawn from
// a non-cryptographic pseudo-random source. They are statistically unique but
// carry no guarantee beyond a very low collision probability.
package ids

import (
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

// Generator produces item identifiers. It is not safe for concurrent use.
type Generator struct {
	r *rand.Rand
}

// New returns a Generator seeded from the clock.
func New() *Generator {
	seed := uint64(time.Now().UnixNano())
	return NewWithSource(rand.NewPCG(seed, rand.Uint64()))
}

// NewWithSource returns a Generator drawing bytes from src. A fixed source
// yields a fixed sequence of identifiers.
func NewWithSource(src rand.Source) *Generator {
	return &Generator{r: rand.New(src)}
}

// NewID returns a fresh version 4 UUID string.
func (g *Generator) NewID() string {
	id, err := uuid.NewRandomFromReader(byteReader{g.r})
	if err != nil {
		// byteReader never fails; keep a valid ID if that ever changes.
		return uuid.NewString()
	}
	return id.String()
}

// byteReader adapts a *rand.Rand to io.Reader for uuid.NewRandomFromReader.
type byteReader struct {
	r *rand.Rand
}

func (b byteReader) Read(p []byte) (int, error) {
	for i := 0; i < len(p); {
		v := b.r.Uint64()
		for j := 0; j < 8 && i < len(p); j++ {
			p[i] = byte(v)
			v >>= 8
			i++
		}
	}
	return len(p), nil
}
