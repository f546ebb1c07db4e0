// Package gen produces random JSON documents for fixture and corpus
// generation. Generation is deterministic for a given seed.
package gen

import (
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/jacoelho/jv"
)

const (
	maxMembers  = 5
	maxElements = 6
)

var words = []string{
	"alpha", "bravo", "charlie", "delta", "echo",
	"foxtrot", "golf", "hotel", "india", "juliett",
}

// Generator builds random jv values from a seeded source.
type Generator struct {
	rng *rand.Rand
}

// New returns a generator seeded deterministically.
func New(seed uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(seed, seed))}
}

// Document returns a random object nested at most maxDepth containers
// deep.
func (g *Generator) Document(maxDepth int) jv.Value {
	if maxDepth < 1 {
		maxDepth = 1
	}
	return g.object(maxDepth)
}

func (g *Generator) value(depth int) jv.Value {
	if depth <= 0 {
		return g.leaf()
	}
	switch g.rng.IntN(4) {
	case 0:
		return g.object(depth)
	case 1:
		return g.array(depth)
	default:
		return g.leaf()
	}
}

func (g *Generator) object(depth int) jv.Value {
	members := make(map[string]jv.Value, maxMembers)
	for range 1 + g.rng.IntN(maxMembers) {
		members[g.key()] = g.value(depth - 1)
	}
	return jv.Object(members)
}

func (g *Generator) array(depth int) jv.Value {
	elems := make([]jv.Value, 1+g.rng.IntN(maxElements))
	for i := range elems {
		elems[i] = g.value(depth - 1)
	}
	return jv.Array(elems...)
}

func (g *Generator) leaf() jv.Value {
	switch g.rng.IntN(6) {
	case 0:
		return jv.Null()
	case 1:
		return jv.Bool(g.rng.IntN(2) == 0)
	case 2:
		return jv.Int(g.rng.Int64N(2_000_000) - 1_000_000)
	case 3:
		return jv.Double(g.rng.Float64() * 1000)
	case 4:
		return jv.String(g.id())
	default:
		return jv.String(words[g.rng.IntN(len(words))])
	}
}

func (g *Generator) key() string {
	return words[g.rng.IntN(len(words))]
}

// id derives a UUID from the generator's own randomness so documents
// stay reproducible for a fixed seed.
func (g *Generator) id() string {
	var raw [16]byte
	for i := range raw {
		raw[i] = byte(g.rng.IntN(256))
	}
	u, err := uuid.FromBytes(raw[:])
	if err != nil {
		return uuid.Nil.String()
	}
	return u.String()
}
