package brackets

import (
	"encoding/binary"
	"math/rand/v2"

	"github.com/google/uuid"
)

// Randomizer is the only source of randomness the engine uses. A seeded
// randomizer makes every generator reproducible.
type Randomizer interface {
	Shuffle(n int, swap func(i, j int))
	IntN(n int) int
	NewID() string
}

type chachaRandomizer struct {
	src *rand.ChaCha8
	rng *rand.Rand
}

// NewSeeded returns a randomizer whose shuffles and ids are fully determined by seed.
func NewSeeded(seed uint64) Randomizer {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], seed)
	src := rand.NewChaCha8(key)
	return &chachaRandomizer{src: src, rng: rand.New(src)}
}

// NewRandom returns a randomizer seeded from the runtime's entropy source.
func NewRandom() Randomizer {
	return NewSeeded(rand.Uint64())
}

func (r *chachaRandomizer) Shuffle(n int, swap func(i, j int)) {
	r.rng.Shuffle(n, swap)
}

func (r *chachaRandomizer) IntN(n int) int {
	return r.rng.IntN(n)
}

func (r *chachaRandomizer) NewID() string {
	return uuid.Must(uuid.NewRandomFromReader(r.src)).String()
}

// shuffled returns a permuted copy; the caller's slice is left untouched.
func shuffled[T any](rnd Randomizer, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	rnd.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
