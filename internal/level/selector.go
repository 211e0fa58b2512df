package level

import (
	"fmt"
	"math/rand"
)

// Selector draws random subsets of cell coordinates. It holds a reference to
// the level's shared RNG, so repeated calls are reproducible for a fixed
// seed and deterministic caller order.
type Selector struct {
	rng *rand.Rand
}

// NewSelector creates a selector sampling from the given RNG.
func NewSelector(rng *rand.Rand) *Selector {
	return &Selector{rng: rng}
}

// Sample returns count distinct coordinates chosen uniformly at random from
// the candidates. If count is at least the number of candidates, all of them
// are returned with their order preserved and the RNG untouched.
func (s *Selector) Sample(candidates []Coord, count int) ([]Coord, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: negative sample count %d", ErrInvalidArgument, count)
	}
	if len(candidates) <= count {
		out := make([]Coord, len(candidates))
		copy(out, candidates)
		return out, nil
	}
	perm := s.rng.Perm(len(candidates))
	out := make([]Coord, count)
	for i := 0; i < count; i++ {
		out[i] = candidates[perm[i]]
	}
	return out, nil
}
