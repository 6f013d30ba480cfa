// Package random supplies the search engine's only source of
// nondeterminism. The engine draws node ids, expansion choices and playout
// moves through the Source interface, so swapping in a seeded Sequence makes
// whole searches reproducible.
package random

import (
	"time"

	"golang.org/x/exp/rand"
)

// Source yields integers for the searcher. Distribution quality beyond
// rough uniformity is not required.
type Source interface {
	// Next returns the next raw value.
	Next() int
	// Range returns a value uniformly in [lo, hi). hi must exceed lo.
	Range(lo, hi int) int
}

// Choose returns a uniformly sampled element of items, which must be
// non-empty.
func Choose[T any](src Source, items []T) T {
	return items[src.Range(0, len(items))]
}

const (
	lcgMultiplier = 1103515245
	lcgIncrement  = 12345
	lcgModulus    = 1<<31 - 1

	// DefaultSeed is the seed used by NewSequence.
	DefaultSeed = 3819201
)

// Sequence is a deterministic linear congruential generator. Two Sequences
// with the same seed produce identical streams, which golden tests rely on.
type Sequence struct {
	seed int64
}

// NewSequence returns a Sequence with the default seed.
func NewSequence() *Sequence {
	return NewSeededSequence(DefaultSeed)
}

// NewSeededSequence returns a Sequence starting from the given seed.
func NewSeededSequence(seed int64) *Sequence {
	return &Sequence{seed: seed}
}

func (s *Sequence) Next() int {
	s.seed = (s.seed*lcgMultiplier + lcgIncrement) % lcgModulus
	return int(s.seed)
}

func (s *Sequence) Range(lo, hi int) int {
	v := s.Next() % (hi - lo)
	if v < 0 {
		v = -v
	}
	return v + lo
}

// Standard is a non-deterministic Source for production use.
type Standard struct {
	rng *rand.Rand
}

// NewStandard returns a Source seeded from the wall clock.
func NewStandard() *Standard {
	return &Standard{rng: rand.New(rand.NewSource(uint64(time.Now().UnixNano())))}
}

func (s *Standard) Next() int {
	return int(s.rng.Int31())
}

func (s *Standard) Range(lo, hi int) int {
	return lo + s.rng.Intn(hi-lo)
}
