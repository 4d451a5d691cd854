package mock

import (
	"math/rand"
	"sync"
)

// RandomSource is a seeded pseudo-random source for simulation.
// This implements the ports.RandomSource interface
type RandomSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomSource creates a source; the same seed replays the same telemetry
func NewRandomSource(seed int64) *RandomSource {
	return &RandomSource{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Float64 returns a uniform value in [0, 1)
func (s *RandomSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

// SequenceSource replays fixed values in order, wrapping around at the end.
// Useful for asserting exact simulation outputs.
type SequenceSource struct {
	mu     sync.Mutex
	values []float64
	next   int
}

// NewSequenceSource creates a source over values; each must be in [0, 1)
func NewSequenceSource(values ...float64) *SequenceSource {
	if len(values) == 0 {
		values = []float64{0.5}
	}
	return &SequenceSource{values: values}
}

// Float64 returns the next value of the sequence
func (s *SequenceSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := s.values[s.next]
	s.next = (s.next + 1) % len(s.values)
	return v
}
