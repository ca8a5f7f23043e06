// Package rng provides the deterministic random primitives shared by the
// stealth engine: a documented SplitMix64 generator and a stable string-to-seed
// derivation. Fingerprint derivation depends on these being reimplementable
// bit-for-bit, so the algorithms here are versioned and must not change without
// bumping the consuming scheme version.
package rng

import (
	"math/rand"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// SplitMix64 is the generator from Steele, Lea & Flood, "Fast Splittable
// Pseudorandom Number Generators" (OOPSLA 2014). It is tiny, passes BigCrush,
// and has a precisely specified output sequence, which is what makes the
// key-to-fingerprint mapping portable across languages.
type SplitMix64 struct {
	state uint64
}

// NewSource returns a SplitMix64 seeded with the given value. The zero seed is
// valid and produces a well-defined sequence.
func NewSource(seed uint64) *SplitMix64 {
	return &SplitMix64{state: seed}
}

// Uint64 advances the generator and returns the next 64-bit output.
func (s *SplitMix64) Uint64() uint64 {
	s.state += 0x9e3779b97f4a7c15
	z := s.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// Int63 implements math/rand.Source.
func (s *SplitMix64) Int63() int64 {
	return int64(s.Uint64() >> 1)
}

// Seed implements math/rand.Source.
func (s *SplitMix64) Seed(seed int64) {
	s.state = uint64(seed)
}

// SeedFromKey derives a stable 64-bit seed from an opaque device key using
// xxhash64. The key is trimmed first; a key that is empty after trimming hashes
// the empty string, which is still fully deterministic.
func SeedFromKey(key string) uint64 {
	return xxhash.Sum64String(strings.TrimSpace(key))
}

// New returns a *rand.Rand backed by a SplitMix64 source. Each call site that
// needs reproducibility should create its own instance; rand.Rand is not safe
// for concurrent use.
func New(seed uint64) *rand.Rand {
	return rand.New(NewSource(seed))
}
