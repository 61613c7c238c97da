package gutmann

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"os"
	"time"
)

// Source supplies the randomness for both the pattern shuffle and the
// random-fill passes. A Source is not safe for concurrent use; give each
// worker its own instance.
type Source interface {
	// NextByte returns a byte drawn uniformly from 0..255.
	NextByte() byte
	// NextIndex returns an integer drawn uniformly from [0, bound).
	NextIndex(bound int) int
	// Fill overwrites p with independently drawn bytes.
	Fill(p []byte)
}

type source struct {
	rng *rand.Rand
}

// NewCryptoSource returns a ChaCha8 generator keyed from crypto/rand.
func NewCryptoSource() (Source, error) {
	var seed [32]byte
	if _, err := crand.Read(seed[:]); err != nil {
		return nil, fmt.Errorf("failed to seed random source: %w", err)
	}
	return &source{rng: rand.New(rand.NewChaCha8(seed))}, nil
}

// NewClockSource returns a PCG generator seeded from the wall clock and the
// process ID. Pattern order and fill bytes from this source are predictable
// to anyone who can guess the start time; use NewCryptoSource unless
// compatibility with that behaviour is wanted.
func NewClockSource() Source {
	now := uint64(time.Now().UnixNano())
	return &source{rng: rand.New(rand.NewPCG(now, uint64(os.Getpid())))}
}

// NewSeededSource returns a deterministic PCG generator.
func NewSeededSource(seed uint64) Source {
	return &source{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *source) NextByte() byte {
	return byte(s.rng.Uint32())
}

func (s *source) NextIndex(bound int) int {
	return s.rng.IntN(bound)
}

func (s *source) Fill(p []byte) {
	for len(p) >= 8 {
		binary.LittleEndian.PutUint64(p, s.rng.Uint64())
		p = p[8:]
	}
	if len(p) > 0 {
		var tail [8]byte
		binary.LittleEndian.PutUint64(tail[:], s.rng.Uint64())
		copy(p, tail[:])
	}
}
