package crypto

import (
	"sync"

	"lukechampine.com/frand"

	"elgamal64/internal/domain"
)

// Source draws uniform integers for key and ephemeral exponent sampling.
type Source struct {
	mu  sync.Mutex
	rng *frand.RNG // nil selects frand's process-wide generator
}

// NewSource returns a Source backed by frand's global CSPRNG.
func NewSource() *Source { return &Source{} }

// NewSeededSource returns a deterministic Source expanding seed with
// ChaCha20. Two sources with the same seed produce the same stream.
func NewSeededSource(seed [32]byte) *Source {
	return &Source{rng: frand.NewCustom(seed[:], 1024, 20)}
}

// Uint64n returns a uniform value in [0, n). It panics if n == 0.
func (s *Source) Uint64n(n uint64) uint64 {
	if s.rng == nil {
		return frand.Uint64n(n)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Uint64n(n)
}

// Compile-time assertion that Source implements domain.RandomSource.
var _ domain.RandomSource = (*Source)(nil)
