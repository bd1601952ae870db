package interfaces

// RandomSource draws uniform integers. Implementations must be
// cryptographically secure outside of tests.
type RandomSource interface {
	// Uint64n returns a uniform value in [0, n). n must be positive.
	Uint64n(n uint64) uint64
}
