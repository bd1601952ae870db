package primality

import (
	"errors"
	"fmt"

	"github.com/RoaringBitmap/roaring/roaring64"
)

// MaxSieveLimit bounds the memory Sieve may allocate (one byte per integer).
const MaxSieveLimit = 1 << 28

// ErrSieveLimit is returned when Sieve is asked for more than MaxSieveLimit.
var ErrSieveLimit = errors.New("sieve limit too large")

// Sieve returns every prime p ≤ limit, computed with the sieve of Eratosthenes.
func Sieve(limit uint64) (*roaring64.Bitmap, error) {
	if limit > MaxSieveLimit {
		return nil, fmt.Errorf("%w: %d > %d", ErrSieveLimit, limit, MaxSieveLimit)
	}
	primes := roaring64.New()
	if limit < 2 {
		return primes, nil
	}
	composite := make([]bool, limit+1)
	for i := uint64(2); i <= limit; i++ {
		if composite[i] {
			continue
		}
		primes.Add(i)
		for j := i * i; j <= limit; j += i {
			composite[j] = true
		}
	}
	return primes, nil
}

// Range returns every prime in [lo, hi] as decided by fn. The cost is one fn
// call per integer in the range.
func Range(lo, hi uint64, fn Func) *roaring64.Bitmap {
	primes := roaring64.New()
	if lo > hi {
		return primes
	}
	for n := lo; ; n++ {
		if fn(n) {
			primes.Add(n)
		}
		if n == hi {
			break
		}
	}
	return primes
}
