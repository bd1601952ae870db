package primality

import (
	"math/big"
	"math/bits"

	"elgamal64/internal/modmath"
)

// witnesses make Miller–Rabin deterministic for all n < 3.3·10^24.
var witnesses = [...]uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37}

// IsPrime reports whether n is prime using the default strategy.
func IsPrime(n uint64) bool { return MillerRabin(n) }

// TrialDivision reports whether n is prime by dividing out 2, 3 and every
// candidate of the form 6k±1 up to ⌊√n⌋.
func TrialDivision(n uint64) bool {
	if n < 4 {
		return n > 1
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}
	for i := uint64(5); i <= n/i; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}
	return true
}

// MillerRabin reports whether n is prime using a fixed witness set.
func MillerRabin(n uint64) bool {
	if n < 2 {
		return false
	}
	for _, w := range witnesses {
		if n%w == 0 {
			return n == w
		}
	}

	s := bits.TrailingZeros64(n - 1)
	d := (n - 1) >> s

next:
	for _, a := range witnesses {
		x := modmath.PowMod(a, d, n)
		if x == 1 || x == n-1 {
			continue
		}
		for r := 1; r < s; r++ {
			x = modmath.MulMod(x, x, n)
			if x == n-1 {
				continue next
			}
		}
		return false
	}
	return true
}

// BailliePSW reports whether n is prime using math/big, which is exact for
// inputs below 2^64.
func BailliePSW(n uint64) bool {
	return new(big.Int).SetUint64(n).ProbablyPrime(0)
}
