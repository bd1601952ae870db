package primroot

import (
	"slices"

	"elgamal64/internal/modmath"
	"elgamal64/internal/primality"
)

// trialBound bounds the divisors tried before switching to Pollard's rho.
const trialBound = 1 << 16

// DistinctPrimeFactors returns the distinct prime factors of n in ascending
// order. It returns nil for n < 2.
//
// Factors below trialBound are found by trial division; a cofactor left over
// is split with Pollard's rho, so 64-bit safe primes factor quickly.
func DistinctPrimeFactors(n uint64) []uint64 {
	var factors []uint64
	for q := uint64(2); q < trialBound && q <= n/q; q++ {
		if n%q != 0 {
			continue
		}
		factors = append(factors, q)
		for n%q == 0 {
			n /= q
		}
	}
	if n > 1 {
		factors = append(factors, split(n)...)
	}
	slices.Sort(factors)
	return slices.Compact(factors)
}

// split returns the prime factors of n, with repeats, for n with no factor
// below trialBound.
func split(n uint64) []uint64 {
	if primality.MillerRabin(n) {
		return []uint64{n}
	}
	d := rho(n)
	return append(split(d), split(n/d)...)
}

// rho finds a nontrivial divisor of the odd composite n.
func rho(n uint64) uint64 {
	for c := uint64(1); ; c++ {
		f := func(x uint64) uint64 { return modmath.AddMod(modmath.MulMod(x, x, n), c, n) }
		x, y, d := uint64(2), uint64(2), uint64(1)
		for d == 1 {
			x = f(x)
			y = f(f(y))
			if x > y {
				d = modmath.GCD(x-y, n)
			} else {
				d = modmath.GCD(y-x, n)
			}
		}
		if d != n {
			return d
		}
	}
}

// IsPrimitiveRoot reports whether g has multiplicative order p-1 modulo p.
// p must be prime; for p < 2 it returns false.
func IsPrimitiveRoot(p, g uint64) bool {
	if p < 2 || g%p == 0 {
		return false
	}
	return isRoot(p, g, DistinctPrimeFactors(p-1))
}

func isRoot(p, g uint64, factors []uint64) bool {
	for _, q := range factors {
		if modmath.PowMod(g, (p-1)/q, p) == 1 {
			return false
		}
	}
	return modmath.PowMod(g, p-1, p) == 1
}

// Smallest returns the least primitive root modulo prime p, or false when
// none is found (p < 2).
func Smallest(p uint64) (uint64, bool) {
	roots := List(p, 1)
	if len(roots) == 0 {
		return 0, false
	}
	return roots[0], true
}

// List returns up to limit primitive roots modulo prime p in ascending
// order. A limit of 0 returns all of them. p-1 is factored once.
func List(p uint64, limit int) []uint64 {
	if p < 2 {
		return nil
	}
	factors := DistinctPrimeFactors(p - 1)
	var roots []uint64
	for g := uint64(1); g < p; g++ {
		if !isRoot(p, g, factors) {
			continue
		}
		roots = append(roots, g)
		if limit > 0 && len(roots) == limit {
			break
		}
	}
	return roots
}
