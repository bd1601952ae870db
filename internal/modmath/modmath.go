package modmath

import "math/bits"

// AddMod returns (a + b) mod m for a, b < m without overflowing.
func AddMod(a, b, m uint64) uint64 {
	if a >= m-b {
		return a - (m - b)
	}
	return a + b
}

// MulMod returns (a * b) mod m.
//
// When the 128-bit product fits in one word the remainder is taken directly.
// Otherwise the product is accumulated by doubling a and adding it for every
// set bit of b, with each step kept below m by AddMod.
func MulMod(a, b, m uint64) uint64 {
	a %= m
	b %= m
	hi, lo := bits.Mul64(a, b)
	if hi == 0 {
		return lo % m
	}
	return mulModDoubling(a, b, m)
}

func mulModDoubling(a, b, m uint64) uint64 {
	var r uint64
	for b > 0 {
		if b&1 == 1 {
			r = AddMod(r, a, m)
		}
		a = AddMod(a, a, m)
		b >>= 1
	}
	return r
}

// PowMod returns b^e mod m by binary exponentiation. PowMod(b, 0, m) is 1 for
// every m > 1.
func PowMod(b, e, m uint64) uint64 {
	b %= m
	r := 1 % m
	for e > 0 {
		if e&1 == 1 {
			r = MulMod(r, b, m)
		}
		b = MulMod(b, b, m)
		e >>= 1
	}
	return r
}

// GCD returns the greatest common divisor of a and b. GCD(0, 0) is 0.
func GCD(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
