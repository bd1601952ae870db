package types

import "fmt"

// Params is an ElGamal group: a prime modulus P and a primitive root G
// modulo P.
type Params struct {
	P uint64 `json:"p"`
	G uint64 `json:"g"`
}

// PublicKey is the published half of a key pair, Y = G^X mod P.
type PublicKey struct {
	Params
	Y uint64 `json:"y"`
}

// KeyPair is a private exponent X in [2, P-2] with gcd(X, P-1) = 1 and its
// public value Y. X never leaves the caller that generated it.
type KeyPair struct {
	X uint64 `json:"x"`
	Y uint64 `json:"y"`
}

// Ciphertext is an ElGamal pair A = G^k mod P, B = Y^k·M mod P.
type Ciphertext struct {
	A uint64 `json:"a"`
	B uint64 `json:"b"`
}

// String returns the pair as "(a, b)".
func (c Ciphertext) String() string { return fmt.Sprintf("(%d, %d)", c.A, c.B) }
