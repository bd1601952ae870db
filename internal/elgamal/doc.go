// Package elgamal implements ElGamal key generation, encryption and
// decryption over a 64-bit prime field.
//
// # Flows
//
// Key generation:
//  1. Check p is prime, p ≥ 5 and g is a primitive root modulo p.
//  2. Draw x uniformly from [2, p-2], redrawing until gcd(x, p-1) = 1.
//  3. Return x and y = g^x mod p.
//
// Group generation (optional, for callers without parameters):
//  1. Draw q with bits-1 bits until q and p = 2q+1 are both prime.
//  2. Draw g from [2, p-2] until g^q ≠ 1 mod p.
//
// Encryption of m < p:
//  1. Draw a fresh k the same way; k is never returned or kept.
//  2. Return a = g^k mod p and b = y^k·m mod p.
//
// Decryption:
//  1. m = a^(p-1-x)·b mod p, which cancels y^k by Fermat's little theorem.
//
// # Errors
//
// ErrInvalidParameters is returned when (p, g) is not a usable group and
// ErrMessageTooLarge when m ≥ p. Decrypt has no error: ciphertexts are not
// authenticated, so a pair that did not come from a matching Encrypt still
// yields some value in [0, p).
//
// # Security notes
//
// Randomness comes from the domain.RandomSource handed to New; production
// callers pass crypto.NewSource. Reusing k across two encryptions leaks the
// ratio of their plaintexts, which is why Encrypt draws k internally.
package elgamal
