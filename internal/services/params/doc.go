// Package params validates and explores ElGamal group parameters.
//
// It answers the questions a driver asks before key generation: is n prime,
// is g a primitive root modulo p, which generators exist for p, and which
// primes lie in a range. Callers without parameters can ask for a fresh
// safe-prime group instead.
package params
