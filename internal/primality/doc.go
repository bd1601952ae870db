// Package primality decides whether a 64-bit integer is prime.
//
// TrialDivision is the reference: it divides by 2, 3 and every 6k±1 up to
// the square root. It is exact but O(√n), so production callers select a
// faster Strategy by name:
//
//   - trial-division  the reference above
//   - miller-rabin    Miller–Rabin with the first twelve primes as witnesses,
//     deterministic for every n < 2^64
//   - baillie-psw     math/big's Baillie–PSW test, exact below 2^64
//
// All three agree on every uint64. Sieve and Range build roaring bitmaps of
// primes for listing and for cross-checking the strategies in tests.
package primality
