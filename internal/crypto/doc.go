// Package crypto exposes the randomness and display helpers used around the
// ElGamal core.
//
// Contents
//
//   - A process-lifetime CSPRNG source backed by frand (NewSource)
//   - A deterministic ChaCha-seeded source for tests and reproducible runs
//     (NewSeededSource)
//   - Short public-key fingerprints for display/logging (Fingerprint)
//
// # Notes
//
// NewSource draws from frand's global generator, which is seeded once from
// the operating system and is safe for concurrent use. Nothing in this module
// seeds randomness from the clock.
package crypto
