// Package commands defines the elgamal CLI and wires dependencies for subcommands.
//
// Commands
//
//   - group         Generate a random safe prime p and primitive root g
//   - keygen        Generate a key pair for a prime p and primitive root g
//   - encrypt       Encrypt an integer m < p to a public key y
//   - decrypt       Decrypt a ciphertext (a, b) with a private key x
//   - check prime   Report whether n is prime
//   - check root    Report whether g is a primitive root modulo p
//   - roots         List primitive roots modulo a prime
//   - primes        List the primes in a range
//   - selftest      Round-trip many random messages through a fresh key
//
// # Implementation
//
// The root command reads configuration (flags, ELGAMAL_* environment, optional
// config file) through viper and builds the dependency graph before any
// subcommand runs. Results go to stdout as text, or as JSON with --json;
// diagnostics go to stderr through the structured logger.
package commands
