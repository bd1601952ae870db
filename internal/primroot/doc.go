// Package primroot verifies primitive roots modulo a prime.
//
// For prime p the group (Z/pZ)* has order φ(p) = p-1, and g generates it iff
// g^((p-1)/q) ≠ 1 mod p for every distinct prime q dividing p-1. The test
// therefore only needs the distinct prime factors of p-1: small ones by trial
// division, the rest by Pollard's rho.
package primroot
