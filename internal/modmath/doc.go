// Package modmath implements the 64-bit modular arithmetic every other
// package builds on.
//
// Contents
//
//   - Overflow-safe modular addition and multiplication (AddMod, MulMod)
//   - Square-and-multiply exponentiation (PowMod)
//   - Greatest common divisor (GCD)
//
// # Notes
//
// All operands are uint64 and every result is fully reduced. MulMod is exact
// over the whole uint64 range, including moduli above 2^63 where doubling an
// operand would not fit the word. As with the % operator, a zero modulus
// panics.
package modmath
