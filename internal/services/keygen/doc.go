// Package keygen generates ElGamal key pairs for validated parameters.
//
// The private exponent is returned to the caller and never logged or stored.
package keygen
