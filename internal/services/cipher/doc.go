// Package cipher encrypts and decrypts integers under ElGamal keys.
//
// Single operations delegate straight to the scheme. Batches fan out over a
// bounded pool of workers; results keep the order of their inputs and the
// first failure cancels the remaining work.
package cipher
