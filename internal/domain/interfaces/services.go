package interfaces

import (
	"context"

	domaintypes "elgamal64/internal/domain/types"
)

// ParamService validates and explores group parameters.
type ParamService interface {
	Validate(ctx context.Context, p, g uint64) (domaintypes.Params, error)
	IsPrime(n uint64) bool
	IsPrimitiveRoot(p, g uint64) bool
	PrimitiveRoots(ctx context.Context, p uint64, limit int) ([]uint64, error)
	Primes(ctx context.Context, lo, hi uint64) ([]uint64, error)
	GenerateGroup(ctx context.Context, bits int) (domaintypes.Params, error)
}

// KeyService generates key pairs for validated parameters.
type KeyService interface {
	GenerateKeys(ctx context.Context, p, g uint64) (
		domaintypes.KeyPair,
		domaintypes.Fingerprint,
		error,
	)
}

// CipherService encrypts and decrypts single values and batches.
type CipherService interface {
	Encrypt(ctx context.Context, pub domaintypes.PublicKey, m uint64) (domaintypes.Ciphertext, error)
	Decrypt(ctx context.Context, p, x uint64, ct domaintypes.Ciphertext) uint64
	EncryptBatch(ctx context.Context, pub domaintypes.PublicKey, ms []uint64) ([]domaintypes.Ciphertext, error)
	DecryptBatch(ctx context.Context, p, x uint64, cts []domaintypes.Ciphertext) ([]uint64, error)
}
