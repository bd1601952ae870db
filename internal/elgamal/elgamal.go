package elgamal

import (
	"context"
	"errors"
	"fmt"

	"elgamal64/internal/crypto"
	"elgamal64/internal/domain"
	"elgamal64/internal/logging"
	"elgamal64/internal/modmath"
	"elgamal64/internal/primality"
	"elgamal64/internal/primroot"
)

var (
	// ErrInvalidParameters is returned when p is not prime, g is not a
	// primitive root modulo p, or p is too small to hold an exponent.
	ErrInvalidParameters = errors.New("invalid parameters")

	// ErrMessageTooLarge is returned when the plaintext is not below p.
	ErrMessageTooLarge = errors.New("message too large")
)

// minModulus is the smallest p for which [2, p-2] is non-empty.
const minModulus = 5

// Bit lengths accepted by GenerateGroup.
const (
	MinGroupBits = 4
	MaxGroupBits = 64
)

// drawWarnThreshold is the rejection-sampling run length that gets logged as
// a likely misconfigured modulus.
const drawWarnThreshold = 64

// Scheme generates keys and encrypts with an injected random source.
// A Scheme is safe for concurrent use when its source is.
type Scheme struct {
	rand    domain.RandomSource
	isPrime primality.Func
	log     logging.Logger
}

// Option configures a Scheme.
type Option func(*Scheme)

// WithPrimality selects the primality test used to validate p.
func WithPrimality(fn primality.Func) Option {
	return func(s *Scheme) { s.isPrime = fn }
}

// WithLogger sets the logger for sampling diagnostics.
func WithLogger(l logging.Logger) Option {
	return func(s *Scheme) { s.log = l }
}

// New returns a Scheme drawing exponents from src. A nil src selects
// crypto.NewSource.
func New(src domain.RandomSource, opts ...Option) *Scheme {
	if src == nil {
		src = crypto.NewSource()
	}
	s := &Scheme{
		rand:    src,
		isPrime: primality.IsPrime,
		log:     logging.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ValidateParams checks that p is a prime of at least 5 and g is a primitive
// root modulo p.
func (s *Scheme) ValidateParams(p, g uint64) error {
	if !s.isPrime(p) {
		return fmt.Errorf("%w: p=%d is not prime", ErrInvalidParameters, p)
	}
	if p < minModulus {
		return fmt.Errorf("%w: p=%d leaves no exponent in [2, p-2]", ErrInvalidParameters, p)
	}
	if !primroot.IsPrimitiveRoot(p, g) {
		return fmt.Errorf("%w: %d is not a primitive root modulo %d", ErrInvalidParameters, g, p)
	}
	return nil
}

// GenerateGroup returns a random group whose modulus is a safe prime
// p = 2q+1 of exactly bits bits and whose generator is a primitive root
// modulo p.
//
// For a safe prime the only proper subgroup orders are 1, 2 and q, so any g
// in [2, p-2] with g^q ≠ 1 generates the whole group.
func (s *Scheme) GenerateGroup(bits int) (domain.Params, error) {
	if bits < MinGroupBits || bits > MaxGroupBits {
		return domain.Params{}, fmt.Errorf("%w: group size %d bits outside [%d, %d]",
			ErrInvalidParameters, bits, MinGroupBits, MaxGroupBits)
	}
	top := uint64(1) << (bits - 2)
	for {
		q := top | s.rand.Uint64n(top) | 1
		if !primality.MillerRabin(q) || !primality.MillerRabin(2*q+1) {
			continue
		}
		p := 2*q + 1
		for {
			g := 2 + s.rand.Uint64n(p-3)
			if modmath.PowMod(g, q, p) != 1 {
				return domain.Params{P: p, G: g}, nil
			}
		}
	}
}

// GenerateKeys returns a fresh key pair for the group (p, g).
func (s *Scheme) GenerateKeys(p, g uint64) (domain.KeyPair, error) {
	if err := s.ValidateParams(p, g); err != nil {
		return domain.KeyPair{}, err
	}
	x := s.drawExponent(p)
	return domain.KeyPair{X: x, Y: modmath.PowMod(g, x, p)}, nil
}

// Encrypt encrypts m < p to the public key y with a fresh ephemeral key.
// It does not re-validate (p, g); callers do that once with ValidateParams.
func (s *Scheme) Encrypt(p, g, y, m uint64) (domain.Ciphertext, error) {
	if m >= p {
		return domain.Ciphertext{}, fmt.Errorf("%w: m=%d is not less than p=%d", ErrMessageTooLarge, m, p)
	}
	if p < minModulus {
		return domain.Ciphertext{}, fmt.Errorf("%w: p=%d leaves no exponent in [2, p-2]", ErrInvalidParameters, p)
	}
	return encryptWith(p, g, y, m, s.drawExponent(p)), nil
}

// Decrypt recovers the plaintext of ct with the private exponent x.
func (s *Scheme) Decrypt(p, x uint64, ct domain.Ciphertext) uint64 {
	return Decrypt(p, x, ct.A, ct.B)
}

func encryptWith(p, g, y, m, k uint64) domain.Ciphertext {
	return domain.Ciphertext{
		A: modmath.PowMod(g, k, p),
		B: modmath.MulMod(modmath.PowMod(y, k, p), m, p),
	}
}

// Decrypt returns b·a^(p-1-x) mod p. x is reduced modulo p-1 first, which
// leaves every x in [2, p-2] unchanged. It returns 0 for p < 2.
func Decrypt(p, x, a, b uint64) uint64 {
	if p < 2 {
		return 0
	}
	e := (p - 1) - x%(p-1)
	return modmath.MulMod(modmath.PowMod(a, e, p), b, p)
}

// drawExponent samples uniformly from [2, p-2] until the value is coprime
// with p-1. p must be at least minModulus.
func (s *Scheme) drawExponent(p uint64) uint64 {
	for draws := 1; ; draws++ {
		v := 2 + s.rand.Uint64n(p-3)
		if modmath.GCD(v, p-1) == 1 {
			return v
		}
		if draws == drawWarnThreshold {
			s.log.Warn(context.Background(), "exponent sampling is retrying unusually often",
				"p", p, "draws", draws)
		}
	}
}
