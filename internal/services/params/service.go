package params

import (
	"context"
	"errors"
	"fmt"

	"elgamal64/internal/domain"
	"elgamal64/internal/elgamal"
	"elgamal64/internal/logging"
	"elgamal64/internal/primality"
	"elgamal64/internal/primroot"
)

const (
	// MaxRangeWidth bounds the number of integers Primes will test.
	MaxRangeWidth = 1 << 20

	// MaxUnlimitedRoots is the largest p for which every primitive root may
	// be listed without a limit.
	MaxUnlimitedRoots = 1 << 20

	// sieveCeiling is the largest hi answered from a sieve instead of
	// per-integer tests.
	sieveCeiling = 1 << 22
)

var (
	// ErrRangeTooWide is returned when a prime listing spans too many integers.
	ErrRangeTooWide = fmt.Errorf("range wider than %d integers", MaxRangeWidth)

	// ErrLimitRequired is returned when listing every root of a large prime.
	ErrLimitRequired = errors.New("a limit is required to list roots of this prime")
)

// Service validates group parameters with a configured primality strategy.
type Service struct {
	scheme  *elgamal.Scheme
	isPrime primality.Func
	log     logging.Logger
}

// New returns a parameter service. scheme must have been built with the same
// primality test.
func New(scheme *elgamal.Scheme, isPrime primality.Func, log logging.Logger) *Service {
	return &Service{scheme: scheme, isPrime: isPrime, log: log}
}

// Validate returns the group (p, g) or an error wrapping
// elgamal.ErrInvalidParameters.
func (s *Service) Validate(ctx context.Context, p, g uint64) (domain.Params, error) {
	if err := s.scheme.ValidateParams(p, g); err != nil {
		s.log.Debug(ctx, "parameters rejected", "p", p, "g", g, "err", err)
		return domain.Params{}, err
	}
	return domain.Params{P: p, G: g}, nil
}

// IsPrime reports whether n is prime.
func (s *Service) IsPrime(n uint64) bool { return s.isPrime(n) }

// IsPrimitiveRoot reports whether p is prime and g is a primitive root
// modulo p.
func (s *Service) IsPrimitiveRoot(p, g uint64) bool {
	return s.isPrime(p) && primroot.IsPrimitiveRoot(p, g)
}

// PrimitiveRoots lists up to limit primitive roots of prime p in ascending
// order; limit 0 lists all of them and is only allowed for small p.
func (s *Service) PrimitiveRoots(ctx context.Context, p uint64, limit int) ([]uint64, error) {
	if !s.isPrime(p) {
		return nil, fmt.Errorf("%w: p=%d is not prime", elgamal.ErrInvalidParameters, p)
	}
	if limit <= 0 && p > MaxUnlimitedRoots {
		return nil, fmt.Errorf("%w: p=%d", ErrLimitRequired, p)
	}
	roots := primroot.List(p, limit)
	s.log.Debug(ctx, "primitive roots listed", "p", p, "count", len(roots))
	return roots, nil
}

// Primes returns every prime in [lo, hi].
func (s *Service) Primes(ctx context.Context, lo, hi uint64) ([]uint64, error) {
	if lo > hi {
		return nil, nil
	}
	if hi-lo >= MaxRangeWidth {
		return nil, fmt.Errorf("%w: [%d, %d]", ErrRangeTooWide, lo, hi)
	}
	if hi <= sieveCeiling {
		table, err := primality.Sieve(hi)
		if err != nil {
			return nil, err
		}
		if lo > 0 {
			table.RemoveRange(0, lo)
		}
		return table.ToArray(), nil
	}
	primes := primality.Range(lo, hi, s.isPrime)
	s.log.Debug(ctx, "primes listed", "lo", lo, "hi", hi, "count", primes.GetCardinality())
	return primes.ToArray(), nil
}

// GenerateGroup draws a safe-prime group of the given size.
func (s *Service) GenerateGroup(ctx context.Context, bits int) (domain.Params, error) {
	grp, err := s.scheme.GenerateGroup(bits)
	if err != nil {
		return domain.Params{}, err
	}
	s.log.Info(ctx, "group generated", "bits", bits, "p", grp.P, "g", grp.G)
	return grp, nil
}

// Compile-time assertion that Service implements domain.ParamService.
var _ domain.ParamService = (*Service)(nil)
