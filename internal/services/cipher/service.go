package cipher

import (
	"context"
	"runtime"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"elgamal64/internal/domain"
	"elgamal64/internal/elgamal"
	"elgamal64/internal/logging"
)

// Service encrypts and decrypts with a shared scheme.
type Service struct {
	scheme  *elgamal.Scheme
	workers int
	log     logging.Logger
}

// New returns a cipher service running batches on up to workers goroutines.
// workers ≤ 0 selects runtime.NumCPU().
func New(scheme *elgamal.Scheme, workers int, log logging.Logger) *Service {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Service{scheme: scheme, workers: workers, log: log}
}

// Encrypt encrypts m to pub with a fresh ephemeral key.
func (s *Service) Encrypt(ctx context.Context, pub domain.PublicKey, m uint64) (domain.Ciphertext, error) {
	ct, err := s.scheme.Encrypt(pub.P, pub.G, pub.Y, m)
	if err != nil {
		s.log.Warn(ctx, "encryption rejected", "p", pub.P, "err", err)
		return domain.Ciphertext{}, err
	}
	s.log.Debug(ctx, "message encrypted", "p", pub.P, "a", ct.A, "b", ct.B, logging.Redacted("k"))
	return ct, nil
}

// Decrypt recovers the plaintext of ct. Ciphertexts are not authenticated, so
// a forged pair decrypts to an arbitrary value in [0, p).
func (s *Service) Decrypt(ctx context.Context, p, x uint64, ct domain.Ciphertext) uint64 {
	s.log.Debug(ctx, "message decrypted", "p", p, "a", ct.A, "b", ct.B, logging.Redacted("x"))
	return s.scheme.Decrypt(p, x, ct)
}

// EncryptBatch encrypts every message, each with its own ephemeral key.
func (s *Service) EncryptBatch(ctx context.Context, pub domain.PublicKey, ms []uint64) ([]domain.Ciphertext, error) {
	out := make([]domain.Ciphertext, len(ms))
	err := s.run(ctx, "encrypt", len(ms), func(i int) error {
		ct, err := s.scheme.Encrypt(pub.P, pub.G, pub.Y, ms[i])
		if err != nil {
			return err
		}
		out[i] = ct
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DecryptBatch decrypts every ciphertext with x.
func (s *Service) DecryptBatch(ctx context.Context, p, x uint64, cts []domain.Ciphertext) ([]uint64, error) {
	out := make([]uint64, len(cts))
	err := s.run(ctx, "decrypt", len(cts), func(i int) error {
		out[i] = s.scheme.Decrypt(p, x, cts[i])
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// run calls job for every index in [0, n) on the worker pool.
func (s *Service) run(ctx context.Context, op string, n int, job func(i int) error) error {
	log := s.log.With("batch_id", uuid.NewString(), "op", op, "size", n)
	log.Debug(ctx, "batch started", "workers", s.workers)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i := 0; i < n; i++ {
		i := i
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return job(i)
		})
	}
	if err := g.Wait(); err != nil {
		log.Warn(ctx, "batch failed", "err", err)
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	log.Debug(ctx, "batch finished")
	return nil
}

// Compile-time assertion that Service implements domain.CipherService.
var _ domain.CipherService = (*Service)(nil)
