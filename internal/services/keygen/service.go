package keygen

import (
	"context"

	"elgamal64/internal/crypto"
	"elgamal64/internal/domain"
	"elgamal64/internal/elgamal"
	"elgamal64/internal/logging"
)

// Service generates key pairs and their fingerprints.
type Service struct {
	scheme *elgamal.Scheme
	log    logging.Logger
}

// New returns a key generation service.
func New(scheme *elgamal.Scheme, log logging.Logger) *Service {
	return &Service{scheme: scheme, log: log}
}

// GenerateKeys validates (p, g), draws a key pair and returns it with a short
// fingerprint of the public key.
func (s *Service) GenerateKeys(ctx context.Context, p, g uint64) (domain.KeyPair, domain.Fingerprint, error) {
	kp, err := s.scheme.GenerateKeys(p, g)
	if err != nil {
		s.log.Warn(ctx, "key generation rejected", "p", p, "g", g, "err", err)
		return domain.KeyPair{}, "", err
	}
	fp := crypto.Fingerprint(domain.PublicKey{Params: domain.Params{P: p, G: g}, Y: kp.Y})
	s.log.Info(ctx, "key pair generated",
		"p", p, "g", g, "y", kp.Y, "fingerprint", fp.String(), logging.Redacted("x"))
	return kp, fp, nil
}

// Compile-time assertion that Service implements domain.KeyService.
var _ domain.KeyService = (*Service)(nil)
