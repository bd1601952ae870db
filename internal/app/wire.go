package app

import (
	"elgamal64/internal/crypto"
	"elgamal64/internal/domain"
	"elgamal64/internal/elgamal"
	"elgamal64/internal/logging"
	ciphersvc "elgamal64/internal/services/cipher"
	keygensvc "elgamal64/internal/services/keygen"
	paramssvc "elgamal64/internal/services/params"
)

// Wire bundles the scheme and services for the CLI.
type Wire struct {
	Config Config
	Log    logging.Logger
	Scheme *elgamal.Scheme
	Params domain.ParamService
	Keys   domain.KeyService
	Cipher domain.CipherService
}

// NewWire constructs the dependency graph from cfg. A nil src selects the
// process-wide CSPRNG.
func NewWire(cfg Config, log logging.Logger, src domain.RandomSource) (*Wire, error) {
	isPrime, err := cfg.Primality.Func()
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = logging.Discard()
	}
	if src == nil {
		src = crypto.NewSource()
	}

	scheme := elgamal.New(src,
		elgamal.WithPrimality(isPrime),
		elgamal.WithLogger(log),
	)

	return &Wire{
		Config: cfg,
		Log:    log,
		Scheme: scheme,
		Params: paramssvc.New(scheme, isPrime, log),
		Keys:   keygensvc.New(scheme, log),
		Cipher: ciphersvc.New(scheme, cfg.Workers, log),
	}, nil
}
