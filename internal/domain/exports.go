package domain

import (
	interfaces "elgamal64/internal/domain/interfaces"
	types "elgamal64/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Fingerprint = types.Fingerprint
	Params      = types.Params
	PublicKey   = types.PublicKey
	KeyPair     = types.KeyPair
	Ciphertext  = types.Ciphertext
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	RandomSource  = interfaces.RandomSource
	ParamService  = interfaces.ParamService
	KeyService    = interfaces.KeyService
	CipherService = interfaces.CipherService
)
