package crypto

import (
	"encoding/binary"
	"encoding/hex"

	"golang.org/x/crypto/blake2b"

	"elgamal64/internal/domain"
)

const fingerprintDomain = "elgamal64/public-key"

// Fingerprint returns a short hex fingerprint of a public key.
//
// It hashes the domain separator and the big-endian (P, G, Y) triple with
// BLAKE2b-256 and truncates to 10 bytes (20 hex chars).
func Fingerprint(pub domain.PublicKey) domain.Fingerprint {
	buf := make([]byte, 0, len(fingerprintDomain)+24)
	buf = append(buf, fingerprintDomain...)
	buf = binary.BigEndian.AppendUint64(buf, pub.P)
	buf = binary.BigEndian.AppendUint64(buf, pub.G)
	buf = binary.BigEndian.AppendUint64(buf, pub.Y)
	sum := blake2b.Sum256(buf)
	return domain.Fingerprint(hex.EncodeToString(sum[:10]))
}
