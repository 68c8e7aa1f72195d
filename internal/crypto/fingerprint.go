package crypto

import (
	"crypto/sha256"

	"cryptotour/internal/hexfmt"
)

// FingerprintBytes is the digest prefix kept by Fingerprint.
const FingerprintBytes = 10

// Fingerprint returns a short hex fingerprint of a public key.
//
// It hashes with SHA-256 and truncates to 10 bytes (20 hex chars).
func Fingerprint(pub []byte, c hexfmt.Case) string {
	sum := sha256.Sum256(pub)
	return hexfmt.String(sum[:FingerprintBytes], c)
}
