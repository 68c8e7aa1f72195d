package crypto

import (
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"

	"cryptotour/internal/util/memzero"
)

// DeriveKey runs HKDF-SHA256 over secret and returns n bytes of output keying material.
func DeriveKey(secret, salt, info []byte, n int) ([]byte, error) {
	if n <= 0 || n > 255*sha256.Size {
		return nil, fmt.Errorf("hkdf: invalid output length %d", n)
	}
	out := make([]byte, n)
	if _, err := io.ReadFull(hkdf.New(sha256.New, secret, salt, info), out); err != nil {
		return nil, fmt.Errorf("hkdf: %w", err)
	}
	return out, nil
}

// DeriveSymmetricKey derives a KeySize key from a shared secret.
func DeriveSymmetricKey(secret, salt, info []byte) (SymmetricKey, error) {
	var k SymmetricKey
	okm, err := DeriveKey(secret, salt, info, KeySize)
	if err != nil {
		return k, err
	}
	copy(k[:], okm)
	memzero.Zero(okm)
	return k, nil
}
