package random

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
)

// ErrEntropy reports that the secure random source failed.
var ErrEntropy = errors.New("secure random source failed")

// Salt returns a fresh buffer of size bytes read from crypto/rand.
func Salt(size SaltSize) ([]byte, error) {
	return SaltFrom(rand.Reader, size)
}

// SaltFrom is Salt with an explicit entropy source.
func SaltFrom(r io.Reader, size SaltSize) ([]byte, error) {
	n, err := size.Bytes()
	if err != nil {
		return nil, err
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("%w: reading %d bytes: %v", ErrEntropy, n, err)
	}
	return buf, nil
}
