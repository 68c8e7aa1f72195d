package crypto

import (
	"crypto/sha256"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"github.com/zeebo/blake3"

	"cryptotour/internal/hexfmt"
)

// HashAlgorithm selects the digest function used by Hash.
type HashAlgorithm int

const (
	SHA256 HashAlgorithm = iota
	BLAKE3
)

var ErrUnknownHash = errors.New("unknown hash algorithm")

func (a HashAlgorithm) String() string {
	switch a {
	case SHA256:
		return "sha256"
	case BLAKE3:
		return "blake3"
	}
	return fmt.Sprintf("HashAlgorithm(%d)", int(a))
}

// ParseHashAlgorithm accepts "sha256" or "blake3".
func ParseHashAlgorithm(v string) (HashAlgorithm, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "sha256", "sha-256":
		return SHA256, nil
	case "blake3":
		return BLAKE3, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownHash, v)
}

// Digest is the fixed-length output of a hash function.
type Digest struct {
	alg HashAlgorithm
	sum [32]byte
}

// Hash computes the digest of data.
func Hash(alg HashAlgorithm, data []byte) (Digest, error) {
	switch alg {
	case SHA256:
		return Digest{alg: alg, sum: sha256.Sum256(data)}, nil
	case BLAKE3:
		return Digest{alg: alg, sum: blake3.Sum256(data)}, nil
	}
	return Digest{}, fmt.Errorf("%w: %d", ErrUnknownHash, int(alg))
}

func (d Digest) Algorithm() HashAlgorithm { return d.alg }

// Bytes returns a copy of the digest.
func (d Digest) Bytes() []byte {
	out := make([]byte, len(d.sum))
	copy(out, d.sum[:])
	return out
}

// Equal reports whether both digests come from the same algorithm and match.
// The comparison of the digest bytes is constant time.
func (d Digest) Equal(o Digest) bool {
	return d.alg == o.alg && subtle.ConstantTimeCompare(d.sum[:], o.sum[:]) == 1
}

func (d Digest) Hex(c hexfmt.Case) string { return hexfmt.String(d.sum[:], c) }

func (d Digest) String() string { return d.alg.String() + ":" + d.Hex(hexfmt.Lower) }
