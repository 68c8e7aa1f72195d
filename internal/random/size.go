package random

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// SaltSize selects a salt length. The value is the byte count, not the bit count.
type SaltSize int

const (
	Bits256 SaltSize = 32
	Bits384 SaltSize = 48
	Bits512 SaltSize = 64
)

// DefaultSaltSize is used when callers have no preference.
const DefaultSaltSize = Bits256

var ErrInvalidSaltSize = errors.New("invalid salt size")

// Sizes lists every supported option in ascending order.
func Sizes() []SaltSize { return []SaltSize{Bits256, Bits384, Bits512} }

// Bytes returns the buffer length for s.
func (s SaltSize) Bytes() (int, error) {
	switch s {
	case Bits256:
		return 32, nil
	case Bits384:
		return 48, nil
	case Bits512:
		return 64, nil
	}
	return 0, fmt.Errorf("%w: %d", ErrInvalidSaltSize, int(s))
}

// Bits returns the security strength of s, or 0 if s is not a supported option.
func (s SaltSize) Bits() int {
	n, err := s.Bytes()
	if err != nil {
		return 0
	}
	return n * 8
}

func (s SaltSize) String() string {
	if b := s.Bits(); b != 0 {
		return "bits" + strconv.Itoa(b)
	}
	return fmt.Sprintf("SaltSize(%d)", int(s))
}

// ParseSaltSize accepts a strength in bits (256, 384, 512), a length in bytes
// (32, 48, 64) or the String form (bits256, ...). After the "bits" prefix
// only a strength in bits is valid.
func ParseSaltSize(v string) (SaltSize, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	digits, bitsOnly := strings.CutPrefix(v, "bits")
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSaltSize, v)
	}
	for _, s := range Sizes() {
		if n == s.Bits() || (!bitsOnly && n == int(s)) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidSaltSize, v)
}
