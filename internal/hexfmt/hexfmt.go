// Package hexfmt renders byte slices as hexadecimal text in a chosen letter case.
package hexfmt

import (
	"fmt"
	"strings"
)

// Case selects the letter case of hex digits a-f. The zero value is Lower.
type Case int

const (
	Lower Case = iota
	Upper
)

const (
	lowerDigits = "0123456789abcdef"
	upperDigits = "0123456789ABCDEF"
)

// Digits returns the 16-character alphabet for c. Unknown values fall back to lowercase.
func (c Case) Digits() string {
	if c == Upper {
		return upperDigits
	}
	return lowerDigits
}

func (c Case) String() string {
	if c == Upper {
		return "upper"
	}
	return "lower"
}

// ParseCase accepts "lower" or "upper" in any letter case.
func ParseCase(v string) (Case, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "lower", "lowercase", "":
		return Lower, nil
	case "upper", "uppercase":
		return Upper, nil
	}
	return Lower, fmt.Errorf("unknown hex case %q", v)
}

// String encodes b as two digits per byte, high nibble first, with no separators.
func String(b []byte, c Case) string {
	digits := c.Digits()
	out := make([]byte, len(b)*2)
	for i, v := range b {
		out[i*2] = digits[v>>4]
		out[i*2+1] = digits[v&0x0f]
	}
	return string(out)
}

// Lowercase is String(b, Lower).
func Lowercase(b []byte) string { return String(b, Lower) }
