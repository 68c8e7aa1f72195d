package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/chacha20poly1305"

	"cryptotour/internal/hexfmt"
	"cryptotour/internal/random"
	"cryptotour/internal/util/memzero"
)

// KeySize is the length of a SymmetricKey in bytes.
const KeySize = 32

var (
	ErrUnknownCipher = errors.New("unknown cipher suite")
	// Returned when a sealed box fails authentication: wrong key, wrong
	// associated data, or modified ciphertext.
	ErrOpen = errors.New("message authentication failed")
)

// SymmetricKey is a 256-bit secret shared by both ends of an AEAD.
type SymmetricKey [KeySize]byte

// NewSymmetricKey draws a fresh key from the secure random source.
func NewSymmetricKey() (SymmetricKey, error) {
	var k SymmetricKey
	b, err := random.Salt(random.Bits256)
	if err != nil {
		return k, err
	}
	copy(k[:], b)
	memzero.Zero(b)
	return k, nil
}

func (k *SymmetricKey) Slice() []byte { return k[:] }

// Equal compares two keys in constant time.
func (k SymmetricKey) Equal(o SymmetricKey) bool {
	return subtle.ConstantTimeCompare(k[:], o[:]) == 1
}

// Wipe zeroes the key in place.
func (k *SymmetricKey) Wipe() { memzero.Zero(k[:]) }

// CipherSuite selects the AEAD construction.
type CipherSuite int

const (
	AESGCM CipherSuite = iota
	ChaCha20Poly1305
)

func (s CipherSuite) String() string {
	switch s {
	case AESGCM:
		return "aes-256-gcm"
	case ChaCha20Poly1305:
		return "chacha20-poly1305"
	}
	return fmt.Sprintf("CipherSuite(%d)", int(s))
}

// ParseCipherSuite accepts "aes-gcm" or "chacha20-poly1305".
func ParseCipherSuite(v string) (CipherSuite, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "aes-gcm", "aes-256-gcm", "aesgcm":
		return AESGCM, nil
	case "chacha20-poly1305", "chacha20poly1305", "chacha":
		return ChaCha20Poly1305, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCipher, v)
}

func (s CipherSuite) aead(key *SymmetricKey) (cipher.AEAD, error) {
	switch s {
	case AESGCM:
		block, err := aes.NewCipher(key.Slice())
		if err != nil {
			return nil, err
		}
		return cipher.NewGCM(block)
	case ChaCha20Poly1305:
		return chacha20poly1305.New(key.Slice())
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownCipher, int(s))
}

// SealedBox is the combined representation nonce || ciphertext || tag.
type SealedBox []byte

// Hex renders the box as "nonce.ciphertext.tag" for a suite whose nonce and
// tag sizes are nonceSize and tagSize. A box too short to split is rendered whole.
func (b SealedBox) Hex(nonceSize, tagSize int, c hexfmt.Case) string {
	if nonceSize < 0 || tagSize < 0 || len(b) < nonceSize+tagSize {
		return hexfmt.String(b, c)
	}
	ct := len(b) - tagSize
	return hexfmt.String(b[:nonceSize], c) + "." +
		hexfmt.String(b[nonceSize:ct], c) + "." +
		hexfmt.String(b[ct:], c)
}

// Layout returns the nonce and tag sizes of s.
func (s CipherSuite) Layout() (nonceSize, tagSize int, err error) {
	var key SymmetricKey
	aead, err := s.aead(&key)
	if err != nil {
		return 0, 0, err
	}
	return aead.NonceSize(), aead.Overhead(), nil
}

// Seal encrypts and authenticates plaintext (and aad) under key with a fresh random nonce.
func Seal(suite CipherSuite, key SymmetricKey, plaintext, aad []byte) (SealedBox, error) {
	aead, err := suite.aead(&key)
	defer key.Wipe()
	if err != nil {
		return nil, err
	}
	out := make([]byte, aead.NonceSize(), aead.NonceSize()+len(plaintext)+aead.Overhead())
	if _, err := io.ReadFull(rand.Reader, out); err != nil {
		return nil, fmt.Errorf("%w: nonce: %v", random.ErrEntropy, err)
	}
	return aead.Seal(out, out[:aead.NonceSize()], plaintext, aad), nil
}

// Open authenticates and decrypts box. Any tampering yields ErrOpen.
func Open(suite CipherSuite, key SymmetricKey, box SealedBox, aad []byte) ([]byte, error) {
	aead, err := suite.aead(&key)
	defer key.Wipe()
	if err != nil {
		return nil, err
	}
	ns := aead.NonceSize()
	if len(box) < ns+aead.Overhead() {
		return nil, ErrOpen
	}
	pt, err := aead.Open(nil, box[:ns], box[ns:], aad)
	if err != nil {
		return nil, ErrOpen
	}
	return pt, nil
}
