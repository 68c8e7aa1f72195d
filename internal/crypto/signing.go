package crypto

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/sha512"
	"errors"
	"fmt"
	"strings"
)

// SignatureScheme selects the signature algorithm.
type SignatureScheme int

const (
	P521ECDSA SignatureScheme = iota
	Ed25519
)

var ErrUnknownScheme = errors.New("unknown signature scheme")

func (s SignatureScheme) String() string {
	switch s {
	case P521ECDSA:
		return "p521-ecdsa"
	case Ed25519:
		return "ed25519"
	}
	return fmt.Sprintf("SignatureScheme(%d)", int(s))
}

// ParseSignatureScheme accepts "p521" or "ed25519".
func ParseSignatureScheme(v string) (SignatureScheme, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "p521", "p-521", "p521-ecdsa", "ecdsa":
		return P521ECDSA, nil
	case "ed25519":
		return Ed25519, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownScheme, v)
}

// Signer holds a private signing key.
type Signer interface {
	Scheme() SignatureScheme
	Sign(msg []byte) ([]byte, error)
	Verifier() Verifier
}

// Verifier holds the matching public key.
type Verifier interface {
	Verify(msg, sig []byte) bool
	// Bytes returns the public key encoding used for fingerprints.
	Bytes() ([]byte, error)
}

// GenerateSigner returns a fresh key for scheme.
func GenerateSigner(scheme SignatureScheme) (Signer, error) {
	var (
		s   Signer
		err error
	)
	switch scheme {
	case P521ECDSA:
		s, err = GenerateP521()
	case Ed25519:
		s, err = GenerateEd25519()
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownScheme, int(scheme))
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// P521Key is a P-521 ECDSA private key. Messages are hashed with SHA-512.
type P521Key struct {
	priv *ecdsa.PrivateKey
}

type p521Verifier struct {
	pub *ecdsa.PublicKey
}

// GenerateP521 returns a fresh P-521 signing key.
func GenerateP521() (*P521Key, error) {
	priv, err := ecdsa.GenerateKey(elliptic.P521(), rand.Reader)
	if err != nil {
		return nil, err
	}
	return &P521Key{priv: priv}, nil
}

func (k *P521Key) Scheme() SignatureScheme { return P521ECDSA }

// Sign returns an ASN.1 DER signature over msg.
func (k *P521Key) Sign(msg []byte) ([]byte, error) {
	digest := sha512.Sum512(msg)
	return ecdsa.SignASN1(rand.Reader, k.priv, digest[:])
}

func (k *P521Key) Verifier() Verifier { return p521Verifier{pub: &k.priv.PublicKey} }

func (v p521Verifier) Verify(msg, sig []byte) bool {
	digest := sha512.Sum512(msg)
	return ecdsa.VerifyASN1(v.pub, digest[:], sig)
}

// Bytes returns the uncompressed SEC 1 encoding of the key.
func (v p521Verifier) Bytes() ([]byte, error) {
	pub, err := v.pub.ECDH()
	if err != nil {
		return nil, err
	}
	return pub.Bytes(), nil
}
