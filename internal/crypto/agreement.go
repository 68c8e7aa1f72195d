package crypto

import (
	"crypto/ecdh"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/curve25519"

	"cryptotour/internal/util/memzero"
)

const x25519KeySize = curve25519.ScalarSize

// Curve selects the key-agreement group.
type Curve int

const (
	P521 Curve = iota
	X25519
)

var (
	ErrUnknownCurve  = errors.New("unknown key agreement curve")
	ErrCurveMismatch = errors.New("peer key is on a different curve")
	ErrKeyWiped      = errors.New("agreement key has been wiped")
)

func (c Curve) String() string {
	switch c {
	case P521:
		return "p521"
	case X25519:
		return "x25519"
	}
	return fmt.Sprintf("Curve(%d)", int(c))
}

// ParseCurve accepts "p521" or "x25519".
func ParseCurve(v string) (Curve, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "p521", "p-521":
		return P521, nil
	case "x25519", "curve25519":
		return X25519, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCurve, v)
}

// AgreementPublicKey is a peer's public share.
type AgreementPublicKey struct {
	Curve Curve
	Bytes []byte
}

// AgreementKey is one party's private key-agreement share.
type AgreementKey struct {
	curve Curve
	p521  *ecdh.PrivateKey
	xPriv [x25519KeySize]byte
	xPub  [x25519KeySize]byte
	wiped bool
}

// GenerateAgreementKey returns a fresh private share on curve.
func GenerateAgreementKey(curve Curve) (*AgreementKey, error) {
	switch curve {
	case P521:
		priv, err := ecdh.P521().GenerateKey(rand.Reader)
		if err != nil {
			return nil, err
		}
		return &AgreementKey{curve: curve, p521: priv}, nil
	case X25519:
		k := &AgreementKey{curve: curve}
		if err := k.generateX25519(); err != nil {
			return nil, err
		}
		return k, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownCurve, int(curve))
}

func (k *AgreementKey) Curve() Curve { return k.curve }

// PublicKey returns k's public share. After Wipe it has no Bytes.
func (k *AgreementKey) PublicKey() AgreementPublicKey {
	if k.wiped {
		return AgreementPublicKey{Curve: k.curve}
	}
	if k.curve == P521 {
		return AgreementPublicKey{Curve: P521, Bytes: k.p521.PublicKey().Bytes()}
	}
	pub := make([]byte, x25519KeySize)
	copy(pub, k.xPub[:])
	return AgreementPublicKey{Curve: X25519, Bytes: pub}
}

// SharedSecret combines k with the peer's public share.
func (k *AgreementKey) SharedSecret(peer AgreementPublicKey) ([]byte, error) {
	if k.wiped {
		return nil, ErrKeyWiped
	}
	if peer.Curve != k.curve {
		return nil, fmt.Errorf("%w: have %v, peer %v", ErrCurveMismatch, k.curve, peer.Curve)
	}
	switch k.curve {
	case P521:
		pub, err := ecdh.P521().NewPublicKey(peer.Bytes)
		if err != nil {
			return nil, fmt.Errorf("parse peer key: %w", err)
		}
		return k.p521.ECDH(pub)
	case X25519:
		if len(peer.Bytes) != x25519KeySize {
			return nil, fmt.Errorf("parse peer key: want %d bytes, got %d", x25519KeySize, len(peer.Bytes))
		}
		// Rejects low-order peer points (all-zero output).
		return curve25519.X25519(k.xPriv[:], peer.Bytes)
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownCurve, int(k.curve))
}

// Wipe zeroes the X25519 scalar. P-521 keys are owned by crypto/ecdh and
// are dropped instead. A wiped key can no longer agree on secrets.
func (k *AgreementKey) Wipe() {
	memzero.Zero(k.xPriv[:], k.xPub[:])
	k.p521 = nil
	k.wiped = true
}

// generateX25519 draws a scalar, clamps it per RFC 7748 and computes the public point.
func (k *AgreementKey) generateX25519() error {
	if _, err := io.ReadFull(rand.Reader, k.xPriv[:]); err != nil {
		return err
	}
	k.xPriv[0] &= 248
	k.xPriv[31] &= 127
	k.xPriv[31] |= 64

	pub, err := curve25519.X25519(k.xPriv[:], curve25519.Basepoint)
	if err != nil {
		return err
	}
	copy(k.xPub[:], pub)
	return nil
}
