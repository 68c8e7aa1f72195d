package crypto

import (
	"crypto/ed25519"
	"crypto/rand"
)

// Ed25519Key is an Ed25519 signing key. Messages are signed directly, without prehashing.
type Ed25519Key struct {
	priv ed25519.PrivateKey
}

type ed25519Verifier struct {
	pub ed25519.PublicKey
}

// GenerateEd25519 returns a new Ed25519 signing key.
func GenerateEd25519() (*Ed25519Key, error) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, err
	}
	return &Ed25519Key{priv: priv}, nil
}

func (k *Ed25519Key) Scheme() SignatureScheme { return Ed25519 }

func (k *Ed25519Key) Sign(msg []byte) ([]byte, error) {
	return ed25519.Sign(k.priv, msg), nil
}

func (k *Ed25519Key) Verifier() Verifier {
	return ed25519Verifier{pub: k.priv.Public().(ed25519.PublicKey)}
}

func (v ed25519Verifier) Verify(msg, sig []byte) bool {
	return ed25519.Verify(v.pub, msg, sig)
}

func (v ed25519Verifier) Bytes() ([]byte, error) {
	out := make([]byte, len(v.pub))
	copy(out, v.pub)
	return out, nil
}
