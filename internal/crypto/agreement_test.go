package crypto_test

import (
	"bytes"
	"errors"
	"testing"

	"cryptotour/internal/crypto"
	"cryptotour/internal/random"
)

func TestAgreement_BothSidesDeriveSameKey(t *testing.T) {
	for _, curve := range []crypto.Curve{crypto.P521, crypto.X25519} {
		bob, err := crypto.GenerateAgreementKey(curve)
		if err != nil {
			t.Fatalf("%v: %v", curve, err)
		}
		alice, err := crypto.GenerateAgreementKey(curve)
		if err != nil {
			t.Fatalf("%v: %v", curve, err)
		}

		aliceSecret, err := alice.SharedSecret(bob.PublicKey())
		if err != nil {
			t.Fatalf("%v alice: %v", curve, err)
		}
		bobSecret, err := bob.SharedSecret(alice.PublicKey())
		if err != nil {
			t.Fatalf("%v bob: %v", curve, err)
		}
		if !bytes.Equal(aliceSecret, bobSecret) {
			t.Fatalf("%v: shared secrets differ", curve)
		}

		salt, err := random.Salt(random.Bits256)
		if err != nil {
			t.Fatalf("Salt: %v", err)
		}
		ak, err := crypto.DeriveSymmetricKey(aliceSecret, salt, nil)
		if err != nil {
			t.Fatalf("derive: %v", err)
		}
		bk, err := crypto.DeriveSymmetricKey(bobSecret, salt, nil)
		if err != nil {
			t.Fatalf("derive: %v", err)
		}
		if !ak.Equal(bk) {
			t.Fatalf("%v: derived keys differ", curve)
		}

		box, err := crypto.Seal(crypto.AESGCM, bk, []byte("Hello"), nil)
		if err != nil {
			t.Fatalf("seal: %v", err)
		}
		got, err := crypto.Open(crypto.AESGCM, ak, box, nil)
		if err != nil || string(got) != "Hello" {
			t.Fatalf("open: %q, %v", got, err)
		}
	}
}

func TestAgreement_CurveMismatch(t *testing.T) {
	p, _ := crypto.GenerateAgreementKey(crypto.P521)
	x, _ := crypto.GenerateAgreementKey(crypto.X25519)
	if _, err := p.SharedSecret(x.PublicKey()); !errors.Is(err, crypto.ErrCurveMismatch) {
		t.Fatalf("want ErrCurveMismatch, got %v", err)
	}
}

func TestAgreement_RejectsBadPeerKeys(t *testing.T) {
	x, _ := crypto.GenerateAgreementKey(crypto.X25519)
	if _, err := x.SharedSecret(crypto.AgreementPublicKey{Curve: crypto.X25519, Bytes: []byte{1, 2}}); err == nil {
		t.Fatal("short X25519 key accepted")
	}
	zero := make([]byte, 32)
	if _, err := x.SharedSecret(crypto.AgreementPublicKey{Curve: crypto.X25519, Bytes: zero}); err == nil {
		t.Fatal("low-order X25519 key accepted")
	}
	p, _ := crypto.GenerateAgreementKey(crypto.P521)
	if _, err := p.SharedSecret(crypto.AgreementPublicKey{Curve: crypto.P521, Bytes: []byte{4, 1}}); err == nil {
		t.Fatal("malformed P-521 key accepted")
	}
}

func TestDeriveKey_Deterministic(t *testing.T) {
	secret := []byte("shared")
	a, err := crypto.DeriveKey(secret, []byte("salt"), []byte("ctx"), 42)
	if err != nil {
		t.Fatalf("DeriveKey: %v", err)
	}
	b, _ := crypto.DeriveKey(secret, []byte("salt"), []byte("ctx"), 42)
	c, _ := crypto.DeriveKey(secret, []byte("salt"), []byte("other"), 42)
	if len(a) != 42 || !bytes.Equal(a, b) {
		t.Fatal("HKDF output not deterministic")
	}
	if bytes.Equal(a, c) {
		t.Fatal("info did not separate outputs")
	}
	if _, err := crypto.DeriveKey(secret, nil, nil, 0); err == nil {
		t.Fatal("zero length accepted")
	}
}

func TestAgreement_WipedKeyIsUnusable(t *testing.T) {
	for _, curve := range []crypto.Curve{crypto.P521, crypto.X25519} {
		k, err := crypto.GenerateAgreementKey(curve)
		if err != nil {
			t.Fatalf("%v: %v", curve, err)
		}
		peer, _ := crypto.GenerateAgreementKey(curve)
		k.Wipe()

		pub := k.PublicKey()
		if pub.Curve != curve || len(pub.Bytes) != 0 {
			t.Fatalf("%v: wiped key still exposes %d public bytes", curve, len(pub.Bytes))
		}
		if _, err := k.SharedSecret(peer.PublicKey()); !errors.Is(err, crypto.ErrKeyWiped) {
			t.Fatalf("%v: want ErrKeyWiped, got %v", curve, err)
		}
		k.Wipe()
	}
}
