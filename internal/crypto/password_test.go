package crypto_test

import (
	"bytes"
	"errors"
	"math"
	"strconv"
	"testing"

	"cryptotour/internal/crypto"
	"cryptotour/internal/random"
)

func TestDeriveFromPassphrase_SaltMatters(t *testing.T) {
	for _, kdf := range []crypto.PasswordKDF{crypto.Argon2id, crypto.Scrypt} {
		s1, _ := random.Salt(random.Bits256)
		s2, _ := random.Salt(random.Bits256)

		k1, err := crypto.DeriveFromPassphrase(kdf, "correct horse", s1, 32)
		if err != nil {
			t.Fatalf("%v: %v", kdf, err)
		}
		again, err := crypto.DeriveFromPassphrase(kdf, "correct horse", s1, 32)
		if err != nil {
			t.Fatalf("%v: %v", kdf, err)
		}
		k2, err := crypto.DeriveFromPassphrase(kdf, "correct horse", s2, 32)
		if err != nil {
			t.Fatalf("%v: %v", kdf, err)
		}
		if len(k1) != 32 || !bytes.Equal(k1, again) {
			t.Fatalf("%v: not reproducible with the same salt", kdf)
		}
		if bytes.Equal(k1, k2) {
			t.Fatalf("%v: different salts gave the same key", kdf)
		}
	}
}

func TestDeriveFromPassphrase_ShortSalt(t *testing.T) {
	if _, err := crypto.DeriveFromPassphrase(crypto.Scrypt, "pw", make([]byte, 8), 32); !errors.Is(err, crypto.ErrShortSalt) {
		t.Fatalf("want ErrShortSalt, got %v", err)
	}
}

func TestDeriveFromPassphrase_KeyLengthBounds(t *testing.T) {
	salt := make([]byte, crypto.MinSaltBytes)
	lengths := []int{0, -1}
	if strconv.IntSize == 64 {
		n := uint64(math.MaxUint32) + 1
		lengths = append(lengths, int(n))
	}
	for _, n := range lengths {
		if _, err := crypto.DeriveFromPassphrase(crypto.Argon2id, "pw", salt, n); err == nil {
			t.Fatalf("length %d accepted", n)
		}
	}
}
