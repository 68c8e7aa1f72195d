package crypto

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/scrypt"
)

// MinSaltBytes is the shortest salt DeriveFromPassphrase accepts.
const MinSaltBytes = 16

var ErrShortSalt = errors.New("salt too short")

// PasswordKDF selects the passphrase stretching function.
type PasswordKDF int

const (
	Argon2id PasswordKDF = iota
	Scrypt
)

// Tunables. Argon2id follows the RFC 9106 second recommendation;
// scrypt uses N=2^15, r=8, p=1.
const (
	argonTime    = 3
	argonMemory  = 64 * 1024
	argonThreads = 4

	scryptN = 1 << 15
	scryptR = 8
	scryptP = 1
)

func (k PasswordKDF) String() string {
	switch k {
	case Argon2id:
		return "argon2id"
	case Scrypt:
		return "scrypt"
	}
	return fmt.Sprintf("PasswordKDF(%d)", int(k))
}

// ParsePasswordKDF accepts "argon2id" or "scrypt".
func ParsePasswordKDF(v string) (PasswordKDF, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "argon2id", "argon2":
		return Argon2id, nil
	case "scrypt":
		return Scrypt, nil
	}
	return 0, fmt.Errorf("unknown password kdf %q", v)
}

// DeriveFromPassphrase stretches passphrase with salt into n key bytes.
func DeriveFromPassphrase(kdf PasswordKDF, passphrase string, salt []byte, n int) ([]byte, error) {
	if len(salt) < MinSaltBytes {
		return nil, fmt.Errorf("%w: %d bytes, need %d", ErrShortSalt, len(salt), MinSaltBytes)
	}
	if n <= 0 || uint64(n) > math.MaxUint32 {
		return nil, fmt.Errorf("invalid key length %d", n)
	}
	switch kdf {
	case Argon2id:
		return argon2.IDKey([]byte(passphrase), salt, argonTime, argonMemory, argonThreads, uint32(n)), nil
	case Scrypt:
		return scrypt.Key([]byte(passphrase), salt, scryptN, scryptR, scryptP, n)
	}
	return nil, fmt.Errorf("unknown password kdf %d", int(kdf))
}
