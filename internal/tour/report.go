package tour

import "cryptotour/internal/crypto"

type HashResult struct {
	First, Second crypto.Digest
	Equal         bool
}

type EncryptionResult struct {
	Sealed crypto.SealedBox
	Opened []byte
}

type SigningResult struct {
	Fingerprint string

	// Verification outcomes with our public key.
	OwnValid      bool
	ForeignValid  bool
	TamperedValid bool
}

type SaltingResult struct {
	FirstSalt, SecondSalt []byte
	FirstKey, SecondKey   []byte
	Reproducible          bool
}

type AgreementResult struct {
	Salt                   []byte
	AliceFinger, BobFinger string
	KeysEqual              bool
	Received               []byte
}

// Report gathers the result of every section that ran; skipped sections stay nil.
type Report struct {
	Hashing      *HashResult
	Encryption   *EncryptionResult
	Signing      *SigningResult
	Salting      *SaltingResult
	KeyAgreement *AgreementResult
}
