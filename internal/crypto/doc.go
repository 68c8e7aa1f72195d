// Package crypto exposes the primitives the tour demonstrates.
//
// Contents
//
//   - Digests with SHA-256 or BLAKE3 (Hash, Digest)
//   - AEAD sealing with AES-GCM or ChaCha20-Poly1305 (Seal, Open, SealedBox.Hex)
//   - P-521 ECDSA and Ed25519 signatures behind Signer/Verifier (GenerateSigner)
//   - P-521 and X25519 key agreement (GenerateAgreementKey, SharedSecret)
//   - HKDF-SHA256 key derivation from shared secrets (DeriveSymmetricKey)
//   - Passphrase stretching with Argon2id or scrypt (DeriveFromPassphrase)
//   - Short public-key fingerprints for display (Fingerprint)
//
// # Notes
//
// Every primitive comes from the standard library, golang.org/x/crypto or
// github.com/zeebo/blake3. Failures are returned as errors, never panics.
// Intermediate secrets are wiped with memzero where the API allows it.
package crypto
