package tour

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"cryptotour/internal/crypto"
	"cryptotour/internal/hexfmt"
	"cryptotour/internal/random"
	"cryptotour/internal/util/memzero"
)

// Options tune the algorithms and output of a run. The zero value is usable:
// lowercase hex, SHA-256, AES-GCM, P-521 for signing and agreement, Argon2id
// and 256-bit salts.
type Options struct {
	Case       hexfmt.Case
	Hash       crypto.HashAlgorithm
	Cipher     crypto.CipherSuite
	Curve      crypto.Curve
	KDF        crypto.PasswordKDF
	Signature  crypto.SignatureScheme
	SaltSize   random.SaltSize
	Passphrase string
}

const (
	messageToHash     = "This is my message to hash"
	messageToEncrypt  = "This is my super secret message"
	messageToSign     = "My authenticated message - I was the one who sent this, I promise."
	tamperedMessage   = "My authenticated message - 🤣 was the one who sent this, I promise."
	messageToExchange = "Hello"
	defaultPassphrase = "correct horse battery staple"
)

// Runner executes tour sections. It is not safe for concurrent use.
type Runner struct {
	opts Options
	out  io.Writer
	log  zerolog.Logger
}

// New returns a Runner printing to out.
func New(opts Options, out io.Writer, log zerolog.Logger) *Runner {
	if opts.SaltSize == 0 {
		opts.SaltSize = random.DefaultSaltSize
	}
	if opts.Passphrase == "" {
		opts.Passphrase = defaultPassphrase
	}
	return &Runner{opts: opts, out: out, log: log}
}

// Run executes the named sections, or all of them when none are named.
func (r *Runner) Run(ctx context.Context, only ...Section) (*Report, error) {
	want := make(map[Section]bool, len(only))
	for _, s := range only {
		if !s.valid() {
			return &Report{}, fmt.Errorf("%w %q", ErrUnknownSection, s)
		}
		want[s] = true
	}
	rep := &Report{}
	for _, s := range AllSections() {
		if len(want) > 0 && !want[s] {
			continue
		}
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		log := r.log.With().Str("section", string(s)).Logger()
		log.Debug().Msg("section started")
		fmt.Fprintf(r.out, "\n// MARK: - %s\n\n", s.title())

		if err := r.run(s, rep); err != nil {
			log.Error().Err(err).Msg("section failed")
			return rep, fmt.Errorf("%s: %w", s, err)
		}
		log.Debug().Msg("section finished")
	}
	return rep, nil
}

func (r *Runner) run(s Section, rep *Report) (err error) {
	switch s {
	case Hashing:
		rep.Hashing, err = r.hashing()
	case Encryption:
		rep.Encryption, err = r.encryption()
	case Signing:
		rep.Signing, err = r.signing()
	case Salting:
		rep.Salting, err = r.salting()
	case KeyAgreement:
		rep.KeyAgreement, err = r.keyAgreement()
	default:
		err = fmt.Errorf("%w %q", ErrUnknownSection, s)
	}
	return err
}

func (r *Runner) hex(b []byte) string { return hexfmt.String(b, r.opts.Case) }

func (r *Runner) hashing() (*HashResult, error) {
	first, err := crypto.Hash(r.opts.Hash, []byte(messageToHash))
	if err != nil {
		return nil, err
	}
	second, err := crypto.Hash(r.opts.Hash, []byte(messageToHash))
	if err != nil {
		return nil, err
	}
	res := &HashResult{First: first, Second: second, Equal: first.Equal(second)}

	fmt.Fprintf(r.out, "%s(%q)\n  = %s\n", r.opts.Hash, messageToHash, first.Hex(r.opts.Case))
	fmt.Fprintf(r.out, "hashed again, digests equal: %t\n", res.Equal)
	return res, nil
}

func (r *Runner) encryption() (*EncryptionResult, error) {
	key, err := crypto.NewSymmetricKey()
	if err != nil {
		return nil, err
	}
	defer key.Wipe()

	sealed, err := crypto.Seal(r.opts.Cipher, key, []byte(messageToEncrypt), nil)
	if err != nil {
		return nil, err
	}
	opened, err := crypto.Open(r.opts.Cipher, key, sealed, nil)
	if err != nil {
		return nil, err
	}

	nonceSize, tagSize, err := r.opts.Cipher.Layout()
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(r.out, "sealed with %s (nonce.ciphertext.tag): %s\n", r.opts.Cipher, sealed.Hex(nonceSize, tagSize, r.opts.Case))
	fmt.Fprintf(r.out, "opened: %s\n", opened)
	return &EncryptionResult{Sealed: sealed, Opened: opened}, nil
}

func (r *Runner) signing() (*SigningResult, error) {
	personal, err := crypto.GenerateSigner(r.opts.Signature)
	if err != nil {
		return nil, err
	}
	another, err := crypto.GenerateSigner(r.opts.Signature)
	if err != nil {
		return nil, err
	}
	verifier := personal.Verifier()
	pub, err := verifier.Bytes()
	if err != nil {
		return nil, err
	}

	msg := []byte(messageToSign)
	sig, err := personal.Sign(msg)
	if err != nil {
		return nil, err
	}
	foreign, err := another.Sign(msg)
	if err != nil {
		return nil, err
	}

	res := &SigningResult{
		Fingerprint:   crypto.Fingerprint(pub, r.opts.Case),
		OwnValid:      verifier.Verify(msg, sig),
		ForeignValid:  verifier.Verify(msg, foreign),
		TamperedValid: verifier.Verify([]byte(tamperedMessage), sig),
	}

	fmt.Fprintf(r.out, "%s public key fingerprint: %s\n", personal.Scheme(), res.Fingerprint)
	fmt.Fprintf(r.out, "signature: %s\n", r.hex(sig))
	fmt.Fprintf(r.out, "our signature valid:          %t\n", res.OwnValid)
	fmt.Fprintf(r.out, "another person's signature:   %t\n", res.ForeignValid)
	fmt.Fprintf(r.out, "our signature, tampered text: %t\n", res.TamperedValid)
	return res, nil
}

func (r *Runner) salting() (*SaltingResult, error) {
	firstSalt, err := random.Salt(r.opts.SaltSize)
	if err != nil {
		return nil, err
	}
	secondSalt, err := random.Salt(r.opts.SaltSize)
	if err != nil {
		return nil, err
	}
	stretch := func(salt []byte) ([]byte, error) {
		return crypto.DeriveFromPassphrase(r.opts.KDF, r.opts.Passphrase, salt, crypto.KeySize)
	}
	firstKey, err := stretch(firstSalt)
	if err != nil {
		return nil, err
	}
	secondKey, err := stretch(secondSalt)
	if err != nil {
		return nil, err
	}
	again, err := stretch(firstSalt)
	if err != nil {
		return nil, err
	}
	res := &SaltingResult{
		FirstSalt:    firstSalt,
		SecondSalt:   secondSalt,
		FirstKey:     firstKey,
		SecondKey:    secondKey,
		Reproducible: bytes.Equal(firstKey, again),
	}
	memzero.Zero(again)

	fmt.Fprintf(r.out, "%s, %s salts\n", r.opts.KDF, r.opts.SaltSize)
	fmt.Fprintf(r.out, "salt 1: %s\n  key: %s\n", r.hex(firstSalt), r.hex(firstKey))
	fmt.Fprintf(r.out, "salt 2: %s\n  key: %s\n", r.hex(secondSalt), r.hex(secondKey))
	fmt.Fprintf(r.out, "same passphrase, different salts, keys equal: %t\n", bytes.Equal(firstKey, secondKey))
	fmt.Fprintf(r.out, "re-derived with salt 1, key reproduced: %t\n", res.Reproducible)
	return res, nil
}

func (r *Runner) keyAgreement() (*AgreementResult, error) {
	sharedSalt, err := random.Salt(r.opts.SaltSize)
	if err != nil {
		return nil, err
	}
	var sharedInfo []byte

	bob, err := crypto.GenerateAgreementKey(r.opts.Curve)
	if err != nil {
		return nil, err
	}
	defer bob.Wipe()
	alice, err := crypto.GenerateAgreementKey(r.opts.Curve)
	if err != nil {
		return nil, err
	}
	defer alice.Wipe()

	aliceKey, err := deriveFor(alice, bob.PublicKey(), sharedSalt, sharedInfo)
	if err != nil {
		return nil, fmt.Errorf("alice: %w", err)
	}
	defer aliceKey.Wipe()
	bobKey, err := deriveFor(bob, alice.PublicKey(), sharedSalt, sharedInfo)
	if err != nil {
		return nil, fmt.Errorf("bob: %w", err)
	}
	defer bobKey.Wipe()

	sealed, err := crypto.Seal(r.opts.Cipher, bobKey, []byte(messageToExchange), nil)
	if err != nil {
		return nil, err
	}
	received, err := crypto.Open(r.opts.Cipher, aliceKey, sealed, nil)
	if err != nil {
		return nil, err
	}

	res := &AgreementResult{
		Salt:        sharedSalt,
		AliceFinger: crypto.Fingerprint(alice.PublicKey().Bytes, r.opts.Case),
		BobFinger:   crypto.Fingerprint(bob.PublicKey().Bytes, r.opts.Case),
		KeysEqual:   aliceKey.Equal(bobKey),
		Received:    received,
	}

	fmt.Fprintf(r.out, "curve: %s, shared salt: %s\n", r.opts.Curve, r.hex(sharedSalt))
	fmt.Fprintf(r.out, "alice: %s  bob: %s\n", res.AliceFinger, res.BobFinger)
	fmt.Fprintf(r.out, "derived symmetric keys equal: %t\n", res.KeysEqual)
	fmt.Fprintf(r.out, "bob -> alice: %s\n", received)
	return res, nil
}

func deriveFor(own *crypto.AgreementKey, peer crypto.AgreementPublicKey, salt, info []byte) (crypto.SymmetricKey, error) {
	secret, err := own.SharedSecret(peer)
	if err != nil {
		return crypto.SymmetricKey{}, err
	}
	defer memzero.Zero(secret)
	return crypto.DeriveSymmetricKey(secret, salt, info)
}
