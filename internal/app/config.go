package app

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"cryptotour/internal/crypto"
	"cryptotour/internal/hexfmt"
	"cryptotour/internal/random"
	"cryptotour/internal/tour"
)

// Config holds runtime options, as read from YAML.
type Config struct {
	HexCase     string `yaml:"hex_case"`     // lower | upper
	Hash        string `yaml:"hash"`         // sha256 | blake3
	Cipher      string `yaml:"cipher"`       // aes-gcm | chacha20-poly1305
	Curve       string `yaml:"curve"`        // p521 | x25519
	Signature   string `yaml:"signature"`    // p521 | ed25519
	PasswordKDF string `yaml:"password_kdf"` // argon2id | scrypt
	SaltSize    string `yaml:"salt_size"`    // 256 | 384 | 512
	Passphrase  string `yaml:"passphrase"`   // used by the salting section
	LogLevel    string `yaml:"log_level"`
	LogFormat   string `yaml:"log_format"` // json | console
}

// DefaultConfig selects SHA-256, AES-GCM, P-521 and Argon2id with 256-bit salts.
func DefaultConfig() Config {
	return Config{
		HexCase:     "lower",
		Hash:        "sha256",
		Cipher:      "aes-gcm",
		Curve:       "p521",
		Signature:   "p521",
		PasswordKDF: "argon2id",
		SaltSize:    "256",
		LogLevel:    "info",
		LogFormat:   "console",
	}
}

// LoadConfig overlays the YAML file at path on DefaultConfig. An empty path
// or a missing file yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Options validates cfg and converts it to tour options.
func (c Config) Options() (tour.Options, error) {
	var (
		opts tour.Options
		err  error
	)
	if opts.Case, err = hexfmt.ParseCase(c.HexCase); err != nil {
		return opts, err
	}
	if opts.Hash, err = crypto.ParseHashAlgorithm(c.Hash); err != nil {
		return opts, err
	}
	if opts.Cipher, err = crypto.ParseCipherSuite(c.Cipher); err != nil {
		return opts, err
	}
	if opts.Curve, err = crypto.ParseCurve(c.Curve); err != nil {
		return opts, err
	}
	if opts.Signature, err = crypto.ParseSignatureScheme(c.Signature); err != nil {
		return opts, err
	}
	if opts.KDF, err = crypto.ParsePasswordKDF(c.PasswordKDF); err != nil {
		return opts, err
	}
	if opts.SaltSize, err = random.ParseSaltSize(c.SaltSize); err != nil {
		return opts, err
	}
	opts.Passphrase = c.Passphrase
	return opts, nil
}
