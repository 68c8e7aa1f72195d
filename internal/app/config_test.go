package app_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cryptotour/internal/app"
	"cryptotour/internal/crypto"
	"cryptotour/internal/hexfmt"
	"cryptotour/internal/random"
	"cryptotour/internal/tour"
)

func TestLoadConfig_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := app.LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg != app.DefaultConfig() {
		t.Fatalf("got %+v", cfg)
	}
	opts, err := cfg.Options()
	if err != nil {
		t.Fatalf("Options: %v", err)
	}
	if opts.Case != hexfmt.Lower || opts.SaltSize != random.Bits256 || opts.Curve != crypto.P521 {
		t.Fatalf("unexpected defaults %+v", opts)
	}
}

func TestLoadConfig_OverlaysYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cryptotour.yaml")
	yml := "hex_case: upper\nhash: blake3\ncurve: x25519\nsignature: ed25519\nsalt_size: \"512\"\n"
	if err := os.WriteFile(path, []byte(yml), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := app.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Cipher != "aes-gcm" {
		t.Fatalf("unset key lost its default: %q", cfg.Cipher)
	}
	opts, err := cfg.Options()
	if err != nil {
		t.Fatalf("Options: %v", err)
	}
	if opts.Case != hexfmt.Upper || opts.Hash != crypto.BLAKE3 || opts.Curve != crypto.X25519 || opts.SaltSize != random.Bits512 || opts.Signature != crypto.Ed25519 {
		t.Fatalf("unexpected options %+v", opts)
	}
}

func TestLoadConfig_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("hash: [unterminated"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := app.LoadConfig(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestConfig_OptionsRejectsUnknownValues(t *testing.T) {
	for _, mutate := range []func(*app.Config){
		func(c *app.Config) { c.HexCase = "title" },
		func(c *app.Config) { c.Hash = "md5" },
		func(c *app.Config) { c.Cipher = "rot13" },
		func(c *app.Config) { c.Curve = "p256" },
		func(c *app.Config) { c.PasswordKDF = "bcrypt" },
		func(c *app.Config) { c.Signature = "rsa" },
		func(c *app.Config) { c.SaltSize = "128" },
	} {
		cfg := app.DefaultConfig()
		mutate(&cfg)
		if _, err := cfg.Options(); err == nil {
			t.Fatalf("accepted %+v", cfg)
		}
	}
}

func TestNew_TourWritesToOut(t *testing.T) {
	var out, logs bytes.Buffer
	cfg := app.DefaultConfig()
	cfg.LogFormat = "json"
	cfg.LogLevel = "debug"
	a, err := app.New(cfg, &out, &logs)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := a.Tour().Run(context.Background(), tour.Hashing); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), "sha256") {
		t.Fatalf("output %q", out.String())
	}
	if !strings.Contains(logs.String(), `"section":"hashing"`) {
		t.Fatalf("logs %q", logs.String())
	}
}
