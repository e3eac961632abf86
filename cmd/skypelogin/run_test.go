package main

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zalando/go-keyring"

	"github.com/OsbornePro/skypelogin/internal/config"
	"github.com/OsbornePro/skypelogin/internal/credential"
	"github.com/OsbornePro/skypelogin/internal/logging"
)

func noKey() ([]byte, bool, error) {
	return nil, false, errors.New("keyring should not be read")
}

func TestResolveCredentials_Explicit(t *testing.T) {
	p, err := resolveCredentials("alice", "s3cret", "ignored", noKey)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if p.Account != "alice" || p.Password != "s3cret" {
		t.Fatalf("pair=%+v", p)
	}
}

func TestResolveCredentials_Missing(t *testing.T) {
	cases := map[string][3]string{
		"nothing":       {"", "", ""},
		"account only":  {"alice", "", ""},
		"password only": {"", "s3cret", "code"},
	}
	for name, c := range cases {
		if _, err := resolveCredentials(c[0], c[1], c[2], noKey); !errors.Is(err, errNoCredentials) {
			t.Fatalf("%s: expected errNoCredentials, got %v", name, err)
		}
	}
}

func TestResolveCredentials_Code(t *testing.T) {
	key := credential.DefaultKey()
	code, err := credential.Encode(credential.Pair{Account: "bob", Password: "hunter2"}, key, nil)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	load := func() ([]byte, bool, error) { return key, false, nil }

	p, err := resolveCredentials("", "", code, load)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if p.Account != "bob" || p.Password != "hunter2" {
		t.Fatalf("pair=%+v", p)
	}

	if _, err := resolveCredentials("", "", "zz"+code[2:], load); !errors.Is(err, credential.ErrMalformedCode) {
		t.Fatalf("expected ErrMalformedCode, got %v", err)
	}
}

func TestFirstNonEmpty(t *testing.T) {
	t.Setenv(config.EnvAccount, " from-env ")
	if got := firstNonEmpty("flag", config.EnvAccount); got != "flag" {
		t.Fatalf("flag should win, got %q", got)
	}
	if got := firstNonEmpty("  ", config.EnvAccount); got != "from-env" {
		t.Fatalf("env fallback, got %q", got)
	}
}

func TestEncodeCommand(t *testing.T) {
	keyring.MockInit()
	t.Setenv(config.EnvAccount, "carol")
	t.Setenv(config.EnvPassword, "pw")

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs([]string{"encode", "--env-file", filepath.Join(t.TempDir(), "none.env")})
	defer rootCmd.SetArgs(nil)

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("encode: %v", err)
	}
	code := strings.TrimSpace(out.String())
	p, err := credential.Decode(code, credential.DefaultKey())
	if err != nil {
		t.Fatalf("decode printed code: %v", err)
	}
	if p.Account != "carol" || p.Password != "pw" {
		t.Fatalf("pair=%+v", p)
	}
	if !strings.Contains(errOut.String(), "built-in key") {
		t.Fatalf("expected built-in key note, got %q", errOut.String())
	}
}

func TestLoadCredentials_RedactsDecodedPair(t *testing.T) {
	key := credential.DefaultKey()
	want := credential.Pair{Account: "dave@example.org", Password: "Tr0ub4dor"}
	code, err := credential.Encode(want, key, nil)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	var buf bytes.Buffer
	log, err := logging.New(logging.Options{Stderr: true, Redact: true, Level: "debug", Console: &buf})
	if err != nil {
		t.Fatalf("logging.New: %v", err)
	}
	defer log.Close()

	load := func() ([]byte, bool, error) { return key, false, nil }
	p, err := loadCredentials(log, "", "", code, load)
	if err != nil {
		t.Fatalf("loadCredentials: %v", err)
	}
	if p != want {
		t.Fatalf("pair=%+v want %+v", p, want)
	}

	log.WithField("account", p.Account).Info("starting login")
	log.Infof("typing %s then %s", p.Account, p.Password)

	out := buf.String()
	if out == "" {
		t.Fatalf("expected log output")
	}
	for _, secret := range []string{want.Account, want.Password, code} {
		if strings.Contains(out, secret) {
			t.Fatalf("log leaked %q:\n%s", secret, out)
		}
	}
	if !strings.Contains(out, "[REDACTED]") {
		t.Fatalf("expected redaction marker:\n%s", out)
	}
}

func TestLoadCredentials_RedactsExplicitPair(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New(logging.Options{Stderr: true, Redact: true, Console: &buf})
	if err != nil {
		t.Fatalf("logging.New: %v", err)
	}
	defer log.Close()

	p, err := loadCredentials(log, "erin", "opensesame", "", noKey)
	if err != nil {
		t.Fatalf("loadCredentials: %v", err)
	}
	log.Infof("account %s password %s", p.Account, p.Password)

	out := buf.String()
	if strings.Contains(out, "erin") || strings.Contains(out, "opensesame") {
		t.Fatalf("log leaked credentials:\n%s", out)
	}
}
