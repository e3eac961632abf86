package credential

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"github.com/zalando/go-keyring"
)

// sealRaw builds a code around arbitrary plaintext with a zero nonce so tests
// can exercise decode paths Encode refuses to produce.
func sealRaw(t *testing.T, key []byte, plain string) string {
	t.Helper()
	block, err := aes.NewCipher(key)
	if err != nil {
		t.Fatalf("aes: %v", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		t.Fatalf("gcm: %v", err)
	}
	nonce := make([]byte, aead.NonceSize())
	return hex.EncodeToString(aead.Seal(nonce, nonce, []byte(plain), []byte(keyContext)))
}

func TestDecode_KnownCode(t *testing.T) {
	key := DefaultKey()
	code := sealRaw(t, key, "alice@example.com"+Separator+"s3cret!")

	p, err := Decode(code, key)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if p.Account != "alice@example.com" || p.Password != "s3cret!" {
		t.Fatalf("Decode=%+v", p)
	}
}

func TestDecode_UpperHexAndWhitespace(t *testing.T) {
	key := DefaultKey()
	code := strings.ToUpper(sealRaw(t, key, "a"+Separator+"b"))
	if _, err := Decode("  "+code+"\n", key); err != nil {
		t.Fatalf("Decode: %v", err)
	}
}

func TestDecode_SeparatorCount(t *testing.T) {
	key := DefaultKey()
	cases := map[string]string{
		"missing": "alicepassword",
		"twice":   "alice" + Separator + "pass" + Separator + "word",
	}
	for name, plain := range cases {
		_, err := Decode(sealRaw(t, key, plain), key)
		if !errors.Is(err, ErrSeparator) {
			t.Fatalf("%s: expected ErrSeparator, got %v", name, err)
		}
	}
}

func TestDecode_EmptyField(t *testing.T) {
	key := DefaultKey()
	for _, plain := range []string{Separator + "pw", "acct" + Separator, Separator} {
		_, err := Decode(sealRaw(t, key, plain), key)
		if !errors.Is(err, ErrEmptyField) {
			t.Fatalf("Decode(%q): expected ErrEmptyField, got %v", plain, err)
		}
	}
}

func TestDecode_Malformed(t *testing.T) {
	key := DefaultKey()
	good := sealRaw(t, key, "a"+Separator+"b")

	tampered := []byte(good)
	if tampered[len(tampered)-1] == '0' {
		tampered[len(tampered)-1] = '1'
	} else {
		tampered[len(tampered)-1] = '0'
	}

	cases := map[string]string{
		"not hex":  "zz-not-hex",
		"short":    "00112233",
		"tampered": string(tampered),
		"empty":    "",
	}
	for name, code := range cases {
		_, err := Decode(code, key)
		if !errors.Is(err, ErrMalformedCode) {
			t.Fatalf("%s: expected ErrMalformedCode, got %v", name, err)
		}
	}

	otherKey := bytes.Repeat([]byte{7}, KeySize)
	if _, err := Decode(good, otherKey); !errors.Is(err, ErrMalformedCode) {
		t.Fatalf("wrong key: expected ErrMalformedCode, got %v", err)
	}
}

func TestDecode_BadKeyLength(t *testing.T) {
	if _, err := Decode("00", []byte("short")); !errors.Is(err, ErrBadKey) {
		t.Fatalf("expected ErrBadKey, got %v", err)
	}
}

func TestEncode_DecodesBack(t *testing.T) {
	key := DefaultKey()
	zero := bytes.NewReader(make([]byte, 64))

	code, err := Encode(Pair{Account: "bob", Password: "hunter2"}, key, zero)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !strings.HasPrefix(code, strings.Repeat("00", 12)) {
		t.Fatalf("expected zero nonce prefix, got %s", code[:24])
	}
	p, err := Decode(code, key)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if p.Account != "bob" || p.Password != "hunter2" {
		t.Fatalf("Decode=%+v", p)
	}
}

func TestEncode_Rejects(t *testing.T) {
	key := DefaultKey()
	if _, err := Encode(Pair{Account: "a"}, key, nil); !errors.Is(err, ErrEmptyField) {
		t.Fatalf("expected ErrEmptyField, got %v", err)
	}
	if _, err := Encode(Pair{Account: "a" + Separator, Password: "b"}, key, nil); !errors.Is(err, ErrSeparator) {
		t.Fatalf("expected ErrSeparator, got %v", err)
	}
}

func TestDefaultKey_Stable(t *testing.T) {
	a, b := DefaultKey(), DefaultKey()
	if len(a) != KeySize || !bytes.Equal(a, b) {
		t.Fatalf("DefaultKey must be deterministic and %d bytes", KeySize)
	}
}

func TestKeyring_StoreLoadClear(t *testing.T) {
	keyring.MockInit()

	key, stored, err := LoadKey()
	if err != nil {
		t.Fatalf("LoadKey (empty): %v", err)
	}
	if stored || !bytes.Equal(key, DefaultKey()) {
		t.Fatalf("expected default key when keyring is empty")
	}

	custom := strings.Repeat("ab", KeySize)
	if err := StoreKey(custom); err != nil {
		t.Fatalf("StoreKey: %v", err)
	}
	key, stored, err = LoadKey()
	if err != nil {
		t.Fatalf("LoadKey: %v", err)
	}
	if !stored || hex.EncodeToString(key) != custom {
		t.Fatalf("LoadKey=%x stored=%v", key, stored)
	}

	if err := ClearKey(); err != nil {
		t.Fatalf("ClearKey: %v", err)
	}
	if err := ClearKey(); err != nil {
		t.Fatalf("ClearKey twice: %v", err)
	}
	if _, stored, _ = LoadKey(); stored {
		t.Fatalf("expected no stored key after ClearKey")
	}
}

func TestStoreKey_RejectsBadKey(t *testing.T) {
	keyring.MockInit()
	for _, k := range []string{"nothex", "abcd"} {
		if err := StoreKey(k); !errors.Is(err, ErrBadKey) {
			t.Fatalf("StoreKey(%q): expected ErrBadKey, got %v", k, err)
		}
	}
}
