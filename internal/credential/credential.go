// internal/credential/credential.go
package credential

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/hkdf"
)

const (
	// Separator joins account and password inside a code.
	Separator = "\x1e"

	// KeySize is the AES-256 key length.
	KeySize = 32

	// Context string for HKDF.
	keyContext = "skypelogin-code-v1"
)

// Built-in key material. Codes only need to keep credentials off the
// command line in plain sight; use a keyring key for anything stronger.
var builtinSecret = []byte("skypelogin:7c1e0d4a:desktop-autologin")

// Pair is an account/password couple.
type Pair struct {
	Account  string
	Password string
}

// Valid reports whether both fields are present.
func (p Pair) Valid() bool {
	return p.Account != "" && p.Password != ""
}

// DefaultKey derives the built-in code key via HKDF-SHA256.
func DefaultKey() []byte {
	h := hkdf.New(sha256.New, builtinSecret, nil, []byte(keyContext))
	key := make([]byte, KeySize)
	if _, err := io.ReadFull(h, key); err != nil {
		// HKDF-SHA256 can produce far more than 32 bytes.
		panic("credential: hkdf: " + err.Error())
	}
	return key
}

// Decode turns a hex code into a Pair. The plaintext must contain Separator
// exactly once with non-empty text on both sides.
func Decode(code string, key []byte) (Pair, error) {
	raw, err := hex.DecodeString(strings.TrimSpace(code))
	if err != nil {
		return Pair{}, fmt.Errorf("%w: hex: %v", ErrMalformedCode, err)
	}

	plain, err := open(key, raw)
	if err != nil {
		return Pair{}, err
	}
	defer zeroBytes(plain)

	return Split(string(plain))
}

// Split separates a decrypted "account<sep>password" string.
func Split(plain string) (Pair, error) {
	parts := strings.Split(plain, Separator)
	if len(parts) != 2 {
		return Pair{}, fmt.Errorf("%w: found %d", ErrSeparator, len(parts)-1)
	}
	p := Pair{Account: parts[0], Password: parts[1]}
	if !p.Valid() {
		return Pair{}, ErrEmptyField
	}
	return p, nil
}

// Encode seals p under key. rnd supplies the nonce; nil means crypto/rand.
func Encode(p Pair, key []byte, rnd io.Reader) (string, error) {
	if !p.Valid() {
		return "", ErrEmptyField
	}
	if strings.Contains(p.Account, Separator) || strings.Contains(p.Password, Separator) {
		return "", fmt.Errorf("%w: field contains separator", ErrSeparator)
	}
	if rnd == nil {
		rnd = rand.Reader
	}

	aead, err := newAEAD(key)
	if err != nil {
		return "", err
	}
	nonce := make([]byte, aead.NonceSize())
	if _, err := io.ReadFull(rnd, nonce); err != nil {
		return "", fmt.Errorf("nonce: %w", err)
	}

	plain := []byte(p.Account + Separator + p.Password)
	defer zeroBytes(plain)

	sealed := aead.Seal(nonce, nonce, plain, []byte(keyContext))
	return hex.EncodeToString(sealed), nil
}

func open(key, raw []byte) ([]byte, error) {
	aead, err := newAEAD(key)
	if err != nil {
		return nil, err
	}
	if len(raw) < aead.NonceSize()+aead.Overhead() {
		return nil, fmt.Errorf("%w: too short (%d bytes)", ErrMalformedCode, len(raw))
	}
	nonce := raw[:aead.NonceSize()]
	ct := raw[aead.NonceSize():]
	plain, err := aead.Open(nil, nonce, ct, []byte(keyContext))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCode, err)
	}
	return plain, nil
}

func newAEAD(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: got %d bytes want %d", ErrBadKey, len(key), KeySize)
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
