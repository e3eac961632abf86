// internal/credential/keyring.go
package credential

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/zalando/go-keyring"
)

const (
	keyringService = "skypelogin"
	keyringAccount = "code-key"
)

// LoadKey returns the code key stored in the OS keyring, falling back to
// DefaultKey when none is stored.
func LoadKey() ([]byte, bool, error) {
	s, err := keyring.Get(keyringService, keyringAccount)
	if errors.Is(err, keyring.ErrNotFound) || (err == nil && strings.TrimSpace(s) == "") {
		return DefaultKey(), false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("keyring get %s/%s: %w", keyringService, keyringAccount, err)
	}
	key, err := ParseKey(s)
	if err != nil {
		return nil, false, err
	}
	return key, true, nil
}

// StoreKey saves a hex-encoded 32-byte key in the OS keyring.
func StoreKey(hexKey string) error {
	if _, err := ParseKey(hexKey); err != nil {
		return err
	}
	return keyring.Set(keyringService, keyringAccount, strings.ToLower(strings.TrimSpace(hexKey)))
}

// ClearKey removes the stored key. Removing a missing key is not an error.
func ClearKey() error {
	err := keyring.Delete(keyringService, keyringAccount)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return err
}

// ParseKey decodes a hex key and checks its length.
func ParseKey(s string) ([]byte, error) {
	b, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadKey, err)
	}
	if len(b) != KeySize {
		return nil, fmt.Errorf("%w: got %d bytes want %d", ErrBadKey, len(b), KeySize)
	}
	return b, nil
}
