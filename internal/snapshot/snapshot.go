// Package snapshot saves a screenshot of the Skype window when a login fails.
package snapshot

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/kbinani/screenshot"
)

var errEmptyRect = errors.New("snapshot: empty rectangle")

// FileName is the name used for a capture taken at t.
func FileName(t time.Time) string {
	return "skypelogin-failure-" + t.Format("20060102-150405") + ".png"
}

// Capture grabs rect from the screen and writes it as a PNG under dir.
// It returns the path written.
func Capture(rect image.Rectangle, dir string) (string, error) {
	if rect.Empty() {
		return "", errEmptyRect
	}
	img, err := screenshot.CaptureRect(rect)
	if err != nil {
		return "", fmt.Errorf("capture %v: %w", rect, err)
	}
	return write(img, dir, time.Now())
}

func write(img image.Image, dir string, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}
	path := filepath.Join(dir, FileName(now))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return "", err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("encode %s: %w", path, err)
	}
	return path, f.Close()
}
