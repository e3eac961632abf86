// internal/logging/logfile.go
package logging

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

const defaultLogName = "skypelogin.log"

// logFilePath resolves LogFile/LogDir into a single path, or "" for none.
func logFilePath(file, dir string) string {
	file = strings.TrimSpace(file)
	dir = strings.TrimSpace(dir)
	if file == "" && dir != "" {
		file = filepath.Join(dir, defaultLogName)
	}
	return file
}

func newRotatingFileWriter(path string, rotateMB, keep int) *rotatingFileWriter {
	if rotateMB < 1 {
		rotateMB = 10
	}
	if keep < 1 {
		keep = 10
	}
	w := &rotatingFileWriter{
		path:      path,
		maxBytes:  int64(rotateMB) * 1024 * 1024,
		keepFiles: keep,
	}
	// open now (best effort)
	_ = w.openIfNeeded()
	return w
}

type rotatingFileWriter struct {
	mu        sync.Mutex
	path      string
	maxBytes  int64
	keepFiles int
	f         *os.File
}

func (w *rotatingFileWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.openIfNeeded(); err != nil {
		return 0, err
	}

	if w.maxBytes > 0 {
		if fi, err := w.f.Stat(); err == nil {
			if fi.Size()+int64(len(p)) > w.maxBytes {
				_ = w.rotateLocked()
			}
		}
	}
	return w.f.Write(p)
}

// Close closes the current file; a later Write reopens it.
func (w *rotatingFileWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.f == nil {
		return nil
	}
	err := w.f.Close()
	w.f = nil
	return err
}

func (w *rotatingFileWriter) openIfNeeded() error {
	if w.f != nil {
		return nil
	}
	_ = os.MkdirAll(filepath.Dir(w.path), 0755)
	f, err := os.OpenFile(w.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return err
	}
	w.f = f
	return nil
}

func (w *rotatingFileWriter) rotateLocked() error {
	if w.f != nil {
		_ = w.f.Close()
		w.f = nil
	}

	fi, err := os.Stat(w.path)
	if err != nil || fi.Size() == 0 {
		return w.openIfNeeded()
	}

	// Nanoseconds keep two rotations within one second apart.
	ts := time.Now().Format("20060102-150405.000000000")
	_ = os.Rename(w.path, w.path+"."+ts)

	if err := w.openIfNeeded(); err != nil {
		return err
	}
	w.cleanupOldLocked()
	return nil
}

func (w *rotatingFileWriter) cleanupOldLocked() {
	dir := filepath.Dir(w.path)
	base := filepath.Base(w.path)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	type cand struct {
		path string
		name string
	}
	var cands []cand

	for _, e := range entries {
		name := e.Name()
		if name == base || !strings.HasPrefix(name, base+".") {
			continue
		}
		cands = append(cands, cand{path: filepath.Join(dir, name), name: name})
	}

	// Suffixes are timestamps, so name order is age order.
	sort.Slice(cands, func(i, j int) bool { return cands[i].name > cands[j].name })

	for i := w.keepFiles; i < len(cands); i++ {
		_ = os.Remove(cands[i].path)
	}
}
