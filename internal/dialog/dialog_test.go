package dialog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestUsableDir(t *testing.T) {
	dir := t.TempDir()
	if got := usableDir(dir); got != dir {
		t.Fatalf("existing dir should be kept, got %q", got)
	}
	if got := usableDir(filepath.Join(dir, "missing")); got != "" {
		t.Fatalf("missing dir should be dropped, got %q", got)
	}
	f := filepath.Join(dir, "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}
	if got := usableDir(f); got != "" {
		t.Fatalf("a file is not a dir, got %q", got)
	}
	if got := usableDir(""); got != "" {
		t.Fatalf("empty stays empty, got %q", got)
	}
}

func TestFilterUTF16(t *testing.T) {
	got := filterUTF16("Exe", "*.exe")
	want := []uint16{'E', 'x', 'e', 0, '*', '.', 'e', 'x', 'e', 0, 0}
	if len(got) != len(want) {
		t.Fatalf("len=%d want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d=%d want %d", i, got[i], want[i])
		}
	}
}
