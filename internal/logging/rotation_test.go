package logging

import (
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// newSmallWriter returns a writer that rotates after maxBytes, bypassing the
// megabyte granularity of RotationConfig.
func newSmallWriter(t *testing.T, maxBytes int64, backups int, compress bool) (*RotatingWriter, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), LogFileName)
	rw, err := NewRotatingWriter(path, RotationConfig{MaxSizeMB: 1, MaxBackups: backups, Compress: compress})
	if err != nil {
		t.Fatalf("NewRotatingWriter failed: %v", err)
	}
	rw.maxBytes = maxBytes
	t.Cleanup(func() { _ = rw.Close() })
	return rw, path
}

func TestNewRotatingWriter(t *testing.T) {
	t.Run("creates nested directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "logs", LogFileName)

		rw, err := NewRotatingWriter(path, DefaultRotationConfig())
		if err != nil {
			t.Fatalf("NewRotatingWriter failed: %v", err)
		}
		defer func() { _ = rw.Close() }()

		if _, err := os.Stat(path); err != nil {
			t.Errorf("log file was not created: %v", err)
		}
		if rw.Path() != path {
			t.Errorf("Path() = %q, want %q", rw.Path(), path)
		}
	})

	t.Run("appends to existing file and reports its size", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), LogFileName)
		if err := os.WriteFile(path, []byte("initial\n"), 0644); err != nil {
			t.Fatal(err)
		}

		rw, err := NewRotatingWriter(path, DefaultRotationConfig())
		if err != nil {
			t.Fatalf("NewRotatingWriter failed: %v", err)
		}
		if rw.Size() != 8 {
			t.Errorf("Size() = %d, want 8", rw.Size())
		}
		if _, err := rw.Write([]byte("appended\n")); err != nil {
			t.Fatalf("Write failed: %v", err)
		}
		_ = rw.Close()

		content, _ := os.ReadFile(path)
		if string(content) != "initial\nappended\n" {
			t.Errorf("content = %q", content)
		}
	})
}

func TestRotatingWriter_Rotates(t *testing.T) {
	rw, path := newSmallWriter(t, 20, 2, false)

	for _, line := range []string{"first line here\n", "second line here\n", "third line here\n", "fourth line here\n"} {
		if _, err := rw.Write([]byte(line)); err != nil {
			t.Fatalf("Write failed: %v", err)
		}
	}
	_ = rw.Close()

	current, _ := os.ReadFile(path)
	if string(current) != "fourth line here\n" {
		t.Errorf("current = %q", current)
	}
	newest, _ := os.ReadFile(path + ".1")
	if string(newest) != "third line here\n" {
		t.Errorf(".1 = %q", newest)
	}
	oldest, _ := os.ReadFile(path + ".2")
	if string(oldest) != "second line here\n" {
		t.Errorf(".2 = %q", oldest)
	}
	if _, err := os.Stat(path + ".3"); !os.IsNotExist(err) {
		t.Error("only two backups should be kept")
	}
}

func TestRotatingWriter_NoBackups(t *testing.T) {
	rw, path := newSmallWriter(t, 10, 0, false)

	_, _ = rw.Write([]byte("0123456789\n"))
	_, _ = rw.Write([]byte("abcdefghij\n"))
	_, _ = rw.Write([]byte("ABCDEFGHIJ\n"))
	_ = rw.Close()

	current, _ := os.ReadFile(path)
	if string(current) != "ABCDEFGHIJ\n" {
		t.Errorf("current = %q", current)
	}
	// The freshly rotated .1 survives until the next rotation removes it.
	prev, _ := os.ReadFile(path + ".1")
	if string(prev) != "abcdefghij\n" {
		t.Errorf(".1 = %q", prev)
	}
}

func TestRotatingWriter_Compress(t *testing.T) {
	rw, path := newSmallWriter(t, 10, 3, true)

	_, _ = rw.Write([]byte("first entry\n"))
	_, _ = rw.Write([]byte("second entry\n"))
	_ = rw.Close()

	if _, err := os.Stat(path + ".1"); !os.IsNotExist(err) {
		t.Error("uncompressed backup should be removed after compression")
	}

	f, err := os.Open(path + ".1.gz")
	if err != nil {
		t.Fatalf("compressed backup missing: %v", err)
	}
	defer f.Close()

	zr, err := gzip.NewReader(f)
	if err != nil {
		t.Fatalf("gzip.NewReader: %v", err)
	}
	data, _ := io.ReadAll(zr)
	if string(data) != "first entry\n" {
		t.Errorf("decompressed = %q", data)
	}
}

func TestRotatingWriter_WriteAfterClose(t *testing.T) {
	rw, _ := newSmallWriter(t, 1024, 1, false)
	_ = rw.Close()

	_, err := rw.Write([]byte("late\n"))
	if err == nil || !strings.Contains(err.Error(), "closed") {
		t.Errorf("Write after Close = %v, want closed error", err)
	}
	if err := rw.Close(); err != nil {
		t.Errorf("second Close() = %v", err)
	}
}
