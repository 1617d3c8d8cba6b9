package store

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func TestNilStore(t *testing.T) {
	s := New("")
	if s != nil {
		t.Fatal("empty root should give nil store")
	}

	if _, err := s.Read("a"); !errors.Is(err, ErrNoRoot) {
		t.Errorf("Read: %v", err)
	}
	if err := s.Write("a", []byte("x")); !errors.Is(err, ErrNoRoot) {
		t.Errorf("Write: %v", err)
	}
	if _, err := s.Stat("a"); !errors.Is(err, ErrNoRoot) {
		t.Errorf("Stat: %v", err)
	}
}

func TestReadWrite(t *testing.T) {
	s := New(t.TempDir())

	if err := s.Write("report.txt", []byte("first")); err != nil {
		t.Fatal(err)
	}
	if err := s.Write("report.txt", []byte("2nd")); err != nil {
		t.Fatal(err)
	}

	data, err := s.Read("report.txt")
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "2nd" {
		t.Errorf("Read = %q, want overwritten content", data)
	}

	size, err := s.Stat("report.txt")
	if err != nil {
		t.Fatal(err)
	}
	if size != 3 {
		t.Errorf("Stat = %d", size)
	}
}

func TestMissing(t *testing.T) {
	s := New(t.TempDir())

	_, err := s.Read("missing.txt")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected not exist, got %v", err)
	}

	var fe *FileError
	if !errors.As(err, &fe) || fe.Op != "read" || fe.Name != "missing.txt" {
		t.Errorf("expected *FileError, got %#v", err)
	}
}

func TestStatDirIsNotExist(t *testing.T) {
	root := t.TempDir()
	if err := os.Mkdir(filepath.Join(root, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}

	if _, err := New(root).Stat("sub"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected not exist for dir, got %v", err)
	}
}

func TestWriteFailure(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "does", "not", "exist"))

	err := s.Write("x", []byte("data"))
	var fe *FileError
	if !errors.As(err, &fe) || fe.Op != "write" {
		t.Errorf("expected write *FileError, got %v", err)
	}
}

func TestCleanName(t *testing.T) {
	tests := []struct {
		name string
		ok   bool
	}{
		{"report.txt", true},
		{"a.b.c", true},
		{"with space", true},
		{"", false},
		{".", false},
		{"..", false},
		{"../etc/passwd", false},
		{"a/b", false},
		{"/abs", false},
		{"a\\b", false},
		{"a..b", false},
		{"nul\x00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CleanName(tt.name)
			if tt.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidName) {
				t.Errorf("expected ErrInvalidName, got %v", err)
			}
		})
	}
}

func TestTraversalNeverTouchesParent(t *testing.T) {
	parent := t.TempDir()
	root := filepath.Join(parent, "root")
	if err := os.Mkdir(root, 0o755); err != nil {
		t.Fatal(err)
	}

	if err := New(root).Write("../escape", []byte("x")); !errors.Is(err, ErrInvalidName) {
		t.Fatalf("expected ErrInvalidName, got %v", err)
	}
	if _, err := os.Stat(filepath.Join(parent, "escape")); !errors.Is(err, fs.ErrNotExist) {
		t.Error("file written outside root")
	}
}

func TestConcurrentWritesLastWins(t *testing.T) {
	s := New(t.TempDir())

	var wg sync.WaitGroup
	for _, c := range []string{"aaaa", "bbbb", "cccc", "dddd"} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.Write("x", []byte(c)); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()

	data, err := s.Read("x")
	if err != nil {
		t.Fatal(err)
	}
	switch string(data) {
	case "aaaa", "bbbb", "cccc", "dddd":
	default:
		t.Errorf("torn write: %q", data)
	}
}
