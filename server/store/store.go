// file store for /files routes, every name is resolved under one root dir
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const fileMode = 0o644

// Store reads and writes files under root; a nil *Store means no root configured.
// there is no locking, concurrent writes to one name race and the last one wins
type Store struct {
	root string
}

// new store for root dir, empty root gives nil store
func New(root string) *Store {
	if root == "" {
		return nil
	}
	return &Store{root: root}
}

func (s *Store) Root() string {
	if s == nil {
		return ""
	}
	return s.root
}

// check name is a single plain file name, so it can't leave the root
func CleanName(name string) (string, error) {
	switch {
	case name == "", name == ".", name == "..":
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	case strings.Contains(name, ".."),
		strings.ContainsAny(name, "/\\\x00"),
		strings.ContainsRune(name, filepath.Separator):
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return name, nil
}

func (s *Store) path(name string) (string, error) {
	if s == nil {
		return "", ErrNoRoot
	}
	name, err := CleanName(name)
	if err != nil {
		return "", err
	}
	return filepath.Join(s.root, name), nil
}

// size of file in bytes
func (s *Store) Stat(name string) (int64, error) {
	p, err := s.path(name)
	if err != nil {
		return 0, err
	}

	fi, err := os.Stat(p)
	if err != nil {
		return 0, &FileError{Op: "stat", Name: name, Err: err}
	}
	if fi.IsDir() {
		return 0, &FileError{Op: "stat", Name: name, Err: os.ErrNotExist}
	}
	return fi.Size(), nil
}

// read whole file
func (s *Store) Read(name string) ([]byte, error) {
	p, err := s.path(name)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(p)
	if err != nil {
		return nil, &FileError{Op: "read", Name: name, Err: err}
	}
	return data, nil
}

// write data to file, existing file is truncated; no partial write recovery
func (s *Store) Write(name string, data []byte) error {
	p, err := s.path(name)
	if err != nil {
		return err
	}

	if err := os.WriteFile(p, data, fileMode); err != nil {
		return &FileError{Op: "write", Name: name, Err: err}
	}
	return nil
}
