package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// FileStore is a Repository backed by a flat directory of asset files.
// Names map directly to file names, so callers should pass plain base
// names; anything with a path separator is rejected.
//
// The active entry is tracked per process, not persisted. A restarted
// session re-activates explicitly, matching how the device re-pairs.
type FileStore struct {
	dir string

	mu     sync.Mutex
	active string
}

// NewFileStore returns a catalog rooted at dir, creating the directory
// if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create catalog dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Dir returns the directory backing the store.
func (s *FileStore) Dir() string { return s.dir }

// Create writes an asset file under name.
func (s *FileStore) Create(name string, data []byte) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to store asset: %w", err)
	}
	return nil
}

// List returns all stored entries sorted by name.
func (s *FileStore) List() ([]Entry, error) {
	files, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog dir: %w", err)
	}

	entries := make([]Entry, 0, len(files))
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		info, err := f.Info()
		if err != nil {
			continue
		}
		entries = append(entries, Entry{Name: f.Name(), Size: info.Size()})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

// Open reads the stored bytes for name.
func (s *FileStore) Open(name string) ([]byte, error) {
	path, err := s.path(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read asset: %w", err)
	}
	return data, nil
}

// Activate marks name as the active entry.
func (s *FileStore) Activate(name string) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return ErrNotFound
	} else if err != nil {
		return fmt.Errorf("failed to stat asset: %w", err)
	}

	s.mu.Lock()
	s.active = name
	s.mu.Unlock()
	return nil
}

// Active returns the active entry.
func (s *FileStore) Active() (Entry, error) {
	s.mu.Lock()
	name := s.active
	s.mu.Unlock()

	if name == "" {
		return Entry{}, ErrNoActive
	}
	path, err := s.path(name)
	if err != nil {
		return Entry{}, err
	}
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Entry{}, ErrNotFound
	}
	if err != nil {
		return Entry{}, fmt.Errorf("failed to stat asset: %w", err)
	}
	return Entry{Name: name, Size: info.Size()}, nil
}

// Delete removes an asset file, clearing the activation if it was
// active.
func (s *FileStore) Delete(name string) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); errors.Is(err, fs.ErrNotExist) {
		return ErrNotFound
	} else if err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}

	s.mu.Lock()
	if s.active == name {
		s.active = ""
	}
	s.mu.Unlock()
	return nil
}

func (s *FileStore) path(name string) (string, error) {
	if name == "" || name != filepath.Base(name) {
		return "", fmt.Errorf("invalid asset name %q", name)
	}
	return filepath.Join(s.dir, name), nil
}
