package catalog

import (
	"sort"
	"sync"
)

// Memory is an in-memory Repository. It is safe for concurrent use.
type Memory struct {
	mu     sync.RWMutex
	assets map[string][]byte
	active string
}

// NewMemory returns an empty in-memory catalog.
func NewMemory() *Memory {
	return &Memory{assets: make(map[string][]byte)}
}

// Create stores a copy of data under name.
func (m *Memory) Create(name string, data []byte) error {
	buf := make([]byte, len(data))
	copy(buf, data)
	m.mu.Lock()
	m.assets[name] = buf
	m.mu.Unlock()
	return nil
}

// List returns all entries sorted by name.
func (m *Memory) List() ([]Entry, error) {
	m.mu.RLock()
	entries := make([]Entry, 0, len(m.assets))
	for name, data := range m.assets {
		entries = append(entries, Entry{Name: name, Size: int64(len(data))})
	}
	m.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

// Open returns a copy of the stored bytes for name.
func (m *Memory) Open(name string) ([]byte, error) {
	m.mu.RLock()
	data, ok := m.assets[name]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Activate marks name as the active entry.
func (m *Memory) Activate(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.assets[name]; !ok {
		return ErrNotFound
	}
	m.active = name
	return nil
}

// Active returns the active entry.
func (m *Memory) Active() (Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.active == "" {
		return Entry{}, ErrNoActive
	}
	data := m.assets[m.active]
	return Entry{Name: m.active, Size: int64(len(data))}, nil
}

// Delete removes an entry, clearing the activation if it was active.
func (m *Memory) Delete(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.assets[name]; !ok {
		return ErrNotFound
	}
	delete(m.assets, name)
	if m.active == name {
		m.active = ""
	}
	return nil
}
