package session

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileStorage persists slots as individual files under a state directory.
// Files are created with owner-only permissions since one of them holds a
// bearer token.
type FileStorage struct {
	dir string
}

func NewFileStorage(dir string) (*FileStorage, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("session storage: %w", err)
	}
	return &FileStorage{dir: dir}, nil
}

func (f *FileStorage) Get(slot string) (string, bool, error) {
	data, err := os.ReadFile(f.path(slot))
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("session storage: %w", err)
	}
	return string(data), true, nil
}

func (f *FileStorage) Set(slot, value string) error {
	if err := os.WriteFile(f.path(slot), []byte(value), 0o600); err != nil {
		return fmt.Errorf("session storage: %w", err)
	}
	return nil
}

func (f *FileStorage) Delete(slot string) error {
	err := os.Remove(f.path(slot))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("session storage: %w", err)
	}
	return nil
}

func (f *FileStorage) path(slot string) string {
	return filepath.Join(f.dir, slot)
}

// MemoryStorage is an in-memory Storage for tests.
type MemoryStorage struct {
	mu    sync.Mutex
	slots map[string]string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{slots: make(map[string]string)}
}

func (m *MemoryStorage) Get(slot string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.slots[slot]
	return v, ok, nil
}

func (m *MemoryStorage) Set(slot, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slots[slot] = value
	return nil
}

func (m *MemoryStorage) Delete(slot string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.slots, slot)
	return nil
}
