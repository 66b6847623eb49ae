package regstore

import (
	"fmt"
	"strings"
	"sync"
)

// Memory is an in-process Store. Keys are matched case-insensitively, as
// the registry does.
type Memory struct {
	mu   sync.Mutex
	keys map[string]map[string][]byte
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{keys: make(map[string]map[string][]byte)}
}

func memKey(path string) string {
	return strings.ToLower(strings.Join(splitPath(path), `\`))
}

// OpenKey implements Store.
func (m *Memory) OpenKey(path string) (Key, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := memKey(path)
	if _, ok := m.keys[k]; !ok {
		return nil, fmt.Errorf("open %s: %w", path, ErrNotExist)
	}
	return &memoryKey{store: m, path: k}, nil
}

// CreateKey implements Store.
func (m *Memory) CreateKey(path string) (Key, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := memKey(path)
	if _, ok := m.keys[k]; !ok {
		m.keys[k] = make(map[string][]byte)
	}
	return &memoryKey{store: m, path: k}, nil
}

// Put stores a value directly, creating the key if needed.
func (m *Memory) Put(path, name string, data []byte) error {
	k, err := m.CreateKey(path)
	if err != nil {
		return err
	}
	defer k.Close()
	return k.WriteBinary(name, data)
}

// Get returns a stored value and whether it exists.
func (m *Memory) Get(path, name string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	vals, ok := m.keys[memKey(path)]
	if !ok {
		return nil, false
	}
	v, ok := vals[strings.ToLower(name)]
	if !ok {
		return nil, false
	}
	return append([]byte(nil), v...), true
}

type memoryKey struct {
	store  *Memory
	path   string
	closed bool
}

func (k *memoryKey) ReadValue(name string) ([]byte, error) {
	if k.closed {
		return nil, fmt.Errorf("read %s: key closed", name)
	}
	k.store.mu.Lock()
	defer k.store.mu.Unlock()
	v, ok := k.store.keys[k.path][strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("read %s: %w", name, ErrNotExist)
	}
	return append([]byte(nil), v...), nil
}

func (k *memoryKey) WriteBinary(name string, data []byte) error {
	if k.closed {
		return fmt.Errorf("write %s: key closed", name)
	}
	k.store.mu.Lock()
	defer k.store.mu.Unlock()
	k.store.keys[k.path][strings.ToLower(name)] = append([]byte(nil), data...)
	return nil
}

func (k *memoryKey) Close() error {
	k.closed = true
	return nil
}
