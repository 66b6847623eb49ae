//go:build windows

package regstore

import (
	"errors"
	"fmt"

	"golang.org/x/sys/windows/registry"
)

// Registry is the Windows registry below a predefined root key.
type Registry struct {
	Root registry.Key
}

// NewRegistry returns a store over HKEY_CURRENT_USER.
func NewRegistry() *Registry {
	return &Registry{Root: registry.CURRENT_USER}
}

// OpenKey implements Store.
func (r *Registry) OpenKey(path string) (Key, error) {
	k, err := registry.OpenKey(r.Root, path, registry.QUERY_VALUE)
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return nil, fmt.Errorf("open %s: %w", path, ErrNotExist)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return registryKey{k}, nil
}

// CreateKey implements Store.
func (r *Registry) CreateKey(path string) (Key, error) {
	k, _, err := registry.CreateKey(r.Root, path, registry.QUERY_VALUE|registry.SET_VALUE)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	return registryKey{k}, nil
}

type registryKey struct {
	k registry.Key
}

func (rk registryKey) ReadValue(name string) ([]byte, error) {
	// A nil buffer returns the required size only.
	n, _, err := rk.k.GetValue(name, nil)
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return nil, fmt.Errorf("read %s: %w", name, ErrNotExist)
		}
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	buf := make([]byte, n)
	n, _, err = rk.k.GetValue(name, buf)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return buf[:n], nil
}

func (rk registryKey) WriteBinary(name string, data []byte) error {
	if err := rk.k.SetBinaryValue(name, data); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

func (rk registryKey) Close() error {
	return rk.k.Close()
}
