// Package regstore abstracts the per-user configuration store that holds
// the graphics settings blob. On Windows this is the registry under
// HKEY_CURRENT_USER; elsewhere a directory tree emulates keys and values.
package regstore

import (
	"errors"
	"io"
	"strings"
)

// ErrNotExist is returned when a key or value is absent.
var ErrNotExist = errors.New("regstore: key or value does not exist")

// Store opens keys by their backslash-separated path (e.g.
// `Software\Cognosphere\Star Rail`).
type Store interface {
	// OpenKey opens an existing key for reading. It returns ErrNotExist
	// if the key is missing.
	OpenKey(path string) (Key, error)
	// CreateKey opens a key for reading and writing, creating it and any
	// missing parents.
	CreateKey(path string) (Key, error)
}

// Key is an open store key. Callers must Close it.
type Key interface {
	// ReadValue returns the raw bytes of the named value regardless of its
	// stored type.
	ReadValue(name string) ([]byte, error)
	// WriteBinary stores data as an untyped binary value.
	WriteBinary(name string, data []byte) error
	io.Closer
}

// splitPath breaks a registry path into its non-empty components.
func splitPath(path string) []string {
	raw := strings.Split(path, `\`)
	parts := make([]string, 0, len(raw))
	for _, p := range raw {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}
