package regstore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// valueExt is appended to value names to form their file names.
const valueExt = ".bin"

// File emulates the registry with a directory tree: each key is a
// directory below Root and each value is a file inside it.
type File struct {
	Root string
}

// NewFile returns a file-backed store rooted at dir.
func NewFile(dir string) *File {
	return &File{Root: dir}
}

func (f *File) keyDir(path string) string {
	return filepath.Join(append([]string{f.Root}, splitPath(path)...)...)
}

// OpenKey implements Store.
func (f *File) OpenKey(path string) (Key, error) {
	dir := f.keyDir(path)
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("open %s: %w", path, ErrNotExist)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("open %s: %s is not a directory", path, dir)
	}
	return &fileKey{dir: dir}, nil
}

// CreateKey implements Store.
func (f *File) CreateKey(path string) (Key, error) {
	dir := f.keyDir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	return &fileKey{dir: dir}, nil
}

type fileKey struct {
	dir string
}

func (k *fileKey) valuePath(name string) (string, error) {
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return "", fmt.Errorf("invalid value name %q", name)
	}
	return filepath.Join(k.dir, name+valueExt), nil
}

func (k *fileKey) ReadValue(name string) ([]byte, error) {
	path, err := k.valuePath(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("read %s: %w", name, ErrNotExist)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

// WriteBinary writes the value atomically (temp file + rename).
func (k *fileKey) WriteBinary(name string, data []byte) error {
	path, err := k.valuePath(name)
	if err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp(k.dir, name+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

func (k *fileKey) Close() error { return nil }
