//go:build windows

package regstore

// Default returns the per-user registry.
func Default() (Store, error) {
	return NewRegistry(), nil
}
