//go:build !windows

package regstore

import (
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Default returns a file store under the XDG config home, standing in for
// HKEY_CURRENT_USER.
func Default() (Store, error) {
	if xdg.ConfigHome == "" {
		return nil, fmt.Errorf("no config home directory")
	}
	return NewFile(filepath.Join(xdg.ConfigHome, "srgfx", "HKCU")), nil
}
