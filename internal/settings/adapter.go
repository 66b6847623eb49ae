package settings

import (
	"fmt"

	"github.com/stlalpha/srgfx/internal/logging"
	"github.com/stlalpha/srgfx/internal/regstore"
)

const (
	// KeyPath is the registry key holding the game's settings.
	KeyPath = `Software\Cognosphere\Star Rail`
	// ValueName is the binary value holding the graphics record.
	ValueName = "GraphicsSettings_Model_h2986158309"
)

// Adapter loads and saves the Record against a configuration store. It
// opens the key for each call and holds nothing between calls.
type Adapter struct {
	store regstore.Store
	path  string
	value string
}

// NewAdapter returns an adapter for the game's fixed key and value.
func NewAdapter(store regstore.Store) *Adapter {
	return &Adapter{store: store, path: KeyPath, value: ValueName}
}

// Load returns the stored record and true, or the defaults and false when
// the key or value is missing or the data cannot be decoded. It never
// fails.
func (a *Adapter) Load() (Record, bool) {
	blob, err := a.read()
	if err != nil {
		logging.Debug("settings: using defaults: %v", err)
		return Defaults(), false
	}
	rec, err := DecodeBlob(blob)
	if err != nil {
		logging.Debug("settings: using defaults: %v", err)
		return Defaults(), false
	}
	for _, d := range OutOfDomain(&rec) {
		logging.Debug("settings: stored %s %s is outside its %d values, kept as-is",
			d.Kind, d.ID, d.Size())
	}
	return rec, true
}

func (a *Adapter) read() ([]byte, error) {
	k, err := a.store.OpenKey(a.path)
	if err != nil {
		return nil, err
	}
	defer k.Close()
	return k.ReadValue(a.value)
}

// Save writes rec to the store, creating the key if needed. Keys the game
// added to the stored object are kept. Any failure is returned.
func (a *Adapter) Save(rec Record) error {
	k, err := a.store.CreateKey(a.path)
	if err != nil {
		return fmt.Errorf("opening settings key: %w", err)
	}
	defer k.Close()

	// The previous value is only a base for unknown keys; a missing or
	// unreadable one is not an error.
	var base []byte
	if old, err := k.ReadValue(a.value); err == nil {
		base = blobText(old)
	}

	blob, err := EncodeBlob(rec, base)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	if err := k.WriteBinary(a.value, blob); err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}
	logging.Debug("settings: saved %d bytes to %s\\%s", len(blob), a.path, a.value)
	return nil
}
