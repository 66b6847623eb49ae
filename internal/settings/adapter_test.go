package settings

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/tidwall/gjson"

	"github.com/stlalpha/srgfx/internal/regstore"
)

func putValue(t *testing.T, m *regstore.Memory, name string, data []byte) {
	t.Helper()
	if err := m.Put(KeyPath, name, data); err != nil {
		t.Fatalf("Put %s: %v", name, err)
	}
}

func TestLoadMissingKey(t *testing.T) {
	a := NewAdapter(regstore.NewMemory())
	rec, existed := a.Load()
	if existed {
		t.Error("expected existed=false for missing key")
	}
	if rec != Defaults() {
		t.Errorf("expected defaults, got %+v", rec)
	}
}

func TestLoadMissingValue(t *testing.T) {
	m := regstore.NewMemory()
	putValue(t, m, "SomethingElse", []byte("x"))

	rec, existed := NewAdapter(m).Load()
	if existed || rec != Defaults() {
		t.Errorf("expected defaults and existed=false, got %+v %v", rec, existed)
	}
}

func TestLoadInvalidText(t *testing.T) {
	for _, blob := range [][]byte{
		[]byte("not json\x00"),
		{},
		{0, 0, 0},
		{0xff, 0xfe, 0x00},
		[]byte("{\"FPS\":120}\x00"),
	} {
		m := regstore.NewMemory()
		putValue(t, m, ValueName, blob)

		rec, existed := NewAdapter(m).Load()
		if existed {
			t.Errorf("blob %q: expected existed=false", blob)
		}
		if rec != Defaults() {
			t.Errorf("blob %q: expected full defaults, got %+v", blob, rec)
		}
	}
}

func TestLoadDuplicateField(t *testing.T) {
	m := regstore.NewMemory()
	text := strings.Replace(fullJSON, `"FPS":120`, `"FPS":30,"FPS":120`, 1)
	putValue(t, m, ValueName, []byte(text+"\x00"))

	rec, existed := NewAdapter(m).Load()
	if existed {
		t.Error("expected existed=false for a repeated field")
	}
	if rec != Defaults() {
		t.Errorf("expected defaults, got %+v", rec)
	}
}

func TestLoadValid(t *testing.T) {
	m := regstore.NewMemory()
	putValue(t, m, ValueName, []byte(fullJSON+"\x00"))

	rec, existed := NewAdapter(m).Load()
	if !existed {
		t.Fatal("expected existed=true")
	}
	if rec.FPS != 120 || rec.RenderScale != 1.4 || !rec.EnableMetalFXSU {
		t.Errorf("unexpected record %+v", rec)
	}
}

func TestLoadOutOfDomainVerbatim(t *testing.T) {
	text := bytes.Replace([]byte(fullJSON), []byte(`"FPS":120`), []byte(`"FPS":144`), 1)
	m := regstore.NewMemory()
	putValue(t, m, ValueName, append(text, 0))

	rec, existed := NewAdapter(m).Load()
	if !existed {
		t.Fatal("expected existed=true")
	}
	if rec.FPS != 144 {
		t.Errorf("expected FPS 144 kept verbatim, got %d", rec.FPS)
	}
}

func TestSaveCreatesKey(t *testing.T) {
	m := regstore.NewMemory()
	if err := NewAdapter(m).Save(Defaults()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	blob, ok := m.Get(KeyPath, ValueName)
	if !ok {
		t.Fatal("expected value to be written")
	}
	if blob[len(blob)-1] != 0 || bytes.Count(blob, []byte{0}) != 1 {
		t.Errorf("expected exactly one trailing NUL, got %q", blob)
	}
	if !gjson.ValidBytes(blob[:len(blob)-1]) {
		t.Errorf("expected JSON text before the terminator, got %q", blob)
	}
}

func TestSavePreservesUnknownKeys(t *testing.T) {
	m := regstore.NewMemory()
	putValue(t, m, ValueName, []byte(`{"GameOnly":7,"FPS":30}`+"\x00"))

	if err := NewAdapter(m).Save(Defaults()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	blob, _ := m.Get(KeyPath, ValueName)
	text := bytes.TrimRight(blob, "\x00")
	if gjson.GetBytes(text, "GameOnly").Int() != 7 {
		t.Errorf("expected GameOnly preserved, got %s", text)
	}
	if gjson.GetBytes(text, "FPS").Int() != 60 {
		t.Errorf("expected FPS 60, got %s", text)
	}
}

func TestRoundTripCycledRecords(t *testing.T) {
	m := regstore.NewMemory()
	a := NewAdapter(m)

	rec := Defaults()
	for step, d := range AllFields() {
		for i := 0; i <= step%4; i++ {
			d.Cycle(&rec, 1)
		}
		if err := a.Save(rec); err != nil {
			t.Fatalf("Save after cycling %s: %v", d.ID, err)
		}
		got, existed := a.Load()
		if !existed {
			t.Fatalf("after cycling %s: expected existed=true", d.ID)
		}
		if got != rec {
			t.Errorf("after cycling %s: expected %+v, got %+v", d.ID, rec, got)
		}
	}
}

func TestRoundTripNonEditableFields(t *testing.T) {
	m := regstore.NewMemory()
	text := []byte(fullJSON)
	putValue(t, m, ValueName, append(text, 0))
	a := NewAdapter(m)

	rec, _ := a.Load()
	Cycle(&rec, Fps, 1)
	if err := a.Save(rec); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, _ := a.Load()
	if !got.EnableMetalFXSU || !got.EnableHalfResTrans {
		t.Error("expected non-editable flags to survive load/save")
	}
}

// failingStore fails CreateKey or WriteBinary with a fixed cause.
type failingStore struct {
	regstore.Store
	createErr error
	writeErr  error
}

func (f failingStore) CreateKey(path string) (regstore.Key, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	k, err := f.Store.CreateKey(path)
	if err != nil {
		return nil, err
	}
	return failingKey{Key: k, writeErr: f.writeErr}, nil
}

type failingKey struct {
	regstore.Key
	writeErr error
}

func (k failingKey) WriteBinary(name string, data []byte) error {
	if k.writeErr != nil {
		return k.writeErr
	}
	return k.Key.WriteBinary(name, data)
}

func TestSaveSurfacesErrors(t *testing.T) {
	cause := errors.New("access denied")
	tests := []struct {
		name  string
		store failingStore
	}{
		{"create", failingStore{Store: regstore.NewMemory(), createErr: cause}},
		{"write", failingStore{Store: regstore.NewMemory(), writeErr: cause}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewAdapter(tt.store).Save(Defaults())
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, cause) {
				t.Errorf("expected error to wrap cause, got %v", err)
			}
		})
	}
}

func TestAdapterWithFileStore(t *testing.T) {
	a := NewAdapter(regstore.NewFile(t.TempDir()))
	if _, existed := a.Load(); existed {
		t.Fatal("expected empty store")
	}
	rec := Defaults()
	Cycle(&rec, RenderScale, 1)
	if err := a.Save(rec); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, existed := a.Load()
	if !existed || got != rec {
		t.Errorf("expected %+v, got %+v (existed=%v)", rec, got, existed)
	}
}
