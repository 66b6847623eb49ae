package session

import (
	"errors"
	"strings"
	"testing"

	"github.com/stlalpha/srgfx/internal/l10n"
	"github.com/stlalpha/srgfx/internal/regstore"
	"github.com/stlalpha/srgfx/internal/settings"
)

// fakeStore is an in-memory Persister with an injectable save error.
type fakeStore struct {
	rec     settings.Record
	existed bool
	saveErr error
	saves   int
}

func (f *fakeStore) Load() (settings.Record, bool) { return f.rec, f.existed }

func (f *fakeStore) Save(r settings.Record) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saves++
	f.rec = r
	f.existed = true
	return nil
}

func TestNewWithStoredRecord(t *testing.T) {
	rec := settings.Defaults()
	rec.FPS = 120
	c := New(&fakeStore{rec: rec, existed: true}, l10n.For(l10n.En))

	if c.Cursor() != 0 {
		t.Errorf("expected cursor 0, got %d", c.Cursor())
	}
	if c.Status() != "" || c.StatusKind() != StatusNone {
		t.Errorf("expected empty status, got %q (%v)", c.Status(), c.StatusKind())
	}
	if c.Record().FPS != 120 {
		t.Errorf("expected loaded record, got FPS %d", c.Record().FPS)
	}
	if c.Dirty() {
		t.Error("fresh session should not be dirty")
	}
}

func TestNewWithoutStoredRecord(t *testing.T) {
	text := l10n.For(l10n.Ko)
	c := New(&fakeStore{rec: settings.Defaults()}, text)
	if c.Status() != text.NoRegistry || c.StatusKind() != StatusNotice {
		t.Errorf("expected localized defaults notice, got %q", c.Status())
	}
	if c.Existed() {
		t.Error("expected Existed false")
	}
}

func TestMoveCursorClamps(t *testing.T) {
	c := New(&fakeStore{rec: settings.Defaults(), existed: true}, l10n.For(l10n.En))

	c.MoveCursor(-1)
	if c.Cursor() != 0 {
		t.Errorf("expected clamp at 0, got %d", c.Cursor())
	}
	for i := 0; i < c.Len()+5; i++ {
		c.MoveCursor(1)
	}
	if c.Cursor() != c.Len()-1 {
		t.Errorf("expected clamp at %d, got %d", c.Len()-1, c.Cursor())
	}
	c.MoveCursor(-1)
	if c.Cursor() != c.Len()-2 {
		t.Errorf("expected %d, got %d", c.Len()-2, c.Cursor())
	}
}

func TestCycleCurrent(t *testing.T) {
	c := New(&fakeStore{rec: settings.Defaults(), existed: true}, l10n.For(l10n.En))

	c.CycleCurrent(1)
	if c.Record().FPS != 120 {
		t.Errorf("expected FPS 120, got %d", c.Record().FPS)
	}
	if !c.Dirty() {
		t.Error("expected dirty after cycling")
	}
	c.CycleCurrent(-1)
	if c.Dirty() {
		t.Error("expected clean after cycling back")
	}

	c.MoveCursor(1)
	c.CycleCurrent(-1)
	if c.Record().EnableVSync {
		t.Error("expected VSync toggled off")
	}
}

func TestSaveSuccess(t *testing.T) {
	store := &fakeStore{rec: settings.Defaults()}
	text := l10n.For(l10n.Ja)
	c := New(store, text)
	c.CycleCurrent(1)

	if err := c.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if c.Status() != text.Saved || c.StatusKind() != StatusSaved {
		t.Errorf("expected saved status, got %q", c.Status())
	}
	if store.saves != 1 || store.rec.FPS != 120 {
		t.Errorf("expected one save with FPS 120, got %d saves, FPS %d", store.saves, store.rec.FPS)
	}
	if c.Dirty() {
		t.Error("expected clean after save")
	}
	if !c.Existed() {
		t.Error("expected Existed after save")
	}
}

func TestSaveFailure(t *testing.T) {
	cause := errors.New("access is denied")
	store := &fakeStore{rec: settings.Defaults(), existed: true, saveErr: cause}
	c := New(store, l10n.For(l10n.En))
	c.CycleCurrent(1)

	err := c.Save()
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to be returned, got %v", err)
	}
	if c.StatusKind() != StatusFailed {
		t.Errorf("expected failed status kind, got %v", c.StatusKind())
	}
	if !strings.HasPrefix(c.Status(), "Save failed: ") || !strings.Contains(c.Status(), "access is denied") {
		t.Errorf("unexpected status %q", c.Status())
	}
	if !c.Dirty() {
		t.Error("failed save must leave the session dirty")
	}
}

func TestDisplayValue(t *testing.T) {
	rec := settings.Defaults()
	rec.ShadowQuality = 7
	c := New(&fakeStore{rec: rec, existed: true}, l10n.For(l10n.Ko))

	want := map[settings.FieldID]string{
		settings.Fps:           "60",
		settings.VSync:         "켜기",
		settings.RenderScale:   "1.0",
		settings.ShadowQuality: "7",
		settings.AaMode:        "On",
		settings.DlssQuality:   "Off",
	}
	for i := 0; i < c.Len(); i++ {
		id := settings.AllFields()[i].ID
		if w, ok := want[id]; ok {
			if got := c.DisplayValue(i); got != w {
				t.Errorf("%s: expected %q, got %q", id, w, got)
			}
		}
	}
	if c.Label(0) != "FPS" || c.Label(1) != "수직 동기화" {
		t.Errorf("unexpected labels %q, %q", c.Label(0), c.Label(1))
	}
}

func TestControllerWithAdapter(t *testing.T) {
	store := regstore.NewMemory()
	adapter := settings.NewAdapter(store)

	c := New(adapter, l10n.For(l10n.En))
	c.MoveCursor(2)
	c.CycleCurrent(-1)
	if err := c.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	reopened := New(adapter, l10n.For(l10n.En))
	if !reopened.Existed() {
		t.Fatal("expected saved record to load")
	}
	if reopened.Record().RenderScale != 0.8 {
		t.Errorf("expected RenderScale 0.8, got %v", reopened.Record().RenderScale)
	}
}
