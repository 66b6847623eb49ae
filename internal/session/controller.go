// Package session owns the state of one editing session: the record being
// edited, the cursor into the field list and the status line.
package session

import (
	"fmt"

	"github.com/stlalpha/srgfx/internal/l10n"
	"github.com/stlalpha/srgfx/internal/logging"
	"github.com/stlalpha/srgfx/internal/settings"
)

// Persister loads and saves the record. *settings.Adapter implements it.
type Persister interface {
	Load() (settings.Record, bool)
	Save(settings.Record) error
}

// StatusKind classifies the status line for styling.
type StatusKind int

const (
	StatusNone   StatusKind = iota
	StatusNotice            // using defaults
	StatusSaved
	StatusFailed
)

// Controller processes navigation, cycle and save commands one at a time.
type Controller struct {
	store   Persister
	text    *l10n.Strings
	fields  []settings.Descriptor
	record  settings.Record
	saved   settings.Record // last loaded or saved state, for Dirty
	existed bool
	cursor  int
	status  string
	kind    StatusKind
}

// New loads the record and returns a controller with the cursor on the
// first field.
func New(store Persister, text *l10n.Strings) *Controller {
	rec, existed := store.Load()
	c := &Controller{
		store:   store,
		text:    text,
		fields:  settings.AllFields(),
		record:  rec,
		saved:   rec,
		existed: existed,
	}
	if !existed {
		c.setStatus(text.NoRegistry, StatusNotice)
	}
	return c
}

// MoveCursor moves by delta rows, stopping at the first and last field.
func (c *Controller) MoveCursor(delta int) {
	c.cursor += delta
	if c.cursor < 0 {
		c.cursor = 0
	}
	if c.cursor > len(c.fields)-1 {
		c.cursor = len(c.fields) - 1
	}
}

// CycleCurrent cycles the field under the cursor by dir.
func (c *Controller) CycleCurrent(dir int) {
	d := c.fields[c.cursor]
	d.Cycle(&c.record, dir)
	logging.Debug("session: %s -> %s", d.ID, c.DisplayValue(c.cursor))
}

// Save writes the record and reports the outcome on the status line. The
// error is also returned.
func (c *Controller) Save() error {
	if err := c.store.Save(c.record); err != nil {
		c.setStatus(fmt.Sprintf("%s: %v", c.text.SaveFailed, err), StatusFailed)
		logging.Debug("session: save failed: %v", err)
		return err
	}
	c.saved = c.record
	c.existed = true
	c.setStatus(c.text.Saved, StatusSaved)
	return nil
}

// DisplayValue renders field i's current value.
func (c *Controller) DisplayValue(i int) string {
	return c.fields[i].Display(&c.record, c.text.On, c.text.Off)
}

// Label returns field i's localized name.
func (c *Controller) Label(i int) string {
	return c.text.Field(c.fields[i].ID)
}

func (c *Controller) setStatus(msg string, kind StatusKind) {
	c.status = msg
	c.kind = kind
}

// Len returns the number of editable fields.
func (c *Controller) Len() int { return len(c.fields) }

// Cursor returns the highlighted field index.
func (c *Controller) Cursor() int { return c.cursor }

// Status returns the status line text.
func (c *Controller) Status() string { return c.status }

// StatusKind returns the class of the status line.
func (c *Controller) StatusKind() StatusKind { return c.kind }

// Record returns a copy of the record being edited.
func (c *Controller) Record() settings.Record { return c.record }

// Existed reports whether a stored record was loaded or has been saved.
func (c *Controller) Existed() bool { return c.existed }

// Dirty reports whether the record differs from what was last loaded or
// saved.
func (c *Controller) Dirty() bool { return c.record != c.saved }

// Text returns the controller's language table.
func (c *Controller) Text() *l10n.Strings { return c.text }
