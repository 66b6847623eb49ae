// Package gfxeditor is the terminal front end: a language picker followed
// by the scrollable settings list.
package gfxeditor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/stlalpha/srgfx/internal/l10n"
	"github.com/stlalpha/srgfx/internal/session"
)

const (
	minWidth  = 60
	minHeight = 12
)

// editorMode represents the current interaction state.
type editorMode int

const (
	modeLanguage    editorMode = iota // Language picker
	modeSettings                      // Settings list
	modeQuitConfirm                   // Unsaved changes exit confirm
)

// Options configures a new Model.
type Options struct {
	// Lang is preselected on the picker, or used directly when SkipPicker
	// is set.
	Lang       l10n.Lang
	SkipPicker bool
}

// Model is the BubbleTea model for the graphics settings editor.
type Model struct {
	store session.Persister
	sess  *session.Controller // nil until a language is chosen

	// Language picker
	langs      []l10n.Choice
	langCursor int

	// Confirm dialog
	confirmYes bool

	mode   editorMode
	width  int
	height int
}

// New creates the editor. The record is loaded once a language is chosen.
func New(store session.Persister, opts Options) Model {
	m := Model{
		store:  store,
		langs:  l10n.Languages(),
		mode:   modeLanguage,
		width:  minWidth,
		height: minHeight,
	}
	for i, c := range m.langs {
		if c.Lang == opts.Lang {
			m.langCursor = i
		}
	}
	if opts.SkipPicker {
		m = m.startSession(opts.Lang)
	}
	return m
}

// Session returns the active session, or nil while picking a language.
func (m Model) Session() *session.Controller { return m.sess }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.sess != nil {
		return tea.SetWindowTitle(m.sess.Text().Title)
	}
	return tea.SetWindowTitle(l10n.For(l10n.En).Title)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = max(msg.Width, minWidth)
		m.height = max(msg.Height, minHeight)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.ForceQuit) {
			return m, tea.Quit
		}
		switch m.mode {
		case modeLanguage:
			return m.updateLanguage(msg)
		case modeSettings:
			return m.updateSettings(msg)
		case modeQuitConfirm:
			return m.updateQuitConfirm(msg)
		}
	}
	return m, nil
}

// --- Language Picker ---

func (m Model) updateLanguage(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Up):
		if m.langCursor > 0 {
			m.langCursor--
		}
	case key.Matches(msg, keys.Down):
		if m.langCursor < len(m.langs)-1 {
			m.langCursor++
		}
	case key.Matches(msg, keys.Confirm):
		m = m.startSession(m.langs[m.langCursor].Lang)
		return m, tea.SetWindowTitle(m.sess.Text().Title)
	default:
		for _, c := range m.langs {
			if msg.String() == c.Key {
				m = m.startSession(c.Lang)
				return m, tea.SetWindowTitle(m.sess.Text().Title)
			}
		}
	}
	return m, nil
}

func (m Model) startSession(lang l10n.Lang) Model {
	m.sess = session.New(m.store, l10n.For(lang))
	m.mode = modeSettings
	return m
}

// --- Settings List ---

func (m Model) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m.tryExit()
	case key.Matches(msg, keys.Up):
		m.sess.MoveCursor(-1)
	case key.Matches(msg, keys.Down):
		m.sess.MoveCursor(1)
	case key.Matches(msg, keys.Right):
		m.sess.CycleCurrent(1)
	case key.Matches(msg, keys.Left):
		m.sess.CycleCurrent(-1)
	case key.Matches(msg, keys.Save):
		m.sess.Save()
	}
	return m, nil
}

func (m Model) tryExit() (Model, tea.Cmd) {
	if m.sess.Dirty() {
		m.mode = modeQuitConfirm
		m.confirmYes = true
		return m, nil
	}
	return m, tea.Quit
}

// --- Confirm Dialog ---

func (m Model) updateQuitConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Back):
		m.mode = modeSettings
	case key.Matches(msg, keys.Left), key.Matches(msg, keys.Right):
		m.confirmYes = !m.confirmYes
	case key.Matches(msg, keys.Confirm):
		if m.confirmYes {
			return m.saveAndQuit()
		}
		return m, tea.Quit
	case key.Matches(msg, keys.Yes):
		return m.saveAndQuit()
	case key.Matches(msg, keys.No):
		return m, tea.Quit
	}
	return m, nil
}

// saveAndQuit exits only if the save succeeds; otherwise the failure stays
// on the status line.
func (m Model) saveAndQuit() (Model, tea.Cmd) {
	if err := m.sess.Save(); err != nil {
		m.mode = modeSettings
		return m, nil
	}
	return m, tea.Quit
}
