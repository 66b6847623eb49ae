package gfxeditor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/stlalpha/srgfx/internal/session"
)

const (
	labelCells  = 24 // label column width in terminal cells
	pickerWidth = 46
	headerRows  = 3
	statusRows  = 3
)

// View implements tea.Model.
func (m Model) View() string {
	switch m.mode {
	case modeLanguage:
		return m.viewLanguage()
	case modeQuitConfirm:
		return m.viewQuitConfirm()
	}
	return m.viewSettings()
}

// --- Language Picker ---

func (m Model) viewLanguage() string {
	inner := pickerWidth - 2
	lines := []string{
		titleStyle.Render(fitCells("  Select Language / 언어 선택 / 言語選択", inner)),
		strings.Repeat(" ", inner),
	}
	for i, c := range m.langs {
		pointer := "  "
		style := rowStyle
		if i == m.langCursor {
			pointer = pointerMark
			style = rowSelectedStyle
		}
		lines = append(lines, style.Render(fitCells(fmt.Sprintf("%s[%s] %s", pointer, c.Key, c.Label), inner)))
	}
	lines = append(lines,
		strings.Repeat(" ", inner),
		hintStyle.Render(fitCells("  Enter to confirm", inner)),
	)

	box := strings.Join(drawBox("", lines, pickerWidth, borderStyle, nil), "\n")
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// --- Settings List ---

func (m Model) viewSettings() string {
	t := m.sess.Text()
	var out []string

	// Header
	out = append(out, drawBox("", []string{titleStyle.Render(fitCells(t.Title, m.width-2))}, m.width, borderStyle, nil)...)

	// Settings list
	visible := m.listRows()
	offset := scrollOffset(m.sess.Cursor(), visible)
	rows := make([]string, 0, visible)
	for r := 0; r < visible; r++ {
		idx := offset + r
		if idx >= m.sess.Len() {
			rows = append(rows, strings.Repeat(" ", m.width-2))
			continue
		}
		rows = append(rows, m.renderRow(idx, m.width-2))
	}
	var bar []string
	if m.sess.Len() > visible {
		bar = scrollbar(m.sess.Len(), visible, offset)
	}
	out = append(out, drawBox(t.Hint, rows, m.width, borderStyle, bar)...)

	// Status bar
	status := statusStyle(m.sess.StatusKind()).Render(fitCells(" "+m.sess.Status(), m.width-2))
	out = append(out, drawBox("", []string{status}, m.width, borderStyle, nil)...)

	return strings.Join(out, "\n")
}

// listRows returns how many field rows fit between header and status.
func (m Model) listRows() int {
	return max(1, m.height-headerRows-statusRows-2)
}

// scrollOffset keeps the cursor on the last visible row once it passes
// the bottom.
func scrollOffset(cursor, visible int) int {
	if cursor >= visible {
		return cursor - visible + 1
	}
	return 0
}

func (m Model) renderRow(idx, width int) string {
	selected := idx == m.sess.Cursor()
	pointer := "  "
	style, vStyle := rowStyle, valueStyle
	if selected {
		pointer = pointerMark
		style, vStyle = rowSelectedStyle, valueSelectedStyle
	}
	label := pointer + fitCells(m.sess.Label(idx), labelCells)
	value := fmt.Sprintf("  %s %s %s", valueLeft, m.sess.DisplayValue(idx), valueRight)

	labelW := runewidth.StringWidth(label)
	if labelW >= width {
		return style.Render(fitCells(label, width))
	}
	return style.Render(label) + vStyle.Render(fitCells(value, width-labelW))
}

// scrollbar returns one styled cell per visible row for the right edge.
func scrollbar(total, visible, offset int) []string {
	thumb := max(1, visible*visible/total)
	maxOffset := total - visible
	pos := 0
	if maxOffset > 0 {
		pos = offset * (visible - thumb) / maxOffset
	}
	cells := make([]string, visible)
	for i := range cells {
		if i >= pos && i < pos+thumb {
			cells[i] = scrollThumbStyle.Render(thumbChar)
		} else {
			cells[i] = scrollTrackStyle.Render(trackChar)
		}
	}
	return cells
}

func statusStyle(kind session.StatusKind) lipgloss.Style {
	switch kind {
	case session.StatusSaved:
		return statusSavedStyle
	case session.StatusNotice:
		return statusWarnStyle
	case session.StatusFailed:
		return statusFailedStyle
	}
	return statusIdleStyle
}

// --- Confirm Dialog ---

func (m Model) viewQuitConfirm() string {
	t := m.sess.Text()
	prompt := " " + t.QuitPrompt + " "
	yes, no := buttonInactiveStyle, buttonInactiveStyle
	if m.confirmYes {
		yes = buttonActiveStyle
	} else {
		no = buttonActiveStyle
	}
	buttons := yes.Render(" "+t.Yes+" ") + "  " + no.Render(" "+t.No+" ")

	inner := max(runewidth.StringWidth(prompt), lipgloss.Width(buttons)+2)
	lines := []string{
		dialogTextStyle.Render(fitCells(prompt, inner)),
		strings.Repeat(" ", inner),
		centerStyled(buttons, inner),
	}
	box := strings.Join(drawBox(t.QuitTitle, lines, inner+2, dialogBorderStyle, nil), "\n")
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// --- Box drawing ---

// drawBox frames lines (already styled and exactly width-2 cells wide)
// with a single-line border. A non-empty title is set into the top edge.
// bar, when given, replaces the right edge cell of each row.
func drawBox(title string, lines []string, width int, border lipgloss.Style, bar []string) []string {
	inner := width - 2
	title = fitCells(title, inner)
	titleW := runewidth.StringWidth(title)

	out := make([]string, 0, len(lines)+2)
	out = append(out, border.Render("┌"+title+strings.Repeat("─", inner-titleW)+"┐"))
	for i, l := range lines {
		right := border.Render("│")
		if i < len(bar) {
			right = bar[i]
		}
		out = append(out, border.Render("│")+l+right)
	}
	out = append(out, border.Render("└"+strings.Repeat("─", inner)+"┘"))
	return out
}

// fitCells pads or truncates s to exactly w terminal cells, counting wide
// CJK runes as two.
func fitCells(s string, w int) string {
	if w <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) > w {
		s = runewidth.Truncate(s, w, "…")
	}
	return runewidth.FillRight(s, w)
}

// centerStyled centers an already styled string within w cells.
func centerStyled(s string, w int) string {
	vis := lipgloss.Width(s)
	if vis >= w {
		return s
	}
	pad := (w - vis) / 2
	return strings.Repeat(" ", pad) + s + strings.Repeat(" ", w-pad-vis)
}
