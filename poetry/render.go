package poetry

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	graphemeutil "github.com/iw2rmb/stanza/internal/grapheme"
)

func (m *Block) renderContent() string {
	lines := m.buf.Lines()
	cursor := m.buf.Cursor()
	showCursor := m.focused && !m.cfg.ReadOnly
	st := m.cfg.Style

	textStyle := st.Text
	if m.cfg.ReadOnly {
		textStyle = st.ReadOnly
	}

	digits := 0
	if m.cfg.ShowLineNums {
		digits = gutterDigits(len(lines))
	}

	empty := len(lines) == 1 && lines[0] == ""
	out := make([]string, 0, len(lines))
	for row, line := range lines {
		var sb strings.Builder
		if digits > 0 {
			numStyle := st.LineNum
			if row == cursor.Row {
				numStyle = st.LineNumActive
			}
			sb.WriteString(numStyle.Render(fmt.Sprintf("%*d", digits, row+1)))
			sb.WriteString(st.Gutter.Render(" "))
		}

		if empty && m.placeholder != "" {
			sb.WriteString(renderPlaceholder(m.placeholder, showCursor, st))
			out = append(out, sb.String())
			continue
		}

		col := -1
		if showCursor && row == cursor.Row {
			col = cursor.Col
		}
		sb.WriteString(renderLine(line, col, m.xOffset, m.textWidth(), textStyle, st.Cursor))
		out = append(out, sb.String())
	}
	return strings.Join(out, "\n")
}

// renderLine draws one logical line. cursorCol is a rune column, or -1 for
// no cursor on this line. The cursor covers the whole grapheme cluster it
// falls into, or a trailing cell at end of line.
//
// Only cells in [xOff, xOff+width) are drawn; a negative width disables
// clipping. Clusters cut by an edge are blanked so columns stay aligned.
func renderLine(line string, cursorCol, xOff, width int, text, cursor lipgloss.Style) string {
	if cursorCol < 0 && width < 0 {
		return text.Render(line)
	}

	var sb strings.Builder
	var run strings.Builder
	flush := func() {
		if run.Len() > 0 {
			sb.WriteString(text.Render(run.String()))
			run.Reset()
		}
	}
	// visible reports how many cells of [x, x+w) fall in the window and
	// whether all of them do.
	visible := func(x, w int) (int, bool) {
		if width < 0 {
			return w, true
		}
		lo, hi := max(x, xOff), min(x+w, xOff+width)
		if hi < lo {
			return 0, false
		}
		return hi - lo, lo == x && hi == x+w
	}

	x := 0
	drawn := cursorCol < 0
	for _, c := range graphemeutil.Clusters(line) {
		w := c.Width
		if !drawn && c.Contains(cursorCol) {
			drawn = true
			w = max(w, 1)
			if n, full := visible(x, w); full {
				flush()
				sb.WriteString(cursor.Render(c.Text))
			} else if n > 0 {
				run.WriteString(strings.Repeat(" ", n))
			}
			x += w
			continue
		}
		if n, full := visible(x, w); full {
			run.WriteString(c.Text)
		} else if n > 0 {
			run.WriteString(strings.Repeat(" ", n))
		}
		x += w
	}
	flush()
	if !drawn {
		if _, full := visible(x, 1); full {
			sb.WriteString(cursor.Render(" "))
		}
	}
	return sb.String()
}

func renderPlaceholder(p string, showCursor bool, st Style) string {
	if !showCursor {
		return st.Placeholder.Render(p)
	}
	clusters := graphemeutil.Split(p)
	if len(clusters) == 0 {
		return st.Cursor.Render(" ")
	}
	return st.Cursor.Render(clusters[0]) + st.Placeholder.Render(strings.Join(clusters[1:], ""))
}

func gutterDigits(lines int) int {
	if lines < 1 {
		lines = 1
	}
	return len(fmt.Sprint(lines))
}
