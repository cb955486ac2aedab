package poetry

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// underscoreCursor renders every caret cell as "_" so tests can see it
// without colour support.
func underscoreCursor() Style {
	return Style{Cursor: lipgloss.NewStyle().Transform(func(string) string { return "_" })}
}

func firstRow(m Block) string {
	return strings.Split(m.Render(), "\n")[0]
}

func TestRender_LongLineScrollsToCaret(t *testing.T) {
	line := strings.Repeat("abcdefghij", 10)
	m := atEnd(New(Config{Data: Data{Poetry: line}, Style: underscoreCursor(), Width: 20, Height: 5}))

	if got, want := firstRow(m), line[81:]+"_"; got != want {
		t.Fatalf("row=%q, want %q", got, want)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyHome})
	if got, want := firstRow(m), "_"+line[1:20]; got != want {
		t.Fatalf("row after home=%q, want %q", got, want)
	}
}

func TestRender_LongLineWithGutter(t *testing.T) {
	line := strings.Repeat("abcdefghij", 10)
	m := atEnd(New(Config{
		Data:         Data{Poetry: line},
		Style:        underscoreCursor(),
		ShowLineNums: true,
		Width:        20,
		Height:       5,
	}))

	if got, want := firstRow(m), "1 "+line[83:]+"_"; got != want {
		t.Fatalf("row=%q, want %q", got, want)
	}
}

func TestRender_WideClustersKeepColumns(t *testing.T) {
	line := strings.Repeat("テ", 30)
	m := atEnd(New(Config{Data: Data{Poetry: line}, Style: underscoreCursor(), Width: 10, Height: 1}))

	got := firstRow(m)
	if want := " テテテテ_"; got != want {
		t.Fatalf("row=%q, want %q", got, want)
	}
	if w := lipgloss.Width(got); w != 10 {
		t.Fatalf("row width=%d, want 10", w)
	}
}

func TestRenderLine_NoClipWithoutWidth(t *testing.T) {
	st := underscoreCursor()
	if got, want := renderLine("ab", 1, 0, -1, st.Text, st.Cursor), "a_"; got != want {
		t.Fatalf("renderLine=%q, want %q", got, want)
	}
	if got, want := renderLine("ab", -1, 0, -1, st.Text, st.Cursor), "ab"; got != want {
		t.Fatalf("renderLine=%q, want %q", got, want)
	}
	if got, want := renderLine("abcdef", -1, 2, 3, st.Text, st.Cursor), "cde"; got != want {
		t.Fatalf("clipped renderLine=%q, want %q", got, want)
	}
}
