package poetry

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/stanza/buffer"
)

type upperTranslator struct{}

func (upperTranslator) T(key string) string { return strings.ToUpper(key) }

func TestNew_LoadsDataAndPlaceholder(t *testing.T) {
	m := New(Config{Data: Data{Poetry: "roses\nviolets"}})
	if got := m.Save().Poetry; got != "roses\nviolets" {
		t.Fatalf("save: got %q", got)
	}
	if got := m.Placeholder(); got != DefaultPlaceholder {
		t.Fatalf("placeholder: got %q, want %q", got, DefaultPlaceholder)
	}

	m = New(Config{Placeholder: "Write a verse", Translator: upperTranslator{}})
	if got := m.Placeholder(); got != "WRITE A VERSE" {
		t.Fatalf("translated placeholder: got %q", got)
	}
}

func TestRender_ShowsTextOrPlaceholder(t *testing.T) {
	m := New(Config{Data: Data{Poetry: "hello\nworld"}, Style: Style{}})
	view := m.Render()
	if !strings.Contains(view, "hello") || !strings.Contains(view, "world") {
		t.Fatalf("render missing text: %q", view)
	}

	m = New(Config{Style: Style{}}).Blur()
	if got := m.Render(); got != DefaultPlaceholder {
		t.Fatalf("empty render: got %q, want %q", got, DefaultPlaceholder)
	}
}

func TestRender_LineNumbers(t *testing.T) {
	m := New(Config{Data: Data{Poetry: "a\nb"}, ShowLineNums: true}).Blur()
	lines := strings.Split(m.Render(), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines=%d, want 2", len(lines))
	}
	if lines[0] != "1 a" || lines[1] != "2 b" {
		t.Fatalf("gutter lines: got %q", lines)
	}
}

func TestRender_FixedSizeWithWrapper(t *testing.T) {
	m := New(Config{
		Data:   Data{Poetry: "one\ntwo\nthree\nfour"},
		Style:  DefaultStyle(),
		Width:  20,
		Height: 4,
	})
	lines := strings.Split(m.Render(), "\n")
	if len(lines) != 4 {
		t.Fatalf("rendered rows=%d, want 4: %q", len(lines), lines)
	}
}

func TestUpdate_FollowsCursorInViewport(t *testing.T) {
	m := New(Config{
		Data:   Data{Poetry: "1\n2\n3\n4\n5"},
		Width:  10,
		Height: 2,
	})
	for i := 0; i < 4; i++ {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	if got := m.viewport.YOffset; got != 3 {
		t.Fatalf("y offset: got %d, want 3", got)
	}
	if !strings.Contains(m.Render(), "5") {
		t.Fatalf("last line must be visible: %q", m.Render())
	}
}

func TestOnChange_FiresOnEffectiveMutation(t *testing.T) {
	var events []ChangeEvent
	m := New(Config{
		Data:     Data{Poetry: "ab"},
		OnChange: func(ev ChangeEvent) { events = append(events, ev) },
	})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if len(events) != 0 {
		t.Fatalf("no-op move fired %d events", len(events))
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
	if len(events) != 1 {
		t.Fatalf("events=%d, want 1", len(events))
	}
	if got := events[0]; got.Text != "cab" || got.Caret != 1 || got.Cursor != (buffer.Pos{Row: 0, Col: 1}) {
		t.Fatalf("event: got %+v", got)
	}
	_ = m
}

func TestFocusBlur(t *testing.T) {
	m := New(Config{Data: Data{Poetry: "ab"}})
	if !m.Focused() {
		t.Fatalf("new block must be focused")
	}
	m = m.Blur()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if got := m.Save().Poetry; got != "ab" {
		t.Fatalf("blurred block accepted input: %q", got)
	}
	m = m.Focus()
	if !m.Focused() {
		t.Fatalf("focus did not stick")
	}
}

func TestDescribe_StaticMetadata(t *testing.T) {
	d := Describe()
	if d.Toolbox.Title != "poetry" || !strings.HasPrefix(d.Toolbox.Icon, "<svg") {
		t.Fatalf("toolbox: got %+v", d.Toolbox)
	}
	if !d.ReadOnlySupported || !d.EnableLineBreaks {
		t.Fatalf("flags: got %+v", d)
	}
	if len(d.PasteConfig.Tags) != 1 || d.PasteConfig.Tags[0] != "pre" {
		t.Fatalf("paste tags: got %v", d.PasteConfig.Tags)
	}
	if !d.Sanitize["poetry"] {
		t.Fatalf("sanitize must keep poetry html")
	}

	d.PasteConfig.Tags[0] = "div"
	if Describe().PasteConfig.Tags[0] != "pre" {
		t.Fatalf("descriptor must not share slices")
	}
}
