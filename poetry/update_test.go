package poetry

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

type caretRecorder struct {
	offsets []int
}

func (r *caretRecorder) SetCaret(offset int) { r.offsets = append(r.offsets, offset) }

func atEnd(m Block) Block {
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlEnd})
	return m
}

func TestUpdate_TabIndentsAtCaret(t *testing.T) {
	rec := &caretRecorder{}
	m := atEnd(New(Config{Data: Data{Poetry: "hello"}, Caret: rec}))

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if got := m.Save().Poetry; got != "hello  " {
		t.Fatalf("text after tab: got %q, want %q", got, "hello  ")
	}
	if got := m.Buffer().Caret(); got != 7 {
		t.Fatalf("caret after tab: got %d, want 7", got)
	}
	if len(rec.offsets) != 1 || rec.offsets[0] != 7 {
		t.Fatalf("caret effect: got %v, want [7]", rec.offsets)
	}
}

func TestUpdate_ShiftTabOutdentsLine(t *testing.T) {
	rec := &caretRecorder{}
	m := atEnd(New(Config{Data: Data{Poetry: "  hello"}, Caret: rec}))

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if got := m.Save().Poetry; got != "hello" {
		t.Fatalf("text after shift+tab: got %q, want %q", got, "hello")
	}
	if got := m.Buffer().Caret(); got != 5 {
		t.Fatalf("caret after shift+tab: got %d, want 5", got)
	}
	if len(rec.offsets) != 1 || rec.offsets[0] != 5 {
		t.Fatalf("caret effect: got %v, want [5]", rec.offsets)
	}
}

func TestUpdate_ShiftTabWithoutIndentIsNoop(t *testing.T) {
	rec := &caretRecorder{}
	var changes int
	m := atEnd(New(Config{
		Data:     Data{Poetry: "hello"},
		Caret:    rec,
		OnChange: func(ChangeEvent) { changes++ },
	}))
	changes = 0
	v := m.Buffer().Version()

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if got := m.Save().Poetry; got != "hello" {
		t.Fatalf("text: got %q, want unchanged", got)
	}
	if got := m.Buffer().Caret(); got != 5 {
		t.Fatalf("caret: got %d, want 5", got)
	}
	if m.Buffer().Version() != v || changes != 0 || len(rec.offsets) != 0 {
		t.Fatalf("no-op outdent had effects: version %d->%d changes=%d caret=%v", v, m.Buffer().Version(), changes, rec.offsets)
	}
}

func TestUpdate_TabNeverInsertsTabRune(t *testing.T) {
	m := New(Config{Data: Data{Poetry: "a\nb"}})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if got, want := m.Save().Poetry, "a\n    b"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if got, want := m.Save().Poetry, "a\n  b"; got != want {
		t.Fatalf("text after outdent: got %q, want %q", got, want)
	}
	if got := m.Buffer().Caret(); got != 4 {
		t.Fatalf("caret: got %d, want 4", got)
	}
}

func TestUpdate_ReadOnly_IgnoresMutations(t *testing.T) {
	rec := &caretRecorder{}
	m := New(Config{Data: Data{Poetry: "  ab"}, ReadOnly: true, Caret: rec})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if got := m.Buffer().Caret(); got != 1 {
		t.Fatalf("caret after move: got %d, want 1", got)
	}

	msgs := []tea.KeyMsg{
		{Type: tea.KeyTab},
		{Type: tea.KeyShiftTab},
		{Type: tea.KeyRunes, Runes: []rune("X")},
		{Type: tea.KeyBackspace},
		{Type: tea.KeyDelete},
		{Type: tea.KeyEnter},
		{Type: tea.KeyRunes, Runes: []rune("pasted"), Paste: true},
	}
	for _, msg := range msgs {
		m, _ = m.Update(msg)
		if got := m.Save().Poetry; got != "  ab" {
			t.Fatalf("text after %v in read-only: got %q", msg, got)
		}
	}
	if len(rec.offsets) != 0 {
		t.Fatalf("caret effect fired in read-only: %v", rec.offsets)
	}
}

func TestUpdate_TypingMovementAndDelete(t *testing.T) {
	m := New(Config{Data: Data{Poetry: "ab"}})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("X")})
	if got := m.Save().Poetry; got != "aXb" {
		t.Fatalf("text after insert: got %q, want %q", got, "aXb")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if got := m.Save().Poetry; got != "ab" {
		t.Fatalf("text after backspace: got %q, want %q", got, "ab")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.Save().Poetry; got != "a\nb" {
		t.Fatalf("text after enter: got %q, want %q", got, "a\nb")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDelete})
	if got := m.Save().Poetry; got != "a\n" {
		t.Fatalf("text after delete: got %q, want %q", got, "a\n")
	}
}

func TestUpdate_BracketedPasteInsertsLiterally(t *testing.T) {
	m := New(Config{})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a\r\nb"), Paste: true})
	if got := m.Save().Poetry; got != "a\nb" {
		t.Fatalf("text: got %q, want %q", got, "a\nb")
	}
}
