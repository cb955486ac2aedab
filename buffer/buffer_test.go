package buffer

import "testing"

func TestBuffer_SetCursor_ClampsAndVersions(t *testing.T) {
	b := New("a\nbc")
	if b.Version() != 0 {
		t.Fatalf("expected version 0, got %d", b.Version())
	}

	b.SetCursor(Pos{Row: 999, Col: 999})
	if got := b.Cursor(); got != (Pos{Row: 1, Col: 2}) {
		t.Fatalf("cursor=%v, want (1,2)", got)
	}
	if b.Version() != 1 {
		t.Fatalf("expected version 1, got %d", b.Version())
	}

	b.SetCursor(Pos{Row: 1, Col: 2})
	if b.Version() != 1 {
		t.Fatalf("expected version unchanged, got %d", b.Version())
	}
}

func TestBuffer_TextAndLen(t *testing.T) {
	cases := []struct {
		text  string
		len   int
		lines int
	}{
		{text: "", len: 0, lines: 1},
		{text: "abc", len: 3, lines: 1},
		{text: "a\nbc", len: 4, lines: 2},
		{text: "\n\n", len: 2, lines: 3},
		{text: "πテ\nx", len: 4, lines: 2},
	}

	for _, tc := range cases {
		b := New(tc.text)
		if got := b.Text(); got != tc.text {
			t.Fatalf("Text(%q): got %q", tc.text, got)
		}
		if got := b.Len(); got != tc.len {
			t.Fatalf("Len(%q): got %d, want %d", tc.text, got, tc.len)
		}
		if got := b.LineCount(); got != tc.lines {
			t.Fatalf("LineCount(%q): got %d, want %d", tc.text, got, tc.lines)
		}
	}
}

func TestBuffer_Caret_RoundTripsOffsets(t *testing.T) {
	b := New("ab\ncd\n\nef")
	for off := 0; off <= b.Len(); off++ {
		b.SetCaret(off)
		if got := b.Caret(); got != off {
			t.Fatalf("caret after SetCaret(%d): got %d", off, got)
		}
	}

	b.SetCaret(-3)
	if got := b.Caret(); got != 0 {
		t.Fatalf("negative caret: got %d, want 0", got)
	}
	b.SetCaret(1000)
	if got := b.Caret(); got != b.Len() {
		t.Fatalf("large caret: got %d, want %d", got, b.Len())
	}
}

func TestBuffer_Lines_ReturnsCopy(t *testing.T) {
	b := New("a\nb")
	lines := b.Lines()
	lines[0] = "changed"
	if got := b.Text(); got != "a\nb" {
		t.Fatalf("text=%q, want unchanged", got)
	}
}
