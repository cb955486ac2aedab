package buffer

import "strings"

// Buffer is the mutable text of a block and its caret.
type Buffer struct {
	lines   [][]rune
	version uint64

	cursor Pos
}

// New returns a buffer holding text with the caret at the start.
func New(text string) *Buffer {
	return &Buffer{
		lines:   splitLines(text),
		version: 0,
		cursor:  Pos{Row: 0, Col: 0},
	}
}

func (b *Buffer) Text() string {
	if len(b.lines) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(line))
	}
	return sb.String()
}

// Len returns the document length in runes.
func (b *Buffer) Len() int {
	n := 0
	for _, line := range b.lines {
		n += len(line)
	}
	return n + len(b.lines) - 1
}

// Lines returns a copy of the logical lines.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	for i, line := range b.lines {
		out[i] = string(line)
	}
	return out
}

func (b *Buffer) LineCount() int { return len(b.lines) }

func (b *Buffer) Version() uint64 { return b.version }

func (b *Buffer) Cursor() Pos { return b.cursor }

func (b *Buffer) SetCursor(p Pos) {
	next := b.clampPos(p)
	if next == b.cursor {
		return
	}
	b.cursor = next
	b.version++
}

// Caret returns the cursor as a rune offset.
func (b *Buffer) Caret() int { return b.posToOffset(b.cursor) }

// SetCaret moves the cursor to a rune offset, clamped into the document.
func (b *Buffer) SetCaret(off int) {
	b.SetCursor(b.offsetToPos(clampInt(off, 0, b.Len())))
}

func (b *Buffer) lineLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return len(b.lines[row])
}

func (b *Buffer) clampPos(p Pos) Pos {
	return ClampPos(p, len(b.lines), b.lineLen)
}

func splitLines(text string) [][]rune {
	parts := strings.Split(text, "\n")
	lines := make([][]rune, 0, len(parts))
	for _, s := range parts {
		lines = append(lines, []rune(s))
	}
	if len(lines) == 0 {
		lines = append(lines, nil)
	}
	return lines
}
