package buffer

import "github.com/iw2rmb/stanza/internal/grapheme"

// InsertText inserts text at the cursor and moves the cursor past it.
func (b *Buffer) InsertText(s string) {
	if s == "" {
		return
	}
	b.cursor = b.replaceRange(b.cursor, b.cursor, s)
	b.version++
}

// InsertRune inserts a single rune at the cursor.
func (b *Buffer) InsertRune(r rune) {
	b.InsertText(string(r))
}

// InsertNewline inserts a line break at the cursor.
func (b *Buffer) InsertNewline() {
	b.InsertText("\n")
}

// DeleteBackward applies backspace semantics. It removes the whole grapheme
// cluster before the cursor.
func (b *Buffer) DeleteBackward() {
	row, col := b.cursor.Row, b.cursor.Col
	if row == 0 && col == 0 {
		return
	}

	var start Pos
	if col > 0 {
		start = Pos{Row: row, Col: grapheme.Prev(b.lines[row], col)}
	} else {
		// Join with previous line (delete the newline).
		start = Pos{Row: row - 1, Col: len(b.lines[row-1])}
	}
	b.cursor = b.replaceRange(start, b.cursor, "")
	b.version++
}

// DeleteForward applies delete-key semantics. It removes the whole grapheme
// cluster at the cursor.
func (b *Buffer) DeleteForward() {
	row, col := b.cursor.Row, b.cursor.Col
	lastRow := len(b.lines) - 1
	if row == lastRow && col == len(b.lines[lastRow]) {
		return
	}

	var end Pos
	if col < len(b.lines[row]) {
		end = Pos{Row: row, Col: grapheme.Next(b.lines[row], col)}
	} else {
		// Join with next line (delete the newline).
		end = Pos{Row: row + 1, Col: 0}
	}
	b.cursor = b.replaceRange(b.cursor, end, "")
	b.version++
}

// SetText replaces the whole document and puts the cursor at its end.
func (b *Buffer) SetText(s string) {
	if s == b.Text() {
		return
	}
	b.lines = splitLines(s)
	last := len(b.lines) - 1
	b.cursor = Pos{Row: last, Col: len(b.lines[last])}
	b.version++
}

// replaceRange replaces [start, end) with text and returns the position
// right after the inserted text.
func (b *Buffer) replaceRange(start, end Pos, text string) Pos {
	start = b.clampPos(start)
	end = b.clampPos(end)
	if ComparePos(start, end) > 0 {
		start, end = end, start
	}

	prefix := append([]rune(nil), b.lines[start.Row][:start.Col]...)
	suffix := append([]rune(nil), b.lines[end.Row][end.Col:]...)
	ins := splitLines(text)

	var next Pos
	repl := make([][]rune, 0, len(ins))
	if len(ins) == 1 {
		line := make([]rune, 0, len(prefix)+len(ins[0])+len(suffix))
		line = append(line, prefix...)
		line = append(line, ins[0]...)
		line = append(line, suffix...)
		repl = append(repl, line)
		next = Pos{Row: start.Row, Col: len(prefix) + len(ins[0])}
	} else {
		repl = append(repl, append(prefix, ins[0]...))
		for i := 1; i < len(ins)-1; i++ {
			repl = append(repl, ins[i])
		}
		lastPart := ins[len(ins)-1]
		last := make([]rune, 0, len(lastPart)+len(suffix))
		last = append(last, lastPart...)
		last = append(last, suffix...)
		repl = append(repl, last)
		next = Pos{Row: start.Row + len(ins) - 1, Col: len(lastPart)}
	}

	before := b.lines[:start.Row]
	after := b.lines[end.Row+1:]
	out := make([][]rune, 0, len(before)+len(repl)+len(after))
	out = append(out, before...)
	out = append(out, repl...)
	out = append(out, after...)
	b.lines = out
	return next
}
