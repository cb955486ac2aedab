package buffer

import "github.com/iw2rmb/stanza/indent"

// State captures the buffer as an indentation state.
func (b *Buffer) State(readOnly bool) indent.State {
	return indent.State{
		Content:  b.Text(),
		Caret:    b.Caret(),
		ReadOnly: readOnly,
	}
}

// Restore replaces the text with s.Content and places the caret at s.Caret.
// The caret is clamped into the new text.
func (b *Buffer) Restore(s indent.State) {
	prevText := b.Text()
	prevCursor := b.cursor

	if s.Content != prevText {
		b.lines = splitLines(s.Content)
	}
	b.cursor = b.offsetToPos(clampInt(s.Caret, 0, b.Len()))

	if s.Content != prevText || b.cursor != prevCursor {
		b.version++
	}
}
