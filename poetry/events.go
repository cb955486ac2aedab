package poetry

import "github.com/iw2rmb/stanza/buffer"

type ChangeEvent struct {
	Version uint64
	Cursor  buffer.Pos
	Caret   int

	// Full text; hosts can diff if needed.
	Text string
}

func buildChangeEvent(b *buffer.Buffer) ChangeEvent {
	return ChangeEvent{
		Version: b.Version(),
		Cursor:  b.Cursor(),
		Caret:   b.Caret(),
		Text:    b.Text(),
	}
}
