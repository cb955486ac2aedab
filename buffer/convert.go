package buffer

type OffsetClampMode uint8

const (
	OffsetError OffsetClampMode = iota
	OffsetClamp
)

// PosFromOffset converts a rune offset into a document position.
//
// With OffsetError, offsets outside [0, Len()] report false. With
// OffsetClamp they are clamped into range.
func (b *Buffer) PosFromOffset(off int, mode OffsetClampMode) (Pos, bool) {
	off, ok := clampOffset(off, b.Len(), mode)
	if !ok {
		return Pos{}, false
	}
	return b.offsetToPos(off), true
}

// OffsetFromPos converts a document position into a rune offset.
//
// With OffsetError, positions outside the document report false. With
// OffsetClamp they are clamped first.
func (b *Buffer) OffsetFromPos(pos Pos, mode OffsetClampMode) (int, bool) {
	clamped := b.clampPos(pos)
	switch mode {
	case OffsetError:
		if clamped != pos {
			return 0, false
		}
	case OffsetClamp:
	default:
		return 0, false
	}
	return b.posToOffset(clamped), true
}

func clampOffset(off, max int, mode OffsetClampMode) (int, bool) {
	switch mode {
	case OffsetError:
		if off < 0 || off > max {
			return 0, false
		}
		return off, true
	case OffsetClamp:
		return clampInt(off, 0, max), true
	default:
		return 0, false
	}
}

// offsetToPos expects off within [0, Len()].
func (b *Buffer) offsetToPos(off int) Pos {
	for row, line := range b.lines {
		if off <= len(line) {
			return Pos{Row: row, Col: off}
		}
		off -= len(line) + 1
	}
	last := len(b.lines) - 1
	return Pos{Row: last, Col: len(b.lines[last])}
}

// posToOffset expects a clamped pos.
func (b *Buffer) posToOffset(pos Pos) int {
	off := 0
	for row := 0; row < pos.Row; row++ {
		off += len(b.lines[row]) + 1
	}
	return off + pos.Col
}
