package buffer

import (
	"sort"

	"github.com/iw2rmb/stanza/internal/grapheme"
)

type MoveUnit int

const (
	MoveGrapheme MoveUnit = iota
	MoveWord
	MoveLine
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // line start (or doc start for MoveDoc)
	DirEnd  // line end (or doc end for MoveDoc)
)

type Move struct {
	Unit MoveUnit
	Dir  MoveDir
}

func (b *Buffer) Move(m Move) {
	next := b.clampPos(b.moveCursor(b.cursor, m))
	if next == b.cursor {
		return
	}
	b.cursor = next
	b.version++
}

func (b *Buffer) moveCursor(p Pos, m Move) Pos {
	switch m.Unit {
	case MoveGrapheme:
		return b.moveGrapheme(p, m.Dir)
	case MoveWord:
		return b.moveWord(p, m.Dir)
	case MoveLine:
		return b.moveLine(p, m.Dir)
	case MoveDoc:
		return b.moveDoc(p, m.Dir)
	default:
		return p
	}
}

// moveGrapheme steps over whole grapheme clusters. Columns stay rune
// offsets.
func (b *Buffer) moveGrapheme(p Pos, dir MoveDir) Pos {
	row, col := p.Row, p.Col
	lastRow := len(b.lines) - 1

	switch dir {
	case DirLeft:
		if row == 0 && col == 0 {
			return p
		}
		if col > 0 {
			return Pos{Row: row, Col: grapheme.Prev(b.lines[row], col)}
		}
		prevRow := row - 1
		return Pos{Row: prevRow, Col: len(b.lines[prevRow])}
	case DirRight:
		if row == lastRow && col == len(b.lines[lastRow]) {
			return p
		}
		if col < len(b.lines[row]) {
			return Pos{Row: row, Col: grapheme.Next(b.lines[row], col)}
		}
		return Pos{Row: row + 1, Col: 0}
	default:
		return b.moveLine(p, dir)
	}
}

func (b *Buffer) moveWord(p Pos, dir MoveDir) Pos {
	row, col := p.Row, p.Col
	line := b.lines[row]

	switch dir {
	case DirLeft:
		return Pos{Row: row, Col: prevWordBoundary(line, col)}
	case DirRight:
		return Pos{Row: row, Col: nextWordBoundary(line, col)}
	default:
		return b.moveLine(p, dir)
	}
}

func (b *Buffer) moveLine(p Pos, dir MoveDir) Pos {
	row, col := p.Row, p.Col
	lastRow := len(b.lines) - 1

	switch dir {
	case DirHome:
		return Pos{Row: row, Col: 0}
	case DirEnd:
		return Pos{Row: row, Col: len(b.lines[row])}
	case DirUp:
		if row == 0 {
			return p
		}
		nr := row - 1
		return Pos{Row: nr, Col: grapheme.Floor(b.lines[nr], col)}
	case DirDown:
		if row == lastRow {
			return p
		}
		nr := row + 1
		return Pos{Row: nr, Col: grapheme.Floor(b.lines[nr], col)}
	default:
		return p
	}
}

func (b *Buffer) moveDoc(p Pos, dir MoveDir) Pos {
	lastRow := len(b.lines) - 1
	lastCol := len(b.lines[lastRow])

	switch dir {
	case DirHome, DirUp:
		return Pos{Row: 0, Col: 0}
	case DirEnd, DirDown:
		return Pos{Row: lastRow, Col: lastCol}
	default:
		return p
	}
}

// Word boundary rules:
// - skip whitespace clusters, then skip non-whitespace clusters
// - newline is a hard boundary (so this operates on a single logical line)
func prevWordBoundary(line []rune, col int) int {
	col = clampInt(col, 0, len(line))
	cs := grapheme.Clusters(string(line))
	i := sort.Search(len(cs), func(i int) bool { return cs[i].Start >= col })
	for i > 0 && grapheme.IsSpace(cs[i-1].Text) {
		i--
	}
	for i > 0 && !grapheme.IsSpace(cs[i-1].Text) {
		i--
	}
	return clusterStart(cs, i, len(line))
}

func nextWordBoundary(line []rune, col int) int {
	col = clampInt(col, 0, len(line))
	cs := grapheme.Clusters(string(line))
	i := sort.Search(len(cs), func(i int) bool { return cs[i].Start+cs[i].Runes > col })
	for i < len(cs) && grapheme.IsSpace(cs[i].Text) {
		i++
	}
	for i < len(cs) && !grapheme.IsSpace(cs[i].Text) {
		i++
	}
	return clusterStart(cs, i, len(line))
}

func clusterStart(cs []grapheme.Cluster, i, end int) int {
	if i < len(cs) {
		return cs[i].Start
	}
	return end
}
