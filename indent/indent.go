package indent

import "strings"

// Unit is the indentation inserted by Indent and removed by Outdent.
const Unit = "  "

var unitLen = len([]rune(Unit))

// Direction selects between Indent and Outdent in Apply.
type Direction uint8

const (
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "indent"
	case Backward:
		return "outdent"
	default:
		return "unknown"
	}
}

// State is the text of one block together with its caret.
//
// Caret satisfies 0 <= Caret <= rune length of Content.
type State struct {
	Content  string
	Caret    int
	ReadOnly bool
}

// FindLineStart returns the offset of the first rune of the line containing
// caret: the offset right after the last '\n' before caret, or 0.
//
// The result is always <= caret (after clamping caret into the content).
func FindLineStart(content string, caret int) int {
	rs := []rune(content)
	caret = clampInt(caret, 0, len(rs))
	for i := caret - 1; i >= 0; i-- {
		if rs[i] == '\n' {
			return i + 1
		}
	}
	return 0
}

// Indent inserts Unit at the caret and advances the caret past it.
// Read-only states are returned unchanged.
func Indent(s State) State {
	if s.ReadOnly {
		return s
	}
	rs := []rune(s.Content)
	caret := clampInt(s.Caret, 0, len(rs))

	var sb strings.Builder
	sb.Grow(len(s.Content) + len(Unit))
	sb.WriteString(string(rs[:caret]))
	sb.WriteString(Unit)
	sb.WriteString(string(rs[caret:]))

	s.Content = sb.String()
	s.Caret = caret + unitLen
	return s
}

// Outdent removes Unit from the start of the caret's line and moves the
// caret back by the unit length. When the line does not start with Unit the
// state is returned unchanged.
//
// The caret is moved back even if it sat inside the removed unit, so it may
// end up before the line start. It is only clamped at 0.
func Outdent(s State) State {
	if s.ReadOnly {
		return s
	}
	rs := []rune(s.Content)
	caret := clampInt(s.Caret, 0, len(rs))
	start := FindLineStart(s.Content, caret)

	end := start + unitLen
	if end > len(rs) || string(rs[start:end]) != Unit {
		return s
	}

	s.Content = string(rs[:start]) + string(rs[end:])
	s.Caret = max(caret-unitLen, 0)
	return s
}

// Apply runs Indent or Outdent and reports whether the state changed.
func Apply(s State, d Direction) (State, bool) {
	var next State
	switch d {
	case Forward:
		next = Indent(s)
	case Backward:
		next = Outdent(s)
	default:
		return s, false
	}
	return next, next != s
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
