package poetry

import (
	"slices"
	"strings"
)

// PasteEvent is content pasted into the block from outside the editor.
//
// Tag names the pasted element ("pre") or is empty for plain text.
type PasteEvent struct {
	Tag  string
	Text string
}

// Paste replaces the whole block with the pasted text. It reports false
// when the block is read-only or the element tag is not claimed by the
// tool's paste config.
func (m Block) Paste(ev PasteEvent) (Block, bool) {
	if m.cfg.ReadOnly {
		return m, false
	}
	tag := strings.ToLower(strings.TrimSpace(ev.Tag))
	if tag != "" && !slices.Contains(Describe().PasteConfig.Tags, tag) {
		return m, false
	}

	m.buf.SetText(normalizeNewlines(ev.Text))
	m.cfg.logger().Debug("poetry block replaced by paste", "tag", tag, "len", m.buf.Len())
	if m.syncFromBuffer() {
		m.followCursor()
	}
	return m, true
}

// normalizeNewlines converts newlines from external sources.
func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
