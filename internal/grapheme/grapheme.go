// Package grapheme splits text into user-perceived characters and measures
// their terminal cell width.
package grapheme

import (
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Cluster is one grapheme cluster of a line.
type Cluster struct {
	Text string
	// Start is the rune offset of the cluster within its line.
	Start int
	// Runes is the number of runes in Text.
	Runes int
	// Width is the terminal cell width of Text.
	Width int
}

// Contains reports whether the rune offset col falls inside the cluster.
func (c Cluster) Contains(col int) bool {
	return col >= c.Start && col < c.Start+c.Runes
}

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len([]rune(text)))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	n := 0
	for g.Next() {
		n++
	}
	return n
}

// Clusters splits a single line into clusters annotated with rune offsets
// and cell widths.
func Clusters(line string) []Cluster {
	parts := Split(line)
	if len(parts) == 0 {
		return nil
	}
	out := make([]Cluster, 0, len(parts))
	start := 0
	for _, p := range parts {
		n := utf8.RuneCountInString(p)
		out = append(out, Cluster{Text: p, Start: start, Runes: n, Width: Width(p)})
		start += n
	}
	return out
}

// Width returns the terminal cell width of a cluster.
func Width(cluster string) int {
	w := runewidth.StringWidth(cluster)
	if w < 0 {
		w = 0
	}
	if w == 0 {
		fallback := uniseg.StringWidth(cluster)
		if fallback > w {
			w = fallback
		}
	}
	return w
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// Boundaries returns the rune offsets at which the clusters of line start,
// followed by len(line). An empty line yields [0].
func Boundaries(line []rune) []int {
	out := []int{0}
	if len(line) == 0 {
		return out
	}
	g := uniseg.NewGraphemes(string(line))
	off := 0
	for g.Next() {
		off += len(g.Runes())
		out = append(out, off)
	}
	return out
}

// Prev returns the nearest cluster boundary strictly before col, or 0.
func Prev(line []rune, col int) int {
	prev := 0
	for _, b := range Boundaries(line) {
		if b >= col {
			break
		}
		prev = b
	}
	return prev
}

// Next returns the nearest cluster boundary strictly after col, or
// len(line).
func Next(line []rune, col int) int {
	for _, b := range Boundaries(line) {
		if b > col {
			return b
		}
	}
	return len(line)
}

// Floor snaps col back to the start of the cluster it falls into.
func Floor(line []rune, col int) int {
	floor := 0
	for _, b := range Boundaries(line) {
		if b > col {
			break
		}
		floor = b
	}
	return floor
}

// Cell returns the cell column where the cluster holding rune offset col
// starts, and that cluster's width (at least 1). Past the end of line it
// returns the line width and 1, the cell a trailing caret occupies.
func Cell(line string, col int) (x, w int) {
	for _, c := range Clusters(line) {
		if c.Contains(col) {
			return x, max(c.Width, 1)
		}
		x += c.Width
	}
	return x, 1
}
