// Package buffer implements the rune-accurate text model behind a poetry
// block: the text, its caret, and conversions between rune offsets and
// (row, col) positions.
//
// Coordinates are 0-based (Row, Col) in runes. Offsets count runes, with
// '\n' counted as a single rune.
package buffer
