// Package indent implements Tab/Shift+Tab indentation on a single text
// buffer with a caret.
//
// Offsets are counted in runes. Lines are delimited by '\n'. All functions
// are pure: callers own the buffer and apply the returned State.
package indent
