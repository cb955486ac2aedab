// Package poetry provides the Poetry block: a Bubble Tea textarea for
// free-form verse, backed by the buffer package.
//
// Tab inserts an indentation unit at the caret and Shift+Tab removes one
// from the start of the caret's line (see package indent). Both gestures
// are consumed by the block and never reach the host.
//
// The host mounts the block with New, draws it with Render, persists it
// with Save, and feeds externally pasted content through Paste.
package poetry
