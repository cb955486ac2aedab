// Package tools is the typed registration table of the block editor tools
// offered next to the poetry block.
//
// Every tool has a fixed set of recognised fields and is validated when it
// is registered. The colour tool receives its palette from an explicit
// theme instead of looking one up at runtime.
package tools
