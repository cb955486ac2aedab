// Package cli parses command-line arguments for the stanza host, validates
// them and maps bad input to exit codes.
package cli
