// Package tomlfile decodes TOML configuration files into typed structs.
package tomlfile

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/iw2rmb/stanza/internal/ctxlog"
)

// ParseError reports a file that could not be decoded.
type ParseError struct {
	Path    string
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ErrNotFound is returned by Load when the file does not exist.
var ErrNotFound = errors.New("tomlfile: file not found")

// Load reads path and decodes it into v. Unknown keys are rejected.
func Load(ctx context.Context, path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return fmt.Errorf("reading config file %s: %w", path, err)
	}
	ctxlog.FromContext(ctx).Debug("Decoding TOML file.", "path", path, "bytes", len(data))
	return Decode(path, data, v)
}

// Decode decodes data into v. source names the data in errors.
func Decode(source string, data []byte, v any) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		msg := err.Error()
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			msg = fmt.Sprintf("%d:%d: %s", row, col, derr.Error())
		}
		var serr *toml.StrictMissingError
		if errors.As(err, &serr) {
			msg = serr.String()
		}
		return &ParseError{Path: source, Message: msg, Err: err}
	}
	return nil
}
