// Package document reads and writes saved block documents:
//
//	{"time": 1700000000, "blocks": [{"id": "...", "type": "poetry", "data": {"poetry": "..."}}], "version": "2.28.0"}
//
// Blocks of tools this module does not know are carried through untouched.
package document

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/iw2rmb/stanza/internal/ctxlog"
	"github.com/iw2rmb/stanza/poetry"
	"github.com/iw2rmb/stanza/tools"
)

var (
	ErrIndexOutOfRange = errors.New("document: block index out of range")
	ErrNotPoetry       = errors.New("document: block is not a poetry block")
)

// Block is a read-only view of one block.
type Block struct {
	ID   string
	Type string
	// Data is the raw JSON of the block's data object.
	Data string
}

// Document is a saved block document.
type Document struct {
	raw []byte
}

// New returns an empty document.
func New() *Document {
	return &Document{raw: []byte(`{"blocks":[]}`)}
}

// Parse validates data and wraps it. Every block must be an object with a
// string type; data, when present, must be an object.
func Parse(data []byte) (*Document, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("document: invalid JSON")
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, errors.New("document: top level must be an object")
	}
	blocks := root.Get("blocks")
	if !blocks.IsArray() {
		return nil, errors.New("document: blocks must be an array")
	}
	for i, b := range blocks.Array() {
		if !b.IsObject() {
			return nil, fmt.Errorf("document: block %d is not an object", i)
		}
		if t := b.Get("type"); t.Type != gjson.String || t.Str == "" {
			return nil, fmt.Errorf("document: block %d has no type", i)
		}
		if d := b.Get("data"); d.Exists() && !d.IsObject() {
			return nil, fmt.Errorf("document: block %d data is not an object", i)
		}
	}
	return &Document{raw: append([]byte(nil), data...)}, nil
}

// Load reads and parses a document file.
func Load(ctx context.Context, path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading document %s: %w", path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	ctxlog.FromContext(ctx).Debug("Document loaded.", "path", path, "blocks", doc.Len())
	return doc, nil
}

// Save writes the document, pretty-printed.
func (d *Document) Save(ctx context.Context, path string) error {
	if err := os.WriteFile(path, d.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing document %s: %w", path, err)
	}
	ctxlog.FromContext(ctx).Debug("Document saved.", "path", path, "blocks", d.Len())
	return nil
}

// Bytes returns the document as indented JSON.
func (d *Document) Bytes() []byte {
	return pretty.Pretty(d.raw)
}

func (d *Document) Len() int {
	return int(gjson.GetBytes(d.raw, "blocks.#").Int())
}

// Block returns the block at index i.
func (d *Document) Block(i int) (Block, error) {
	if i < 0 || i >= d.Len() {
		return Block{}, fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}
	b := gjson.GetBytes(d.raw, "blocks."+strconv.Itoa(i))
	data := b.Get("data").Raw
	if data == "" {
		data = "{}"
	}
	return Block{ID: b.Get("id").String(), Type: b.Get("type").String(), Data: data}, nil
}

// Blocks returns all blocks in order.
func (d *Document) Blocks() []Block {
	n := d.Len()
	out := make([]Block, 0, n)
	for i := 0; i < n; i++ {
		b, _ := d.Block(i)
		out = append(out, b)
	}
	return out
}

// Index returns the index of the first block of type typ, or -1.
func (d *Document) Index(typ string) int {
	for i, b := range d.Blocks() {
		if b.Type == typ {
			return i
		}
	}
	return -1
}

// Poetry decodes the poetry block at index i.
func (d *Document) Poetry(i int) (poetry.Data, error) {
	b, err := d.Block(i)
	if err != nil {
		return poetry.Data{}, err
	}
	if b.Type != string(tools.KindPoetry) {
		return poetry.Data{}, fmt.Errorf("%w: block %d is %q", ErrNotPoetry, i, b.Type)
	}
	return poetry.Data{Poetry: gjson.Get(b.Data, "poetry").String()}, nil
}

// SetPoetry stores data into the poetry block at index i. Other fields of
// the block are preserved.
func (d *Document) SetPoetry(i int, data poetry.Data) error {
	if _, err := d.Poetry(i); err != nil {
		return err
	}
	raw, err := sjson.SetBytes(d.raw, "blocks."+strconv.Itoa(i)+".data.poetry", data.Poetry)
	if err != nil {
		return fmt.Errorf("document: set poetry: %w", err)
	}
	d.raw = raw
	return nil
}

// AppendPoetry appends a poetry block with a fresh id and returns its index.
func (d *Document) AppendPoetry(data poetry.Data) (int, error) {
	block := map[string]any{
		"id":   NewID(),
		"type": string(tools.KindPoetry),
		"data": data,
	}
	raw, err := sjson.SetBytes(d.raw, "blocks.-1", block)
	if err != nil {
		return 0, fmt.Errorf("document: append block: %w", err)
	}
	d.raw = raw
	return d.Len() - 1, nil
}

// NewID returns a block id: the first ten hex digits of a random UUID.
func NewID() string {
	id := uuid.New()
	return fmt.Sprintf("%x", id[:5])
}

// Validate reports blocks whose type has no tool registered in cfg.
func (d *Document) Validate(cfg *tools.Config) error {
	var errs []error
	for i, b := range d.Blocks() {
		t, ok := cfg.Lookup(b.Type)
		if !ok {
			errs = append(errs, fmt.Errorf("block %d: no tool registered for type %q", i, b.Type))
			continue
		}
		if t.Kind.Inline() {
			errs = append(errs, fmt.Errorf("block %d: %q is an inline tool", i, b.Type))
		}
	}
	return errors.Join(errs...)
}
