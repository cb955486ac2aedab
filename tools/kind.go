package tools

// Kind identifies a tool implementation.
type Kind string

const (
	KindParagraph Kind = "paragraph"
	KindHeader    Kind = "header"
	KindQuote     Kind = "quote"
	KindList      Kind = "list"
	KindDelimiter Kind = "delimiter"
	KindCode      Kind = "code"
	KindPoetry    Kind = "poetry"
	KindImage     Kind = "image"

	// Inline tools.
	KindUnderline Kind = "underline"
	KindColor     Kind = "color"
)

var kinds = map[Kind]bool{
	KindParagraph: false,
	KindHeader:    false,
	KindQuote:     false,
	KindList:      false,
	KindDelimiter: false,
	KindCode:      false,
	KindPoetry:    false,
	KindImage:     false,
	KindUnderline: true,
	KindColor:     true,
}

// Known reports whether k is a recognised tool kind.
func (k Kind) Known() bool {
	_, ok := kinds[k]
	return ok
}

// Inline reports whether k formats text inside another block rather than
// being a block of its own.
func (k Kind) Inline() bool { return kinds[k] }

// acceptsInlineToolbar reports whether blocks of this kind host an inline
// toolbar.
func (k Kind) acceptsInlineToolbar() bool {
	switch k {
	case KindParagraph, KindHeader, KindQuote, KindList:
		return true
	default:
		return false
	}
}

// InlineActions are the entries an inline toolbar may list.
var InlineActions = []string{"bold", "italic", "underline", "color", "link"}
