package poetry

import "log/slog"

// Data is the persisted form of a poetry block.
type Data struct {
	Poetry string `json:"poetry"`
}

// Translator localizes user-facing strings such as the placeholder.
type Translator interface {
	T(key string) string
}

// CaretEffect is notified with the new caret offset after the block moved
// the caret on its own (indentation). Hosts that mirror the caret into
// another widget implement it.
type CaretEffect interface {
	SetCaret(offset int)
}

// CaretFunc adapts a function to CaretEffect.
type CaretFunc func(offset int)

func (f CaretFunc) SetCaret(offset int) { f(offset) }

// Config is the construction contract of a poetry block.
type Config struct {
	// Previously saved data. Zero value starts empty.
	Data Data

	// Placeholder is shown while the block is empty. Defaults to
	// DefaultPlaceholder. Passed through Translator when set.
	Placeholder string
	ReadOnly    bool

	Translator Translator

	// Rendering options.
	ShowLineNums bool
	Style        Style
	Width        int
	Height       int

	// KeyMap defaults to DefaultKeyMap when zero.
	KeyMap KeyMap

	Caret    CaretEffect
	OnChange func(ChangeEvent)

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

func (c Config) placeholder() string {
	p := c.Placeholder
	if p == "" {
		p = DefaultPlaceholder
	}
	if c.Translator != nil {
		p = c.Translator.T(p)
	}
	return p
}

func (c Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}
