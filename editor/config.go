package editor

import "github.com/iw2rmb/zeno/markdown"

const defaultTabWidth = 4

// Config configures the editor Model.
type Config struct {
	// Initial text for the internal buffer.
	Text string

	// Rendering options.
	ShowLineNums bool
	Style        Style
	TabWidth     int // default: 4

	// KeyMap defaults to DefaultKeyMap when left empty.
	KeyMap KeyMap

	// ReadOnly disables every binding that changes the content.
	ReadOnly bool

	// Highlight classifies the full text for decoration. Nil disables
	// highlighting; markdown.Highlight is the usual choice.
	Highlight func(text string) []markdown.Span

	Clipboard Clipboard

	// OnChange is called after any effective buffer change (text, cursor, or
	// selection) observed by Update.
	OnChange func(ChangeEvent)
}

func (c Config) withDefaults() Config {
	if c.TabWidth <= 0 {
		c.TabWidth = defaultTabWidth
	}
	if len(c.KeyMap.Left.Keys()) == 0 {
		c.KeyMap = DefaultKeyMap()
	}
	return c
}
