package editor

import "github.com/iw2rmb/zeno/buffer"

// ChangeEvent describes the buffer state after an effective change.
type ChangeEvent struct {
	Version   uint64
	Cursor    int
	Selection buffer.Range

	// Change is the text edit behind the event, when there was one. Cursor
	// and selection moves report TextChanged=false.
	Change      buffer.Change
	TextChanged bool

	Text string
}

func buildChangeEvent(b *buffer.Buffer, textChanged bool) ChangeEvent {
	ev := ChangeEvent{
		Version:     b.Version(),
		Cursor:      b.Cursor(),
		Selection:   b.SelectionRange(),
		Text:        b.Text(),
		TextChanged: textChanged,
	}
	if textChanged {
		if ch, ok := b.LastChange(); ok {
			ev.Change = ch
		}
	}
	return ev
}
