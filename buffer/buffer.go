package buffer

// Buffer is the pure document state: content, anchor, and cursor.
//
// The anchor is the fixed end of the selection and the cursor its moving end.
// Both always lie in [0, Len()] on a character boundary.
type Buffer struct {
	text    string
	anchor  int
	cursor  int
	version uint64

	// marked is the provisional input-method range, if hasMarked.
	marked    Range
	hasMarked bool

	lastChange    Change
	hasLastChange bool
}

// state is the comparable part of a Buffer used to detect effective mutations.
type state struct {
	text      string
	anchor    int
	cursor    int
	marked    Range
	hasMarked bool
}

// New returns a buffer holding text with the cursor at offset 0. Invalid
// UTF-8 is replaced with U+FFFD.
func New(text string) *Buffer {
	return &Buffer{text: validText(text)}
}

func (b *Buffer) Text() string { return b.text }

func (b *Buffer) Len() int { return len(b.text) }

func (b *Buffer) Version() uint64 { return b.version }

func (b *Buffer) Cursor() int { return b.cursor }

func (b *Buffer) Anchor() int { return b.anchor }

// SelectionRange returns [min(anchor, cursor), max(anchor, cursor)).
func (b *Buffer) SelectionRange() Range {
	return NormalizeRange(Range{Start: b.anchor, End: b.cursor})
}

// SelectionReversed reports whether the cursor sits before the anchor.
func (b *Buffer) SelectionReversed() bool {
	return b.cursor < b.anchor
}

func (b *Buffer) HasSelection() bool {
	return b.anchor != b.cursor
}

func (b *Buffer) SelectedText() string {
	r := b.SelectionRange()
	return b.text[r.Start:r.End]
}

// SetText replaces the content wholesale. The cursor is clamped to the new
// content and the selection collapses onto it.
func (b *Buffer) SetText(text string) {
	text = validText(text)
	b.mutate(ChangeSourceLocal, func(cb *changeBuilder) {
		prev := b.text
		b.text = text
		b.cursor = floorCharBoundary(b.text, b.cursor)
		b.anchor = b.cursor
		b.clearMark()
		if applied, ok := replacementAppliedEdit(prev, text); ok {
			cb.addAppliedEdit(applied)
		}
	})
}

// SetCursor places a collapsed cursor at off.
func (b *Buffer) SetCursor(off int) {
	b.SetSelection(off, off)
}

// SetSelection sets both selection ends. Offsets are clamped to the content
// and snapped down to a character boundary.
func (b *Buffer) SetSelection(anchor, cursor int) {
	b.mutate(ChangeSourceLocal, func(*changeBuilder) {
		b.anchor = floorCharBoundary(b.text, anchor)
		b.cursor = floorCharBoundary(b.text, cursor)
	})
}

// SelectAll selects the whole content with the cursor at the end.
func (b *Buffer) SelectAll() {
	b.SetSelection(0, len(b.text))
}

// CollapseSelection moves the anchor onto the cursor.
func (b *Buffer) CollapseSelection() {
	b.SetSelection(b.cursor, b.cursor)
}

func (b *Buffer) snapshot() state {
	return state{
		text:      b.text,
		anchor:    b.anchor,
		cursor:    b.cursor,
		marked:    b.marked,
		hasMarked: b.hasMarked,
	}
}

// mutate runs fn and advances the version once if fn changed any state.
// Text edits recorded on the builder become LastChange.
func (b *Buffer) mutate(source ChangeSource, fn func(cb *changeBuilder)) bool {
	before := b.snapshot()
	cb := b.beginChange(source)
	fn(&cb)
	if b.snapshot() == before {
		return false
	}
	b.version++
	b.commitChange(cb)
	return true
}
