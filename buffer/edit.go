package buffer

import "strings"

// InsertText replaces the selection (or the empty range at the cursor) with s.
// The cursor lands just after the inserted text.
func (b *Buffer) InsertText(s string) {
	b.ReplaceRange(b.SelectionRange(), s)
}

// InsertNewline inserts a line break at the cursor, or replaces the selection.
func (b *Buffer) InsertNewline() {
	b.InsertText("\n")
}

// DeleteBackward applies backspace semantics.
func (b *Buffer) DeleteBackward() {
	if b.HasSelection() {
		b.DeleteSelection()
		return
	}
	if b.cursor == 0 {
		return
	}
	b.ReplaceRange(Range{Start: PrevCharBoundary(b.text, b.cursor), End: b.cursor}, "")
}

// DeleteForward applies delete-key semantics.
func (b *Buffer) DeleteForward() {
	if b.HasSelection() {
		b.DeleteSelection()
		return
	}
	if b.cursor >= len(b.text) {
		return
	}
	b.ReplaceRange(Range{Start: b.cursor, End: NextCharBoundary(b.text, b.cursor)}, "")
}

// DeleteSelection deletes the selection, if any.
func (b *Buffer) DeleteSelection() {
	if !b.HasSelection() {
		return
	}
	b.ReplaceRange(b.SelectionRange(), "")
}

// ReplaceRange splices text into r and collapses the selection to just after
// it. r is clamped, swapped if reversed, and widened outward to character
// boundaries; when it still cannot address the content the call is a no-op.
// Invalid UTF-8 in text is replaced with U+FFFD.
func (b *Buffer) ReplaceRange(r Range, text string) {
	b.mutate(ChangeSourceLocal, func(cb *changeBuilder) {
		b.replaceRange(cb, r, text)
	})
}

func (b *Buffer) replaceRange(cb *changeBuilder, r Range, text string) bool {
	text = validText(text)
	r = NormalizeRangeToCharBoundaries(b.text, r)
	if r.Start > r.End || r.End > len(b.text) {
		return false
	}

	deleted := b.text[r.Start:r.End]
	if deleted != text {
		var sb strings.Builder
		sb.Grow(len(b.text) - len(deleted) + len(text))
		sb.WriteString(b.text[:r.Start])
		sb.WriteString(text)
		sb.WriteString(b.text[r.End:])
		b.text = sb.String()

		cb.addAppliedEdit(AppliedEdit{
			RangeBefore: r,
			RangeAfter:  Range{Start: r.Start, End: r.Start + len(text)},
			InsertText:  text,
			DeletedText: deleted,
		})
		if cb.source != ChangeSourceIME {
			b.clearMark()
		}
	}

	b.cursor = clampInt(r.Start+len(text), 0, len(b.text))
	b.anchor = b.cursor
	return true
}
