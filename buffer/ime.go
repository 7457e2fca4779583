package buffer

// MarkedRange returns the provisional input-method range, if any.
func (b *Buffer) MarkedRange() (Range, bool) {
	if !b.hasMarked {
		return Range{}, false
	}
	return b.marked, true
}

// SetMarkedText replaces the marked range, or the selection when nothing is
// marked, with provisional text and marks the result. sel is a UTF-16 range
// relative to text that becomes the selection inside the marked range.
// Empty text removes the marked text and the mark.
func (b *Buffer) SetMarkedText(text string, sel Range) {
	text = validText(text)
	b.mutate(ChangeSourceIME, func(cb *changeBuilder) {
		target := NormalizeRangeToCharBoundaries(b.text, b.imeTarget())
		if !b.replaceRange(cb, target, text) {
			return
		}
		if text == "" {
			b.clearMark()
			return
		}
		b.marked = Range{Start: target.Start, End: target.Start + len(text)}
		b.hasMarked = true

		rel := RangeFromUTF16(text, NormalizeRange(sel))
		b.anchor = floorCharBoundary(b.text, target.Start+rel.Start)
		b.cursor = floorCharBoundary(b.text, target.Start+rel.End)
	})
}

// CommitText replaces the marked range, or the selection when nothing is
// marked, with final text and clears the mark.
func (b *Buffer) CommitText(text string) {
	b.mutate(ChangeSourceIME, func(cb *changeBuilder) {
		b.replaceRange(cb, b.imeTarget(), text)
		b.clearMark()
	})
}

// ReplaceUTF16 commits text over a host-addressed UTF-16 range. Stale ranges
// are clamped to the content like any other range.
func (b *Buffer) ReplaceUTF16(r Range, text string) {
	b.mutate(ChangeSourceIME, func(cb *changeBuilder) {
		b.replaceRange(cb, b.RangeFromUTF16(r), text)
		b.clearMark()
	})
}

// UnmarkText accepts the marked text as-is.
func (b *Buffer) UnmarkText() {
	b.mutate(ChangeSourceIME, func(*changeBuilder) {
		b.clearMark()
	})
}

func (b *Buffer) imeTarget() Range {
	if b.hasMarked {
		return b.marked
	}
	return b.SelectionRange()
}

func (b *Buffer) clearMark() {
	b.marked = Range{}
	b.hasMarked = false
}
