package buffer

import "unicode/utf16"

// Host input-method and accessibility protocols address text in UTF-16 code
// units. The functions here translate between that space and byte offsets.

// UTF16Len returns the number of UTF-16 code units needed to encode s.
func UTF16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}

// ToUTF16 clamps off into s and returns the UTF-16 length of the characters
// that start before it. An offset inside a character counts that character,
// the same rounding up FromUTF16 applies inside a surrogate pair.
func ToUTF16(s string, off int) int {
	off = clampInt(off, 0, len(s))
	n := 0
	for i, r := range s {
		if i >= off {
			break
		}
		n += utf16.RuneLen(r)
	}
	return n
}

// FromUTF16 returns the byte offset of the first character boundary at which
// at least u16 code units have been consumed, or len(s) when s is shorter.
func FromUTF16(s string, u16 int) int {
	if u16 <= 0 {
		return 0
	}
	n := 0
	for i, r := range s {
		if n >= u16 {
			return i
		}
		n += utf16.RuneLen(r)
	}
	return len(s)
}

// RangeToUTF16 converts both ends of r independently.
func RangeToUTF16(s string, r Range) Range {
	return Range{Start: ToUTF16(s, r.Start), End: ToUTF16(s, r.End)}
}

// RangeFromUTF16 converts both ends of r independently.
func RangeFromUTF16(s string, r Range) Range {
	return Range{Start: FromUTF16(s, r.Start), End: FromUTF16(s, r.End)}
}

func (b *Buffer) UTF16Len() int { return UTF16Len(b.text) }

func (b *Buffer) ToUTF16(off int) int { return ToUTF16(b.text, off) }

func (b *Buffer) FromUTF16(u16 int) int { return FromUTF16(b.text, u16) }

func (b *Buffer) RangeToUTF16(r Range) Range { return RangeToUTF16(b.text, r) }

func (b *Buffer) RangeFromUTF16(r Range) Range { return RangeFromUTF16(b.text, r) }

// SelectionUTF16 returns the selection range in UTF-16 code units.
func (b *Buffer) SelectionUTF16() Range {
	return b.RangeToUTF16(b.SelectionRange())
}
