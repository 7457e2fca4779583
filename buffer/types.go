package buffer

// Range is a half-open byte range into the content: [Start, End).
type Range struct {
	Start int
	End   int
}

func NormalizeRange(r Range) Range {
	if r.Start <= r.End {
		return r
	}
	return Range{Start: r.End, End: r.Start}
}

func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// Len returns the byte length of r regardless of its direction.
func (r Range) Len() int {
	if r.End < r.Start {
		return r.Start - r.End
	}
	return r.End - r.Start
}

// Contains reports whether off lies within the normalized range.
func (r Range) Contains(off int) bool {
	r = NormalizeRange(r)
	return off >= r.Start && off < r.End
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ClampRange clamps both ends of r into [0, n]. Direction is preserved.
func ClampRange(r Range, n int) Range {
	return Range{
		Start: clampInt(r.Start, 0, n),
		End:   clampInt(r.End, 0, n),
	}
}
