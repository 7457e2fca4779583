package buffer

import (
	"strings"
	"unicode/utf8"
)

// validText replaces each run of invalid UTF-8 in s with U+FFFD so that
// every offset the buffer computes from it lands on a character boundary.
func validText(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	return strings.ToValidUTF8(s, "\uFFFD")
}

// IsCharBoundary reports whether slicing s at i cannot split an encoded
// character. 0 and len(s) are always boundaries; out-of-range offsets never are.
func IsCharBoundary(s string, i int) bool {
	if i == 0 || i == len(s) {
		return true
	}
	if i < 0 || i > len(s) {
		return false
	}
	return utf8.RuneStart(s[i])
}

// PrevCharBoundary returns the character boundary immediately before i,
// stopping at 0.
func PrevCharBoundary(s string, i int) int {
	i = clampInt(i, 0, len(s))
	if i == 0 {
		return 0
	}
	i--
	for i > 0 && !utf8.RuneStart(s[i]) {
		i--
	}
	return i
}

// NextCharBoundary returns the character boundary immediately after i,
// stopping at len(s).
func NextCharBoundary(s string, i int) int {
	i = clampInt(i, 0, len(s))
	if i == len(s) {
		return i
	}
	i++
	for i < len(s) && !utf8.RuneStart(s[i]) {
		i++
	}
	return i
}

// NormalizeRangeToCharBoundaries clamps r into s, swaps reversed ends, and
// widens a start that falls mid-character leftward and an end that falls
// mid-character rightward.
func NormalizeRangeToCharBoundaries(s string, r Range) Range {
	r = NormalizeRange(ClampRange(r, len(s)))
	return Range{
		Start: floorCharBoundary(s, r.Start),
		End:   ceilCharBoundary(s, r.End),
	}
}

// floorCharBoundary returns the nearest boundary at or before i.
func floorCharBoundary(s string, i int) int {
	i = clampInt(i, 0, len(s))
	for i > 0 && !IsCharBoundary(s, i) {
		i--
	}
	return i
}

// ceilCharBoundary returns the nearest boundary at or after i.
func ceilCharBoundary(s string, i int) int {
	i = clampInt(i, 0, len(s))
	for i < len(s) && !IsCharBoundary(s, i) {
		i++
	}
	return i
}
