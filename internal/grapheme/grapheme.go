// Package grapheme locates user-perceived character boundaries in UTF-8 text.
package grapheme

import (
	"unicode"

	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// PrevBoundary returns the byte offset where the cluster ending at or
// containing off begins. Offsets at or before 0 return 0.
func PrevBoundary(text string, off int) int {
	if off <= 0 {
		return 0
	}
	if off > len(text) {
		off = len(text)
	}
	prev := 0
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		start, _ := g.Positions()
		if start >= off {
			break
		}
		prev = start
	}
	return prev
}

// NextBoundary returns the byte offset just past the cluster that starts at
// or contains off. Offsets at or past the end return len(text).
func NextBoundary(text string, off int) int {
	if off >= len(text) {
		return len(text)
	}
	if off < 0 {
		off = 0
	}
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		_, end := g.Positions()
		if end > off {
			return end
		}
	}
	return len(text)
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
