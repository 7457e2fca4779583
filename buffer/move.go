package buffer

import (
	"strings"
	"unicode/utf8"

	"github.com/iw2rmb/zeno/internal/grapheme"
)

type MoveUnit int

const (
	MoveChar MoveUnit = iota
	MoveGrapheme
	MoveWord
	MoveLine
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // line start (or doc start for MoveDoc)
	DirEnd  // line end (or doc end for MoveDoc)
)

type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool // if true only the cursor moves; if false the selection collapses
}

// MoveLeft moves the cursor one character left. Without extend, a non-empty
// selection collapses to its start instead.
func (b *Buffer) MoveLeft(extend bool) {
	b.Move(Move{Unit: MoveChar, Dir: DirLeft, Extend: extend})
}

// MoveRight moves the cursor one character right. Without extend, a non-empty
// selection collapses to its end instead.
func (b *Buffer) MoveRight(extend bool) {
	b.Move(Move{Unit: MoveChar, Dir: DirRight, Extend: extend})
}

func (b *Buffer) Move(m Move) {
	b.mutate(ChangeSourceLocal, func(*changeBuilder) {
		if !m.Extend && b.HasSelection() && collapsesToEdge(m) {
			sel := b.SelectionRange()
			b.cursor = sel.Start
			if m.Dir == DirRight {
				b.cursor = sel.End
			}
			b.anchor = b.cursor
			return
		}

		b.cursor = floorCharBoundary(b.text, b.moveCursor(b.cursor, m))
		if !m.Extend {
			b.anchor = b.cursor
		}
	})
}

// collapsesToEdge reports whether an unextended m lands on the selection edge
// in its direction of travel rather than stepping from the cursor.
func collapsesToEdge(m Move) bool {
	if m.Unit != MoveChar && m.Unit != MoveGrapheme {
		return false
	}
	return m.Dir == DirLeft || m.Dir == DirRight
}

func (b *Buffer) moveCursor(off int, m Move) int {
	switch m.Unit {
	case MoveChar:
		return b.moveChar(off, m.Dir)
	case MoveGrapheme:
		return b.moveGrapheme(off, m.Dir)
	case MoveWord:
		return b.moveWord(off, m.Dir)
	case MoveLine:
		return b.moveLine(off, m.Dir)
	case MoveDoc:
		return b.moveDoc(off, m.Dir)
	default:
		return off
	}
}

func (b *Buffer) moveChar(off int, dir MoveDir) int {
	switch dir {
	case DirLeft:
		return PrevCharBoundary(b.text, off)
	case DirRight:
		return NextCharBoundary(b.text, off)
	default:
		return b.moveLine(off, dir)
	}
}

func (b *Buffer) moveGrapheme(off int, dir MoveDir) int {
	switch dir {
	case DirLeft:
		return grapheme.PrevBoundary(b.text, off)
	case DirRight:
		return grapheme.NextBoundary(b.text, off)
	default:
		return b.moveLine(off, dir)
	}
}

func (b *Buffer) moveWord(off int, dir MoveDir) int {
	switch dir {
	case DirLeft:
		if next := prevWordBoundary(b.text, off); next != off {
			return next
		}
		return grapheme.PrevBoundary(b.text, off)
	case DirRight:
		if next := nextWordBoundary(b.text, off); next != off {
			return next
		}
		return grapheme.NextBoundary(b.text, off)
	default:
		return b.moveLine(off, dir)
	}
}

func (b *Buffer) moveLine(off int, dir MoveDir) int {
	switch dir {
	case DirHome:
		return lineStart(b.text, off)
	case DirEnd:
		return lineEnd(b.text, off)
	case DirUp:
		start := lineStart(b.text, off)
		if start == 0 {
			return off
		}
		col := utf8.RuneCountInString(b.text[start:off])
		prevStart := lineStart(b.text, start-1)
		return advanceRunes(b.text, prevStart, start-1, col)
	case DirDown:
		end := lineEnd(b.text, off)
		if end == len(b.text) {
			return off
		}
		col := utf8.RuneCountInString(b.text[lineStart(b.text, off):off])
		nextStart := end + 1
		return advanceRunes(b.text, nextStart, lineEnd(b.text, nextStart), col)
	default:
		return off
	}
}

func (b *Buffer) moveDoc(off int, dir MoveDir) int {
	switch dir {
	case DirHome, DirUp:
		return 0
	case DirEnd, DirDown:
		return len(b.text)
	default:
		return off
	}
}

func lineStart(s string, off int) int {
	off = clampInt(off, 0, len(s))
	return strings.LastIndexByte(s[:off], '\n') + 1
}

func lineEnd(s string, off int) int {
	off = clampInt(off, 0, len(s))
	if i := strings.IndexByte(s[off:], '\n'); i >= 0 {
		return off + i
	}
	return len(s)
}

// advanceRunes steps n runes forward from start without passing end.
func advanceRunes(s string, start, end, n int) int {
	i := start
	for n > 0 && i < end {
		_, w := utf8.DecodeRuneInString(s[i:end])
		i += w
		n--
	}
	return i
}

// Word boundary rules (v0):
// - skip whitespace clusters, then skip non-whitespace clusters
// - newline is a hard boundary (so this operates on a single logical line)
func prevWordBoundary(s string, off int) int {
	start := lineStart(s, off)
	off = clampInt(off, start, len(s))
	line := grapheme.Split(s[start:off])
	i := len(line)
	for i > 0 && grapheme.IsSpace(line[i-1]) {
		i--
	}
	for i > 0 && !grapheme.IsSpace(line[i-1]) {
		i--
	}
	return start + clusterBytes(line[:i])
}

func nextWordBoundary(s string, off int) int {
	end := lineEnd(s, off)
	off = clampInt(off, 0, end)
	line := grapheme.Split(s[off:end])
	i := 0
	for i < len(line) && grapheme.IsSpace(line[i]) {
		i++
	}
	for i < len(line) && !grapheme.IsSpace(line[i]) {
		i++
	}
	return off + clusterBytes(line[:i])
}

func clusterBytes(clusters []string) int {
	n := 0
	for _, c := range clusters {
		n += len(c)
	}
	return n
}
