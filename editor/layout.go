package editor

import (
	"strings"

	"github.com/iw2rmb/zeno/internal/grapheme"
)

// LayoutCell is one grapheme cluster placed on a screen row.
type LayoutCell struct {
	Start, End int // byte offsets into the document
	X          int // first cell column, excluding the gutter
	Width      int
	Text       string
}

// LayoutLine is one logical line of the document. End excludes the newline.
type LayoutLine struct {
	Start, End int
	Width      int
	Cells      []LayoutCell
}

// Layout is the geometry of a rendered document. It is rebuilt on every
// render and is the only thing pointer input consults.
type Layout struct {
	Lines       []LayoutLine
	GutterWidth int
	TabWidth    int
}

// BuildLayout lays out text one logical line per row. Tabs expand to the
// next multiple of tabWidth.
func BuildLayout(text string, tabWidth, gutterWidth int) Layout {
	if tabWidth <= 0 {
		tabWidth = defaultTabWidth
	}
	l := Layout{GutterWidth: maxInt(gutterWidth, 0), TabWidth: tabWidth}

	start := 0
	for {
		end := len(text)
		if i := strings.IndexByte(text[start:], '\n'); i >= 0 {
			end = start + i
		}
		l.Lines = append(l.Lines, layoutLine(text, start, end, tabWidth))
		if end == len(text) {
			break
		}
		start = end + 1
	}
	return l
}

func layoutLine(text string, start, end, tabWidth int) LayoutLine {
	line := LayoutLine{Start: start, End: end}
	off := start
	for _, c := range grapheme.Split(text[start:end]) {
		w := graphemeCellWidth(c, line.Width, tabWidth)
		line.Cells = append(line.Cells, LayoutCell{
			Start: off,
			End:   off + len(c),
			X:     line.Width,
			Width: w,
			Text:  c,
		})
		line.Width += w
		off += len(c)
	}
	return line
}

// LineForOffset returns the index of the line containing off.
func (l Layout) LineForOffset(off int) int {
	if len(l.Lines) == 0 {
		return 0
	}
	lo, hi := 0, len(l.Lines)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if l.Lines[mid].Start <= off {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

// OffsetAt maps a screen cell to the nearest document offset. x counts from
// the left edge including the gutter; row is a document line index. Out of
// range coordinates clamp.
func (l Layout) OffsetAt(x, row int) int {
	if len(l.Lines) == 0 {
		return 0
	}
	if row < 0 {
		return 0
	}
	if row >= len(l.Lines) {
		return l.Lines[len(l.Lines)-1].End
	}
	line := l.Lines[row]
	x -= l.GutterWidth
	if x <= 0 {
		return line.Start
	}
	for _, c := range line.Cells {
		if x >= c.X+c.Width {
			continue
		}
		// Left half of a cluster lands before it.
		if (x-c.X)*2 < c.Width {
			return c.Start
		}
		return c.End
	}
	return line.End
}

// PointAt returns the screen cell (including the gutter) and line index at
// which off is drawn. Offsets inside a cluster map to the cluster's cell.
func (l Layout) PointAt(off int) (x, row int) {
	if len(l.Lines) == 0 {
		return l.GutterWidth, 0
	}
	row = l.LineForOffset(off)
	line := l.Lines[row]
	for _, c := range line.Cells {
		if off < c.End {
			return l.GutterWidth + c.X, row
		}
	}
	return l.GutterWidth + line.Width, row
}
