package editor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/zeno/buffer"
	"github.com/iw2rmb/zeno/markdown"
)

// cellStyleKey identifies the decoration layers applied to a cell. Adjacent
// cells with equal keys are rendered as one run.
type cellStyleKey struct {
	kind     int
	selected bool
	marked   bool
	cursor   bool
}

type renderState struct {
	style    Style
	kinds    []int
	sel      buffer.Range
	marked   buffer.Range
	isMarked bool
	cursor   int
	focused  bool
	tabWidth int
}

func gutterDigits(lineCount int) int {
	return len(strconv.Itoa(maxInt(lineCount, 1)))
}

// renderContent rebuilds m.layout and returns the full document view.
func (m *Model) renderContent() string {
	if m.buf == nil {
		return ""
	}
	text := m.buf.Text()

	digits := 0
	gutterWidth := 0
	if m.cfg.ShowLineNums {
		digits = gutterDigits(strings.Count(text, "\n") + 1)
		gutterWidth = digits + 1
	}
	m.layout = BuildLayout(text, m.cfg.TabWidth, gutterWidth)

	rs := renderState{
		style:    m.cfg.Style,
		kinds:    resolveKinds(len(text), m.highlightSpans(text)),
		sel:      m.buf.SelectionRange(),
		cursor:   m.buf.Cursor(),
		focused:  m.focused,
		tabWidth: m.cfg.TabWidth,
	}
	rs.marked, rs.isMarked = m.buf.MarkedRange()

	cursorRow := m.layout.LineForOffset(rs.cursor)
	out := make([]string, 0, len(m.layout.Lines))
	for row, line := range m.layout.Lines {
		var sb strings.Builder
		if m.cfg.ShowLineNums {
			numStyle := m.cfg.Style.LineNum
			if m.focused && row == cursorRow {
				numStyle = m.cfg.Style.LineNumActive
			}
			sb.WriteString(numStyle.Render(fmt.Sprintf("%*d", digits, row+1)))
			sb.WriteString(m.cfg.Style.Gutter.Render(" "))
		}
		sb.WriteString(rs.renderLine(line))
		out = append(out, sb.String())
	}
	return strings.Join(out, "\n")
}

func (m *Model) highlightSpans(text string) []markdown.Span {
	if m.cfg.Highlight == nil {
		m.hlText, m.hlSpans = "", nil
		return nil
	}
	if m.hlValid && m.hlText == text {
		return m.hlSpans
	}
	m.hlText = text
	m.hlSpans = m.cfg.Highlight(text)
	m.hlValid = true
	return m.hlSpans
}

func (rs renderState) keyFor(c LayoutCell) cellStyleKey {
	k := cellStyleKey{kind: noKind}
	if c.Start >= 0 && c.Start < len(rs.kinds) {
		k.kind = rs.kinds[c.Start]
	}
	k.selected = !rs.sel.IsEmpty() && c.Start >= rs.sel.Start && c.Start < rs.sel.End
	k.marked = rs.isMarked && c.Start >= rs.marked.Start && c.Start < rs.marked.End
	k.cursor = rs.focused && rs.cursor >= c.Start && rs.cursor < c.End
	return k
}

func (rs renderState) styleFor(k cellStyleKey) lipgloss.Style {
	st := rs.style.Text
	if k.kind != noKind {
		st = rs.style.forKind(markdown.Kind(k.kind)).Inherit(st)
	}
	if k.selected {
		st = rs.style.Selection.Inherit(st)
	}
	if k.marked {
		st = rs.style.Marked.Inherit(st)
	}
	if k.cursor {
		st = rs.style.Cursor.Inherit(st)
	}
	return st
}

func (rs renderState) renderLine(line LayoutLine) string {
	var (
		sb     strings.Builder
		run    strings.Builder
		runKey cellStyleKey
		inRun  bool
	)
	flush := func() {
		if inRun && run.Len() > 0 {
			sb.WriteString(rs.styleFor(runKey).Render(run.String()))
		}
		run.Reset()
		inRun = false
	}

	for _, c := range line.Cells {
		k := rs.keyFor(c)
		if inRun && k != runKey {
			flush()
		}
		runKey, inRun = k, true
		run.WriteString(displayText(c))
	}
	flush()

	// Cursor at EOL, and an empty line inside a selection, are rendered as a
	// 1-cell placeholder space.
	emptySelected := len(line.Cells) == 0 && rs.sel.Start <= line.Start && line.End < rs.sel.End
	eolCursor := rs.focused && rs.cursor == line.End
	if eolCursor || emptySelected {
		k := cellStyleKey{kind: noKind, selected: emptySelected, cursor: eolCursor}
		sb.WriteString(rs.styleFor(k).Render(" "))
	}
	return sb.String()
}

func displayText(c LayoutCell) string {
	if c.Text == "\t" {
		return strings.Repeat(" ", c.Width)
	}
	return c.Text
}
