package markdown

import (
	"context"
	"sort"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"
	tsmarkdown "github.com/smacker/go-tree-sitter/markdown"
)

// Highlight returns the highlight spans of source sorted by (Start, End).
// Nested constructs may produce overlapping spans.
func Highlight(source string) []Span {
	return HighlightContext(context.Background(), source)
}

// HighlightContext is Highlight with a cancellable parse. A cancelled or
// failed parse yields nil.
func HighlightContext(ctx context.Context, source string) []Span {
	if source == "" || ctx.Err() != nil {
		return nil
	}

	src := []byte(source)
	tree, err := tsmarkdown.ParseCtx(ctx, nil, src)
	if err != nil || tree == nil {
		return nil
	}

	var spans []Span
	if block := tree.BlockTree(); block != nil {
		spans = collectSpans(spans, block.RootNode(), source)
	}
	for _, inline := range tree.InlineTrees() {
		if inline == nil {
			continue
		}
		spans = collectSpans(spans, inline.RootNode(), source)
	}

	sortSpans(spans)
	return spans
}

func collectSpans(out []Span, node *sitter.Node, source string) []Span {
	if node == nil {
		return out
	}
	if kind, ok := KindForNode(node.Type()); ok {
		if sp, ok := makeSpan(int(node.StartByte()), int(node.EndByte()), kind, source); ok {
			out = append(out, sp)
		}
	}

	n := int(node.ChildCount())
	for i := 0; i < n; i++ {
		out = collectSpans(out, node.Child(i), source)
	}
	return out
}

// makeSpan rejects ranges that are empty, out of bounds, or that would split
// an encoded character.
func makeSpan(start, end int, kind Kind, source string) (Span, bool) {
	if start < 0 || start >= end || end > len(source) {
		return Span{}, false
	}
	if !utf8.RuneStart(source[start]) {
		return Span{}, false
	}
	if end < len(source) && !utf8.RuneStart(source[end]) {
		return Span{}, false
	}
	return Span{Start: start, End: end, Kind: kind}, true
}

func sortSpans(spans []Span) {
	sort.SliceStable(spans, func(i, j int) bool {
		if spans[i].Start != spans[j].Start {
			return spans[i].Start < spans[j].Start
		}
		return spans[i].End < spans[j].End
	})
}
