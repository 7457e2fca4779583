package markdown

import (
	"context"
	"testing"
	"unicode/utf8"
)

func assertSpansWellFormed(t *testing.T, source string, spans []Span) {
	t.Helper()
	for i, sp := range spans {
		if sp.Start < 0 || sp.Start >= sp.End || sp.End > len(source) {
			t.Fatalf("span %d %#v out of bounds for len %d", i, sp, len(source))
		}
		if !utf8.RuneStart(source[sp.Start]) || (sp.End < len(source) && !utf8.RuneStart(source[sp.End])) {
			t.Fatalf("span %d %#v splits a character", i, sp)
		}
		if i > 0 {
			prev := spans[i-1]
			if prev.Start > sp.Start || (prev.Start == sp.Start && prev.End > sp.End) {
				t.Fatalf("spans not sorted: %#v before %#v", prev, sp)
			}
		}
	}
}

func hasSpan(spans []Span, kind Kind, text, source string) bool {
	for _, sp := range spans {
		if sp.Kind == kind && source[sp.Start:sp.End] == text {
			return true
		}
	}
	return false
}

func TestHighlight_EmptyInput(t *testing.T) {
	if got := Highlight(""); got != nil {
		t.Fatalf("expected nil spans, got %#v", got)
	}
}

func TestHighlight_SpansAreWithinBoundsAndSorted(t *testing.T) {
	sources := []string{
		"# Title\n\nHello **world**.\n",
		"Plain text without markup",
		"- item *one*\n- item `two`\n\n> quote\n",
		"# Ünïcödé\n\nwörds **stärk** and [link](https://example.com) 😀\n",
		"```go\nfunc main() {}\n```\n",
	}
	for _, src := range sources {
		assertSpansWellFormed(t, src, Highlight(src))
	}
}

func TestHighlight_ClassifiesCommonConstructs(t *testing.T) {
	src := "# Title\n\nHello **world** and *you* with `code` and [site](http://x.y).\n"
	spans := Highlight(src)

	var heading bool
	for _, sp := range spans {
		if sp.Kind == Heading && sp.Start == 0 {
			heading = true
		}
	}
	if !heading {
		t.Fatalf("expected a heading span at offset 0, got %#v", spans)
	}
	if !hasSpan(spans, Strong, "**world**", src) {
		t.Fatalf("expected strong span, got %#v", spans)
	}
	if !hasSpan(spans, Emphasis, "*you*", src) {
		t.Fatalf("expected emphasis span, got %#v", spans)
	}
	if !hasSpan(spans, Code, "`code`", src) {
		t.Fatalf("expected code span, got %#v", spans)
	}
	if !hasSpan(spans, Link, "[site](http://x.y)", src) {
		t.Fatalf("expected link span, got %#v", spans)
	}
}

func TestHighlightContext_CancelledYieldsNoSpans(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if got := HighlightContext(ctx, "# Title\n"); len(got) != 0 {
		t.Fatalf("expected no spans for a cancelled parse, got %#v", got)
	}
}

func TestMakeSpan_RejectsInvalidRanges(t *testing.T) {
	src := "aé"
	cases := []struct {
		name       string
		start, end int
		ok         bool
	}{
		{name: "valid", start: 0, end: 3, ok: true},
		{name: "empty", start: 1, end: 1},
		{name: "reversed", start: 2, end: 1},
		{name: "past-end", start: 0, end: 4},
		{name: "negative", start: -1, end: 1},
		{name: "mid-char-start", start: 2, end: 3},
		{name: "mid-char-end", start: 0, end: 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, ok := makeSpan(tc.start, tc.end, Other, src); ok != tc.ok {
				t.Fatalf("ok=%v, want %v", ok, tc.ok)
			}
		})
	}
}

func TestKindForNodeAndString(t *testing.T) {
	if k, ok := KindForNode("strong_emphasis"); !ok || k != Strong {
		t.Fatalf("strong_emphasis => %v, %v", k, ok)
	}
	if _, ok := KindForNode("paragraph"); ok {
		t.Fatalf("paragraph should not be classified")
	}
	names := map[Kind]string{Heading: "heading", Emphasis: "emphasis", Strong: "strong", Code: "code", Link: "link", Punctuation: "punctuation", Other: "other"}
	for k, want := range names {
		if got := k.String(); got != want {
			t.Fatalf("%d.String()=%q, want %q", k, got, want)
		}
	}
}
