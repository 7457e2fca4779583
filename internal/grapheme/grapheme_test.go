package grapheme

import "testing"

func TestSplit_CombiningAndEmoji(t *testing.T) {
	text := "\u00e9\U0001F44D\U0001F3FDa"

	got := Split(text)
	want := []string{"\u00e9", "\U0001F44D\U0001F3FD", "a"}
	if len(got) != len(want) {
		t.Fatalf("split len=%d, want %d (%q)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("split[%d]=%q, want %q", i, got[i], want[i])
		}
	}
	if Split("") != nil {
		t.Fatalf("empty text must have no clusters")
	}
}

func TestBoundaries_StepWholeClusters(t *testing.T) {
	text := "ae\u0301b" // a, e+combining acute (3 bytes), b
	cases := []struct {
		name string
		fn   func(string, int) int
		off  int
		want int
	}{
		{name: "next-from-start", fn: NextBoundary, off: 0, want: 1},
		{name: "next-over-combining", fn: NextBoundary, off: 1, want: 4},
		{name: "next-from-inside-cluster", fn: NextBoundary, off: 2, want: 4},
		{name: "next-at-end", fn: NextBoundary, off: 5, want: 5},
		{name: "next-past-end", fn: NextBoundary, off: 99, want: 5},
		{name: "prev-from-end", fn: PrevBoundary, off: 5, want: 4},
		{name: "prev-over-combining", fn: PrevBoundary, off: 4, want: 1},
		{name: "prev-from-inside-cluster", fn: PrevBoundary, off: 3, want: 1},
		{name: "prev-at-start", fn: PrevBoundary, off: 0, want: 0},
		{name: "prev-negative", fn: PrevBoundary, off: -3, want: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.fn(text, tc.off); got != tc.want {
				t.Fatalf("got %d, want %d", got, tc.want)
			}
		})
	}
}

func TestIsSpace(t *testing.T) {
	if !IsSpace(" ") || !IsSpace("\t") {
		t.Fatalf("expected whitespace clusters")
	}
	if IsSpace("") || IsSpace("a") || IsSpace(" a") || IsSpace(" \u0301") {
		t.Fatalf("unexpected whitespace classification")
	}
}
