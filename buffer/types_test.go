package buffer

import "testing"

func TestNormalizeRange(t *testing.T) {
	r := NormalizeRange(Range{Start: 5, End: 2})
	if r != (Range{Start: 2, End: 5}) {
		t.Fatalf("unexpected range: %#v", r)
	}

	r2 := NormalizeRange(r)
	if r2 != r {
		t.Fatalf("expected idempotent normalize: %#v != %#v", r2, r)
	}
}

func TestRange_LenAndContains(t *testing.T) {
	r := Range{Start: 4, End: 1}
	if got := r.Len(); got != 3 {
		t.Fatalf("len=%d, want 3", got)
	}
	if !r.Contains(1) || !r.Contains(3) || r.Contains(4) {
		t.Fatalf("contains must treat reversed ranges as [1,4)")
	}
	if !(Range{Start: 2, End: 2}).IsEmpty() {
		t.Fatalf("expected empty range")
	}
}

func TestClampRange(t *testing.T) {
	cases := []struct {
		name string
		in   Range
		n    int
		want Range
	}{
		{name: "inside", in: Range{Start: 1, End: 2}, n: 3, want: Range{Start: 1, End: 2}},
		{name: "negative", in: Range{Start: -4, End: 2}, n: 3, want: Range{Start: 0, End: 2}},
		{name: "past-end", in: Range{Start: 1, End: 9}, n: 3, want: Range{Start: 1, End: 3}},
		{name: "keeps-direction", in: Range{Start: 9, End: -1}, n: 3, want: Range{Start: 3, End: 0}},
		{name: "empty-content", in: Range{Start: 2, End: 5}, n: 0, want: Range{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClampRange(tc.in, tc.n); got != tc.want {
				t.Fatalf("got %#v, want %#v", got, tc.want)
			}
		})
	}
}
