package editor

import (
	"sort"

	"github.com/iw2rmb/zeno/markdown"
)

const noKind = -1

// resolveKinds assigns at most one highlight kind to every byte of a
// text of length n. Where spans overlap the narrower one wins; ties keep the
// span that sorts later in input order.
func resolveKinds(n int, spans []markdown.Span) []int {
	kinds := make([]int, n)
	for i := range kinds {
		kinds[i] = noKind
	}
	if len(spans) == 0 {
		return kinds
	}

	ordered := append([]markdown.Span(nil), spans...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].End-ordered[i].Start > ordered[j].End-ordered[j].Start
	})
	for _, sp := range ordered {
		start := clampInt(sp.Start, 0, n)
		end := clampInt(sp.End, 0, n)
		for i := start; i < end; i++ {
			kinds[i] = int(sp.Kind)
		}
	}
	return kinds
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
