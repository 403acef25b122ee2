package gfa

import "sort"

// Equal reports whether a and b are structurally equal: the same
// version and the same multiset of rendered lines, independent of
// insertion order (spec.md §8's round-trip law: "the graph built from
// T is also structurally equal to the graph built from
// serialize(parse(T))").
func Equal(a, b *Graph) bool {
	if a.Version() != b.Version() {
		return false
	}
	return sameMultiset(renderedLines(a), renderedLines(b))
}

func renderedLines(g *Graph) []string {
	out := make([]string, 0, len(g.lines))
	for _, l := range g.lines {
		out = append(out, l.String())
	}
	sort.Strings(out)
	return out
}

func sameMultiset(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
