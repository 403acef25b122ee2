package gfa

import (
	"strings"
	"testing"
)

// These mirror the worked end-to-end scenarios: parse/serialize
// round-trip, delete cascade, multiply, linear merge, cut-link
// detection, and forward-reference promotion.

func TestScenarioTrivialRoundTrip(t *testing.T) {
	input := "H\tVN:Z:1.0\nS\tA\tACGT\tLN:i:4\nS\tB\tTT\nL\tA\t+\tB\t+\t2M\n"
	g, err := ReadString(input, NewParseOptions())
	if err != nil {
		t.Fatalf("ReadString: %v", err)
	}
	if got := g.ToS(); got != input {
		t.Errorf("round trip = %q, want %q", got, input)
	}
	a, err := g.SegmentBang("A")
	if err != nil {
		t.Fatalf("SegmentBang(A): %v", err)
	}
	if ln, ok := a.LN(); !ok || ln != 4 {
		t.Errorf("A.LN() = %d, %v, want 4, true", ln, ok)
	}
	if links := g.LinksOf(SegmentEnd{Name: "A", End: EndE}); len(links) != 1 {
		t.Errorf("len(links_of(A,E)) = %d, want 1", len(links))
	}
}

func TestScenarioDeleteCascade(t *testing.T) {
	g, err := ReadString("H\tVN:Z:1.0\nS\tA\tACGT\tLN:i:4\nS\tB\tTT\nL\tA\t+\tB\t+\t2M\n", NewParseOptions())
	if err != nil {
		t.Fatalf("ReadString: %v", err)
	}
	if err := g.DeleteSegment("A"); err != nil {
		t.Fatalf("DeleteSegment(A): %v", err)
	}
	if segs := g.Segments(); len(segs) != 1 {
		t.Errorf("len(Segments()) = %d, want 1", len(segs))
	}
	if links := g.LinksOf(SegmentEnd{Name: "B", End: EndB}); len(links) != 0 {
		t.Errorf("len(links_of(B,B)) = %d, want 0", len(links))
	}
}

func TestScenarioMultiply(t *testing.T) {
	input := "S\tX\t*\tLN:i:100\tRC:i:50\n" +
		"S\tN1\t*\n" +
		"S\tN2\t*\n" +
		"L\tX\t+\tN1\t+\t1M\n" +
		"L\tX\t+\tN2\t+\t1M\n"
	g, err := ReadString(input, ParseOptions{Version: GFA1, Validate: true})
	if err != nil {
		t.Fatalf("ReadString: %v", err)
	}
	siblings, err := g.Multiply("X", 2, MultiplyOptions{})
	if err != nil {
		t.Fatalf("Multiply: %v", err)
	}
	if len(siblings) != 2 {
		t.Fatalf("len(siblings) = %d, want 2", len(siblings))
	}
	names := map[string]bool{}
	for _, s := range siblings {
		names[s.Name()] = true
		rc, ok := s.RC()
		if !ok || rc != 25 {
			t.Errorf("%s.RC() = %d, %v, want 25, true", s.Name(), rc, ok)
		}
	}
	if !names["X"] || !names["Xa"] {
		t.Errorf("siblings = %v, want X and Xa", names)
	}
	var total int
	for _, end := range []EndType{EndB, EndE} {
		for _, name := range []string{"X", "Xa"} {
			total += len(g.LinksOf(SegmentEnd{Name: name, End: end}))
		}
	}
	if total != 4 {
		t.Errorf("total incident links across X, Xa = %d, want 4", total)
	}
}

func TestScenarioLinearMerge(t *testing.T) {
	// A-B-C, each LN 6, with 2M overlaps at both junctions: the merge
	// drops the first 2 bases of B and of C (spec.md §4.5 step 2).
	input := "S\tA\tACGTAC\tLN:i:6\n" +
		"S\tB\tTTGGAA\tLN:i:6\n" +
		"S\tC\tTTAAAA\tLN:i:6\n" +
		"L\tA\t+\tB\t+\t2M\n" +
		"L\tB\t+\tC\t+\t2M\n"
	g, err := ReadString(input, ParseOptions{Version: GFA1, Validate: true})
	if err != nil {
		t.Fatalf("ReadString: %v", err)
	}
	path := g.LinearPath("B")
	if len(path) != 3 {
		t.Fatalf("len(LinearPath(B)) = %d, want 3", len(path))
	}
	merged, err := g.MergeLinearPath(path, MergeOptions{})
	if err != nil {
		t.Fatalf("MergeLinearPath: %v", err)
	}
	const want = "ACGTACGGAAAAAA"
	seq, ok := merged.Sequence()
	if !ok || seq != want {
		t.Errorf("merged.Sequence() = %q, %v, want %q, true", seq, ok, want)
	}
	if ln, ok := merged.LN(); !ok || ln != len(want) {
		t.Errorf("merged.LN() = %d, %v, want %d, true", ln, ok, len(want))
	}
	if segs := g.Segments(); len(segs) != 1 {
		t.Errorf("len(Segments()) = %d, want 1", len(segs))
	}
}

func TestScenarioCutLink(t *testing.T) {
	input := "S\tA1\t*\nS\tA2\t*\nS\tA3\t*\n" +
		"S\tB1\t*\nS\tB2\t*\nS\tB3\t*\n" +
		"L\tA1\t+\tA2\t+\t1M\n" +
		"L\tA2\t+\tA3\t+\t1M\n" +
		"L\tA3\t+\tA1\t+\t1M\n" +
		"L\tA1\t+\tB1\t+\t1M\n" +
		"L\tB1\t+\tB2\t+\t1M\n" +
		"L\tB2\t+\tB3\t+\t1M\n" +
		"L\tB3\t+\tB1\t+\t1M\n"
	g, err := ReadString(input, ParseOptions{Version: GFA1, Validate: true})
	if err != nil {
		t.Fatalf("ReadString: %v", err)
	}
	var bridge, triangleEdge *Link
	for _, l := range g.LinksOf(SegmentEnd{Name: "A1", End: EndE}) {
		if l.To() == "B1" || l.From() == "B1" {
			bridge = l
		}
	}
	for _, l := range g.LinksOf(SegmentEnd{Name: "A1", End: EndE}) {
		if l != bridge {
			triangleEdge = l
		}
	}
	if bridge == nil || triangleEdge == nil {
		t.Fatalf("could not locate bridge/triangle edges")
	}
	if !g.CutLink(bridge) {
		t.Errorf("CutLink(bridge) = false, want true")
	}
	if g.CutLink(triangleEdge) {
		t.Errorf("CutLink(triangleEdge) = true, want false")
	}
}

func TestScenarioForwardReference(t *testing.T) {
	input := "L\ta\t+\tb\t+\t*\nS\ta\tACGT\nS\tb\tTTTT\n"
	g, err := ReadString(input, ParseOptions{Version: GFA1, Validate: true})
	if err != nil {
		t.Fatalf("ReadString: %v", err)
	}
	a, err := g.SegmentBang("a")
	if err != nil {
		t.Fatalf("SegmentBang(a): %v", err)
	}
	b, err := g.SegmentBang("b")
	if err != nil {
		t.Fatalf("SegmentBang(b): %v", err)
	}
	if a.IsVirtual() || b.IsVirtual() {
		t.Errorf("a or b still virtual after their S lines were parsed")
	}
	if links := g.LinksOf(SegmentEnd{Name: "a", End: EndE}); len(links) != 1 {
		t.Errorf("len(links_of(a,E)) = %d, want 1", len(links))
	}
	if links := g.LinksOf(SegmentEnd{Name: "b", End: EndB}); len(links) != 1 {
		t.Errorf("len(links_of(b,B)) = %d, want 1", len(links))
	}
}

func TestRenameInvariant(t *testing.T) {
	input := "S\ta\tACGT\nS\tb\tTTTT\nL\ta\t+\tb\t+\t1M\n"
	g, err := ReadString(input, ParseOptions{Version: GFA1, Validate: true})
	if err != nil {
		t.Fatalf("ReadString: %v", err)
	}
	before := g.ToS()
	if err := g.Rename("a", "z"); err != nil {
		t.Fatalf("Rename(a,z): %v", err)
	}
	for _, l := range g.Lines() {
		if lk, ok := l.(*Link); ok {
			if lk.From() == "a" || lk.To() == "a" {
				t.Errorf("link still references %q after rename", "a")
			}
		}
	}
	if err := g.Rename("z", "a"); err != nil {
		t.Fatalf("Rename(z,a): %v", err)
	}
	if after := g.ToS(); after != before {
		t.Errorf("rename round trip changed serialization:\nbefore: %q\nafter:  %q", before, after)
	}
}

func TestForwardReferenceNotYetVisible(t *testing.T) {
	g, err := ReadString("L\ta\t+\tb\t+\t*\n", ParseOptions{Version: GFA1, Validate: true})
	if err != nil {
		t.Fatalf("ReadString: %v", err)
	}
	if _, ok := g.Segment("a"); ok {
		t.Errorf("virtual segment a should not be visible via Segment() before promotion")
	}
	if !strings.Contains(g.ToS(), "L\ta\t+\tb\t+\t*") {
		t.Errorf("link line missing from serialized output")
	}
}
