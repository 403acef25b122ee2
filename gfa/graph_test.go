package gfa

import "testing"

func TestGraphAddRejectsDuplicateSegment(t *testing.T) {
	g, err := ReadString("S\tA\tACGT\n", ParseOptions{Version: GFA1, Validate: true})
	if err != nil {
		t.Fatalf("ReadString: %v", err)
	}
	dup, err := newSegment(GFA1, []string{"A", "TTTT"})
	if err != nil {
		t.Fatalf("newSegment: %v", err)
	}
	if err := g.Add(dup); err == nil {
		t.Errorf("Add(duplicate segment) succeeded, want NotUniqueError")
	}
}

func TestGraphDeleteSegmentStripsFromGroup(t *testing.T) {
	input := "S\t1\t4\tACGT\n" +
		"S\t2\t4\tACGT\n" +
		"S\t3\t4\tACGT\n" +
		"O\tpath1\t1+ 2+ 3+\n"
	g, err := ReadString(input, ParseOptions{Version: GFA2, Validate: true})
	if err != nil {
		t.Fatalf("ReadString: %v", err)
	}
	if err := g.DeleteSegment("2"); err != nil {
		t.Fatalf("DeleteSegment(2): %v", err)
	}
	l, ok := g.Line("path1")
	if !ok {
		t.Fatalf("group path1 was deleted, want it stripped not removed")
	}
	og, ok := l.(*OrderedGroup)
	if !ok {
		t.Fatalf("path1 is a %T, want *OrderedGroup", l)
	}
	items, err := og.Items()
	if err != nil {
		t.Fatalf("Items: %v", err)
	}
	if len(items) != 2 {
		t.Errorf("len(items) = %d, want 2", len(items))
	}
	for _, it := range items {
		if it.Name == "2" {
			t.Errorf("group still references deleted segment 2")
		}
	}
}

func TestGraphLinksOfIsIndependentCopy(t *testing.T) {
	g, err := ReadString("S\tA\t*\nS\tB\t*\nL\tA\t+\tB\t+\t1M\n", ParseOptions{Version: GFA1, Validate: true})
	if err != nil {
		t.Fatalf("ReadString: %v", err)
	}
	links := g.LinksOf(SegmentEnd{Name: "A", End: EndE})
	links[0] = nil
	if g.LinksOf(SegmentEnd{Name: "A", End: EndE})[0] == nil {
		t.Errorf("mutating the slice returned by LinksOf corrupted the index")
	}
}

func TestGraphSegmentsSortedByName(t *testing.T) {
	g, err := ReadString("S\tC\t*\nS\tA\t*\nS\tB\t*\n", ParseOptions{Version: GFA1, Validate: true})
	if err != nil {
		t.Fatalf("ReadString: %v", err)
	}
	var names []string
	for _, s := range g.Segments() {
		names = append(names, s.Name())
	}
	want := []string{"A", "B", "C"}
	for i, n := range want {
		if names[i] != n {
			t.Errorf("Segments()[%d] = %q, want %q", i, names[i], n)
		}
	}
}
