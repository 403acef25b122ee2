package gfa

import "testing"

func TestConnectivitySymbolIsLinear(t *testing.T) {
	tests := []struct {
		sym  ConnectivitySymbol
		want bool
	}{
		{ConnectivitySymbol{B: 1, E: 1}, true},
		{ConnectivitySymbol{B: 0, E: 1}, false},
		{ConnectivitySymbol{B: 2, E: 1}, false},
	}
	for _, tt := range tests {
		if got := tt.sym.IsLinear(); got != tt.want {
			t.Errorf("%v.IsLinear() = %v, want %v", tt.sym, got, tt.want)
		}
	}
}

func TestConnectivityDegreeSymbolManySentinel(t *testing.T) {
	g, err := ReadString(
		"S\tA\t*\nS\tB\t*\nS\tC\t*\nS\tD\t*\n"+
			"L\tA\t+\tB\t+\t1M\n"+
			"L\tA\t+\tC\t+\t1M\n"+
			"L\tA\t+\tD\t+\t1M\n",
		ParseOptions{Version: GFA1, Validate: true})
	if err != nil {
		t.Fatalf("ReadString: %v", err)
	}
	sym := g.Connectivity("A")
	if sym.String() != "0M" {
		t.Errorf("Connectivity(A).String() = %q, want %q", sym.String(), "0M")
	}
}

func TestConnectedComponents(t *testing.T) {
	g, err := ReadString(
		"S\tA\t*\nS\tB\t*\nS\tC\t*\nS\tD\t*\n"+
			"L\tA\t+\tB\t+\t1M\n"+
			"L\tC\t+\tD\t+\t1M\n",
		ParseOptions{Version: GFA1, Validate: true})
	if err != nil {
		t.Fatalf("ReadString: %v", err)
	}
	comps := g.ConnectedComponents()
	if len(comps) != 2 {
		t.Fatalf("len(ConnectedComponents()) = %d, want 2", len(comps))
	}
	for _, c := range comps {
		if len(c) != 2 {
			t.Errorf("component %v has %d members, want 2", c, len(c))
		}
	}
}

func TestCutSegment(t *testing.T) {
	// A - B - C: B is the sole path between A and C, so cutting it
	// disconnects the graph.
	g, err := ReadString(
		"S\tA\t*\nS\tB\t*\nS\tC\t*\n"+
			"L\tA\t+\tB\t+\t1M\n"+
			"L\tB\t+\tC\t+\t1M\n",
		ParseOptions{Version: GFA1, Validate: true})
	if err != nil {
		t.Fatalf("ReadString: %v", err)
	}
	if !g.CutSegment("B") {
		t.Errorf("CutSegment(B) = false, want true")
	}
	if g.CutSegment("A") {
		t.Errorf("CutSegment(A) = true, want false")
	}
}

func TestLinearPathsPartitionsGraph(t *testing.T) {
	g, err := ReadString(
		"S\tA\t*\nS\tB\t*\nS\tC\t*\nS\tD\t*\n"+
			"L\tA\t+\tB\t+\t1M\n"+
			"L\tB\t+\tC\t+\t1M\n",
		ParseOptions{Version: GFA1, Validate: true})
	if err != nil {
		t.Fatalf("ReadString: %v", err)
	}
	paths := g.LinearPaths()
	if len(paths) != 1 {
		t.Fatalf("len(LinearPaths()) = %d, want 1", len(paths))
	}
	if len(paths[0]) != 3 {
		t.Errorf("len(paths[0]) = %d, want 3", len(paths[0]))
	}
	// D is isolated (degree 0,0) and must not appear in any linear path.
	for _, os := range paths[0] {
		if os.Name == "D" {
			t.Errorf("isolated segment D incorrectly included in a linear path")
		}
	}
}
