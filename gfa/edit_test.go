package gfa

import "testing"

func TestRenameFailsOnCollision(t *testing.T) {
	g, err := ReadString("S\tA\t*\nS\tB\t*\n", ParseOptions{Version: GFA1, Validate: true})
	if err != nil {
		t.Fatalf("ReadString: %v", err)
	}
	if err := g.Rename("A", "B"); err == nil {
		t.Errorf("Rename(A,B) with B already taken succeeded, want NotUniqueError")
	}
}

func TestMultiplyFactorZeroDeletes(t *testing.T) {
	g, err := ReadString("S\tA\t*\nS\tB\t*\nL\tA\t+\tB\t+\t1M\n", ParseOptions{Version: GFA1, Validate: true})
	if err != nil {
		t.Fatalf("ReadString: %v", err)
	}
	if _, err := g.Multiply("A", 0, MultiplyOptions{}); err != nil {
		t.Fatalf("Multiply(A,0): %v", err)
	}
	if _, ok := g.Segment("A"); ok {
		t.Errorf("segment A still present after multiply by 0")
	}
}

func TestMultiplyFactorOneIsNoop(t *testing.T) {
	g, err := ReadString("S\tA\t*\n", ParseOptions{Version: GFA1, Validate: true})
	if err != nil {
		t.Fatalf("ReadString: %v", err)
	}
	siblings, err := g.Multiply("A", 1, MultiplyOptions{})
	if err != nil {
		t.Fatalf("Multiply(A,1): %v", err)
	}
	if len(siblings) != 1 || siblings[0].Name() != "A" {
		t.Errorf("Multiply(A,1) = %v, want [A]", siblings)
	}
}

func TestGenerateCopyNamesSkipsTaken(t *testing.T) {
	g, err := ReadString("S\tA\t*\nS\tAa\t*\n", ParseOptions{Version: GFA1, Validate: true})
	if err != nil {
		t.Fatalf("ReadString: %v", err)
	}
	names := g.generateCopyNames("A", 2)
	if len(names) != 2 {
		t.Fatalf("len(names) = %d, want 2", len(names))
	}
	if names[0] == "Aa" {
		t.Errorf("generateCopyNames reused the already-taken name %q", names[0])
	}
	for _, n := range names {
		if n == "Aa" {
			t.Errorf("generateCopyNames produced the already-taken name %q", n)
		}
	}
}

func TestIncrementAlphaCarries(t *testing.T) {
	tests := []struct{ in, want string }{
		{"a", "b"},
		{"z", "aa"},
		{"az", "ba"},
		{"zz", "aaa"},
	}
	for _, tt := range tests {
		if got := incrementAlpha(tt.in); got != tt.want {
			t.Errorf("incrementAlpha(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSelectDistributeEnd(t *testing.T) {
	tests := []struct {
		name             string
		degB, degE, cn   int
		equalOnly        bool
		wantEnd          EndType
		wantOk           bool
	}{
		{"E matches copy number", 5, 3, 3, false, EndE, true},
		{"B matches copy number", 3, 5, 3, false, EndB, true},
		{"equal-only refuses mismatch", 5, 5, 3, true, 0, false},
		{"B degree under 2 falls to E", 1, 5, 3, false, EndE, true},
		{"both under 2 gives up", 1, 1, 3, false, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			end, ok := SelectDistributeEnd(tt.degB, tt.degE, tt.cn, tt.equalOnly)
			if ok != tt.wantOk {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOk)
			}
			if ok && end != tt.wantEnd {
				t.Errorf("end = %v, want %v", end, tt.wantEnd)
			}
		})
	}
}

func TestPruneDeletesBelowThreshold(t *testing.T) {
	input := "S\tA\t*\tLN:i:100\tRC:i:10\n" + // coverage 0.1
		"S\tB\t*\tLN:i:100\tRC:i:80\n" // coverage 0.8
	g, err := ReadString(input, ParseOptions{Version: GFA1, Validate: true})
	if err != nil {
		t.Fatalf("ReadString: %v", err)
	}
	condemned, err := g.Prune("RC", 0.5)
	if err != nil {
		t.Fatalf("Prune: %v", err)
	}
	if len(condemned) != 1 || condemned[0] != "A" {
		t.Errorf("Prune condemned = %v, want [A]", condemned)
	}
	if _, ok := g.Segment("B"); !ok {
		t.Errorf("segment B was pruned, want it kept")
	}
}

func TestComputeAndApplyCopyNumbers(t *testing.T) {
	g, err := ReadString("S\tA\t*\tLN:i:100\tRC:i:300\n", ParseOptions{Version: GFA1, Validate: true})
	if err != nil {
		t.Fatalf("ReadString: %v", err)
	}
	if err := g.ComputeCopyNumbers("RC", 1.0); err != nil {
		t.Fatalf("ComputeCopyNumbers: %v", err)
	}
	a, _ := g.Segment("A")
	if cn, ok := a.CN(); !ok || cn != 3 {
		t.Fatalf("A.CN() = %d, %v, want 3, true", cn, ok)
	}
	if err := g.ApplyCopyNumbers(false); err != nil {
		t.Fatalf("ApplyCopyNumbers: %v", err)
	}
	if segs := g.Segments(); len(segs) != 3 {
		t.Errorf("len(Segments()) = %d, want 3", len(segs))
	}
}
