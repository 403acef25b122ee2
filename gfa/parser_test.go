package gfa

import "testing"

func TestReadStringHeaderVersionSniff(t *testing.T) {
	g, err := ReadString("H\tVN:Z:2.0\nS\t1\t4\tACGT\n", NewParseOptions())
	if err != nil {
		t.Fatalf("ReadString: %v", err)
	}
	if g.Version() != GFA2 {
		t.Errorf("Version() = %q, want %q", g.Version(), GFA2)
	}
}

func TestReadStringInfersVersionFromRecordType(t *testing.T) {
	g, err := ReadString("E\te1\t1+\t2+\t0\t4\t0\t4\t4M\n"+
		"S\t1\t4\tACGT\nS\t2\t4\tACGT\n", NewParseOptions())
	if err != nil {
		t.Fatalf("ReadString: %v", err)
	}
	if g.Version() != GFA2 {
		t.Errorf("Version() = %q, want %q", g.Version(), GFA2)
	}
}

func TestReadStringInfersGFA1FromHeaderlessSegment(t *testing.T) {
	g, err := ReadString("S\tA\tACGT\nS\tB\tTTTT\nL\tA\t+\tB\t+\t2M\n", NewParseOptions())
	if err != nil {
		t.Fatalf("ReadString: %v", err)
	}
	if g.Version() != GFA1 {
		t.Errorf("Version() = %q, want %q", g.Version(), GFA1)
	}
	if len(g.Segments()) != 2 {
		t.Errorf("len(Segments()) = %d, want 2", len(g.Segments()))
	}
}

func TestReadStringInfersGFA2FromHeaderlessSegment(t *testing.T) {
	g, err := ReadString("S\t1\t4\tACGT\nS\t2\t4\tTTTT\n", NewParseOptions())
	if err != nil {
		t.Fatalf("ReadString: %v", err)
	}
	if g.Version() != GFA2 {
		t.Errorf("Version() = %q, want %q", g.Version(), GFA2)
	}
	if len(g.Segments()) != 2 {
		t.Errorf("len(Segments()) = %d, want 2", len(g.Segments()))
	}
}

func TestReadStringRejectsMalformedField(t *testing.T) {
	_, err := ReadString("S\tA\t!!!notaseq!!!\n", ParseOptions{Version: GFA1, Validate: true})
	if err == nil {
		t.Fatalf("expected a format error for an invalid sequence field")
	}
}

func TestReadStringSkipsValidationWhenDisabled(t *testing.T) {
	_, err := ReadString("S\tA\t!!!notaseq!!!\n", ParseOptions{Version: GFA1, Validate: false})
	if err != nil {
		t.Fatalf("ReadString with Validate=false: %v", err)
	}
}

func TestCommentLineKeepsTabsVerbatim(t *testing.T) {
	g, err := ReadString("#\thello\tworld\n", NewParseOptions())
	if err != nil {
		t.Fatalf("ReadString: %v", err)
	}
	lines := g.Lines()
	if len(lines) != 1 {
		t.Fatalf("len(Lines()) = %d, want 1", len(lines))
	}
	if got := lines[0].String(); got != "#\thello\tworld" {
		t.Errorf("comment.String() = %q, want %q", got, "#\thello\tworld")
	}
}

func TestReadStringRejectsDuplicateSegmentName(t *testing.T) {
	_, err := ReadString("S\tA\tACGT\nS\tA\tTTTT\n", ParseOptions{Version: GFA1, Validate: true})
	if err == nil {
		t.Fatalf("expected a NotUniqueError for a duplicate segment name")
	}
}

func TestReadStringRejectsDuplicateTag(t *testing.T) {
	_, err := ReadString("S\tA\tACGT\tLN:i:4\tLN:i:5\n", ParseOptions{Version: GFA1, Validate: true})
	if err == nil {
		t.Fatalf("expected an InconsistencyError for a duplicate tag")
	}
}
