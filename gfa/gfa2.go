package gfa

import "strings"

// SegmentRef is a GFA2 oriented reference to a segment: the identifier
// and orientation are encoded as a single token ("utg1+") rather than
// as separate fields the way GFA1's L and C records do it. HasOrient
// is false for group items that reference another group by bare id,
// which carries no orientation.
type SegmentRef struct {
	Name      string
	Orient    Orientation
	HasOrient bool
}

func (s SegmentRef) String() string {
	if !s.HasOrient {
		return s.Name
	}
	return s.Name + s.Orient.String()
}

func parseSegmentRef(tok string) (SegmentRef, error) {
	if len(tok) < 2 {
		return SegmentRef{}, formatErrorf("%q is not a valid GFA2 segment reference", tok)
	}
	orientChar := tok[len(tok)-1:]
	if orientChar != "+" && orientChar != "-" {
		return SegmentRef{}, formatErrorf("%q is not a valid GFA2 segment reference (missing orientation)", tok)
	}
	return SegmentRef{Name: tok[:len(tok)-1], Orient: Orientation(orientChar == "-"), HasOrient: true}, nil
}

// Edge is a GFA2 "E" line: a generalized link between two oriented
// segment regions, with explicit position ranges (spec.md §3).
type Edge struct {
	*Record
}

func newEdge(version Version, positional []string) (*Edge, error) {
	schema, _ := lookupSchema(RecordEdge, VersionUnknown)
	if len(positional) != len(schema.Fields) {
		return nil, formatErrorf("E record has %d fields, want %d", len(positional), len(schema.Fields))
	}
	return &Edge{Record: newRecord(RecordEdge, version, schema, positional)}, nil
}

// ID returns the edge's identifier, and false if it is "*" (anonymous).
func (e *Edge) ID() (string, bool) {
	raw, _ := e.rawField("id")
	if raw == "*" {
		return "", false
	}
	return raw, true
}

// Identity returns the edge's id, and false if it is anonymous ("*").
func (e *Edge) Identity() (string, bool) { return e.ID() }

func (e *Edge) Sid1() (SegmentRef, error) { raw, _ := e.rawField("sid1"); return parseSegmentRef(raw) }
func (e *Edge) Sid2() (SegmentRef, error) { raw, _ := e.rawField("sid2"); return parseSegmentRef(raw) }
func (e *Edge) Alignment() CIGAR          { v, _ := e.get("alignment"); return v.(CIGAR) }

func (e *Edge) references() []string {
	s1, err1 := e.Sid1()
	s2, err2 := e.Sid2()
	var out []string
	if err1 == nil {
		out = append(out, s1.Name)
	}
	if err2 == nil {
		out = append(out, s2.Name)
	}
	return out
}

func (e *Edge) renameReference(old, new string) {
	renameSegmentRefField(e.Record, "sid1", old, new)
	renameSegmentRefField(e.Record, "sid2", old, new)
}

func renameSegmentRefField(r *Record, field, old, new string) {
	raw, ok := r.rawField(field)
	if !ok {
		return
	}
	ref, err := parseSegmentRef(raw)
	if err != nil || ref.Name != old {
		return
	}
	ref.Name = new
	r.setRawField(field, ref.String())
}

// Fragment is a GFA2 "F" line: one external read aligned against a
// segment's internal coordinate range (spec.md §3).
type Fragment struct {
	*Record
}

func newFragment(version Version, positional []string) (*Fragment, error) {
	schema, _ := lookupSchema(RecordFragment, VersionUnknown)
	if len(positional) != len(schema.Fields) {
		return nil, formatErrorf("F record has %d fields, want %d", len(positional), len(schema.Fields))
	}
	return &Fragment{Record: newRecord(RecordFragment, version, schema, positional)}, nil
}

func (f *Fragment) Sid() string  { v, _ := f.rawField("sid"); return v }
func (f *Fragment) ExtID() string { v, _ := f.rawField("extid"); return v }

func (f *Fragment) references() []string { return []string{f.Sid()} }

func (f *Fragment) renameReference(old, new string) {
	if f.Sid() == old {
		f.setRawField("sid", new)
	}
}

// Gap is a GFA2 "G" line: an estimated distance between two segment
// ends with no sequence evidence (spec.md §3).
type Gap struct {
	*Record
}

func newGap(version Version, positional []string) (*Gap, error) {
	schema, _ := lookupSchema(RecordGap, VersionUnknown)
	if len(positional) != len(schema.Fields) {
		return nil, formatErrorf("G record has %d fields, want %d", len(positional), len(schema.Fields))
	}
	return &Gap{Record: newRecord(RecordGap, version, schema, positional)}, nil
}

func (g *Gap) ID() (string, bool) {
	raw, _ := g.rawField("id")
	if raw == "*" {
		return "", false
	}
	return raw, true
}

// Identity returns the gap's id, and false if it is anonymous ("*").
func (g *Gap) Identity() (string, bool) { return g.ID() }

func (g *Gap) Sid1() (SegmentRef, error) { raw, _ := g.rawField("sid1"); return parseSegmentRef(raw) }
func (g *Gap) Sid2() (SegmentRef, error) { raw, _ := g.rawField("sid2"); return parseSegmentRef(raw) }

func (g *Gap) references() []string {
	s1, err1 := g.Sid1()
	s2, err2 := g.Sid2()
	var out []string
	if err1 == nil {
		out = append(out, s1.Name)
	}
	if err2 == nil {
		out = append(out, s2.Name)
	}
	return out
}

func (g *Gap) renameReference(old, new string) {
	renameSegmentRefField(g.Record, "sid1", old, new)
	renameSegmentRefField(g.Record, "sid2", old, new)
}

// group is shared plumbing for the GFA2 "O" (ordered) and "U"
// (unordered) group records: both carry an optional identifier and a
// space-separated list of item references, differing only in whether
// that list's order is significant.
type group struct {
	*Record
}

func (g *group) ID() (string, bool) {
	raw, _ := g.rawField("id")
	if raw == "*" {
		return "", false
	}
	return raw, true
}

// Identity returns the group's id, and false if it is anonymous ("*").
func (g *group) Identity() (string, bool) { return g.ID() }

// Items parses the space-separated item list into oriented references.
// An item with no trailing +/- (a reference to another group, whose id
// has no orientation) keeps Orient at its zero value.
func (g *group) Items() ([]SegmentRef, error) {
	raw, _ := g.rawField("items")
	if raw == "" {
		return nil, nil
	}
	toks := strings.Fields(raw)
	out := make([]SegmentRef, 0, len(toks))
	for _, tok := range toks {
		last := tok[len(tok)-1]
		if len(tok) >= 2 && (last == '+' || last == '-') {
			ref, err := parseSegmentRef(tok)
			if err != nil {
				return nil, err
			}
			out = append(out, ref)
		} else {
			out = append(out, SegmentRef{Name: tok})
		}
	}
	return out, nil
}

func (g *group) SetItems(items []SegmentRef) {
	toks := make([]string, len(items))
	for i, it := range items {
		toks[i] = it.String()
	}
	g.setRawField("items", strings.Join(toks, " "))
}

func (g *group) references() []string {
	items, err := g.Items()
	if err != nil {
		return nil
	}
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Name
	}
	return out
}

func (g *group) renameReference(old, new string) {
	items, err := g.Items()
	if err != nil {
		return
	}
	changed := false
	for i, it := range items {
		if it.Name == old {
			items[i].Name = new
			changed = true
		}
	}
	if changed {
		g.SetItems(items)
	}
}

// OrderedGroup is a GFA2 "O" line.
type OrderedGroup struct{ group }

func newOrderedGroup(version Version, positional []string) (*OrderedGroup, error) {
	schema, _ := lookupSchema(RecordOrderedGroup, VersionUnknown)
	if len(positional) != len(schema.Fields) {
		return nil, formatErrorf("O record has %d fields, want %d", len(positional), len(schema.Fields))
	}
	return &OrderedGroup{group{Record: newRecord(RecordOrderedGroup, version, schema, positional)}}, nil
}

// UnorderedGroup is a GFA2 "U" line.
type UnorderedGroup struct{ group }

func newUnorderedGroup(version Version, positional []string) (*UnorderedGroup, error) {
	schema, _ := lookupSchema(RecordUnorderedGroup, VersionUnknown)
	if len(positional) != len(schema.Fields) {
		return nil, formatErrorf("U record has %d fields, want %d", len(positional), len(schema.Fields))
	}
	return &UnorderedGroup{group{Record: newRecord(RecordUnorderedGroup, version, schema, positional)}}, nil
}
