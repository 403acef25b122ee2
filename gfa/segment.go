package gfa

// Segment is a node carrying biological sequence data, unique by name
// across segments and named paths/groups (spec.md §3). Grounded on the
// teacher's Fragment type (internal/frag/frag.go: ID + Seq), generalized
// with the length/count tags and the GFA1/GFA2 field-count difference.
type Segment struct {
	*Record
}

func newSegment(version Version, positional []string) (*Segment, error) {
	schema, ok := lookupSchema(RecordSegment, version)
	if !ok {
		return nil, versionErrorf("no segment schema for version %q", version)
	}
	if len(positional) != len(schema.Fields) {
		return nil, formatErrorf("S record has %d fields, want %d for %s", len(positional), len(schema.Fields), versionLabel(version))
	}
	return &Segment{Record: newRecord(RecordSegment, version, schema, positional)}, nil
}

func newVirtualSegment(name string) *Segment {
	schema, _ := lookupSchema(RecordSegment, GFA1)
	r := newRecord(RecordSegment, VersionUnknown, schema, []string{name, "*"})
	r.virtual = true
	return &Segment{Record: r}
}

// Name returns the segment's identifying name.
func (s *Segment) Name() string {
	v, _ := s.rawField("name")
	return v
}

// Sequence returns the segment's sequence, and false if it is the "*"
// placeholder.
func (s *Segment) Sequence() (string, bool) {
	raw, _ := s.rawField("sequence")
	if raw == "*" {
		return "", false
	}
	return raw, true
}

// SetSequence sets the sequence, enforcing the LN/sequence-length
// invariant of spec.md §3 if an LN tag is already present (GFA1) or the
// length field is already set (GFA2).
func (s *Segment) SetSequence(seq string) error {
	if ln, ok := s.LN(); ok && seq != "*" && len(seq) != ln {
		return inconsistencyErrorf("sequence length %d does not match LN %d", len(seq), ln)
	}
	return s.Set("sequence", seq)
}

// LN returns the segment's length: the GFA2 positional length field,
// or the GFA1 LN tag. Either missing reports ok=false.
func (s *Segment) LN() (int, bool) {
	if v, ok := s.get("length"); ok {
		return v.(int), true
	}
	if v, ok := s.get("LN"); ok {
		return v.(int), true
	}
	return 0, false
}

func (s *Segment) countTag(name string) (int, bool) {
	v, ok := s.get(name)
	if !ok {
		return 0, false
	}
	return v.(int), true
}

// RC, KC, FC read the corresponding count tags.
func (s *Segment) RC() (int, bool) { return s.countTag("RC") }
func (s *Segment) KC() (int, bool) { return s.countTag("KC") }
func (s *Segment) FC() (int, bool) { return s.countTag("FC") }

// CN returns the segment's computed copy number tag, if set.
func (s *Segment) CN() (int, bool) { return s.countTag("cn") }

// OriginalSegment returns the "or" tag set by Multiply on copies, per
// spec.md §4.4.
func (s *Segment) OriginalSegment() (string, bool) {
	v, ok := s.get("or")
	if !ok {
		return "", false
	}
	return v.(string), true
}

func (s *Segment) rename(newName string) {
	s.setRawField("name", newName)
}

// Identity returns the segment's name; segments always have identity.
func (s *Segment) Identity() (string, bool) { return s.Name(), true }

// Clone returns a deep, unattached copy (spec.md §4.2 clone semantics).
func (s *Segment) Clone() *Segment { return &Segment{Record: s.Record.clone()} }
