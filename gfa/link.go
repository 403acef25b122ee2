package gfa

// Link is an oriented edge between two segment ends with an overlap
// (spec.md §3). Grounded on the teacher's Match type (start/end/strand
// on a template), generalized to a pair of oriented endpoints.
type Link struct {
	*Record
}

func newLink(version Version, positional []string) (*Link, error) {
	schema, _ := lookupSchema(RecordLink, VersionUnknown)
	if len(positional) != len(schema.Fields) {
		return nil, formatErrorf("L record has %d fields, want %d", len(positional), len(schema.Fields))
	}
	return &Link{Record: newRecord(RecordLink, version, schema, positional)}, nil
}

// From, To return the endpoint segment names.
func (l *Link) From() string { v, _ := l.rawField("from"); return v }
func (l *Link) To() string   { v, _ := l.rawField("to"); return v }

// FromOrient, ToOrient return the endpoint orientations.
func (l *Link) FromOrient() Orientation { v, _ := l.get("from_orient"); return v.(Orientation) }
func (l *Link) ToOrient() Orientation   { v, _ := l.get("to_orient"); return v.(Orientation) }

// Overlap returns the link's CIGAR overlap ("*" decodes to a
// placeholder CIGAR).
func (l *Link) Overlap() CIGAR {
	v, _ := l.get("overlap")
	return v.(CIGAR)
}

// Circular reports whether both endpoints name the same segment.
func (l *Link) Circular() bool { return l.From() == l.To() }

// FromEnd, ToEnd return the segment-end keys this link's two endpoints
// induce, per spec.md §3: the from endpoint leaves through the E end
// when forward and the B end when reverse; the to endpoint enters
// through the B end when forward and the E end when reverse.
func (l *Link) FromEnd() SegmentEnd {
	return SegmentEnd{Name: l.From(), End: exitEndTypeForOrientation(l.FromOrient())}
}

func (l *Link) ToEnd() SegmentEnd {
	return SegmentEnd{Name: l.To(), End: entryEndTypeForOrientation(l.ToOrient())}
}

// OtherEnd returns the segment end at the opposite side of this link
// from the given end, as that endpoint's own end key (not inverted).
func (l *Link) OtherEnd(from SegmentEnd) SegmentEnd {
	fromEnd, toEnd := l.FromEnd(), l.ToEnd()
	if fromEnd.Equal(from) {
		return toEnd
	}
	return fromEnd
}

func (l *Link) references() []string { return []string{l.From(), l.To()} }

func (l *Link) renameReference(old, new string) {
	if l.From() == old {
		l.setRawField("from", new)
	}
	if l.To() == old {
		l.setRawField("to", new)
	}
}

// Clone returns a deep, unattached copy (spec.md §4.2 clone semantics).
func (l *Link) Clone() *Link { return &Link{Record: l.Record.clone()} }
