package gfa

// EndType identifies one of the two attachment sites of a segment: the
// 5' side of its forward orientation (B) or the 3' side (E).
type EndType byte

// The two segment ends, per spec.md §3.
const (
	EndB EndType = 'B'
	EndE EndType = 'E'
)

// Other returns the opposite end.
func (e EndType) Other() EndType {
	if e == EndB {
		return EndE
	}
	return EndB
}

func (e EndType) String() string { return string(byte(e)) }

// exitEndTypeForOrientation returns the end a link leaves its "from"
// segment through: forward exits the 3' (E) side, reverse exits the
// 5' (B) side.
func exitEndTypeForOrientation(o Orientation) EndType {
	if o == Reverse {
		return EndB
	}
	return EndE
}

// entryEndTypeForOrientation returns the end a link enters its "to"
// segment through: forward enters at the 5' (B) side, reverse at E.
func entryEndTypeForOrientation(o Orientation) EndType {
	if o == Reverse {
		return EndE
	}
	return EndB
}

// SegmentEnd is a (segment name, end) pair identifying one of the two
// attachment sites of a segment, per spec.md §3 and grounded directly
// on gfapy's SegmentEnd value object (original_source/gfapy/segment_end.py):
// a name-or-line reference plus an end-type tag, equal by (name, end).
type SegmentEnd struct {
	Name string
	End  EndType
}

// Invert returns the opposite end of the same segment.
func (s SegmentEnd) Invert() SegmentEnd {
	return SegmentEnd{Name: s.Name, End: s.End.Other()}
}

// String renders "<name><B|E>".
func (s SegmentEnd) String() string {
	return s.Name + s.End.String()
}

// Equal compares by (name, end), matching gfapy's SegmentEnd.__eq__.
func (s SegmentEnd) Equal(other SegmentEnd) bool {
	return s.Name == other.Name && s.End == other.End
}
