package gfa

import (
	"regexp"
	"strings"
)

// OrientedSegment is one element of a path's segment list: a segment
// name plus the orientation it's traversed in.
type OrientedSegment struct {
	Name   string
	Orient Orientation
}

func (o OrientedSegment) String() string { return o.Name + o.Orient.String() }

var pathElemRe = regexp.MustCompile(`^(.+)([+-])$`)

func parsePathElem(tok string) (OrientedSegment, error) {
	m := pathElemRe.FindStringSubmatch(tok)
	if m == nil {
		return OrientedSegment{}, formatErrorf("%q is not a valid oriented segment name", tok)
	}
	return OrientedSegment{Name: m[1], Orient: Orientation(m[2] == "-")}, nil
}

// Path is an ordered sequence of oriented segment names plus an
// overlaps list one shorter than the segment count (or "*"),
// spec.md §3.
type Path struct {
	*Record
}

func newPath(version Version, positional []string) (*Path, error) {
	schema, _ := lookupSchema(RecordPath, VersionUnknown)
	if len(positional) != len(schema.Fields) {
		return nil, formatErrorf("P record has %d fields, want %d", len(positional), len(schema.Fields))
	}
	p := &Path{Record: newRecord(RecordPath, version, schema, positional)}
	if err := p.validateOverlapCount(); err != nil {
		return nil, err
	}
	return p, nil
}

// Name returns the path's identifying name.
func (p *Path) Name() string {
	v, _ := p.rawField("name")
	return v
}

// Identity returns the path's name; paths always have identity.
func (p *Path) Identity() (string, bool) { return p.Name(), true }

// SegmentNames parses the comma-separated "<name><orientation>" list.
func (p *Path) SegmentNames() ([]OrientedSegment, error) {
	raw, _ := p.rawField("segment_names")
	if raw == "" {
		return nil, nil
	}
	toks := strings.Split(raw, ",")
	out := make([]OrientedSegment, 0, len(toks))
	for _, tok := range toks {
		elem, err := parsePathElem(tok)
		if err != nil {
			return nil, err
		}
		out = append(out, elem)
	}
	return out, nil
}

// SetSegmentNames re-encodes and stores the oriented segment list.
func (p *Path) SetSegmentNames(elems []OrientedSegment) error {
	toks := make([]string, len(elems))
	for i, e := range elems {
		toks[i] = e.String()
	}
	p.setRawField("segment_names", strings.Join(toks, ","))
	return p.validateOverlapCount()
}

// Overlaps returns the path's per-junction overlap list, or nil if it
// is the "*" placeholder.
func (p *Path) Overlaps() []CIGAR {
	v, _ := p.get("overlaps")
	cs, _ := v.([]CIGAR)
	return cs
}

func (p *Path) validateOverlapCount() error {
	elems, err := p.SegmentNames()
	if err != nil {
		return err
	}
	overlaps := p.Overlaps()
	if len(overlaps) == 0 {
		return nil
	}
	if len(overlaps) != len(elems)-1 {
		return inconsistencyErrorf("path %s has %d overlaps, want %d (segment count - 1)", p.Name(), len(overlaps), len(elems)-1)
	}
	return nil
}

func (p *Path) references() []string {
	elems, err := p.SegmentNames()
	if err != nil {
		return nil
	}
	out := make([]string, len(elems))
	for i, e := range elems {
		out[i] = e.Name
	}
	return out
}

func (p *Path) renameReference(old, new string) {
	elems, err := p.SegmentNames()
	if err != nil {
		return
	}
	changed := false
	for i, e := range elems {
		if e.Name == old {
			elems[i].Name = new
			changed = true
		}
	}
	if changed {
		_ = p.SetSegmentNames(elems)
	}
}
