package gfa

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// ParseOptions controls parsing strictness, per spec.md §6's
// read_file/read_string "validate" flag.
type ParseOptions struct {
	// Version pins the graph to GFA1 or GFA2; VersionUnknown lets it
	// be inferred from the header's VN tag or, failing that, from
	// the first version-specific record type encountered.
	Version Version
	// Validate, when false, skips per-field regex validation and
	// stores positional fields as given; downstream typed accessors
	// may then fail lazily. Defaults to true (the zero value of a
	// *bool would be ambiguous, so this is a plain bool defaulting
	// to strict via NewParseOptions).
	Validate bool
}

// NewParseOptions returns the strict default: auto version, validate
// on parse.
func NewParseOptions() ParseOptions {
	return ParseOptions{Version: VersionUnknown, Validate: true}
}

// ReadFile parses a GFA file from disk into a Graph.
func ReadFile(path string, opts ParseOptions) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, runtimeErrorf("opening %s: %v", path, err)
	}
	defer f.Close()
	return Read(f, opts)
}

// ReadString parses GFA text into a Graph.
func ReadString(text string, opts ParseOptions) (*Graph, error) {
	return Read(strings.NewReader(text), opts)
}

// Read parses GFA text from r into a Graph, per spec.md §6:
// forward-referenced segments are promoted in place when their real
// definition is later seen, and, if not pinned, the version is taken
// from the first line that settles it: a header's VN tag, a
// version-specific record type (L/C for GFA1; E/F/G/O/U for GFA2), or
// the field shape of a segment line.
func Read(r io.Reader, opts ParseOptions) (*Graph, error) {
	g := NewGraph(opts.Version)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" {
			continue
		}
		rec, err := parseLine(g, line, opts)
		if err != nil {
			return nil, formatErrorf("line %d: %v", lineNo, err)
		}
		if rec == nil {
			continue
		}
		if err := g.Add(rec); err != nil {
			return nil, formatErrorf("line %d: %v", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, runtimeErrorf("reading input: %v", err)
	}
	return g, nil
}

// parseLine tokenizes one line and dispatches to the right record
// factory by its first field (spec.md §2's "record-type dispatch").
func parseLine(g *Graph, line string, opts ParseOptions) (Line, error) {
	fields := strings.Split(line, "\t")
	if len(fields) == 0 || fields[0] == "" {
		return nil, formatErrorf("empty record type")
	}
	rt := RecordType(fields[0][0])
	if len(fields[0]) != 1 {
		return nil, formatErrorf("record type must be a single character, got %q", fields[0])
	}

	version := g.version
	if version == VersionUnknown {
		version = inferVersionFromType(rt)
		if version == VersionUnknown && rt == RecordSegment {
			version = inferSegmentVersion(fields)
		}
		if version != VersionUnknown {
			g.version = version
		}
	}

	if rt == RecordComment {
		return newComment(version, strings.Join(fields[1:], "\t")), nil
	}

	var positionalCount int
	switch rt {
	case RecordHeader:
		positionalCount = 0
	default:
		if schema, ok := lookupSchema(rt, version); ok {
			positionalCount = len(schema.Fields)
		} else if isCustomRecordType(rt) {
			positionalCount = len(fields) - 1
		} else {
			return nil, formatErrorf("unknown record type %q", string(rt))
		}
	}

	if len(fields)-1 < positionalCount {
		return nil, formatErrorf("%c record has %d fields, want at least %d", rt, len(fields)-1, positionalCount)
	}
	positional := fields[1 : 1+positionalCount]
	tagFields := fields[1+positionalCount:]

	var rec Line
	var err error
	switch rt {
	case RecordHeader:
		h := newHeader(version)
		rec = h
		if vn, ok := findTagValue(tagFields, "VN"); ok {
			version = versionFromVN(vn)
			if g.version == VersionUnknown {
				g.version = version
			}
		}
	case RecordSegment:
		rec, err = newSegment(version, append([]string{}, positional...))
	case RecordLink:
		rec, err = newLink(version, append([]string{}, positional...))
	case RecordContainment:
		rec, err = newContainment(version, append([]string{}, positional...))
	case RecordPath:
		rec, err = newPath(version, append([]string{}, positional...))
	case RecordEdge:
		rec, err = newEdge(version, append([]string{}, positional...))
	case RecordFragment:
		rec, err = newFragment(version, append([]string{}, positional...))
	case RecordGap:
		rec, err = newGap(version, append([]string{}, positional...))
	case RecordOrderedGroup:
		rec, err = newOrderedGroup(version, append([]string{}, positional...))
	case RecordUnorderedGroup:
		rec, err = newUnorderedGroup(version, append([]string{}, positional...))
	default:
		rec = newCustomRecord(rt, version, append([]string{}, positional...))
	}
	if err != nil {
		return nil, err
	}

	if err := attachTags(rec, tagFields, version, opts.Validate); err != nil {
		return nil, err
	}
	if opts.Validate {
		if err := validateRecord(rec, version); err != nil {
			return nil, err
		}
	}
	return rec, nil
}

// attachTags parses and installs every "tt:T:value" field onto rec's
// underlying Record.
func attachTags(rec Line, tagFields []string, version Version, validate bool) error {
	base := recordOf(rec)
	if base == nil {
		return nil
	}
	for _, raw := range tagFields {
		tag, err := parseTag(raw)
		if err != nil {
			if !validate {
				continue
			}
			return err
		}
		if err := base.SetTag(tag); err != nil {
			return err
		}
	}
	return nil
}

// recordOf extracts the embedded *Record from any Line, needed since
// Line itself exposes no generic field access.
func recordOf(l Line) *Record {
	switch v := l.(type) {
	case *Header:
		return v.Record
	case *Segment:
		return v.Record
	case *Link:
		return v.Record
	case *Containment:
		return v.Record
	case *Path:
		return v.Record
	case *Edge:
		return v.Record
	case *Fragment:
		return v.Record
	case *Gap:
		return v.Record
	case *OrderedGroup:
		return v.group.Record
	case *UnorderedGroup:
		return v.group.Record
	case *Comment:
		return v.Record
	case *CustomRecord:
		return v.Record
	default:
		return nil
	}
}

func validateRecord(rec Line, version Version) error {
	r := recordOf(rec)
	if r == nil {
		return nil
	}
	for _, f := range r.schema.Fields {
		raw, ok := r.rawField(f.Name)
		if !ok {
			continue
		}
		if raw == "*" && f.Datatype == DatatypeOptionalIdentifierGFA2 {
			continue
		}
		if err := Validate(f.Datatype, raw, version); err != nil {
			return err
		}
	}
	return nil
}

func isCustomRecordType(rt RecordType) bool {
	return rt >= 'A' && rt <= 'Z'
}

func inferVersionFromType(rt RecordType) Version {
	switch rt {
	case RecordEdge, RecordFragment, RecordGap, RecordOrderedGroup, RecordUnorderedGroup:
		return GFA2
	case RecordLink, RecordContainment:
		return GFA1
	default:
		return VersionUnknown
	}
}

// inferSegmentVersion guesses a headerless S record's version from its
// field shape: GFA2 segments carry a positional integer length field
// (id, length, sequence) that GFA1 segments (name, sequence) don't.
// fields[0] is the record type; fields[1] is the name in both
// versions, so the third field is the first one that differs.
func inferSegmentVersion(fields []string) Version {
	if len(fields) >= 3 && isPlainInteger(fields[2]) {
		return GFA2
	}
	return GFA1
}

func isPlainInteger(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func versionFromVN(vn string) Version {
	if strings.HasPrefix(vn, "2") {
		return GFA2
	}
	return GFA1
}

func findTagValue(tagFields []string, name string) (string, bool) {
	prefix := name + ":"
	for _, raw := range tagFields {
		if strings.HasPrefix(raw, prefix) {
			parts := strings.SplitN(raw, ":", 3)
			if len(parts) == 3 {
				return parts[2], true
			}
		}
	}
	return "", false
}
