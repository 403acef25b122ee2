package gfa

import "strings"

// RecordType is the single-character code at the start of a GFA line.
type RecordType byte

// The closed-ish set of record types. GFA1 defines H, S, L, C, P;
// GFA2 adds E, F, G, O, U, and the comment marker "#". Any other single
// uppercase letter is accepted as a custom record (spec.md §6).
const (
	RecordHeader         RecordType = 'H'
	RecordSegment        RecordType = 'S'
	RecordLink           RecordType = 'L'
	RecordContainment    RecordType = 'C'
	RecordPath           RecordType = 'P'
	RecordEdge           RecordType = 'E'
	RecordFragment       RecordType = 'F'
	RecordGap            RecordType = 'G'
	RecordOrderedGroup   RecordType = 'O'
	RecordUnorderedGroup RecordType = 'U'
	RecordComment        RecordType = '#'
)

// fieldSchema is one positional field's declaration: its name and the
// datatype used to validate/decode/encode it.
type fieldSchema struct {
	Name     string
	Datatype Datatype
}

// recordSchema is the per-record-variant declaration described in
// spec.md §4.2: positional fields in order, and which field (if any)
// carries the record's identity.
type recordSchema struct {
	Type       RecordType
	Fields     []fieldSchema
	IDField    string // empty if this record type has no identity
	Versioned  bool   // true if this schema only applies under one GFA version
	forVersion Version
}

func (s *recordSchema) fieldIndex(name string) int {
	for i, f := range s.Fields {
		if f.Name == name {
			return i
		}
	}
	return -1
}

type schemaKey struct {
	Type    RecordType
	Version Version
}

var schemas map[schemaKey]*recordSchema

func registerSchema(s *recordSchema) {
	if schemas == nil {
		schemas = make(map[schemaKey]*recordSchema)
	}
	schemas[schemaKey{Type: s.Type, Version: s.forVersion}] = s
}

func lookupSchema(t RecordType, v Version) (*recordSchema, bool) {
	s, ok := schemas[schemaKey{Type: t, Version: v}]
	if ok {
		return s, true
	}
	// fall back to the version-agnostic schema (every predefined type but S)
	s, ok = schemas[schemaKey{Type: t, Version: VersionUnknown}]
	return s, ok
}

// Record is the common representation every line variant embeds. It
// holds the raw positional values, in schema order, plus an ordered
// set of optional tags. Positional values are stored pre-decode so a
// record that fails validation for one field can still report the
// others; Get/GetBang decode positional fields lazily and cache nothing
// across calls (records are small, and repeated decode keeps the
// implementation free of cache-invalidation on Set). A tag's value is
// decoded once and kept on its Tag.
type Record struct {
	recordType RecordType
	version    Version
	schema     *recordSchema
	positional []string

	tags     map[string]*Tag
	tagOrder []string

	virtual bool
	graph   *Graph
}

func newRecord(rt RecordType, version Version, schema *recordSchema, positional []string) *Record {
	return &Record{
		recordType: rt,
		version:    version,
		schema:     schema,
		positional: positional,
		tags:       make(map[string]*Tag),
	}
}

// Type returns the record's single-character type code.
func (r *Record) Type() RecordType { return r.recordType }

// attach records which graph this record belongs to. No operation in
// this package reads the stored graph back. It does not re-run the
// connectivity index; callers go through Graph.Add for that.
func (r *Record) attach(g *Graph) { r.graph = g }

// IsVirtual reports whether this record is a forward-reference
// placeholder awaiting promotion (spec.md §4.2).
func (r *Record) IsVirtual() bool { return r.virtual }

// Get returns the decoded value of a positional or tag field, or nil
// if it is absent. This is the "optional" access mode of spec.md §4.2.
func (r *Record) Get(field string) interface{} {
	v, _ := r.get(field)
	return v
}

// GetBang returns the decoded value of a positional or tag field,
// failing with NotFoundError if it is absent ("bang" access mode).
func (r *Record) GetBang(field string) (interface{}, error) {
	v, ok := r.get(field)
	if !ok {
		return nil, notFoundErrorf("field %q is not set on this %c record", field, r.recordType)
	}
	return v, nil
}

func (r *Record) get(field string) (interface{}, bool) {
	if idx := r.schema.fieldIndex(field); idx >= 0 {
		raw := r.positional[idx]
		if raw == "*" && r.schema.Fields[idx].Datatype == DatatypeOptionalIdentifierGFA2 {
			return nil, false
		}
		v, err := Decode(r.schema.Fields[idx].Datatype, raw, r.version)
		if err != nil {
			return nil, false
		}
		return v, true
	}
	if t, ok := r.tags[field]; ok {
		v, err := t.Value()
		if err != nil {
			return nil, false
		}
		return v, true
	}
	return nil, false
}

// rawField returns the raw (undecoded) text of a positional field.
func (r *Record) rawField(name string) (string, bool) {
	idx := r.schema.fieldIndex(name)
	if idx < 0 {
		return "", false
	}
	return r.positional[idx], true
}

// setRawField overwrites a positional field's raw text without
// validation; used internally by rename/multiply which already know
// the new value is well-formed.
func (r *Record) setRawField(name, raw string) {
	if idx := r.schema.fieldIndex(name); idx >= 0 {
		r.positional[idx] = raw
	}
}

// Set assigns a positional or tag field. Setting an unknown tag name
// creates an optional field whose type is chosen by AutoType, unless
// the name is predefined. Mutating a virtual record fails.
func (r *Record) Set(field string, value interface{}) error {
	if r.virtual {
		return runtimeErrorf("cannot set %q on a virtual record", field)
	}
	if idx := r.schema.fieldIndex(field); idx >= 0 {
		dt := r.schema.Fields[idx].Datatype
		encoded, err := Encode(dt, value)
		if err != nil {
			return err
		}
		if err := Validate(dt, encoded, r.version); err != nil {
			return err
		}
		r.positional[idx] = encoded
		return nil
	}

	if _, exists := r.tags[field]; !exists {
		r.tagOrder = append(r.tagOrder, field)
	}
	tag, err := newTag(field, value)
	if err != nil {
		return err
	}
	r.tags[field] = tag
	return nil
}

// SetTag installs an already-parsed tag, failing InconsistencyError if
// the record already carries a tag by that name (spec.md §3: "Tag
// names appear at most once per record").
func (r *Record) SetTag(t *Tag) error {
	if r.virtual {
		return runtimeErrorf("cannot set tag %q on a virtual record", t.Name)
	}
	if _, exists := r.tags[t.Name]; exists {
		return inconsistencyErrorf("duplicate tag %q", t.Name)
	}
	r.tagOrder = append(r.tagOrder, t.Name)
	r.tags[t.Name] = t
	return nil
}

// Tag returns the raw tag by name, or nil.
func (r *Record) Tag(name string) *Tag {
	return r.tags[name]
}

// HasTag reports whether a tag by that name is present.
func (r *Record) HasTag(name string) bool {
	_, ok := r.tags[name]
	return ok
}

// DeleteTag removes a tag, if present.
func (r *Record) DeleteTag(name string) {
	if _, ok := r.tags[name]; !ok {
		return
	}
	delete(r.tags, name)
	for i, n := range r.tagOrder {
		if n == name {
			r.tagOrder = append(r.tagOrder[:i], r.tagOrder[i+1:]...)
			break
		}
	}
}

// TagNames returns the tag names in the order they were set.
func (r *Record) TagNames() []string {
	out := make([]string, len(r.tagOrder))
	copy(out, r.tagOrder)
	return out
}

// clone returns a deep copy of the record, detached from any graph.
// All field values, including arrays and byte arrays, are independent;
// string references are value-copied since strings are immutable.
func (r *Record) clone() *Record {
	c := &Record{
		recordType: r.recordType,
		version:    r.version,
		schema:     r.schema,
		positional: append([]string(nil), r.positional...),
		tags:       make(map[string]*Tag, len(r.tags)),
		tagOrder:   append([]string(nil), r.tagOrder...),
		virtual:    r.virtual,
	}
	for name, t := range r.tags {
		c.tags[name] = t.clone()
	}
	return c
}

// String renders the record back to tab-separated GFA text: record
// type, positional fields in schema order, then tags in insertion
// order.
func (r *Record) String() string {
	var b strings.Builder
	b.WriteByte(byte(r.recordType))
	for _, v := range r.positional {
		b.WriteByte('\t')
		b.WriteString(v)
	}
	for _, name := range r.tagOrder {
		b.WriteByte('\t')
		b.WriteString(r.tags[name].String())
	}
	return b.String()
}
