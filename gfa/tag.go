package gfa

import (
	"regexp"
	"strings"
)

// tagTypeToDatatype maps a GFA tag-type character to the Datatype used
// to decode/encode its value.
var tagTypeToDatatype = map[byte]Datatype{
	'i': DatatypeInteger,
	'f': DatatypeFloat,
	'Z': DatatypeString,
	'H': DatatypeByteArray,
	'A': DatatypeChar,
	'B': DatatypeNumericArray,
	'J': DatatypeJSON,
}

var datatypeToTagType = func() map[Datatype]byte {
	out := make(map[Datatype]byte, len(tagTypeToDatatype))
	for c, dt := range tagTypeToDatatype {
		out[dt] = c
	}
	return out
}()

// predefinedTags fixes the datatype of tag names reserved by the GFA
// spec, per spec.md §4.1's predefined-tag table, plus "or" (the
// original-segment tag set by Multiply, spec.md §4.4).
var predefinedTags = map[string]Datatype{
	"LN": DatatypeInteger,
	"RC": DatatypeInteger,
	"KC": DatatypeInteger,
	"FC": DatatypeInteger,
	"MQ": DatatypeInteger,
	"NM": DatatypeInteger,
	"SH": DatatypeByteArray,
	"ID": DatatypeString,
	"UR": DatatypeString,
	"VN": DatatypeString,
	"cn": DatatypeInteger,
	"or": DatatypeString,
}

var tagRe = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9]):([ifZHBJA]):(.*)$`)
var userTagNameRe = regexp.MustCompile(`^[a-z][a-z0-9]$`)

// Tag is one parsed optional field ("tt:T:value").
type Tag struct {
	Name     string
	Datatype Datatype
	raw      string
	value    interface{}
	decoded  bool
}

// parseTag splits and validates a raw "tt:T:value" triplet. Predefined
// tag names must carry their fixed datatype; otherwise the name must be
// a two-character lowercase user tag.
func parseTag(raw string) (*Tag, error) {
	m := tagRe.FindStringSubmatch(raw)
	if m == nil {
		return nil, formatErrorf("%q is not a valid tag (want tt:T:value)", raw)
	}
	name, typeChar, value := m[1], m[2][0], m[3]

	dt, ok := tagTypeToDatatype[typeChar]
	if !ok {
		return nil, formatErrorf("%q has an unknown tag type %q", raw, string(typeChar))
	}

	if predefined, isPredefined := predefinedTags[name]; isPredefined {
		if predefined != dt {
			return nil, typeErrorf("tag %s must have type %c, got %c", name, datatypeToTagType[predefined], typeChar)
		}
	} else if !userTagNameRe.MatchString(name) {
		return nil, formatErrorf("%q is not a predefined tag and is not a valid two-character lowercase user tag", name)
	}

	return &Tag{Name: name, Datatype: dt, raw: value}, nil
}

// newTag builds a Tag from a decoded native value, inferring its
// datatype from the predefined table or AutoType if the name isn't
// predefined.
func newTag(name string, value interface{}) (*Tag, error) {
	dt, ok := predefinedTags[name]
	if !ok {
		if !userTagNameRe.MatchString(name) {
			return nil, formatErrorf("%q is not a predefined tag and is not a valid two-character lowercase user tag", name)
		}
		if s, isString := value.(string); isString {
			dt = AutoType(s)
		} else {
			dt = inferDatatype(value)
		}
	}
	encoded, err := Encode(dt, value)
	if err != nil {
		return nil, err
	}
	return &Tag{Name: name, Datatype: dt, raw: encoded, value: value, decoded: true}, nil
}

func inferDatatype(value interface{}) Datatype {
	switch value.(type) {
	case int, int64:
		return DatatypeInteger
	case float32, float64:
		return DatatypeFloat
	case []byte:
		return DatatypeByteArray
	case NumericArray:
		return DatatypeNumericArray
	case CIGAR:
		return DatatypeCIGAR
	default:
		return DatatypeString
	}
}

// Value returns the tag's decoded native value, decoding lazily.
func (t *Tag) Value() (interface{}, error) {
	if !t.decoded {
		v, err := Decode(t.Datatype, t.raw, VersionUnknown)
		if err != nil {
			return nil, err
		}
		t.value = v
		t.decoded = true
	}
	return t.value, nil
}

// String renders the tag back to "tt:T:value" form.
func (t *Tag) String() string {
	typeChar := datatypeToTagType[t.Datatype]
	raw := t.raw
	if raw == "" && t.decoded {
		if encoded, err := Encode(t.Datatype, t.value); err == nil {
			raw = encoded
		}
	}
	var b strings.Builder
	b.WriteString(t.Name)
	b.WriteByte(':')
	b.WriteByte(typeChar)
	b.WriteByte(':')
	b.WriteString(raw)
	return b.String()
}

// clone returns a deep, unattached copy of the tag.
func (t *Tag) clone() *Tag {
	c := &Tag{Name: t.Name, Datatype: t.Datatype, raw: t.raw, decoded: t.decoded}
	switch v := t.value.(type) {
	case []byte:
		cp := make([]byte, len(v))
		copy(cp, v)
		c.value = cp
	case NumericArray:
		cp := make([]float64, len(v.Values))
		copy(cp, v.Values)
		c.value = NumericArray{ElemType: v.ElemType, Values: cp}
	default:
		c.value = v
	}
	return c
}
