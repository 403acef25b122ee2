package gfa

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Version selects which GFA spec a graph or record is checked against.
type Version string

// Supported GFA versions. VersionUnknown means "not yet determined";
// it is resolved during parsing from the header's VN tag or from the
// record types actually seen.
const (
	VersionUnknown Version = ""
	GFA1           Version = "gfa1"
	GFA2           Version = "gfa2"
)

// Datatype is one tag in the closed set of field datatypes every
// positional field and every optional field is declared with.
type Datatype string

// The closed set of datatypes, per spec.md §4.1.
const (
	DatatypeSegmentName     Datatype = "segment_name"
	DatatypeSequence        Datatype = "sequence"
	DatatypeInteger         Datatype = "integer"
	DatatypeFloat           Datatype = "float"
	DatatypeString          Datatype = "string"
	DatatypeOrientation     Datatype = "orientation"
	DatatypeCIGAR           Datatype = "cigar"
	DatatypeAlignment       Datatype = "alignment"
	DatatypeAlignmentList   Datatype = "alignment_list"
	DatatypeByteArray       Datatype = "byte_array"
	DatatypeNumericArray    Datatype = "numeric_array"
	DatatypeJSON            Datatype = "JSON"
	DatatypePosition        Datatype = "position"
	DatatypeIdentifierGFA2  Datatype = "identifier_gfa2"
	DatatypeIdentifierListGFA2     Datatype = "identifier_list_gfa2"
	DatatypeOptionalIdentifierGFA2 Datatype = "optional_identifier_gfa2"
	DatatypeComment         Datatype = "comment"
	DatatypeGeneric         Datatype = "generic"
	DatatypeChar            Datatype = "char"
)

// NumericArray is the decoded form of a B-type optional field: a typed
// array of numbers, first character identifying the element type
// (cCsSiIf per the GFA spec).
type NumericArray struct {
	ElemType byte
	Values   []float64
}

// Position is the decoded form of a GFA2 position field: an integer
// offset, optionally marked as coinciding with the end of the segment
// ("$" suffix, e.g. "120$").
type Position struct {
	Offset int
	AtEnd  bool
}

func (p Position) String() string {
	if p.AtEnd {
		return fmt.Sprintf("%d$", p.Offset)
	}
	return strconv.Itoa(p.Offset)
}

type fieldType struct {
	validate func(raw string, version Version) error
	decode   func(raw string, version Version) (interface{}, error)
	encode   func(v interface{}) (string, error)
}

var (
	segmentNameGFA1Re = regexp.MustCompile(`^[!-)+-<>-~][!-~]*$`)
	segmentNameGFA2Re = regexp.MustCompile(`^[!-~]+$`)
	sequenceRe        = regexp.MustCompile(`^(\*|[A-Za-z=.]+)$`)
	integerRe         = regexp.MustCompile(`^-?[0-9]+$`)
	floatRe           = regexp.MustCompile(`^-?[0-9]+(\.[0-9]+)?([eE][-+]?[0-9]+)?$`)
	stringRe          = regexp.MustCompile("^[^\t\r\n]*$")
	orientationRe     = regexp.MustCompile(`^[+-]$`)
	byteArrayRe       = regexp.MustCompile(`^[0-9A-Fa-f]*$`)
	numericArrayRe    = regexp.MustCompile(`^[cCsSiIf](,-?[0-9]+(\.[0-9]+)?([eE][-+]?[0-9]+)?)*$`)
	positionRe        = regexp.MustCompile(`^[0-9]+\$?$`)
	identifierGFA2Re  = regexp.MustCompile(`^[!-~]+$`)
	optIdentGFA2Re    = regexp.MustCompile(`^(\*|[!-~]+)$`)
	identListGFA2Re   = regexp.MustCompile(`^[ !-~]+$`)
	charRe            = regexp.MustCompile(`^[!-~]$`)
)

var datatypes map[Datatype]fieldType

func init() {
	datatypes = map[Datatype]fieldType{
		DatatypeSegmentName: {
			validate: func(raw string, v Version) error {
				re := segmentNameGFA1Re
				if v == GFA2 {
					re = segmentNameGFA2Re
				}
				if !re.MatchString(raw) {
					return formatErrorf("%q is not a valid segment name for %s", raw, versionLabel(v))
				}
				return nil
			},
			decode: func(raw string, v Version) (interface{}, error) {
				if err := datatypes[DatatypeSegmentName].validate(raw, v); err != nil {
					return nil, err
				}
				return raw, nil
			},
			encode: stringEncode,
		},
		DatatypeSequence: {
			validate: regexValidate(sequenceRe, "sequence"),
			decode:   regexDecodeString(sequenceRe, "sequence"),
			encode:   stringEncode,
		},
		DatatypeInteger: {
			validate: regexValidate(integerRe, "integer"),
			decode: func(raw string, v Version) (interface{}, error) {
				if !integerRe.MatchString(raw) {
					return nil, formatErrorf("%q is not a valid integer", raw)
				}
				n, err := strconv.ParseInt(raw, 10, 64)
				if err != nil {
					return nil, formatErrorf("%q is not a valid integer: %v", raw, err)
				}
				return int(n), nil
			},
			encode: func(v interface{}) (string, error) {
				switch n := v.(type) {
				case int:
					return strconv.Itoa(n), nil
				case int64:
					return strconv.FormatInt(n, 10), nil
				default:
					return "", typeErrorf("%v is not an integer", v)
				}
			},
		},
		DatatypeFloat: {
			validate: regexValidate(floatRe, "float"),
			decode: func(raw string, v Version) (interface{}, error) {
				if !floatRe.MatchString(raw) {
					return nil, formatErrorf("%q is not a valid float", raw)
				}
				f, err := strconv.ParseFloat(raw, 64)
				if err != nil {
					return nil, formatErrorf("%q is not a valid float: %v", raw, err)
				}
				return f, nil
			},
			encode: func(v interface{}) (string, error) {
				f, ok := toFloat(v)
				if !ok {
					return "", typeErrorf("%v is not a float", v)
				}
				return strconv.FormatFloat(f, 'g', -1, 64), nil
			},
		},
		DatatypeString: {
			validate: regexValidate(stringRe, "string"),
			decode:   regexDecodeString(stringRe, "string"),
			encode:   stringEncode,
		},
		DatatypeOrientation: {
			validate: regexValidate(orientationRe, "orientation"),
			decode: func(raw string, v Version) (interface{}, error) {
				if !orientationRe.MatchString(raw) {
					return nil, formatErrorf("%q is not a valid orientation", raw)
				}
				return Orientation(raw == "-"), nil
			},
			encode: func(v interface{}) (string, error) {
				o, ok := v.(Orientation)
				if !ok {
					return "", typeErrorf("%v is not an orientation", v)
				}
				return o.String(), nil
			},
		},
		DatatypeCIGAR: {
			validate: func(raw string, v Version) error {
				_, err := parseCIGAR(raw)
				return err
			},
			decode: func(raw string, v Version) (interface{}, error) {
				return parseCIGAR(raw)
			},
			encode: func(v interface{}) (string, error) {
				c, ok := v.(CIGAR)
				if !ok {
					return "", typeErrorf("%v is not a CIGAR", v)
				}
				return c.String(), nil
			},
		},
		DatatypeAlignment: {
			validate: func(raw string, v Version) error {
				_, err := parseCIGAR(raw)
				return err
			},
			decode: func(raw string, v Version) (interface{}, error) {
				return parseCIGAR(raw)
			},
			encode: func(v interface{}) (string, error) {
				c, ok := v.(CIGAR)
				if !ok {
					return "", typeErrorf("%v is not an alignment", v)
				}
				return c.String(), nil
			},
		},
		DatatypeAlignmentList: {
			validate: func(raw string, v Version) error {
				if raw == "*" {
					return nil
				}
				for _, part := range strings.Split(raw, ",") {
					if _, err := parseCIGAR(part); err != nil {
						return err
					}
				}
				return nil
			},
			decode: func(raw string, v Version) (interface{}, error) {
				if raw == "*" {
					return []CIGAR(nil), nil
				}
				parts := strings.Split(raw, ",")
				out := make([]CIGAR, 0, len(parts))
				for _, part := range parts {
					c, err := parseCIGAR(part)
					if err != nil {
						return nil, err
					}
					out = append(out, c)
				}
				return out, nil
			},
			encode: func(v interface{}) (string, error) {
				cs, ok := v.([]CIGAR)
				if !ok {
					return "", typeErrorf("%v is not an alignment_list", v)
				}
				if len(cs) == 0 {
					return "*", nil
				}
				strs := make([]string, len(cs))
				for i, c := range cs {
					strs[i] = c.String()
				}
				return strings.Join(strs, ","), nil
			},
		},
		DatatypeByteArray: {
			validate: func(raw string, v Version) error {
				if len(raw)%2 != 0 || !byteArrayRe.MatchString(raw) {
					return formatErrorf("%q is not a valid even-length hex byte array", raw)
				}
				return nil
			},
			decode: func(raw string, v Version) (interface{}, error) {
				if err := datatypes[DatatypeByteArray].validate(raw, v); err != nil {
					return nil, err
				}
				out := make([]byte, len(raw)/2)
				for i := 0; i < len(out); i++ {
					n, err := strconv.ParseUint(raw[i*2:i*2+2], 16, 8)
					if err != nil {
						return nil, formatErrorf("%q is not a valid hex byte array", raw)
					}
					out[i] = byte(n)
				}
				return out, nil
			},
			encode: func(v interface{}) (string, error) {
				b, ok := v.([]byte)
				if !ok {
					return "", typeErrorf("%v is not a byte array", v)
				}
				var sb strings.Builder
				for _, c := range b {
					fmt.Fprintf(&sb, "%02X", c)
				}
				return sb.String(), nil
			},
		},
		DatatypeNumericArray: {
			validate: regexValidate(numericArrayRe, "numeric_array"),
			decode: func(raw string, v Version) (interface{}, error) {
				if !numericArrayRe.MatchString(raw) {
					return nil, formatErrorf("%q is not a valid numeric array", raw)
				}
				parts := strings.Split(raw, ",")
				elemType := parts[0][0]
				values := make([]float64, 0, len(parts)-1)
				for _, p := range parts[1:] {
					f, err := strconv.ParseFloat(p, 64)
					if err != nil {
						return nil, formatErrorf("%q has a non-numeric element %q", raw, p)
					}
					values = append(values, f)
				}
				return NumericArray{ElemType: elemType, Values: values}, nil
			},
			encode: func(v interface{}) (string, error) {
				na, ok := v.(NumericArray)
				if !ok {
					return "", typeErrorf("%v is not a numeric array", v)
				}
				parts := make([]string, 0, len(na.Values)+1)
				parts = append(parts, string(na.ElemType))
				for _, f := range na.Values {
					if na.ElemType == 'f' {
						parts = append(parts, strconv.FormatFloat(f, 'g', -1, 64))
					} else {
						parts = append(parts, strconv.FormatInt(int64(f), 10))
					}
				}
				return strings.Join(parts, ","), nil
			},
		},
		DatatypeJSON: {
			validate: func(raw string, v Version) error {
				if !json.Valid([]byte(raw)) {
					return formatErrorf("%q is not valid JSON", raw)
				}
				return nil
			},
			decode: func(raw string, v Version) (interface{}, error) {
				var out interface{}
				if err := json.Unmarshal([]byte(raw), &out); err != nil {
					return nil, formatErrorf("%q is not valid JSON: %v", raw, err)
				}
				return out, nil
			},
			encode: func(v interface{}) (string, error) {
				b, err := json.Marshal(v)
				if err != nil {
					return "", typeErrorf("%v cannot be encoded as JSON: %v", v, err)
				}
				return string(b), nil
			},
		},
		DatatypePosition: {
			validate: regexValidate(positionRe, "position"),
			decode: func(raw string, v Version) (interface{}, error) {
				if !positionRe.MatchString(raw) {
					return nil, formatErrorf("%q is not a valid position", raw)
				}
				atEnd := strings.HasSuffix(raw, "$")
				numPart := strings.TrimSuffix(raw, "$")
				n, err := strconv.Atoi(numPart)
				if err != nil {
					return nil, formatErrorf("%q is not a valid position", raw)
				}
				return Position{Offset: n, AtEnd: atEnd}, nil
			},
			encode: func(v interface{}) (string, error) {
				p, ok := v.(Position)
				if !ok {
					return "", typeErrorf("%v is not a position", v)
				}
				return p.String(), nil
			},
		},
		DatatypeIdentifierGFA2: {
			validate: regexValidate(identifierGFA2Re, "identifier_gfa2"),
			decode:   regexDecodeString(identifierGFA2Re, "identifier_gfa2"),
			encode:   stringEncode,
		},
		DatatypeOptionalIdentifierGFA2: {
			validate: regexValidate(optIdentGFA2Re, "optional_identifier_gfa2"),
			decode:   regexDecodeString(optIdentGFA2Re, "optional_identifier_gfa2"),
			encode:   stringEncode,
		},
		DatatypeIdentifierListGFA2: {
			validate: regexValidate(identListGFA2Re, "identifier_list_gfa2"),
			decode: func(raw string, v Version) (interface{}, error) {
				if !identListGFA2Re.MatchString(raw) {
					return nil, formatErrorf("%q is not a valid list of GFA2 identifiers", raw)
				}
				return strings.Split(raw, " "), nil
			},
			encode: func(v interface{}) (string, error) {
				ids, ok := v.([]string)
				if !ok {
					return "", typeErrorf("%v is not an identifier_list_gfa2", v)
				}
				return strings.Join(ids, " "), nil
			},
		},
		DatatypeComment: {
			validate: func(raw string, v Version) error { return nil },
			decode:   func(raw string, v Version) (interface{}, error) { return raw, nil },
			encode:   stringEncode,
		},
		DatatypeGeneric: {
			validate: func(raw string, v Version) error { return nil },
			decode:   func(raw string, v Version) (interface{}, error) { return raw, nil },
			encode:   stringEncode,
		},
		DatatypeChar: {
			validate: regexValidate(charRe, "char"),
			decode: func(raw string, v Version) (interface{}, error) {
				if !charRe.MatchString(raw) {
					return nil, formatErrorf("%q is not a valid char", raw)
				}
				return raw[0], nil
			},
			encode: func(v interface{}) (string, error) {
				switch c := v.(type) {
				case byte:
					return string([]byte{c}), nil
				case rune:
					return string(c), nil
				case string:
					if len(c) != 1 {
						return "", typeErrorf("%q is not a single char", c)
					}
					return c, nil
				default:
					return "", typeErrorf("%v is not a char", v)
				}
			},
		},
	}
}

func versionLabel(v Version) string {
	if v == GFA2 {
		return "GFA2"
	}
	return "GFA1"
}

func regexValidate(re *regexp.Regexp, label string) func(string, Version) error {
	return func(raw string, v Version) error {
		if !re.MatchString(raw) {
			return formatErrorf("%q is not a valid %s", raw, label)
		}
		return nil
	}
}

func regexDecodeString(re *regexp.Regexp, label string) func(string, Version) (interface{}, error) {
	return func(raw string, v Version) (interface{}, error) {
		if !re.MatchString(raw) {
			return nil, formatErrorf("%q is not a valid %s", raw, label)
		}
		return raw, nil
	}
}

func stringEncode(v interface{}) (string, error) {
	switch s := v.(type) {
	case string:
		return s, nil
	case fmt.Stringer:
		return s.String(), nil
	default:
		return fmt.Sprintf("%v", v), nil
	}
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

// Validate checks a raw field string against a datatype without decoding it.
func Validate(dt Datatype, raw string, version Version) error {
	ft, ok := datatypes[dt]
	if !ok {
		return inconsistencyErrorf("unknown datatype %q", dt)
	}
	return ft.validate(raw, version)
}

// Decode turns a raw field string into its native Go value.
func Decode(dt Datatype, raw string, version Version) (interface{}, error) {
	ft, ok := datatypes[dt]
	if !ok {
		return nil, inconsistencyErrorf("unknown datatype %q", dt)
	}
	return ft.decode(raw, version)
}

// Encode turns a native Go value back into its canonical field string.
func Encode(dt Datatype, v interface{}) (string, error) {
	ft, ok := datatypes[dt]
	if !ok {
		return "", inconsistencyErrorf("unknown datatype %q", dt)
	}
	return ft.encode(v)
}

// AutoType chooses the narrowest datatype matching a value's surface form,
// for optional fields whose tag name isn't predefined. Order: integer
// before float, numeric-array before generic string, byte-array for
// hex-even strings, JSON for bracketed objects, else string.
func AutoType(raw string) Datatype {
	switch {
	case integerRe.MatchString(raw):
		return DatatypeInteger
	case floatRe.MatchString(raw):
		return DatatypeFloat
	case numericArrayRe.MatchString(raw):
		return DatatypeNumericArray
	case len(raw) > 0 && len(raw)%2 == 0 && byteArrayRe.MatchString(raw):
		return DatatypeByteArray
	case looksLikeJSON(raw) && json.Valid([]byte(raw)):
		return DatatypeJSON
	default:
		return DatatypeString
	}
}

func looksLikeJSON(raw string) bool {
	raw = strings.TrimSpace(raw)
	return strings.HasPrefix(raw, "{") || strings.HasPrefix(raw, "[")
}
