package gfa

// Schemas are declared once per (record type, version) pair, mirroring
// the per-record-variant schema tables described in spec.md §4.2.
// GFA1-only and GFA2-only record types register under VersionUnknown
// since there is only one shape; S (segment) registers one schema per
// version because its field count genuinely differs between them.
func init() {
	registerSchema(&recordSchema{
		Type:   RecordHeader,
		Fields: nil,
	})

	registerSchema(&recordSchema{
		Type: RecordSegment,
		Fields: []fieldSchema{
			{"name", DatatypeSegmentName},
			{"sequence", DatatypeSequence},
		},
		IDField:    "name",
		Versioned:  true,
		forVersion: GFA1,
	})
	registerSchema(&recordSchema{
		Type: RecordSegment,
		Fields: []fieldSchema{
			{"name", DatatypeSegmentName},
			{"length", DatatypeInteger},
			{"sequence", DatatypeSequence},
		},
		IDField:    "name",
		Versioned:  true,
		forVersion: GFA2,
	})

	registerSchema(&recordSchema{
		Type: RecordLink,
		Fields: []fieldSchema{
			{"from", DatatypeSegmentName},
			{"from_orient", DatatypeOrientation},
			{"to", DatatypeSegmentName},
			{"to_orient", DatatypeOrientation},
			{"overlap", DatatypeAlignment},
		},
	})

	registerSchema(&recordSchema{
		Type: RecordContainment,
		Fields: []fieldSchema{
			{"from", DatatypeSegmentName},
			{"from_orient", DatatypeOrientation},
			{"to", DatatypeSegmentName},
			{"to_orient", DatatypeOrientation},
			{"pos", DatatypeInteger},
			{"overlap", DatatypeAlignment},
		},
	})

	registerSchema(&recordSchema{
		Type: RecordPath,
		Fields: []fieldSchema{
			{"name", DatatypeString},
			{"segment_names", DatatypeString},
			{"overlaps", DatatypeAlignmentList},
		},
		IDField: "name",
	})

	registerSchema(&recordSchema{
		Type: RecordEdge,
		Fields: []fieldSchema{
			{"id", DatatypeOptionalIdentifierGFA2},
			{"sid1", DatatypeString},
			{"sid2", DatatypeString},
			{"beg1", DatatypePosition},
			{"end1", DatatypePosition},
			{"beg2", DatatypePosition},
			{"end2", DatatypePosition},
			{"alignment", DatatypeAlignment},
		},
		IDField: "id",
	})

	registerSchema(&recordSchema{
		Type: RecordFragment,
		Fields: []fieldSchema{
			{"sid", DatatypeIdentifierGFA2},
			{"extid", DatatypeString},
			{"sbeg", DatatypePosition},
			{"send", DatatypePosition},
			{"fbeg", DatatypePosition},
			{"fend", DatatypePosition},
			{"alignment", DatatypeAlignment},
		},
	})

	registerSchema(&recordSchema{
		Type: RecordGap,
		Fields: []fieldSchema{
			{"id", DatatypeOptionalIdentifierGFA2},
			{"sid1", DatatypeString},
			{"sid2", DatatypeString},
			{"disp", DatatypeString},
			{"var", DatatypeString},
		},
		IDField: "id",
	})

	registerSchema(&recordSchema{
		Type: RecordOrderedGroup,
		Fields: []fieldSchema{
			{"id", DatatypeOptionalIdentifierGFA2},
			{"items", DatatypeIdentifierListGFA2},
		},
		IDField: "id",
	})

	registerSchema(&recordSchema{
		Type: RecordUnorderedGroup,
		Fields: []fieldSchema{
			{"id", DatatypeOptionalIdentifierGFA2},
			{"items", DatatypeIdentifierListGFA2},
		},
		IDField: "id",
	})

	registerSchema(&recordSchema{
		Type: RecordComment,
		Fields: []fieldSchema{
			{"text", DatatypeComment},
		},
	})
}

// customSchema builds an ad hoc schema for a single uppercase letter
// not in the predefined set (spec.md §6), with n generic positional
// fields named by index.
func customSchema(rt RecordType, n int) *recordSchema {
	fields := make([]fieldSchema, n)
	for i := range fields {
		fields[i] = fieldSchema{Name: genericFieldName(i), Datatype: DatatypeGeneric}
	}
	return &recordSchema{Type: rt, Fields: fields}
}

func genericFieldName(i int) string {
	const letters = "abcdefghijklmnopqrstuvwxyz"
	if i < len(letters) {
		return string(letters[i])
	}
	return string(letters[i%len(letters)]) + genericFieldName(i/len(letters)-1)
}
