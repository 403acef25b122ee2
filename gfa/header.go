package gfa

// Header is the "H" line. It carries no positional fields, only tags
// (typically VN, the GFA version string).
type Header struct {
	*Record
}

func newHeader(version Version) *Header {
	schema, _ := lookupSchema(RecordHeader, VersionUnknown)
	return &Header{Record: newRecord(RecordHeader, version, schema, nil)}
}

// VN returns the header's version tag, if set.
func (h *Header) VN() (string, bool) {
	v, ok := h.get("VN")
	if !ok {
		return "", false
	}
	return v.(string), true
}
