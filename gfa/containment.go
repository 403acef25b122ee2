package gfa

// Containment asserts that one segment fully contains another at a
// position, with an overlap (spec.md §3).
type Containment struct {
	*Record
}

func newContainment(version Version, positional []string) (*Containment, error) {
	schema, _ := lookupSchema(RecordContainment, VersionUnknown)
	if len(positional) != len(schema.Fields) {
		return nil, formatErrorf("C record has %d fields, want %d", len(positional), len(schema.Fields))
	}
	return &Containment{Record: newRecord(RecordContainment, version, schema, positional)}, nil
}

func (c *Containment) From() string          { v, _ := c.rawField("from"); return v }
func (c *Containment) To() string            { v, _ := c.rawField("to"); return v }
func (c *Containment) FromOrient() Orientation { v, _ := c.get("from_orient"); return v.(Orientation) }
func (c *Containment) ToOrient() Orientation   { v, _ := c.get("to_orient"); return v.(Orientation) }
func (c *Containment) Pos() int              { v, _ := c.get("pos"); return v.(int) }
func (c *Containment) Overlap() CIGAR        { v, _ := c.get("overlap"); return v.(CIGAR) }

func (c *Containment) references() []string { return []string{c.From(), c.To()} }

func (c *Containment) renameReference(old, new string) {
	if c.From() == old {
		c.setRawField("from", new)
	}
	if c.To() == old {
		c.setRawField("to", new)
	}
}
