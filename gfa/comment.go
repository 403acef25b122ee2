package gfa

// Comment is a GFA2 "#" line: free text, carried through unchanged.
type Comment struct {
	*Record
}

func newComment(version Version, text string) *Comment {
	schema, _ := lookupSchema(RecordComment, VersionUnknown)
	return &Comment{Record: newRecord(RecordComment, version, schema, []string{text})}
}

// Text returns the comment body (everything after the leading "#\t").
func (c *Comment) Text() string {
	v, _ := c.rawField("text")
	return v
}

// CustomRecord is any single uppercase letter not in the predefined
// set (spec.md §6). Its positional fields are untyped and accessed by
// index rather than by name.
type CustomRecord struct {
	*Record
}

func newCustomRecord(rt RecordType, version Version, positional []string) *CustomRecord {
	schema := customSchema(rt, len(positional))
	return &CustomRecord{Record: newRecord(rt, version, schema, positional)}
}

// Field returns the raw text of the i-th positional field.
func (c *CustomRecord) Field(i int) (string, bool) {
	if i < 0 || i >= len(c.positional) {
		return "", false
	}
	return c.positional[i], true
}

// NumFields returns the number of positional fields this record has.
func (c *CustomRecord) NumFields() int { return len(c.positional) }
