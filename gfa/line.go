package gfa

// Line is the interface satisfied by every record wrapper type
// (Header, Segment, Link, Containment, Path, Edge, Fragment, Gap,
// OrderedGroup, UnorderedGroup, Comment, CustomRecord). It is the type
// a Graph stores and iterates over polymorphically (spec.md §4.3).
type Line interface {
	Type() RecordType
	IsVirtual() bool
	String() string
}

// identified is implemented by line types that carry an identifier
// (segments, paths, and the optionally-identified GFA2 lines). Header,
// Comment, Link, Containment, and Fragment have no identity and do not
// implement it.
type identified interface {
	Identity() (string, bool)
}

// referencer is implemented by line types that name other segments,
// and so must participate in rename cascades and the connectivity
// index (spec.md §4.3, §4.4). Header, Segment, Comment, and
// CustomRecord carry no references.
type referencer interface {
	references() []string
	renameReference(old, new string)
}

// identityOf returns a line's identifier, if it has one.
func identityOf(l Line) (string, bool) {
	if id, ok := l.(identified); ok {
		return id.Identity()
	}
	return "", false
}

// referencesOf returns the segment (or group) names a line refers to,
// if it refers to any.
func referencesOf(l Line) []string {
	if rf, ok := l.(referencer); ok {
		return rf.references()
	}
	return nil
}
