package gfa

import "sort"

// Graph is an in-memory assembly graph: the ordered set of lines read
// from (or built into) a GFA file, plus the connectivity index spec.md
// §4.3 requires for constant-time lookups during validation, editing,
// and traversal. Grounded on the teacher's node/traversal container
// (internal/traverse/node.go's degree-indexed adjacency), generalized
// from a single-purpose assembly DAG to GFA's segment/line/tag model.
type Graph struct {
	version Version

	lines []Line // insertion order; H lines are kept first on write

	segments map[string]*Segment
	byID     map[string]Line // identifier -> unique record, across all identified types

	linksOfEnd      map[SegmentEnd][]*Link
	containmentsOf  map[string][]*Containment
	pathsOf         map[string][]*Path
	groupsOf        map[string][]Line // groups/edges/gaps referencing a segment
	fragmentsOf     map[string][]*Fragment

	virtual map[string]*Segment // forward-referenced, not-yet-defined segments
}

// NewGraph returns an empty graph for the given GFA version. Version
// VersionUnknown accepts either GFA1 or GFA2 lines; the parser (Read)
// resolves it from the lines it reads, while Add leaves the version
// unchanged.
func NewGraph(version Version) *Graph {
	return &Graph{
		version:        version,
		segments:       make(map[string]*Segment),
		byID:           make(map[string]Line),
		linksOfEnd:     make(map[SegmentEnd][]*Link),
		containmentsOf: make(map[string][]*Containment),
		pathsOf:        make(map[string][]*Path),
		groupsOf:       make(map[string][]Line),
		fragmentsOf:    make(map[string][]*Fragment),
		virtual:        make(map[string]*Segment),
	}
}

// Version reports the graph's resolved GFA version.
func (g *Graph) Version() Version { return g.version }

// Lines returns the graph's lines in insertion order.
func (g *Graph) Lines() []Line { return g.lines }

// Add inserts a record into the graph, wiring it into the
// connectivity index. Adding a Segment that already exists as a
// virtual placeholder promotes the placeholder in place rather than
// appending a duplicate (spec.md §4.2's virtual-record promotion).
func (g *Graph) Add(l Line) error {
	if rec, ok := l.(interface{ attach(*Graph) }); ok {
		rec.attach(g)
	}
	if seg, ok := l.(*Segment); ok {
		return g.addSegment(seg)
	}
	if err := g.checkUnresolvedReferences(l); err != nil {
		return err
	}
	g.index(l)
	g.lines = append(g.lines, l)
	return nil
}

// checkUnresolvedReferences creates virtual segment placeholders for
// any name a newly-added line refers to that the graph has not seen
// yet, per spec.md §4.2: "a forward reference creates a virtual
// segment, later promoted when the real S line is added."
func (g *Graph) checkUnresolvedReferences(l Line) error {
	for _, name := range referencesOf(l) {
		if _, ok := g.segments[name]; ok {
			continue
		}
		if _, ok := g.virtual[name]; ok {
			continue
		}
		v := newVirtualSegment(name)
		g.virtual[name] = v
		g.segments[name] = v
	}
	return nil
}

func (g *Graph) addSegment(seg *Segment) error {
	name := seg.Name()
	if existing, ok := g.segments[name]; ok {
		if !existing.IsVirtual() {
			return notUniqueErrorf("segment %q already exists", name)
		}
		// Promote the virtual placeholder: keep its position in
		// g.lines (it has none yet, since virtuals are never
		// appended there) and replace the index entries.
		delete(g.virtual, name)
		g.segments[name] = seg
		g.byID[name] = seg
		g.lines = append(g.lines, seg)
		return nil
	}
	if _, ok := g.byID[name]; ok {
		return notUniqueErrorf("identifier %q already in use by another record", name)
	}
	g.segments[name] = seg
	g.byID[name] = seg
	g.lines = append(g.lines, seg)
	return nil
}

// index wires a non-segment line into the per-kind indexes.
func (g *Graph) index(l Line) {
	if id, ok := identityOf(l); ok {
		g.byID[id] = l
	}
	switch v := l.(type) {
	case *Link:
		g.linksOfEnd[v.FromEnd()] = append(g.linksOfEnd[v.FromEnd()], v)
		g.linksOfEnd[v.ToEnd()] = append(g.linksOfEnd[v.ToEnd()], v)
	case *Containment:
		g.containmentsOf[v.From()] = append(g.containmentsOf[v.From()], v)
		g.containmentsOf[v.To()] = append(g.containmentsOf[v.To()], v)
	case *Path:
		for _, name := range v.references() {
			g.pathsOf[name] = append(g.pathsOf[name], v)
		}
	case *Fragment:
		g.fragmentsOf[v.Sid()] = append(g.fragmentsOf[v.Sid()], v)
	case *Edge, *Gap, *OrderedGroup, *UnorderedGroup:
		for _, name := range referencesOf(l) {
			g.groupsOf[name] = append(g.groupsOf[name], l)
		}
	}
}

func (g *Graph) deindex(l Line) {
	if id, ok := identityOf(l); ok {
		delete(g.byID, id)
	}
	switch v := l.(type) {
	case *Link:
		g.linksOfEnd[v.FromEnd()] = removeLink(g.linksOfEnd[v.FromEnd()], v)
		g.linksOfEnd[v.ToEnd()] = removeLink(g.linksOfEnd[v.ToEnd()], v)
	case *Containment:
		g.containmentsOf[v.From()] = removeContainment(g.containmentsOf[v.From()], v)
		g.containmentsOf[v.To()] = removeContainment(g.containmentsOf[v.To()], v)
	case *Path:
		for _, name := range v.references() {
			g.pathsOf[name] = removePath(g.pathsOf[name], v)
		}
	case *Fragment:
		g.fragmentsOf[v.Sid()] = removeFragment(g.fragmentsOf[v.Sid()], v)
	case *Edge, *Gap, *OrderedGroup, *UnorderedGroup:
		for _, name := range referencesOf(l) {
			g.groupsOf[name] = removeLine(g.groupsOf[name], l)
		}
	}
}

func removeLink(s []*Link, l *Link) []*Link {
	for i, x := range s {
		if x == l {
			return append(s[:i:i], s[i+1:]...)
		}
	}
	return s
}

func removeContainment(s []*Containment, c *Containment) []*Containment {
	for i, x := range s {
		if x == c {
			return append(s[:i:i], s[i+1:]...)
		}
	}
	return s
}

func removePath(s []*Path, p *Path) []*Path {
	for i, x := range s {
		if x == p {
			return append(s[:i:i], s[i+1:]...)
		}
	}
	return s
}

func removeFragment(s []*Fragment, f *Fragment) []*Fragment {
	for i, x := range s {
		if x == f {
			return append(s[:i:i], s[i+1:]...)
		}
	}
	return s
}

func removeLine(s []Line, l Line) []Line {
	for i, x := range s {
		if x == l {
			return append(s[:i:i], s[i+1:]...)
		}
	}
	return s
}

// Segment returns the named segment, or false if it does not exist
// or is still a virtual forward-reference placeholder.
func (g *Graph) Segment(name string) (*Segment, bool) {
	s, ok := g.segments[name]
	if !ok || s.IsVirtual() {
		return nil, false
	}
	return s, true
}

// SegmentBang returns the named segment, failing NotFoundError if it
// does not exist or has not been promoted from a virtual placeholder.
func (g *Graph) SegmentBang(name string) (*Segment, error) {
	s, ok := g.Segment(name)
	if !ok {
		return nil, notFoundErrorf("no segment named %q", name)
	}
	return s, nil
}

// Line returns the record carrying the given identifier, if any.
func (g *Graph) Line(id string) (Line, bool) {
	l, ok := g.byID[id]
	return l, ok
}

// LinksOf returns the links incident to a segment end, in the order
// they were added.
func (g *Graph) LinksOf(end SegmentEnd) []*Link {
	return append([]*Link(nil), g.linksOfEnd[end]...)
}

// ContainmentsOf returns the containments naming a segment as either
// container or contained.
func (g *Graph) ContainmentsOf(name string) []*Containment {
	return append([]*Containment(nil), g.containmentsOf[name]...)
}

// PathsWith returns the paths that traverse the named segment.
func (g *Graph) PathsWith(name string) []*Path {
	return append([]*Path(nil), g.pathsOf[name]...)
}

// FragmentsOf returns the fragments aligned against the named segment.
func (g *Graph) FragmentsOf(name string) []*Fragment {
	return append([]*Fragment(nil), g.fragmentsOf[name]...)
}

// GroupsOf returns the GFA2 edges/gaps/groups that reference the
// named segment or group.
func (g *Graph) GroupsOf(name string) []Line {
	return append([]Line(nil), g.groupsOf[name]...)
}

// Segments returns every non-virtual segment, ordered by name.
func (g *Graph) Segments() []*Segment {
	out := make([]*Segment, 0, len(g.segments))
	for _, s := range g.segments {
		if !s.IsVirtual() {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// DeleteLink removes a link from the graph and its index.
func (g *Graph) DeleteLink(l *Link) error {
	if !g.removeFromLines(l) {
		return notFoundErrorf("link is not part of this graph")
	}
	g.deindex(l)
	return nil
}

// DeleteSegment removes a segment and cascades per spec.md §4.3:
// every link, containment, fragment, edge, and gap mentioning it is
// removed outright; every path that traverses it is removed outright;
// every ordered/unordered group that references it keeps its record
// but drops the one item.
func (g *Graph) DeleteSegment(name string) error {
	seg, ok := g.Segment(name)
	if !ok {
		return notFoundErrorf("no segment named %q", name)
	}
	for _, end := range []SegmentEnd{{Name: name, End: EndB}, {Name: name, End: EndE}} {
		for _, l := range g.LinksOf(end) {
			_ = g.DeleteLink(l)
		}
	}
	for _, c := range g.ContainmentsOf(name) {
		g.removeFromLines(c)
		g.deindex(c)
	}
	for _, f := range g.FragmentsOf(name) {
		g.removeFromLines(f)
		g.deindex(f)
	}
	for _, p := range g.PathsWith(name) {
		g.removeFromLines(p)
		g.deindex(p)
	}
	for _, l := range g.GroupsOf(name) {
		switch v := l.(type) {
		case *Edge:
			g.removeFromLines(v)
			g.deindex(v)
		case *Gap:
			g.removeFromLines(v)
			g.deindex(v)
		case *OrderedGroup:
			g.deindex(v)
			removeGroupItem(&v.group, name)
			g.index(v)
		case *UnorderedGroup:
			g.deindex(v)
			removeGroupItem(&v.group, name)
			g.index(v)
		}
	}
	delete(g.segments, name)
	delete(g.byID, name)
	g.removeFromLines(seg)
	return nil
}

func removeGroupItem(grp *group, name string) {
	items, err := grp.Items()
	if err != nil {
		return
	}
	out := items[:0]
	for _, it := range items {
		if it.Name != name {
			out = append(out, it)
		}
	}
	grp.SetItems(out)
}

func (g *Graph) removeFromLines(l Line) bool {
	for i, x := range g.lines {
		if x == l {
			g.lines = append(g.lines[:i:i], g.lines[i+1:]...)
			return true
		}
	}
	return false
}

// renameSegment updates the segment's own name and cascades the
// rename to every referencer line indexed against the old name, then
// rebuilds that line's index entries under the new name. Used by
// Rename in edit.go, which additionally validates name uniqueness.
func (g *Graph) renameSegment(seg *Segment, newName string) {
	oldName := seg.Name()
	delete(g.segments, oldName)
	delete(g.byID, oldName)
	seg.rename(newName)
	g.segments[newName] = seg
	g.byID[newName] = seg

	for _, l := range g.lines {
		rf, ok := l.(referencer)
		if !ok {
			continue
		}
		refs := rf.references()
		renamed := false
		for _, r := range refs {
			if r == oldName {
				renamed = true
				break
			}
		}
		if !renamed {
			continue
		}
		g.deindex(l)
		rf.renameReference(oldName, newName)
		g.index(l)
	}
}
