package gfa

import (
	"math"
	"sort"
)

// Rename changes a segment's name and cascades the change to every
// link, containment, path, and group that references it, per
// spec.md §4.4. Fails NotUniqueError if new collides with an
// existing segment or identified record.
func (g *Graph) Rename(old, new string) error {
	if old == new {
		return nil
	}
	seg, ok := g.Segment(old)
	if !ok {
		return notFoundErrorf("no segment named %q", old)
	}
	if g.nameInUse(new) {
		return notUniqueErrorf("%q already names a segment or record", new)
	}
	g.renameSegment(seg, new)
	return nil
}

func (g *Graph) nameInUse(name string) bool {
	if _, ok := g.segments[name]; ok {
		return true
	}
	_, ok := g.byID[name]
	return ok
}

// MultiplyOptions customizes Multiply's copy-naming and link-
// distribution behavior (spec.md §4.4).
type MultiplyOptions struct {
	// CopyNames, if non-empty, must have exactly factor-1 entries and
	// is used instead of auto-generated names.
	CopyNames []string
	// DistributeLinks names the segment ends, if any, whose incident
	// links should be partitioned among the copies rather than fully
	// duplicated.
	DistributeLinks []EndType
}

// Multiply implements spec.md §4.4's multiply_segment: f==0 deletes
// the segment, f==1 is a no-op, f>=2 creates f-1 renamed clones,
// divides count tags by f (self-links divided once), and duplicates
// every incident link across the copies, optionally partitioning
// them per DistributeLinks. Returns the full sibling set (original
// first) for f>=1, or nil for f==0.
func (g *Graph) Multiply(name string, factor int, opts MultiplyOptions) ([]*Segment, error) {
	if factor < 0 {
		return nil, argumentErrorf("multiply factor must be >= 0, got %d", factor)
	}
	seg, err := g.SegmentBang(name)
	if err != nil {
		return nil, err
	}
	if factor == 0 {
		return nil, g.DeleteSegment(name)
	}
	if factor == 1 {
		return []*Segment{seg}, nil
	}

	incident, seen := []*Link{}, map[*Link]bool{}
	for _, end := range []EndType{EndB, EndE} {
		for _, l := range g.LinksOf(SegmentEnd{Name: name, End: end}) {
			if seen[l] {
				continue
			}
			seen[l] = true
			incident = append(incident, l)
			divideLinkCounts(l, factor)
		}
	}
	divideSegmentCounts(seg, factor)

	copyNames := opts.CopyNames
	if len(copyNames) == 0 {
		copyNames = g.generateCopyNames(name, factor-1)
	} else if len(copyNames) != factor-1 {
		return nil, argumentErrorf("multiply needs %d copy names, got %d", factor-1, len(copyNames))
	}

	siblings := make([]*Segment, 0, factor)
	siblings = append(siblings, seg)

	for _, cn := range copyNames {
		if g.nameInUse(cn) {
			return nil, notUniqueErrorf("copy name %q already in use", cn)
		}
		clone := seg.Clone()
		clone.rename(cn)
		if _, ok := clone.OriginalSegment(); !ok {
			_ = clone.Set("or", name)
		}
		if err := g.Add(clone); err != nil {
			return nil, err
		}
		for _, l := range incident {
			if err := g.Add(cloneLinkForCopy(l, name, cn)); err != nil {
				return nil, err
			}
		}
		siblings = append(siblings, clone)
	}

	for _, end := range opts.DistributeLinks {
		g.distributeLinks(siblings, end)
	}
	return siblings, nil
}

func divideSegmentCounts(s *Segment, factor int) {
	divideIntTag(s.Record, "RC", factor)
	divideIntTag(s.Record, "KC", factor)
	divideIntTag(s.Record, "FC", factor)
}

func divideLinkCounts(l *Link, factor int) {
	divideIntTag(l.Record, "RC", factor)
	divideIntTag(l.Record, "KC", factor)
	divideIntTag(l.Record, "FC", factor)
}

func divideIntTag(r *Record, name string, factor int) {
	v, ok := r.get(name)
	if !ok {
		return
	}
	n, ok := v.(int)
	if !ok {
		return
	}
	_ = r.Set(name, n/factor)
}

func cloneLinkForCopy(l *Link, original, copyName string) *Link {
	cl := l.Clone()
	if cl.From() == original {
		cl.setRawField("from", copyName)
	}
	if cl.To() == original {
		cl.setRawField("to", copyName)
	}
	return cl
}

// generateCopyNames produces count unique names starting from
// name+"a" and bumping the lexicographic suffix, per spec.md §4.4.
func (g *Graph) generateCopyNames(name string, count int) []string {
	out := make([]string, 0, count)
	taken := make(map[string]bool, count)
	suffix := "a"
	for len(out) < count {
		candidate := name + suffix
		if !g.nameInUse(candidate) && !taken[candidate] {
			out = append(out, candidate)
			taken[candidate] = true
		}
		suffix = incrementAlpha(suffix)
	}
	return out
}

func incrementAlpha(s string) string {
	b := []byte(s)
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] < 'z' {
			b[i]++
			return string(b)
		}
		b[i] = 'a'
	}
	return "a" + string(b)
}

// distributeLinks partitions the siblings' incident links at end so
// that each sibling retains only a window of the original's incident
// link signatures, per the algorithm of spec.md §4.4.
func (g *Graph) distributeLinks(siblings []*Segment, end EndType) {
	f := len(siblings)
	orig := siblings[0].Name()
	links := g.LinksOf(SegmentEnd{Name: orig, End: end})
	n := len(links)
	diff := n - f
	if diff < 0 {
		diff = 0
	}
	sigs := make([]string, n)
	for i, l := range links {
		sigs[i] = linkSignature(l, orig, end)
	}
	for i, sib := range siblings {
		lo := i
		hi := i + diff
		if hi >= n {
			hi = n - 1
		}
		keep := make(map[string]bool)
		for k := lo; k <= hi && k >= 0 && k < n; k++ {
			keep[sigs[k]] = true
		}
		sibName := sib.Name()
		for _, l := range g.LinksOf(SegmentEnd{Name: sibName, End: end}) {
			if !keep[linkSignature(l, sibName, end)] {
				_ = g.DeleteLink(l)
			}
		}
	}
}

func linkSignature(l *Link, selfName string, selfEnd EndType) string {
	other := l.OtherEnd(SegmentEnd{Name: selfName, End: selfEnd})
	return other.String()
}

// SelectDistributeEnd implements spec.md §4.4's select_distribute_end
// heuristic, choosing which segment end (if any) should have its
// links partitioned rather than fully duplicated when multiplying a
// segment to copy number cn.
func SelectDistributeEnd(degB, degE, cn int, distributeEqualOnly bool) (EndType, bool) {
	switch {
	case degE == cn:
		return EndE, true
	case degB == cn:
		return EndB, true
	case distributeEqualOnly:
		return 0, false
	case degE < 2 && degB < 2:
		return 0, false
	case degE < 2:
		return EndB, true
	case degB < 2:
		return EndE, true
	case degE < cn && degB <= degE:
		return EndE, true
	case degE < cn && degB < cn:
		return EndB, true
	case degE < cn:
		return EndE, true
	case degB < cn:
		return EndB, true
	default:
		if degB <= degE {
			return EndB, true
		}
		return EndE, true
	}
}

// Prune deletes every segment whose count-tag coverage (count/LN)
// falls below threshold, per spec.md §4.4. Returns the names deleted.
func (g *Graph) Prune(countTag string, threshold float64) ([]string, error) {
	var condemned []string
	for _, s := range g.Segments() {
		ln, ok := s.LN()
		if !ok {
			continue
		}
		cnt, ok := s.countTag(countTag)
		if !ok {
			continue
		}
		if float64(cnt)/float64(ln) < threshold {
			condemned = append(condemned, s.Name())
		}
	}
	for _, name := range condemned {
		if err := g.DeleteSegment(name); err != nil {
			return condemned, err
		}
	}
	return condemned, nil
}

// ComputeCopyNumbers sets each segment's "cn" tag to
// round(coverage/singleCopyCoverage), per spec.md §4.4. Segments
// missing LN or the count tag are left untouched.
func (g *Graph) ComputeCopyNumbers(countTag string, singleCopyCoverage float64) error {
	for _, s := range g.Segments() {
		ln, ok := s.LN()
		if !ok {
			continue
		}
		cnt, ok := s.countTag(countTag)
		if !ok {
			continue
		}
		coverage := float64(cnt) / float64(ln)
		cn := int(math.Round(coverage / singleCopyCoverage))
		if err := s.Set("cn", cn); err != nil {
			return err
		}
	}
	return nil
}

// ApplyCopyNumbers calls Multiply(name, cn) for every segment
// carrying a "cn" tag, processed in ascending cn order, per
// spec.md §4.4. When distribute is true, the end chosen by
// SelectDistributeEnd has its links partitioned instead of
// duplicated.
func (g *Graph) ApplyCopyNumbers(distribute bool) error {
	type task struct {
		name string
		cn   int
	}
	var tasks []task
	for _, s := range g.Segments() {
		if cn, ok := s.CN(); ok {
			tasks = append(tasks, task{s.Name(), cn})
		}
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].cn < tasks[j].cn })

	for _, t := range tasks {
		opts := MultiplyOptions{}
		if distribute {
			degB := len(g.LinksOf(SegmentEnd{Name: t.name, End: EndB}))
			degE := len(g.LinksOf(SegmentEnd{Name: t.name, End: EndE}))
			if end, ok := SelectDistributeEnd(degB, degE, t.cn, false); ok {
				opts.DistributeLinks = []EndType{end}
			}
		}
		if _, err := g.Multiply(t.name, t.cn, opts); err != nil {
			return err
		}
	}
	return nil
}
