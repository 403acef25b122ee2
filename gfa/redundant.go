package gfa

// MergeRedundantLinearPaths merges every maximal linear path in the
// graph, including those whose far endpoint is itself a junction
// (gfapy's "redundant linear path" case, original_source/gfapy's
// graph_operations/redundant_linear_paths.py). Unlike the original's
// approach of inserting temporary "co:Z:temporary" junction links
// before merging and tearing them back down afterward, this composes
// the core's own LinearPaths/MergeLinearPath directly: a path returned
// by LinearPaths already extends up to and including a junction-
// adjacent segment on either side, so no temporary scaffolding is
// needed to reach the same result. It is a thin collaborator built
// entirely on public operations, not a core traversal algorithm.
func (g *Graph) MergeRedundantLinearPaths() ([]*Segment, error) {
	var merged []*Segment
	for _, path := range g.LinearPaths() {
		s, err := g.MergeLinearPath(path, MergeOptions{})
		if err != nil {
			return merged, err
		}
		merged = append(merged, s)
	}
	return merged, nil
}
