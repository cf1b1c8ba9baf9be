// Package dijkstra: result queries over the last computed tree.
package dijkstra

import (
	"math"

	"github.com/katalvlaran/spantree/core"
)

// tieEpsilon is the absolute tolerance used by AllShortestPaths when
// deciding whether an incoming edge lies on a tied-shortest path. Float64
// sums of the same terms in different orders can drift by a few ulps.
const tieEpsilon = 1e-9

// DistanceTo returns the finalized shortest distance from the source to
// target: +Inf when target is unreachable, unknown, or no successful
// Compute has run.
// Complexity: O(1).
func (t *ShortestPathTree) DistanceTo(target string) float64 {
	rec, ok := t.records[target]
	if !ok || !rec.settled {
		return math.Inf(1)
	}

	return rec.dist
}

// PredecessorEdge returns the tree edge over which target was reached, or
// nil for the source, an unreachable node, or an unknown target.
// Complexity: O(1).
func (t *ShortestPathTree) PredecessorEdge(target string) *core.Edge {
	rec, ok := t.records[target]
	if !ok {
		return nil
	}

	return rec.pred
}

// PredecessorNode returns the node preceding target on its shortest path,
// or "" when target has no predecessor edge.
// Complexity: O(1).
func (t *ShortestPathTree) PredecessorNode(target string) string {
	e := t.PredecessorEdge(target)
	if e == nil {
		return ""
	}
	prev, err := e.Opposite(target)
	if err != nil {
		return ""
	}

	return prev
}

// PathIter walks a shortest path lazily in reverse, from the target back
// toward the source. Each Next step is O(1); the walk stops after yielding
// the first node with an empty predecessor (the source, or the unreachable
// target itself).
type PathIter struct {
	t    *ShortestPathTree
	cur  string
	done bool
}

// PathTo returns a lazy reverse iterator from target toward the source.
// Complexity: O(1); O(1) per Next step.
func (t *ShortestPathTree) PathTo(target string) *PathIter {
	return &PathIter{t: t, cur: target}
}

// Next yields the current node and the predecessor edge leading out of it
// (nil on the final step), then advances. Returns ok=false once exhausted.
func (it *PathIter) Next() (node string, via *core.Edge, ok bool) {
	if it.done {
		return "", nil, false
	}
	node = it.cur
	via = it.t.PredecessorEdge(node)
	if via == nil {
		// Source reached, or no predecessor chain exists at all.
		it.done = true

		return node, nil, true
	}
	it.cur, _ = via.Opposite(node)

	return node, via, true
}

// AllShortestPaths enumerates every distinct shortest path from the source
// to target as node-ID sequences ordered source → target. An edge counts
// as "on a shortest path" when dist(u) + step(e, v) matches dist(v) within
// tieEpsilon.
//
// The enumeration branches recursively over all tied incoming edges, so
// the result can be EXPONENTIAL in the graph size - intended for
// diagnostics on small graphs, never for routine queries. Only simple
// paths are reported (a node appears once per path), which also keeps
// zero-length cycles from recursing forever.
//
// Returns nil when target is unreachable or unknown.
// Complexity: O(number of tied paths × path length); worst case exponential.
func (t *ShortestPathTree) AllShortestPaths(target string) [][]string {
	rec, ok := t.records[target]
	if !ok || !rec.settled || math.IsInf(rec.dist, 1) || t.graph == nil {
		return nil
	}

	return t.branchPaths(target, map[string]bool{target: true})
}

// branchPaths recursively collects source→v path prefixes over every tied
// incoming edge of v. onPath holds the nodes of the current suffix to keep
// paths simple.
func (t *ShortestPathTree) branchPaths(v string, onPath map[string]bool) [][]string {
	if v == t.opts.SourceID {
		return [][]string{{v}}
	}

	rec := t.records[v]
	inc, err := t.graph.IncidentEdges(v)
	if err != nil {
		return nil
	}

	var out [][]string
	for _, e := range inc {
		if e.IsLoop() {
			continue
		}
		u, errOpp := e.Opposite(v)
		if errOpp != nil || onPath[u] {
			continue
		}
		ru, okU := t.records[u]
		if !okU || !ru.settled || math.IsInf(ru.dist, 1) {
			continue
		}
		// Tied incoming edge: u's distance plus this step lands exactly on v's.
		if math.Abs(ru.dist+t.stepLength(e, rec.node)-rec.dist) > tieEpsilon {
			continue
		}
		onPath[u] = true
		for _, prefix := range t.branchPaths(u, onPath) {
			path := make([]string, len(prefix)+1)
			copy(path, prefix)
			path[len(prefix)] = v
			out = append(out, path)
		}
		delete(onPath, u)
	}

	return out
}
