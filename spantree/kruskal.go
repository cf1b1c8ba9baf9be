// Package spantree: Kruskal's minimum-spanning-forest strategy.
package spantree

import (
	"sort"

	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/unionfind"
)

// NewKruskal returns an Algorithm computing a minimum spanning forest with
// Kruskal's strategy.
//
// Steps per Compute:
//  1. Collect all edges, skipping self-loops, coercing each weight once via
//     NumberOr(weightLabel, DefaultWeight).
//  2. Stable-sort ascending by weight: equal-weight edges keep the graph's
//     enumeration order, making tie-breaks deterministic.
//  3. Seed one singleton disjoint set per node.
//  4. Scan sorted edges; every edge whose endpoints Union successfully is
//     committed (tagged, appended, weight accumulated).
//  5. Stop early after accepting nodeCount−1 edges.
//
// On a disconnected graph the scan exhausts before reaching nodeCount−1
// accepted edges and yields a spanning forest rather than an error.
//
// Complexity: O(E log E + α(V)·E) time, O(V + E) memory per Compute.
func NewKruskal(opts ...Option) *Algorithm {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return NewAlgorithm(&kruskalBuilder{weightLabel: o.WeightLabel}, o.Tag)
}

// kruskalBuilder carries the strategy's configuration; all run state is
// local to MakeTree.
type kruskalBuilder struct {
	weightLabel string
}

// weightedEdge pairs an edge with its coerced weight so the sort comparator
// never re-coerces.
type weightedEdge struct {
	edge *core.Edge
	w    float64
}

func (k *kruskalBuilder) MakeTree(g *core.Graph, tag TagSink) ([]*core.Edge, float64, error) {
	nodes := g.Nodes()
	if len(nodes) == 0 {
		// No nodes, no forest: trivially empty result.
		return nil, 0, nil
	}

	// 1. Collect candidate edges with their weights; self-loops can never
	//    join two components, so drop them outright.
	all := g.Edges()
	cands := make([]weightedEdge, 0, len(all))
	for _, e := range all {
		if e.IsLoop() {
			continue
		}
		cands = append(cands, weightedEdge{edge: e, w: e.NumberOr(k.weightLabel, DefaultWeight)})
	}

	// 2. Stable sort keeps enumeration order among equal weights.
	sort.SliceStable(cands, func(i, j int) bool {
		return cands[i].w < cands[j].w
	})

	// 3. One singleton set per node.
	dsu := unionfind.New()
	for _, n := range nodes {
		dsu.MakeSet(n.ID)
	}

	// 4./5. Greedy scan with early stop at nodeCount−1 accepted edges.
	want := len(nodes) - 1
	tree := make([]*core.Edge, 0, want)
	var total float64
	for _, c := range cands {
		if !dsu.Union(c.edge.From, c.edge.To) {
			// Endpoints already connected: the edge would close a cycle.
			continue
		}
		tag(c.edge)
		tree = append(tree, c.edge)
		total += c.w
		if len(tree) == want {
			break
		}
	}

	// Fewer than want edges simply means the graph is disconnected and the
	// result is a forest.
	return tree, total, nil
}
