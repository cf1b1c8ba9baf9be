// Package spantree: Prim's minimum-spanning-forest strategy in the
// decrease-key formulation over a fibheap.
package spantree

import (
	"math"

	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/fibheap"
)

// NewPrim returns an Algorithm computing a minimum spanning forest with
// Prim's strategy.
//
// Steps per Compute:
//  1. Queue every node at key +Inf with no candidate connecting edge.
//  2. Repeatedly ExtractMin. If the extracted node carries a candidate
//     edge, commit it (tag, append, accumulate weight); a node extracted at
//     +Inf has none and roots a new component instead.
//  3. For each edge from the extracted node to a still-queued neighbor
//     whose weight beats the neighbor's current key, DecreaseKey the
//     neighbor and record the edge as its new candidate.
//
// Running until the queue empties spans disconnected graphs naturally: each
// component's first extraction starts a fresh tree, so the result is a
// spanning forest with no special-casing.
//
// Determinism: with every key tied at +Inf, the very first extraction is
// the first-queued node - nodes are queued in graph enumeration order and
// the fibheap extracts the earliest-inserted entry among equal minima. Each
// later component is rooted at its earliest-added node for the same reason.
// Which of several equal-weight spanning trees results is therefore
// reproducible for a fixed graph.
//
// Complexity: O(E + V log V) time, O(V + E) memory per Compute.
func NewPrim(opts ...Option) *Algorithm {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return NewAlgorithm(&primBuilder{weightLabel: o.WeightLabel}, o.Tag)
}

// primBuilder carries the strategy's configuration; all run state is local
// to MakeTree.
type primBuilder struct {
	weightLabel string
}

// candidate is the cheapest known edge linking a queued node to the
// growing forest.
type candidate struct {
	edge *core.Edge
	w    float64
}

func (p *primBuilder) MakeTree(g *core.Graph, tag TagSink) ([]*core.Edge, float64, error) {
	nodes := g.Nodes()

	// 1. One queue entry per node, all at +Inf. pending doubles as the
	//    "still in queue" membership test.
	h := fibheap.New[string]()
	pending := make(map[string]*fibheap.Entry[string], len(nodes))
	cands := make(map[string]candidate, len(nodes))
	inf := math.Inf(1)
	for _, n := range nodes {
		pending[n.ID] = h.Insert(inf, n.ID)
	}

	tree := make([]*core.Edge, 0, max(len(nodes)-1, 0))
	var total float64

	// 2./3. Grow until the queue empties.
	for h.Len() > 0 {
		_, u, _ := h.ExtractMin()
		delete(pending, u)

		// Commit the candidate edge that pulled u into the forest. A node
		// extracted at +Inf has none: it roots a new component.
		if c, ok := cands[u]; ok {
			tag(c.edge)
			tree = append(tree, c.edge)
			total += c.w
		}

		inc, err := g.IncidentEdges(u)
		if err != nil {
			return nil, 0, err
		}
		for _, e := range inc {
			if e.IsLoop() {
				continue
			}
			v, errOpp := e.Opposite(u)
			if errOpp != nil {
				return nil, 0, errOpp
			}
			entry, queued := pending[v]
			if !queued {
				// v is already in the forest; this edge would close a cycle.
				continue
			}
			w := e.NumberOr(p.weightLabel, DefaultWeight)
			if w < entry.Key() {
				if errDec := h.DecreaseKey(entry, w); errDec != nil {
					return nil, 0, errDec
				}
				cands[v] = candidate{edge: e, w: w}
			}
		}
	}

	return tree, total, nil
}
