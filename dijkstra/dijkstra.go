// Package dijkstra: the ShortestPathTree strategy and its main loop.
package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/fibheap"
	"github.com/katalvlaran/spantree/spantree"
)

// ShortestPathTree computes single-source shortest paths through the
// spantree lifecycle: Bind a graph once, Compute as often as needed, then
// query distances and paths (see paths.go). It implements spantree.Builder.
type ShortestPathTree struct {
	*spantree.Algorithm

	opts Options

	// Per-run side table, replaced wholesale by every MakeTree. Nothing is
	// stored on the graph itself, so independent instances never collide.
	records map[string]*pathRecord
	graph   *core.Graph // the graph of the last MakeTree, for path queries
}

// pathRecord is the per-node run state: the queue entry while the node is
// unsettled, then the predecessor edge and finalized distance once settled.
type pathRecord struct {
	node    *core.Node
	entry   *fibheap.Entry[string] // nil once settled
	pred    *core.Edge             // edge that finalized this node; nil for source/unreachable
	dist    float64                // +Inf until settled
	settled bool
}

// New returns a ShortestPathTree configured by the given options.
func New(opts ...Option) *ShortestPathTree {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	t := &ShortestPathTree{opts: o}
	t.Algorithm = spantree.NewAlgorithm(t, o.Tag)

	return t
}

// Compute shadows the embedded lifecycle Compute to fail fast on missing
// preconditions instead of silently no-opping.
//
// Error Conditions:
//   - ErrNoGraph          : no graph bound.
//   - ErrNoSource         : no source configured.
//   - ErrSourceNotFound   : source missing from the graph.
//   - ErrNegativeLength   : any contributing length is numerically negative.
func (t *ShortestPathTree) Compute() error {
	if !t.Bound() {
		return ErrNoGraph
	}
	if t.opts.SourceID == "" {
		return ErrNoSource
	}

	return t.Algorithm.Compute()
}

// MakeTree runs the algorithm. Called by the lifecycle, which has already
// applied off-tags to every edge; accepted tree edges go through tag.
//
// Steps:
//  1. Validate the source and pre-scan every contributing length for
//     negatives - the scan runs before any distance is finalized, so a
//     poisoned graph fails atomically.
//  2. Queue one entry per node: the source at its source length (0 under
//     EdgeLength, its own node length otherwise), everything else at +Inf.
//  3. Extract-min loop: finalize the extracted key as the node's distance,
//     commit its predecessor edge (the source and unreachable nodes have
//     none), then relax each incident edge toward a still-queued neighbor
//     via DecreaseKey when the candidate distance improves on its key.
//
// Complexity: O(E + V log V).
func (t *ShortestPathTree) MakeTree(g *core.Graph, tag spantree.TagSink) ([]*core.Edge, float64, error) {
	// Invalidate previous results up front: a failed run leaves no stale
	// queryable state behind.
	t.records = nil
	t.graph = g

	// 1. Source validation and the fail-fast negative scan.
	if t.opts.SourceID == "" {
		return nil, 0, ErrNoSource
	}
	src, err := g.Node(t.opts.SourceID)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %q", ErrSourceNotFound, t.opts.SourceID)
	}
	if err = t.scanLengths(g); err != nil {
		return nil, 0, err
	}

	// 2. One queue entry and one record per node.
	nodes := g.Nodes()
	records := make(map[string]*pathRecord, len(nodes))
	h := fibheap.New[string]()
	inf := math.Inf(1)
	for _, n := range nodes {
		key := inf
		if n == src {
			key = t.sourceLength(src)
		}
		records[n.ID] = &pathRecord{node: n, entry: h.Insert(key, n.ID), dist: inf}
	}

	tree := make([]*core.Edge, 0, max(len(nodes)-1, 0))
	var total float64

	// 3. Main loop.
	for h.Len() > 0 {
		d, u, _ := h.ExtractMin()
		rec := records[u]
		rec.settled = true
		rec.dist = d
		rec.entry = nil

		if rec.pred != nil {
			// The edge that produced this node's final distance joins the tree.
			tag(rec.pred)
			tree = append(tree, rec.pred)
			// Its weight is exactly this step's length contribution.
			prev, _ := rec.pred.Opposite(u)
			total += d - records[prev].dist
		}

		if math.IsInf(d, 1) {
			// Unreachable: finalized at +Inf, nothing to relax.
			continue
		}

		inc, errInc := g.IncidentEdges(u)
		if errInc != nil {
			return nil, 0, errInc
		}
		for _, e := range inc {
			if e.IsLoop() {
				continue
			}
			v, errOpp := e.Opposite(u)
			if errOpp != nil {
				return nil, 0, errOpp
			}
			rv := records[v]
			if rv.settled {
				continue
			}
			cand := d + t.stepLength(e, rv.node)
			if cand < rv.entry.Key() {
				if errDec := h.DecreaseKey(rv.entry, cand); errDec != nil {
					return nil, 0, errDec
				}
				rv.pred = e
			}
		}
	}

	t.records = records

	return tree, total, nil
}

// lengthBearer is the property surface shared by *core.Node and *core.Edge.
type lengthBearer interface {
	NumberOr(label string, def float64) float64
}

// lengthOf resolves one element's length contribution: unit length when no
// label is configured, property value (default unit) otherwise.
func (t *ShortestPathTree) lengthOf(el lengthBearer) float64 {
	if t.opts.LengthLabel == "" {
		return DefaultLengthUnit
	}

	return el.NumberOr(t.opts.LengthLabel, DefaultLengthUnit)
}

// stepLength is the cost of entering node v over edge e, per the model.
func (t *ShortestPathTree) stepLength(e *core.Edge, v *core.Node) float64 {
	switch t.opts.Model {
	case NodeLength:
		return t.lengthOf(v)
	case EdgeAndNodeLength:
		return t.lengthOf(e) + t.lengthOf(v)
	default:
		return t.lengthOf(e)
	}
}

// sourceLength is the source node's starting distance: 0 when only edges
// contribute, its own node length otherwise.
func (t *ShortestPathTree) sourceLength(src *core.Node) float64 {
	if t.opts.Model == EdgeLength {
		return 0
	}

	return t.lengthOf(src)
}

// scanLengths checks every contributing length for numeric negatives.
// Non-numeric values never reach here (coercion maps them to the default),
// so every hit is a genuine poisoned value.
func (t *ShortestPathTree) scanLengths(g *core.Graph) error {
	if t.opts.Model == EdgeLength || t.opts.Model == EdgeAndNodeLength {
		for _, e := range g.Edges() {
			if t.lengthOf(e) < 0 {
				return fmt.Errorf("%w: edge %s (%s–%s)", ErrNegativeLength, e.ID, e.From, e.To)
			}
		}
	}
	if t.opts.Model == NodeLength || t.opts.Model == EdgeAndNodeLength {
		for _, n := range g.Nodes() {
			if t.lengthOf(n) < 0 {
				return fmt.Errorf("%w: node %s", ErrNegativeLength, n.ID)
			}
		}
	}

	return nil
}
