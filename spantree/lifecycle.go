// Package spantree: the shared tree-building lifecycle every strategy runs
// through. Strategies implement Builder; Algorithm owns binding, tag
// reset/apply, and result exposure.
package spantree

import "github.com/katalvlaran/spantree/core"

// Builder is the strategy contract: given the bound graph and a sink for
// committing tree edges, produce the tree edge list and its total weight.
// Kruskal, Prim, and the dijkstra package's ShortestPathTree are
// independent implementors.
type Builder interface {
	MakeTree(g *core.Graph, tag TagSink) ([]*core.Edge, float64, error)
}

// Algorithm drives the Unbound → Bound → Computed lifecycle around one
// Builder. Construct via NewKruskal / NewPrim (or dijkstra.New), then Bind
// exactly one graph and Compute as often as needed; every Compute rebuilds
// the tree from scratch with no incremental reuse.
type Algorithm struct {
	builder Builder
	tag     TagConfig

	graph    *core.Graph
	computed bool

	tree   []*core.Edge
	weight float64
	seq    *EdgeSeq
}

// NewAlgorithm wraps a Builder in the shared lifecycle. Exported so sibling
// packages can contribute strategies; library users normally go through the
// strategy constructors.
func NewAlgorithm(b Builder, tag TagConfig) *Algorithm {
	return &Algorithm{builder: b, tag: tag}
}

// Bound reports whether a graph has been bound.
// Complexity: O(1).
func (a *Algorithm) Bound() bool { return a.graph != nil }

// Tagging returns the current tagging configuration.
// Complexity: O(1).
func (a *Algorithm) Tagging() TagConfig { return a.tag }

// SetTagging replaces the tagging configuration.
//
// Error Conditions:
//   - ErrTaggingFrozen : if the algorithm is already bound.
//
// Complexity: O(1).
func (a *Algorithm) SetTagging(cfg TagConfig) error {
	if a.Bound() {
		return ErrTaggingFrozen
	}
	a.tag = cfg

	return nil
}

// Bind attaches the algorithm to its one graph.
//
// Error Conditions:
//   - ErrNilGraph : if g is nil.
//   - ErrRebind   : if a graph is already bound.
//
// Complexity: O(1).
func (a *Algorithm) Bind(g *core.Graph) error {
	if g == nil {
		return ErrNilGraph
	}
	if a.Bound() {
		return ErrRebind
	}
	a.graph = g

	return nil
}

// Compute rebuilds the tree from scratch: previous results are dropped,
// every edge receives the "off" tag (or nothing when tagging is disabled),
// the strategy runs, and accepted tree edges receive the "on" tag as they
// are committed.
//
// Calling Compute while unbound is a documented silent no-op - the one
// deliberate exception to fail-fast. On a strategy error the results are
// cleared and any tags written during the failed run must not be trusted.
// Complexity: strategy-dependent.
func (a *Algorithm) Compute() error {
	if !a.Bound() {
		return nil
	}

	// Drop previous results before doing any work: a failed run must not
	// leave stale results queryable.
	a.computed = false
	a.tree = nil
	a.seq = nil
	a.weight = 0

	resetTags(a.graph, a.tag)

	tree, total, err := a.builder.MakeTree(a.graph, a.tag.onSink())
	if err != nil {
		return err
	}

	a.tree = tree
	a.weight = total
	a.seq = &EdgeSeq{edges: tree}
	a.computed = true

	return nil
}

// Computed reports whether results from a successful Compute are available.
// Complexity: O(1).
func (a *Algorithm) Computed() bool { return a.computed }

// TreeEdges returns the lazy tree-edge sequence of the last successful
// Compute. The same single-use sequence is returned until the next Compute;
// once drained it stays drained. Before any Compute it reports exhausted.
// Complexity: O(1); O(1) per Next step.
func (a *Algorithm) TreeEdges() *EdgeSeq { return a.seq }

// TreeSize returns the number of edges in the last computed tree.
// Complexity: O(1).
func (a *Algorithm) TreeSize() int { return len(a.tree) }

// TotalWeight returns the summed weight of the last computed tree.
// Zero before the first successful Compute.
// Complexity: O(1).
func (a *Algorithm) TotalWeight() float64 { return a.weight }

// Clear removes the tagging label from every edge of the bound graph. The
// computed tree, its weight, and recomputability are all retained.
// Complexity: O(E).
func (a *Algorithm) Clear() {
	if !a.Bound() || !a.tag.Enabled() {
		return
	}
	for _, e := range a.graph.Edges() {
		e.RemoveProperty(a.tag.Label)
	}
}

// resetTags applies the "off" semantics to every edge: the configured off
// value, or label removal when Off is nil. No-op when tagging is disabled.
func resetTags(g *core.Graph, cfg TagConfig) {
	if !cfg.Enabled() {
		return
	}
	for _, e := range g.Edges() {
		if cfg.Off == nil {
			e.RemoveProperty(cfg.Label)
		} else {
			e.SetProperty(cfg.Label, cfg.Off)
		}
	}
}
