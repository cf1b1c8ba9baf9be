// Package spantree builds minimum spanning trees (and forests) over a
// property-bearing core.Graph, and hosts the shared lifecycle every
// tree-building strategy runs through.
//
// Lifecycle
//
//	An Algorithm moves Unbound → Bound → Computed:
//
//	  alg := spantree.NewKruskal(
//	      spantree.WithWeightLabel("cost"),
//	      spantree.WithTagging(spantree.TagConfig{Label: "in-tree", On: true, Off: false}),
//	  )
//	  _ = alg.Bind(g)
//	  _ = alg.Compute()
//	  seq := alg.TreeEdges() // lazy, single-use
//	  w := alg.TotalWeight()
//
//	Compute always starts from scratch: it first applies the "off" tag to
//	every edge, then runs the strategy, then the reported tree edges carry
//	the "on" tag. Compute on an unbound algorithm is a documented no-op.
//	Tagging configuration freezes at Bind; changing it later is a state
//	error. Clear strips the tagging label from all edges without discarding
//	the computed results or recomputability.
//
// Tagging semantics
//
//	An empty TagConfig.Label disables tagging entirely. A nil On means tree
//	edges get the label removed instead of set; a nil Off means the same for
//	non-tree edges.
//
// Strategies
//
//	Kruskal - sort all edges ascending by weight (stable, so ties break by
//	the graph's enumeration order), then scan with a disjoint-set forest,
//	accepting every edge that joins two components. O(E log E + α(V)·E).
//
//	Prim - one fibheap entry per node, keyed +Inf, lowered to the cheapest
//	known connecting edge as the tree grows; extraction order follows the
//	decrease-key priority queue. O(E + V log V).
//
//	Both silently produce a spanning forest on a disconnected graph: the
//	smaller tree count is a property of the input, not an error.
//
// Edge weights come from a numeric edge property (default label "weight");
// a missing or non-numeric value counts as weight 1.
//
// Dijkstra's shortest-path tree lives in the sibling dijkstra package and
// plugs into the same lifecycle through the Builder interface.
//
// Not safe for concurrent use; the bound graph must not be mutated during
// Compute.
package spantree
