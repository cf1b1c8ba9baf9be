// Package dijkstra computes single-source shortest-path trees over a
// property-bearing core.Graph, plugged into the spantree lifecycle.
//
// A ShortestPathTree settles nodes in order of increasing distance from the
// source using a fibheap priority queue with true decrease-key (no lazy
// duplicate entries), reaching O(E + V log V).
//
// Length model
//
//	Path length is configurable: edges contribute, nodes contribute, or
//	both (EdgeLength, NodeLength, EdgeAndNodeLength). Lengths come from a
//	numeric property label; with no label configured every contributing
//	element counts as unit length 1, and a missing or non-numeric property
//	value defaults the same way. A negative length anywhere - numeric
//	negative, never a coercion fallback - is a fatal precondition violation
//	detected by an upfront scan, before any distance is finalized.
//
//	The source starts at length 0 under EdgeLength; under the node-counting
//	models it starts at its own node length.
//
// Usage
//
//	spt := dijkstra.New(
//	    dijkstra.Source("A"),
//	    dijkstra.WithLengthLabel("ms"),
//	)
//	_ = spt.Bind(g)
//	if err := spt.Compute(); err != nil { ... }
//	d := spt.DistanceTo("F")          // +Inf when unreachable
//	it := spt.PathTo("F")             // lazy reverse walk F → A
//	all := spt.AllShortestPaths("F")  // every tied path; diagnostics only
//
// All per-run state (queue entries, predecessor edges, finalized
// distances) lives in a side table owned by the instance - nothing is
// written onto the graph except the optional tagging labels - so any
// number of independent runs can coexist on one graph as long as their
// tagging labels differ.
//
// After a failed Compute (precondition violation) the instance's results
// and any tags written during that call are undefined and must not be
// trusted. Not safe for concurrent use; the graph must not be mutated
// between Compute and the queries that read its results.
//
// Complexity: O(E + V log V) time, O(V) memory per Compute.
package dijkstra
