// Package spantree is an in-memory toolkit for growing trees over
// property-bearing graphs: minimum spanning forests and single-source
// shortest-path trees, sharing one bind/compute/tag lifecycle.
//
// What's inside?
//
//   - core/      - Graph, Node, Edge with a generic property store and
//     deterministic insertion-order enumeration
//   - fibheap/   - mergeable priority queue with amortized O(1)
//     decrease-key (a Fibonacci heap), generic payloads
//   - unionfind/ - disjoint-set forest with path compression & union by rank
//   - spantree/  - the shared tree lifecycle + tagging, with Kruskal and
//     Prim strategies
//   - dijkstra/  - shortest-path trees with configurable edge/node length
//     models, lazy path walks, and tied-path enumeration
//
// Why this shape?
//
//   - One lifecycle, many strategies – Kruskal, Prim, and Dijkstra are
//     independent implementors of a tiny Builder interface; the lifecycle
//     owns tag reset/apply, result exposure, and the state rules
//   - Honest data structures – a real decrease-key heap instead of lazy
//     duplicate entries, so Prim and Dijkstra hit O(E + V log V)
//   - Results as labels – tree membership is written onto edges as
//     property tags any downstream consumer can read
//   - Pure Go – no cgo, the only dependency is testify for tests
//
// Quick ASCII example:
//
//	A───B          the MST of a unit-weight square keeps three of
//	│   │          the four edges; which three is a documented,
//	D───C          deterministic tie-break
//
// Start with the spantree package docs, then dijkstra for shortest paths.
package spantree
