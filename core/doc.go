// Package core defines the central Graph, Node, and Edge types that the
// tree-building algorithms consume: stable node/edge enumeration, per-node
// incident-edge lists, endpoint accessors, and a generic per-element
// property store with numeric coercion.
//
// Enumeration determinism:
//
//	Nodes() and Edges() return elements in insertion order, and the order is
//	stable across calls as long as the graph is not mutated. Algorithms rely
//	on this for reproducible tie-breaking (e.g. Kruskal's stable sort).
//
// Property store:
//
//	Every Node and Edge carries an arbitrary label → value map accessed via
//	SetProperty / Property / RemoveProperty. NumberOr coerces a stored value
//	to float64 for weight/length labels: any Go numeric type converts, and a
//	missing or non-numeric value yields the caller's default instead of an
//	error.
//
// Concurrency:
//
//	Graph performs no internal locking. A computation assumes a stable
//	node/edge set for its whole duration; callers that share a graph across
//	goroutines must serialize mutation externally.
//
// Errors:
//
//	ErrEmptyNodeID  - node ID is the empty string.
//	ErrNodeNotFound - requested node does not exist.
//	ErrEdgeNotFound - requested edge does not exist.
//	ErrNotEndpoint  - Opposite was asked about a node the edge does not touch.
package core
