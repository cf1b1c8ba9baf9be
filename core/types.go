// Package core declares the Graph, Node, and Edge types plus sentinel errors.
// Mutation and query methods live in graph.go; the property store in
// properties.go.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that an operation was given an empty node ID.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNotEndpoint indicates Opposite was called with a node that is not an
	// endpoint of the edge.
	ErrNotEndpoint = errors.New("core: node is not an endpoint of this edge")
)

// Node represents a vertex in the graph.
//
// ID uniquely identifies this Node within its Graph. The embedded property
// store holds arbitrary label → value data (see properties.go).
type Node struct {
	// ID is the unique identifier for this Node.
	ID string

	props
}

// Edge represents an undirected connection between two nodes.
//
// Each Edge has a unique, graph-generated ID and endpoints From/To. The
// endpoint names carry no direction: every edge is traversable both ways,
// and Opposite resolves "the other end" given either endpoint.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID string

	// From is the first endpoint's node ID.
	From string

	// To is the second endpoint's node ID.
	To string

	props
}

// IsLoop reports whether both endpoints are the same node.
// Complexity: O(1).
func (e *Edge) IsLoop() bool { return e.From == e.To }

// Opposite returns the endpoint on the other side of the edge from nodeID.
// Returns ErrNotEndpoint if nodeID is neither endpoint.
// For a self-loop both endpoints coincide and Opposite returns nodeID itself.
// Complexity: O(1).
func (e *Edge) Opposite(nodeID string) (string, error) {
	// Check the From side first; a self-loop matches here and returns To == From.
	if nodeID == e.From {
		return e.To, nil
	}
	if nodeID == e.To {
		return e.From, nil
	}

	return "", ErrNotEndpoint
}

// Graph is the core in-memory graph data structure.
//
// It is undirected, allows self-loops and parallel edges, and keeps both
// nodes and edges in insertion order for deterministic enumeration.
// Weights and any other per-element data live in the property store, not in
// dedicated fields.
type Graph struct {
	nextEdgeID uint64 // monotonically increasing edge ID source

	nodes     map[string]*Node // node ID → Node
	edges     map[string]*Edge // edge ID → Edge
	nodeOrder []*Node          // insertion-ordered nodes
	edgeOrder []*Edge          // insertion-ordered edges

	// incidence[nodeID] lists every edge touching that node, in insertion order.
	incidence map[string][]*Edge
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		nodes:     make(map[string]*Node),
		edges:     make(map[string]*Edge),
		incidence: make(map[string][]*Edge),
	}
}
