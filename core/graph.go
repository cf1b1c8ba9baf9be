// Package core: Graph mutation and query methods.
package core

import "strconv"

// AddNode inserts a node with the given ID and returns it.
// Adding an existing ID is idempotent: the existing node is returned.
//
// Error Conditions:
//   - ErrEmptyNodeID : if id is the empty string.
//
// Complexity: O(1).
func (g *Graph) AddNode(id string) (*Node, error) {
	if id == "" {
		return nil, ErrEmptyNodeID
	}
	// Idempotent insert: an already-present node is simply handed back.
	if n, ok := g.nodes[id]; ok {
		return n, nil
	}
	n := &Node{ID: id}
	g.nodes[id] = n
	g.nodeOrder = append(g.nodeOrder, n)
	g.incidence[id] = nil

	return n, nil
}

// AddEdge inserts an undirected edge between from and to and returns it.
// Missing endpoints are created automatically (teachability over strictness:
// building a graph edge-by-edge should not require pre-registering nodes).
// Parallel edges and self-loops are permitted.
//
// Error Conditions:
//   - ErrEmptyNodeID : if either endpoint ID is empty.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string) (*Edge, error) {
	// 1. Ensure both endpoints exist (auto-create).
	if _, err := g.AddNode(from); err != nil {
		return nil, err
	}
	if _, err := g.AddNode(to); err != nil {
		return nil, err
	}

	// 2. Allocate a unique edge ID from the monotone counter.
	e := &Edge{
		ID:   "e" + strconv.FormatUint(g.nextEdgeID, 10),
		From: from,
		To:   to,
	}
	g.nextEdgeID++

	// 3. Register in the ID index, the enumeration order, and both incidence lists.
	g.edges[e.ID] = e
	g.edgeOrder = append(g.edgeOrder, e)
	g.incidence[from] = append(g.incidence[from], e)
	if from != to {
		// Self-loops appear exactly once in their node's incidence list.
		g.incidence[to] = append(g.incidence[to], e)
	}

	return e, nil
}

// RemoveEdge deletes the edge with the given ID.
//
// Error Conditions:
//   - ErrEdgeNotFound : if no edge with this ID exists.
//
// Complexity: O(E) due to order-preserving slice removal.
func (g *Graph) RemoveEdge(id string) error {
	e, ok := g.edges[id]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, id)
	g.edgeOrder = removeEdgeFrom(g.edgeOrder, e)
	g.incidence[e.From] = removeEdgeFrom(g.incidence[e.From], e)
	if e.From != e.To {
		g.incidence[e.To] = removeEdgeFrom(g.incidence[e.To], e)
	}

	return nil
}

// RemoveNode deletes the node with the given ID along with all incident edges.
//
// Error Conditions:
//   - ErrNodeNotFound : if no node with this ID exists.
//
// Complexity: O(V + E).
func (g *Graph) RemoveNode(id string) error {
	n, ok := g.nodes[id]
	if !ok {
		return ErrNodeNotFound
	}
	// Drop incident edges first; copy the list because RemoveEdge mutates it.
	incident := make([]*Edge, len(g.incidence[id]))
	copy(incident, g.incidence[id])
	for _, e := range incident {
		_ = g.RemoveEdge(e.ID)
	}
	delete(g.incidence, id)
	delete(g.nodes, id)
	for i, cand := range g.nodeOrder {
		if cand == n {
			g.nodeOrder = append(g.nodeOrder[:i], g.nodeOrder[i+1:]...)
			break
		}
	}

	return nil
}

// HasNode reports whether a node with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]

	return ok
}

// Node returns the node with the given ID, or ErrNodeNotFound.
// Complexity: O(1).
func (g *Graph) Node(id string) (*Node, error) {
	n, ok := g.nodes[id]
	if !ok {
		return nil, ErrNodeNotFound
	}

	return n, nil
}

// HasEdge reports whether an edge with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasEdge(id string) bool {
	_, ok := g.edges[id]

	return ok
}

// Edge returns the edge with the given ID, or ErrEdgeNotFound.
// Complexity: O(1).
func (g *Graph) Edge(id string) (*Edge, error) {
	e, ok := g.edges[id]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// NodeCount returns the number of nodes.
// Complexity: O(1).
func (g *Graph) NodeCount() int { return len(g.nodeOrder) }

// EdgeCount returns the number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int { return len(g.edgeOrder) }

// Nodes returns all nodes in insertion order. The returned slice is a copy;
// mutating it does not affect the graph.
// Complexity: O(V).
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, len(g.nodeOrder))
	copy(out, g.nodeOrder)

	return out
}

// Edges returns all edges in insertion order. The returned slice is a copy.
// The order is stable across calls between mutations; algorithms use it as
// the deterministic tie-break source.
// Complexity: O(E).
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, len(g.edgeOrder))
	copy(out, g.edgeOrder)

	return out
}

// IncidentEdges returns every edge touching the given node, in insertion
// order. The returned slice is a copy. A self-loop appears once.
//
// Error Conditions:
//   - ErrNodeNotFound : if the node does not exist.
//
// Complexity: O(deg(node)).
func (g *Graph) IncidentEdges(id string) ([]*Edge, error) {
	if !g.HasNode(id) {
		return nil, ErrNodeNotFound
	}
	inc := g.incidence[id]
	out := make([]*Edge, len(inc))
	copy(out, inc)

	return out, nil
}

// removeEdgeFrom deletes the first occurrence of e from s, preserving order.
func removeEdgeFrom(s []*Edge, e *Edge) []*Edge {
	for i, cand := range s {
		if cand == e {
			return append(s[:i], s[i+1:]...)
		}
	}

	return s
}
