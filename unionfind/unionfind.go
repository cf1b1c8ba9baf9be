// Package unionfind provides a disjoint-set forest (union-find) with path
// compression and union by rank, keyed by string element IDs.
//
// A DisjointSet is built once per algorithm run (Kruskal creates one
// singleton set per graph node), mutated by Union, and discarded afterwards.
// Near-constant amortized cost per operation: O(α(n)), the inverse Ackermann
// function.
//
// Not safe for concurrent use.
package unionfind

// DisjointSet tracks a partition of string IDs into disjoint sets.
// Construct with New, then seed elements via MakeSet.
type DisjointSet struct {
	parent map[string]string // element → parent; roots point to themselves
	rank   map[string]int    // root → tree-depth upper bound
	sets   int               // number of disjoint sets remaining
}

// New returns an empty DisjointSet.
// Complexity: O(1).
func New() *DisjointSet {
	return &DisjointSet{
		parent: make(map[string]string),
		rank:   make(map[string]int),
	}
}

// NewFromIDs returns a DisjointSet with one singleton set per ID.
// Complexity: O(len(ids)).
func NewFromIDs(ids []string) *DisjointSet {
	d := &DisjointSet{
		parent: make(map[string]string, len(ids)),
		rank:   make(map[string]int, len(ids)),
	}
	for _, id := range ids {
		d.MakeSet(id)
	}

	return d
}

// MakeSet registers id as a new singleton set. Registering an existing
// element is a no-op.
// Complexity: O(1).
func (d *DisjointSet) MakeSet(id string) {
	if _, ok := d.parent[id]; ok {
		return
	}
	d.parent[id] = id
	d.rank[id] = 0
	d.sets++
}

// Find returns the representative of id's set, compressing the path as it
// walks. An unregistered id is its own representative.
// Iterative grandparent-hopping compression, to avoid deep recursion.
// Complexity: amortized O(α(n)).
func (d *DisjointSet) Find(id string) string {
	if _, ok := d.parent[id]; !ok {
		return id
	}
	for d.parent[id] != id {
		// Path compression: point id at its grandparent before hopping.
		d.parent[id] = d.parent[d.parent[id]]
		id = d.parent[id]
	}

	return id
}

// Union merges the sets containing a and b.
// Returns false if they already share a representative (the merge would
// close a cycle); otherwise attaches the lower-rank root under the
// higher-rank one (a tie increments the surviving root's rank) and returns
// true.
// Complexity: amortized O(α(n)).
func (d *DisjointSet) Union(a, b string) bool {
	rootA := d.Find(a)
	rootB := d.Find(b)
	if rootA == rootB {
		return false
	}

	// Attach the smaller-rank tree under the larger-rank root.
	if d.rank[rootA] < d.rank[rootB] {
		d.parent[rootA] = rootB
	} else {
		d.parent[rootB] = rootA
		if d.rank[rootA] == d.rank[rootB] {
			d.rank[rootA]++
		}
	}
	d.sets--

	return true
}

// Sets returns the number of disjoint sets currently tracked.
// Complexity: O(1).
func (d *DisjointSet) Sets() int { return d.sets }

// Len returns the number of registered elements.
// Complexity: O(1).
func (d *DisjointSet) Len() int { return len(d.parent) }
