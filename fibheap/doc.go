// Package fibheap implements a mergeable min-priority queue with
// decrease-key (a Fibonacci heap), generic over the payload type.
//
// Why not container/heap?
//
//	The standard binary heap costs O(log n) per decrease-key (or forces the
//	lazy duplicate-entry workaround) and cannot merge two heaps in constant
//	time. Prim's and Dijkstra's algorithms reach their O(E + V log V) bound
//	only with amortized O(1) decrease-key, which is exactly what the
//	Fibonacci heap's cut/cascading-cut mechanism provides.
//
// Amortized costs (potential = #trees + 2·#marked entries):
//
//	Insert       O(1)
//	Merge        O(1)
//	PeekMin      O(1)
//	DecreaseKey  O(1)
//	ExtractMin   O(log n)
//
// Structure:
//
//	Entries form heap-ordered multiway trees: every non-root entry's key is
//	≥ its parent's key. The roots, and each entry's children, are kept in
//	circular doubly linked lists, so splicing a list into another is O(1).
//	A direct pointer always identifies the minimum root. ExtractMin promotes
//	the minimum's children to roots and then consolidates, linking
//	equal-degree roots until all root degrees are distinct. DecreaseKey cuts
//	a violating entry out of its parent's child list and may cascade further
//	cuts upward through marked ancestors, which caps every entry's degree at
//	O(log n).
//
// Determinism:
//
//	The minimum pointer moves only when a strictly smaller key appears, so
//	among several entries tied at the minimum key the earliest-inserted one
//	is extracted first. Prim relies on this to make its first extraction
//	reproducible.
//
// The heap is not safe for concurrent use.
package fibheap
