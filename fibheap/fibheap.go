// Package fibheap: the Heap and Entry types and all queue operations.
package fibheap

import (
	"errors"
	"fmt"
	"math/bits"
)

// ErrKeyIncrease indicates that DecreaseKey was called with a key larger
// than the entry's current key. The violation is always reported, never
// silently ignored, because a raised key would corrupt the heap order.
var ErrKeyIncrease = errors.New("fibheap: DecreaseKey called with a larger key")

// Entry is a single queued item: an ordering key plus an opaque payload.
// Entries are handed out by Insert and later passed to DecreaseKey.
// An Entry is owned by exactly one Heap; after ExtractMin returns its
// payload or after Clear, the entry is dead and must not be reused.
//
// Invariant: a non-root entry's key is ≥ its parent's key. Children and
// roots form circular doubly linked lists.
type Entry[T any] struct {
	key   float64
	value T

	parent *Entry[T]
	child  *Entry[T] // any one child; the rest reachable via the sibling ring
	left   *Entry[T]
	right  *Entry[T]

	degree int  // number of children
	marked bool // lost a child since it last became someone's child
}

// Key returns the entry's current ordering key.
// Complexity: O(1).
func (e *Entry[T]) Key() float64 { return e.key }

// Value returns the entry's payload.
// Complexity: O(1).
func (e *Entry[T]) Value() T { return e.value }

// Heap is a mergeable min-priority queue. The zero value is NOT ready to
// use; construct with New. Keys must be totally ordered: NaN is not a
// valid key.
type Heap[T any] struct {
	min  *Entry[T] // direct pointer to the minimum root; nil when empty
	size int

	// scratch is the degree-indexed consolidation table, retained across
	// ExtractMin calls and resliced/zeroed per use.
	scratch []*Entry[T]
}

// New returns an empty heap.
// Complexity: O(1).
func New[T any]() *Heap[T] { return &Heap[T]{} }

// Len returns the number of queued entries.
// Complexity: O(1).
func (h *Heap[T]) Len() int { return h.size }

// Insert queues value under key and returns the entry handle for later
// DecreaseKey calls. The new entry becomes a singleton root; the minimum
// pointer moves only if key is strictly smaller, so among equal minima the
// earliest-inserted entry stays first.
// Complexity: O(1).
func (h *Heap[T]) Insert(key float64, value T) *Entry[T] {
	e := &Entry[T]{key: key, value: value}
	h.pushRoot(e)
	if key < h.min.key {
		h.min = e
	}
	h.size++

	return e
}

// Merge splices other's root list into this heap and empties other.
// Merging a heap into itself is a no-op.
// Complexity: O(1).
func (h *Heap[T]) Merge(other *Heap[T]) {
	if other == nil || other == h || other.min == nil {
		return
	}
	if h.min == nil {
		// This heap is empty: adopt other's forest wholesale.
		h.min = other.min
	} else {
		// Concatenate the two root rings.
		meld(h.min, other.min)
		// Strict comparison keeps this heap's minimum on ties.
		if other.min.key < h.min.key {
			h.min = other.min
		}
	}
	h.size += other.size
	other.min = nil
	other.size = 0
}

// PeekMin returns the minimum key and its payload without removing it.
// The third result is false when the heap is empty.
// Complexity: O(1).
func (h *Heap[T]) PeekMin() (float64, T, bool) {
	if h.min == nil {
		var zero T

		return 0, zero, false
	}

	return h.min.key, h.min.value, true
}

// ExtractMin removes the minimum entry and returns its key and payload.
// The third result is false when the heap is empty.
//
// The minimum root's children are promoted to roots (parent links cleared),
// then the forest is consolidated: equal-degree roots are linked pairwise,
// the larger key becoming a child of the smaller (its mark cleared), until
// all root degrees are distinct. The minimum pointer is then rebuilt by a
// root scan with strict comparison, so ties resolve to the first candidate
// in degree order, deterministically.
// Complexity: amortized O(log n).
func (h *Heap[T]) ExtractMin() (float64, T, bool) {
	z := h.min
	if z == nil {
		var zero T

		return 0, zero, false
	}

	// 1. Promote z's children to the root list.
	if z.child != nil {
		c := z.child
		for {
			c.parent = nil
			c = c.right
			if c == z.child {
				break
			}
		}
		meld(z, z.child)
		z.child = nil
	}

	// 2. Detach z from the root ring and rebuild the forest.
	if z.right == z {
		// z was the only root and had no children: heap is now empty.
		h.min = nil
	} else {
		h.min = z.right // provisional; consolidate rescans for the true minimum
		detach(z)
		h.consolidate()
	}
	h.size--

	return z.key, z.value, true
}

// DecreaseKey lowers e's key to key.
//
// Error Conditions:
//   - ErrKeyIncrease : if key > e.Key(). The heap is left untouched.
//
// If the heap order still holds against e's parent, only the key (and
// possibly the minimum pointer) changes. Otherwise e's subtree is cut to
// the root list and a cascading cut walks up the ancestor chain: an
// unmarked ancestor is marked and the walk stops; a marked ancestor is cut
// too and the walk continues. The entry must belong to this heap.
// Complexity: amortized O(1).
func (h *Heap[T]) DecreaseKey(e *Entry[T], key float64) error {
	if key > e.key {
		return fmt.Errorf("%w: %v > %v", ErrKeyIncrease, key, e.key)
	}
	e.key = key

	// Cut only when the heap property is actually violated.
	if p := e.parent; p != nil && e.key < p.key {
		h.cut(e, p)
		h.cascadingCut(p)
	}
	if e.key < h.min.key {
		h.min = e
	}

	return nil
}

// Clear drops all entries. Outstanding Entry handles become invalid.
// Complexity: O(log n) for zeroing the scratch table; the abandoned
// forest is garbage collected.
func (h *Heap[T]) Clear() {
	h.min = nil
	h.size = 0
	// The consolidation table may still hold roots of the old forest;
	// zero it so the entries are actually collectible.
	for i := range h.scratch {
		h.scratch[i] = nil
	}
}

// consolidate links equal-degree roots until every root degree is unique,
// then rescans the survivors for the new minimum. Called only by
// ExtractMin, before h.size is decremented.
func (h *Heap[T]) consolidate() {
	// Degree bound: max degree < 1.45·log2(n); double the bit length is a
	// comfortable table size.
	need := 2*bits.Len(uint(h.size)) + 2
	if cap(h.scratch) < need {
		h.scratch = make([]*Entry[T], need)
	}
	table := h.scratch[:need]
	for i := range table {
		table[i] = nil
	}

	// Snapshot the root ring: linking rewires it mid-scan.
	roots := make([]*Entry[T], 0, 8)
	for r := h.min; ; {
		roots = append(roots, r)
		r = r.right
		if r == h.min {
			break
		}
	}

	// Pairwise linking: whenever two roots share a degree, the larger key
	// goes under the smaller. Ties keep x (the earlier-processed root) on top.
	for _, x := range roots {
		d := x.degree
		for table[d] != nil {
			y := table[d]
			if y.key < x.key {
				x, y = y, x
			}
			h.link(y, x)
			table[d] = nil
			d++
		}
		table[d] = x
	}

	// Rebuild the minimum pointer from the surviving roots.
	h.min = nil
	for _, x := range table {
		if x == nil {
			continue
		}
		if h.min == nil || x.key < h.min.key {
			h.min = x
		}
	}
}

// link removes root y from the root ring and makes it a child of x,
// clearing y's mark.
func (h *Heap[T]) link(y, x *Entry[T]) {
	detach(y)
	y.parent = x
	y.marked = false
	if x.child == nil {
		x.child = y
	} else {
		meld(x.child, y)
	}
	x.degree++
}

// cut detaches e's subtree from its parent p and promotes e to the root
// list, clearing its mark.
func (h *Heap[T]) cut(e, p *Entry[T]) {
	if p.child == e {
		if e.right == e {
			p.child = nil
		} else {
			p.child = e.right
		}
	}
	detach(e)
	p.degree--
	h.pushRoot(e)
}

// cascadingCut walks upward from p: stop at a root; mark an unmarked
// ancestor and stop; cut an already-marked ancestor and keep climbing.
// Iterative on purpose, the chain can be long.
func (h *Heap[T]) cascadingCut(p *Entry[T]) {
	for {
		z := p.parent
		if z == nil {
			// Roots never carry a mark.
			return
		}
		if !p.marked {
			p.marked = true

			return
		}
		h.cut(p, z)
		p = z
	}
}

// pushRoot splices e into the root ring as a singleton. Does not touch the
// minimum pointer; callers update it when appropriate.
func (h *Heap[T]) pushRoot(e *Entry[T]) {
	e.parent = nil
	e.marked = false
	if h.min == nil {
		e.left, e.right = e, e
		h.min = e

		return
	}
	e.left = h.min
	e.right = h.min.right
	h.min.right.left = e
	h.min.right = e
}

// meld concatenates the ring containing b into the ring containing a,
// immediately after a. Both rings must be non-nil and disjoint.
func meld[T any](a, b *Entry[T]) {
	ar := a.right
	bl := b.left
	a.right = b
	b.left = a
	bl.right = ar
	ar.left = bl
}

// detach removes e from its sibling ring, leaving e as a self-ring.
func detach[T any](e *Entry[T]) {
	e.left.right = e.right
	e.right.left = e.left
	e.left, e.right = e, e
}
