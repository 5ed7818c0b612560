// Package arena provides stable, generational-handle storage for tree
// nodes: O(1) lookup, O(1) freed-slot reuse, and invalidation of stale
// handles on reuse.
package arena

import "github.com/arbortui/treeview/handle"

// Node is a single entry in the forest: a name, an ordered list of child
// handles, and a back-reference to its parent (handle.None for a root).
type Node struct {
	Name     string
	Children []handle.Handle
	Parent   handle.Handle
}

type slot struct {
	node       Node
	generation uint32
	live       bool
}

// Arena owns storage for every Node in the forest, keyed by generational
// handle. Slots freed by Remove are tracked on a free-list and reused by
// Add, with their generation bumped so handles issued before the reuse
// fail Lookup afterward.
type Arena struct {
	slots []slot
	free  []uint32
}

// New creates an empty arena.
func New() *Arena {
	return &Arena{}
}

// Add allocates a slot containing a default-constructed Node and returns a
// handle carrying the slot's current generation. The returned handle is
// never equal to any other currently-live handle.
func (a *Arena) Add() handle.Handle {
	if n := len(a.free); n > 0 {
		idx := a.free[n-1]
		a.free = a.free[:n-1]
		s := &a.slots[idx]
		s.node = Node{Parent: handle.None}
		s.live = true
		return handle.Handle{Index: idx, Generation: s.generation}
	}

	idx := uint32(len(a.slots))
	a.slots = append(a.slots, slot{
		node:       Node{Parent: handle.None},
		generation: 0,
		live:       true,
	})
	return handle.Handle{Index: idx, Generation: 0}
}

// Remove frees the slot referenced by h, incrementing its generation so
// any previously issued handle to that slot fails Lookup. Returns false
// if h did not refer to a live slot.
func (a *Arena) Remove(h handle.Handle) bool {
	s, ok := a.slotFor(h)
	if !ok {
		return false
	}
	s.live = false
	s.node = Node{}
	s.generation++
	a.free = append(a.free, h.Index)
	return true
}

// Lookup returns a pointer to the node referenced by h, or nil if h's
// generation does not match the slot's current generation (including the
// case where the slot was never allocated or was removed). The returned
// pointer may be mutated directly by the caller; it is invalidated by a
// later Remove of the same handle.
func (a *Arena) Lookup(h handle.Handle) *Node {
	s, ok := a.slotFor(h)
	if !ok {
		return nil
	}
	return &s.node
}

func (a *Arena) slotFor(h handle.Handle) (*slot, bool) {
	if h.IsNone() || int(h.Index) >= len(a.slots) {
		return nil, false
	}
	s := &a.slots[h.Index]
	if !s.live || s.generation != h.Generation {
		return nil, false
	}
	return s, true
}

// Empty reports whether the arena holds no live nodes.
func (a *Arena) Empty() bool {
	return a.Len() == 0
}

// Len returns the number of live nodes currently stored.
func (a *Arena) Len() int {
	return len(a.slots) - len(a.free)
}
