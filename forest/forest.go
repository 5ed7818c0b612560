// Package forest layers parent/child structure and root ordering on top of
// an arena.Arena.
package forest

import (
	"github.com/arbortui/treeview/arena"
	"github.com/arbortui/treeview/handle"
)

// Forest owns the node arena plus the externally-meaningful top-to-bottom
// ordering of root handles. A handle appears in Roots iff its node has
// Parent == handle.None.
type Forest struct {
	Arena *arena.Arena
	Roots []handle.Handle
}

// New creates an empty forest backed by a fresh arena.
func New() *Forest {
	return &Forest{Arena: arena.New()}
}

// AddChildren appends each child to parent's child list, in the given
// order, and sets each child's Parent to parent. Both parent and every
// child must already be live, and no child may already have a parent;
// violating either precondition is a caller bug and is not checked here,
// matching the "no thrown failure" propagation policy of the operations
// that are allowed to fail (spec §7) — add_children itself is only ever
// called by the view with handles it just allocated.
func (f *Forest) AddChildren(parent handle.Handle, children []handle.Handle) {
	p := f.Arena.Lookup(parent)
	if p == nil {
		return
	}
	p.Children = append(p.Children, children...)
	for _, c := range children {
		if n := f.Arena.Lookup(c); n != nil {
			n.Parent = parent
		}
	}
}

// Siblings returns the ordered list h belongs to: Roots if h is itself a
// root (or h.Parent is none), otherwise h's parent's child list.
func (f *Forest) Siblings(h handle.Handle) []handle.Handle {
	n := f.Arena.Lookup(h)
	if n == nil || n.Parent.IsNone() {
		return f.Roots
	}
	p := f.Arena.Lookup(n.Parent)
	if p == nil {
		return f.Roots
	}
	return p.Children
}

// HasChildren reports whether h is live and has at least one child.
func (f *Forest) HasChildren(h handle.Handle) bool {
	n := f.Arena.Lookup(h)
	return n != nil && len(n.Children) > 0
}

// RootOf walks h's parent chain and returns the root it descends from,
// along with the depth (0 for a root itself) at which h was found.
func (f *Forest) RootOf(h handle.Handle) (handle.Handle, int) {
	depth := 0
	curr := h
	for {
		n := f.Arena.Lookup(curr)
		if n == nil {
			return handle.None, 0
		}
		if n.Parent.IsNone() {
			return curr, depth
		}
		curr = n.Parent
		depth++
	}
}

// RemoveChild detaches child from parent's child list (or from Roots if
// parent is handle.None), preserving the order of the remaining entries.
// It does not touch the arena; callers are expected to free the subtree
// separately.
func (f *Forest) RemoveChild(parent, child handle.Handle) {
	if parent.IsNone() {
		f.Roots = removeHandle(f.Roots, child)
		return
	}
	p := f.Arena.Lookup(parent)
	if p == nil {
		return
	}
	p.Children = removeHandle(p.Children, child)
}

func removeHandle(list []handle.Handle, target handle.Handle) []handle.Handle {
	for i, h := range list {
		if h == target {
			return append(list[:i:i], list[i+1:]...)
		}
	}
	return list
}
