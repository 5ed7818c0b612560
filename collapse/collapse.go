// Package collapse tracks which handles currently have their children
// hidden from the flattened projection.
package collapse

import (
	"github.com/arbortui/treeview/forest"
	"github.com/arbortui/treeview/handle"
)

// Set is the collection of handles marked collapsed. A handle in the set
// means "children are hidden in the flattened projection" (spec §3).
type Set struct {
	collapsed map[handle.Handle]struct{}
}

// New creates an empty collapse set.
func New() *Set {
	return &Set{collapsed: make(map[handle.Handle]struct{})}
}

// Collapse adds h to the set iff h is live and has at least one child.
// Collapsing a childless node (or a stale handle) is a no-op.
func (s *Set) Collapse(h handle.Handle, f *forest.Forest) {
	if !f.HasChildren(h) {
		return
	}
	s.collapsed[h] = struct{}{}
}

// Expand removes h from the set, if present. Expanding a node that is not
// collapsed is a no-op.
func (s *Set) Expand(h handle.Handle) {
	delete(s.collapsed, h)
}

// Collapsed reports whether h is currently in the set.
func (s *Set) Collapsed(h handle.Handle) bool {
	_, ok := s.collapsed[h]
	return ok
}

// Forget removes h from the set unconditionally, without checking
// liveness. Used by view.Remove to opportunistically prune entries for
// handles it is about to free, since the set otherwise retains stale
// entries harmlessly but unboundedly (spec §9 Open Questions).
func (s *Set) Forget(h handle.Handle) {
	delete(s.collapsed, h)
}
