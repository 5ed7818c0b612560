// Package view is the heart of the engine: it owns the flattened sequence,
// the cursor (selected index), the viewport (offset, count), and the
// recorded jump target, and keeps all four coherent under every mutation
// (move, collapse, expand, add-child, add-sibling, remove, record, goto).
//
// Every operation here is total on its declared precondition (spec §7):
// failures are reported as a boolean, never as an error or a panic, and an
// operation that cannot apply leaves the view unchanged.
package view

import (
	"fmt"

	"github.com/arbortui/treeview/collapse"
	"github.com/arbortui/treeview/flatten"
	"github.com/arbortui/treeview/forest"
	"github.com/arbortui/treeview/handle"
)

// View is the (flattened, offset, selected, count, recorded) state of
// spec §3, plus the forest/collapse-set it was built against.
type View struct {
	Flattened []flatten.Entry
	Offset    int
	Selected  int
	Count     int
	Recorded  handle.Handle

	forest   *forest.Forest
	collapse *collapse.Set
}

// New builds a view over f, filtered by c, with viewport height count. The
// flattened sequence is materialised once here; every subsequent mutation
// maintains it incrementally rather than rebuilding it (spec §9).
func New(f *forest.Forest, c *collapse.Set, count int) *View {
	return &View{
		Flattened: flatten.Entities(f.Roots, f, c),
		Offset:    0,
		Selected:  0,
		Count:     count,
		Recorded:  handle.None,
		forest:    f,
		collapse:  c,
	}
}

// Len returns the number of entries currently flattened and visible.
func (v *View) Len() int {
	return len(v.Flattened)
}

// SetCount changes the viewport height, re-clamping Offset so it still
// satisfies invariant 2 (spec §4.5) under the new height.
func (v *View) SetCount(count int) {
	v.Count = count
	v.clampOffset()
}

// SelectedHandle returns the handle at the cursor, or (None, false) when
// the view has no selection (empty flattened sequence).
func (v *View) SelectedHandle() (handle.Handle, bool) {
	if len(v.Flattened) == 0 {
		return handle.None, false
	}
	return v.Flattened[v.Selected].Handle, true
}

// VisibleSubtreeSize counts h plus every descendant not hidden beneath a
// collapsed ancestor (spec §4.5). It returns 1 if h is itself collapsed.
func (v *View) VisibleSubtreeSize(h handle.Handle) int {
	return len(flatten.Entity(h, 0, v.forest, v.collapse))
}

// MoveUp decrements Selected by one, scrolling the viewport up if the
// cursor leaves it above. No-op if there is no selection or the cursor is
// already at the top.
func (v *View) MoveUp() {
	if len(v.Flattened) == 0 || v.Selected == 0 {
		return
	}
	v.Selected--
	if v.Selected < v.Offset {
		v.Offset = v.Selected
	}
	v.clampOffset()
}

// MoveDown increments Selected by one, scrolling the viewport down if the
// cursor leaves it below. No-op if there is no selection or the cursor is
// already at the bottom.
func (v *View) MoveDown() {
	n := len(v.Flattened)
	if n == 0 || v.Selected >= n-1 {
		return
	}
	v.Selected++
	if v.Selected >= v.Offset+v.Count {
		v.Offset++
	}
	v.clampOffset()
}

// Collapse hides the selected node's children, if it has any and is not
// already collapsed. Returns false (no-op) otherwise.
func (v *View) Collapse() bool {
	h, ok := v.SelectedHandle()
	if !ok || v.collapse.Collapsed(h) || !v.forest.HasChildren(h) {
		return false
	}

	k := v.VisibleSubtreeSize(h)
	v.collapse.Collapse(h, v.forest)

	start := v.Selected + 1
	end := v.Selected + k // exclusive; removes the k-1 descendant rows, leaves h's own row in place
	v.Flattened = append(v.Flattened[:start:start], v.Flattened[end:]...)

	v.clampOffset()
	return true
}

// Expand reveals the selected node's children, if it is currently
// collapsed. Returns false (no-op) otherwise.
func (v *View) Expand() bool {
	h, ok := v.SelectedHandle()
	if !ok || !v.collapse.Collapsed(h) {
		return false
	}

	indent := v.Flattened[v.Selected].Indent
	v.collapse.Expand(h)
	sub := flatten.Entity(h, indent, v.forest, v.collapse)

	v.Flattened = insertEntries(v.Flattened, v.Selected+1, sub[1:])
	v.clampOffset()
	return true
}

// AddChild allocates a new node named "entity_<id>" and appends it as the
// selected node's last child. Fails (returns handle.None, false) if
// there is no selection or the selection is collapsed.
func (v *View) AddChild() (handle.Handle, bool) {
	h, ok := v.SelectedHandle()
	if !ok || v.collapse.Collapsed(h) {
		return handle.None, false
	}
	entry := v.Flattened[v.Selected]

	oldSize := v.VisibleSubtreeSize(h)
	newHandle := v.newNode()
	v.forest.AddChildren(h, []handle.Handle{newHandle})

	pos := v.Selected + oldSize
	if pos > len(v.Flattened) {
		pos = len(v.Flattened)
	}
	newEntry := flatten.Entry{Handle: newHandle, Indent: entry.Indent + 1}
	v.Flattened = insertEntries(v.Flattened, pos, []flatten.Entry{newEntry})

	v.clampOffset()
	return newHandle, true
}

// AddSibling allocates a new node named "entity_<id>" and attaches it as
// the last child of the selected node's parent (or appends it to the
// forest's roots if the selection is a root, or the view is empty). The
// new entry is inserted immediately after the visible extent of the
// selected node and every later sibling that currently follows it — i.e.
// directly below the last visible descendant of the last following
// sibling, resolving the ambiguity noted in spec §4.5/§9.
//
// Returns the new handle and its index in Flattened.
func (v *View) AddSibling() (handle.Handle, int) {
	if len(v.Flattened) == 0 {
		newHandle := v.newNode()
		v.forest.Roots = append(v.forest.Roots, newHandle)
		v.Flattened = []flatten.Entry{{Handle: newHandle, Indent: 0}}
		v.Selected = 0
		v.Offset = 0
		return newHandle, 0
	}

	entry := v.Flattened[v.Selected]
	n := v.forest.Arena.Lookup(entry.Handle)
	siblings := v.forest.Siblings(entry.Handle)

	selfIdx := indexOf(siblings, entry.Handle)
	later := siblings[selfIdx+1:]

	pos := v.Selected + v.VisibleSubtreeSize(entry.Handle)
	for _, s := range later {
		pos += v.VisibleSubtreeSize(s)
	}
	if pos > len(v.Flattened) {
		pos = len(v.Flattened)
	}

	newHandle := v.newNode()
	if n.Parent.IsNone() {
		v.forest.Roots = append(v.forest.Roots, newHandle)
	} else {
		v.forest.AddChildren(n.Parent, []handle.Handle{newHandle})
	}

	newEntry := flatten.Entry{Handle: newHandle, Indent: entry.Indent}
	v.Flattened = insertEntries(v.Flattened, pos, []flatten.Entry{newEntry})

	v.clampOffset()
	return newHandle, pos
}

// Remove deletes the selected node's entire subtree: every descendant is
// freed from the arena, the collapse set forgets them, the subtree's rows
// are erased from Flattened, and the recorded jump target is cleared if it
// pointed inside the removed subtree. No-op if there is no selection.
func (v *View) Remove() bool {
	h, ok := v.SelectedHandle()
	if !ok {
		return false
	}
	k := v.VisibleSubtreeSize(h) // must be computed while h is still live

	removed := v.collectSubtree(h)
	n := v.forest.Arena.Lookup(h)
	v.forest.RemoveChild(n.Parent, h)

	removedSet := make(map[handle.Handle]struct{}, len(removed))
	for _, rh := range removed {
		removedSet[rh] = struct{}{}
		v.collapse.Forget(rh)
		v.forest.Arena.Remove(rh)
	}
	if _, gone := removedSet[v.Recorded]; gone {
		v.Recorded = handle.None
	}

	start := v.Selected
	end := v.Selected + k
	if end > len(v.Flattened) {
		end = len(v.Flattened)
	}
	v.Flattened = append(v.Flattened[:start:start], v.Flattened[end:]...)

	newLen := len(v.Flattened)
	if v.Selected > newLen-1 {
		v.Selected = max(0, newLen-1)
	}
	v.clampOffset()
	return true
}

// RecordHandle copies the selected handle into Recorded. No-op if there is
// no selection.
func (v *View) RecordHandle() {
	h, ok := v.SelectedHandle()
	if !ok {
		return
	}
	v.Recorded = h
}

// GotoRecorded locates the recorded handle in Flattened, expanding the
// minimal chain of collapsed ancestors needed to reveal it, then sets both
// Selected and Offset to its index, with Offset clamped so the window does
// not run past the end of Flattened. No-op if Recorded is not a live
// handle.
func (v *View) GotoRecorded() bool {
	if v.Recorded.IsNone() || v.forest.Arena.Lookup(v.Recorded) == nil {
		return false
	}

	for {
		if idx := v.indexOfFlattened(v.Recorded); idx >= 0 {
			v.Selected = idx
			v.Offset = idx
			v.clampOffset()
			return true
		}

		ancestor := v.topmostCollapsedAncestor(v.Recorded)
		if ancestor.IsNone() {
			return false
		}
		ancestorIdx := v.indexOfFlattened(ancestor)
		if ancestorIdx < 0 {
			return false
		}

		indent := v.Flattened[ancestorIdx].Indent
		v.collapse.Expand(ancestor)
		sub := flatten.Entity(ancestor, indent, v.forest, v.collapse)
		v.Flattened = insertEntries(v.Flattened, ancestorIdx+1, sub[1:])
	}
}

// newNode allocates a node in the arena and gives it the observable
// "entity_<id>" name spec §6 requires, where <id> is the handle's index.
func (v *View) newNode() handle.Handle {
	h := v.forest.Arena.Add()
	n := v.forest.Arena.Lookup(h)
	n.Name = fmt.Sprintf("entity_%d", h.Index)
	return h
}

// collectSubtree returns h and every descendant, ignoring collapse state,
// via an explicit LIFO stack (same traversal discipline as flatten).
func (v *View) collectSubtree(h handle.Handle) []handle.Handle {
	var out []handle.Handle
	stack := []handle.Handle{h}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, cur)
		if n := v.forest.Arena.Lookup(cur); n != nil {
			stack = append(stack, n.Children...)
		}
	}
	return out
}

func (v *View) indexOfFlattened(h handle.Handle) int {
	for i, e := range v.Flattened {
		if e.Handle == h {
			return i
		}
	}
	return -1
}

// topmostCollapsedAncestor returns the collapsed ancestor of h closest to
// the root of h's tree — the one that, once expanded, exposes the most of
// the hidden chain down toward h in a single splice.
func (v *View) topmostCollapsedAncestor(h handle.Handle) handle.Handle {
	var chain []handle.Handle
	cur := h
	for {
		n := v.forest.Arena.Lookup(cur)
		if n == nil || n.Parent.IsNone() {
			break
		}
		chain = append(chain, n.Parent)
		cur = n.Parent
	}
	for i := len(chain) - 1; i >= 0; i-- {
		if v.collapse.Collapsed(chain[i]) {
			return chain[i]
		}
	}
	return handle.None
}

func (v *View) clampOffset() {
	maxOffset := max(0, len(v.Flattened)-v.Count)
	if v.Offset > maxOffset {
		v.Offset = maxOffset
	}
	if v.Offset < 0 {
		v.Offset = 0
	}
}

func insertEntries(entries []flatten.Entry, at int, insert []flatten.Entry) []flatten.Entry {
	if len(insert) == 0 {
		return entries
	}
	out := make([]flatten.Entry, 0, len(entries)+len(insert))
	out = append(out, entries[:at]...)
	out = append(out, insert...)
	out = append(out, entries[at:]...)
	return out
}

func indexOf(list []handle.Handle, target handle.Handle) int {
	for i, h := range list {
		if h == target {
			return i
		}
	}
	return -1
}
