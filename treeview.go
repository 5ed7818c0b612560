// Package treeview is the facade: it composes the arena-backed forest, the
// collapse set, the view, and the renderer into the single session a
// caller drives one command and one frame at a time (spec §5's "one
// logical turn: receive a command, mutate, paint, yield").
package treeview

import (
	"github.com/arbortui/treeview/collapse"
	"github.com/arbortui/treeview/command"
	"github.com/arbortui/treeview/forest"
	"github.com/arbortui/treeview/handle"
	"github.com/arbortui/treeview/render"
	"github.com/arbortui/treeview/view"
)

// Tree is a complete hierarchy-browser session: a forest, its collapse
// set, a view over them, and the renderer used to paint it. The zero value
// is not usable; construct with New or NewFromForest.
type Tree struct {
	forest   *forest.Forest
	collapse *collapse.Set
	view     *view.View
	renderer *render.Renderer
}

// New creates an empty session with the given viewport height and display
// configuration.
func New(count int, cfg render.Config) *Tree {
	return NewFromForest(forest.New(), count, cfg)
}

// NewFromForest builds a session over an already-populated forest, useful
// for seeding a session with fixture data (spec §9 Scenario 1, or a
// persisted snapshot an external caller reconstructs).
func NewFromForest(f *forest.Forest, count int, cfg render.Config) *Tree {
	c := collapse.New()
	return &Tree{
		forest:   f,
		collapse: c,
		view:     view.New(f, c, count),
		renderer: render.New(cfg),
	}
}

// Dispatch applies one input command (spec §6) to the session's view.
func (t *Tree) Dispatch(cmd command.Command) {
	command.Dispatch(cmd, t.view)
}

// Paint renders the current frame onto surface.
func (t *Tree) Paint(surface render.DrawingSurface) {
	t.renderer.Paint(surface, t.view, t.forest, t.collapse)
}

// SelectedHandle returns the handle under the cursor, or (None, false) if
// there is no selection.
func (t *Tree) SelectedHandle() (handle.Handle, bool) {
	return t.view.SelectedHandle()
}

// Len returns the number of entries currently visible in the flattened
// projection.
func (t *Tree) Len() int {
	return t.view.Len()
}

// Resize changes the viewport height, re-clamping the scroll offset.
func (t *Tree) Resize(count int) {
	t.view.SetCount(count)
}

// Forest exposes the underlying forest for callers that need direct
// structural access. The view's flattened sequence is built once, at
// construction, so structural changes made directly through it are not
// reflected in what Len, Dispatch and Paint see.
func (t *Tree) Forest() *forest.Forest {
	return t.forest
}
