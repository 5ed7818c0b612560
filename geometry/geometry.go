// Package geometry computes, for a window into a flattened sequence, the
// per-row connector decisions (end-tee, mid-tee, vertical continuations)
// the renderer needs to paint branch lines — without ever looking beyond
// the flattened slice and the forest's parent links.
package geometry

import (
	"github.com/arbortui/treeview/flatten"
	"github.com/arbortui/treeview/forest"
	"github.com/arbortui/treeview/handle"
)

// Row is one visible row's connector decision: whether its own glyph is an
// end-tee or a mid-tee, and which indent columns strictly left of its own
// carry a vertical continuation on this particular row.
type Row struct {
	Indent    int
	End       bool
	Verticals map[int]struct{}
}

// HasVertical reports whether column is a vertical-continuation column on
// this row.
func (r Row) HasVertical(column int) bool {
	_, ok := r.Verticals[column]
	return ok
}

// Frame is one computed paint plan: the visible row count, the columns
// that carry a full-height vertical line because an ancestor entirely
// above the window has a later sibling, and the per-row decisions.
type Frame struct {
	Visible          int
	OffScreenColumns []int
	Rows             []Row
}

// Compute implements spec §4.6: given the window [offset, offset+visible)
// into flattened, produce end/mid-tee decisions and every vertical
// connector, in-window or off-screen, needed to render the window's branch
// lines.
func Compute(flattened []flatten.Entry, offset, count int, f *forest.Forest) Frame {
	if len(flattened) == 0 || offset < 0 || offset >= len(flattened) || count <= 0 {
		return Frame{}
	}

	visible := count
	if remaining := len(flattened) - offset; remaining < visible {
		visible = remaining
	}

	rows := make([]Row, visible)
	for r := range rows {
		rows[r].Verticals = make(map[int]struct{})
	}

	minIndent := flattened[offset].Indent
	minIndentHandle := flattened[offset].Handle

	for r := 0; r < visible; r++ {
		e := flattened[offset+r]
		rows[r].Indent = e.Indent
		if e.Indent < minIndent {
			minIndent = e.Indent
			minIndentHandle = e.Handle
		}

		// Steps 1 & 2: forward search for the matching sibling at the same
		// indent; if found (even beyond the window) every in-window row
		// strictly between e and the match gets a vertical at e.Indent.
		matchIdx := -1
		for j := offset + r + 1; j < len(flattened); j++ {
			if flattened[j].Indent < e.Indent {
				break
			}
			if flattened[j].Indent == e.Indent {
				matchIdx = j
				break
			}
		}
		rows[r].End = matchIdx == -1
		if matchIdx != -1 {
			for k := offset + r + 1; k < matchIdx; k++ {
				if rr := k - offset; rr >= 0 && rr < visible {
					rows[rr].Verticals[e.Indent] = struct{}{}
				}
			}
		}

		// Step 3: backward off-screen continuation. If the chain up to the
		// previous same-indent entry is unbroken and that entry lies above
		// the window, every in-window row above r gets a vertical at
		// e.Indent too.
		backMatch := -1
		chainBroken := false
		for j := offset + r - 1; j >= 0; j-- {
			if flattened[j].Indent < e.Indent {
				chainBroken = true
				break
			}
			if flattened[j].Indent == e.Indent {
				backMatch = j
				break
			}
		}
		if !chainBroken && backMatch != -1 && backMatch < offset {
			for rr := 0; rr < r; rr++ {
				rows[rr].Verticals[e.Indent] = struct{}{}
			}
		}
	}

	// A window holding a single entry always draws it as an end-tee.
	if visible == 1 {
		rows[0].End = true
	}

	// Step 4: fully off-screen ancestor columns. Walk h_min's ancestor
	// chain and paint column i, full window height, whenever that ancestor
	// has a later sibling.
	var offScreen []int
	ancestors := ancestorChain(minIndentHandle, f)
	for i := 0; i < minIndent && i < len(ancestors); i++ {
		if hasLaterSibling(ancestors[i], f) {
			offScreen = append(offScreen, i)
		}
	}

	return Frame{Visible: visible, OffScreenColumns: offScreen, Rows: rows}
}

// ancestorChain returns h's ancestors ordered from the root (index 0) down
// to h's immediate parent (index len-1), by walking Parent links.
func ancestorChain(h handle.Handle, f *forest.Forest) []handle.Handle {
	var chain []handle.Handle
	cur := h
	for {
		n := f.Arena.Lookup(cur)
		if n == nil || n.Parent.IsNone() {
			break
		}
		chain = append(chain, n.Parent)
		cur = n.Parent
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

func hasLaterSibling(h handle.Handle, f *forest.Forest) bool {
	siblings := f.Siblings(h)
	idx := indexOf(siblings, h)
	return idx >= 0 && idx < len(siblings)-1
}

func indexOf(list []handle.Handle, target handle.Handle) int {
	for i, h := range list {
		if h == target {
			return i
		}
	}
	return -1
}
