// Package flatten computes the depth-first, collapse-aware projection of a
// forest into the sequence the view and renderer operate on.
package flatten

import (
	"github.com/arbortui/treeview/collapse"
	"github.com/arbortui/treeview/forest"
	"github.com/arbortui/treeview/handle"
)

// Entry is one row of the flattened sequence: the node it refers to and
// its indent depth (0 for a root).
type Entry struct {
	Handle handle.Handle
	Indent int
}

type frame struct {
	h      handle.Handle
	indent int
}

// Entity walks the subtree rooted at h (as an in-order, collapse-aware
// pre-order traversal) and returns its flattened entries, with h's own
// indent set to baseIndent. Traversal uses an explicit LIFO stack rather
// than recursion, per spec §4.4.
func Entity(h handle.Handle, baseIndent int, f *forest.Forest, c *collapse.Set) []Entry {
	var out []Entry
	stack := []frame{{h: h, indent: baseIndent}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		out = append(out, Entry{Handle: top.h, Indent: top.indent})

		if c.Collapsed(top.h) {
			continue
		}
		n := f.Arena.Lookup(top.h)
		if n == nil {
			continue
		}
		for i := len(n.Children) - 1; i >= 0; i-- {
			stack = append(stack, frame{h: n.Children[i], indent: top.indent + 1})
		}
	}

	return out
}

// Entities concatenates Entity(r, 0, ...) for each root r, in root order.
// The result is the full flattened sequence: a pre-order walk of every
// node visible under the current collapse set.
func Entities(roots []handle.Handle, f *forest.Forest, c *collapse.Set) []Entry {
	var out []Entry
	for _, r := range roots {
		out = append(out, Entity(r, 0, f, c)...)
	}
	return out
}
