package view

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/arbortui/treeview/collapse"
	"github.com/arbortui/treeview/flatten"
	"github.com/arbortui/treeview/forest"
	"github.com/arbortui/treeview/handle"
)

// checkInvariants asserts the universal laws that must hold after every
// operation, regardless of the sequence that produced the current state
// (spec §8's worked scenarios are specific instances of these laws).
func checkInvariants(rt *rapid.T, v *View) {
	rt.Helper()

	want := flatten.Entities(v.forest.Roots, v.forest, v.collapse)
	if len(want) != len(v.Flattened) {
		rt.Fatalf("Flattened diverged from a fresh flatten: len %d vs recomputed %d", len(v.Flattened), len(want))
	}
	for i := range want {
		if want[i] != v.Flattened[i] {
			rt.Fatalf("Flattened[%d] = %+v, recomputed = %+v", i, v.Flattened[i], want[i])
		}
	}

	maxOffset := v.Len() - v.Count
	if maxOffset < 0 {
		maxOffset = 0
	}
	if v.Offset < 0 || v.Offset > maxOffset {
		rt.Fatalf("Offset = %d out of [0, %d]", v.Offset, maxOffset)
	}

	if v.Len() == 0 {
		if v.Selected != 0 {
			rt.Fatalf("Selected = %d on an empty view, want 0", v.Selected)
		}
	} else if v.Selected < 0 || v.Selected >= v.Len() {
		rt.Fatalf("Selected = %d out of [0, %d)", v.Selected, v.Len())
	}

	if !v.Recorded.IsNone() {
		if v.forest.Arena.Lookup(v.Recorded) == nil {
			rt.Fatalf("Recorded = %v refers to a freed handle", v.Recorded)
		}
	}
}

var opNames = []string{
	"MoveUp", "MoveDown", "Collapse", "Expand",
	"AddChild", "AddSibling", "Remove", "RecordHandle", "GotoRecorded",
}

// TestRandomOperationSequencesPreserveInvariants builds a small forest,
// applies a random sequence of every operation the view exposes, and checks
// the universal invariants after each step. No operation may ever leave the
// view incoherent, whichever order they arrive in (spec §9's "never rebuilt
// from scratch" guarantee, pressure-tested).
func TestRandomOperationSequencesPreserveInvariants(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		f := forest.New()
		h := make([]handle.Handle, 6)
		for i := range h {
			h[i] = f.Arena.Add()
		}
		f.AddChildren(h[0], []handle.Handle{h[1], h[2]})
		f.AddChildren(h[2], []handle.Handle{h[3], h[4]})
		f.Roots = []handle.Handle{h[0], h[5]}

		c := collapse.New()
		count := rapid.IntRange(1, 5).Draw(rt, "count")
		v := New(f, c, count)
		checkInvariants(rt, v)

		steps := rapid.IntRange(1, 40).Draw(rt, "steps")
		for i := 0; i < steps; i++ {
			op := rapid.SampledFrom(opNames).Draw(rt, "op")
			switch op {
			case "MoveUp":
				v.MoveUp()
			case "MoveDown":
				v.MoveDown()
			case "Collapse":
				v.Collapse()
			case "Expand":
				v.Expand()
			case "AddChild":
				v.AddChild()
			case "AddSibling":
				v.AddSibling()
			case "Remove":
				v.Remove()
			case "RecordHandle":
				v.RecordHandle()
			case "GotoRecorded":
				v.GotoRecorded()
			}
			checkInvariants(rt, v)
		}
	})
}

// TestAddSiblingInsertionPointProperty generalizes TestAddSiblingInsertionPoint:
// for any selection, the new sibling always lands exactly at
// Selected + VisibleSubtreeSize(selected) + sum(VisibleSubtreeSize(later siblings)),
// the resolution SPEC_FULL.md §13 settled on for the ambiguity in spec §4.5/§9.
func TestAddSiblingInsertionPointProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		f := forest.New()
		h := make([]handle.Handle, 8)
		for i := range h {
			h[i] = f.Arena.Add()
		}
		f.AddChildren(h[0], []handle.Handle{h[1], h[2], h[3]})
		f.AddChildren(h[2], []handle.Handle{h[4], h[5]})
		f.Roots = []handle.Handle{h[0], h[6], h[7]}

		c := collapse.New()
		v := New(f, c, 20)

		selIdx := rapid.IntRange(0, v.Len()-1).Draw(rt, "selIdx")
		v.Selected = selIdx

		entry := v.Flattened[v.Selected]
		siblings := f.Siblings(entry.Handle)
		selfIdx := indexOf(siblings, entry.Handle)

		wantPos := v.Selected + v.VisibleSubtreeSize(entry.Handle)
		for _, s := range siblings[selfIdx+1:] {
			wantPos += v.VisibleSubtreeSize(s)
		}
		if wantPos > v.Len() {
			wantPos = v.Len()
		}

		_, gotPos := v.AddSibling()
		if gotPos != wantPos {
			rt.Fatalf("AddSibling pos = %d, want %d", gotPos, wantPos)
		}
	})
}
