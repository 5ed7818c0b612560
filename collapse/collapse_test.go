package collapse

import (
	"testing"

	"github.com/arbortui/treeview/forest"
	"github.com/arbortui/treeview/handle"
)

func TestCollapseChildlessIsNoop(t *testing.T) {
	f := forest.New()
	h := f.Arena.Add()
	f.Roots = []handle.Handle{h}

	s := New()
	s.Collapse(h, f)

	if s.Collapsed(h) {
		t.Fatalf("collapsing a childless node marked it collapsed")
	}
}

func TestCollapseExpandRoundTrip(t *testing.T) {
	f := forest.New()
	parent := f.Arena.Add()
	child := f.Arena.Add()
	f.AddChildren(parent, []handle.Handle{child})
	f.Roots = []handle.Handle{parent}

	s := New()
	s.Collapse(parent, f)
	if !s.Collapsed(parent) {
		t.Fatalf("Collapse did not mark node collapsed")
	}

	s.Expand(parent)
	if s.Collapsed(parent) {
		t.Fatalf("Expand did not clear collapsed state")
	}
}

func TestExpandNonCollapsedIsNoop(t *testing.T) {
	s := New()
	s.Expand(handle.Handle{Index: 5})
	if s.Collapsed(handle.Handle{Index: 5}) {
		t.Fatalf("expanding a never-collapsed handle marked it collapsed")
	}
}

func TestForgetRemovesStaleEntry(t *testing.T) {
	f := forest.New()
	parent := f.Arena.Add()
	child := f.Arena.Add()
	f.AddChildren(parent, []handle.Handle{child})

	s := New()
	s.Collapse(parent, f)
	s.Forget(parent)

	if s.Collapsed(parent) {
		t.Fatalf("Forget did not remove the entry")
	}
}
