package forest

import (
	"reflect"
	"testing"

	"github.com/arbortui/treeview/handle"
)

func buildSample(t *testing.T) (*Forest, []handle.Handle) {
	t.Helper()
	f := New()
	handles := make([]handle.Handle, 12)
	for i := range handles {
		handles[i] = f.Arena.Add()
	}

	f.AddChildren(handles[0], []handle.Handle{handles[1], handles[2]})
	f.AddChildren(handles[6], []handle.Handle{handles[10]})
	f.AddChildren(handles[7], []handle.Handle{handles[3], handles[4]})
	f.AddChildren(handles[2], []handle.Handle{handles[5], handles[6], handles[11]})
	f.AddChildren(handles[8], []handle.Handle{handles[9]})
	f.Roots = []handle.Handle{handles[0], handles[7], handles[8]}

	return f, handles
}

func TestAddChildrenSetsParent(t *testing.T) {
	f, h := buildSample(t)
	n1 := f.Arena.Lookup(h[1])
	if n1.Parent != h[0] {
		t.Fatalf("h[1].Parent = %v, want %v", n1.Parent, h[0])
	}
}

func TestSiblingsOfRoot(t *testing.T) {
	f, h := buildSample(t)
	got := f.Siblings(h[0])
	if !reflect.DeepEqual(got, f.Roots) {
		t.Fatalf("Siblings(root) = %v, want %v", got, f.Roots)
	}
}

func TestSiblingsOfChild(t *testing.T) {
	f, h := buildSample(t)
	got := f.Siblings(h[5])
	want := []handle.Handle{h[5], h[6], h[11]}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Siblings(h[5]) = %v, want %v", got, want)
	}
}

func TestHasChildren(t *testing.T) {
	f, h := buildSample(t)
	if !f.HasChildren(h[0]) {
		t.Fatalf("HasChildren(h[0]) = false, want true")
	}
	if f.HasChildren(h[1]) {
		t.Fatalf("HasChildren(h[1]) = true, want false")
	}
}

func TestRootOf(t *testing.T) {
	f, h := buildSample(t)
	root, depth := f.RootOf(h[10])
	if root != h[0] {
		t.Fatalf("RootOf(h[10]) root = %v, want %v", root, h[0])
	}
	if depth != 3 {
		t.Fatalf("RootOf(h[10]) depth = %d, want 3", depth)
	}

	root, depth = f.RootOf(h[7])
	if root != h[7] || depth != 0 {
		t.Fatalf("RootOf(h[7]) = (%v, %d), want (%v, 0)", root, depth, h[7])
	}
}

func TestRemoveChildFromRoots(t *testing.T) {
	f, h := buildSample(t)
	f.RemoveChild(handle.None, h[7])
	want := []handle.Handle{h[0], h[8]}
	if !reflect.DeepEqual(f.Roots, want) {
		t.Fatalf("Roots after RemoveChild = %v, want %v", f.Roots, want)
	}
}

func TestRemoveChildPreservesOrder(t *testing.T) {
	f, h := buildSample(t)
	f.RemoveChild(h[2], h[6])
	got := f.Siblings(h[5])
	want := []handle.Handle{h[5], h[11]}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("siblings after removing middle child = %v, want %v", got, want)
	}
}
