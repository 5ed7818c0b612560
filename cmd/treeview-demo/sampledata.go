package main

import (
	"fmt"

	"github.com/arbortui/treeview/forest"
	"github.com/arbortui/treeview/handle"
)

// seedSampleData reconstructs the fixture the original C++ demo built in
// create_sample_entities: twelve nodes named entity_0..entity_11, roots
// entity_0, entity_7, entity_8, with entity_0 parenting entity_1/entity_2,
// entity_2 parenting entity_5/entity_6/entity_11, entity_6 parenting
// entity_10, entity_7 parenting entity_3/entity_4, and entity_8 parenting
// entity_9.
func seedSampleData(f *forest.Forest) {
	handles := make([]handle.Handle, 12)
	for i := range handles {
		h := f.Arena.Add()
		f.Arena.Lookup(h).Name = fmt.Sprintf("entity_%d", i)
		handles[i] = h
	}

	f.AddChildren(handles[0], []handle.Handle{handles[1], handles[2]})
	f.AddChildren(handles[6], []handle.Handle{handles[10]})
	f.AddChildren(handles[7], []handle.Handle{handles[3], handles[4]})
	f.AddChildren(handles[2], []handle.Handle{handles[5], handles[6], handles[11]})
	f.AddChildren(handles[8], []handle.Handle{handles[9]})

	f.Roots = []handle.Handle{handles[0], handles[7], handles[8]}
}
