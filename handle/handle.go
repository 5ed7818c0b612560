// Package handle defines the generational handle used to reference nodes
// stored in an arena.Arena.
package handle

import "math"

// sentinelIndex marks a handle that refers to no node.
const sentinelIndex = math.MaxUint32

// Handle is a generational, arena-relative identifier for a node. It is
// cheap to copy and compare for equality; a Handle is only meaningful
// relative to the arena.Arena that issued it.
type Handle struct {
	Index      uint32
	Generation uint32
}

// None is the distinguished handle denoting "no node". It is used as the
// parent of root nodes and as the zero value of a recorded jump target.
var None = Handle{Index: sentinelIndex, Generation: 0}

// IsNone reports whether h is the None sentinel.
func (h Handle) IsNone() bool {
	return h.Index == sentinelIndex
}
