package trunk

import (
	"math"

	"github.com/df-mc/dragonfly/server/block/cube"
)

// Region is an axis-aligned box of block positions. Both Min and Max are
// inclusive.
type Region struct {
	Min, Max cube.Pos
}

// Everywhere is a Region without effective bounds.
var Everywhere = Region{
	Min: cube.Pos{math.MinInt32, math.MinInt32, math.MinInt32},
	Max: cube.Pos{math.MaxInt32, math.MaxInt32, math.MaxInt32},
}

// ChunkRegion returns the Region covering the chunk column at chunk coordinates
// x and z, limited vertically to the range r.
func ChunkRegion(x, z int32, r cube.Range) Region {
	return Region{
		Min: cube.Pos{int(x) << 4, r[0], int(z) << 4},
		Max: cube.Pos{int(x)<<4 + 15, r[1], int(z)<<4 + 15},
	}
}

// Contains checks if pos lies within the Region.
func (r Region) Contains(pos cube.Pos) bool {
	return pos[0] >= r.Min[0] && pos[0] <= r.Max[0] &&
		pos[1] >= r.Min[1] && pos[1] <= r.Max[1] &&
		pos[2] >= r.Min[2] && pos[2] <= r.Max[2]
}
