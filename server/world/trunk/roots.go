package trunk

import "github.com/df-mc/dragonfly/server/block/cube"

// rootStarts holds, in growth order, where the root on each side of the 2x2
// footprint starts and the axis along which its start is shifted by a random 0 or 1.
var rootStarts = [4]struct {
	base, jitter cube.Pos
}{
	{base: cube.Pos{-1, 0, 0}, jitter: cube.Pos{0, 0, 1}}, // west
	{base: cube.Pos{2, 0, 0}, jitter: cube.Pos{0, 0, 1}},  // east
	{base: cube.Pos{0, 0, -1}, jitter: cube.Pos{1, 0, 0}}, // north
	{base: cube.Pos{0, 0, 2}, jitter: cube.Pos{1, 0, 0}},  // south
}

// roots attempts to grow a root on every side of a trunk with its north-west
// column at origin.
func (g growth) roots(origin cube.Pos) {
	for _, s := range rootStarts {
		j := int(g.r.Int31n(2))
		start := origin.Add(s.base).Add(cube.Pos{s.jitter[0] * j, 0, s.jitter[2] * j})
		g.root(start)
	}
}

// root grows a single root upwards from start. One in five roots is skipped;
// others are 1-4 blocks tall. Blocks that can't be replaced leave a gap.
func (g growth) root(start cube.Pos) {
	if g.r.Int31n(5) == 0 {
		return
	}
	height := 1 + int(g.r.Int31n(4))
	for y := 0; y < height; y++ {
		pos := start.Add(cube.Pos{0, y, 0})
		if !g.writable(pos) {
			continue
		}
		if g.w.TreeReplaceable(pos) || g.w.Replaceable(pos) || g.growsThrough(g.w.Name(pos)) {
			g.w.SetBlock(pos, State{Part: PartRoot})
			g.placed.Add(pos)
		}
	}
}
