package trunk

import "github.com/df-mc/dragonfly/server/block/cube"

// FoliageAnchor is a point a foliage placer grows leaves around. The trunk placer
// only produces anchors; it never places leaves itself.
type FoliageAnchor struct {
	Pos    cube.Pos
	Radius int
	// ForceLeafBelow requests leaves one block below the anchor as well, to cover the
	// solid 2x2 core of the trunk.
	ForceLeafBelow bool
}
