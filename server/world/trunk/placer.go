package trunk

import (
	"errors"
	"fmt"
	"slices"

	"github.com/df-mc/dragonfly/server/block/cube"
)

var (
	// ErrInvalidHeight is returned by Placer.Place when the trunk height is not positive.
	ErrInvalidHeight = errors.New("trunk height must be at least 1")
	// ErrNilWorld is returned by Placer.Place when no World is passed.
	ErrNilWorld = errors.New("world must not be nil")
	// ErrNilSource is returned by Placer.Place when no Source is passed.
	ErrNilSource = errors.New("random source must not be nil")
	// ErrNilPlacedSet is returned by Placer.Place when no PlacedSet is passed.
	ErrNilPlacedSet = errors.New("placed set must not be nil")
)

// DefaultGrowThrough is the set of blocks roots grow through when a Placer does
// not specify its own. Bedrock stores tall seagrass as a seagrass state.
var DefaultGrowThrough = []string{"minecraft:seagrass"}

// Placer places quartered mega trunks: a 2x2 trunk of logs continuing into either
// a converging or a columnar canopy base, with short roots around its foot.
// A Placer holds no state of its own and may be reused across placements.
type Placer struct {
	// Flags controls the feature toggles of the placer. If nil, plain logs are used.
	Flags Flags
	// GrowThrough holds identifiers of blocks that roots may replace even though the
	// World does not report them replaceable. If nil, DefaultGrowThrough is used. An
	// empty, non-nil slice disables growing through blocks.
	GrowThrough []string
}

// Shape describes the archetype of a tree, drawn once at the start of a placement.
type Shape struct {
	// Converge is true for trees that taper to a point, false for columnar trees.
	Converge bool
	// Radius is the foliage radius of the lowest canopy layer.
	Radius int
	// Layers is the amount of canopy layers above the trunk.
	Layers int
}

// Shape draws the Shape of a tree from r. It performs the same draws as the start
// of Place.
func (Placer) Shape(r Source) Shape {
	if r.Bool() {
		radius := 5 + int(r.Int31n(2))
		return Shape{Converge: true, Radius: radius, Layers: radius}
	}
	radius := 3 + int(r.Int31n(2))
	return Shape{Radius: radius, Layers: 6 + int(r.Int31n(4))}
}

// Repeats returns the amount of 2x2 layers stacked in canopy layer i.
func (s Shape) Repeats(i int) int {
	if s.Converge {
		return s.Radius - i + 1
	}
	return 4
}

// AnchorRadius returns the foliage radius of canopy layer i.
func (s Shape) AnchorRadius(i int) int {
	if s.Converge {
		return s.Radius - i
	}
	return s.Radius
}

// CapRadius returns the foliage radius of the anchor on top of the tree.
func (s Shape) CapRadius() int {
	if s.Converge {
		return 1
	}
	return s.Radius
}

// footprint holds the offsets of the four trunk columns from the origin.
var footprint = [4]cube.Pos{{0, 0, 0}, {1, 0, 0}, {0, 0, 1}, {1, 0, 1}}

// layerCells holds the cells of a 2x2 layer in placement order, with the sides of
// the quarter log at that cell that face outwards.
var layerCells = [4]struct {
	offset cube.Pos
	bark   Bark
}{
	{offset: cube.Pos{0, 0, 1}, bark: BarkSouthWest},
	{offset: cube.Pos{1, 0, 0}, bark: BarkNorthEast},
	{offset: cube.Pos{1, 0, 1}, bark: BarkSouthEast},
	{offset: cube.Pos{0, 0, 0}, bark: BarkNorthWest},
}

// BarkAt returns the Bark of a quarter log at offset from the anchor of its layer.
// False is returned if offset is not part of a layer.
func BarkAt(offset cube.Pos) (Bark, bool) {
	for _, c := range layerCells {
		if c.offset == offset {
			return c.bark, true
		}
	}
	return 0, false
}

// Place grows a trunk with the north-west column at origin, stacking height layers
// of logs before the canopy base. Blocks are only written inside clip and only
// where w reports them replaceable. placed holds only the trunk and root blocks
// actually written: cells outside clip are neither read nor added to it, even if
// the tree would have grown there. The foliage anchors of the tree are returned bottom to top, ending with
// the anchor on top of the tree.
//
// An error is only returned if the arguments are invalid, in which case nothing is
// placed.
func (p Placer) Place(w World, r Source, height int, origin cube.Pos, placed *PlacedSet, clip Region) ([]FoliageAnchor, error) {
	switch {
	case w == nil:
		return nil, ErrNilWorld
	case r == nil:
		return nil, ErrNilSource
	case placed == nil:
		return nil, ErrNilPlacedSet
	case height < 1:
		return nil, fmt.Errorf("place trunk: %w (got %d)", ErrInvalidHeight, height)
	}
	g := growth{p: p, w: w, r: r, placed: placed, clip: clip}
	shape := p.Shape(r)

	for _, off := range footprint {
		g.soil(origin.Add(off).Side(cube.FaceDown))
	}

	cursor := origin.Side(cube.FaceDown)
	for i := 0; i < height; i++ {
		cursor = cursor.Side(cube.FaceUp)
		g.layer(cursor)
	}

	anchors := make([]FoliageAnchor, 0, shape.Layers+1)
	for i := 0; i < shape.Layers; i++ {
		for j := 0; j < shape.Repeats(i); j++ {
			cursor = cursor.Side(cube.FaceUp)
			g.layer(cursor)
		}
		anchors = append(anchors, FoliageAnchor{Pos: cursor, Radius: shape.AnchorRadius(i), ForceLeafBelow: true})
	}
	anchors = append(anchors, FoliageAnchor{Pos: cursor.Side(cube.FaceUp), Radius: shape.CapRadius(), ForceLeafBelow: true})

	g.roots(origin)
	return anchors, nil
}

// growth holds the state of a single call to Placer.Place.
type growth struct {
	p      Placer
	w      World
	r      Source
	placed *PlacedSet
	clip   Region
}

// writable checks if the placer may consider pos at all.
func (g growth) writable(pos cube.Pos) bool {
	return g.clip.Contains(pos) && !g.placed.Contains(pos)
}

// soil turns the block at pos into soil unless it already is.
func (g growth) soil(pos cube.Pos) {
	if g.clip.Contains(pos) && !g.w.Soil(pos) {
		g.w.SetBlock(pos, State{Part: PartSoil})
	}
}

// layer places a 2x2 layer of logs with its north-west block at pos.
func (g growth) layer(pos cube.Pos) {
	quarter := g.p.Flags != nil && g.p.Flags.QuarterLogs()
	for _, c := range layerCells {
		at := pos.Add(c.offset)
		if !g.writable(at) || !g.w.Replaceable(at) {
			continue
		}
		s := State{Part: PartLog}
		if quarter {
			s = State{Part: PartQuarterLog, Bark: c.bark}
		}
		g.w.SetBlock(at, s)
		g.placed.Add(at)
	}
}

// growsThrough checks if roots may replace a block with the name passed.
func (g growth) growsThrough(name string) bool {
	if g.p.GrowThrough == nil {
		return slices.Contains(DefaultGrowThrough, name)
	}
	return slices.Contains(g.p.GrowThrough, name)
}
