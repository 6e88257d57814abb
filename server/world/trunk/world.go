package trunk

import "github.com/df-mc/dragonfly/server/block/cube"

// World is the part of a host world the trunk placer needs. Implementations decide
// what counts as replaceable; the placer never overrides that decision.
type World interface {
	// Replaceable reports if tree material may overwrite the block at pos.
	Replaceable(pos cube.Pos) bool
	// TreeReplaceable reports if the block at pos may be overwritten by a tree in the
	// looser sense used for roots, which also covers plants and foliage.
	TreeReplaceable(pos cube.Pos) bool
	// Name returns the identifier of the block at pos, such as "minecraft:seagrass".
	Name(pos cube.Pos) string
	// Soil reports if the block at pos is soil a tree may stand on.
	Soil(pos cube.Pos) bool
	// SetBlock writes the block described by s at pos.
	SetBlock(pos cube.Pos, s State)
}

// Source is a sequential stream of random values. A Source must not be shared
// between two placements running at the same time.
type Source interface {
	// Bool returns the next random boolean.
	Bool() bool
	// Int31n returns the next random integer in [0, n).
	Int31n(n int32) int32
}

// Flags holds the feature toggles read while placing a trunk.
type Flags interface {
	// QuarterLogs reports if trunk layers should use quarter logs instead of plain logs.
	QuarterLogs() bool
}

// Part is the kind of block the placer writes.
type Part uint8

const (
	// PartLog is a plain upright log.
	PartLog Part = iota
	// PartQuarterLog is a log with bark on two adjacent sides, see Bark.
	PartQuarterLog
	// PartRoot is the all-bark wood block used for roots.
	PartRoot
	// PartSoil is the dirt placed under the trunk when the ground is not soil.
	PartSoil
)

// String ...
func (p Part) String() string {
	switch p {
	case PartLog:
		return "log"
	case PartQuarterLog:
		return "quarter_log"
	case PartRoot:
		return "root"
	case PartSoil:
		return "soil"
	}
	panic("should never happen")
}

// Bark is the pair of horizontal sides of a quarter log that carry bark.
type Bark uint8

const (
	BarkSouthWest Bark = iota
	BarkNorthEast
	BarkSouthEast
	BarkNorthWest
)

// String ...
func (b Bark) String() string {
	switch b {
	case BarkSouthWest:
		return "south_west"
	case BarkNorthEast:
		return "north_east"
	case BarkSouthEast:
		return "south_east"
	case BarkNorthWest:
		return "north_west"
	}
	panic("should never happen")
}

// State is a block written by the placer. Bark is only meaningful for
// PartQuarterLog.
type State struct {
	Part Part
	Bark Bark
}
