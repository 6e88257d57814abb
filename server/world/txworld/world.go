// Package txworld exposes dragonfly world transactions and chunks as a trunk.World,
// so that trunks can be placed in a running world or while a chunk is generated.
package txworld

import (
	"github.com/df-mc/dragonfly/server/block"
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/dm-vev/megatrunk/server/world/trunk"
)

// setOpts are the options used when Opts is nil. Trees are placed during
// population, where block updates and liquid displacement are not wanted.
var setOpts = &world.SetOpts{
	DisableBlockUpdates:       true,
	DisableLiquidDisplacement: true,
}

// Blocks is the block access shared by *world.Tx and Chunk.
type Blocks interface {
	Block(pos cube.Pos) world.Block
	SetBlock(pos cube.Pos, b world.Block, opts *world.SetOpts)
	Range() cube.Range
}

// World implements trunk.World on top of Blocks, usually a *world.Tx. A World is
// only valid for as long as the transaction it wraps.
type World struct {
	Tx      Blocks
	Palette Palette
	// Opts are passed to every call to Tx.SetBlock. If nil, block updates and liquid
	// displacement are disabled.
	Opts *world.SetOpts
}

// Replaceable reports if the block at pos may be replaced by the log of the
// Palette. Air and leaves always may, lava never does.
func (w World) Replaceable(pos cube.Pos) bool {
	switch b := w.Tx.Block(pos).(type) {
	case block.Air, block.Leaves:
		return true
	case block.Lava:
		return false
	case block.Replaceable:
		return b.ReplaceableBy(w.Palette.Log)
	}
	return false
}

// TreeReplaceable reports if a root may grow into the block at pos. It accepts the
// same blocks as Replaceable.
func (w World) TreeReplaceable(pos cube.Pos) bool {
	return w.Replaceable(pos)
}

// Name ...
func (w World) Name(pos cube.Pos) string {
	name, _ := w.Tx.Block(pos).EncodeBlock()
	return name
}

// Soil ...
func (w World) Soil(pos cube.Pos) bool {
	switch w.Tx.Block(pos).(type) {
	case block.Dirt, block.Grass, block.Podzol:
		return true
	}
	return false
}

// SetBlock ...
func (w World) SetBlock(pos cube.Pos, s trunk.State) {
	opts := w.Opts
	if opts == nil {
		opts = setOpts
	}
	w.Tx.SetBlock(pos, w.Palette.Block(s), opts)
}

// Compile time check to make sure World implements trunk.World.
var _ trunk.World = World{}
