// Package grid implements an in-memory world for the trunk placer. It stores block
// identifiers in a sparse map and records every write, which makes it useful for
// tests and for inspecting trees without running a dragonfly world.
package grid

import (
	"strings"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/dm-vev/megatrunk/server/world/trunk"
)

// Air is the identifier of positions that were never set.
const Air = "minecraft:air"

// Palette maps the blocks written by the trunk placer to block identifiers.
type Palette struct {
	Log string
	// Quarter holds the identifier of a quarter log per trunk.Bark.
	Quarter [4]string
	Root    string
	Soil    string
}

// DefaultPalette returns a spruce Palette. Bedrock has no quarter logs, so they
// resolve to the six-sided wood block like roots do.
func DefaultPalette() Palette {
	const wood = "minecraft:spruce_wood"
	return Palette{
		Log:     "minecraft:spruce_log",
		Quarter: [4]string{wood, wood, wood, wood},
		Root:    wood,
		Soil:    "minecraft:dirt",
	}
}

// Name returns the identifier that s resolves to.
func (p Palette) Name(s trunk.State) string {
	switch s.Part {
	case trunk.PartLog:
		return p.Log
	case trunk.PartQuarterLog:
		return p.Quarter[s.Bark]
	case trunk.PartRoot:
		return p.Root
	default:
		return p.Soil
	}
}

// Write is a single block write made through World.SetBlock.
type Write struct {
	Pos   cube.Pos
	State trunk.State
	Name  string
}

// World is a sparse, map backed trunk.World. It is not safe for concurrent use.
type World struct {
	Palette Palette

	blocks map[cube.Pos]string
	writes []Write

	replaceable map[string]struct{}
	soil        map[string]struct{}
}

// New returns an empty World filled with air, using the DefaultPalette.
func New() *World {
	return &World{
		Palette: DefaultPalette(),
		blocks:  make(map[cube.Pos]string),
		replaceable: set(Air, "minecraft:short_grass", "minecraft:tall_grass", "minecraft:fern",
			"minecraft:large_fern", "minecraft:snow_layer", "minecraft:vine", "minecraft:deadbush"),
		soil: set("minecraft:dirt", "minecraft:grass_block", "minecraft:podzol", "minecraft:coarse_dirt",
			"minecraft:rooted_dirt", "minecraft:mycelium", "minecraft:moss_block", "minecraft:mud"),
	}
}

// Set places the block with the identifier passed at pos without recording a write.
func (w *World) Set(pos cube.Pos, name string) {
	if name == Air {
		delete(w.blocks, pos)
		return
	}
	w.blocks[pos] = name
}

// Fill sets every position in r to the block with the identifier passed.
func (w *World) Fill(r trunk.Region, name string) {
	for x := r.Min[0]; x <= r.Max[0]; x++ {
		for y := r.Min[1]; y <= r.Max[1]; y++ {
			for z := r.Min[2]; z <= r.Max[2]; z++ {
				w.Set(cube.Pos{x, y, z}, name)
			}
		}
	}
}

// Block returns the identifier of the block at pos.
func (w *World) Block(pos cube.Pos) string {
	if name, ok := w.blocks[pos]; ok {
		return name
	}
	return Air
}

// Writes returns all writes made through SetBlock in order.
func (w *World) Writes() []Write {
	return append([]Write(nil), w.writes...)
}

// Replaceable ...
func (w *World) Replaceable(pos cube.Pos) bool {
	_, ok := w.replaceable[w.Block(pos)]
	return ok
}

// TreeReplaceable ...
func (w *World) TreeReplaceable(pos cube.Pos) bool {
	name := w.Block(pos)
	if strings.HasSuffix(name, "_leaves") || strings.HasSuffix(name, "_sapling") {
		return true
	}
	return w.Replaceable(pos)
}

// Name ...
func (w *World) Name(pos cube.Pos) string {
	return w.Block(pos)
}

// Soil ...
func (w *World) Soil(pos cube.Pos) bool {
	_, ok := w.soil[w.Block(pos)]
	return ok
}

// SetBlock ...
func (w *World) SetBlock(pos cube.Pos, s trunk.State) {
	name := w.Palette.Name(s)
	w.Set(pos, name)
	w.writes = append(w.writes, Write{Pos: pos, State: s, Name: name})
}

func set(names ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(names))
	for _, n := range names {
		m[n] = struct{}{}
	}
	return m
}

// Compile time check to make sure World implements trunk.World.
var _ trunk.World = (*World)(nil)
