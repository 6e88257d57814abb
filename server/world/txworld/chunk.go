package txworld

import (
	"github.com/df-mc/dragonfly/server/block"
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/df-mc/dragonfly/server/world/chunk"
)

// Chunk implements Blocks for a single chunk that is still being generated, and
// therefore not yet reachable through a world.Tx. Positions outside the chunk read
// as air and writes to them are dropped.
type Chunk struct {
	c   *chunk.Chunk
	pos world.ChunkPos
}

// NewChunk returns a Chunk for c, which is located at pos.
func NewChunk(c *chunk.Chunk, pos world.ChunkPos) Chunk {
	return Chunk{c: c, pos: pos}
}

// Block ...
func (c Chunk) Block(pos cube.Pos) world.Block {
	if !c.contains(pos) {
		return block.Air{}
	}
	b, ok := world.BlockByRuntimeID(c.c.Block(uint8(pos[0]&15), int16(pos[1]), uint8(pos[2]&15), 0))
	if !ok {
		return block.Air{}
	}
	return b
}

// SetBlock sets the block at pos. Chunks have no block updates or liquids to
// displace, so opts is ignored.
func (c Chunk) SetBlock(pos cube.Pos, b world.Block, _ *world.SetOpts) {
	if !c.contains(pos) {
		return
	}
	c.c.SetBlock(uint8(pos[0]&15), int16(pos[1]), uint8(pos[2]&15), 0, world.BlockRuntimeID(b))
}

// Range ...
func (c Chunk) Range() cube.Range {
	return c.c.Range()
}

func (c Chunk) contains(pos cube.Pos) bool {
	r := c.c.Range()
	return int32(pos[0]>>4) == c.pos[0] && int32(pos[2]>>4) == c.pos[1] && pos[1] >= r[0] && pos[1] <= r[1]
}
