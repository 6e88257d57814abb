package populate

import (
	"github.com/df-mc/dragonfly/server/world"
	"github.com/df-mc/dragonfly/server/world/chunk"
	"github.com/dm-vev/megatrunk/server/world/generator/pmgen/rand"
)

// Populator decorates a chunk after its terrain was generated.
type Populator interface {
	Populate(w *world.World, pos world.ChunkPos, chunk *chunk.Chunk, r *rand.Random)
}
