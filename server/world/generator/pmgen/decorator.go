// Package pmgen hooks mega tree population into dragonfly world generation.
package pmgen

import (
	"sync"
	"sync/atomic"

	"github.com/df-mc/dragonfly/server/world"
	"github.com/df-mc/dragonfly/server/world/chunk"
	"github.com/dm-vev/megatrunk/server/world/generator/pmgen/populate"
	"github.com/dm-vev/megatrunk/server/world/generator/pmgen/rand"
	"github.com/dm-vev/megatrunk/server/world/txworld"
)

// Decorator is a world.Generator that plants mega trees in every chunk generated
// by the generator it wraps. Until BindWorld is called, trees are placed directly
// in the chunk being generated. Either way, trees never reach into neighbouring
// chunks.
type Decorator struct {
	seed  int64
	inner world.Generator
	trees []populate.MegaTree

	world   atomic.Pointer[world.World]
	pending sync.WaitGroup
}

// NewDecorator returns a Decorator around inner. The seed is mixed with the chunk
// position to seed the random stream of every chunk.
func NewDecorator(seed int64, inner world.Generator, trees ...populate.MegaTree) *Decorator {
	if inner == nil {
		inner = world.NopGenerator{}
	}
	return &Decorator{seed: seed, inner: inner, trees: trees}
}

// BindWorld makes the Decorator populate chunks of w through world transactions
// once they are generated. Chunks are generated inside a transaction, so
// population runs in the background; Wait blocks until it is done.
func (d *Decorator) BindWorld(w *world.World) {
	d.world.Store(w)
}

// Wait blocks until all population started for a bound world is finished.
func (d *Decorator) Wait() {
	d.pending.Wait()
}

// GenerateChunk generates the chunk using the wrapped generator, then plants trees.
func (d *Decorator) GenerateChunk(pos world.ChunkPos, c *chunk.Chunk) {
	d.inner.GenerateChunk(pos, c)

	r := rand.NewRandom(0xdeadbeef ^ (int64(pos[0]) << 8) ^ int64(pos[1]) ^ d.seed)
	if w := d.world.Load(); w != nil {
		d.pending.Add(1)
		go func() {
			defer d.pending.Done()
			for _, t := range d.trees {
				t.Populate(w, pos, c, r)
			}
		}()
		return
	}
	blocks := txworld.NewChunk(c, pos)
	for _, t := range d.trees {
		t.Plant(blocks, pos, r)
	}
}

// Compile time check to make sure Decorator implements world.Generator.
var _ world.Generator = (*Decorator)(nil)
