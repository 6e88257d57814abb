package populate

import (
	"encoding/binary"
	"log/slog"

	"github.com/cespare/xxhash/v2"
	"github.com/df-mc/dragonfly/server/block"
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/df-mc/dragonfly/server/world/chunk"
	"github.com/dm-vev/megatrunk/server/world/generator/pmgen/rand"
	"github.com/dm-vev/megatrunk/server/world/trunk"
	"github.com/dm-vev/megatrunk/server/world/txworld"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

// MegaTree populates chunks with quartered mega trees. Every tree gets a random
// stream of its own, derived from Seed and the tree's origin, so the shape of a tree
// does not depend on the trees planted before it.
type MegaTree struct {
	// BaseAmount is the minimum amount of attempts made per chunk. Half of the time,
	// one more attempt is made.
	BaseAmount int
	// Chance makes each attempt go ahead with a probability of 1 in Chance. Values
	// of 1 or lower make every attempt go ahead.
	Chance int
	// MinHeight and MaxHeight bound the height of the trunk below the canopy.
	MinHeight, MaxHeight int
	// MinSpacing is the minimum horizontal distance between two trees planted in the
	// same chunk.
	MinSpacing float64
	// Seed is the world seed that tree seeds are derived from.
	Seed int64

	Placer  trunk.Placer
	Palette txworld.Palette
	// Journal, if not nil, records every tree planted.
	Journal *Journal
	Log     *slog.Logger
}

// Populate plants mega trees in the chunk at pos within a transaction on w.
func (m MegaTree) Populate(w *world.World, pos world.ChunkPos, _ *chunk.Chunk, r *rand.Random) {
	<-w.Exec(func(tx *world.Tx) {
		m.Plant(tx, pos, r)
	})
}

// Plant makes the attempts of a single chunk and returns a Record for every tree
// planted. tx is either a *world.Tx or, during generation, a txworld.Chunk. Trees
// are clipped to the chunk at chunkPos.
func (m MegaTree) Plant(tx txworld.Blocks, chunkPos world.ChunkPos, r *rand.Random) []Record {
	log := m.Log
	if log == nil {
		log = slog.Default()
	}
	clip := trunk.ChunkRegion(chunkPos[0], chunkPos[1], tx.Range())
	tw := txworld.World{Tx: tx, Palette: m.Palette, Opts: setOpts}

	var (
		planted []mgl64.Vec2
		records []Record
	)
	amount := r.Int31n(2) + int32(m.BaseAmount)
	for i := int32(0); i < amount; i++ {
		// The 2x2 trunk must fit in the chunk, so the last row and column are left out.
		x := int(r.Range(chunkPos[0]*16, chunkPos[0]*16+14))
		z := int(r.Range(chunkPos[1]*16, chunkPos[1]*16+14))
		if m.Chance > 1 && r.Int31n(int32(m.Chance)) != 0 {
			continue
		}
		y, ok := m.highestWorkableBlock(tx, chunkPos, x, z)
		if !ok || !m.footprintWorkable(tx, chunkPos, cube.Pos{x, y, z}) {
			continue
		}
		at := mgl64.Vec2{float64(x), float64(z)}
		if m.crowded(planted, at) {
			continue
		}

		origin := cube.Pos{x, y, z}
		tr := rand.NewRandom(TreeSeed(m.Seed, origin))
		height := m.MinHeight
		if m.MaxHeight > m.MinHeight {
			height += int(tr.Int31n(int32(m.MaxHeight - m.MinHeight + 1)))
		}
		placed := trunk.NewPlacedSet(256)
		anchors, err := m.Placer.Place(tw, tr, height, origin, placed, clip)
		if err != nil {
			log.Error("populate: place mega tree: "+err.Error(), "chunk", chunkPos, "origin", origin)
			continue
		}
		rec := Record{
			ID:       uuid.New(),
			ChunkPos: chunkPos,
			Origin:   origin,
			Height:   height,
			Anchors:  anchors,
			Placed:   placed.Positions(),
		}
		if m.Journal != nil {
			m.Journal.Add(rec)
		}
		planted = append(planted, at)
		records = append(records, rec)
		log.Debug("Planted mega tree.", "id", rec.ID, "origin", origin, "height", height, "blocks", placed.Len())
	}
	return records
}

// crowded checks if at lies closer than MinSpacing to any of the positions planted.
func (m MegaTree) crowded(planted []mgl64.Vec2, at mgl64.Vec2) bool {
	for _, p := range planted {
		if p.Sub(at).Len() < m.MinSpacing {
			return true
		}
	}
	return false
}

func (m MegaTree) highestWorkableBlock(tx txworld.Blocks, chunkPos world.ChunkPos, x, z int) (int, bool) {
	r := tx.Range()
	for y := r[1]; y > r[0]; y-- {
		below := cube.Pos{x, y - 1, z}
		if !inChunk(below, chunkPos) {
			continue
		}
		b := tx.Block(below)
		if workable(b) {
			return y, true
		} else if b != (block.Air{}) {
			return 0, false
		}
	}
	return 0, false
}

// footprintWorkable checks if all four columns of a 2x2 trunk at pos stand on
// workable ground with air above.
func (m MegaTree) footprintWorkable(tx txworld.Blocks, chunkPos world.ChunkPos, pos cube.Pos) bool {
	for _, off := range [...]cube.Pos{{1, 0, 0}, {0, 0, 1}, {1, 0, 1}} {
		p := pos.Add(off)
		if !inChunk(p, chunkPos) {
			return false
		}
		if !workable(tx.Block(p.Side(cube.FaceDown))) || tx.Block(p) != (block.Air{}) {
			return false
		}
	}
	return true
}

func workable(b world.Block) bool {
	return b == (block.Dirt{}) || b == (block.Grass{})
}

// TreeSeed derives the seed of a tree at pos from the world seed.
func TreeSeed(seed int64, pos cube.Pos) int64 {
	var b [32]byte
	binary.LittleEndian.PutUint64(b[0:], uint64(seed))
	binary.LittleEndian.PutUint64(b[8:], uint64(pos[0]))
	binary.LittleEndian.PutUint64(b[16:], uint64(pos[1]))
	binary.LittleEndian.PutUint64(b[24:], uint64(pos[2]))
	return int64(xxhash.Sum64(b[:]))
}

// Compile time check to make sure MegaTree implements Populator.
var _ Populator = MegaTree{}
