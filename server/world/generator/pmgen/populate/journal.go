package populate

import (
	"sync"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/dm-vev/megatrunk/server/world/trunk"
	"github.com/google/uuid"
)

// Record describes a single tree planted by MegaTree.
type Record struct {
	ID       uuid.UUID
	ChunkPos world.ChunkPos
	Origin   cube.Pos
	Height   int
	// Anchors are the foliage anchors of the tree, bottom to top.
	Anchors []trunk.FoliageAnchor
	// Placed holds every log and root position of the tree, in placement order.
	Placed []cube.Pos
}

// Journal keeps the Records of planted trees so that later passes, such as leaf
// placement or decay, can find them. Records stay until they are removed with
// Forget. A Journal is safe for concurrent use. The zero value is ready to use.
type Journal struct {
	mu      sync.Mutex
	records []Record
	index   map[uuid.UUID]int
}

// NewJournal returns an empty Journal.
func NewJournal() *Journal {
	return &Journal{index: make(map[uuid.UUID]int)}
}

// Add stores r in the Journal. A Record with an ID already present replaces the old one.
func (j *Journal) Add(r Record) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.index == nil {
		j.index = make(map[uuid.UUID]int)
	}
	if i, ok := j.index[r.ID]; ok {
		j.records[i] = r
		return
	}
	j.index[r.ID] = len(j.records)
	j.records = append(j.records, r)
}

// Get looks up the Record with the ID passed.
func (j *Journal) Get(id uuid.UUID) (Record, bool) {
	j.mu.Lock()
	defer j.mu.Unlock()

	i, ok := j.index[id]
	if !ok {
		return Record{}, false
	}
	return j.records[i], true
}

// Chunk returns the Records of all trees planted in the chunk at pos.
func (j *Journal) Chunk(pos world.ChunkPos) []Record {
	j.mu.Lock()
	defer j.mu.Unlock()

	var recs []Record
	for _, r := range j.records {
		if r.ChunkPos == pos {
			recs = append(recs, r)
		}
	}
	return recs
}

// Forget removes the Records of all trees planted in the chunk at pos, typically
// once the chunk is unloaded, and returns how many were removed.
func (j *Journal) Forget(pos world.ChunkPos) int {
	j.mu.Lock()
	defer j.mu.Unlock()

	kept := j.records[:0]
	for _, r := range j.records {
		if r.ChunkPos != pos {
			kept = append(kept, r)
		}
	}
	n := len(j.records) - len(kept)
	clear(j.records[len(kept):])
	j.records = kept

	j.index = make(map[uuid.UUID]int, len(kept))
	for i, r := range kept {
		j.index[r.ID] = i
	}
	return n
}

// Records returns all Records in the order they were added.
func (j *Journal) Records() []Record {
	j.mu.Lock()
	defer j.mu.Unlock()
	return append([]Record(nil), j.records...)
}

// Len returns the amount of Records in the Journal.
func (j *Journal) Len() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return len(j.records)
}
