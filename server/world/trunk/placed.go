package trunk

import (
	"github.com/brentp/intintmap"
	"github.com/df-mc/dragonfly/server/block/cube"
)

// PlacedSet is an append-only set of positions that tree material was placed at.
// Positions are kept in the order they were added. The zero value is ready to use.
type PlacedSet struct {
	index     *intintmap.Map
	positions []cube.Pos
}

// NewPlacedSet returns an empty PlacedSet with room for size positions.
func NewPlacedSet(size int) *PlacedSet {
	size = max(size, 16)
	return &PlacedSet{index: intintmap.New(size, 0.6), positions: make([]cube.Pos, 0, size)}
}

// Add inserts pos into the set. It returns false if pos was already present.
func (s *PlacedSet) Add(pos cube.Pos) bool {
	if s.index == nil {
		s.index = intintmap.New(64, 0.6)
	}
	key := packPos(pos)
	if _, ok := s.index.Get(key); ok {
		return false
	}
	s.index.Put(key, int64(len(s.positions)))
	s.positions = append(s.positions, pos)
	return true
}

// Contains checks if pos was added to the set.
func (s *PlacedSet) Contains(pos cube.Pos) bool {
	if s.index == nil {
		return false
	}
	_, ok := s.index.Get(packPos(pos))
	return ok
}

// Len returns the amount of positions in the set.
func (s *PlacedSet) Len() int {
	return len(s.positions)
}

// Positions returns a copy of all positions in the order they were added.
func (s *PlacedSet) Positions() []cube.Pos {
	return append([]cube.Pos(nil), s.positions...)
}

// packPos packs pos into a single integer: 26 bits for X and Z and 12 bits for Y.
// Positions within the limits of a world never collide.
func packPos(pos cube.Pos) int64 {
	return int64(pos[0]&0x3ffffff)<<38 | int64(pos[2]&0x3ffffff)<<12 | int64(pos[1]&0xfff)
}
