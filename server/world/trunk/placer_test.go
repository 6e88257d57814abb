package trunk_test

import (
	"errors"
	"testing"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/dm-vev/megatrunk/server/world/generator/pmgen/rand"
	"github.com/dm-vev/megatrunk/server/world/grid"
	"github.com/dm-vev/megatrunk/server/world/trunk"
	"github.com/google/go-cmp/cmp"
)

// replay is a Source returning a fixed sequence of draws. Bool reports true for
// non-zero draws. Once the sequence runs out every draw is 0, which also makes all
// roots skip.
type replay struct {
	draws []int32
	i     int
}

func (r *replay) next() int32 {
	if r.i >= len(r.draws) {
		return 0
	}
	v := r.draws[r.i]
	r.i++
	return v
}

func (r *replay) Bool() bool           { return r.next() != 0 }
func (r *replay) Int31n(n int32) int32 { return r.next() % n }

type flags bool

func (f flags) QuarterLogs() bool { return bool(f) }

var origin = cube.Pos{0, 64, 0}

func TestPlaceColumnarExample(t *testing.T) {
	w := grid.New()
	placed := trunk.NewPlacedSet(0)
	// Columnar, radius 3, 6 layers.
	anchors, err := trunk.Placer{}.Place(w, &replay{draws: []int32{0, 0, 0}}, 1, origin, placed, trunk.Everywhere)
	if err != nil {
		t.Fatalf("place: %v", err)
	}

	want := make([]trunk.FoliageAnchor, 0, 7)
	for i := 0; i < 6; i++ {
		want = append(want, trunk.FoliageAnchor{Pos: cube.Pos{0, 68 + 4*i, 0}, Radius: 3, ForceLeafBelow: true})
	}
	want = append(want, trunk.FoliageAnchor{Pos: cube.Pos{0, 89, 0}, Radius: 3, ForceLeafBelow: true})
	if diff := cmp.Diff(want, anchors); diff != "" {
		t.Fatalf("anchors mismatch (-want +got):\n%s", diff)
	}
	// One trunk layer and 6x4 canopy layers of 4 logs each.
	if placed.Len() != 100 {
		t.Fatalf("expected 100 placed logs, got %d", placed.Len())
	}
}

func TestPlaceConvergingRadii(t *testing.T) {
	w := grid.New()
	anchors, err := trunk.Placer{}.Place(w, &replay{draws: []int32{1, 1}}, 3, origin, trunk.NewPlacedSet(0), trunk.Everywhere)
	if err != nil {
		t.Fatalf("place: %v", err)
	}
	if len(anchors) != 7 {
		t.Fatalf("expected 7 anchors for radius 6, got %d", len(anchors))
	}
	for i, a := range anchors[:6] {
		if a.Radius != 6-i {
			t.Errorf("anchor %d: expected radius %d, got %d", i, 6-i, a.Radius)
		}
		if !a.ForceLeafBelow {
			t.Errorf("anchor %d: expected leaves to be forced below", i)
		}
	}
	top := anchors[6]
	if top.Radius != 1 {
		t.Fatalf("expected cap radius 1, got %d", top.Radius)
	}
	// Trunk of 3 above y=63 and 7+6+5+4+3+2 canopy layers, capped one block higher.
	if want := (cube.Pos{0, 63 + 3 + 27 + 1, 0}); top.Pos != want {
		t.Fatalf("expected cap at %v, got %v", want, top.Pos)
	}
}

func TestPlaceAnchorProperties(t *testing.T) {
	p := trunk.Placer{}
	for seed := int64(0); seed < 200; seed++ {
		shape := p.Shape(rand.NewRandom(seed))
		anchors, err := p.Place(grid.New(), rand.NewRandom(seed), 5, origin, trunk.NewPlacedSet(0), trunk.Everywhere)
		if err != nil {
			t.Fatalf("seed %d: place: %v", seed, err)
		}
		if len(anchors) != shape.Layers+1 {
			t.Fatalf("seed %d: expected %d anchors, got %d", seed, shape.Layers+1, len(anchors))
		}
		last := anchors[len(anchors)-1]
		if shape.Converge {
			for i := 1; i < len(anchors)-1; i++ {
				if anchors[i].Radius != anchors[i-1].Radius-1 {
					t.Fatalf("seed %d: radii do not decrease by one: %+v", seed, anchors)
				}
			}
			if anchors[len(anchors)-2].Radius < 1 || last.Radius != 1 {
				t.Fatalf("seed %d: unexpected top radii: %+v", seed, anchors)
			}
			continue
		}
		for i, a := range anchors {
			if a.Radius != shape.Radius {
				t.Fatalf("seed %d: anchor %d: expected radius %d, got %d", seed, i, shape.Radius, a.Radius)
			}
		}
	}
}

func TestPlaceDeterministic(t *testing.T) {
	run := func() ([]trunk.FoliageAnchor, []grid.Write) {
		w := grid.New()
		anchors, err := trunk.Placer{Flags: flags(true)}.Place(w, rand.NewRandom(99), 8, origin, trunk.NewPlacedSet(0), trunk.Everywhere)
		if err != nil {
			t.Fatalf("place: %v", err)
		}
		return anchors, w.Writes()
	}
	anchorsA, writesA := run()
	anchorsB, writesB := run()
	if diff := cmp.Diff(anchorsA, anchorsB); diff != "" {
		t.Fatalf("anchors differ between runs (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(writesA, writesB); diff != "" {
		t.Fatalf("writes differ between runs (-first +second):\n%s", diff)
	}
}

func TestPlaceTrunkStaysInFootprint(t *testing.T) {
	for _, quarter := range []bool{false, true} {
		w := grid.New()
		if _, err := (trunk.Placer{Flags: flags(quarter)}).Place(w, rand.NewRandom(5), 6, origin, trunk.NewPlacedSet(0), trunk.Everywhere); err != nil {
			t.Fatalf("place: %v", err)
		}
		for _, wr := range w.Writes() {
			if wr.State.Part != trunk.PartLog && wr.State.Part != trunk.PartQuarterLog {
				continue
			}
			off := wr.Pos.Sub(cube.Pos{0, wr.Pos[1], 0})
			b, ok := trunk.BarkAt(off)
			if !ok {
				t.Fatalf("log written outside of the footprint at %v", wr.Pos)
			}
			if wr.Pos[1] < origin[1] {
				t.Fatalf("log written below the origin at %v", wr.Pos)
			}
			switch {
			case !quarter && wr.State != (trunk.State{Part: trunk.PartLog}):
				t.Fatalf("expected plain log at %v, got %+v", wr.Pos, wr.State)
			case quarter && wr.State != (trunk.State{Part: trunk.PartQuarterLog, Bark: b}):
				t.Fatalf("expected quarter log with bark %v at %v, got %+v", b, wr.Pos, wr.State)
			}
		}
	}
}

func TestPlaceFooting(t *testing.T) {
	w := grid.New()
	w.Set(cube.Pos{0, 63, 0}, "minecraft:grass_block")
	w.Set(cube.Pos{1, 63, 0}, "minecraft:stone")
	if _, err := (trunk.Placer{}).Place(w, &replay{}, 1, origin, trunk.NewPlacedSet(0), trunk.Everywhere); err != nil {
		t.Fatalf("place: %v", err)
	}
	if got := w.Block(cube.Pos{0, 63, 0}); got != "minecraft:grass_block" {
		t.Errorf("expected grass to stay, got %v", got)
	}
	for _, pos := range []cube.Pos{{1, 63, 0}, {0, 63, 1}, {1, 63, 1}} {
		if got := w.Block(pos); got != "minecraft:dirt" {
			t.Errorf("expected dirt at %v, got %v", pos, got)
		}
	}
}

func TestPlaceSkipsUnreplaceable(t *testing.T) {
	w := grid.New()
	blocked := cube.Pos{1, 65, 1}
	w.Set(blocked, "minecraft:stone")
	placed := trunk.NewPlacedSet(0)
	if _, err := (trunk.Placer{}).Place(w, &replay{}, 4, origin, placed, trunk.Everywhere); err != nil {
		t.Fatalf("place: %v", err)
	}
	if placed.Contains(blocked) || w.Block(blocked) != "minecraft:stone" {
		t.Fatalf("expected stone at %v to be left alone", blocked)
	}
	if !placed.Contains(cube.Pos{1, 66, 1}) {
		t.Fatalf("expected the trunk to continue above the blocked cell")
	}
}

func TestPlaceSkipsAlreadyPlaced(t *testing.T) {
	w := grid.New()
	placed := trunk.NewPlacedSet(0)
	placed.Add(origin)
	if _, err := (trunk.Placer{}).Place(w, &replay{}, 1, origin, placed, trunk.Everywhere); err != nil {
		t.Fatalf("place: %v", err)
	}
	for _, wr := range w.Writes() {
		if wr.Pos == origin {
			t.Fatalf("expected %v not to be written again", origin)
		}
	}
}

func TestPlaceClipsToRegion(t *testing.T) {
	clip := trunk.Region{Min: cube.Pos{-16, 0, -16}, Max: cube.Pos{0, 255, 15}}
	for seed := int64(0); seed < 50; seed++ {
		w := grid.New()
		placed := trunk.NewPlacedSet(0)
		if _, err := (trunk.Placer{}).Place(w, rand.NewRandom(seed), 4, origin, placed, clip); err != nil {
			t.Fatalf("place: %v", err)
		}
		for _, wr := range w.Writes() {
			if !clip.Contains(wr.Pos) {
				t.Fatalf("seed %d: write outside of region at %v", seed, wr.Pos)
			}
		}
		for _, pos := range placed.Positions() {
			if !clip.Contains(pos) {
				t.Fatalf("seed %d: placed position outside of region at %v", seed, pos)
			}
		}
	}
}

func TestPlaceInvalidArguments(t *testing.T) {
	p := trunk.Placer{}
	w, r, placed := grid.New(), rand.NewRandom(1), trunk.NewPlacedSet(0)
	cases := []struct {
		name   string
		w      trunk.World
		r      trunk.Source
		placed *trunk.PlacedSet
		height int
		want   error
	}{
		{"zero height", w, r, placed, 0, trunk.ErrInvalidHeight},
		{"negative height", w, r, placed, -3, trunk.ErrInvalidHeight},
		{"nil world", nil, r, placed, 4, trunk.ErrNilWorld},
		{"nil source", w, nil, placed, 4, trunk.ErrNilSource},
		{"nil placed set", w, r, nil, 4, trunk.ErrNilPlacedSet},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			anchors, err := p.Place(c.w, c.r, c.height, origin, c.placed, trunk.Everywhere)
			if !errors.Is(err, c.want) {
				t.Fatalf("expected %v, got %v", c.want, err)
			}
			if anchors != nil {
				t.Fatalf("expected no anchors, got %v", anchors)
			}
		})
	}
	if len(w.Writes()) != 0 {
		t.Fatalf("expected invalid placements not to write, got %d writes", len(w.Writes()))
	}
}
