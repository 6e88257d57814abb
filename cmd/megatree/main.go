// Command megatree grows a single quartered mega tree in an in-memory world and
// prints its shape, foliage anchors and the blocks written.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/dm-vev/megatrunk/server"
	"github.com/dm-vev/megatrunk/server/world/generator/pmgen/rand"
	"github.com/dm-vev/megatrunk/server/world/grid"
	"github.com/dm-vev/megatrunk/server/world/trunk"
)

func main() {
	var (
		path    = flag.String("config", "megatree.toml", "path of the TOML configuration")
		seed    = flag.Int64("seed", 0, "seed of the tree")
		height  = flag.Int("height", 8, "trunk height below the canopy")
		quarter = flag.Bool("quarter", false, "force quarter logs, regardless of the configuration")
		debug   = flag.Bool("debug", false, "enable debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	uc, err := server.LoadConfig(*path)
	if err != nil {
		log.Error("load config: " + err.Error())
		os.Exit(1)
	}
	conf, err := uc.Config(log)
	if err != nil {
		log.Error("convert config: " + err.Error())
		os.Exit(1)
	}
	if *quarter {
		conf.Flags.SetQuarterLogs(true)
	}

	if err := grow(os.Stdout, conf, *seed, *height); err != nil {
		log.Error("grow tree: " + err.Error())
		os.Exit(1)
	}
}

// grow places a tree on a small patch of grass and writes a report to out.
func grow(out io.Writer, conf server.Config, seed int64, height int) error {
	origin := cube.Pos{0, 64, 0}
	w := grid.New()
	w.Fill(trunk.Region{Min: cube.Pos{-8, 63, -8}, Max: cube.Pos{9, 63, 9}}, "minecraft:grass_block")

	shape := conf.Placer.Shape(rand.NewRandom(seed))
	placed := trunk.NewPlacedSet(0)
	anchors, err := conf.Placer.Place(w, rand.NewRandom(seed), height, origin, placed, trunk.Everywhere)
	if err != nil {
		return err
	}
	conf.Log.Debug("Placed tree.", "seed", seed, "height", height, "blocks", placed.Len())

	kind := "columnar"
	if shape.Converge {
		kind = "converging"
	}
	fmt.Fprintf(out, "shape: %v, radius %d, %d layers\n", kind, shape.Radius, shape.Layers)
	fmt.Fprintf(out, "anchors:\n")
	for i, a := range anchors {
		fmt.Fprintf(out, "  %2d: %v radius %d\n", i, a.Pos, a.Radius)
	}

	counts := make(map[trunk.Part]int)
	for _, wr := range w.Writes() {
		counts[wr.State.Part]++
	}
	fmt.Fprintf(out, "blocks: %d placed\n", placed.Len())
	for _, p := range []trunk.Part{trunk.PartLog, trunk.PartQuarterLog, trunk.PartRoot, trunk.PartSoil} {
		if counts[p] > 0 {
			fmt.Fprintf(out, "  %v: %d\n", p, counts[p])
		}
	}
	return nil
}
