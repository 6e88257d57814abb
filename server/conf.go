package server

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync/atomic"

	"github.com/dm-vev/megatrunk/server/world/generator/pmgen/populate"
	"github.com/dm-vev/megatrunk/server/world/trunk"
	"github.com/dm-vev/megatrunk/server/world/txworld"
	"github.com/pelletier/go-toml"
)

var (
	// ErrUnknownWood is returned when the configured wood type does not exist.
	ErrUnknownWood = errors.New("unknown wood type")
	// ErrInvalidHeights is returned when the configured trunk heights are out of order
	// or not positive.
	ErrInvalidHeights = errors.New("invalid trunk heights")
)

// Config contains the options used to place and populate mega trees.
type Config struct {
	// Log is the Logger to use for logging information. If nil, Log is set to
	// slog.Default().
	Log *slog.Logger
	// Seed is the world seed that the seeds of populated trees are derived from.
	Seed int64
	// Flags holds the feature toggles of the trunk placer. Flags may be changed
	// while trees are being placed.
	Flags *Flags
	// Placer is the trunk placer, set up with Flags and the configured roots.
	Placer trunk.Placer
	// Palette holds the blocks placed in dragonfly worlds.
	Palette txworld.Palette
	// Population is the populator that plants mega trees in new chunks.
	Population populate.MegaTree
}

// Flags holds feature toggles that may be changed at any time. Flags implements
// trunk.Flags.
type Flags struct {
	quarterLogs atomic.Bool
}

// QuarterLogs reports if trunks are placed using quarter logs.
func (f *Flags) QuarterLogs() bool {
	return f.quarterLogs.Load()
}

// SetQuarterLogs enables or disables quarter logs.
func (f *Flags) SetQuarterLogs(v bool) {
	f.quarterLogs.Store(v)
}

// UserConfig is the user configuration for mega trees. It may be serialised and
// can be converted to a Config by calling UserConfig.Config().
type UserConfig struct {
	World struct {
		// Seed is the seed of the world the trees are placed in.
		Seed int64
	}
	Trunk struct {
		// QuarterLogs controls whether trunks are built from quarter logs with bark
		// on their outer sides rather than from plain logs.
		QuarterLogs bool
		// Wood is the wood type of the trees, such as "spruce" or "dark_oak".
		Wood string
		// GrowThrough lists the identifiers of blocks that roots may grow through.
		GrowThrough []string
	}
	Population struct {
		// BaseAmount is the minimum amount of tree attempts per chunk.
		BaseAmount int
		// Chance makes each attempt go ahead with a probability of 1 in Chance.
		Chance int
		// MinHeight and MaxHeight bound the trunk height below the canopy.
		MinHeight, MaxHeight int
		// MinSpacing is the minimum distance in blocks between two trees in a chunk.
		MinSpacing float64
		// Journal keeps a record of every tree planted for as long as the server
		// runs. Records are only removed when Journal.Forget is called.
		Journal bool
	}
}

// Config converts a UserConfig to a Config. An error is returned if the wood
// type is unknown or the trunk heights are invalid.
func (uc UserConfig) Config(log *slog.Logger) (Config, error) {
	if log == nil {
		log = slog.Default()
	}
	wood, err := txworld.WoodByName(uc.Trunk.Wood)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrUnknownWood, err)
	}
	if uc.Population.MinHeight < 1 || uc.Population.MaxHeight < uc.Population.MinHeight {
		return Config{}, fmt.Errorf("%w: min %d, max %d", ErrInvalidHeights, uc.Population.MinHeight, uc.Population.MaxHeight)
	}

	conf := Config{
		Log:     log,
		Seed:    uc.World.Seed,
		Flags:   &Flags{},
		Palette: txworld.WoodPalette(wood),
	}
	conf.Flags.SetQuarterLogs(uc.Trunk.QuarterLogs)
	conf.Placer = trunk.Placer{Flags: conf.Flags, GrowThrough: growThrough(uc.Trunk.GrowThrough)}
	conf.Population = populate.MegaTree{
		BaseAmount: uc.Population.BaseAmount,
		Chance:     uc.Population.Chance,
		MinHeight:  uc.Population.MinHeight,
		MaxHeight:  uc.Population.MaxHeight,
		MinSpacing: uc.Population.MinSpacing,
		Seed:       uc.World.Seed,
		Placer:     conf.Placer,
		Palette:    conf.Palette,
		Log:        log,
	}
	if uc.Population.Journal {
		conf.Population.Journal = populate.NewJournal()
	}
	return conf, nil
}

// growThrough trims the names passed and drops empty ones. The result is never
// nil, so that an empty list disables growing through blocks.
func growThrough(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			out = append(out, n)
		}
	}
	return out
}

// DefaultConfig returns a configuration with the default values filled out.
func DefaultConfig() UserConfig {
	c := UserConfig{}
	c.Trunk.QuarterLogs = true
	c.Trunk.Wood = "spruce"
	c.Trunk.GrowThrough = slices.Clone(trunk.DefaultGrowThrough)
	c.Population.BaseAmount = 0
	c.Population.Chance = 4
	c.Population.MinHeight = 6
	c.Population.MaxHeight = 10
	c.Population.MinSpacing = 8
	return c
}

// LoadConfig reads the UserConfig stored at path. If no file exists at path yet,
// it is created with the default configuration.
func LoadConfig(path string) (UserConfig, error) {
	c := DefaultConfig()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return c, SaveConfig(path, c)
	} else if err != nil {
		return c, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("decode config: %w", err)
	}
	return c, nil
}

// SaveConfig encodes c as TOML and writes it to path.
func SaveConfig(path string, c UserConfig) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0777); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
