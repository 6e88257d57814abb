package txworld

import (
	"fmt"
	"strings"

	"github.com/df-mc/dragonfly/server/block"
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/dm-vev/megatrunk/server/world/trunk"
)

// Palette holds the dragonfly blocks that the states written by the trunk placer
// resolve to.
type Palette struct {
	Log world.Block
	// Quarter holds a block per trunk.Bark. Bedrock has no quarter logs, so
	// WoodPalette fills it with the six-sided wood block.
	Quarter [4]world.Block
	Root    world.Block
	Soil    world.Block
}

// WoodPalette returns the Palette for trees of the wood type passed.
func WoodPalette(wood block.WoodType) Palette {
	bark := block.Wood{Wood: wood, Axis: cube.Y}
	return Palette{
		Log:     block.Log{Wood: wood, Axis: cube.Y},
		Quarter: [4]world.Block{bark, bark, bark, bark},
		Root:    bark,
		Soil:    block.Dirt{},
	}
}

// Block returns the block that s resolves to.
func (p Palette) Block(s trunk.State) world.Block {
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

// woods holds the wood types trees may be configured with, by name.
var woods = map[string]func() block.WoodType{
	"oak":      block.OakWood,
	"spruce":   block.SpruceWood,
	"birch":    block.BirchWood,
	"jungle":   block.JungleWood,
	"acacia":   block.AcaciaWood,
	"dark_oak": block.DarkOakWood,
	"mangrove": block.MangroveWood,
	"cherry":   block.CherryWood,
}

// WoodByName returns the wood type with the name passed, such as "dark_oak".
func WoodByName(name string) (block.WoodType, error) {
	f, ok := woods[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return block.WoodType{}, fmt.Errorf("unknown wood type %q", name)
	}
	return f(), nil
}
