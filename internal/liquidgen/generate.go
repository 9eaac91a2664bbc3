package liquidgen

import "fmt"

// Archetype is one flow-shape recipe: a named corner decrement
// pattern expanded into a stack of fullness levels.
type Archetype struct {
	// Block names are <Prefix>_<base name> with an optional _<Suffix>,
	// e.g. prefix "diagonal" + suffix "corner_up" for water gives
	// "diagonal_water_corner_up".
	Prefix        string
	Suffix        string
	Decrement     [4]int
	UseStill      bool // top texture: still instead of flowing
	RotateTexture bool
	Count         int
	IsRotatable   bool
}

// name returns the archetype's full block name for the given base,
// e.g. "diagonal_water_corner_up".
func (a Archetype) name(base string) string {
	n := a.Prefix + "_" + base
	if a.Suffix != "" {
		n += "_" + a.Suffix
	}
	return n
}

// defaultArchetypes is the fixed flow-shape plan. The decrement
// patterns encode how far below full height each corner of the shape
// sits; see TopQuad for the corner indexing.
var defaultArchetypes = []Archetype{
	{Prefix: "still", Decrement: [4]int{0, 0, 0, 0}, UseStill: true, Count: 9},
	{Prefix: "tilted", Decrement: [4]int{1, 0, 0, 1}, UseStill: true, Count: 8, IsRotatable: true},
	{Prefix: "straight", Decrement: [4]int{0, 1, 0, 1}, Count: 8, IsRotatable: true},
	{Prefix: "diagonal", Decrement: [4]int{1, 2, 0, 1}, RotateTexture: true, Count: 7, IsRotatable: true},
	{Prefix: "diagonal", Suffix: "corner_up", Decrement: [4]int{1, 1, 0, 1}, RotateTexture: true, Count: 8, IsRotatable: true},
	{Prefix: "diagonal", Suffix: "corner_down", Decrement: [4]int{0, 1, 0, 0}, RotateTexture: true, Count: 8, IsRotatable: true},
}

// Generator expands a single liquid's config into its block records.
type Generator struct {
	cfg *Config
}

func New(cfg *Config) *Generator {
	return &Generator{cfg: cfg}
}

// Generate produces the full ordered list of block records for the
// configured liquid: the surface/subsurface singletons, the submerged
// top of the still stack, then every flow-shape stack.
func (g *Generator) Generate() []BlockRecord {
	blocks := []BlockRecord{
		g.makeBlock(blockParams{
			name:             "subsurface_" + g.cfg.BaseName,
			top:              FullTopQuad(),
			topTexture:       g.cfg.StillTexture,
			cullTop:          true,
			lightAttenuation: 1,
		}),
		g.makeBlock(blockParams{
			name:       "surface_" + g.cfg.BaseName,
			top:        FlatTopQuad(0.9),
			topTexture: g.cfg.StillTexture,
		}),
		// The fully-submerged top of the still stack behaves like the
		// subsurface block but is addressed by level.
		g.makeBlock(blockParams{
			name:             "still_" + g.cfg.BaseName + "_10",
			top:              FullTopQuad(),
			topTexture:       g.cfg.StillTexture,
			cullTop:          true,
			lightAttenuation: 1,
		}),
	}

	for _, a := range defaultArchetypes {
		blocks = append(blocks, g.makeStack(a)...)
	}
	return blocks
}

// makeStack expands one archetype into Count records of decreasing
// fullness, named <archetype>_<level> with level running Count down
// to 1. The top quad starts at the archetype's decrement-adjusted
// shape, drops a flat 0.1 before the loop, then 0.1 more per level.
func (g *Generator) makeStack(a Archetype) []BlockRecord {
	texture := g.cfg.FlowingTexture
	if a.UseStill {
		texture = g.cfg.StillTexture
	}

	top := FullTopQuad().LowerCorners(a.Decrement).LowerAll()

	blocks := make([]BlockRecord, 0, a.Count)
	for level := a.Count; level >= 1; level-- {
		top = top.LowerAll()
		blocks = append(blocks, g.makeBlock(blockParams{
			name:          fmt.Sprintf("%s_%d", a.name(g.cfg.BaseName), level),
			top:           top,
			topTexture:    texture,
			rotateTexture: a.RotateTexture,
			isRotatable:   a.IsRotatable,
		}))
	}
	return blocks
}
