package liquidgen

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Quad is one face of a cube mesh. Vertices are ordered top-left,
// bottom-left, top-right, bottom-right as seen looking at the face
// from outside the cube. CullFace names the neighboring block face
// that hides this one; empty means the face is never culled.
type Quad struct {
	Vertices      [4]mgl64.Vec3 `json:"vertices"`
	Texture       string        `json:"texture"`
	RotateTexture bool          `json:"rotate_texture"`
	CullFace      string        `json:"cull_face,omitempty"`
}

// Friction holds the per-axis drag applied to entities inside the block.
type Friction struct {
	Drag mgl64.Vec3 `json:"drag"`
}

// Rgba is a color with components in [0,1].
type Rgba struct {
	Red   float64 `json:"red"`
	Green float64 `json:"green"`
	Blue  float64 `json:"blue"`
	Alpha float64 `json:"alpha"`
}

// FogColor wraps Rgba under the tag the engine's color enum expects.
type FogColor struct {
	Rgba Rgba `json:"Rgba"`
}

// Fog describes the fog applied while the camera is inside the block.
type Fog struct {
	Color    FogColor `json:"color"`
	Distance float64  `json:"distance"`
}

// BlockRecord is one complete block definition, serialized to a single
// <name>.json file. Quads are always exactly 6 entries in the order
// top, bottom, right, left, front, back.
type BlockRecord struct {
	Type             string   `json:"type"`
	Name             string   `json:"name"`
	Material         string   `json:"material"`
	Friction         Friction `json:"friction"`
	LightAttenuation int      `json:"light_attenuation"`
	Fog              Fog      `json:"fog"`
	IsRotatable      bool     `json:"is_rotatable"`
	Quads            []Quad   `json:"quads"`
}

// blockParams carries the per-block knobs of makeBlock that are not
// shared run-wide configuration.
type blockParams struct {
	name             string
	top              TopQuad
	topTexture       string
	rotateTexture    bool
	isRotatable      bool
	cullTop          bool
	lightAttenuation int
}

// makeBlock assembles the full 6-quad record for one block. This is
// the single source of truth for vertex winding and cull tags; the
// four side faces interpolate between the top quad's corner heights
// and the ground plane, so any change to cube topology happens here.
func (g *Generator) makeBlock(p blockParams) BlockRecord {
	top := Quad{
		Vertices:      [4]mgl64.Vec3(p.top),
		Texture:       p.topTexture,
		RotateTexture: p.rotateTexture,
	}
	if p.cullTop {
		top.CullFace = "top"
	}

	h := p.top.Heights()

	quads := []Quad{
		top,
		{
			Vertices: [4]mgl64.Vec3{
				{0.0, 0.0, 1.0},
				{0.0, 0.0, 0.0},
				{1.0, 0.0, 1.0},
				{1.0, 0.0, 0.0},
			},
			Texture:  g.cfg.StillTexture,
			CullFace: "bottom",
		},
		{
			Vertices: [4]mgl64.Vec3{
				{1.0, h[3], 1.0},
				{1.0, 0.0, 1.0},
				{1.0, h[2], 0.0},
				{1.0, 0.0, 0.0},
			},
			Texture:  g.cfg.FlowingTexture,
			CullFace: "right",
		},
		{
			Vertices: [4]mgl64.Vec3{
				{0.0, h[0], 0.0},
				{0.0, 0.0, 0.0},
				{0.0, h[1], 1.0},
				{0.0, 0.0, 1.0},
			},
			Texture:  g.cfg.FlowingTexture,
			CullFace: "left",
		},
		{
			Vertices: [4]mgl64.Vec3{
				{0.0, h[1], 1.0},
				{0.0, 0.0, 1.0},
				{1.0, h[3], 1.0},
				{1.0, 0.0, 1.0},
			},
			Texture:  g.cfg.FlowingTexture,
			CullFace: "front",
		},
		{
			Vertices: [4]mgl64.Vec3{
				{1.0, h[2], 0.0},
				{1.0, 0.0, 0.0},
				{0.0, h[0], 0.0},
				{0.0, 0.0, 0.0},
			},
			Texture:  g.cfg.FlowingTexture,
			CullFace: "back",
		},
	}

	return BlockRecord{
		Type:             "cube",
		Name:             p.name,
		Material:         g.cfg.Material,
		Friction:         Friction{Drag: g.cfg.frictionVec()},
		LightAttenuation: p.lightAttenuation,
		Fog: Fog{
			Color: FogColor{Rgba: Rgba{
				Red:   g.cfg.Fog.Color.Red,
				Green: g.cfg.Fog.Color.Green,
				Blue:  g.cfg.Fog.Color.Blue,
				Alpha: g.cfg.Fog.Color.Alpha,
			}},
			Distance: g.cfg.Fog.Distance,
		},
		IsRotatable: p.isRotatable,
		Quads:       quads,
	}
}
