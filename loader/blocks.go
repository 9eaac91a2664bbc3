package loader

import (
	"strconv"
	"strings"
)

// Quad mirrors one face of a generated block definition.
type Quad struct {
	Vertices      [4][3]float64 `json:"vertices"`
	Texture       string        `json:"texture"`
	RotateTexture bool          `json:"rotate_texture"`
	CullFace      string        `json:"cull_face,omitempty"`
}

// Friction mirrors the per-axis drag vector.
type Friction struct {
	Drag [3]float64 `json:"drag"`
}

// Rgba is a color with components in [0,1].
type Rgba struct {
	Red   float64 `json:"red"`
	Green float64 `json:"green"`
	Blue  float64 `json:"blue"`
	Alpha float64 `json:"alpha"`
}

// Fog mirrors the in-liquid fog descriptor.
type Fog struct {
	Color struct {
		Rgba Rgba `json:"Rgba"`
	} `json:"color"`
	Distance float64 `json:"distance"`
}

// Block mirrors a single generated <name>.json block definition.
// Quads are in the fixed order top, bottom, right, left, front, back.
type Block struct {
	Type             string   `json:"type"`
	Name             string   `json:"name"`
	Material         string   `json:"material"`
	Friction         Friction `json:"friction"`
	LightAttenuation int      `json:"light_attenuation"`
	Fog              Fog      `json:"fog"`
	IsRotatable      bool     `json:"is_rotatable"`
	Quads            []Quad   `json:"quads"`
}

// TopQuad returns the block's top face.
func (b Block) TopQuad() Quad {
	return b.Quads[0]
}

// SurfaceHeights returns the top face's corner heights in the
// generator's corner-index order (back-left, front-left, back-right,
// front-right).
func (b Block) SurfaceHeights() [4]float64 {
	t := b.TopQuad()
	return [4]float64{
		t.Vertices[0][1],
		t.Vertices[1][1],
		t.Vertices[2][1],
		t.Vertices[3][1],
	}
}

// MaxSurfaceHeight returns the highest corner of the top face.
func (b Block) MaxSurfaceHeight() float64 {
	top := 0.0
	for _, h := range b.SurfaceHeights() {
		if h > top {
			top = h
		}
	}
	return top
}

// MinSurfaceHeight returns the lowest corner of the top face.
func (b Block) MinSurfaceHeight() float64 {
	low := b.TopQuad().Vertices[0][1]
	for _, h := range b.SurfaceHeights() {
		if h < low {
			low = h
		}
	}
	return low
}

// IsFull reports whether the block is a full cube (top face flat at 1).
func (b Block) IsFull() bool {
	for _, h := range b.SurfaceHeights() {
		if h != 1.0 {
			return false
		}
	}
	return true
}

// IsSloped reports whether the top face's corners sit at different
// heights, i.e. the block represents flowing liquid on a gradient.
func (b Block) IsSloped() bool {
	h := b.SurfaceHeights()
	return h[0] != h[1] || h[0] != h[2] || h[0] != h[3]
}

// CullsTop reports whether the top face is hidden when another liquid
// block sits above.
func (b Block) CullsTop() bool {
	return b.TopQuad().CullFace == "top"
}

// FlowLevel parses the trailing fullness level from the block name,
// e.g. 3 from "still_water_3". ok is false for singleton blocks like
// "surface_water".
func (b Block) FlowLevel() (level int, ok bool) {
	i := strings.LastIndex(b.Name, "_")
	if i < 0 {
		return 0, false
	}
	level, err := strconv.Atoi(b.Name[i+1:])
	if err != nil || level < 0 {
		return 0, false
	}
	return level, true
}

// Family returns the block name with any trailing fullness level
// stripped, e.g. "still_water" from "still_water_3".
func (b Block) Family() string {
	if _, ok := b.FlowLevel(); !ok {
		return b.Name
	}
	return b.Name[:strings.LastIndex(b.Name, "_")]
}
