package liquidgen

import (
	"strings"
	"testing"
)

func TestValidateBlocksAcceptsGenerated(t *testing.T) {
	g := New(testConfig(t))
	if err := ValidateBlocks(g.Generate()); err != nil {
		t.Fatalf("generated blocks failed schema validation: %v", err)
	}
}

func TestValidateBlocksRejectsBadRecords(t *testing.T) {
	g := New(testConfig(t))

	tests := []struct {
		name   string
		mangle func(*BlockRecord)
	}{
		{
			name: "missing quad",
			mangle: func(b *BlockRecord) {
				b.Quads = b.Quads[:5]
			},
		},
		{
			name: "unknown cull face",
			mangle: func(b *BlockRecord) {
				b.Quads[1].CullFace = "sideways"
			},
		},
		{
			name: "height above unit cube",
			mangle: func(b *BlockRecord) {
				b.Quads[0].Vertices[0][1] = 1.5
			},
		},
		{
			name: "empty name",
			mangle: func(b *BlockRecord) {
				b.Name = ""
			},
		},
		{
			name: "wrong type tag",
			mangle: func(b *BlockRecord) {
				b.Type = "prism"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := g.makeBlock(blockParams{
				name:       "still_water_1",
				top:        FlatTopQuad(0.7),
				topTexture: "still_water.png",
			})
			tt.mangle(&b)
			err := ValidateBlocks([]BlockRecord{b})
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if tt.name != "empty name" && !strings.Contains(err.Error(), "still_water_1") {
				t.Errorf("error does not name the failing block: %v", err)
			}
		})
	}
}
