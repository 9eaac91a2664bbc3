package loader

import (
	"path/filepath"
	"testing"
)

func TestLoadBlockFile(t *testing.T) {
	path := filepath.Join("testdata", "water", "still_water_3.json")
	b, err := LoadBlockFile(path)
	if err != nil {
		t.Fatalf("LoadBlockFile error: %v", err)
	}
	if b.Name != "still_water_3" {
		t.Fatalf("unexpected name: %q", b.Name)
	}
	if b.Material != "water" {
		t.Fatalf("unexpected material: %q", b.Material)
	}
	if len(b.Quads) != 6 {
		t.Fatalf("expected 6 quads, got %d", len(b.Quads))
	}
	if b.Friction.Drag != [3]float64{0.8, 0.5, 0.8} {
		t.Fatalf("unexpected friction: %v", b.Friction.Drag)
	}
	if b.Fog.Color.Rgba.Blue != 1 || b.Fog.Distance != 50 {
		t.Fatalf("unexpected fog: %+v", b.Fog)
	}
}

func TestLoadBlockFileMissing(t *testing.T) {
	_, err := LoadBlockFile(filepath.Join("testdata", "water", "nope.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadBlocksDir(t *testing.T) {
	m, err := LoadBlocksDir("testdata")
	if err != nil {
		t.Fatalf("LoadBlocksDir error: %v", err)
	}
	wantNames := []string{"still_water_3", "surface_water", "diagonal_water_2"}
	for _, n := range wantNames {
		if _, ok := m[n]; !ok {
			t.Fatalf("missing block: %s", n)
		}
	}
	if len(m) != len(wantNames) {
		t.Fatalf("expected %d blocks, got %d", len(wantNames), len(m))
	}
}

func TestMergeBlockMaps(t *testing.T) {
	a := map[string]Block{"x": {Name: "x", Material: "water"}}
	b := map[string]Block{"x": {Name: "x", Material: "lava"}, "y": {Name: "y"}}
	m := MergeBlockMaps(a, b)
	if len(m) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(m))
	}
	if m["x"].Material != "lava" {
		t.Fatalf("later map should win, got %q", m["x"].Material)
	}
}
