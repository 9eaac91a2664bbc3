package liquidgen

import (
	"testing"
)

func TestLowerCorners(t *testing.T) {
	tests := []struct {
		name      string
		decrement [4]int
		want      [4]float64
	}{
		{name: "flat", decrement: [4]int{0, 0, 0, 0}, want: [4]float64{1.0, 1.0, 1.0, 1.0}},
		{name: "tilted", decrement: [4]int{1, 0, 0, 1}, want: [4]float64{0.9, 1.0, 1.0, 0.9}},
		{name: "straight", decrement: [4]int{0, 1, 0, 1}, want: [4]float64{1.0, 0.9, 1.0, 0.9}},
		{name: "diagonal", decrement: [4]int{1, 2, 0, 1}, want: [4]float64{0.9, 0.8, 1.0, 0.9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FullTopQuad().LowerCorners(tt.decrement).Heights()
			if got != tt.want {
				t.Errorf("LowerCorners(%v) heights = %v, want %v", tt.decrement, got, tt.want)
			}
		})
	}
}

func TestLowerAllRoundsExactly(t *testing.T) {
	// Repeated 0.1 subtraction must stay on exact tenths all the way
	// down; raw float subtraction would drift (1.0 - 0.1*3 != 0.7).
	q := FullTopQuad()
	want := [4]float64{1.0, 1.0, 1.0, 1.0}
	for step := 0; step < 10; step++ {
		q = q.LowerAll()
		for i := range want {
			want[i] = float64(9-step) / 10
		}
		if got := q.Heights(); got != want {
			t.Fatalf("step %d: heights = %v, want %v", step+1, got, want)
		}
	}
}

func TestFlatTopQuad(t *testing.T) {
	q := FlatTopQuad(0.9)
	if got := q.Heights(); got != [4]float64{0.9, 0.9, 0.9, 0.9} {
		t.Fatalf("heights = %v, want all 0.9", got)
	}
	// x/z footprint must match the full quad.
	full := FullTopQuad()
	for i := range q {
		if q[i][0] != full[i][0] || q[i][2] != full[i][2] {
			t.Fatalf("corner %d footprint moved: %v", i, q[i])
		}
	}
}
