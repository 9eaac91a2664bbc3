package liquidgen

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// TopQuad holds the four corners of a block's top face in block-local
// coordinates (0..1). Corner indexing, seen from above:
//
//	0  2
//	| /|
//	|/ |
//	1  3
//
// 0 = back-left (z=0), 1 = front-left (z=1), 2 = back-right,
// 3 = front-right. Decrement patterns use the same indexing.
type TopQuad [4]mgl64.Vec3

// FullTopQuad returns a flat top face at full height (y=1.0).
func FullTopQuad() TopQuad {
	return TopQuad{
		{0.0, 1.0, 0.0},
		{0.0, 1.0, 1.0},
		{1.0, 1.0, 0.0},
		{1.0, 1.0, 1.0},
	}
}

// FlatTopQuad returns a flat top face at the given height.
func FlatTopQuad(height float64) TopQuad {
	q := FullTopQuad()
	for i := range q {
		q[i][1] = height
	}
	return q
}

// LowerCorners subtracts decrement[i] * 0.1 from corner i's height.
// Decrements are expected to be small non-negative integers; values
// that would push a corner below zero are a configuration error owned
// by the caller, not checked here.
func (q TopQuad) LowerCorners(decrement [4]int) TopQuad {
	for i := range q {
		q[i][1] = round1(q[i][1] - float64(decrement[i])*0.1)
	}
	return q
}

// LowerAll subtracts a flat 0.1 from every corner's height, one
// fullness level down.
func (q TopQuad) LowerAll() TopQuad {
	for i := range q {
		q[i][1] = round1(q[i][1] - 0.1)
	}
	return q
}

// Heights returns the four corner heights in corner-index order.
func (q TopQuad) Heights() [4]float64 {
	return [4]float64{q[0][1], q[1][1], q[2][1], q[3][1]}
}

// round1 rounds to 1 decimal place. All generated heights are
// multiples of 0.1; rounding after every step keeps repeated
// subtraction from accumulating float error into the output.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
