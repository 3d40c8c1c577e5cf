package heuristic

import "github.com/katalvlaran/binpack3d/box"

// Placement is one box's outcome from a heuristic run: which bin it landed
// in (1-based) and its coordinates within that bin.
type Placement struct {
	Bin int
	Pos box.Point
}

// Result is a heuristic packing: one Placement per input box, in the same
// order the caller supplied them, plus the bin count it used. When no
// orientation placed every box, Layer and MCut return a Result with no
// Placements and Bins set to len(dims)+1.
type Result struct {
	Bins       int
	Placements []Placement
}

// complete reports whether every box in the result actually has a bin
// assignment; an incomplete Result never becomes the incumbent.
func (r Result) complete(n int) bool {
	if len(r.Placements) != n {
		return false
	}
	for _, p := range r.Placements {
		if p.Bin == 0 {
			return false
		}
	}
	return true
}

// rotateDims applies k steps (0, 1 or 2) of the W->H->D->W cycle to d.
func rotateDims(d box.Dims, k int) box.Dims {
	for i := 0; i < k; i++ {
		d = d.RotateDims()
	}
	return d
}

// rotateCoordsBack undoes k steps of rotation applied to a coordinate,
// by applying the remaining (3-k)%3 steps of the same forward cycle —
// three applications of RotateCoords are the identity.
func rotateCoordsBack(p box.Point, k int) box.Point {
	for i := 0; i < (3-k)%3; i++ {
		p = p.RotateCoords()
	}
	return p
}
