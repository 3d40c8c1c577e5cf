package bound

import (
	"math"
	"sort"

	"github.com/katalvlaran/binpack3d/box"
)

// ceilDiv returns ceil(a/b) for non-negative a and positive b.
func ceilDiv(a, b int64) int64 {
	if a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}

// ceilDivSigned returns ceil(num/den) as a plain int, tolerating a negative
// numerator (the alpha/beta terms below routinely go negative before being
// clamped to zero). den is always a positive axis extent.
func ceilDivSigned(num, den int) int {
	if den == 0 {
		return 0
	}
	return int(math.Ceil(float64(num) / float64(den)))
}

// L0 is the volume bound: no packing can use fewer bins than the total box
// volume divides into, rounded up. Grounded on bound_zero (3dbpp.c:522-539).
func L0(boxes []box.Box, bin box.Dims) int {
	var vol int64
	for _, b := range boxes {
		vol += b.Vol
	}
	return int(ceilDiv(vol, bin.Vol()))
}

func axisExtent(d box.Dims, axis int) int {
	switch axis {
	case 0:
		return d.W
	case 1:
		return d.H
	default:
		return d.D
	}
}

// permAxes names the (width, height, depth) axis roles for rotation k of 3,
// cycling the bin's own three axes through the "height" role in turn, the
// same three-way cycle rotate_problem walks in the original (new_w=old_h,
// new_h=old_d, new_d=old_w). Grounded on rotate_problem (3dbpp.c:546-557),
// redesigned as a pure role-selector instead of an in-place mutation per
// the Open Question decision recorded in DESIGN.md.
func permAxes(k int) (w, h, d int) {
	switch k {
	case 0:
		return 0, 1, 2
	case 1:
		return 1, 2, 0
	default:
		return 2, 0, 1
	}
}

// chooseBoxes returns the subset of boxes whose footprint on the two axes
// orthogonal to the bound axis both exceed half the bin's corresponding
// extent — at most one such box can occupy a given cross-section "column",
// which is what lets the height axis be treated as a 1-D relaxation over
// just this subset. Grounded on choose_boxes (3dbpp.c:584-593).
func chooseBoxes(boxes []box.Box, wAxis, dAxis, w2, d2 int) []box.Box {
	var out []box.Box
	for _, b := range boxes {
		if axisExtent(b.Dims, wAxis) > w2 && axisExtent(b.Dims, dAxis) > d2 {
			out = append(out, b)
		}
	}
	return out
}

// findPList returns the distinct extents of boxes along axis that are no
// larger than m, sorted ascending — the candidate thresholds at which the
// bound's step function can change value. Grounded on find_plist
// (3dbpp.c:596-614).
func findPList(boxes []box.Box, axis, m int) []int {
	seen := make(map[int]bool, len(boxes))
	var out []int
	for _, b := range boxes {
		v := axisExtent(b.Dims, axis)
		if v <= m && !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Ints(out)
	return out
}

// boundOneX is the Martello-Vigo one-dimensional continuous relaxation
// bound for a single fixed orientation: hAxis plays the role of the bin's
// height, wAxis/dAxis its footprint. Grounded on bound_one_x
// (3dbpp.c:634-665).
func boundOneX(boxes []box.Box, bin box.Dims, wAxis, hAxis, dAxis int) int {
	if len(boxes) == 0 {
		return 0
	}
	lb := 1
	h := axisExtent(bin, hAxis)
	h2 := h / 2

	j := chooseBoxes(boxes, wAxis, dAxis, axisExtent(bin, wAxis)/2, axisExtent(bin, dAxis)/2)
	if len(j) == 0 {
		return lb
	}

	for _, p := range findPList(j, hAxis, h2) {
		var j1, j2, j3, j2h, j2hp, j3h int
		for _, b := range j {
			bh := axisExtent(b.Dims, hAxis)
			if bh > h-p {
				j1++
			}
			if h-p >= bh && bh > h2 {
				j2++
				j2h += bh
				j2hp += (h - bh) / p
			}
			if h2 >= bh && bh >= p {
				j3++
				j3h += bh
			}
		}
		alpha := ceilDivSigned(j3h-(j2*h-j2h), h)
		beta := ceilDivSigned(j3-j2hp, h/p)
		if alpha < 0 {
			alpha = 0
		}
		if beta < 0 {
			beta = 0
		}
		lbOne := j1 + j2 + max(alpha, beta)
		if lbOne > lb {
			lb = lbOne
		}
	}
	return lb
}

// L1 is the best of boundOneX over the three ways the bin's axes can play
// the height role, floored at L0 (a harmless strengthening: L0 is always a
// valid lower bound in its own right, so taking the max never loses
// admissibility). Grounded on bound_one (3dbpp.c:670-681).
func L1(boxes []box.Box, bin box.Dims) int {
	if len(boxes) == 0 {
		return 0
	}
	best := L0(boxes, bin)
	for k := 0; k < 3; k++ {
		w, h, d := permAxes(k)
		if v := boundOneX(boxes, bin, w, h, d); v > best {
			best = v
		}
	}
	return best
}

// boundTwoX is the two-dimensional combined bound for a single fixed
// orientation: it starts from boundOneX's lb1 on the same orientation, then
// sweeps independent thresholds p (over wAxis) and q (over dAxis). For each
// pair it splits the boxes into K1 (too large on both axes to share a
// column with anything else, contributing only their height to k1h) and the
// disjoint K23 (large enough on both axes to fall in the combined region,
// contributing full volume), and derives a fractional-bin correction from
// the gap between K23's volume and the space K1 + lb1 bins don't already
// cover. Grounded on bound_two_x (3dbpp.c:690-719).
func boundTwoX(boxes []box.Box, bin box.Dims, wAxis, hAxis, dAxis int) int {
	if len(boxes) == 0 {
		return 0
	}
	lb1 := boundOneX(boxes, bin, wAxis, hAxis, dAxis)
	lb := lb1

	h := int64(axisExtent(bin, hAxis))
	w := axisExtent(bin, wAxis)
	d := axisExtent(bin, dAxis)
	hlb1 := h * int64(lb1)
	wd := float64(w) * float64(d)
	bvol := float64(bin.Vol())

	plist := findPList(boxes, wAxis, w/2)
	qlist := findPList(boxes, dAxis, d/2)
	for _, p := range plist {
		for _, q := range qlist {
			var k1h int64
			var k23v int64
			for _, b := range boxes {
				bw := axisExtent(b.Dims, wAxis)
				bd := axisExtent(b.Dims, dAxis)
				if bw > w-p && bd > d-q {
					k1h += int64(axisExtent(b.Dims, hAxis))
					continue
				}
				if bw >= p && bd >= q {
					k23v += b.Vol
				}
			}
			fract := int(math.Ceil((float64(k23v) - (float64(hlb1-k1h))*wd) / bvol))
			if fract < 0 {
				fract = 0
			}
			if lbx := lb1 + fract; lbx > lb {
				lb = lbx
			}
		}
	}
	return lb
}

// L2 is the best of boundTwoX over the three axis-role rotations, floored
// at L1 for the same harmless-strengthening reason L1 is floored at L0.
// Grounded on bound_two (3dbpp.c:730-741).
func L2(boxes []box.Box, bin box.Dims) int {
	if len(boxes) == 0 {
		return 0
	}
	best := L1(boxes, bin)
	for k := 0; k < 3; k++ {
		w, h, d := permAxes(k)
		if v := boundTwoX(boxes, bin, w, h, d); v > best {
			best = v
		}
	}
	return best
}
