package onebin

import "github.com/katalvlaran/binpack3d/box"

// axis indices shared by every file in this package.
const (
	axisW = 0
	axisH = 1
	axisD = 2
)

func extent(d box.Dims, axis int) int {
	switch axis {
	case axisW:
		return d.W
	case axisH:
		return d.H
	default:
		return d.D
	}
}

func setCoord(p *box.Point, axis, v int) {
	switch axis {
	case axisW:
		p.X = v
	case axisH:
		p.Y = v
	default:
		p.Z = v
	}
}

func fitsEnvelope(d, bin box.Dims) bool {
	return d.W <= bin.W && d.H <= bin.H && d.D <= bin.D
}

// Fits2 decides whether two boxes a and b fit side by side in bin, trying
// all three axes of separation. On success it returns the two placements,
// with b offset by a's extent along the chosen axis and every other
// coordinate zero. Grounded on fits2 (3dbpp.c:1644-1665).
func Fits2(bin box.Dims, a, b box.Dims) (posA, posB box.Point, ok bool) {
	for axis := 0; axis < 3; axis++ {
		if extent(a, axis)+extent(b, axis) > extent(bin, axis) {
			continue
		}
		if !fitsEnvelope(a, bin) || !fitsEnvelope(b, bin) {
			continue
		}
		var pb box.Point
		setCoord(&pb, axis, extent(a, axis))
		return box.Point{}, pb, true
	}
	return box.Point{}, box.Point{}, false
}

// fits3Guillotine tries every guillotine decomposition of three boxes: pick
// one box to occupy a full-cross-section slab along some axis, then fit
// the other two side by side in the remaining slab via Fits2.
func fits3Guillotine(bin box.Dims, d [3]box.Dims) (pos [3]box.Point, ok bool) {
	perms := [3][3]int{{0, 1, 2}, {1, 0, 2}, {2, 0, 1}}
	for _, perm := range perms {
		slab, i, j := perm[0], perm[1], perm[2]
		for axis := 0; axis < 3; axis++ {
			if !fitsEnvelope(d[slab], bin) {
				continue
			}
			if extent(d[slab], axis) > extent(bin, axis) {
				continue
			}
			rem := bin
			setByAxis(&rem, axis, extent(bin, axis)-extent(d[slab], axis))
			pi, pj, ok2 := Fits2(rem, d[i], d[j])
			if !ok2 {
				continue
			}
			// the slab occupies [0, d[slab].axis) along axis; i and j sit in
			// the remainder, shifted past the slab.
			ps := box.Point{}
			shift := extent(d[slab], axis)
			pi = shiftCoord(pi, axis, shift)
			pj = shiftCoord(pj, axis, shift)
			pos[slab], pos[i], pos[j] = ps, pi, pj
			return pos, true
		}
	}
	return pos, false
}

func setByAxis(d *box.Dims, axis, v int) {
	switch axis {
	case axisW:
		d.W = v
	case axisH:
		d.H = v
	default:
		d.D = v
	}
}

func shiftCoord(p box.Point, axis, delta int) box.Point {
	switch axis {
	case axisW:
		p.X += delta
	case axisH:
		p.Y += delta
	default:
		p.Z += delta
	}
	return p
}

// nonGuillotinePatterns tries the six explicit corner arrangements for
// three boxes i, j, k that a single straight cut does not reach directly: i
// always anchors the origin, and j/k's offsets are tied to each other's
// extents rather than to the bin's, interlocking corner to corner. Grounded
// on the six explicit patterns of fits3 (3dbpp.c:1674-1706), carried over
// with i, j, k bound to d[0], d[1], d[2] in that fixed order, matching the
// original's own argument order rather than trying permutations of it.
// Every candidate is re-validated against the bin and against pairwise
// overlap before it is accepted, so an incomplete enumeration can only cost
// completeness, never soundness.
func nonGuillotinePatterns(bin box.Dims, d [3]box.Dims) (pos [3]box.Point, ok bool) {
	i, j, k := d[0], d[1], d[2]

	// i=(0,0,0); j=(wi,0,0); k=(0,hi,dj)
	if i.W+j.W <= bin.W && i.H+k.H <= bin.H && j.D+k.D <= bin.D {
		cand := [3]box.Point{{}, {X: i.W}, {Y: i.H, Z: j.D}}
		if p, ok2 := validateTriple(bin, d, cand); ok2 {
			return p, true
		}
	}
	// i=(0,0,0); j=(wk,0,di); k=(0,hi,0)
	if j.W+k.W <= bin.W && i.H+k.H <= bin.H && i.D+j.D <= bin.D {
		cand := [3]box.Point{{}, {X: k.W, Z: i.D}, {Y: i.H}}
		if p, ok2 := validateTriple(bin, d, cand); ok2 {
			return p, true
		}
	}
	// i=(0,0,0); j=(0,hi,dk); k=(wi,0,0)
	if i.W+k.W <= bin.W && i.H+j.H <= bin.H && k.D+j.D <= bin.D {
		cand := [3]box.Point{{}, {Y: i.H, Z: k.D}, {X: i.W}}
		if p, ok2 := validateTriple(bin, d, cand); ok2 {
			return p, true
		}
	}
	// i=(0,0,0); j=(0,hi,0); k=(wj,0,di)
	if j.W+k.W <= bin.W && i.H+j.H <= bin.H && k.D+i.D <= bin.D {
		cand := [3]box.Point{{}, {Y: i.H}, {X: j.W, Z: i.D}}
		if p, ok2 := validateTriple(bin, d, cand); ok2 {
			return p, true
		}
	}
	// i=(0,0,0); j=(wi,0,0); k=(0,hj,di)
	if i.W+j.W <= bin.W && j.H+k.H <= bin.H && i.D+k.D <= bin.D {
		cand := [3]box.Point{{}, {X: i.W}, {Y: j.H, Z: i.D}}
		if p, ok2 := validateTriple(bin, d, cand); ok2 {
			return p, true
		}
	}
	// i=(0,0,0); j=(0,0,di); k=(wi,hj,0)
	if i.W+k.W <= bin.W && j.H+k.H <= bin.H && i.D+j.D <= bin.D {
		cand := [3]box.Point{{}, {Z: i.D}, {X: i.W, Y: j.H}}
		if p, ok2 := validateTriple(bin, d, cand); ok2 {
			return p, true
		}
	}
	return pos, false
}

// validateTriple re-checks a candidate placement against the bin envelope
// and pairwise overlap; the six patterns above derive their coordinates
// from size inequalities alone, so this is a defensive second pass rather
// than where soundness actually comes from.
func validateTriple(bin box.Dims, d [3]box.Dims, cand [3]box.Point) (pos [3]box.Point, ok bool) {
	placed := [3]box.Box{
		boxAt(0, d[0], cand[0]),
		boxAt(1, d[1], cand[1]),
		boxAt(2, d[2], cand[2]),
	}
	for _, b := range placed {
		if !box.Fits(b, bin) {
			return cand, false
		}
	}
	if box.Overlaps(placed[0], placed[1]) || box.Overlaps(placed[0], placed[2]) || box.Overlaps(placed[1], placed[2]) {
		return cand, false
	}
	return cand, true
}

func boxAt(no int, d box.Dims, p box.Point) box.Box {
	b := box.NewBox(no, d)
	b.Bin = 1
	b.Pos = p
	return b
}

// Fits3 decides whether three boxes fit together in bin, trying all
// guillotine decompositions first and falling back to the six explicit
// non-guillotine step patterns. Grounded on fits3 (3dbpp.c:1644-1706).
func Fits3(bin box.Dims, a, b, c box.Dims) (pos [3]box.Point, ok bool) {
	d := [3]box.Dims{a, b, c}
	if p, ok2 := fits3Guillotine(bin, d); ok2 {
		return p, true
	}
	return nonGuillotinePatterns(bin, d)
}
