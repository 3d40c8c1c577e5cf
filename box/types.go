package box

import "errors"

// Sentinel errors returned by the box package's validation helpers.
var (
	// ErrBadDims indicates a width/height/depth value outside [1, bin-size].
	ErrBadDims = errors.New("box: dimension out of range")

	// ErrOverlap indicates two boxes in the same bin have interiors that
	// intersect.
	ErrOverlap = errors.New("box: overlapping placement")

	// ErrOutsideBin indicates a placed box extends past the bin's extent
	// along some axis.
	ErrOutsideBin = errors.New("box: placement exceeds bin bounds")

	// ErrUnplaced indicates a box expected to carry a placement (Bin >= 1)
	// was found with Bin == 0.
	ErrUnplaced = errors.New("box: box has no bin assignment")

	// ErrDuplicateNo indicates two boxes in a collection share the same
	// stable identity (No).
	ErrDuplicateNo = errors.New("box: duplicate box number")

	// ErrWrongMultiset indicates a purported packing does not contain
	// exactly the same multiset of box identities as the input.
	ErrWrongMultiset = errors.New("box: packing does not match input multiset")
)

// Dims holds the three fixed (non-rotatable within a single placement)
// extents of a box or bin: width along x, height along y, depth along z.
type Dims struct {
	W, H, D int
}

// Vol returns width*height*depth as an int64 to avoid overflow for the
// largest dimensions MAXBOXES-scale problems can produce.
func (d Dims) Vol() int64 {
	return int64(d.W) * int64(d.H) * int64(d.D)
}

// RotateDims returns d with axes cycled W->H->D->W. Applying it three times
// returns the original value. It is a pure function: the receiver is never
// mutated.
func (d Dims) RotateDims() Dims {
	return Dims{W: d.H, H: d.D, D: d.W}
}

// Point is an integer corner position candidate or an assigned box origin.
type Point struct {
	X, Y, Z int
}

// RotateCoords cycles X->Y->Z->X, the coordinate-space counterpart of
// Dims.RotateDims, so that a box's placement stays consistent with a
// rotated bin.
func (p Point) RotateCoords() Point {
	return Point{X: p.Y, Y: p.Z, Z: p.X}
}

// Box is one input item: a stable identity (No), fixed dimensions, and,
// once packed, a placement (Pos, Bin). Vol is precomputed at construction
// time since it is read on every hot-path comparison (sorting, bound
// computation, fill-bound pruning).
type Box struct {
	// No is the box's stable 1-based identity, invariant across sorts and
	// rotations. 0 is never a valid No.
	No int

	Dims

	// Pos is the box's placed origin (lower corner). Meaningless when
	// Bin == 0.
	Pos Point

	// Bin is the 1-based bin index the box has been committed to, or 0 if
	// the box is still unplaced.
	Bin int

	// Chosen is a transient flag used only by the onebin corner-point
	// filler (package onebin) while it searches a single bin; it has no
	// meaning outside that search.
	Chosen bool

	// Vol caches Dims.Vol() so hot comparisons never recompute it.
	Vol int64
}

// NewBox returns a Box with the given identity and dimensions, Vol
// precomputed, and no placement.
func NewBox(no int, d Dims) Box {
	return Box{No: no, Dims: d, Vol: d.Vol()}
}

// RotateDims returns a copy of b with its dimensions (and, if placed, its
// coordinates) rotated through one step of the W->H->D->W cycle. Vol is
// unchanged since rotation preserves volume.
func (b Box) RotateDims() Box {
	b.Dims = b.Dims.RotateDims()
	if b.Bin > 0 {
		b.Pos = b.Pos.RotateCoords()
	}
	return b
}

// Overlaps reports whether the closed 3D intervals occupied by a and b
// have non-empty interior intersection. Boxes in different bins, or not
// yet placed, never overlap.
func Overlaps(a, b Box) bool {
	if a.Bin == 0 || b.Bin == 0 || a.Bin != b.Bin {
		return false
	}
	return a.Pos.X+a.W > b.Pos.X && b.Pos.X+b.W > a.Pos.X &&
		a.Pos.Y+a.H > b.Pos.Y && b.Pos.Y+b.H > a.Pos.Y &&
		a.Pos.Z+a.D > b.Pos.Z && b.Pos.Z+b.D > a.Pos.Z
}

// Fits reports whether b, placed at its current Pos, lies within a bin of
// the given dimensions.
func Fits(b Box, bin Dims) bool {
	return b.Pos.X >= 0 && b.Pos.X+b.W <= bin.W &&
		b.Pos.Y >= 0 && b.Pos.Y+b.H <= bin.H &&
		b.Pos.Z >= 0 && b.Pos.Z+b.D <= bin.D
}

// ValidatePacking checks the four invariants required of any
// returned solution: every box is within the bin, no two boxes sharing a
// bin overlap, every No is unique, and the bno range is internally
// consistent (callers that also need multiset equality against the
// original input should additionally call ValidateMultiset).
func ValidatePacking(boxes []Box, bin Dims) error {
	seen := make(map[int]struct{}, len(boxes))
	for i := range boxes {
		bi := boxes[i]
		if _, dup := seen[bi.No]; dup {
			return ErrDuplicateNo
		}
		seen[bi.No] = struct{}{}
		if bi.Bin == 0 {
			return ErrUnplaced
		}
		if !Fits(bi, bin) {
			return ErrOutsideBin
		}
		for j := i + 1; j < len(boxes); j++ {
			if Overlaps(bi, boxes[j]) {
				return ErrOverlap
			}
		}
	}
	return nil
}

// ValidateMultiset checks that got contains exactly the same set of box
// identities (by No) as want, regardless of order. Used at the boundary
// between the solver and savesol-equivalent incumbent commits.
func ValidateMultiset(want, got []Box) error {
	if len(want) != len(got) {
		return ErrWrongMultiset
	}
	wantSet := make(map[int]struct{}, len(want))
	for _, b := range want {
		wantSet[b.No] = struct{}{}
	}
	for _, b := range got {
		if _, ok := wantSet[b.No]; !ok {
			return ErrWrongMultiset
		}
		delete(wantSet, b.No)
	}
	if len(wantSet) != 0 {
		return ErrWrongMultiset
	}
	return nil
}
