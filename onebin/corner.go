package onebin

import (
	"sort"

	"github.com/katalvlaran/binpack3d/box"
)

// mcutFanout returns the per-extreme-point branching cap used by the
// corner filler, chosen from problem size: smaller instances can afford a
// wider fanout before the search tree gets unmanageable.
func mcutFanout(n int) int {
	switch {
	case n < 10:
		return 4
	case n < 15:
		return 3
	default:
		return 2
	}
}

// filler is the corner-point ("extreme point") enumerator: it places boxes
// at candidate bin corners with bounded backtracking, keeping the best
// (highest-volume) partial solution seen even when no complete packing is
// found. Always constructed fresh per call, never shared, so it carries no
// process-wide state. Grounded on envelope/checkdom/removedom/initboxes/
// findplaces/branch (3dbpp.c:1343-1552).
type filler struct {
	bin   box.Dims
	items []box.Dims
	n     int
	mcut  int

	chosen []bool
	pos    []box.Point
	curVol int64

	bestVol    int64
	bestChosen []bool
	bestPos    []box.Point

	binVol int64
}

func newFiller(bin box.Dims, items []box.Dims) *filler {
	n := len(items)
	return &filler{
		bin:        bin,
		items:      items,
		n:          n,
		mcut:       mcutFanout(n),
		chosen:     make([]bool, n),
		pos:        make([]box.Point, n),
		bestChosen: make([]bool, n),
		bestPos:    make([]box.Point, n),
		binVol:     bin.Vol(),
	}
}

// remainingVol sums the volume of every not-yet-chosen item, used as the
// optimistic fill bound alongside the bin's own remaining capacity.
func (f *filler) remainingVol() int64 {
	var v int64
	for i, c := range f.chosen {
		if !c {
			v += f.items[i].Vol()
		}
	}
	return v
}

func (f *filler) snapshotIfBetter() {
	if f.curVol > f.bestVol {
		f.bestVol = f.curVol
		copy(f.bestChosen, f.chosen)
		copy(f.bestPos, f.pos)
	}
}

// extremePoints derives candidate corner points from the boxes already
// placed: for each placed box, the points immediately past its extent
// along each of the three axes. A candidate already covered by (inside or
// on the trailing face of) a placed box's interior is not a valid open
// corner and is dropped. With nothing placed yet, the bin's own origin is
// the sole candidate.
func (f *filler) extremePoints() []box.Point {
	if f.curVol == 0 {
		return []box.Point{{}}
	}
	seen := make(map[box.Point]bool)
	var pts []box.Point
	add := func(p box.Point) {
		if p.X < 0 || p.Y < 0 || p.Z < 0 {
			return
		}
		if p.X >= f.bin.W || p.Y >= f.bin.H || p.Z >= f.bin.D {
			return
		}
		if seen[p] {
			return
		}
		if f.insidePlaced(p) {
			return
		}
		seen[p] = true
		pts = append(pts, p)
	}
	for i, c := range f.chosen {
		if !c {
			continue
		}
		p, d := f.pos[i], f.items[i]
		add(box.Point{X: p.X + d.W, Y: p.Y, Z: p.Z})
		add(box.Point{X: p.X, Y: p.Y + d.H, Z: p.Z})
		add(box.Point{X: p.X, Y: p.Y, Z: p.Z + d.D})
	}
	sort.Slice(pts, func(a, b int) bool {
		if pts[a].Z != pts[b].Z {
			return pts[a].Z < pts[b].Z
		}
		if pts[a].Y != pts[b].Y {
			return pts[a].Y < pts[b].Y
		}
		return pts[a].X < pts[b].X
	})
	return pts
}

func (f *filler) insidePlaced(p box.Point) bool {
	for i, c := range f.chosen {
		if !c {
			continue
		}
		q, d := f.pos[i], f.items[i]
		if p.X >= q.X && p.X < q.X+d.W &&
			p.Y >= q.Y && p.Y < q.Y+d.H &&
			p.Z >= q.Z && p.Z < q.Z+d.D {
			return true
		}
	}
	return false
}

// canPlace reports whether item idx fits at p without leaving the bin or
// overlapping any already-placed item.
func (f *filler) canPlace(idx int, p box.Point) bool {
	d := f.items[idx]
	if p.X+d.W > f.bin.W || p.Y+d.H > f.bin.H || p.Z+d.D > f.bin.D {
		return false
	}
	cand := boxAt(idx, d, p)
	for i, c := range f.chosen {
		if !c {
			continue
		}
		if box.Overlaps(cand, boxAt(i, f.items[i], f.pos[i])) {
			return false
		}
	}
	return true
}

// allChosen reports whether every item has been placed.
func (f *filler) allChosen() bool {
	for _, c := range f.chosen {
		if !c {
			return false
		}
	}
	return true
}

// branch is the recursive placement search. Grounded on branch
// (3dbpp.c:1498-1552): compute extreme points and an optimistic fill
// bound, prune if the bound cannot beat the incumbent, else try placing
// each unchosen item at each extreme point up to the mcut fanout cap.
func (f *filler) branch() {
	f.snapshotIfBetter()
	if f.allChosen() {
		return
	}
	bound := f.curVol + f.remainingVol()
	if cap := f.binVol - f.curVol; f.remainingVol() > cap {
		bound = f.curVol + cap
	}
	if bound <= f.bestVol {
		return
	}

	for _, p := range f.extremePoints() {
		tries := 0
		for idx, c := range f.chosen {
			if tries >= f.mcut {
				break
			}
			if c {
				continue
			}
			if !f.canPlace(idx, p) {
				continue
			}
			f.chosen[idx] = true
			f.pos[idx] = p
			f.curVol += f.items[idx].Vol()
			tries++

			f.branch()

			f.curVol -= f.items[idx].Vol()
			f.chosen[idx] = false
		}
	}
}

// Fill runs the corner-point enumerator over items against bin, returning
// the indices (into items) that were placed, their coordinates in the same
// order, and whether every item was placed. It is used both as the m-cut
// heuristic's single-bin filler and as a best-effort knapsack-style packer
// when not every item needs to be placed.
func Fill(bin box.Dims, items []box.Dims) (placedIdx []int, coords []box.Point, allPlaced bool) {
	if len(items) == 0 {
		return nil, nil, true
	}
	f := newFiller(bin, items)
	f.branch()
	for i, chosen := range f.bestChosen {
		if chosen {
			placedIdx = append(placedIdx, i)
			coords = append(coords, f.bestPos[i])
		}
	}
	return placedIdx, coords, len(placedIdx) == f.n
}
