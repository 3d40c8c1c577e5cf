package heuristic

import (
	"github.com/katalvlaran/binpack3d/box"
	"github.com/katalvlaran/binpack3d/onebin"
)

// mcutMaxBins caps the number of bins the m-cut heuristic will open before
// declaring the remainder unplaceable. The original's mcut_heuristic calls
// its filler with a budget of 5*MAXITER (3dbpp.c:1564-1626); onebin.Fill
// has no iteration cap of its own (its backtracking is bounded only by the
// mcut fanout), so no per-bin search budget is applied here.
const mcutMaxBins = 1000

// mcutHeuristicOneOrientation fills bins one at a time with the corner-
// point enumerator until every box is placed or no further box can be
// placed into a fresh bin (which only happens if a box does not fit the
// bin envelope at all). Grounded on mcut_heuristic/mcut3_heuristic
// (3dbpp.c:1564-1626); this heuristic is always invoked here, unlike the
// original's unreachable implementation.
func mcutHeuristicOneOrientation(bin box.Dims, dims []box.Dims) Result {
	n := len(dims)
	placements := make([]Placement, n)
	remaining := make([]int, n)
	for i := range remaining {
		remaining[i] = i
	}

	binNo := 0
	for len(remaining) > 0 && binNo < mcutMaxBins {
		binNo++
		items := make([]box.Dims, len(remaining))
		for k, idx := range remaining {
			items[k] = dims[idx]
		}
		placedLocal, coords, _ := onebin.Fill(bin, items)
		if len(placedLocal) == 0 {
			// Nothing at all fit in a fresh, empty bin: at least one
			// remaining box exceeds the bin envelope outright.
			break
		}
		placedSet := make(map[int]bool, len(placedLocal))
		for k, localIdx := range placedLocal {
			origIdx := remaining[localIdx]
			placements[origIdx] = Placement{Bin: binNo, Pos: coords[k]}
			placedSet[localIdx] = true
		}
		var next []int
		for localIdx, origIdx := range remaining {
			if !placedSet[localIdx] {
				next = append(next, origIdx)
			}
		}
		remaining = next
	}
	return Result{Bins: binNo, Placements: placements}
}

// MCut runs the m-cut heuristic across all three axial orientations
// concurrently and returns whichever orientation used fewer bins.
func MCut(bin box.Dims, dims []box.Dims) Result {
	results := runOrientations(func(k int) Result {
		rbin := rotateDims(bin, k)
		rdims := make([]box.Dims, len(dims))
		for i, d := range dims {
			rdims[i] = rotateDims(d, k)
		}
		res := mcutHeuristicOneOrientation(rbin, rdims)
		if !res.complete(len(dims)) {
			return Result{Bins: len(dims) + 1}
		}
		for i := range res.Placements {
			res.Placements[i].Pos = rotateCoordsBack(res.Placements[i].Pos, k)
		}
		return res
	})

	best := Result{Bins: len(dims) + 1}
	for _, res := range results {
		if res.complete(len(dims)) && res.Bins < best.Bins {
			best = res
		}
	}
	return best
}
